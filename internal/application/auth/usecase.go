package auth

import (
	"github.com/refaccionaria/autopartes-api/internal/application/dto"
	"github.com/refaccionaria/autopartes-api/internal/domain"
	"github.com/refaccionaria/autopartes-api/internal/domain/repository"
	"github.com/refaccionaria/autopartes-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase caso de uso de autenticación: login contra la tabla de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password y genera el token de sesión (24h por defecto).
// Usuario inexistente y password incorrecto devuelven el mismo ErrUnauthorized
// para no revelar cuál de los dos falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (string, *dto.UserClaims, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return "", nil, err
	}
	return token, &dto.UserClaims{ID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// SessionHours devuelve la duración de la sesión en horas (para el MaxAge de la cookie).
func (uc *AuthUseCase) SessionHours() int {
	return uc.jwtCfg.ExpHours
}
