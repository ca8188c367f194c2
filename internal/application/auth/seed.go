package auth

import (
	"github.com/refaccionaria/autopartes-api/internal/domain/entity"
	"github.com/refaccionaria/autopartes-api/internal/domain/repository"
	"github.com/refaccionaria/autopartes-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// SeedDefaultAdmin garantiza que exista una cuenta operable en el primer
// arranque: si no hay usuario con el username configurado, lo crea con rol
// admin. Idempotente; la constraint UNIQUE de username cubre arranques
// concurrentes. La credencial viene de configuración (ADMIN_USERNAME /
// ADMIN_PASSWORD), no de un literal.
func SeedDefaultAdmin(userRepo repository.UserRepository, username, password string, log *logger.Logger) error {
	existing, err := userRepo.GetByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}
	if err := userRepo.Create(admin); err != nil {
		return err
	}
	log.Warn().
		Str("username", username).
		Msg("usuario admin por defecto creado; cambie la contraseña")
	return nil
}
