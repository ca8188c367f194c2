package usecase

import (
	"github.com/refaccionaria/autopartes-api/internal/application/dto"
	"github.com/refaccionaria/autopartes-api/internal/domain"
	"github.com/refaccionaria/autopartes-api/internal/domain/entity"
	"github.com/refaccionaria/autopartes-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase casos de uso CRUD para usuarios (superficie solo admin).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todos los usuarios sin el hash del password.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// Create crea un usuario: valida el rol contra el conjunto cerrado y hashea
// el password con bcrypt antes de persistir.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (int64, error) {
	if in.Username == "" || in.Password == "" || in.Role == "" {
		return 0, domain.ErrInvalidInput
	}
	if !entity.IsValidRole(in.Role) {
		return 0, domain.ErrInvalidRole
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
	}
	if err := uc.repo.Create(user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Update actualiza username y rol; el password solo se rehashea si viene uno nuevo.
func (uc *UserUseCase) Update(id int64, in dto.UpdateUserRequest) error {
	if in.Username == "" || in.Role == "" {
		return domain.ErrInvalidInput
	}
	if !entity.IsValidRole(in.Role) {
		return domain.ErrInvalidRole
	}
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	existing.Username = in.Username
	existing.Role = in.Role
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		existing.PasswordHash = string(hash)
	}
	return uc.repo.Update(existing)
}

// Delete elimina un usuario por ID.
func (uc *UserUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
