package repository

import "github.com/refaccionaria/autopartes-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos que mutan devuelven domain.ErrNotFound si ninguna fila coincide
// y domain.ErrUsuarioYaExiste ante violación de unicidad del username.
type UserRepository interface {
	Create(user *entity.User) error // asigna user.ID al insertar
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id int64) error
}
