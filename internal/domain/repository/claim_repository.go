package repository

import "github.com/refaccionaria/autopartes-api/internal/domain/entity"

// ClaimRepository define el puerto de persistencia para Claim (DIP).
// List y GetByID devuelven el reclamo con los datos de la venta y del vendedor
// resueltos vía JOIN. Create devuelve domain.ErrVentaNotFound si la FK falla.
type ClaimRepository interface {
	Create(claim *entity.Claim) error // asigna claim.ID al insertar
	GetByID(id int64) (*entity.Claim, error)
	// List devuelve los reclamos ordenados por created_at descendente.
	List() ([]*entity.Claim, error)
	UpdateStatus(id int64, estatus string) error
	Delete(id int64) error
}
