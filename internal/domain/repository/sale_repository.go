package repository

import "github.com/refaccionaria/autopartes-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale (DIP).
// List y GetByID devuelven las ventas con VendedorUsername resuelto vía JOIN.
type SaleRepository interface {
	Create(sale *entity.Sale) error // asigna sale.ID al insertar
	GetByID(id int64) (*entity.Sale, error)
	// List devuelve las ventas ordenadas por created_at descendente.
	// Si includeArchived es false excluye los estatus terminales (entregado, reembolsado).
	List(includeArchived bool) ([]*entity.Sale, error)
	Exists(id int64) (bool, error)
	Update(sale *entity.Sale) error
	UpdateStatus(id int64, estatus string) error
	Delete(id int64) error
}
