package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para crear una venta. Todos los campos son
// requeridos; vendedor_id se toma del token, nunca del body.
type CreateSaleRequest struct {
	ClienteNombre   string          `json:"cliente_nombre"`
	ClienteTelefono string          `json:"cliente_telefono"`
	Marca           string          `json:"marca"`
	Modelo          string          `json:"modelo"`
	Ano             int             `json:"ano"`
	Parte           string          `json:"parte"`
	Precio          decimal.Decimal `json:"precio"`
	Fecha           string          `json:"fecha"` // YYYY-MM-DD
}

// UpdateSaleRequest entrada para el reemplazo completo (solo admin).
type UpdateSaleRequest struct {
	ClienteNombre   string          `json:"cliente_nombre"`
	ClienteTelefono string          `json:"cliente_telefono"`
	Marca           string          `json:"marca"`
	Modelo          string          `json:"modelo"`
	Ano             int             `json:"ano"`
	Parte           string          `json:"parte"`
	Precio          decimal.Decimal `json:"precio"`
	Fecha           string          `json:"fecha"` // YYYY-MM-DD
	Estatus         string          `json:"estatus"`
}

// UpdateSaleStatusRequest entrada para el cambio de estatus (dueno, admin).
type UpdateSaleStatusRequest struct {
	Estatus string `json:"estatus"`
}

// SaleResponse salida de una venta con el username del vendedor del JOIN.
type SaleResponse struct {
	ID               int64           `json:"id"`
	ClienteNombre    string          `json:"cliente_nombre"`
	ClienteTelefono  string          `json:"cliente_telefono"`
	Marca            string          `json:"marca"`
	Modelo           string          `json:"modelo"`
	Ano              int             `json:"ano"`
	Parte            string          `json:"parte"`
	Precio           decimal.Decimal `json:"precio"`
	Fecha            string          `json:"fecha"` // YYYY-MM-DD
	Estatus          string          `json:"estatus"`
	VendedorID       int64           `json:"vendedor_id"`
	VendedorUsername string          `json:"vendedor_username"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
