package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateClaimRequest entrada para crear un reclamo; cualquier usuario autenticado.
type CreateClaimRequest struct {
	VentaID     int64  `json:"venta_id"`
	Tipo        string `json:"tipo"` // cambio, reembolso
	Descripcion string `json:"descripcion"`
}

// UpdateClaimStatusRequest entrada para el cambio de estatus (dueno, admin).
type UpdateClaimStatusRequest struct {
	Estatus string `json:"estatus"`
}

// ClaimResponse salida de un reclamo con los datos de la venta y del vendedor.
// ClienteTelefono solo se incluye en el detalle (GET /:id), como en el listado histórico.
type ClaimResponse struct {
	ID               int64           `json:"id"`
	VentaID          int64           `json:"venta_id"`
	Tipo             string          `json:"tipo"`
	Descripcion      string          `json:"descripcion"`
	Estatus          string          `json:"estatus"`
	ClienteNombre    string          `json:"cliente_nombre"`
	ClienteTelefono  string          `json:"cliente_telefono,omitempty"`
	Parte            string          `json:"parte"`
	Precio           decimal.Decimal `json:"precio"`
	VendedorUsername string          `json:"vendedor_username"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
