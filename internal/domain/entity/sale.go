package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estatus válidos para Sale. Enumeración plana: cualquier dueno/admin puede
// pasar de un valor a otro sin grafo de transiciones.
const (
	SaleStatusBuscando    = "buscando"
	SaleStatusListo       = "listo"
	SaleStatusEntregado   = "entregado"
	SaleStatusReembolsado = "reembolsado"
)

// Sale representa una venta/solicitud de parte automotriz de un cliente.
type Sale struct {
	ID              int64
	ClienteNombre   string
	ClienteTelefono string
	Marca           string
	Modelo          string
	Ano             int
	Parte           string
	Precio          decimal.Decimal
	Fecha           time.Time // fecha de la transacción (solo fecha, sin hora)
	Estatus         string    // buscando, listo, entregado, reembolsado
	VendedorID      int64     // FK a users; siempre el del token, nunca del body
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// VendedorUsername viene del JOIN con users en listados y detalle.
	VendedorUsername string
}

// IsValidSaleStatus indica si estatus pertenece al conjunto cerrado.
func IsValidSaleStatus(estatus string) bool {
	switch estatus {
	case SaleStatusBuscando, SaleStatusListo, SaleStatusEntregado, SaleStatusReembolsado:
		return true
	}
	return false
}

// IsArchivedSaleStatus indica si el estatus es terminal (excluido del listado por defecto).
func IsArchivedSaleStatus(estatus string) bool {
	return estatus == SaleStatusEntregado || estatus == SaleStatusReembolsado
}
