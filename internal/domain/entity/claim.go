package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos válidos para Claim.
const (
	ClaimTypeCambio    = "cambio"
	ClaimTypeReembolso = "reembolso"
)

// Estatus válidos para Claim. Igual que en Sale, enumeración plana sin grafo.
const (
	ClaimStatusAbierto    = "abierto"
	ClaimStatusProcesando = "procesando"
	ClaimStatusResuelto   = "resuelto"
	ClaimStatusRechazado  = "rechazado"
)

// Claim representa un reclamo ligado a exactamente una venta.
type Claim struct {
	ID          int64
	VentaID     int64  // FK a sales
	Tipo        string // cambio, reembolso
	Descripcion string
	Estatus     string // abierto, procesando, resuelto, rechazado
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Campos del JOIN con sales y users para listados y detalle.
	ClienteNombre    string
	ClienteTelefono  string
	Parte            string
	Precio           decimal.Decimal
	VendedorUsername string
}

// IsValidClaimType indica si tipo pertenece al conjunto cerrado.
func IsValidClaimType(tipo string) bool {
	return tipo == ClaimTypeCambio || tipo == ClaimTypeReembolso
}

// IsValidClaimStatus indica si estatus pertenece al conjunto cerrado.
func IsValidClaimStatus(estatus string) bool {
	switch estatus {
	case ClaimStatusAbierto, ClaimStatusProcesando, ClaimStatusResuelto, ClaimStatusRechazado:
		return true
	}
	return false
}
