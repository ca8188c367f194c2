package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrVentaNotFound    = errors.New("la venta referenciada no existe")
	ErrUsuarioYaExiste  = errors.New("el nombre de usuario ya existe")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidStatus    = errors.New("estatus inválido")
	ErrInvalidRole      = errors.New("rol inválido")
	ErrInvalidClaimType = errors.New("tipo de reclamo inválido")
	ErrUnauthorized     = errors.New("no autorizado")
)
