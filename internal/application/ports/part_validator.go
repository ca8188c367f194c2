package ports

import "context"

// PartValidationResult resultado de validar una parte contra el servicio externo.
type PartValidationResult struct {
	Valid   bool
	Message string
}

// PartValidator puerto para la validación externa de partes automotrices.
// La implementación real consulta un catálogo externo; sin URL configurada
// opera en modo stub y aprueba todo. Inyectable para sustituir sin tocar
// a los casos de uso.
type PartValidator interface {
	Validate(ctx context.Context, marca, modelo string, ano int) (PartValidationResult, error)
}
