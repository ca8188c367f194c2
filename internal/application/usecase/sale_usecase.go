package usecase

import (
	"context"
	"time"

	"github.com/refaccionaria/autopartes-api/internal/application/dto"
	"github.com/refaccionaria/autopartes-api/internal/application/ports"
	"github.com/refaccionaria/autopartes-api/internal/domain"
	"github.com/refaccionaria/autopartes-api/internal/domain/entity"
	"github.com/refaccionaria/autopartes-api/internal/domain/repository"
)

// fechaLayout formato de la fecha de transacción en el wire (YYYY-MM-DD).
const fechaLayout = "2006-01-02"

// PartValidationError indica que el servicio externo rechazó la parte.
// Lleva el mensaje del servicio para mostrarlo al usuario.
type PartValidationError struct {
	Message string
}

func (e *PartValidationError) Error() string {
	return "validación de parte fallida: " + e.Message
}

// SaleUseCase casos de uso CRUD para ventas.
type SaleUseCase struct {
	repo      repository.SaleRepository
	validator ports.PartValidator
	reports   ports.SalesReportGenerator
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, validator ports.PartValidator, reports ports.SalesReportGenerator) *SaleUseCase {
	return &SaleUseCase{repo: repo, validator: validator, reports: reports}
}

// List lista ventas, más recientes primero. Sin includeArchived excluye
// los estatus terminales (entregado, reembolsado).
func (uc *SaleUseCase) List(includeArchived bool) ([]dto.SaleResponse, error) {
	list, err := uc.repo.List(includeArchived)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return items, nil
}

// GetByID obtiene una venta por ID. Devuelve (nil, nil) si no existe.
func (uc *SaleUseCase) GetByID(id int64) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// Create crea una venta. El vendedor es siempre el del token. Todos los
// campos son requeridos; la parte se valida contra el servicio externo
// antes de insertar.
func (uc *SaleUseCase) Create(ctx context.Context, vendedorID int64, in dto.CreateSaleRequest) (int64, error) {
	if in.ClienteNombre == "" || in.ClienteTelefono == "" || in.Marca == "" ||
		in.Modelo == "" || in.Ano == 0 || in.Parte == "" || in.Precio.IsZero() || in.Fecha == "" {
		return 0, domain.ErrInvalidInput
	}
	fecha, err := time.Parse(fechaLayout, in.Fecha)
	if err != nil {
		return 0, domain.ErrInvalidInput
	}

	result, err := uc.validator.Validate(ctx, in.Marca, in.Modelo, in.Ano)
	if err != nil {
		return 0, err
	}
	if !result.Valid {
		return 0, &PartValidationError{Message: result.Message}
	}

	sale := &entity.Sale{
		ClienteNombre:   in.ClienteNombre,
		ClienteTelefono: in.ClienteTelefono,
		Marca:           in.Marca,
		Modelo:          in.Modelo,
		Ano:             in.Ano,
		Parte:           in.Parte,
		Precio:          in.Precio,
		Fecha:           fecha,
		VendedorID:      vendedorID,
	}
	if err := uc.repo.Create(sale); err != nil {
		return 0, err
	}
	return sale.ID, nil
}

// UpdateStatus cambia el estatus de una venta. El conjunto es cerrado pero
// plano: no hay grafo de transiciones, cualquier valor válido es aceptado.
func (uc *SaleUseCase) UpdateStatus(id int64, estatus string) error {
	if !entity.IsValidSaleStatus(estatus) {
		return domain.ErrInvalidStatus
	}
	return uc.repo.UpdateStatus(id, estatus)
}

// Update reemplaza todos los campos mutables de la venta (solo admin).
// Revalida la parte con el servicio externo y exige un estatus del conjunto cerrado.
func (uc *SaleUseCase) Update(ctx context.Context, id int64, in dto.UpdateSaleRequest) error {
	if in.ClienteNombre == "" || in.ClienteTelefono == "" || in.Marca == "" ||
		in.Modelo == "" || in.Ano == 0 || in.Parte == "" || in.Precio.IsZero() || in.Fecha == "" {
		return domain.ErrInvalidInput
	}
	if !entity.IsValidSaleStatus(in.Estatus) {
		return domain.ErrInvalidStatus
	}
	fecha, err := time.Parse(fechaLayout, in.Fecha)
	if err != nil {
		return domain.ErrInvalidInput
	}

	result, err := uc.validator.Validate(ctx, in.Marca, in.Modelo, in.Ano)
	if err != nil {
		return err
	}
	if !result.Valid {
		return &PartValidationError{Message: result.Message}
	}

	sale := &entity.Sale{
		ID:              id,
		ClienteNombre:   in.ClienteNombre,
		ClienteTelefono: in.ClienteTelefono,
		Marca:           in.Marca,
		Modelo:          in.Modelo,
		Ano:             in.Ano,
		Parte:           in.Parte,
		Precio:          in.Precio,
		Fecha:           fecha,
		Estatus:         in.Estatus,
	}
	return uc.repo.Update(sale)
}

// Delete elimina una venta por ID.
func (uc *SaleUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// Report genera el PDF del reporte de ventas activas.
func (uc *SaleUseCase) Report(ctx context.Context) ([]byte, error) {
	list, err := uc.repo.List(false)
	if err != nil {
		return nil, err
	}
	return uc.reports.GenerateSalesReport(ctx, list)
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:               s.ID,
		ClienteNombre:    s.ClienteNombre,
		ClienteTelefono:  s.ClienteTelefono,
		Marca:            s.Marca,
		Modelo:           s.Modelo,
		Ano:              s.Ano,
		Parte:            s.Parte,
		Precio:           s.Precio,
		Fecha:            s.Fecha.Format(fechaLayout),
		Estatus:          s.Estatus,
		VendedorID:       s.VendedorID,
		VendedorUsername: s.VendedorUsername,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
