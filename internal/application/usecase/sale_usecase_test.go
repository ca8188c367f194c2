package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refaccionaria/autopartes-api/internal/application/dto"
	"github.com/refaccionaria/autopartes-api/internal/application/ports"
	"github.com/refaccionaria/autopartes-api/internal/domain"
	"github.com/refaccionaria/autopartes-api/internal/domain/entity"
)

type memSaleRepo struct {
	seq   int64
	sales map[int64]*entity.Sale
}

func newMemSaleRepo() *memSaleRepo {
	return &memSaleRepo{sales: map[int64]*entity.Sale{}}
}

func (r *memSaleRepo) Create(sale *entity.Sale) error {
	r.seq++
	sale.ID = r.seq
	if sale.Estatus == "" {
		sale.Estatus = entity.SaleStatusBuscando
	}
	cp := *sale
	r.sales[sale.ID] = &cp
	return nil
}

func (r *memSaleRepo) GetByID(id int64) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memSaleRepo) List(includeArchived bool) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for _, s := range r.sales {
		if !includeArchived && entity.IsArchivedSaleStatus(s.Estatus) {
			continue
		}
		cp := *s
		list = append(list, &cp)
	}
	return list, nil
}

func (r *memSaleRepo) Exists(id int64) (bool, error) {
	_, ok := r.sales[id]
	return ok, nil
}

func (r *memSaleRepo) Update(sale *entity.Sale) error {
	if _, ok := r.sales[sale.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *sale
	r.sales[sale.ID] = &cp
	return nil
}

func (r *memSaleRepo) UpdateStatus(id int64, estatus string) error {
	s, ok := r.sales[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.Estatus = estatus
	return nil
}

func (r *memSaleRepo) Delete(id int64) error {
	if _, ok := r.sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.sales, id)
	return nil
}

type fixedValidator struct {
	result ports.PartValidationResult
	err    error
}

func (v fixedValidator) Validate(_ context.Context, _, _ string, _ int) (ports.PartValidationResult, error) {
	return v.result, v.err
}

type noopReports struct{}

func (noopReports) GenerateSalesReport(_ context.Context, _ []*entity.Sale) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

func approveAll() fixedValidator {
	return fixedValidator{result: ports.PartValidationResult{Valid: true, Message: "ok"}}
}

func validCreateRequest() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		ClienteNombre:   "Juan Pérez",
		ClienteTelefono: "555-0100",
		Marca:           "Nissan",
		Modelo:          "Tsuru",
		Ano:             2015,
		Parte:           "Bomba de agua",
		Precio:          decimal.NewFromInt(850),
		Fecha:           "2024-05-20",
	}
}

func TestSaleCreateAsignaVendedorDelToken(t *testing.T) {
	repo := newMemSaleRepo()
	uc := NewSaleUseCase(repo, approveAll(), noopReports{})

	id, err := uc.Create(context.Background(), 7, validCreateRequest())
	require.NoError(t, err)

	stored, _ := repo.GetByID(id)
	require.NotNil(t, stored)
	assert.Equal(t, int64(7), stored.VendedorID)
	assert.Equal(t, entity.SaleStatusBuscando, stored.Estatus)
	assert.Equal(t, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), stored.Fecha)
}

func TestSaleCreateCamposRequeridos(t *testing.T) {
	uc := NewSaleUseCase(newMemSaleRepo(), approveAll(), noopReports{})

	cases := map[string]func(*dto.CreateSaleRequest){
		"cliente_nombre":   func(r *dto.CreateSaleRequest) { r.ClienteNombre = "" },
		"cliente_telefono": func(r *dto.CreateSaleRequest) { r.ClienteTelefono = "" },
		"marca":            func(r *dto.CreateSaleRequest) { r.Marca = "" },
		"modelo":           func(r *dto.CreateSaleRequest) { r.Modelo = "" },
		"ano":              func(r *dto.CreateSaleRequest) { r.Ano = 0 },
		"parte":            func(r *dto.CreateSaleRequest) { r.Parte = "" },
		"precio":           func(r *dto.CreateSaleRequest) { r.Precio = decimal.Zero },
		"fecha":            func(r *dto.CreateSaleRequest) { r.Fecha = "" },
	}
	for name, clear := range cases {
		t.Run(name, func(t *testing.T) {
			in := validCreateRequest()
			clear(&in)
			_, err := uc.Create(context.Background(), 1, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSaleCreateFechaMalFormada(t *testing.T) {
	uc := NewSaleUseCase(newMemSaleRepo(), approveAll(), noopReports{})

	in := validCreateRequest()
	in.Fecha = "2024-13-45"
	_, err := uc.Create(context.Background(), 1, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaleCreateParteRechazada(t *testing.T) {
	rejecting := fixedValidator{result: ports.PartValidationResult{Valid: false, Message: "modelo no soportado"}}
	repo := newMemSaleRepo()
	uc := NewSaleUseCase(repo, rejecting, noopReports{})

	_, err := uc.Create(context.Background(), 1, validCreateRequest())
	var pvErr *PartValidationError
	require.ErrorAs(t, err, &pvErr)
	assert.Equal(t, "modelo no soportado", pvErr.Message)
	assert.Empty(t, repo.sales, "la venta rechazada no debe persistirse")
}

func TestSaleCreateValidadorConError(t *testing.T) {
	failing := fixedValidator{err: errors.New("timeout")}
	uc := NewSaleUseCase(newMemSaleRepo(), failing, noopReports{})

	_, err := uc.Create(context.Background(), 1, validCreateRequest())
	assert.Error(t, err)
}

func TestSaleUpdateStatusEnumCerrado(t *testing.T) {
	repo := newMemSaleRepo()
	uc := NewSaleUseCase(repo, approveAll(), noopReports{})
	id, err := uc.Create(context.Background(), 1, validCreateRequest())
	require.NoError(t, err)

	assert.ErrorIs(t, uc.UpdateStatus(id, "enviado"), domain.ErrInvalidStatus)
	assert.NoError(t, uc.UpdateStatus(id, entity.SaleStatusListo))
	assert.ErrorIs(t, uc.UpdateStatus(99, entity.SaleStatusListo), domain.ErrNotFound)
}

func TestSaleUpdateEstatusRequerido(t *testing.T) {
	repo := newMemSaleRepo()
	uc := NewSaleUseCase(repo, approveAll(), noopReports{})
	id, err := uc.Create(context.Background(), 1, validCreateRequest())
	require.NoError(t, err)

	in := dto.UpdateSaleRequest{
		ClienteNombre:   "Juan Pérez",
		ClienteTelefono: "555-0100",
		Marca:           "Nissan",
		Modelo:          "Tsuru",
		Ano:             2015,
		Parte:           "Bomba de agua",
		Precio:          decimal.NewFromInt(850),
		Fecha:           "2024-05-20",
		Estatus:         "cualquiera",
	}
	assert.ErrorIs(t, uc.Update(context.Background(), id, in), domain.ErrInvalidStatus)

	in.Estatus = entity.SaleStatusEntregado
	assert.NoError(t, uc.Update(context.Background(), id, in))
}

func TestSaleListFiltraArchivadas(t *testing.T) {
	repo := newMemSaleRepo()
	uc := NewSaleUseCase(repo, approveAll(), noopReports{})
	for _, estatus := range []string{entity.SaleStatusBuscando, entity.SaleStatusEntregado, entity.SaleStatusReembolsado} {
		repo.Create(&entity.Sale{Estatus: estatus, Precio: decimal.NewFromInt(1)})
	}

	activas, err := uc.List(false)
	require.NoError(t, err)
	assert.Len(t, activas, 1)

	todas, err := uc.List(true)
	require.NoError(t, err)
	assert.Len(t, todas, 3)
}

func TestSaleReportUsaVentasActivas(t *testing.T) {
	repo := newMemSaleRepo()
	uc := NewSaleUseCase(repo, approveAll(), noopReports{})
	repo.Create(&entity.Sale{Estatus: entity.SaleStatusBuscando, Precio: decimal.NewFromInt(100)})

	pdf, err := uc.Report(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
