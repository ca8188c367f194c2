package usecase

import (
	"github.com/refaccionaria/autopartes-api/internal/application/dto"
	"github.com/refaccionaria/autopartes-api/internal/domain"
	"github.com/refaccionaria/autopartes-api/internal/domain/entity"
	"github.com/refaccionaria/autopartes-api/internal/domain/repository"
)

// ClaimUseCase casos de uso para reclamos ligados a ventas.
type ClaimUseCase struct {
	repo  repository.ClaimRepository
	sales repository.SaleRepository
}

// NewClaimUseCase construye el caso de uso.
func NewClaimUseCase(repo repository.ClaimRepository, sales repository.SaleRepository) *ClaimUseCase {
	return &ClaimUseCase{repo: repo, sales: sales}
}

// List lista reclamos con venta y vendedor, más recientes primero.
func (uc *ClaimUseCase) List() ([]dto.ClaimResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClaimResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClaimResponse(c))
	}
	return items, nil
}

// GetByID obtiene un reclamo por ID. Devuelve (nil, nil) si no existe.
func (uc *ClaimUseCase) GetByID(id int64) (*dto.ClaimResponse, error) {
	claim, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, nil
	}
	return toClaimResponse(claim), nil
}

// Create crea un reclamo. La venta referenciada debe existir: se verifica
// aquí para dar un error determinista, y la FK en la tabla cubre la carrera
// entre la verificación y el insert.
func (uc *ClaimUseCase) Create(in dto.CreateClaimRequest) (int64, error) {
	if in.VentaID == 0 || in.Tipo == "" || in.Descripcion == "" {
		return 0, domain.ErrInvalidInput
	}
	if !entity.IsValidClaimType(in.Tipo) {
		return 0, domain.ErrInvalidClaimType
	}
	exists, err := uc.sales.Exists(in.VentaID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, domain.ErrVentaNotFound
	}

	claim := &entity.Claim{
		VentaID:     in.VentaID,
		Tipo:        in.Tipo,
		Descripcion: in.Descripcion,
	}
	if err := uc.repo.Create(claim); err != nil {
		return 0, err
	}
	return claim.ID, nil
}

// UpdateStatus cambia el estatus de un reclamo (conjunto cerrado, sin grafo).
func (uc *ClaimUseCase) UpdateStatus(id int64, estatus string) error {
	if !entity.IsValidClaimStatus(estatus) {
		return domain.ErrInvalidStatus
	}
	return uc.repo.UpdateStatus(id, estatus)
}

// Delete elimina un reclamo por ID.
func (uc *ClaimUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toClaimResponse(c *entity.Claim) *dto.ClaimResponse {
	if c == nil {
		return nil
	}
	return &dto.ClaimResponse{
		ID:               c.ID,
		VentaID:          c.VentaID,
		Tipo:             c.Tipo,
		Descripcion:      c.Descripcion,
		Estatus:          c.Estatus,
		ClienteNombre:    c.ClienteNombre,
		ClienteTelefono:  c.ClienteTelefono,
		Parte:            c.Parte,
		Precio:           c.Precio,
		VendedorUsername: c.VendedorUsername,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
