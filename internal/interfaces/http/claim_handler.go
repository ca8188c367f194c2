package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/refaccionaria/autopartes-api/internal/application/dto"
	"github.com/refaccionaria/autopartes-api/internal/application/usecase"
	"github.com/refaccionaria/autopartes-api/internal/domain"
)

// ClaimHandler maneja las peticiones HTTP para reclamos (protegido).
type ClaimHandler struct {
	uc *usecase.ClaimUseCase
}

// NewClaimHandler construye el handler.
func NewClaimHandler(uc *usecase.ClaimUseCase) *ClaimHandler {
	return &ClaimHandler{uc: uc}
}

// List godoc
// @Summary      Listar reclamos
// @Tags         claims
// @Produce      json
// @Success      200  {array}  dto.ClaimResponse
// @Router       /api/claims [get]
func (h *ClaimHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener reclamos"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener reclamo por ID
// @Tags         claims
// @Produce      json
// @Param        id  path  int  true  "ID del reclamo"
// @Success      200  {object}  dto.ClaimResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/claims/{id} [get]
func (h *ClaimHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID inválido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener el reclamo"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Reclamo no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear reclamo
// @Tags         claims
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClaimRequest  true  "venta_id, tipo, descripcion"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/claims [post]
func (h *ClaimHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClaimRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	id, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Todos los campos son requeridos"})
		case errors.Is(err, domain.ErrInvalidClaimType):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Tipo de reclamo inválido"})
		case errors.Is(err, domain.ErrVentaNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "La venta referenciada no existe"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al crear el reclamo"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id, Message: "Reclamo creado exitosamente"})
}

// UpdateStatus godoc
// @Summary      Actualizar estatus de un reclamo
// @Tags         claims
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del reclamo"
// @Param        body  body  dto.UpdateClaimStatusRequest  true  "Nuevo estatus"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/claims/{id}/status [patch]
func (h *ClaimHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID inválido"})
	}
	var in dto.UpdateClaimStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	if err := h.uc.UpdateStatus(id, in.Estatus); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Estatus inválido"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Reclamo no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al actualizar estatus"})
		}
	}
	return c.JSON(dto.MessageResponse{Message: "Estatus de reclamo actualizado exitosamente"})
}

// Delete godoc
// @Summary      Eliminar reclamo
// @Tags         claims
// @Produce      json
// @Param        id  path  int  true  "ID del reclamo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/claims/{id} [delete]
func (h *ClaimHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID inválido"})
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Reclamo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al eliminar el reclamo"})
	}
	return c.JSON(dto.MessageResponse{Message: "Reclamo eliminado exitosamente"})
}
