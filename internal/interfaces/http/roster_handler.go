package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// RosterHandler maneja las peticiones HTTP del cuadrante de turnos.
type RosterHandler struct {
	uc *usecase.RosterUseCase
}

// NewRosterHandler construye el handler.
func NewRosterHandler(uc *usecase.RosterUseCase) *RosterHandler {
	return &RosterHandler{uc: uc}
}

// Create godoc
// @Summary      Alta directa de entrada de cuadrante
// @Description  Rechaza el duplicado exacto (fecha, turno, persona), a diferencia de la importación masiva.
// @Tags         roster
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRosterEntryRequest  true  "Datos de la entrada"
// @Success      201   {object}  dto.RosterEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/roster [post]
func (h *RosterHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRosterEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), actorFrom(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateRoster):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_ROSTER", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar el cuadrante
// @Tags         roster
// @Produce      json
// @Success      200  {object}  dto.RosterListResponse
// @Router       /api/roster [get]
func (h *RosterHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar entrada de cuadrante
// @Tags         roster
// @Param        id  path  string  true  "ID de la entrada"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roster/{id} [delete]
func (h *RosterHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
