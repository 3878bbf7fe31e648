package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// ThresholdHandler maneja las peticiones HTTP de políticas de umbral.
type ThresholdHandler struct {
	uc *usecase.ThresholdPolicyUseCase
}

// NewThresholdHandler construye el handler.
func NewThresholdHandler(uc *usecase.ThresholdPolicyUseCase) *ThresholdHandler {
	return &ThresholdHandler{uc: uc}
}

// Create godoc
// @Summary      Crear política de umbral
// @Description  Un tipo de material admite a lo sumo una política habilitada.
// @Tags         threshold-policies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateThresholdPolicyRequest  true  "Datos de la política"
// @Success      201   {object}  dto.ThresholdPolicyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/threshold-policies [post]
func (h *ThresholdHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateThresholdPolicyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPolicyExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "POLICY_EXISTS", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar política de umbral
// @Tags         threshold-policies
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la política"
// @Param        body  body  dto.UpdateThresholdPolicyRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ThresholdPolicyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/threshold-policies/{id} [put]
func (h *ThresholdHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateThresholdPolicyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrPolicyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "POLICY_EXISTS", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "política no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar políticas de umbral
// @Tags         threshold-policies
// @Produce      json
// @Success      200  {object}  dto.ThresholdPolicyListResponse
// @Router       /api/threshold-policies [get]
func (h *ThresholdHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar política de umbral
// @Tags         threshold-policies
// @Param        id  path  string  true  "ID de la política"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/threshold-policies/{id} [delete]
func (h *ThresholdHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "política no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
