package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// actorFrom identifica al operador de la petición para los campos de
// auditoría. Sin capa de autenticación, la cabecera X-Operator es opcional.
func actorFrom(c *fiber.Ctx) string {
	if op := c.Get("X-Operator"); op != "" {
		return op
	}
	return "api"
}

// MaterialTypeHandler maneja las peticiones HTTP para tipos de material.
type MaterialTypeHandler struct {
	uc *usecase.MaterialTypeUseCase
}

// NewMaterialTypeHandler construye el handler.
func NewMaterialTypeHandler(uc *usecase.MaterialTypeUseCase) *MaterialTypeHandler {
	return &MaterialTypeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tipo de material
// @Tags         material-types
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialTypeRequest  true  "Datos del tipo"
// @Success      201   {object}  dto.MaterialTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/material-types [post]
func (h *MaterialTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), actorFrom(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar tipo de material
// @Tags         material-types
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tipo"
// @Param        body  body  dto.UpdateMaterialTypeRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MaterialTypeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/material-types/{id} [put]
func (h *MaterialTypeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMaterialTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), actorFrom(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tipos de material
// @Tags         material-types
// @Produce      json
// @Success      200  {object}  dto.MaterialTypeListResponse
// @Router       /api/material-types [get]
func (h *MaterialTypeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
