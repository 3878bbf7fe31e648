package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// DictionaryHandler maneja las peticiones HTTP de los diccionarios de
// referencia (turno, departamento, rango, puesto).
type DictionaryHandler struct {
	uc *usecase.DictionaryUseCase
}

// NewDictionaryHandler construye el handler.
func NewDictionaryHandler(uc *usecase.DictionaryUseCase) *DictionaryHandler {
	return &DictionaryHandler{uc: uc}
}

// List godoc
// @Summary      Listar entradas de una categoría de diccionario
// @Tags         dictionaries
// @Produce      json
// @Param        category  path  string  true  "shift | department | rank | title"
// @Success      200  {object}  dto.DictionaryListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dictionaries/{category} [get]
func (h *DictionaryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Params("category"))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_CATEGORY", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear entrada en una categoría de diccionario
// @Tags         dictionaries
// @Accept       json
// @Produce      json
// @Param        category  path  string  true  "shift | department | rank | title"
// @Param        body      body  dto.CreateDictionaryEntryRequest  true  "Datos de la entrada"
// @Success      201  {object}  dto.DictionaryEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/dictionaries/{category} [post]
func (h *DictionaryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDictionaryEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), c.Params("category"), actorFrom(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownCategory):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_CATEGORY", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrDuplicateEntry):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_ENTRY", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
