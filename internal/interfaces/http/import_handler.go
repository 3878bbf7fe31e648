package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/importer"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/excel"
)

// ImportHandler maneja las importaciones masivas y la descarga de plantillas.
// Una condición fatal de lote (archivo ilegible, sin filas de datos) responde
// 400 sin resultado parcial; un lote procesado siempre responde 200 con el
// resumen por fila, aunque todas las filas hayan fallado.
type ImportHandler struct {
	items  *importer.ItemImporter
	roster *importer.RosterImporter
}

// NewImportHandler construye el handler.
func NewImportHandler(items *importer.ItemImporter, roster *importer.RosterImporter) *ImportHandler {
	return &ImportHandler{items: items, roster: roster}
}

// ImportItems godoc
// @Summary      Importación masiva de ítems desde .xlsx
// @Tags         imports
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Hoja con el layout de la plantilla de ítems"
// @Success      200   {object}  dto.ImportBatchResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items/import [post]
func (h *ImportHandler) ImportItems(c *fiber.Ctx) error {
	data, fileName, errResp := readUpload(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}
	result, err := h.items.ImportFile(c.Context(), data, fileName)
	if err != nil {
		return batchFatal(c, err)
	}
	return c.JSON(result)
}

// ImportRoster godoc
// @Summary      Importación masiva del cuadrante desde .xlsx
// @Tags         imports
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Hoja con el layout de la plantilla de cuadrante"
// @Success      200   {object}  dto.ImportBatchResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/roster/import [post]
func (h *ImportHandler) ImportRoster(c *fiber.Ctx) error {
	data, fileName, errResp := readUpload(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}
	result, err := h.roster.ImportFile(c.Context(), data, fileName)
	if err != nil {
		return batchFatal(c, err)
	}
	return c.JSON(result)
}

// ItemTemplate godoc
// @Summary      Descargar plantilla de importación de ítems
// @Tags         imports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /api/items/import/template [get]
func (h *ImportHandler) ItemTemplate(c *fiber.Ctx) error {
	return sendTemplate(c, "plantilla-items.xlsx", excel.ItemTemplate)
}

// RosterTemplate godoc
// @Summary      Descargar plantilla de importación de cuadrante
// @Tags         imports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /api/roster/import/template [get]
func (h *ImportHandler) RosterTemplate(c *fiber.Ctx) error {
	return sendTemplate(c, "plantilla-cuadrante.xlsx", excel.RosterTemplate)
}

func readUpload(c *fiber.Ctx) ([]byte, string, *dto.ErrorResponse) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, "", &dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el archivo en el campo 'file'"}
	}
	f, err := fileHeader.Open()
	if err != nil {
		return nil, "", &dto.ErrorResponse{Code: "UNREADABLE_FILE", Message: "no se pudo abrir el archivo subido"}
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", &dto.ErrorResponse{Code: "UNREADABLE_FILE", Message: "no se pudo leer el archivo subido"}
	}
	return data, fileHeader.Filename, nil
}

func batchFatal(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyWorkbook):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_WORKBOOK", Message: err.Error()})
	case errors.Is(err, domain.ErrNoDataRows):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_DATA_ROWS", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func sendTemplate(c *fiber.Ctx, fileName string, build func() ([]byte, error)) error {
	data, err := build()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return c.Send(data)
}
