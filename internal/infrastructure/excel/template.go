package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Plantillas de importación: hoja con fila de título, fila de encabezados y
// una fila de datos de ejemplo, con el mismo layout de columnas que espera el
// pipeline. Colaborador de solo lectura, no participa de la reconciliación.

const (
	itemSheetName   = "Ítems"
	rosterSheetName = "Cuadrante"
)

var itemHeaders = []string{
	"Código", "Nombre", "Tipo de material", "Cantidad", "Unidad",
	"Ubicación", "Especificación", "Fecha de producción", "Vida útil (meses)", "Observaciones",
}

var itemExample = []string{
	"", "Guantes de nitrilo", "Consumible", "120", "caja",
	"Estante A-3", "Talla M", "2025-01-15", "24", "dejar el código vacío para generarlo",
}

var rosterHeaders = []string{
	"Fecha", "Turno", "Persona", "Teléfono", "Rango", "Departamento", "Puesto", "Observaciones",
}

var rosterExample = []string{
	"2025-06-01", "Mañana", "Ana Ruiz", "600111222", "Cabo", "Seguridad", "Vigilante", "",
}

// ItemTemplate genera la plantilla .xlsx de importación de ítems.
func ItemTemplate() ([]byte, error) {
	return buildTemplate(itemSheetName, "Plantilla de importación de ítems de almacén", itemHeaders, itemExample)
}

// RosterTemplate genera la plantilla .xlsx de importación de cuadrante.
func RosterTemplate() ([]byte, error) {
	return buildTemplate(rosterSheetName, "Plantilla de importación de cuadrante de turnos", rosterHeaders, rosterExample)
}

func buildTemplate(sheet, title string, headers, example []string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}

	// Fila 1: título mergeado sobre todas las columnas
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, fmt.Errorf("escribir título: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return nil, err
	}
	if err := f.MergeCell(sheet, "A1", last); err != nil {
		return nil, fmt.Errorf("merge del título: %w", err)
	}

	// Fila 2: encabezados; fila 3: ejemplo
	if err := writeRow(f, sheet, 2, headers); err != nil {
		return nil, err
	}
	if err := writeRow(f, sheet, 3, example); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar plantilla: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("escribir celda %s: %w", cell, err)
		}
	}
	return nil
}
