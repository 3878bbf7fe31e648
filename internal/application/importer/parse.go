package importer

import (
	"strconv"
	"time"
)

// Layouts de fecha aceptados en las celdas de texto. Los campos numéricos sin
// cero a la izquierda en el layout también aceptan la variante con relleno.
var dateLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	"2006.1.2",
	"20060102",
	"2-1-2006",
	"2/1/2006",
}

// parseDate intenta interpretar una celda como fecha. Devuelve nil si la celda
// está vacía o no es interpretable: las fechas opcionales son leniencia
// deliberada, nunca hacen fallar la fila.
func parseDate(cell string) *time.Time {
	if cell == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return &t
		}
	}
	return nil
}

// parseOptionalInt interpreta una celda como entero; vacío o ilegible -> nil,
// misma leniencia que las fechas (vida útil en meses).
func parseOptionalInt(cell string) *int {
	if cell == "" {
		return nil
	}
	n, err := strconv.Atoi(cell)
	if err != nil {
		return nil
	}
	return &n
}
