package importer

import "strings"

// Grid grilla rectangular de texto proveniente de una hoja de cálculo,
// direccionable por fila y columna 1-based. El pipeline no conoce el formato
// de archivo; el adaptador (infrastructure/excel) entrega la grilla ya parseada.
type Grid interface {
	// NumRows cantidad total de filas, cabecera incluida.
	NumRows() int
	// Cell texto de la celda (fila, columna) 1-based, ya recortado.
	// Fuera de rango devuelve cadena vacía.
	Cell(row, col int) string
}

// GridOpener abre los bytes de un archivo subido como Grid. Falla completo
// (sin resultado parcial) si el contenido no es una grilla legible con al
// menos una hoja.
type GridOpener func(data []byte) (Grid, error)

// SliceGrid implementación de Grid sobre un [][]string; la usan el adaptador
// de excel y los tests.
type SliceGrid struct {
	Rows [][]string
}

// NumRows cantidad de filas de la grilla.
func (g *SliceGrid) NumRows() int { return len(g.Rows) }

// Cell celda 1-based; fuera de rango devuelve vacío.
func (g *SliceGrid) Cell(row, col int) string {
	if row < 1 || row > len(g.Rows) {
		return ""
	}
	r := g.Rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return strings.TrimSpace(r[col-1])
}
