package entity

import "time"

// DictCategory identifica cada diccionario de referencia independiente.
type DictCategory string

const (
	CategoryShift      DictCategory = "shift"      // turno
	CategoryDepartment DictCategory = "department" // departamento
	CategoryRank       DictCategory = "rank"       // rango
	CategoryTitle      DictCategory = "title"      // puesto
)

// KnownCategory indica si la categoría es una de las cuatro soportadas.
func KnownCategory(c DictCategory) bool {
	switch c {
	case CategoryShift, CategoryDepartment, CategoryRank, CategoryTitle:
		return true
	}
	return false
}

// DictionaryEntry entrada genérica de un diccionario de referencia.
// Las cuatro categorías comparten forma; el nombre se trata como canónico
// (primera coincidencia) al reconciliar importaciones, sin constraint en BD.
type DictionaryEntry struct {
	ID        string
	Category  DictCategory
	Code      string // por defecto igual al nombre cuando la crea una importación
	Name      string
	SortOrder int
	CreatedBy string
	CreatedAt time.Time
	UpdatedBy string
	UpdatedAt time.Time
}
