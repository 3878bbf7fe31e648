package entity

import "time"

// MaterialType representa un tipo de material del catálogo.
// A diferencia de las entradas de diccionario genéricas lleva color de
// visualización y flag de habilitado.
type MaterialType struct {
	ID        string
	Code      string // generado "WZ-" + 8 hex en mayúsculas cuando lo crea una importación
	Name      string
	Color     string
	Enabled   bool
	SortOrder int
	CreatedBy string
	CreatedAt time.Time
	UpdatedBy string
	UpdatedAt time.Time
}
