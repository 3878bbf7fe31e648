package dto

import "time"

// CreateDictionaryEntryRequest entrada para crear una entrada de diccionario.
// Code vacío usa el nombre como código (mismo criterio que la importación).
type CreateDictionaryEntryRequest struct {
	Code      string `json:"code"`
	Name      string `json:"name" validate:"required,min=1,max=100"`
	SortOrder int    `json:"sort_order"`
}

// DictionaryEntryResponse salida de una entrada de diccionario.
type DictionaryEntryResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DictionaryListResponse lista de entradas de una categoría.
type DictionaryListResponse struct {
	Category string                    `json:"category"`
	Items    []DictionaryEntryResponse `json:"items"`
	Total    int                       `json:"total"`
}
