package dto

import "time"

// CreateMaterialTypeRequest entrada para crear un tipo de material.
// Code vacío hace que el sistema genere uno ("WZ-" + 8 hex).
type CreateMaterialTypeRequest struct {
	Code      string `json:"code"`
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Color     string `json:"color"`
	Enabled   *bool  `json:"enabled"`
	SortOrder int    `json:"sort_order"`
}

// UpdateMaterialTypeRequest entrada para actualizar un tipo de material.
type UpdateMaterialTypeRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=100"`
	Color     *string `json:"color"`
	Enabled   *bool   `json:"enabled"`
	SortOrder *int    `json:"sort_order"`
}

// MaterialTypeResponse salida de un tipo de material.
type MaterialTypeResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Enabled   bool      `json:"enabled"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MaterialTypeListResponse lista de tipos de material.
type MaterialTypeListResponse struct {
	Items []MaterialTypeResponse `json:"items"`
	Total int                    `json:"total"`
}
