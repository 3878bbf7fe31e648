package dto

import "time"

// CreateRosterEntryRequest entrada para el alta directa de una entrada de
// cuadrante. A diferencia de la importación, el alta directa rechaza el
// duplicado exacto (fecha, turno, persona).
type CreateRosterEntryRequest struct {
	Date         time.Time `json:"date" validate:"required"`
	ShiftID      string    `json:"shift_id" validate:"required"`
	PersonName   string    `json:"person_name" validate:"required,min=1,max=100"`
	Phone        string    `json:"phone" validate:"required"`
	RankID       *string   `json:"rank_id"`
	DepartmentID *string   `json:"department_id"`
	TitleID      *string   `json:"title_id"`
	Remark       string    `json:"remark"`
}

// RosterEntryResponse salida de una entrada de cuadrante.
type RosterEntryResponse struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	ShiftID      string    `json:"shift_id"`
	PersonName   string    `json:"person_name"`
	Phone        string    `json:"phone"`
	RankID       *string   `json:"rank_id,omitempty"`
	DepartmentID *string   `json:"department_id,omitempty"`
	TitleID      *string   `json:"title_id,omitempty"`
	Remark       string    `json:"remark"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RosterListResponse lista de entradas de cuadrante.
type RosterListResponse struct {
	Items []RosterEntryResponse `json:"items"`
	Total int                   `json:"total"`
}
