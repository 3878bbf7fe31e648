package entity

import "time"

// RosterEntry entrada del cuadrante de turnos: una persona asignada a un
// turno en una fecha. Rango, departamento y puesto son referencias opcionales.
type RosterEntry struct {
	ID           string
	Date         time.Time
	ShiftID      string
	PersonName   string
	Phone        string
	RankID       *string
	DepartmentID *string
	TitleID      *string
	Remark       string
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedBy    string
	UpdatedAt    time.Time
}
