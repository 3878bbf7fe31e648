package entity

import "time"

// ThresholdPolicy política de umbral de stock bajo para un tipo de material.
// A lo sumo una política habilitada por tipo en operación normal; la unicidad
// la chequea el caso de uso en el alta, el modelo de datos no la impone.
type ThresholdPolicy struct {
	ID        string
	TypeID    string
	Threshold int
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
