package dto

import "time"

// CreateThresholdPolicyRequest entrada para crear una política de umbral.
type CreateThresholdPolicyRequest struct {
	TypeID    string `json:"type_id" validate:"required"`
	Threshold int    `json:"threshold" validate:"gte=0"`
	Enabled   *bool  `json:"enabled"` // por defecto habilitada
}

// UpdateThresholdPolicyRequest entrada para actualizar una política.
type UpdateThresholdPolicyRequest struct {
	Threshold *int  `json:"threshold" validate:"omitempty,gte=0"`
	Enabled   *bool `json:"enabled"`
}

// ThresholdPolicyResponse salida de una política de umbral.
type ThresholdPolicyResponse struct {
	ID        string    `json:"id"`
	TypeID    string    `json:"type_id"`
	Threshold int       `json:"threshold"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ThresholdPolicyListResponse lista de políticas.
type ThresholdPolicyListResponse struct {
	Items []ThresholdPolicyResponse `json:"items"`
	Total int                       `json:"total"`
}
