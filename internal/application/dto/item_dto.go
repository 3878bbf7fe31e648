package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un ítem de almacén.
// Code es opcional: vacío hace que el sistema genere uno único.
type CreateItemRequest struct {
	Code            string          `json:"code"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	TypeID          string          `json:"type_id" validate:"required"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	Location        string          `json:"location"`
	Specification   string          `json:"specification"`
	ProductionDate  *time.Time      `json:"production_date"`
	ShelfLifeMonths *int            `json:"shelf_life_months"`
	Remark          string          `json:"remark"`
}

// UpdateItemRequest entrada para actualizar un ítem (campos opcionales).
type UpdateItemRequest struct {
	Name            *string          `json:"name" validate:"omitempty,min=1,max=200"`
	TypeID          *string          `json:"type_id"`
	Quantity        *decimal.Decimal `json:"quantity"`
	Unit            *string          `json:"unit"`
	Location        *string          `json:"location"`
	Specification   *string          `json:"specification"`
	ProductionDate  *time.Time       `json:"production_date"`
	ShelfLifeMonths *int             `json:"shelf_life_months"`
	Remark          *string          `json:"remark"`
}

// ItemResponse salida de un ítem de almacén con sus campos derivados.
type ItemResponse struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	TypeID          string          `json:"type_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	Location        string          `json:"location"`
	Specification   string          `json:"specification"`
	ProductionDate  *time.Time      `json:"production_date,omitempty"`
	ShelfLifeMonths *int            `json:"shelf_life_months,omitempty"`
	ExpiryDate      *time.Time      `json:"expiry_date,omitempty"`
	Status          string          `json:"status"`
	Remark          string          `json:"remark"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ItemListResponse lista de ítems activos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}
