package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Almacen-api/internal/domain/status"
)

// InventoryItem representa un ítem de almacén.
// ExpiryDate y Status son derivados: el primero de ProductionDate + ShelfLifeMonths,
// el segundo del motor de estado (cantidad, umbral del tipo y vencimiento).
type InventoryItem struct {
	ID              string
	Code            string // único; lo genera el sistema si no viene informado
	Name            string
	TypeID          string // tipo de material
	Quantity        decimal.Decimal
	Unit            string
	Location        string
	Specification   string
	ProductionDate  *time.Time
	ShelfLifeMonths *int
	ExpiryDate      *time.Time
	Status          status.Status
	Remark          string
	Deleted         bool // baja lógica, nunca se elimina físicamente
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ComputeExpiry deriva la fecha de vencimiento: producción + meses de vida útil.
// Si falta cualquiera de los dos insumos el vencimiento queda sin valor.
func (i *InventoryItem) ComputeExpiry() {
	if i.ProductionDate == nil || i.ShelfLifeMonths == nil {
		i.ExpiryDate = nil
		return
	}
	exp := i.ProductionDate.AddDate(0, *i.ShelfLifeMonths, 0)
	i.ExpiryDate = &exp
}
