package status

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status estado derivado de un ítem de almacén.
type Status string

const (
	Normal       Status = "normal"
	Low          Status = "low"
	Out          Status = "out"
	Expired      Status = "expired"
	ExpiringSoon Status = "expiring_soon"
)

// DefaultThreshold umbral asumido cuando el tipo de material no tiene
// política de umbral habilitada.
const DefaultThreshold = 5

// ExpiryWindow antelación con la que un vencimiento futuro se reporta
// como próximo a vencer.
const ExpiryWindow = 30 * 24 * time.Hour

// Compute deriva el estado de un ítem a partir de su cantidad, su fecha de
// vencimiento (opcional) y el umbral de su tipo (opcional, ver DefaultThreshold).
// El orden de evaluación es deliberado: el vencimiento domina a la cantidad,
// un ítem vencido se reporta Expired aunque su stock sea cero.
//
//  1. expiry < now                 -> Expired
//  2. expiry <= now + 30 días      -> ExpiringSoon
//  3. quantity == 0                -> Out
//  4. quantity <= umbral efectivo  -> Low
//  5. resto                        -> Normal
func Compute(quantity decimal.Decimal, expiryDate *time.Time, threshold *int) Status {
	return ComputeAt(time.Now(), quantity, expiryDate, threshold)
}

// ComputeAt versión con instante de referencia explícito (tests deterministas).
func ComputeAt(now time.Time, quantity decimal.Decimal, expiryDate *time.Time, threshold *int) Status {
	if expiryDate != nil {
		if expiryDate.Before(now) {
			return Expired
		}
		if !expiryDate.After(now.Add(ExpiryWindow)) {
			return ExpiringSoon
		}
	}
	if quantity.IsZero() {
		return Out
	}
	effective := DefaultThreshold
	if threshold != nil {
		effective = *threshold
	}
	if quantity.LessThanOrEqual(decimal.NewFromInt(int64(effective))) {
		return Low
	}
	return Normal
}
