package status_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/jhoicas/Almacen-api/internal/domain/status"
)

// ──────────────────────────────────────────────────────────────────────────────
// El motor de estado es una función pura evaluada en orden de prioridad:
// Expired > ExpiringSoon > Out > Low > Normal. Estos tests fijan ese orden:
// si alguien reordena las ramas, el caso "vencido con stock cero" deja de
// reportar Expired y el test falla de inmediato.
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }
func intPtr(n int) *int              { return &n }

func TestCompute_VencidoDominaSiempre(t *testing.T) {
	ayer := datePtr(testNow.AddDate(0, 0, -1))

	// Vencido gana aunque la cantidad diga Out, Low o Normal
	assert.Equal(t, status.Expired, status.ComputeAt(testNow, decimal.Zero, ayer, intPtr(5)))
	assert.Equal(t, status.Expired, status.ComputeAt(testNow, decimal.NewFromInt(3), ayer, intPtr(5)))
	assert.Equal(t, status.Expired, status.ComputeAt(testNow, decimal.NewFromInt(1000), ayer, intPtr(5)))
}

func TestCompute_ProximoAVencer(t *testing.T) {
	en10Dias := datePtr(testNow.AddDate(0, 0, 10))
	en45Dias := datePtr(testNow.AddDate(0, 0, 45))

	// Dentro de la ventana de 30 días -> ExpiringSoon, aunque el stock sea normal
	assert.Equal(t, status.ExpiringSoon, status.ComputeAt(testNow, decimal.NewFromInt(3), en10Dias, intPtr(5)))
	assert.Equal(t, status.ExpiringSoon, status.ComputeAt(testNow, decimal.NewFromInt(100), en10Dias, intPtr(5)))

	// Fuera de la ventana la cantidad vuelve a mandar
	assert.Equal(t, status.Low, status.ComputeAt(testNow, decimal.NewFromInt(3), en45Dias, intPtr(5)))
}

func TestCompute_SinVencimientoMandaLaCantidad(t *testing.T) {
	assert.Equal(t, status.Out, status.ComputeAt(testNow, decimal.Zero, nil, intPtr(5)))
	assert.Equal(t, status.Low, status.ComputeAt(testNow, decimal.NewFromInt(3), nil, intPtr(5)))
	assert.Equal(t, status.Low, status.ComputeAt(testNow, decimal.NewFromInt(5), nil, intPtr(5)))
	assert.Equal(t, status.Normal, status.ComputeAt(testNow, decimal.NewFromInt(6), nil, intPtr(5)))
}

func TestCompute_UmbralPorDefectoCinco(t *testing.T) {
	// Sin política habilitada se asume umbral 5
	assert.Equal(t, status.Low, status.ComputeAt(testNow, decimal.NewFromInt(5), nil, nil))
	assert.Equal(t, status.Normal, status.ComputeAt(testNow, decimal.NewFromInt(6), nil, nil))
}

func TestCompute_UmbralDePolitica(t *testing.T) {
	// Con política de umbral 20, una cantidad de 15 es Low y 21 Normal
	assert.Equal(t, status.Low, status.ComputeAt(testNow, decimal.NewFromInt(15), nil, intPtr(20)))
	assert.Equal(t, status.Normal, status.ComputeAt(testNow, decimal.NewFromInt(21), nil, intPtr(20)))
}

func TestCompute_CantidadDecimal(t *testing.T) {
	q, _ := decimal.NewFromString("4.5")
	assert.Equal(t, status.Low, status.ComputeAt(testNow, q, nil, intPtr(5)))
}

func TestCompute_BordeDeLaVentana(t *testing.T) {
	// Exactamente now + 30 días sigue dentro de la ventana (<=)
	justo := datePtr(testNow.Add(status.ExpiryWindow))
	assert.Equal(t, status.ExpiringSoon, status.ComputeAt(testNow, decimal.NewFromInt(50), justo, nil))
}
