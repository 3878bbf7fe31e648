package codegen_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Almacen-api/internal/domain/codegen"
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
}

// sequencedSuffix devuelve sufijos predecibles S0001, S0002, ... para poder
// forzar colisiones controladas.
func sequencedSuffix() func(n int) string {
	i := 0
	return func(n int) string {
		i++
		s := "S000" + string(rune('0'+i))
		return s[:n]
	}
}

func TestGenerate_FormatoDelCodigo(t *testing.T) {
	g := &codegen.Generator{Prefix: "WZ", Now: fixedClock, Suffix: func(n int) string { return "AB12C" }}

	code := g.Generate(func(string) bool { return false })

	assert.Equal(t, "WZ-20250301093000-AB12C", code)
}

// TestGenerate_ReintentaHastaUnicidad fuerza que exists devuelva true para los
// primeros K candidatos y verifica que el generador reintenta exactamente K
// veces antes de devolver un código libre.
func TestGenerate_ReintentaHastaUnicidad(t *testing.T) {
	const k = 3
	g := &codegen.Generator{Prefix: "WZ", Now: fixedClock, Suffix: sequencedSuffix()}

	calls := 0
	code := g.Generate(func(candidate string) bool {
		calls++
		return calls <= k // los primeros K chocan
	})

	require.NotEmpty(t, code)
	assert.Equal(t, k+1, calls, "debe consultar exists una vez por candidato, K colisiones + 1 libre")
}

func TestGenerate_NuncaDevuelveCodigoOcupado(t *testing.T) {
	ocupados := map[string]bool{}
	g := codegen.New("WZ")

	// Marcar como ocupado cada candidato par para obligar reintentos
	consulta := 0
	code := g.Generate(func(candidate string) bool {
		consulta++
		if consulta%2 == 1 {
			ocupados[candidate] = true
			return true
		}
		return ocupados[candidate]
	})

	assert.False(t, ocupados[code], "el código devuelto no puede estar ocupado al momento de devolverlo")
}

func TestMaterialTypeCode_Formato(t *testing.T) {
	code := codegen.MaterialTypeCode()

	require.True(t, strings.HasPrefix(code, "WZ-"))
	hexPart := strings.TrimPrefix(code, "WZ-")
	assert.Len(t, hexPart, 8)
	assert.Equal(t, strings.ToUpper(hexPart), hexPart, "el hex va en mayúsculas")
	for _, r := range hexPart {
		assert.Contains(t, "0123456789ABCDEF", string(r))
	}
}
