package codegen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// SuffixLen largo del sufijo aleatorio de los códigos de ítem.
const SuffixLen = 5

// Generator produce códigos de ítem con forma PREFIX-<timestamp a segundo>-<sufijo>.
// Now y Suffix son inyectables para que los tests sean deterministas; en
// producción se usan el reloj del sistema y un sufijo alfanumérico aleatorio.
type Generator struct {
	Prefix string
	Now    func() time.Time
	Suffix func(n int) string
}

// New construye un generador con reloj y fuente de sufijos por defecto.
func New(prefix string) *Generator {
	return &Generator{
		Prefix: prefix,
		Now:    time.Now,
		Suffix: randomSuffix,
	}
}

// Generate devuelve un código que exists reporta como libre. El sufijo es
// aleatorio y corto, así que la colisión es posible aunque improbable: se
// reintenta con un sufijo fresco hasta confirmar unicidad. Nunca se devuelve
// un candidato sin reverificar contra exists en esa misma iteración.
func (g *Generator) Generate(exists func(candidate string) bool) string {
	for {
		candidate := fmt.Sprintf("%s-%s-%s", g.Prefix, g.Now().Format("20060102150405"), g.Suffix(SuffixLen))
		if !exists(candidate) {
			return candidate
		}
	}
}

// MaterialTypeCode genera el código de un tipo de material creado al vuelo:
// "WZ-" + 8 caracteres hex en mayúsculas.
func MaterialTypeCode() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return "WZ-" + strings.ToUpper(hex.EncodeToString(buf))
}

func randomSuffix(n int) string {
	var sb strings.Builder
	max := big.NewInt(int64(len(suffixAlphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// rand.Reader no falla en la práctica; degradar a 'A' mantiene el formato
			sb.WriteByte('A')
			continue
		}
		sb.WriteByte(suffixAlphabet[idx.Int64()])
	}
	return sb.String()
}
