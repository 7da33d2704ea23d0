package invoice

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// DefaultNumberPrefix prefijo cuando el llamador no indica uno.
const DefaultNumberPrefix = "INV"

// NumberGenerator genera números de documento sin coordinación externa:
// prefijo-últimos 6 dígitos de epoch ms-aleatorio de 3 dígitos.
// No garantiza unicidad global; basta para un borrador de un solo usuario.
type NumberGenerator struct {
	now  func() time.Time
	intn func(n int) int
}

// NewNumberGenerator construye el generador con reloj y aleatoriedad del sistema.
func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{now: time.Now, intn: rand.IntN}
}

// NewNumberGeneratorWith permite inyectar reloj y fuente aleatoria (tests).
func NewNumberGeneratorWith(now func() time.Time, intn func(n int) int) *NumberGenerator {
	return &NumberGenerator{now: now, intn: intn}
}

// Generate devuelve p.ej. "INV-482913-007".
func (g *NumberGenerator) Generate(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = DefaultNumberPrefix
	}
	millis := g.now().UnixMilli()
	return fmt.Sprintf("%s-%06d-%03d", prefix, millis%1_000_000, g.intn(1000))
}

var defaultGenerator = NewNumberGenerator()

// GenerateDocumentNumber genera un número con el reloj y la aleatoriedad del sistema.
func GenerateDocumentNumber(prefix string) string {
	return defaultGenerator.Generate(prefix)
}
