package drafting

import (
	"context"

	"github.com/ranjan0044/invoice-builder/internal/domain/entity"
)

// SessionStore guarda las sesiones de edición en memoria.
// Update ejecuta lectura-modificación-escritura de forma atómica para una sesión:
// si fn retorna error la sesión queda como estaba.
type SessionStore interface {
	Create(s entity.Session) error
	Get(id string) (entity.Session, error)
	Update(id string, fn func(s *entity.Session) error) (entity.Session, error)
	Delete(id string) bool
	Len() int
}

// LogoProcessor convierte el archivo subido por el selector en data-URL lista para mostrar.
type LogoProcessor interface {
	Process(data []byte) (string, error)
}

// SpreadsheetExporter exporta la vista previa a una hoja de cálculo.
type SpreadsheetExporter interface {
	Export(ctx context.Context, p Preview) ([]byte, error)
}

// PrintRenderer genera la vista imprimible (HTML) de la vista previa.
type PrintRenderer interface {
	RenderHTML(p Preview) (string, error)
}
