package entity

import (
	"time"

	"github.com/ranjan0044/invoice-builder/internal/domain/viewstate"
)

// Session sesión de edición: un único dueño lógico del borrador mientras dura.
// Al terminar (o expirar) el borrador se descarta; no hay ruta de guardado.
type Session struct {
	ID        string
	Draft     DocumentDraft
	View      viewstate.State
	CreatedAt time.Time
	UpdatedAt time.Time
}
