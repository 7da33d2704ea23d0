package draft

import (
	"fmt"
	"strings"

	"github.com/ranjan0044/invoice-builder/internal/domain"
	"github.com/ranjan0044/invoice-builder/internal/domain/entity"
)

// CustomFieldPatch cambio parcial de un campo personalizado.
type CustomFieldPatch struct {
	Label *string
	Value *string
}

// AddCustomField agrega un campo al final. La etiqueta es obligatoria
// (tras recortar espacios); sin ella el borrador no cambia.
func (e *Editor) AddCustomField(d entity.DocumentDraft, label, value string) (entity.DocumentDraft, entity.CustomField, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return d, entity.CustomField{}, domain.ErrLabelRequired
	}
	field := entity.CustomField{
		ID:    e.newID(),
		Label: label,
		Value: strings.TrimSpace(value),
	}
	out := d.Clone()
	out.CustomFields = append(out.CustomFields, field)
	return out, field, nil
}

// UpdateCustomField fusiona p sobre el campo id.
func (e *Editor) UpdateCustomField(d entity.DocumentDraft, id string, p CustomFieldPatch) (entity.DocumentDraft, error) {
	idx := d.CustomFieldIndex(id)
	if idx < 0 {
		return d, fmt.Errorf("campo %s: %w", id, domain.ErrNotFound)
	}
	if p.Label != nil && strings.TrimSpace(*p.Label) == "" {
		return d, domain.ErrLabelRequired
	}
	out := d.Clone()
	if p.Label != nil {
		out.CustomFields[idx].Label = strings.TrimSpace(*p.Label)
	}
	if p.Value != nil {
		out.CustomFields[idx].Value = *p.Value
	}
	return out, nil
}

// RemoveCustomField quita el campo id; un id inexistente no cambia nada.
func (e *Editor) RemoveCustomField(d entity.DocumentDraft, id string) entity.DocumentDraft {
	idx := d.CustomFieldIndex(id)
	if idx < 0 {
		return d
	}
	out := d.Clone()
	out.CustomFields = append(out.CustomFields[:idx], out.CustomFields[idx+1:]...)
	return out
}

// SetLogo guarda el logo del emisor (data-URL ya procesada por el llamador).
func (e *Editor) SetLogo(d entity.DocumentDraft, dataURL string) entity.DocumentDraft {
	out := d.Clone()
	out.Business.Logo = dataURL
	return out
}

// ClearLogo quita el logo del emisor.
func (e *Editor) ClearLogo(d entity.DocumentDraft) entity.DocumentDraft {
	return e.SetLogo(d, "")
}
