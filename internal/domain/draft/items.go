package draft

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ranjan0044/invoice-builder/internal/domain"
	"github.com/ranjan0044/invoice-builder/internal/domain/entity"
)

// ItemPatch cambio parcial de una línea.
type ItemPatch struct {
	Description *string
	TaxCode     *string
	Quantity    *decimal.Decimal
	UnitPrice   *decimal.Decimal
	TaxRate     *decimal.Decimal
	Discount    *decimal.Decimal
}

func (p ItemPatch) apply(item entity.LineItem) entity.LineItem {
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.TaxCode != nil {
		item.TaxCode = *p.TaxCode
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.UnitPrice != nil {
		item.UnitPrice = *p.UnitPrice
	}
	if p.TaxRate != nil {
		item.TaxRate = *p.TaxRate
	}
	if p.Discount != nil {
		item.Discount = *p.Discount
	}
	return item
}

// AddItem agrega al final una línea vacía (cantidad 1; tasa GST por defecto en facturas con impuestos).
func (e *Editor) AddItem(d entity.DocumentDraft) (entity.DocumentDraft, entity.LineItem) {
	item := e.blankItem(d.Kind)
	out := d.Clone()
	out.Items = append(out.Items, item)
	return out, item
}

// UpdateItem fusiona p sobre la línea id.
func (e *Editor) UpdateItem(d entity.DocumentDraft, id string, p ItemPatch) (entity.DocumentDraft, error) {
	idx := d.ItemIndex(id)
	if idx < 0 {
		return d, fmt.Errorf("línea %s: %w", id, domain.ErrNotFound)
	}
	out := d.Clone()
	out.Items[idx] = p.apply(out.Items[idx])
	return out, nil
}

// RemoveItem elimina la línea id. Quitar la última línea restante, o un id
// inexistente, no cambia nada: el documento siempre conserva al menos una fila.
func (e *Editor) RemoveItem(d entity.DocumentDraft, id string) entity.DocumentDraft {
	idx := d.ItemIndex(id)
	if idx < 0 || len(d.Items) <= 1 {
		return d
	}
	out := d.Clone()
	out.Items = append(out.Items[:idx], out.Items[idx+1:]...)
	return out
}

// DuplicateItem inserta una copia de la línea id justo después de ella, con id nuevo.
func (e *Editor) DuplicateItem(d entity.DocumentDraft, id string) (entity.DocumentDraft, entity.LineItem, error) {
	idx := d.ItemIndex(id)
	if idx < 0 {
		return d, entity.LineItem{}, fmt.Errorf("línea %s: %w", id, domain.ErrNotFound)
	}
	cp := d.Items[idx]
	cp.ID = e.newID()

	out := d.Clone()
	items := make([]entity.LineItem, 0, len(out.Items)+1)
	items = append(items, out.Items[:idx+1]...)
	items = append(items, cp)
	items = append(items, out.Items[idx+1:]...)
	out.Items = items
	return out, cp, nil
}
