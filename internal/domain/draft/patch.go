package draft

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ranjan0044/invoice-builder/internal/domain"
	"github.com/ranjan0044/invoice-builder/internal/domain/entity"
)

// Patch cambio parcial de primer nivel. Un campo nil significa "sin cambio";
// los valores anidados (Business, Client, Items, CustomFields) reemplazan completo.
type Patch struct {
	Kind         *entity.DocumentKind
	Title        *string
	Business     *entity.Party
	Client       *entity.Party
	Number       *string
	IssueDate    *time.Time
	DueDate      *time.Time
	Currency     *string
	TaxRate      *decimal.Decimal
	Discount     *decimal.Decimal
	Items        []entity.LineItem // nil o vacío: sin cambio (Items nunca queda vacío)
	Notes        *string
	Terms        *string
	CustomFields *[]entity.CustomField
	Template     *string
}

// ApplyUpdate fusión superficial de p sobre d. No toca campos derivados:
// re-derivar vencimiento o aplicar la transición de tipo es responsabilidad de Edit.
func ApplyUpdate(d entity.DocumentDraft, p Patch) entity.DocumentDraft {
	out := d.Clone()
	if p.Kind != nil {
		out.Kind = *p.Kind
	}
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Business != nil {
		out.Business = *p.Business
	}
	if p.Client != nil {
		out.Client = *p.Client
	}
	if p.Number != nil {
		out.Number = *p.Number
	}
	if p.IssueDate != nil {
		out.IssueDate = DateOnly(*p.IssueDate)
	}
	if p.DueDate != nil {
		out.DueDate = DateOnly(*p.DueDate)
	}
	if p.Currency != nil {
		out.Currency = *p.Currency
	}
	if p.TaxRate != nil {
		out.TaxRate = *p.TaxRate
	}
	if p.Discount != nil {
		out.Discount = *p.Discount
	}
	if len(p.Items) > 0 {
		out.Items = append([]entity.LineItem(nil), p.Items...)
	}
	if p.Notes != nil {
		out.Notes = *p.Notes
	}
	if p.Terms != nil {
		out.Terms = *p.Terms
	}
	if p.CustomFields != nil {
		out.CustomFields = append([]entity.CustomField(nil), (*p.CustomFields)...)
	}
	if p.Template != nil {
		out.Template = *p.Template
	}
	return out
}

// IdentifyRows prepara las listas que reemplaza p: las líneas y campos sin id reciben
// uno nuevo; un id repetido dentro de la misma lista es ErrInvalidInput.
// No modifica los slices de p.
func (e *Editor) IdentifyRows(p Patch) (Patch, error) {
	if len(p.Items) > 0 {
		items := append([]entity.LineItem(nil), p.Items...)
		seen := make(map[string]struct{}, len(items))
		for i := range items {
			id, err := e.rowID(items[i].ID, seen)
			if err != nil {
				return p, fmt.Errorf("items: %w", err)
			}
			items[i].ID = id
		}
		p.Items = items
	}
	if p.CustomFields != nil {
		fields := append([]entity.CustomField(nil), (*p.CustomFields)...)
		seen := make(map[string]struct{}, len(fields))
		for i := range fields {
			id, err := e.rowID(fields[i].ID, seen)
			if err != nil {
				return p, fmt.Errorf("customFields: %w", err)
			}
			fields[i].ID = id
		}
		p.CustomFields = &fields
	}
	return p, nil
}

func (e *Editor) rowID(id string, seen map[string]struct{}) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = e.newID()
	}
	if _, dup := seen[id]; dup {
		return "", fmt.Errorf("id %q repetido: %w", id, domain.ErrInvalidInput)
	}
	seen[id] = struct{}{}
	return id, nil
}

// Edit aplica p y luego las reglas derivadas, en este orden:
//  1. fusión superficial (sin el tipo de documento)
//  2. marcas de override por vencimiento o moneda fijados a mano
//  3. transición de tipo, si cambia
//  4. re-cálculo del vencimiento si cambió la fecha de emisión
func (e *Editor) Edit(d entity.DocumentDraft, p Patch) entity.DocumentDraft {
	kind := p.Kind
	p.Kind = nil

	next := ApplyUpdate(d, p)
	if p.Currency != nil {
		next.CurrencyOverridden = true
	}
	if p.DueDate != nil {
		next.DueDateOverridden = true
	}
	if kind != nil {
		next = e.SwitchKind(next, *kind)
	}
	return e.RederiveDueDate(d, next)
}

// RederiveDueDate recalcula el vencimiento (emisión + DueDays) cuando la fecha de
// emisión cambió entre prev y next, salvo que el usuario lo haya fijado a mano.
func (e *Editor) RederiveDueDate(prev, next entity.DocumentDraft) entity.DocumentDraft {
	if next.DueDateOverridden || next.IssueDate.IsZero() || next.IssueDate.Equal(prev.IssueDate) {
		return next
	}
	next.DueDate = next.IssueDate.AddDate(0, 0, e.rules.DueDays)
	return next
}

// SwitchKind transición única del tipo de documento:
//   - non_tax → tax: las líneas con tasa 0 pasan a la tasa GST por defecto y la moneda
//     pasa a INR salvo que el usuario la haya elegido en la sesión.
//   - tax → non_tax: todas las tasas de línea a 0; la moneda se conserva.
//
// Mismo tipo o tipo inválido: sin cambios.
func (e *Editor) SwitchKind(d entity.DocumentDraft, kind entity.DocumentKind) entity.DocumentDraft {
	if !kind.Valid() || d.Kind == kind {
		return d
	}
	out := d.Clone()
	out.Kind = kind
	for i := range out.Items {
		switch kind {
		case entity.DocumentKindTax:
			if out.Items[i].TaxRate.IsZero() {
				out.Items[i].TaxRate = e.rules.GSTRate
			}
		case entity.DocumentKindNonTax:
			out.Items[i].TaxRate = decimal.Zero
		}
	}
	switch {
	case kind == entity.DocumentKindTax && !out.CurrencyOverridden:
		out.Currency = entity.CurrencyINR
	case out.Currency == "":
		out.Currency = entity.CurrencyUSD
	}
	return out
}
