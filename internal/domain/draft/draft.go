// Package draft implementa el contrato de mutación del borrador: fusión superficial
// e inmutable de cambios, más las reglas derivadas que el editor invoca explícitamente
// (re-cálculo del vencimiento y transición tax ↔ non_tax).
package draft

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ranjan0044/invoice-builder/internal/domain/entity"
)

// Rules parámetros de las reglas derivadas.
type Rules struct {
	DueDays int             // vencimiento = emisión + DueDays
	GSTRate decimal.Decimal // tasa por defecto al pasar a factura con impuestos
}

// DefaultRules 15 días de vencimiento y GST plano del 18%.
func DefaultRules() Rules {
	return Rules{DueDays: 15, GSTRate: decimal.NewFromInt(18)}
}

// DefaultTitle título inicial del documento.
const DefaultTitle = "Invoice"

// Editor aplica cambios al borrador. No guarda estado: cada operación recibe
// un borrador y devuelve uno nuevo, sin modificar el recibido.
type Editor struct {
	rules Rules
	newID func() string
}

// NewEditor construye el editor con ids UUID.
func NewEditor(rules Rules) *Editor {
	return NewEditorWith(rules, uuid.NewString)
}

// NewEditorWith permite inyectar el generador de ids (tests).
func NewEditorWith(rules Rules, newID func() string) *Editor {
	return &Editor{rules: rules, newID: newID}
}

// Rules devuelve los parámetros del editor.
func (e *Editor) Rules() Rules { return e.rules }

// DateOnly trunca a medianoche UTC; las fechas del borrador no llevan hora.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// New crea un borrador nuevo con una línea vacía.
func (e *Editor) New(kind entity.DocumentKind, number string, today time.Time) entity.DocumentDraft {
	issue := DateOnly(today)
	d := entity.DocumentDraft{
		Kind:      entity.DocumentKindNonTax,
		Title:     DefaultTitle,
		Number:    number,
		IssueDate: issue,
		DueDate:   issue.AddDate(0, 0, e.rules.DueDays),
		Currency:  entity.CurrencyUSD,
		Template:  entity.DefaultTemplateID,
	}
	d.Items = []entity.LineItem{e.blankItem(d.Kind)}
	if kind == entity.DocumentKindTax {
		d = e.SwitchKind(d, kind)
	}
	return d
}

func (e *Editor) blankItem(kind entity.DocumentKind) entity.LineItem {
	rate := decimal.Zero
	if kind == entity.DocumentKindTax {
		rate = e.rules.GSTRate
	}
	return entity.LineItem{
		ID:        e.newID(),
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: decimal.Zero,
		TaxRate:   rate,
		Discount:  decimal.Zero,
	}
}
