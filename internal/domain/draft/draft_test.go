package draft_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranjan0044/invoice-builder/internal/domain"
	"github.com/ranjan0044/invoice-builder/internal/domain/draft"
	"github.com/ranjan0044/invoice-builder/internal/domain/entity"
)

var today = time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)

// newEditor editor con ids secuenciales id-1, id-2, ...
func newEditor() *draft.Editor {
	n := 0
	return draft.NewEditorWith(draft.DefaultRules(), func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }

func TestNew_Defaults(t *testing.T) {
	e := newEditor()
	d := e.New(entity.DocumentKindNonTax, "INV-000001-001", today)

	assert.Equal(t, entity.DocumentKindNonTax, d.Kind)
	assert.Equal(t, "Invoice", d.Title)
	assert.Equal(t, "INV-000001-001", d.Number)
	assert.Equal(t, entity.CurrencyUSD, d.Currency)
	assert.Equal(t, entity.DefaultTemplateID, d.Template)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), d.IssueDate)
	assert.Equal(t, time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC), d.DueDate)

	require.Len(t, d.Items, 1)
	assert.Equal(t, "id-1", d.Items[0].ID)
	assert.True(t, d.Items[0].Quantity.Equal(decimal.NewFromInt(1)))
	assert.True(t, d.Items[0].UnitPrice.IsZero())
	assert.True(t, d.Items[0].TaxRate.IsZero())
}

func TestNew_Tax(t *testing.T) {
	d := newEditor().New(entity.DocumentKindTax, "INV-1", today)

	assert.Equal(t, entity.DocumentKindTax, d.Kind)
	assert.Equal(t, entity.CurrencyINR, d.Currency)
	require.Len(t, d.Items, 1)
	assert.True(t, d.Items[0].TaxRate.Equal(dec("18")))
}

func TestSwitchKind_IdaYVuelta(t *testing.T) {
	e := newEditor()
	d := e.New(entity.DocumentKindNonTax, "INV-1", today)
	d, _ = e.AddItem(d)
	d, _ = e.AddItem(d)

	tax := e.SwitchKind(d, entity.DocumentKindTax)
	for _, it := range tax.Items {
		assert.True(t, it.TaxRate.Equal(dec("18")))
	}
	assert.Equal(t, entity.CurrencyINR, tax.Currency)

	// Una tasa distinta de 0 se conserva al pasar a tax y se anula al volver
	tax.Items[1].TaxRate = dec("5")
	back := e.SwitchKind(tax, entity.DocumentKindNonTax)
	for _, it := range back.Items {
		assert.True(t, it.TaxRate.IsZero())
	}
	assert.Equal(t, entity.CurrencyINR, back.Currency, "la moneda se conserva al volver a non_tax")

	again := e.SwitchKind(back, entity.DocumentKindTax)
	assert.True(t, again.Items[1].TaxRate.Equal(dec("18")))

	// El original no se modifica
	for _, it := range d.Items {
		assert.True(t, it.TaxRate.IsZero())
	}
}

func TestSwitchKind_ConservaTasaNoNula(t *testing.T) {
	e := newEditor()
	d := e.New(entity.DocumentKindNonTax, "INV-1", today)
	d.Items[0].TaxRate = dec("12")

	tax := e.SwitchKind(d, entity.DocumentKindTax)
	assert.True(t, tax.Items[0].TaxRate.Equal(dec("12")))
}

func TestSwitchKind_MonedaElegidaPorElUsuario(t *testing.T) {
	e := newEditor()
	d := e.New(entity.DocumentKindNonTax, "INV-1", today)
	d = e.Edit(d, draft.Patch{Currency: ptr("EUR")})
	require.True(t, d.CurrencyOverridden)

	tax := e.SwitchKind(d, entity.DocumentKindTax)
	assert.Equal(t, "EUR", tax.Currency)
}

func TestSwitchKind_MismoTipoOInvalido(t *testing.T) {
	e := newEditor()
	d := e.New(entity.DocumentKindTax, "INV-1", today)
	d.Items[0].TaxRate = dec("0")

	assert.Equal(t, d, e.SwitchKind(d, entity.DocumentKindTax))
	assert.Equal(t, d, e.SwitchKind(d, entity.DocumentKind("exempt")))
}

func TestApplyUpdate_FusionSuperficial(t *testing.T) {
	e := newEditor()
	d := e.New(entity.DocumentKindNonTax, "INV-1", today)
	d.Business = entity.Party{Name: "Acme", Email: "billing@acme.test", Logo: "data:image/png;base64,AAAA"}

	out := draft.ApplyUpdate(d, draft.Patch{
		Title:    ptr("Quotation"),
		Business: &entity.Party{Name: "Acme Ltd"},
		Notes:    ptr("Gracias"),
	})

	assert.Equal(t, "Quotation", out.Title)
	assert.Equal(t, "Gracias", out.Notes)
	// Los objetos anidados se reemplazan completos
	assert.Equal(t, entity.Party{Name: "Acme Ltd"}, out.Business)
	// Lo no mencionado queda igual
	assert.Equal(t, d.Number, out.Number)
	assert.Equal(t, d.Items, out.Items)
	// Sin efectos sobre el original
	assert.Equal(t, "Invoice", d.Title)
	assert.Equal(t, "Acme", d.Business.Name)
}

func TestApplyUpdate_NoTocaDerivados(t *testing.T) {
	e := newEditor()
	d := e.New(entity.DocumentKindNonTax, "INV-1", today)
	newIssue := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	out := draft.ApplyUpdate(d, draft.Patch{IssueDate: &newIssue, Kind: ptr(entity.DocumentKindTax)})
	assert.Equal(t, newIssue, out.IssueDate)
	assert.Equal(t, d.DueDate, out.DueDate, "ApplyUpdate no re-deriva el vencimiento")
	assert.Equal(t, entity.DocumentKindTax, out.Kind)
	assert.True(t, out.Items[0].TaxRate.IsZero(), "ApplyUpdate no aplica la transición de tipo")
	assert.False(t, out.CurrencyOverridden)
}

func TestApplyUpdate_ItemsVaciosSeIgnoran(t *testing.T) {
	e := newEditor()
	d := e.New(entity.DocumentKindNonTax, "INV-1", today)

	out := draft.ApplyUpdate(d, draft.Patch{Items: []entity.LineItem{}})
	require.Len(t, out.Items, 1)
	assert.Equal(t, d.Items, out.Items)

	replaced := draft.ApplyUpdate(d, draft.Patch{Items: []entity.LineItem{{ID: "x"}, {ID: "y"}}})
	assert.Len(t, replaced.Items, 2)
}

func TestIdentifyRows(t *testing.T) {
	e := newEditor()
	items := []entity.LineItem{{ID: ""}, {ID: "keep"}, {ID: "  "}}
	fields := []entity.CustomField{{Label: "PO"}}

	p, err := e.IdentifyRows(draft.Patch{Items: items, CustomFields: &fields})
	require.NoError(t, err)
	assert.Equal(t, "id-1", p.Items[0].ID)
	assert.Equal(t, "keep", p.Items[1].ID)
	assert.Equal(t, "id-2", p.Items[2].ID)
	assert.Equal(t, "id-3", (*p.CustomFields)[0].ID)
	// Los slices de entrada no se modifican
	assert.Empty(t, items[0].ID)
	assert.Empty(t, fields[0].ID)

	_, err = e.IdentifyRows(draft.Patch{Items: []entity.LineItem{{ID: "x"}, {ID: "x"}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	dup := []entity.CustomField{{ID: "f"}, {ID: "f"}}
	_, err = e.IdentifyRows(draft.Patch{CustomFields: &dup})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Sin listas: sin cambios
	p, err = e.IdentifyRows(draft.Patch{Title: ptr("Quotation")})
	require.NoError(t, err)
	assert.Nil(t, p.Items)
	assert.Nil(t, p.CustomFields)
}

func TestEdit_VencimientoSeRederiva(t *testing.T) {
	e := newEditor()
	d := e.New(entity.DocumentKindNonTax, "INV-1", today)
	newIssue := time.Date(2024, time.April, 20, 9, 0, 0, 0, time.UTC)

	out := e.Edit(d, draft.Patch{IssueDate: &newIssue})
	assert.Equal(t, time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC), out.IssueDate)
	assert.Equal(t, time.Date(2024, time.May, 5, 0, 0, 0, 0, time.UTC), out.DueDate)
	assert.False(t, out.DueDateOverridden)
}

func TestEdit_VencimientoFijadoAMano(t *testing.T) {
	e := newEditor()
	d := e.New(entity.DocumentKindNonTax, "INV-1", today)
	due := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	d = e.Edit(d, draft.Patch{DueDate: &due})
	require.True(t, d.DueDateOverridden)

	newIssue := time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC)
	d = e.Edit(d, draft.Patch{IssueDate: &newIssue})
	assert.Equal(t, due, d.DueDate)
}

func TestEdit_MismaFechaNoRederiva(t *testing.T) {
	e := newEditor()
	d := e.New(entity.DocumentKindNonTax, "INV-1", today)
	d.DueDate = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	same := d.IssueDate
	out := e.Edit(d, draft.Patch{IssueDate: &same, Title: ptr("Estimate")})
	assert.Equal(t, d.DueDate, out.DueDate)
}

func TestEdit_CambioDeTipo(t *testing.T) {
	e := newEditor()
	d := e.New(entity.DocumentKindNonTax, "INV-1", today)

	out := e.Edit(d, draft.Patch{Kind: ptr(entity.DocumentKindTax)})
	assert.Equal(t, entity.DocumentKindTax, out.Kind)
	assert.True(t, out.Items[0].TaxRate.Equal(dec("18")))
	assert.Equal(t, entity.CurrencyINR, out.Currency)

	// Moneda y tipo en el mismo cambio: gana la moneda elegida
	both := e.Edit(d, draft.Patch{Kind: ptr(entity.DocumentKindTax), Currency: ptr("GBP")})
	assert.Equal(t, "GBP", both.Currency)
	assert.True(t, both.CurrencyOverridden)
}

func TestItems(t *testing.T) {
	e := newEditor()
	d := e.New(entity.DocumentKindNonTax, "INV-1", today)

	d, added := e.AddItem(d)
	require.Len(t, d.Items, 2)
	assert.Equal(t, "id-2", added.ID)

	d, err := e.UpdateItem(d, added.ID, draft.ItemPatch{Description: ptr("Consultoría"), UnitPrice: ptr(dec("150"))})
	require.NoError(t, err)
	assert.Equal(t, "Consultoría", d.Items[1].Description)
	assert.True(t, d.Items[1].UnitPrice.Equal(dec("150")))
	assert.True(t, d.Items[1].Quantity.Equal(dec("1")), "los campos no enviados se conservan")

	_, err = e.UpdateItem(d, "no-existe", draft.ItemPatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	d, dup, err := e.DuplicateItem(d, "id-1")
	require.NoError(t, err)
	require.Len(t, d.Items, 3)
	assert.Equal(t, []string{"id-1", dup.ID, "id-2"}, []string{d.Items[0].ID, d.Items[1].ID, d.Items[2].ID})

	_, _, err = e.DuplicateItem(d, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	d = e.RemoveItem(d, "id-1")
	assert.Len(t, d.Items, 2)
	d = e.RemoveItem(d, "no-existe")
	assert.Len(t, d.Items, 2)
	d = e.RemoveItem(d, dup.ID)
	require.Len(t, d.Items, 1)

	// La última línea no se puede quitar
	d = e.RemoveItem(d, "id-2")
	assert.Len(t, d.Items, 1)
}

func TestAddItem_TasaSegunTipo(t *testing.T) {
	e := newEditor()
	d := e.New(entity.DocumentKindTax, "INV-1", today)
	_, item := e.AddItem(d)
	assert.True(t, item.TaxRate.Equal(dec("18")))
}

func TestCustomFields(t *testing.T) {
	e := newEditor()
	d := e.New(entity.DocumentKindNonTax, "INV-1", today)

	_, _, err := e.AddCustomField(d, "   ", "x")
	assert.ErrorIs(t, err, domain.ErrLabelRequired)

	d, f, err := e.AddCustomField(d, "  PO Number ", " 4521 ")
	require.NoError(t, err)
	assert.Equal(t, "PO Number", f.Label)
	assert.Equal(t, "4521", f.Value)
	require.Len(t, d.CustomFields, 1)

	_, err = e.UpdateCustomField(d, f.ID, draft.CustomFieldPatch{Label: ptr("")})
	assert.ErrorIs(t, err, domain.ErrLabelRequired)

	_, err = e.UpdateCustomField(d, "no-existe", draft.CustomFieldPatch{Value: ptr("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	d, err = e.UpdateCustomField(d, f.ID, draft.CustomFieldPatch{Value: ptr("4522")})
	require.NoError(t, err)
	assert.Equal(t, "4522", d.CustomFields[0].Value)
	assert.Equal(t, "PO Number", d.CustomFields[0].Label)

	assert.Len(t, e.RemoveCustomField(d, "no-existe").CustomFields, 1)
	assert.Empty(t, e.RemoveCustomField(d, f.ID).CustomFields)
}

func TestLogo(t *testing.T) {
	e := newEditor()
	d := e.New(entity.DocumentKindNonTax, "INV-1", today)

	withLogo := e.SetLogo(d, "data:image/png;base64,AAAA")
	assert.Equal(t, "data:image/png;base64,AAAA", withLogo.Business.Logo)
	assert.Empty(t, d.Business.Logo)
	assert.Empty(t, e.ClearLogo(withLogo).Business.Logo)
}

func TestFilterTitleSuggestions(t *testing.T) {
	assert.Equal(t,
		[]string{"Quotation", "Estimate", "Retail Invoice", "Debit Note"},
		draft.FilterTitleSuggestions("Invoice", false))
	assert.Equal(t, draft.TitleSuggestions, draft.FilterTitleSuggestions("Invoice", true))
	assert.Equal(t, draft.TitleSuggestions, draft.FilterTitleSuggestions("Proforma", false))
}
