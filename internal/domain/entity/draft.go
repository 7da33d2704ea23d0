package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind tipo de documento: factura con impuestos (GST) o sin impuestos.
type DocumentKind string

const (
	DocumentKindTax    DocumentKind = "tax"
	DocumentKindNonTax DocumentKind = "non_tax"
)

// Valid indica si el tipo es uno de los dos estados soportados.
func (k DocumentKind) Valid() bool {
	return k == DocumentKindTax || k == DocumentKindNonTax
}

// Monedas con tratamiento especial al cambiar de tipo de documento.
const (
	CurrencyUSD = "USD"
	CurrencyINR = "INR"
)

// Party datos de emisor (business) o receptor (client) del documento.
// Logo solo aplica al emisor: data-URL base64 entregada por el selector de archivos.
type Party struct {
	Name    string
	Address string
	City    string
	State   string
	ZipCode string
	Country string
	Email   string
	Phone   string
	Website string
	TaxID   string // GSTIN / PAN u otro identificador fiscal
	Logo    string
}

// LineItem representa una línea facturable del borrador.
// TaxRate y Discount son porcentajes; el descuento se aplica antes del impuesto.
type LineItem struct {
	ID          string
	Description string
	TaxCode     string // HSN/SAC, opcional
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal
	Discount    decimal.Decimal
}

// CustomField campo libre (etiqueta/valor) mostrado en la cabecera del documento.
type CustomField struct {
	ID    string
	Label string
	Value string
}

// DocumentDraft estado editable en memoria de una factura o cotización.
// Cada mutación produce un borrador nuevo; Items nunca queda vacío.
type DocumentDraft struct {
	Kind         DocumentKind
	Title        string
	Business     Party
	Client       Party
	Number       string
	IssueDate    time.Time
	DueDate      time.Time
	Currency     string
	TaxRate      decimal.Decimal // impuesto global (%)
	Discount     decimal.Decimal // descuento global (%)
	Items        []LineItem
	Notes        string
	Terms        string
	CustomFields []CustomField
	Template     string

	// Marcas de la sesión: el usuario fijó el valor a mano y ya no se re-deriva.
	DueDateOverridden  bool
	CurrencyOverridden bool
}

// Clone copia el borrador sin compartir los slices con el original.
func (d DocumentDraft) Clone() DocumentDraft {
	out := d
	out.Items = append([]LineItem(nil), d.Items...)
	if d.CustomFields != nil {
		out.CustomFields = append([]CustomField(nil), d.CustomFields...)
	}
	return out
}

// ItemIndex devuelve la posición de la línea con ese id, o -1.
func (d DocumentDraft) ItemIndex(id string) int {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// CustomFieldIndex devuelve la posición del campo personalizado con ese id, o -1.
func (d DocumentDraft) CustomFieldIndex(id string) int {
	for i := range d.CustomFields {
		if d.CustomFields[i].ID == id {
			return i
		}
	}
	return -1
}

// Totals agregados monetarios derivados de las líneas y los porcentajes globales.
type Totals struct {
	Subtotal      decimal.Decimal
	TotalDiscount decimal.Decimal
	TotalTax      decimal.Decimal
	Total         decimal.Decimal
}

// AfterDiscount subtotal menos el descuento total.
func (t Totals) AfterDiscount() decimal.Decimal {
	return t.Subtotal.Sub(t.TotalDiscount)
}
