package dto

import "github.com/shopspring/decimal"

// DateLayout formato de fechas del borrador en la API.
const DateLayout = "2006-01-02"

// PartyDTO datos de emisor o cliente.
// Logo solo se informa en respuestas; se cambia con PUT/DELETE /logo.
type PartyDTO struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	Country string `json:"country,omitempty"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
	TaxID   string `json:"tax_id,omitempty"`
	Logo    string `json:"logo,omitempty"`
}

// LineItemDTO línea del borrador.
type LineItemDTO struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	TaxCode     string          `json:"tax_code,omitempty"` // HSN/SAC
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Discount    decimal.Decimal `json:"discount"`
}

// CustomFieldDTO campo personalizado.
type CustomFieldDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// TotalsDTO totales calculados.
type TotalsDTO struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	AfterDiscount decimal.Decimal `json:"after_discount"`
	TotalTax      decimal.Decimal `json:"total_tax"`
	Total         decimal.Decimal `json:"total"`
}

// DraftDTO borrador completo.
type DraftDTO struct {
	Kind               string           `json:"kind"`
	Title              string           `json:"title"`
	Business           PartyDTO         `json:"business"`
	Client             PartyDTO         `json:"client"`
	Number             string           `json:"number"`
	IssueDate          string           `json:"issue_date"`
	DueDate            string           `json:"due_date"`
	Currency           string           `json:"currency"`
	TaxRate            decimal.Decimal  `json:"tax_rate"`
	Discount           decimal.Decimal  `json:"discount"`
	Items              []LineItemDTO    `json:"items"`
	Notes              string           `json:"notes"`
	Terms              string           `json:"terms"`
	CustomFields       []CustomFieldDTO `json:"custom_fields"`
	Template           string           `json:"template"`
	DueDateOverridden  bool             `json:"due_date_overridden"`
	CurrencyOverridden bool             `json:"currency_overridden"`
}

// DraftResponse sesión de edición con su borrador y totales.
type DraftResponse struct {
	SessionID string          `json:"session_id"`
	Draft     DraftDTO        `json:"draft"`
	Totals    TotalsDTO       `json:"totals"`
	View      map[string]bool `json:"view"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// CreateDraftRequest body para POST /api/drafts.
type CreateDraftRequest struct {
	Kind   string `json:"kind,omitempty" validate:"omitempty,oneof=tax non_tax"`
	Prefix string `json:"prefix,omitempty" validate:"omitempty,max=16"`
}

// UpdateDraftRequest body para PATCH /api/drafts/:id. Campo ausente = sin cambio;
// business, client, items y custom_fields reemplazan el valor completo.
type UpdateDraftRequest struct {
	Kind         *string           `json:"kind,omitempty" validate:"omitempty,oneof=tax non_tax"`
	Title        *string           `json:"title,omitempty"`
	Business     *PartyDTO         `json:"business,omitempty"`
	Client       *PartyDTO         `json:"client,omitempty"`
	Number       *string           `json:"number,omitempty"`
	IssueDate    *string           `json:"issue_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DueDate      *string           `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Currency     *string           `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
	TaxRate      *decimal.Decimal  `json:"tax_rate,omitempty"`
	Discount     *decimal.Decimal  `json:"discount,omitempty"`
	Items        []LineItemDTO     `json:"items,omitempty"`
	Notes        *string           `json:"notes,omitempty"`
	Terms        *string           `json:"terms,omitempty"`
	CustomFields *[]CustomFieldDTO `json:"custom_fields,omitempty"`
	Template     *string           `json:"template,omitempty"`
}

// SetKindRequest body para PUT /api/drafts/:id/kind.
type SetKindRequest struct {
	Kind string `json:"kind" validate:"required,oneof=tax non_tax"`
}

// ItemPatchRequest body para POST /items (valores iniciales) y PATCH /items/:itemId.
type ItemPatchRequest struct {
	Description *string          `json:"description,omitempty"`
	TaxCode     *string          `json:"tax_code,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
	TaxRate     *decimal.Decimal `json:"tax_rate,omitempty"`
	Discount    *decimal.Decimal `json:"discount,omitempty"`
}

// CustomFieldRequest body para POST /custom-fields.
type CustomFieldRequest struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CustomFieldPatchRequest body para PATCH /custom-fields/:fieldId.
type CustomFieldPatchRequest struct {
	Label *string `json:"label,omitempty"`
	Value *string `json:"value,omitempty"`
}

// TitleSuggestionsResponse sugerencias del desplegable de título.
type TitleSuggestionsResponse struct {
	Current     string   `json:"current"`
	Suggestions []string `json:"suggestions"`
}

// TemplateDTO plantilla del catálogo.
type TemplateDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Preview    string `json:"preview"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
}
