package dto

import "github.com/shopspring/decimal"

// PreviewLineDTO fila de la vista previa.
type PreviewLineDTO struct {
	Index       int             `json:"index"`
	ID          string          `json:"id"`
	Description string          `json:"description"`
	TaxCode     string          `json:"tax_code,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   string          `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Discount    decimal.Decimal `json:"discount"`
	Amount      string          `json:"amount"`
}

// FormattedTotalsDTO totales formateados con la moneda del documento.
type FormattedTotalsDTO struct {
	Subtotal string `json:"subtotal"`
	Discount string `json:"discount"`
	Tax      string `json:"tax"`
	CGST     string `json:"cgst,omitempty"`
	SGST     string `json:"sgst,omitempty"`
	Total    string `json:"total"`
}

// PreviewResponse vista previa en vivo del documento.
type PreviewResponse struct {
	SessionID      string             `json:"session_id"`
	Title          string             `json:"title"`
	Number         string             `json:"number"`
	Kind           string             `json:"kind"`
	IssueDate      string             `json:"issue_date"`
	DueDate        string             `json:"due_date,omitempty"`
	Currency       string             `json:"currency"`
	Business       PartyDTO           `json:"business"`
	Client         PartyDTO           `json:"client"`
	CustomFields   []CustomFieldDTO   `json:"custom_fields"`
	ShowTaxColumns bool               `json:"show_tax_columns"`
	Lines          []PreviewLineDTO   `json:"lines"`
	Totals         TotalsDTO          `json:"totals"`
	Formatted      FormattedTotalsDTO `json:"formatted"`
	AmountInWords  string             `json:"amount_in_words"`
	Notes          string             `json:"notes,omitempty"`
	Terms          string             `json:"terms,omitempty"`
	Template       TemplateDTO        `json:"template"`
}

// TotalsRequest body para POST /api/tools/totals (cálculo sin sesión).
type TotalsRequest struct {
	Items    []LineItemDTO   `json:"items"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
	Discount decimal.Decimal `json:"discount"`
	Currency string          `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
}

// TotalsResponse totales, formateados e importe en letras.
type TotalsResponse struct {
	Totals        TotalsDTO          `json:"totals"`
	Formatted     FormattedTotalsDTO `json:"formatted"`
	AmountInWords string             `json:"amount_in_words"`
}

// WordsRequest body para POST /api/tools/words.
type WordsRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency" validate:"required,len=3,alpha"`
}

// WordsResponse importe en letras y formateado.
type WordsResponse struct {
	Words     string `json:"words"`
	Formatted string `json:"formatted"`
}

// DocumentNumberResponse número de documento generado.
type DocumentNumberResponse struct {
	Number string `json:"number"`
}
