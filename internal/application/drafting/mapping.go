package drafting

import (
	"fmt"
	"time"

	"github.com/ranjan0044/invoice-builder/internal/application/dto"
	"github.com/ranjan0044/invoice-builder/internal/domain"
	"github.com/ranjan0044/invoice-builder/internal/domain/draft"
	"github.com/ranjan0044/invoice-builder/internal/domain/entity"
	"github.com/ranjan0044/invoice-builder/internal/domain/invoice"
)

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dto.DateLayout)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha %q: %w", s, domain.ErrInvalidInput)
	}
	return t, nil
}

func toPartyDTO(p entity.Party) dto.PartyDTO {
	return dto.PartyDTO{
		Name:    p.Name,
		Address: p.Address,
		City:    p.City,
		State:   p.State,
		ZipCode: p.ZipCode,
		Country: p.Country,
		Email:   p.Email,
		Phone:   p.Phone,
		Website: p.Website,
		TaxID:   p.TaxID,
		Logo:    p.Logo,
	}
}

// fromPartyDTO el logo nunca viene del cuerpo: se conserva el actual.
func fromPartyDTO(in dto.PartyDTO, logo string) entity.Party {
	return entity.Party{
		Name:    in.Name,
		Address: in.Address,
		City:    in.City,
		State:   in.State,
		ZipCode: in.ZipCode,
		Country: in.Country,
		Email:   in.Email,
		Phone:   in.Phone,
		Website: in.Website,
		TaxID:   in.TaxID,
		Logo:    logo,
	}
}

func toItemDTO(it entity.LineItem) dto.LineItemDTO {
	return dto.LineItemDTO{
		ID:          it.ID,
		Description: it.Description,
		TaxCode:     it.TaxCode,
		Quantity:    it.Quantity,
		UnitPrice:   it.UnitPrice,
		TaxRate:     it.TaxRate,
		Discount:    it.Discount,
	}
}

func fromItemDTO(in dto.LineItemDTO) entity.LineItem {
	return entity.LineItem{
		ID:          in.ID,
		Description: in.Description,
		TaxCode:     in.TaxCode,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		TaxRate:     in.TaxRate,
		Discount:    in.Discount,
	}
}

func toCustomFieldDTOs(fields []entity.CustomField) []dto.CustomFieldDTO {
	out := make([]dto.CustomFieldDTO, 0, len(fields))
	for _, f := range fields {
		out = append(out, dto.CustomFieldDTO{ID: f.ID, Label: f.Label, Value: f.Value})
	}
	return out
}

// ToTotalsDTO expone los totales con el importe tras descuento.
func ToTotalsDTO(t entity.Totals) dto.TotalsDTO {
	return dto.TotalsDTO{
		Subtotal:      t.Subtotal,
		TotalDiscount: t.TotalDiscount,
		AfterDiscount: t.AfterDiscount(),
		TotalTax:      t.TotalTax,
		Total:         t.Total,
	}
}

func toDraftDTO(d entity.DocumentDraft) dto.DraftDTO {
	items := make([]dto.LineItemDTO, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, toItemDTO(it))
	}
	return dto.DraftDTO{
		Kind:               string(d.Kind),
		Title:              d.Title,
		Business:           toPartyDTO(d.Business),
		Client:             toPartyDTO(d.Client),
		Number:             d.Number,
		IssueDate:          formatDate(d.IssueDate),
		DueDate:            formatDate(d.DueDate),
		Currency:           d.Currency,
		TaxRate:            d.TaxRate,
		Discount:           d.Discount,
		Items:              items,
		Notes:              d.Notes,
		Terms:              d.Terms,
		CustomFields:       toCustomFieldDTOs(d.CustomFields),
		Template:           d.Template,
		DueDateOverridden:  d.DueDateOverridden,
		CurrencyOverridden: d.CurrencyOverridden,
	}
}

func toDraftResponse(s entity.Session) *dto.DraftResponse {
	return &dto.DraftResponse{
		SessionID: s.ID,
		Draft:     toDraftDTO(s.Draft),
		Totals:    ToTotalsDTO(invoice.DraftTotals(s.Draft)),
		View:      s.View.Map(),
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// toPatch traduce el cuerpo PATCH al Patch de dominio. current aporta el logo vigente.
func toPatch(in dto.UpdateDraftRequest, current entity.DocumentDraft) (draft.Patch, error) {
	var p draft.Patch
	if in.Kind != nil {
		k := entity.DocumentKind(*in.Kind)
		if !k.Valid() {
			return p, fmt.Errorf("kind %q: %w", *in.Kind, domain.ErrInvalidInput)
		}
		p.Kind = &k
	}
	p.Title = in.Title
	if in.Business != nil {
		b := fromPartyDTO(*in.Business, current.Business.Logo)
		p.Business = &b
	}
	if in.Client != nil {
		c := fromPartyDTO(*in.Client, "")
		p.Client = &c
	}
	p.Number = in.Number
	if in.IssueDate != nil {
		t, err := parseDate(*in.IssueDate)
		if err != nil {
			return p, err
		}
		p.IssueDate = &t
	}
	if in.DueDate != nil {
		t, err := parseDate(*in.DueDate)
		if err != nil {
			return p, err
		}
		p.DueDate = &t
	}
	if in.Currency != nil {
		c := normalizeCurrency(*in.Currency)
		p.Currency = &c
	}
	p.TaxRate = in.TaxRate
	p.Discount = in.Discount
	for _, it := range in.Items {
		p.Items = append(p.Items, fromItemDTO(it))
	}
	p.Notes = in.Notes
	p.Terms = in.Terms
	if in.CustomFields != nil {
		fields := make([]entity.CustomField, 0, len(*in.CustomFields))
		for _, f := range *in.CustomFields {
			fields = append(fields, entity.CustomField{ID: f.ID, Label: f.Label, Value: f.Value})
		}
		p.CustomFields = &fields
	}
	if in.Template != nil {
		if !entity.IsKnownTemplate(*in.Template) {
			return p, fmt.Errorf("template %q: %w", *in.Template, domain.ErrInvalidInput)
		}
		p.Template = in.Template
	}
	return p, nil
}

func toItemPatch(in dto.ItemPatchRequest) draft.ItemPatch {
	return draft.ItemPatch{
		Description: in.Description,
		TaxCode:     in.TaxCode,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		TaxRate:     in.TaxRate,
		Discount:    in.Discount,
	}
}

func toTemplateDTO(t entity.InvoiceTemplate) dto.TemplateDTO {
	return dto.TemplateDTO{
		ID:         t.ID,
		Name:       t.Name,
		Preview:    t.Preview,
		Primary:    t.Colors.Primary,
		Secondary:  t.Colors.Secondary,
		Background: t.Colors.Background,
	}
}

// Templates catálogo de plantillas para GET /api/templates.
func Templates() []dto.TemplateDTO {
	out := make([]dto.TemplateDTO, 0, len(entity.InvoiceTemplates))
	for _, t := range entity.InvoiceTemplates {
		out = append(out, toTemplateDTO(t))
	}
	return out
}

func toFormattedDTO(f FormattedTotals) dto.FormattedTotalsDTO {
	return dto.FormattedTotalsDTO{
		Subtotal: f.Subtotal,
		Discount: f.Discount,
		Tax:      f.Tax,
		CGST:     f.CGST,
		SGST:     f.SGST,
		Total:    f.Total,
	}
}

func toPreviewResponse(p Preview) *dto.PreviewResponse {
	d := p.Draft
	business := toPartyDTO(d.Business)
	business.Phone = p.BusinessPhone
	client := toPartyDTO(d.Client)
	client.Phone = p.ClientPhone

	lines := make([]dto.PreviewLineDTO, 0, len(p.Lines))
	for _, l := range p.Lines {
		lines = append(lines, dto.PreviewLineDTO{
			Index:       l.Index,
			ID:          l.Item.ID,
			Description: l.Item.Description,
			TaxCode:     l.Item.TaxCode,
			Quantity:    l.Item.Quantity,
			UnitPrice:   l.UnitPriceText,
			TaxRate:     l.Item.TaxRate,
			Discount:    l.Item.Discount,
			Amount:      l.AmountText,
		})
	}
	out := &dto.PreviewResponse{
		SessionID:      p.SessionID,
		Title:          d.Title,
		Number:         d.Number,
		Kind:           string(d.Kind),
		IssueDate:      formatDate(d.IssueDate),
		Currency:       d.Currency,
		Business:       business,
		Client:         client,
		CustomFields:   toCustomFieldDTOs(d.CustomFields),
		ShowTaxColumns: p.ShowTaxColumns,
		Lines:          lines,
		Totals:         ToTotalsDTO(p.Totals),
		Formatted:      toFormattedDTO(p.Formatted),
		AmountInWords:  p.AmountInWords,
		Notes:          d.Notes,
		Terms:          d.Terms,
		Template:       toTemplateDTO(p.Template),
	}
	if p.ShowDueDate {
		out.DueDate = formatDate(d.DueDate)
	}
	return out
}
