package entity

// TemplateColors paleta de una plantilla de documento.
type TemplateColors struct {
	Primary    string
	Secondary  string
	Background string
}

// InvoiceTemplate plantilla visual de la vista previa.
type InvoiceTemplate struct {
	ID      string
	Name    string
	Preview string
	Colors  TemplateColors
}

// DefaultTemplateID plantilla usada cuando el borrador no indica una conocida.
const DefaultTemplateID = "modern"

// InvoiceTemplates catálogo fijo de plantillas.
var InvoiceTemplates = []InvoiceTemplate{
	{ID: "modern", Name: "Modern", Preview: "Clean and professional design", Colors: TemplateColors{Primary: "#8B5CF6", Secondary: "#FBBF24", Background: "#FFFFFF"}},
	{ID: "classic", Name: "Classic", Preview: "Traditional business style", Colors: TemplateColors{Primary: "#1F2937", Secondary: "#6B7280", Background: "#FFFFFF"}},
	{ID: "minimal", Name: "Minimal", Preview: "Simple and elegant", Colors: TemplateColors{Primary: "#111827", Secondary: "#9CA3AF", Background: "#FFFFFF"}},
	{ID: "colorful", Name: "Colorful", Preview: "Vibrant and eye-catching", Colors: TemplateColors{Primary: "#EC4899", Secondary: "#FBBF24", Background: "#FFFFFF"}},
}

// FindTemplate busca la plantilla por id; si no existe devuelve la primera del catálogo.
func FindTemplate(id string) InvoiceTemplate {
	for _, t := range InvoiceTemplates {
		if t.ID == id {
			return t
		}
	}
	return InvoiceTemplates[0]
}

// IsKnownTemplate indica si el id pertenece al catálogo.
func IsKnownTemplate(id string) bool {
	for _, t := range InvoiceTemplates {
		if t.ID == id {
			return true
		}
	}
	return false
}
