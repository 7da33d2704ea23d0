package draft

// TitleSuggestions títulos sugeridos en el desplegable del encabezado.
var TitleSuggestions = []string{"Invoice", "Quotation", "Estimate", "Retail Invoice", "Debit Note"}

// FilterTitleSuggestions mientras el usuario escribe se muestran todas; si no,
// se excluye el título actual.
func FilterTitleSuggestions(current string, typing bool) []string {
	out := make([]string, 0, len(TitleSuggestions))
	for _, s := range TitleSuggestions {
		if !typing && s == current {
			continue
		}
		out = append(out, s)
	}
	return out
}
