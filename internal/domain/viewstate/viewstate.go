// Package viewstate modela el estado de vista del editor como un conjunto finito
// de banderas con nombre. Cada bandera solo cambia mediante Open, Close o Toggle.
package viewstate

import "fmt"

// Flag bandera de vista (modal, desplegable, calendario o sección expandible).
type Flag uint8

const (
	TitleDropdown Flag = iota
	TitleTyping
	CustomFieldModal
	BusinessDetailsModal
	ClientDetailsModal
	IssueDateCalendar
	DueDateCalendar
	DueDateVisible
	BusinessBasicInfo
	BusinessTaxInfo
	BusinessAddress
	BusinessAdditionalDetails
	ClientBasicInfo
	ClientTaxInfo
	ClientAddress
	ClientAdditionalDetails

	flagCount
)

var flagNames = [flagCount]string{
	TitleDropdown:             "title_dropdown",
	TitleTyping:               "title_typing",
	CustomFieldModal:          "custom_field_modal",
	BusinessDetailsModal:      "business_details_modal",
	ClientDetailsModal:        "client_details_modal",
	IssueDateCalendar:         "issue_date_calendar",
	DueDateCalendar:           "due_date_calendar",
	DueDateVisible:            "due_date_visible",
	BusinessBasicInfo:         "business_basic_info",
	BusinessTaxInfo:           "business_tax_info",
	BusinessAddress:           "business_address",
	BusinessAdditionalDetails: "business_additional_details",
	ClientBasicInfo:           "client_basic_info",
	ClientTaxInfo:             "client_tax_info",
	ClientAddress:             "client_address",
	ClientAdditionalDetails:   "client_additional_details",
}

// String nombre estable de la bandera (snake_case).
func (f Flag) String() string {
	if f < flagCount {
		return flagNames[f]
	}
	return fmt.Sprintf("flag(%d)", uint8(f))
}

// ParseFlag convierte el nombre snake_case en bandera.
func ParseFlag(name string) (Flag, error) {
	for i, n := range flagNames {
		if n == name {
			return Flag(i), nil
		}
	}
	return 0, fmt.Errorf("viewstate: bandera desconocida %q", name)
}

// Flags lista todas las banderas en orden de declaración.
func Flags() []Flag {
	out := make([]Flag, 0, flagCount)
	for f := Flag(0); f < flagCount; f++ {
		out = append(out, f)
	}
	return out
}

// Los calendarios son excluyentes: abrir uno cierra el otro.
var exclusive = map[Flag]Flag{
	IssueDateCalendar: DueDateCalendar,
	DueDateCalendar:   IssueDateCalendar,
}

// State conjunto de banderas activas. Es un valor: cada transición devuelve uno nuevo.
type State struct {
	bits uint32
}

// Default estado inicial del editor: fecha de vencimiento visible y secciones básicas abiertas.
func Default() State {
	return State{}.Open(DueDateVisible).Open(BusinessBasicInfo).Open(ClientBasicInfo)
}

// IsOpen indica si la bandera está activa.
func (s State) IsOpen(f Flag) bool {
	return f < flagCount && s.bits&(1<<f) != 0
}

// Open activa la bandera (y cierra su excluyente, si tiene).
func (s State) Open(f Flag) State {
	if f >= flagCount {
		return s
	}
	if other, ok := exclusive[f]; ok {
		s = s.Close(other)
	}
	s.bits |= 1 << f
	return s
}

// Close desactiva la bandera.
func (s State) Close(f Flag) State {
	if f >= flagCount {
		return s
	}
	s.bits &^= 1 << f
	return s
}

// Toggle alterna la bandera.
func (s State) Toggle(f Flag) State {
	if s.IsOpen(f) {
		return s.Close(f)
	}
	return s.Open(f)
}

// Dismiss cierra los elementos transitorios (clic fuera): desplegable de título y calendarios.
func (s State) Dismiss() State {
	return s.Close(TitleDropdown).Close(TitleTyping).Close(IssueDateCalendar).Close(DueDateCalendar)
}

// Map representación nombre → activo, útil para serializar.
func (s State) Map() map[string]bool {
	out := make(map[string]bool, flagCount)
	for _, f := range Flags() {
		out[f.String()] = s.IsOpen(f)
	}
	return out
}

// Transition acción aplicable a una bandera.
type Transition string

const (
	TransitionOpen   Transition = "open"
	TransitionClose  Transition = "close"
	TransitionToggle Transition = "toggle"
)

// Apply ejecuta la transición indicada.
func (s State) Apply(f Flag, t Transition) (State, error) {
	switch t {
	case TransitionOpen:
		return s.Open(f), nil
	case TransitionClose:
		return s.Close(f), nil
	case TransitionToggle:
		return s.Toggle(f), nil
	default:
		return s, fmt.Errorf("viewstate: transición desconocida %q", t)
	}
}
