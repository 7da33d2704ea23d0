package viewstate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranjan0044/invoice-builder/internal/domain/viewstate"
)

func TestDefault(t *testing.T) {
	s := viewstate.Default()
	for _, f := range viewstate.Flags() {
		want := f == viewstate.DueDateVisible || f == viewstate.BusinessBasicInfo || f == viewstate.ClientBasicInfo
		assert.Equal(t, want, s.IsOpen(f), f.String())
	}
}

func TestOpenCloseToggle(t *testing.T) {
	s := viewstate.State{}
	s = s.Open(viewstate.CustomFieldModal)
	assert.True(t, s.IsOpen(viewstate.CustomFieldModal))

	s = s.Toggle(viewstate.CustomFieldModal)
	assert.False(t, s.IsOpen(viewstate.CustomFieldModal))

	s = s.Toggle(viewstate.BusinessTaxInfo)
	assert.True(t, s.IsOpen(viewstate.BusinessTaxInfo))

	s = s.Close(viewstate.BusinessTaxInfo).Close(viewstate.BusinessTaxInfo)
	assert.False(t, s.IsOpen(viewstate.BusinessTaxInfo))
}

func TestCalendariosExcluyentes(t *testing.T) {
	s := viewstate.Default().Open(viewstate.IssueDateCalendar)
	assert.True(t, s.IsOpen(viewstate.IssueDateCalendar))

	s = s.Open(viewstate.DueDateCalendar)
	assert.True(t, s.IsOpen(viewstate.DueDateCalendar))
	assert.False(t, s.IsOpen(viewstate.IssueDateCalendar))

	s = s.Toggle(viewstate.IssueDateCalendar)
	assert.True(t, s.IsOpen(viewstate.IssueDateCalendar))
	assert.False(t, s.IsOpen(viewstate.DueDateCalendar))
}

func TestDismiss(t *testing.T) {
	s := viewstate.Default().
		Open(viewstate.TitleDropdown).
		Open(viewstate.TitleTyping).
		Open(viewstate.DueDateCalendar).
		Open(viewstate.ClientDetailsModal)

	s = s.Dismiss()
	assert.False(t, s.IsOpen(viewstate.TitleDropdown))
	assert.False(t, s.IsOpen(viewstate.TitleTyping))
	assert.False(t, s.IsOpen(viewstate.DueDateCalendar))
	// Los modales y las preferencias persisten
	assert.True(t, s.IsOpen(viewstate.ClientDetailsModal))
	assert.True(t, s.IsOpen(viewstate.DueDateVisible))
}

func TestValorInmutable(t *testing.T) {
	base := viewstate.Default()
	_ = base.Open(viewstate.TitleDropdown)
	assert.False(t, base.IsOpen(viewstate.TitleDropdown))
}

func TestParseFlag(t *testing.T) {
	for _, f := range viewstate.Flags() {
		got, err := viewstate.ParseFlag(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := viewstate.ParseFlag("sidebar")
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	s, err := viewstate.State{}.Apply(viewstate.TitleDropdown, viewstate.TransitionOpen)
	require.NoError(t, err)
	assert.True(t, s.IsOpen(viewstate.TitleDropdown))

	s, err = s.Apply(viewstate.TitleDropdown, viewstate.TransitionToggle)
	require.NoError(t, err)
	assert.False(t, s.IsOpen(viewstate.TitleDropdown))

	_, err = s.Apply(viewstate.TitleDropdown, viewstate.Transition("flip"))
	assert.Error(t, err)
}

func TestMap(t *testing.T) {
	m := viewstate.Default().Map()
	assert.Len(t, m, len(viewstate.Flags()))
	assert.True(t, m["due_date_visible"])
	assert.False(t, m["title_dropdown"])
}
