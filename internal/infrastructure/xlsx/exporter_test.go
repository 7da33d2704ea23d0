package xlsx_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ranjan0044/invoice-builder/internal/application/drafting"
	"github.com/ranjan0044/invoice-builder/internal/domain/draft"
	"github.com/ranjan0044/invoice-builder/internal/domain/entity"
	"github.com/ranjan0044/invoice-builder/internal/domain/viewstate"
	"github.com/ranjan0044/invoice-builder/internal/infrastructure/xlsx"
)

func taxPreview(t *testing.T) drafting.Preview {
	t.Helper()
	e := draft.NewEditor(draft.DefaultRules())
	d := e.New(entity.DocumentKindTax, "INV-123456-007", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
	d.Business.Name = "Acme Pvt Ltd"
	d.Client.Name = "Globex"
	d.Items[0].Description = "Consultoría"
	d.Items[0].TaxCode = "998311"
	d.Items[0].Quantity = decimal.NewFromInt(2)
	d.Items[0].UnitPrice = decimal.NewFromInt(100)
	d, _, err := e.AddCustomField(d, "PO Number", "4521")
	require.NoError(t, err)
	return drafting.BuildPreview(entity.Session{ID: "s1", Draft: d, View: viewstate.Default()})
}

// rowsByLabel indexa las filas por el valor de la columna A.
func rowsByLabel(rows [][]string) map[string][]string {
	out := make(map[string][]string, len(rows))
	for _, r := range rows {
		if len(r) > 0 {
			out[r[0]] = r
		}
	}
	return out
}

func TestExport(t *testing.T) {
	data, err := xlsx.NewExporter().Export(context.Background(), taxPreview(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	byLabel := rowsByLabel(rows)

	assert.Equal(t, []string{"Title", "Invoice"}, byLabel["Title"])
	assert.Equal(t, []string{"Number", "INV-123456-007"}, byLabel["Number"])
	assert.Equal(t, []string{"Due date", "2024-03-25"}, byLabel["Due date"])
	assert.Equal(t, []string{"Currency", "INR"}, byLabel["Currency"])
	assert.Equal(t, []string{"PO Number", "4521"}, byLabel["PO Number"])

	assert.Equal(t,
		[]string{"#", "Description", "HSN/SAC", "GST %", "Quantity", "Rate", "Discount %", "Amount"},
		byLabel["#"])
	assert.Equal(t,
		[]string{"1", "Consultoría", "998311", "18", "2", "100", "0", "200"},
		byLabel["1"])

	assert.Equal(t, []string{"Subtotal", "200"}, byLabel["Subtotal"])
	assert.Equal(t, []string{"CGST", "18"}, byLabel["CGST"])
	assert.Equal(t, []string{"SGST", "18"}, byLabel["SGST"])
	assert.Equal(t, []string{"Total (INR)", "236"}, byLabel["Total (INR)"])
	assert.Equal(t, []string{"Total in words", "Two Hundred Thirty Six Rupees Only"}, byLabel["Total in words"])
	assert.NotContains(t, byLabel, "Tax")
}

func TestExport_SinImpuestosNiVencimiento(t *testing.T) {
	p := taxPreview(t)
	e := draft.NewEditor(draft.DefaultRules())
	p = drafting.BuildPreview(entity.Session{
		ID:    "s1",
		Draft: e.SwitchKind(p.Draft, entity.DocumentKindNonTax),
		View:  viewstate.Default().Close(viewstate.DueDateVisible),
	})

	data, err := xlsx.NewExporter().Export(context.Background(), p)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	byLabel := rowsByLabel(rows)

	assert.NotContains(t, byLabel, "Due date")
	assert.NotContains(t, byLabel, "CGST")
	assert.Equal(t, []string{"#", "Description", "Quantity", "Rate", "Discount %", "Amount"}, byLabel["#"])
	assert.Equal(t, []string{"Tax", "0"}, byLabel["Tax"])
	assert.Equal(t, []string{"Total (INR)", "200"}, byLabel["Total (INR)"])
}
