package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
	"github.com/jakiurshovon/Purchase-Web-App/internal/export"
)

func sampleTable() domain.ReportTable {
	return domain.ReportTable{
		Columns: []domain.ReportColumn{
			{Title: "Currency", Numeric: false},
			{Title: "Amount", Numeric: true},
			{Title: "Eq BDT", Numeric: true},
		},
		Rows: [][]any{
			{"USD", 150.0, 16450.0},
			{"EUR", 200.0, 25488.0},
			{"Grand Total", 350.0, 41938.0},
		},
		HasGrandTotal: true,
	}
}

func sampleLetterhead() export.Letterhead {
	return export.Letterhead{
		Organization: "Rupali Bank PLC.",
		Division:     "Treasury Division (Front Office)",
		System:       "Foreign Currency Purchase Reporting System",
	}
}

func TestSpreadsheetRoundTrip(t *testing.T) {
	content, err := export.Spreadsheet(sampleTable(), "Summary")
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), "Summary")

	header, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Currency", header)

	firstKey, err := f.GetCellValue("Summary", "A2")
	require.NoError(t, err)
	assert.Equal(t, "USD", firstKey)

	amount, err := f.GetCellValue("Summary", "B2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "150", amount)

	// Header row is bold with the shaded pattern fill
	styleID, err := f.GetCellStyle("Summary", "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
	assert.Equal(t, "pattern", style.Fill.Type)
}

func TestSpreadsheetColumnWidthIgnoresHeader(t *testing.T) {
	table := domain.ReportTable{
		Columns: []domain.ReportColumn{
			{Title: "Weighted Avg Rate", Numeric: true},
		},
		Rows: [][]any{{0.5}, {0.75}, {1.0}},
	}

	content, err := export.Spreadsheet(table, "Summary")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	// Width follows the short data cells, not the long title, and lands on
	// the lower clamp
	width, err := f.GetColWidth("Summary", "A")
	require.NoError(t, err)
	assert.InDelta(t, 8.0, width, 0.1)
}

func TestSpreadsheetEmptyTable(t *testing.T) {
	table := domain.ReportTable{
		Columns: []domain.ReportColumn{
			{Title: "Region", Numeric: false},
			{Title: "Amount", Numeric: true},
		},
	}

	content, err := export.Spreadsheet(table, "Summary")
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	// Header row survives even with no data rows
	header, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Amount", header)
}

func TestPDFRendersDocument(t *testing.T) {
	content, err := export.PDF(sampleTable(), sampleLetterhead(), "Purchase Summary by Currency", "Period: beginning to present")
	require.NoError(t, err)
	require.NotEmpty(t, content)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")), "output should be a PDF document")
}

func TestPDFEmptyTable(t *testing.T) {
	table := domain.ReportTable{
		Columns: []domain.ReportColumn{
			{Title: "Country", Numeric: false},
			{Title: "Amount", Numeric: true},
		},
	}

	content, err := export.PDF(table, sampleLetterhead(), "Purchase Summary by Country", "")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

func TestPDFManyRowsPaginates(t *testing.T) {
	table := sampleTable()
	table.HasGrandTotal = false
	rows := make([][]any, 0, 120)
	for i := 0; i < 120; i++ {
		rows = append(rows, []any{"USD", 1.0, 110.0})
	}
	table.Rows = rows

	content, err := export.PDF(table, sampleLetterhead(), "Purchase Detail Report", "")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

func TestCellString(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil renders empty", value: nil, want: ""},
		{name: "string passes through", value: "USD", want: "USD"},
		{name: "number gets grouping", value: 16450.0, want: "16,450.00"},
		{name: "fraction rounds to two places", value: 109.666666, want: "109.67"},
		{name: "small number", value: 0.5, want: "0.50"},
		{name: "negative number", value: -1234.5, want: "-1,234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, export.CellString(tt.value))
		})
	}
}
