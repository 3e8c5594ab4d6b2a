package reporting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
	"github.com/jakiurshovon/Purchase-Web-App/internal/utils/reporting"
)

func columnTitles(table domain.ReportTable) []string {
	titles := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		titles[i] = c.Title
	}
	return titles
}

func TestBuildDetailTable(t *testing.T) {
	records := []domain.PurchaseRecord{
		record("Al Haramain", "Middle East", "UAE", "USD", "100", "1", "110"),
	}

	table := reporting.BuildDetailTable(records)

	assert.Equal(t, []string{
		"Date", "Exchange House", "Region", "Country", "Currency",
		"Amount", "Cross Rate", "Purchase Rate", "Eq USD", "Eq BDT",
	}, columnTitles(table))
	assert.False(t, table.HasGrandTotal)

	require.Len(t, table.Rows, 1)
	row := table.Rows[0]
	assert.Equal(t, "2025-06-01", row[0])
	assert.Equal(t, "Al Haramain", row[1])
	assert.Equal(t, "USD", row[4])
	assert.Equal(t, 100.0, row[5])
	assert.Equal(t, 100.0, row[8])
	assert.Equal(t, 11000.0, row[9])
}

func TestBuildDetailTableEmptyKeepsSchema(t *testing.T) {
	table := reporting.BuildDetailTable(nil)
	assert.Len(t, table.Columns, 10)
	assert.Empty(t, table.Rows)
	assert.False(t, table.HasGrandTotal)
}

func TestBuildSummaryTable(t *testing.T) {
	records := []domain.PurchaseRecord{
		record("A", "", "", "USD", "100", "1", "110"),
		record("B", "", "", "EUR", "200", "1.08", "118"),
	}
	rows := reporting.Summarize(records, reporting.DirectResolver(domain.DimensionExchangeHouse))

	table := reporting.BuildSummaryTable(rows, domain.DimensionExchangeHouse)

	// Amount sits directly after the dimension label, before the mean rates
	assert.Equal(t, []string{
		"Exchange House", "Amount", "Cross Rate", "Purchase Rate",
		"Eq USD", "Eq BDT", "Weighted Avg Rate",
	}, columnTitles(table))
	assert.True(t, table.HasGrandTotal)

	// Two group rows plus the grand total
	require.Len(t, table.Rows, 3)

	first := table.Rows[0]
	assert.Equal(t, "A", first[0])
	assert.Equal(t, 100.0, first[1])
	assert.Equal(t, 1.0, first[2])
	assert.Equal(t, 110.0, first[3])

	total := table.Rows[2]
	assert.Equal(t, "Grand Total", total[0])
	assert.Equal(t, 300.0, total[1])
	// Mean rate cells carry no meaning for the total row
	assert.Nil(t, total[2])
	assert.Nil(t, total[3])
}

func TestBuildSummaryTableCurrencyHasCumulativeColumn(t *testing.T) {
	records := []domain.PurchaseRecord{
		record("A", "", "", "USD", "100", "1", "110"),
		record("B", "", "", "EUR", "200", "1.08", "118"),
	}
	rows := reporting.Summarize(records, reporting.DirectResolver(domain.DimensionCurrency))

	table := reporting.BuildSummaryTable(rows, domain.DimensionCurrency)

	assert.Equal(t, []string{
		"Currency", "Amount", "Cross Rate", "Purchase Rate", "Cumulative Amount",
		"Eq USD", "Eq BDT", "Weighted Avg Rate",
	}, columnTitles(table))

	require.Len(t, table.Rows, 3)
	assert.Equal(t, 100.0, table.Rows[0][4])
	assert.Equal(t, 300.0, table.Rows[1][4])
	// Cumulative column is blank in the grand total row
	assert.Nil(t, table.Rows[2][4])
}

func TestBuildSummaryTableEmptyHasNoGrandTotal(t *testing.T) {
	table := reporting.BuildSummaryTable(nil, domain.DimensionRegion)
	assert.Empty(t, table.Rows)
	assert.False(t, table.HasGrandTotal)
}

func TestIsTextColumn(t *testing.T) {
	assert.True(t, reporting.IsTextColumn("Date"))
	assert.True(t, reporting.IsTextColumn("Currency"))
	assert.False(t, reporting.IsTextColumn("Amount"))
	assert.False(t, reporting.IsTextColumn("Weighted Avg Rate"))
}
