package reporting

import (
	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
)

// Text-aligned detail columns; everything else is numeric-aligned.
// Mirrors the membership set used by the exporters for alignment only,
// never for the data itself.
var textColumns = map[string]bool{
	"Date":           true,
	"Exchange House": true,
	"Region":         true,
	"Country":        true,
	"Currency":       true,
}

const dateLayout = "2006-01-02"

// detailColumns is the fixed detail-report schema. The column set is stable
// even for empty inputs; fields missing on a record surface as zero values
// rather than dropped columns.
var detailColumns = []domain.ReportColumn{
	{Title: "Date", Numeric: false},
	{Title: "Exchange House", Numeric: false},
	{Title: "Region", Numeric: false},
	{Title: "Country", Numeric: false},
	{Title: "Currency", Numeric: false},
	{Title: "Amount", Numeric: true},
	{Title: "Cross Rate", Numeric: true},
	{Title: "Purchase Rate", Numeric: true},
	{Title: "Eq USD", Numeric: true},
	{Title: "Eq BDT", Numeric: true},
}

// BuildDetailTable assembles purchase records into the fixed-schema detail
// table. Derived fields are recomputed from the base fields on the way in.
func BuildDetailTable(records []domain.PurchaseRecord) domain.ReportTable {
	table := domain.ReportTable{
		Columns: detailColumns,
		Rows:    make([][]any, 0, len(records)),
	}
	for _, rec := range records {
		eqUsd, eqBdt := domain.ComputeDerived(rec.Amount, rec.CrossRate, rec.PurchaseRate)
		table.Rows = append(table.Rows, []any{
			rec.Date.Format(dateLayout),
			rec.ExchangeHouse,
			rec.Region,
			rec.Country,
			rec.Currency,
			rec.Amount.InexactFloat64(),
			rec.CrossRate.InexactFloat64(),
			rec.PurchaseRate.InexactFloat64(),
			eqUsd.InexactFloat64(),
			eqBdt.InexactFloat64(),
		})
	}
	return table
}

// BuildSummaryTable assembles aggregated rows into the summary table for the
// given dimension. Column order: dimension label, amount, mean rates (with a
// cumulative amount column when grouping by currency), the equivalence sums
// and the weighted average. Non-empty tables end with a Grand Total row.
func BuildSummaryTable(rows []domain.GroupSummaryRow, dim domain.Dimension) domain.ReportTable {
	withCumulative := dim == domain.DimensionCurrency

	columns := []domain.ReportColumn{
		{Title: dim.Label(), Numeric: false},
		{Title: "Amount", Numeric: true},
		{Title: "Cross Rate", Numeric: true},
		{Title: "Purchase Rate", Numeric: true},
	}
	if withCumulative {
		columns = append(columns, domain.ReportColumn{Title: "Cumulative Amount", Numeric: true})
	}
	columns = append(columns,
		domain.ReportColumn{Title: "Eq USD", Numeric: true},
		domain.ReportColumn{Title: "Eq BDT", Numeric: true},
		domain.ReportColumn{Title: "Weighted Avg Rate", Numeric: true},
	)

	table := domain.ReportTable{
		Columns: columns,
		Rows:    make([][]any, 0, len(rows)+1),
	}

	cumulative := 0.0
	for _, r := range rows {
		cells := []any{
			r.GroupKey,
			r.SumAmount.InexactFloat64(),
			r.MeanCrossRate.InexactFloat64(),
			r.MeanPurchaseRate.InexactFloat64(),
		}
		if withCumulative {
			cumulative += r.SumAmount.InexactFloat64()
			cells = append(cells, cumulative)
		}
		cells = append(cells,
			r.SumEqUsd.InexactFloat64(),
			r.SumEqBdt.InexactFloat64(),
			r.WeightedAvgRate.InexactFloat64(),
		)
		table.Rows = append(table.Rows, cells)
	}

	if len(rows) > 0 {
		sumAmount, sumEqUsd, sumEqBdt, weightedAvg := GrandTotal(rows)
		// Mean rate cells carry no meaning across groups and stay blank
		cells := []any{"Grand Total", sumAmount.InexactFloat64(), nil, nil}
		if withCumulative {
			cells = append(cells, nil)
		}
		cells = append(cells,
			sumEqUsd.InexactFloat64(),
			sumEqBdt.InexactFloat64(),
			weightedAvg.InexactFloat64(),
		)
		table.Rows = append(table.Rows, cells)
		table.HasGrandTotal = true
	}

	return table
}

// IsTextColumn reports whether a detail column title belongs to the fixed
// text-aligned membership set. Summary dimension label columns are tagged at
// build time; this helper exists for callers assembling ad hoc tables.
func IsTextColumn(title string) bool {
	return textColumns[title]
}
