package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
)

// KeyResolver extracts the grouping key for one purchase record. The
// aggregation is agnostic to whether the key is a direct field or resolved
// through a master-data lookup; callers inject whichever resolver fits.
type KeyResolver func(domain.PurchaseRecord) string

// DirectResolver resolves the grouping key straight from the record's own
// field for the given dimension.
func DirectResolver(dim domain.Dimension) KeyResolver {
	return func(p domain.PurchaseRecord) string {
		switch dim {
		case domain.DimensionExchangeHouse:
			return p.ExchangeHouse
		case domain.DimensionRegion:
			return p.Region
		case domain.DimensionCountry:
			return p.Country
		case domain.DimensionCurrency:
			return p.Currency
		}
		return ""
	}
}

// HouseLookupResolver resolves country or region through the exchange-house
// master: the house recorded on the purchase determines the bucket. Records
// whose house is not in the master fall back to their own field, so historical
// rows entered before the master existed are not dropped.
func HouseLookupResolver(dim domain.Dimension, houses []domain.ExchangeHouse) KeyResolver {
	byName := make(map[string]domain.ExchangeHouse, len(houses))
	for _, h := range houses {
		byName[h.Name] = h
	}
	direct := DirectResolver(dim)
	return func(p domain.PurchaseRecord) string {
		h, ok := byName[p.ExchangeHouse]
		if !ok {
			return direct(p)
		}
		switch dim {
		case domain.DimensionCountry:
			return h.Country
		case domain.DimensionRegion:
			return h.Region
		}
		return direct(p)
	}
}

// bucket accumulates one group while summarizing.
type bucket struct {
	row   domain.GroupSummaryRow
	count int64
}

// Summarize groups purchase records by the key produced by resolve and
// aggregates each bucket.
//
// Grouping is exact-string match; an empty key forms its own bucket rather
// than being dropped. Buckets are returned in first-seen record order, which
// keeps the output deterministic for a given input ordering. Derived fields
// are recomputed from the base fields before aggregating so stale stored
// equivalents cannot skew the sums.
//
// Per bucket: amount, eqUsd and eqBdt are summed; crossRate and purchaseRate
// are arithmetic means (informational only). The weighted average rate is
// sumEqBdt/sumEqUsd, zero when sumEqUsd is zero. An empty input yields an
// empty, non-nil result.
func Summarize(records []domain.PurchaseRecord, resolve KeyResolver) []domain.GroupSummaryRow {
	buckets := make(map[string]*bucket)
	order := make([]string, 0)

	for _, rec := range records {
		eqUsd, eqBdt := domain.ComputeDerived(rec.Amount, rec.CrossRate, rec.PurchaseRate)

		key := resolve(rec)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{row: domain.GroupSummaryRow{GroupKey: key}}
			buckets[key] = b
			order = append(order, key)
		}

		b.row.SumAmount = b.row.SumAmount.Add(rec.Amount)
		b.row.SumEqUsd = b.row.SumEqUsd.Add(eqUsd)
		b.row.SumEqBdt = b.row.SumEqBdt.Add(eqBdt)
		// Means are accumulated as sums here and divided once per bucket below.
		b.row.MeanCrossRate = b.row.MeanCrossRate.Add(rec.CrossRate)
		b.row.MeanPurchaseRate = b.row.MeanPurchaseRate.Add(rec.PurchaseRate)
		b.count++
	}

	rows := make([]domain.GroupSummaryRow, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		n := decimal.NewFromInt(b.count)
		b.row.MeanCrossRate = b.row.MeanCrossRate.Div(n)
		b.row.MeanPurchaseRate = b.row.MeanPurchaseRate.Div(n)
		b.row.WeightedAvgRate = safeDiv(b.row.SumEqBdt, b.row.SumEqUsd)
		rows = append(rows, b.row)
	}
	return rows
}

// safeDiv returns a/b, or zero when b is zero.
func safeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}

// GrandTotal aggregates summary rows into overall totals plus the overall
// weighted average rate.
func GrandTotal(rows []domain.GroupSummaryRow) (sumAmount, sumEqUsd, sumEqBdt, weightedAvg decimal.Decimal) {
	for _, r := range rows {
		sumAmount = sumAmount.Add(r.SumAmount)
		sumEqUsd = sumEqUsd.Add(r.SumEqUsd)
		sumEqBdt = sumEqBdt.Add(r.SumEqBdt)
	}
	return sumAmount, sumEqUsd, sumEqBdt, safeDiv(sumEqBdt, sumEqUsd)
}
