package reporting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
	"github.com/jakiurshovon/Purchase-Web-App/internal/utils/reporting"
)

func record(house, region, country, currency, amount, crossRate, purchaseRate string) domain.PurchaseRecord {
	p := domain.PurchaseRecord{
		Date:          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		ExchangeHouse: house,
		Region:        region,
		Country:       country,
		Currency:      currency,
		Amount:        decimal.RequireFromString(amount),
		CrossRate:     decimal.RequireFromString(crossRate),
		PurchaseRate:  decimal.RequireFromString(purchaseRate),
	}
	p.RecomputeDerived()
	return p
}

func TestSummarizeByCurrency(t *testing.T) {
	records := []domain.PurchaseRecord{
		record("Al Haramain", "Middle East", "UAE", "USD", "100", "1", "110"),
		record("Western Union", "Americas", "USA", "USD", "50", "1", "109"),
		record("Al Haramain", "Middle East", "UAE", "AED", "300", "0.2723", "29.85"),
	}

	rows := reporting.Summarize(records, reporting.DirectResolver(domain.DimensionCurrency))
	require.Len(t, rows, 2)

	usd := rows[0]
	assert.Equal(t, "USD", usd.GroupKey)
	assert.True(t, usd.SumAmount.Equal(decimal.RequireFromString("150")))
	assert.True(t, usd.SumEqUsd.Equal(decimal.RequireFromString("150")))
	assert.True(t, usd.SumEqBdt.Equal(decimal.RequireFromString("16450")))
	assert.True(t, usd.MeanCrossRate.Equal(decimal.RequireFromString("1")))
	assert.True(t, usd.MeanPurchaseRate.Equal(decimal.RequireFromString("109.5")))
	// 16450 / 150
	wantWeighted := decimal.RequireFromString("16450").Div(decimal.RequireFromString("150"))
	assert.True(t, usd.WeightedAvgRate.Equal(wantWeighted), "weighted = %s", usd.WeightedAvgRate)

	aed := rows[1]
	assert.Equal(t, "AED", aed.GroupKey)
	assert.True(t, aed.SumAmount.Equal(decimal.RequireFromString("300")))
}

func TestSummarizeFirstSeenOrder(t *testing.T) {
	records := []domain.PurchaseRecord{
		record("B House", "", "", "GBP", "10", "1.27", "139"),
		record("A House", "", "", "USD", "10", "1", "110"),
		record("B House", "", "", "EUR", "10", "1.08", "118"),
	}

	rows := reporting.Summarize(records, reporting.DirectResolver(domain.DimensionExchangeHouse))
	require.Len(t, rows, 2)
	assert.Equal(t, "B House", rows[0].GroupKey)
	assert.Equal(t, "A House", rows[1].GroupKey)
}

func TestSummarizeEmptyInput(t *testing.T) {
	rows := reporting.Summarize(nil, reporting.DirectResolver(domain.DimensionCurrency))
	require.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestSummarizeZeroUsdWeightedAverage(t *testing.T) {
	records := []domain.PurchaseRecord{
		record("X", "", "", "USD", "100", "0", "110"),
	}

	rows := reporting.Summarize(records, reporting.DirectResolver(domain.DimensionCurrency))
	require.Len(t, rows, 1)
	assert.True(t, rows[0].SumEqUsd.IsZero())
	assert.True(t, rows[0].WeightedAvgRate.IsZero())
}

func TestSummarizeBlankKeyFormsOwnBucket(t *testing.T) {
	records := []domain.PurchaseRecord{
		record("", "", "", "USD", "100", "1", "110"),
		record("Known House", "", "", "USD", "50", "1", "110"),
	}

	rows := reporting.Summarize(records, reporting.DirectResolver(domain.DimensionExchangeHouse))
	require.Len(t, rows, 2)
	assert.Equal(t, "", rows[0].GroupKey)
	assert.True(t, rows[0].SumAmount.Equal(decimal.RequireFromString("100")))
}

func TestSummarizeRecomputesStaleDerivedFields(t *testing.T) {
	rec := record("X", "", "", "USD", "100", "1", "110")
	rec.EqUsd = decimal.RequireFromString("5")
	rec.EqBdt = decimal.RequireFromString("5")

	rows := reporting.Summarize([]domain.PurchaseRecord{rec}, reporting.DirectResolver(domain.DimensionCurrency))
	require.Len(t, rows, 1)
	assert.True(t, rows[0].SumEqUsd.Equal(decimal.RequireFromString("100")))
	assert.True(t, rows[0].SumEqBdt.Equal(decimal.RequireFromString("11000")))
}

func TestSummarizePartitionsGrandTotal(t *testing.T) {
	records := []domain.PurchaseRecord{
		record("A", "R1", "C1", "USD", "100", "1", "110"),
		record("B", "R2", "C2", "EUR", "200", "1.08", "118"),
		record("C", "R1", "C1", "GBP", "300", "1.27", "139"),
		record("A", "R1", "C1", "AED", "400", "0.2723", "29.85"),
	}

	wantAmount, wantUsd, wantBdt := decimal.Zero, decimal.Zero, decimal.Zero
	for _, rec := range records {
		wantAmount = wantAmount.Add(rec.Amount)
		wantUsd = wantUsd.Add(rec.EqUsd)
		wantBdt = wantBdt.Add(rec.EqBdt)
	}

	// Whatever the dimension, the buckets partition the records: totals match.
	for _, dim := range []domain.Dimension{
		domain.DimensionExchangeHouse,
		domain.DimensionRegion,
		domain.DimensionCountry,
		domain.DimensionCurrency,
	} {
		rows := reporting.Summarize(records, reporting.DirectResolver(dim))
		sumAmount, sumEqUsd, sumEqBdt, weightedAvg := reporting.GrandTotal(rows)
		assert.True(t, sumAmount.Equal(wantAmount), "dim %s amount = %s", dim, sumAmount)
		assert.True(t, sumEqUsd.Equal(wantUsd), "dim %s eqUsd = %s", dim, sumEqUsd)
		assert.True(t, sumEqBdt.Equal(wantBdt), "dim %s eqBdt = %s", dim, sumEqBdt)
		assert.True(t, weightedAvg.Equal(wantBdt.Div(wantUsd)), "dim %s weighted = %s", dim, weightedAvg)
	}
}

func TestHouseLookupResolver(t *testing.T) {
	houses := []domain.ExchangeHouse{
		{Name: "Al Haramain", Country: "UAE", Region: "Middle East"},
		{Name: "Western Union", Country: "USA", Region: "Americas"},
	}

	// The record's own country disagrees with the master; the master wins.
	rec := record("Al Haramain", "Stale Region", "Stale Country", "USD", "100", "1", "110")

	byCountry := reporting.HouseLookupResolver(domain.DimensionCountry, houses)
	assert.Equal(t, "UAE", byCountry(rec))

	byRegion := reporting.HouseLookupResolver(domain.DimensionRegion, houses)
	assert.Equal(t, "Middle East", byRegion(rec))

	// Unknown house falls back to the record's own field.
	unknown := record("No Such House", "Own Region", "Own Country", "USD", "100", "1", "110")
	assert.Equal(t, "Own Country", byCountry(unknown))
	assert.Equal(t, "Own Region", byRegion(unknown))
}
