package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jakiurshovon/Purchase-Web-App/internal/apperrors"
)

// Dimension is the attribute used to bucket purchases for a summary report.
type Dimension string

const (
	DimensionExchangeHouse Dimension = "exchange_house"
	DimensionRegion        Dimension = "region"
	DimensionCountry       Dimension = "country"
	DimensionCurrency      Dimension = "currency"
)

// ParseDimension validates a grouping dimension supplied by a caller. An
// unknown dimension is a contract violation and is rejected here, at the call
// boundary, rather than silently producing an empty report.
func ParseDimension(s string) (Dimension, error) {
	switch Dimension(s) {
	case DimensionExchangeHouse, DimensionRegion, DimensionCountry, DimensionCurrency:
		return Dimension(s), nil
	}
	return "", apperrors.NewValidationError("unknown grouping dimension: " + s)
}

// Label returns the human-readable column heading for the dimension.
func (d Dimension) Label() string {
	switch d {
	case DimensionExchangeHouse:
		return "Exchange House"
	case DimensionRegion:
		return "Region"
	case DimensionCountry:
		return "Country"
	case DimensionCurrency:
		return "Currency"
	}
	return string(d)
}

// ReportFilter scopes which purchases feed a report or listing. All fields are
// optional; a zero value places no restriction on that attribute. Date bounds
// are inclusive.
type ReportFilter struct {
	DateFrom      *time.Time `json:"dateFrom,omitempty"`
	DateTo        *time.Time `json:"dateTo,omitempty"`
	Country       string     `json:"country,omitempty"`
	Region        string     `json:"region,omitempty"`
	ExchangeHouse string     `json:"exchangeHouse,omitempty"`
}

// GroupSummaryRow is one aggregation bucket of a summary report. It is
// computed on demand and never persisted.
//
// WeightedAvgRate is SumEqBdt / SumEqUsd (zero when SumEqUsd is zero): the
// effective blended purchase rate weighted by USD-equivalent volume, not a
// simple mean of per-record rates.
type GroupSummaryRow struct {
	GroupKey         string          `json:"groupKey"` // may be empty: blank keys form their own bucket
	SumAmount        decimal.Decimal `json:"sumAmount"`
	MeanCrossRate    decimal.Decimal `json:"meanCrossRate"`
	MeanPurchaseRate decimal.Decimal `json:"meanPurchaseRate"`
	SumEqUsd         decimal.Decimal `json:"sumEqUsd"`
	SumEqBdt         decimal.Decimal `json:"sumEqBdt"`
	WeightedAvgRate  decimal.Decimal `json:"weightedAvgRate"`
}

// ReportColumn describes one column of a presentation-ready report table.
// Numeric drives alignment and number formatting in the exporters; columns
// without a recognised tag are treated as numeric.
type ReportColumn struct {
	Title   string `json:"title"`
	Numeric bool   `json:"numeric"`
}

// ReportTable is an ordered set of named columns plus ordered rows, ready for
// tabular display or export. Cells are either string (text columns) or float64
// (numeric columns). The column set is stable even when Rows is empty so
// exporters can always rely on the schema.
type ReportTable struct {
	Columns []ReportColumn `json:"columns"`
	Rows    [][]any        `json:"rows"`
	// HasGrandTotal marks the last row as a grand-total row so the PDF
	// renderer can style it (bold, centered, spanning the first two columns).
	HasGrandTotal bool `json:"hasGrandTotal"`
}
