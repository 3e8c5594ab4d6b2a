package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jakiurshovon/Purchase-Web-App/internal/apperrors"
	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
)

// ExportFormat selects the download format for a report export.
type ExportFormat string

const (
	FormatXLSX ExportFormat = "xlsx"
	FormatPDF  ExportFormat = "pdf"
)

// ParseExportFormat validates a format supplied by a caller.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case FormatXLSX, FormatPDF:
		return ExportFormat(s), nil
	}
	return "", apperrors.NewValidationError("unknown export format: " + s)
}

// ReportExport is a rendered report document ready for download.
type ReportExport struct {
	Filename    string
	ContentType string
	Content     []byte
}

// GroupSummaryRowResponse is one aggregation bucket in a summary report response.
type GroupSummaryRowResponse struct {
	GroupKey         string          `json:"groupKey"`
	SumAmount        decimal.Decimal `json:"sumAmount"`
	MeanCrossRate    decimal.Decimal `json:"meanCrossRate"`
	MeanPurchaseRate decimal.Decimal `json:"meanPurchaseRate"`
	SumEqUsd         decimal.Decimal `json:"sumEqUsd"`
	SumEqBdt         decimal.Decimal `json:"sumEqBdt"`
	WeightedAvgRate  decimal.Decimal `json:"weightedAvgRate"`
}

// SummaryReportResponse is the JSON form of a summary report. The applied
// filter is echoed back so clients can label what the numbers cover.
type SummaryReportResponse struct {
	GroupBy string                    `json:"groupBy"`
	Filter  domain.ReportFilter       `json:"filter"`
	Rows    []GroupSummaryRowResponse `json:"rows"`
	Totals  struct {
		SumAmount       decimal.Decimal `json:"sumAmount"`
		SumEqUsd        decimal.Decimal `json:"sumEqUsd"`
		SumEqBdt        decimal.Decimal `json:"sumEqBdt"`
		WeightedAvgRate decimal.Decimal `json:"weightedAvgRate"`
	} `json:"totals"`
}

// DetailReportResponse is the JSON form of a detail report.
type DetailReportResponse struct {
	Filter domain.ReportFilter `json:"filter"`
	Rows   []PurchaseResponse  `json:"rows"`
}

// ToSummaryReportResponse converts aggregated rows to a summary report response.
func ToSummaryReportResponse(rows []domain.GroupSummaryRow, dim domain.Dimension) SummaryReportResponse {
	res := SummaryReportResponse{
		GroupBy: string(dim),
		Rows:    make([]GroupSummaryRowResponse, len(rows)),
	}

	sumAmount, sumEqUsd, sumEqBdt := decimal.Zero, decimal.Zero, decimal.Zero
	for i, r := range rows {
		res.Rows[i] = GroupSummaryRowResponse{
			GroupKey:         r.GroupKey,
			SumAmount:        r.SumAmount,
			MeanCrossRate:    r.MeanCrossRate,
			MeanPurchaseRate: r.MeanPurchaseRate,
			SumEqUsd:         r.SumEqUsd,
			SumEqBdt:         r.SumEqBdt,
			WeightedAvgRate:  r.WeightedAvgRate,
		}
		sumAmount = sumAmount.Add(r.SumAmount)
		sumEqUsd = sumEqUsd.Add(r.SumEqUsd)
		sumEqBdt = sumEqBdt.Add(r.SumEqBdt)
	}

	res.Totals.SumAmount = sumAmount
	res.Totals.SumEqUsd = sumEqUsd
	res.Totals.SumEqBdt = sumEqBdt
	if !sumEqUsd.IsZero() {
		res.Totals.WeightedAvgRate = sumEqBdt.Div(sumEqUsd)
	} else {
		res.Totals.WeightedAvgRate = decimal.Zero
	}
	return res
}

// ToDetailReportResponse converts detail records to a detail report response.
func ToDetailReportResponse(records []domain.PurchaseRecord) DetailReportResponse {
	res := DetailReportResponse{Rows: make([]PurchaseResponse, len(records))}
	for i := range records {
		res.Rows[i] = ToPurchaseResponse(&records[i])
	}
	return res
}
