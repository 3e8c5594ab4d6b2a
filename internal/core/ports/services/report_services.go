package services

import (
	"context"

	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
	"github.com/jakiurshovon/Purchase-Web-App/internal/dto"
)

// ReportSvcFacade builds summary and detail reports and renders them for download.
type ReportSvcFacade interface {
	SummaryReport(ctx context.Context, dim domain.Dimension, filter domain.ReportFilter) (dto.SummaryReportResponse, error)
	DetailReport(ctx context.Context, filter domain.ReportFilter) (dto.DetailReportResponse, error)
	ExportSummary(ctx context.Context, dim domain.Dimension, filter domain.ReportFilter, format dto.ExportFormat) (*dto.ReportExport, error)
	ExportDetail(ctx context.Context, filter domain.ReportFilter, format dto.ExportFormat) (*dto.ReportExport, error)
}
