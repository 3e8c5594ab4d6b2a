package services

import (
	"context"
	"fmt"

	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
	portsrepo "github.com/jakiurshovon/Purchase-Web-App/internal/core/ports/repositories"
	portssvc "github.com/jakiurshovon/Purchase-Web-App/internal/core/ports/services"
	"github.com/jakiurshovon/Purchase-Web-App/internal/dto"
	"github.com/jakiurshovon/Purchase-Web-App/internal/export"
	"github.com/jakiurshovon/Purchase-Web-App/internal/utils/reporting"
)

// reportService builds summary and detail reports over purchase records and
// renders them as spreadsheet or PDF downloads.
type reportService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseReader
	houseRepo    portsrepo.ExchangeHouseRepositoryFacade
	letterhead   export.Letterhead
}

// NewReportService creates a new instance of reportService
func NewReportService(purchaseRepo portsrepo.PurchaseReader, houseRepo portsrepo.ExchangeHouseRepositoryFacade, letterhead export.Letterhead) portssvc.ReportSvcFacade {
	return &reportService{
		purchaseRepo: purchaseRepo,
		houseRepo:    houseRepo,
		letterhead:   letterhead,
	}
}

// resolver picks the grouping key function for a dimension. Country and
// region grouping go through the exchange house catalog so that records keep
// following the house's current assignment; the record's own field is only a
// fallback for houses missing from the catalog.
func (s *reportService) resolver(ctx context.Context, dim domain.Dimension) (reporting.KeyResolver, error) {
	switch dim {
	case domain.DimensionCountry, domain.DimensionRegion:
		houses, err := s.houseRepo.ListExchangeHouses(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to list exchange houses for grouping")
			return nil, fmt.Errorf("failed to list exchange houses: %w", err)
		}
		return reporting.HouseLookupResolver(dim, houses), nil
	default:
		return reporting.DirectResolver(dim), nil
	}
}

func (s *reportService) summarize(ctx context.Context, dim domain.Dimension, filter domain.ReportFilter) ([]domain.GroupSummaryRow, error) {
	records, err := s.purchaseRepo.ListPurchases(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases for report")
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	resolve, err := s.resolver(ctx, dim)
	if err != nil {
		return nil, err
	}
	return reporting.Summarize(records, resolve), nil
}

// SummaryReport aggregates purchases along the given dimension.
func (s *reportService) SummaryReport(ctx context.Context, dim domain.Dimension, filter domain.ReportFilter) (dto.SummaryReportResponse, error) {
	rows, err := s.summarize(ctx, dim, filter)
	if err != nil {
		return dto.SummaryReportResponse{}, err
	}
	resp := dto.ToSummaryReportResponse(rows, dim)
	resp.Filter = filter
	return resp, nil
}

// DetailReport returns the filtered purchase records row by row.
func (s *reportService) DetailReport(ctx context.Context, filter domain.ReportFilter) (dto.DetailReportResponse, error) {
	records, err := s.purchaseRepo.ListPurchases(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases for report")
		return dto.DetailReportResponse{}, fmt.Errorf("failed to list purchases: %w", err)
	}
	resp := dto.ToDetailReportResponse(records)
	resp.Filter = filter
	return resp, nil
}

// ExportSummary renders the summary report for download.
func (s *reportService) ExportSummary(ctx context.Context, dim domain.Dimension, filter domain.ReportFilter, format dto.ExportFormat) (*dto.ReportExport, error) {
	rows, err := s.summarize(ctx, dim, filter)
	if err != nil {
		return nil, err
	}
	table := reporting.BuildSummaryTable(rows, dim)

	title := "Purchase Summary by " + dim.Label()
	return s.render(ctx, table, format, "summary_"+string(dim), "Summary", title, filterSubtitle(filter))
}

// ExportDetail renders the detail report for download.
func (s *reportService) ExportDetail(ctx context.Context, filter domain.ReportFilter, format dto.ExportFormat) (*dto.ReportExport, error) {
	records, err := s.purchaseRepo.ListPurchases(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases for report")
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	table := reporting.BuildDetailTable(records)

	return s.render(ctx, table, format, "detail", "Detail", "Purchase Detail Report", filterSubtitle(filter))
}

func (s *reportService) render(ctx context.Context, table domain.ReportTable, format dto.ExportFormat, basename, sheetName, title, subtitle string) (*dto.ReportExport, error) {
	switch format {
	case dto.FormatXLSX:
		content, err := export.Spreadsheet(table, sheetName)
		if err != nil {
			s.LogError(ctx, err, "Failed to render spreadsheet")
			return nil, fmt.Errorf("failed to render spreadsheet: %w", err)
		}
		return &dto.ReportExport{
			Filename:    basename + ".xlsx",
			ContentType: export.MIMESpreadsheet,
			Content:     content,
		}, nil
	case dto.FormatPDF:
		content, err := export.PDF(table, s.letterhead, title, subtitle)
		if err != nil {
			s.LogError(ctx, err, "Failed to render PDF")
			return nil, fmt.Errorf("failed to render PDF: %w", err)
		}
		return &dto.ReportExport{
			Filename:    basename + ".pdf",
			ContentType: export.MIMEPDF,
			Content:     content,
		}, nil
	}
	return nil, fmt.Errorf("unknown export format: %s", format)
}

// filterSubtitle renders the active filter for the report letterhead.
func filterSubtitle(filter domain.ReportFilter) string {
	from, to := "beginning", "present"
	if filter.DateFrom != nil {
		from = filter.DateFrom.Format(dateLayout)
	}
	if filter.DateTo != nil {
		to = filter.DateTo.Format(dateLayout)
	}
	subtitle := "Period: " + from + " to " + to
	if filter.Country != "" {
		subtitle += " | Country: " + filter.Country
	}
	if filter.Region != "" {
		subtitle += " | Region: " + filter.Region
	}
	if filter.ExchangeHouse != "" {
		subtitle += " | Exchange House: " + filter.ExchangeHouse
	}
	return subtitle
}
