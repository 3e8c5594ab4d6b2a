package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
	portssvc "github.com/jakiurshovon/Purchase-Web-App/internal/core/ports/services"
	"github.com/jakiurshovon/Purchase-Web-App/internal/core/services"
	"github.com/jakiurshovon/Purchase-Web-App/internal/dto"
	"github.com/jakiurshovon/Purchase-Web-App/internal/export"
)

// --- Mock ExchangeHouseRepository ---
type MockExchangeHouseRepository struct {
	mock.Mock
}

func (m *MockExchangeHouseRepository) SaveExchangeHouse(ctx context.Context, house domain.ExchangeHouse) error {
	args := m.Called(ctx, house)
	return args.Error(0)
}

func (m *MockExchangeHouseRepository) ListExchangeHouses(ctx context.Context) ([]domain.ExchangeHouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeHouse), args.Error(1)
}

func (m *MockExchangeHouseRepository) FindExchangeHouseByID(ctx context.Context, exchangeHouseID string) (*domain.ExchangeHouse, error) {
	args := m.Called(ctx, exchangeHouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeHouse), args.Error(1)
}

func (m *MockExchangeHouseRepository) UpdateExchangeHouse(ctx context.Context, house domain.ExchangeHouse) error {
	args := m.Called(ctx, house)
	return args.Error(0)
}

func (m *MockExchangeHouseRepository) DeleteExchangeHouse(ctx context.Context, exchangeHouseID string) error {
	args := m.Called(ctx, exchangeHouseID)
	return args.Error(0)
}

// --- Test Suite ---
type ReportServiceTestSuite struct {
	suite.Suite
	mockPurchases *MockPurchaseRepository
	mockHouses    *MockExchangeHouseRepository
	service       portssvc.ReportSvcFacade
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockPurchases = new(MockPurchaseRepository)
	suite.mockHouses = new(MockExchangeHouseRepository)
	suite.service = services.NewReportService(suite.mockPurchases, suite.mockHouses, export.Letterhead{
		Organization: "Rupali Bank PLC.",
		Division:     "Treasury Division (Front Office)",
		System:       "Foreign Currency Purchase Reporting System",
	})
}

func testRecord(house, currency, amount, crossRate, purchaseRate string) domain.PurchaseRecord {
	p := domain.PurchaseRecord{
		Date:          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		ExchangeHouse: house,
		Currency:      currency,
		Amount:        decimal.RequireFromString(amount),
		CrossRate:     decimal.RequireFromString(crossRate),
		PurchaseRate:  decimal.RequireFromString(purchaseRate),
	}
	p.RecomputeDerived()
	return p
}

// --- Test Cases ---

func (suite *ReportServiceTestSuite) TestSummaryReport_ByCurrency() {
	ctx := context.Background()
	records := []domain.PurchaseRecord{
		testRecord("A", "USD", "100", "1", "110"),
		testRecord("B", "USD", "50", "1", "109"),
	}

	suite.mockPurchases.On("ListPurchases", ctx, domain.ReportFilter{}).Return(records, nil).Once()

	resp, err := suite.service.SummaryReport(ctx, domain.DimensionCurrency, domain.ReportFilter{})

	suite.Require().NoError(err)
	suite.Equal("currency", resp.GroupBy)
	suite.Require().Len(resp.Rows, 1)
	suite.True(resp.Rows[0].SumAmount.Equal(decimal.RequireFromString("150")))
	suite.True(resp.Rows[0].SumEqBdt.Equal(decimal.RequireFromString("16450")))
	suite.True(resp.Totals.SumEqUsd.Equal(decimal.RequireFromString("150")))
	// Direct grouping never touches the exchange house catalog
	suite.mockHouses.AssertNotCalled(suite.T(), "ListExchangeHouses")
}

func (suite *ReportServiceTestSuite) TestSummaryReport_ByCountryUsesHouseCatalog() {
	ctx := context.Background()
	records := []domain.PurchaseRecord{
		testRecord("Al Haramain", "USD", "100", "1", "110"),
	}
	houses := []domain.ExchangeHouse{
		{Name: "Al Haramain", Country: "UAE", Region: "Middle East"},
	}

	suite.mockPurchases.On("ListPurchases", ctx, domain.ReportFilter{}).Return(records, nil).Once()
	suite.mockHouses.On("ListExchangeHouses", ctx).Return(houses, nil).Once()

	resp, err := suite.service.SummaryReport(ctx, domain.DimensionCountry, domain.ReportFilter{})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Rows, 1)
	suite.Equal("UAE", resp.Rows[0].GroupKey)
	suite.mockHouses.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestDetailReport() {
	ctx := context.Background()
	records := []domain.PurchaseRecord{
		testRecord("A", "USD", "100", "1", "110"),
		testRecord("B", "EUR", "200", "1.08", "118"),
	}

	suite.mockPurchases.On("ListPurchases", ctx, domain.ReportFilter{}).Return(records, nil).Once()

	resp, err := suite.service.DetailReport(ctx, domain.ReportFilter{})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Rows, 2)
	suite.Equal("2025-06-01", resp.Rows[0].Date)
	suite.True(resp.Rows[1].EqUsd.Equal(decimal.RequireFromString("216")))
}

func (suite *ReportServiceTestSuite) TestExportSummary_XLSX() {
	ctx := context.Background()
	records := []domain.PurchaseRecord{
		testRecord("A", "USD", "100", "1", "110"),
	}

	suite.mockPurchases.On("ListPurchases", ctx, domain.ReportFilter{}).Return(records, nil).Once()

	result, err := suite.service.ExportSummary(ctx, domain.DimensionCurrency, domain.ReportFilter{}, dto.FormatXLSX)

	suite.Require().NoError(err)
	suite.Equal("summary_currency.xlsx", result.Filename)
	suite.Equal(export.MIMESpreadsheet, result.ContentType)
	suite.NotEmpty(result.Content)
}

func (suite *ReportServiceTestSuite) TestExportSummary_PDF() {
	ctx := context.Background()
	records := []domain.PurchaseRecord{
		testRecord("A", "USD", "100", "1", "110"),
	}

	suite.mockPurchases.On("ListPurchases", ctx, domain.ReportFilter{}).Return(records, nil).Once()

	result, err := suite.service.ExportSummary(ctx, domain.DimensionCurrency, domain.ReportFilter{}, dto.FormatPDF)

	suite.Require().NoError(err)
	suite.Equal("summary_currency.pdf", result.Filename)
	suite.Equal(export.MIMEPDF, result.ContentType)
	suite.True(bytes.HasPrefix(result.Content, []byte("%PDF")))
}

func (suite *ReportServiceTestSuite) TestExportDetail_Filenames() {
	ctx := context.Background()

	suite.mockPurchases.On("ListPurchases", ctx, domain.ReportFilter{}).Return([]domain.PurchaseRecord{}, nil).Twice()

	xlsxResult, err := suite.service.ExportDetail(ctx, domain.ReportFilter{}, dto.FormatXLSX)
	suite.Require().NoError(err)
	suite.Equal("detail.xlsx", xlsxResult.Filename)

	pdfResult, err := suite.service.ExportDetail(ctx, domain.ReportFilter{}, dto.FormatPDF)
	suite.Require().NoError(err)
	suite.Equal("detail.pdf", pdfResult.Filename)
}

func (suite *ReportServiceTestSuite) TestSummaryReport_ListError() {
	ctx := context.Background()

	suite.mockPurchases.On("ListPurchases", ctx, domain.ReportFilter{}).Return(nil, context.DeadlineExceeded).Once()

	_, err := suite.service.SummaryReport(ctx, domain.DimensionCurrency, domain.ReportFilter{})

	suite.Require().Error(err)
	suite.ErrorIs(err, context.DeadlineExceeded)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
