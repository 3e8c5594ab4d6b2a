package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
	portssvc "github.com/jakiurshovon/Purchase-Web-App/internal/core/ports/services"
	"github.com/jakiurshovon/Purchase-Web-App/internal/dto"
	"github.com/jakiurshovon/Purchase-Web-App/internal/export"
	"github.com/jakiurshovon/Purchase-Web-App/internal/handlers"
	"github.com/jakiurshovon/Purchase-Web-App/internal/utils"
	"github.com/jakiurshovon/Purchase-Web-App/pkg/config"
)

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) SummaryReport(ctx context.Context, dim domain.Dimension, filter domain.ReportFilter) (dto.SummaryReportResponse, error) {
	args := m.Called(ctx, dim, filter)
	return args.Get(0).(dto.SummaryReportResponse), args.Error(1)
}

func (m *MockReportService) DetailReport(ctx context.Context, filter domain.ReportFilter) (dto.DetailReportResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(dto.DetailReportResponse), args.Error(1)
}

func (m *MockReportService) ExportSummary(ctx context.Context, dim domain.Dimension, filter domain.ReportFilter, format dto.ExportFormat) (*dto.ReportExport, error) {
	args := m.Called(ctx, dim, filter, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReportExport), args.Error(1)
}

func (m *MockReportService) ExportDetail(ctx context.Context, filter domain.ReportFilter, format dto.ExportFormat) (*dto.ReportExport, error) {
	args := m.Called(ctx, filter, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReportExport), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ReportSvcFacade = (*MockReportService)(nil)

// --- Test Suite ---
type ReportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockReportService
	cfg         *config.Config
	authHeader  string
}

func (suite *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.cfg = &config.Config{
		JWTSecret:       "test-secret",
		JWTIssuer:       "purchase-web-app-test",
		IsProduction:    true, // skips swagger registration
		FrontendBaseURL: "http://localhost:3000",
	}
	suite.mockService = new(MockReportService)

	services := &portssvc.ServiceContainer{ReportSvc: suite.mockService}
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, services)

	token, err := utils.GenerateJWT("test-user", suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	suite.authHeader = "Bearer " + token
}

func (suite *ReportHandlerTestSuite) get(path string, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorized {
		req.Header.Set("Authorization", suite.authHeader)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ReportHandlerTestSuite) TestSummaryReport_Success() {
	resp := dto.SummaryReportResponse{GroupBy: "currency"}

	suite.mockService.On("SummaryReport", mock.Anything, domain.DimensionCurrency, domain.ReportFilter{}).
		Return(resp, nil).Once()

	w := suite.get("/api/v1/reports/summary?groupBy=currency", true)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.SummaryReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("currency", body.GroupBy)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReportHandlerTestSuite) TestSummaryReport_DateFilterPassedThrough() {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	suite.mockService.On("SummaryReport", mock.Anything, domain.DimensionRegion, mock.MatchedBy(func(f domain.ReportFilter) bool {
		return f.DateFrom != nil && f.DateFrom.Equal(from) && f.DateTo != nil && f.DateTo.Equal(to)
	})).Return(dto.SummaryReportResponse{GroupBy: "region"}, nil).Once()

	w := suite.get("/api/v1/reports/summary?groupBy=region&from=2025-01-01&to=2025-03-31", true)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReportHandlerTestSuite) TestSummaryReport_InvalidDimension() {
	w := suite.get("/api/v1/reports/summary?groupBy=week", true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "SummaryReport")
}

func (suite *ReportHandlerTestSuite) TestSummaryReport_Unauthorized() {
	w := suite.get("/api/v1/reports/summary?groupBy=currency", false)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *ReportHandlerTestSuite) TestExportSummary_ContentDisposition() {
	result := &dto.ReportExport{
		Filename:    "summary_currency.xlsx",
		ContentType: export.MIMESpreadsheet,
		Content:     []byte("spreadsheet-bytes"),
	}

	suite.mockService.On("ExportSummary", mock.Anything, domain.DimensionCurrency, domain.ReportFilter{}, dto.FormatXLSX).
		Return(result, nil).Once()

	w := suite.get("/api/v1/reports/summary/export?groupBy=currency&format=xlsx", true)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(`attachment; filename="summary_currency.xlsx"`, w.Header().Get("Content-Disposition"))
	suite.Equal(export.MIMESpreadsheet, w.Header().Get("Content-Type"))
	suite.Equal("spreadsheet-bytes", w.Body.String())
}

func (suite *ReportHandlerTestSuite) TestExportSummary_InvalidFormat() {
	w := suite.get("/api/v1/reports/summary/export?groupBy=currency&format=csv", true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ExportSummary")
}

func (suite *ReportHandlerTestSuite) TestExportDetail_PDF() {
	result := &dto.ReportExport{
		Filename:    "detail.pdf",
		ContentType: export.MIMEPDF,
		Content:     []byte("%PDF-fake"),
	}

	suite.mockService.On("ExportDetail", mock.Anything, domain.ReportFilter{}, dto.FormatPDF).
		Return(result, nil).Once()

	w := suite.get("/api/v1/reports/detail/export?format=pdf", true)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(`attachment; filename="detail.pdf"`, w.Header().Get("Content-Disposition"))
	suite.Equal(export.MIMEPDF, w.Header().Get("Content-Type"))
}

func TestReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
