package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
	portssvc "github.com/jakiurshovon/Purchase-Web-App/internal/core/ports/services"
	"github.com/jakiurshovon/Purchase-Web-App/internal/dto"
	"github.com/jakiurshovon/Purchase-Web-App/internal/middleware"
)

// reportHandler handles HTTP requests for summary and detail reports.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

// newReportHandler creates a new reportHandler.
func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{reportService: rs}
}

// registerReportRoutes registers routes related to reports.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.summaryReport)
		reports.GET("/summary/export", h.exportSummary)
		reports.GET("/detail", h.detailReport)
		reports.GET("/detail/export", h.exportDetail)
	}
}

// summaryReport godoc
// @Summary Summary report
// @Description Aggregates purchases along a dimension with sums, mean rates and the BDT/USD weighted average rate
// @Tags reports
// @Produce  json
// @Param   groupBy query string true "Dimension: exchange_house, region, country or currency"
// @Param   from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param   to query string false "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {object} dto.SummaryReportResponse
// @Failure 400 {object} map[string]string "Invalid dimension or filter"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportHandler) summaryReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	dim, filter, err := parseSummaryParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.reportService.SummaryReport(c.Request.Context(), dim, filter)
	if err != nil {
		logger.Error("Failed to build summary report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary report"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// detailReport godoc
// @Summary Detail report
// @Description Lists the filtered purchases row by row with their derived equivalents
// @Tags reports
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param   to query string false "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {object} dto.DetailReportResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Security BearerAuth
// @Router /reports/detail [get]
func (h *reportHandler) detailReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, err := parseReportFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.reportService.DetailReport(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to build detail report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build detail report"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// exportSummary godoc
// @Summary Download the summary report
// @Description Renders the summary report as an XLSX or PDF download
// @Tags reports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce  application/pdf
// @Param   groupBy query string true "Dimension: exchange_house, region, country or currency"
// @Param   format query string true "Export format: xlsx or pdf"
// @Param   from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param   to query string false "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid dimension, format or filter"
// @Security BearerAuth
// @Router /reports/summary/export [get]
func (h *reportHandler) exportSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	dim, filter, err := parseSummaryParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	format, err := dto.ParseExportFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	export, err := h.reportService.ExportSummary(c.Request.Context(), dim, filter, format)
	if err != nil {
		logger.Error("Failed to export summary report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export summary report"})
		return
	}

	serveExport(c, export)
}

// exportDetail godoc
// @Summary Download the detail report
// @Description Renders the detail report as an XLSX or PDF download
// @Tags reports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce  application/pdf
// @Param   format query string true "Export format: xlsx or pdf"
// @Param   from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param   to query string false "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid format or filter"
// @Security BearerAuth
// @Router /reports/detail/export [get]
func (h *reportHandler) exportDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, err := parseReportFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	format, err := dto.ParseExportFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	export, err := h.reportService.ExportDetail(c.Request.Context(), filter, format)
	if err != nil {
		logger.Error("Failed to export detail report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export detail report"})
		return
	}

	serveExport(c, export)
}

// parseSummaryParams reads the grouping dimension and shared filter.
func parseSummaryParams(c *gin.Context) (domain.Dimension, domain.ReportFilter, error) {
	dim, err := domain.ParseDimension(c.Query("groupBy"))
	if err != nil {
		return "", domain.ReportFilter{}, err
	}
	filter, err := parseReportFilter(c)
	if err != nil {
		return "", domain.ReportFilter{}, err
	}
	return dim, filter, nil
}

// serveExport writes a rendered report as an attachment download.
func serveExport(c *gin.Context, export *dto.ReportExport) {
	c.Header("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	c.Data(http.StatusOK, export.ContentType, export.Content)
}
