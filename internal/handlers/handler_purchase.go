package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jakiurshovon/Purchase-Web-App/internal/apperrors"
	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
	portssvc "github.com/jakiurshovon/Purchase-Web-App/internal/core/ports/services"
	"github.com/jakiurshovon/Purchase-Web-App/internal/dto"
	"github.com/jakiurshovon/Purchase-Web-App/internal/middleware"
)

// purchaseHandler handles HTTP requests related to purchase records.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

// newPurchaseHandler creates a new purchaseHandler.
func newPurchaseHandler(ps portssvc.PurchaseSvcFacade) *purchaseHandler {
	return &purchaseHandler{purchaseService: ps}
}

// registerPurchaseRoutes registers routes related to purchase records.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	h := newPurchaseHandler(purchaseService)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.createPurchase)
		purchases.GET("", h.listPurchases)
		purchases.GET("/:id", h.getPurchaseByID)
		purchases.PUT("/:id", h.updatePurchase)
		purchases.DELETE("/:id", h.deletePurchase)
		purchases.PUT("/bulk", h.bulkUpdatePurchases)
	}
}

// parseReportFilter reads the shared filter query parameters. Date bounds are
// inclusive and use the YYYY-MM-DD layout.
func parseReportFilter(c *gin.Context) (domain.ReportFilter, error) {
	var filter domain.ReportFilter

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return filter, apperrors.NewValidationError("invalid 'from' date: " + fromStr)
		}
		filter.DateFrom = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return filter, apperrors.NewValidationError("invalid 'to' date: " + toStr)
		}
		filter.DateTo = &to
	}
	filter.Country = c.Query("country")
	filter.Region = c.Query("region")
	filter.ExchangeHouse = c.Query("exchangeHouse")
	return filter, nil
}

// createPurchase godoc
// @Summary Record a new purchase
// @Description Creates a purchase record; the USD and BDT equivalents are computed server-side
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.purchaseService.CreatePurchase(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create purchase", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create purchase"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(record))
}

// listPurchases godoc
// @Summary List purchase records
// @Description Lists purchases matching the filter, ordered by date
// @Tags purchases
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param   to query string false "End date (YYYY-MM-DD, inclusive)"
// @Param   country query string false "Country filter"
// @Param   region query string false "Region filter"
// @Param   exchangeHouse query string false "Exchange house filter"
// @Success 200 {object} dto.ListPurchasesResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, err := parseReportFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, err := h.purchaseService.ListPurchases(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list purchases", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list purchases"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPurchasesResponse(records))
}

// getPurchaseByID godoc
// @Summary Get a purchase record
// @Tags purchases
// @Produce  json
// @Param   id path string true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /purchases/{id} [get]
func (h *purchaseHandler) getPurchaseByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("id")

	record, err := h.purchaseService.GetPurchaseByID(c.Request.Context(), purchaseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
		} else {
			logger.Error("Failed to get purchase", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get purchase"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseResponse(record))
}

// updatePurchase godoc
// @Summary Update a purchase record
// @Description Updates a purchase; derived fields are recomputed from the submitted values
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   id path string true "Purchase ID"
// @Param   purchase body dto.UpdatePurchaseRequest true "Purchase details"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /purchases/{id} [put]
func (h *purchaseHandler) updatePurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("id")

	var req dto.UpdatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.purchaseService.UpdatePurchase(c.Request.Context(), userID, purchaseID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update purchase", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update purchase"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseResponse(record))
}

// deletePurchase godoc
// @Summary Delete a purchase record
// @Tags purchases
// @Param   id path string true "Purchase ID"
// @Success 204 "No content"
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /purchases/{id} [delete]
func (h *purchaseHandler) deletePurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.purchaseService.DeletePurchase(c.Request.Context(), userID, purchaseID); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
		} else {
			logger.Error("Failed to delete purchase", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete purchase"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// bulkUpdatePurchases godoc
// @Summary Bulk update purchase records
// @Description Applies a batch of edit-grid rows; rows are written independently and failures are counted, not rolled back
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   rows body dto.BulkUpdatePurchasesRequest true "Changed rows"
// @Success 200 {object} dto.BulkUpdateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /purchases/bulk [put]
func (h *purchaseHandler) bulkUpdatePurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BulkUpdatePurchasesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BulkUpdatePurchases", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.purchaseService.BulkUpdatePurchases(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("Failed to bulk update purchases", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to bulk update purchases"})
		return
	}

	c.JSON(http.StatusOK, result)
}
