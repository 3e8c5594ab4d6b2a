package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jakiurshovon/Purchase-Web-App/internal/apperrors"
	portssvc "github.com/jakiurshovon/Purchase-Web-App/internal/core/ports/services"
	"github.com/jakiurshovon/Purchase-Web-App/internal/dto"
	"github.com/jakiurshovon/Purchase-Web-App/internal/middleware"
)

// masterDataHandler handles HTTP requests for the country, region and
// exchange house catalogs.
type masterDataHandler struct {
	countrySvc portssvc.CountrySvcFacade
	regionSvc  portssvc.RegionSvcFacade
	houseSvc   portssvc.ExchangeHouseSvcFacade
}

// registerMasterDataRoutes registers routes related to master data catalogs.
func registerMasterDataRoutes(rg *gin.RouterGroup, countrySvc portssvc.CountrySvcFacade, regionSvc portssvc.RegionSvcFacade, houseSvc portssvc.ExchangeHouseSvcFacade) {
	h := &masterDataHandler{countrySvc: countrySvc, regionSvc: regionSvc, houseSvc: houseSvc}

	masters := rg.Group("/masters")

	countries := masters.Group("/countries")
	{
		countries.POST("", h.createCountry)
		countries.GET("", h.listCountries)
		countries.PUT("/:id", h.updateCountry)
		countries.DELETE("/:id", h.deleteCountry)
	}

	regions := masters.Group("/regions")
	{
		regions.POST("", h.createRegion)
		regions.GET("", h.listRegions)
		regions.PUT("/:id", h.updateRegion)
		regions.DELETE("/:id", h.deleteRegion)
	}

	houses := masters.Group("/exchange-houses")
	{
		houses.POST("", h.createExchangeHouse)
		houses.GET("", h.listExchangeHouses)
		houses.PUT("/:id", h.updateExchangeHouse)
		houses.DELETE("/:id", h.deleteExchangeHouse)
	}
}

// respondMasterDataError maps service errors to HTTP responses shared by all
// catalog endpoints.
func respondMasterDataError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Master data operation failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// createCountry godoc
// @Summary Create a country
// @Description Adds a country to the catalog (admin only)
// @Tags master-data
// @Accept  json
// @Produce  json
// @Param   country body dto.CreateCountryRequest true "Country details"
// @Success 201 {object} dto.CountryResponse
// @Failure 403 {object} map[string]string "Admin role required"
// @Security BearerAuth
// @Router /masters/countries [post]
func (h *masterDataHandler) createCountry(c *gin.Context) {
	var req dto.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	country, err := h.countrySvc.CreateCountry(c.Request.Context(), userID, req)
	if err != nil {
		respondMasterDataError(c, err, "create country")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCountryResponse(country))
}

// listCountries godoc
// @Summary List countries
// @Tags master-data
// @Produce  json
// @Success 200 {array} dto.CountryResponse
// @Security BearerAuth
// @Router /masters/countries [get]
func (h *masterDataHandler) listCountries(c *gin.Context) {
	countries, err := h.countrySvc.ListCountries(c.Request.Context())
	if err != nil {
		respondMasterDataError(c, err, "list countries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCountryResponse(countries))
}

// updateCountry godoc
// @Summary Update a country
// @Tags master-data
// @Accept  json
// @Produce  json
// @Param   id path string true "Country ID"
// @Param   country body dto.UpdateCountryRequest true "Country details"
// @Success 200 {object} dto.CountryResponse
// @Failure 403 {object} map[string]string "Admin role required"
// @Security BearerAuth
// @Router /masters/countries/{id} [put]
func (h *masterDataHandler) updateCountry(c *gin.Context) {
	var req dto.UpdateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	country, err := h.countrySvc.UpdateCountry(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondMasterDataError(c, err, "update country")
		return
	}
	c.JSON(http.StatusOK, dto.ToCountryResponse(country))
}

// deleteCountry godoc
// @Summary Delete a country
// @Tags master-data
// @Param   id path string true "Country ID"
// @Success 204 "No content"
// @Failure 403 {object} map[string]string "Admin role required"
// @Security BearerAuth
// @Router /masters/countries/{id} [delete]
func (h *masterDataHandler) deleteCountry(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := h.countrySvc.DeleteCountry(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondMasterDataError(c, err, "delete country")
		return
	}
	c.Status(http.StatusNoContent)
}

// createRegion godoc
// @Summary Create a region
// @Description Adds a region to the catalog (admin only)
// @Tags master-data
// @Accept  json
// @Produce  json
// @Param   region body dto.CreateRegionRequest true "Region details"
// @Success 201 {object} dto.RegionResponse
// @Failure 403 {object} map[string]string "Admin role required"
// @Security BearerAuth
// @Router /masters/regions [post]
func (h *masterDataHandler) createRegion(c *gin.Context) {
	var req dto.CreateRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	region, err := h.regionSvc.CreateRegion(c.Request.Context(), userID, req)
	if err != nil {
		respondMasterDataError(c, err, "create region")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRegionResponse(region))
}

// listRegions godoc
// @Summary List regions
// @Tags master-data
// @Produce  json
// @Success 200 {array} dto.RegionResponse
// @Security BearerAuth
// @Router /masters/regions [get]
func (h *masterDataHandler) listRegions(c *gin.Context) {
	regions, err := h.regionSvc.ListRegions(c.Request.Context())
	if err != nil {
		respondMasterDataError(c, err, "list regions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRegionResponse(regions))
}

// updateRegion godoc
// @Summary Update a region
// @Tags master-data
// @Accept  json
// @Produce  json
// @Param   id path string true "Region ID"
// @Param   region body dto.UpdateRegionRequest true "Region details"
// @Success 200 {object} dto.RegionResponse
// @Failure 403 {object} map[string]string "Admin role required"
// @Security BearerAuth
// @Router /masters/regions/{id} [put]
func (h *masterDataHandler) updateRegion(c *gin.Context) {
	var req dto.UpdateRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	region, err := h.regionSvc.UpdateRegion(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondMasterDataError(c, err, "update region")
		return
	}
	c.JSON(http.StatusOK, dto.ToRegionResponse(region))
}

// deleteRegion godoc
// @Summary Delete a region
// @Tags master-data
// @Param   id path string true "Region ID"
// @Success 204 "No content"
// @Failure 403 {object} map[string]string "Admin role required"
// @Security BearerAuth
// @Router /masters/regions/{id} [delete]
func (h *masterDataHandler) deleteRegion(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := h.regionSvc.DeleteRegion(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondMasterDataError(c, err, "delete region")
		return
	}
	c.Status(http.StatusNoContent)
}

// createExchangeHouse godoc
// @Summary Create an exchange house
// @Description Adds an exchange house to the catalog (admin only); its country and region drive indirect report grouping
// @Tags master-data
// @Accept  json
// @Produce  json
// @Param   house body dto.CreateExchangeHouseRequest true "Exchange house details"
// @Success 201 {object} dto.ExchangeHouseResponse
// @Failure 403 {object} map[string]string "Admin role required"
// @Security BearerAuth
// @Router /masters/exchange-houses [post]
func (h *masterDataHandler) createExchangeHouse(c *gin.Context) {
	var req dto.CreateExchangeHouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	house, err := h.houseSvc.CreateExchangeHouse(c.Request.Context(), userID, req)
	if err != nil {
		respondMasterDataError(c, err, "create exchange house")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExchangeHouseResponse(house))
}

// listExchangeHouses godoc
// @Summary List exchange houses
// @Tags master-data
// @Produce  json
// @Success 200 {array} dto.ExchangeHouseResponse
// @Security BearerAuth
// @Router /masters/exchange-houses [get]
func (h *masterDataHandler) listExchangeHouses(c *gin.Context) {
	houses, err := h.houseSvc.ListExchangeHouses(c.Request.Context())
	if err != nil {
		respondMasterDataError(c, err, "list exchange houses")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeHouseResponse(houses))
}

// updateExchangeHouse godoc
// @Summary Update an exchange house
// @Tags master-data
// @Accept  json
// @Produce  json
// @Param   id path string true "Exchange house ID"
// @Param   house body dto.UpdateExchangeHouseRequest true "Exchange house details"
// @Success 200 {object} dto.ExchangeHouseResponse
// @Failure 403 {object} map[string]string "Admin role required"
// @Security BearerAuth
// @Router /masters/exchange-houses/{id} [put]
func (h *masterDataHandler) updateExchangeHouse(c *gin.Context) {
	var req dto.UpdateExchangeHouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	house, err := h.houseSvc.UpdateExchangeHouse(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondMasterDataError(c, err, "update exchange house")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeHouseResponse(house))
}

// deleteExchangeHouse godoc
// @Summary Delete an exchange house
// @Tags master-data
// @Param   id path string true "Exchange house ID"
// @Success 204 "No content"
// @Failure 403 {object} map[string]string "Admin role required"
// @Security BearerAuth
// @Router /masters/exchange-houses/{id} [delete]
func (h *masterDataHandler) deleteExchangeHouse(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := h.houseSvc.DeleteExchangeHouse(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondMasterDataError(c, err, "delete exchange house")
		return
	}
	c.Status(http.StatusNoContent)
}
