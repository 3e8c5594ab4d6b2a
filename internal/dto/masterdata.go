package dto

import (
	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
)

// CreateCountryRequest defines the data needed to create a country.
type CreateCountryRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"omitempty,uppercase,len=2"`
}

// UpdateCountryRequest defines the data for updating a country.
type UpdateCountryRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"omitempty,uppercase,len=2"`
}

// CountryResponse defines the data returned for a country.
type CountryResponse struct {
	CountryID string `json:"countryID"`
	Name      string `json:"name"`
	Code      string `json:"code,omitempty"`
}

// CreateRegionRequest defines the data needed to create a region.
type CreateRegionRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateRegionRequest defines the data for updating a region.
type UpdateRegionRequest struct {
	Name string `json:"name" binding:"required"`
}

// RegionResponse defines the data returned for a region.
type RegionResponse struct {
	RegionID string `json:"regionID"`
	Name     string `json:"name"`
}

// CreateExchangeHouseRequest defines the data needed to create an exchange house.
type CreateExchangeHouseRequest struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country"`
	Region  string `json:"region"`
}

// UpdateExchangeHouseRequest defines the data for updating an exchange house.
type UpdateExchangeHouseRequest struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country"`
	Region  string `json:"region"`
}

// ExchangeHouseResponse defines the data returned for an exchange house.
type ExchangeHouseResponse struct {
	ExchangeHouseID string `json:"exchangeHouseID"`
	Name            string `json:"name"`
	Country         string `json:"country,omitempty"`
	Region          string `json:"region,omitempty"`
}

// ToCountryResponse converts a domain Country to its response DTO.
func ToCountryResponse(c *domain.Country) CountryResponse {
	return CountryResponse{CountryID: c.CountryID, Name: c.Name, Code: c.Code}
}

// ToListCountryResponse converts domain Countries to response DTOs.
func ToListCountryResponse(countries []domain.Country) []CountryResponse {
	res := make([]CountryResponse, len(countries))
	for i := range countries {
		res[i] = ToCountryResponse(&countries[i])
	}
	return res
}

// ToRegionResponse converts a domain Region to its response DTO.
func ToRegionResponse(r *domain.Region) RegionResponse {
	return RegionResponse{RegionID: r.RegionID, Name: r.Name}
}

// ToListRegionResponse converts domain Regions to response DTOs.
func ToListRegionResponse(regions []domain.Region) []RegionResponse {
	res := make([]RegionResponse, len(regions))
	for i := range regions {
		res[i] = ToRegionResponse(&regions[i])
	}
	return res
}

// ToExchangeHouseResponse converts a domain ExchangeHouse to its response DTO.
func ToExchangeHouseResponse(h *domain.ExchangeHouse) ExchangeHouseResponse {
	return ExchangeHouseResponse{
		ExchangeHouseID: h.ExchangeHouseID,
		Name:            h.Name,
		Country:         h.Country,
		Region:          h.Region,
	}
}

// ToListExchangeHouseResponse converts domain ExchangeHouses to response DTOs.
func ToListExchangeHouseResponse(houses []domain.ExchangeHouse) []ExchangeHouseResponse {
	res := make([]ExchangeHouseResponse, len(houses))
	for i := range houses {
		res[i] = ToExchangeHouseResponse(&houses[i])
	}
	return res
}
