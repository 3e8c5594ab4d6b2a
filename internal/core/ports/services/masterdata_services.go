package services

import (
	"context"

	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
	"github.com/jakiurshovon/Purchase-Web-App/internal/dto"
)

// CountrySvcFacade defines operations over the country catalog.
// Mutations require the ADMIN role.
type CountrySvcFacade interface {
	CreateCountry(ctx context.Context, userID string, req dto.CreateCountryRequest) (*domain.Country, error)
	ListCountries(ctx context.Context) ([]domain.Country, error)
	UpdateCountry(ctx context.Context, userID string, countryID string, req dto.UpdateCountryRequest) (*domain.Country, error)
	DeleteCountry(ctx context.Context, userID string, countryID string) error
}

// RegionSvcFacade defines operations over the region catalog.
// Mutations require the ADMIN role.
type RegionSvcFacade interface {
	CreateRegion(ctx context.Context, userID string, req dto.CreateRegionRequest) (*domain.Region, error)
	ListRegions(ctx context.Context) ([]domain.Region, error)
	UpdateRegion(ctx context.Context, userID string, regionID string, req dto.UpdateRegionRequest) (*domain.Region, error)
	DeleteRegion(ctx context.Context, userID string, regionID string) error
}

// ExchangeHouseSvcFacade defines operations over the exchange house catalog.
// Mutations require the ADMIN role.
type ExchangeHouseSvcFacade interface {
	CreateExchangeHouse(ctx context.Context, userID string, req dto.CreateExchangeHouseRequest) (*domain.ExchangeHouse, error)
	ListExchangeHouses(ctx context.Context) ([]domain.ExchangeHouse, error)
	UpdateExchangeHouse(ctx context.Context, userID string, houseID string, req dto.UpdateExchangeHouseRequest) (*domain.ExchangeHouse, error)
	DeleteExchangeHouse(ctx context.Context, userID string, houseID string) error
}
