package repositories

import (
	"context"

	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
)

// CountryRepositoryFacade defines operations for country master data
type CountryRepositoryFacade interface {
	SaveCountry(ctx context.Context, country domain.Country) error
	ListCountries(ctx context.Context) ([]domain.Country, error)
	FindCountryByID(ctx context.Context, countryID string) (*domain.Country, error)
	UpdateCountry(ctx context.Context, country domain.Country) error
	DeleteCountry(ctx context.Context, countryID string) error
}

// RegionRepositoryFacade defines operations for region master data
type RegionRepositoryFacade interface {
	SaveRegion(ctx context.Context, region domain.Region) error
	ListRegions(ctx context.Context) ([]domain.Region, error)
	FindRegionByID(ctx context.Context, regionID string) (*domain.Region, error)
	UpdateRegion(ctx context.Context, region domain.Region) error
	DeleteRegion(ctx context.Context, regionID string) error
}

// ExchangeHouseRepositoryFacade defines operations for exchange-house master data
type ExchangeHouseRepositoryFacade interface {
	SaveExchangeHouse(ctx context.Context, house domain.ExchangeHouse) error
	ListExchangeHouses(ctx context.Context) ([]domain.ExchangeHouse, error)
	FindExchangeHouseByID(ctx context.Context, exchangeHouseID string) (*domain.ExchangeHouse, error)
	UpdateExchangeHouse(ctx context.Context, house domain.ExchangeHouse) error
	DeleteExchangeHouse(ctx context.Context, exchangeHouseID string) error
}
