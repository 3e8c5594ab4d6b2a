package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
	portsrepo "github.com/jakiurshovon/Purchase-Web-App/internal/core/ports/repositories"
	portssvc "github.com/jakiurshovon/Purchase-Web-App/internal/core/ports/services"
	"github.com/jakiurshovon/Purchase-Web-App/internal/dto"
)

// countryService manages the country catalog. Reads are open to any
// authenticated user; mutations require the ADMIN role.
type countryService struct {
	BaseService
	countryRepo portsrepo.CountryRepositoryFacade
}

// NewCountryService creates a new instance of countryService
func NewCountryService(repo portsrepo.CountryRepositoryFacade, authorizer portssvc.RoleAuthorizerSvc) portssvc.CountrySvcFacade {
	return &countryService{
		BaseService: BaseService{RoleAuthorizer: authorizer},
		countryRepo: repo,
	}
}

func (s *countryService) CreateCountry(ctx context.Context, userID string, req dto.CreateCountryRequest) (*domain.Country, error) {
	if err := s.AuthorizeAdmin(ctx, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	country := domain.Country{
		CountryID: uuid.NewString(),
		Name:      req.Name,
		Code:      req.Code,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.countryRepo.SaveCountry(ctx, country); err != nil {
		s.LogError(ctx, err, "Failed to save country")
		return nil, fmt.Errorf("failed to save country: %w", err)
	}
	return &country, nil
}

func (s *countryService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	countries, err := s.countryRepo.ListCountries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list countries")
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	return countries, nil
}

func (s *countryService) UpdateCountry(ctx context.Context, userID string, countryID string, req dto.UpdateCountryRequest) (*domain.Country, error) {
	if err := s.AuthorizeAdmin(ctx, userID); err != nil {
		return nil, err
	}

	country, err := s.countryRepo.FindCountryByID(ctx, countryID)
	if err != nil {
		return nil, err
	}
	country.Name = req.Name
	country.Code = req.Code
	country.LastUpdatedAt = time.Now()
	country.LastUpdatedBy = userID

	if err := s.countryRepo.UpdateCountry(ctx, *country); err != nil {
		s.LogError(ctx, err, "Failed to update country", "country_id", countryID)
		return nil, fmt.Errorf("failed to update country: %w", err)
	}
	return country, nil
}

func (s *countryService) DeleteCountry(ctx context.Context, userID string, countryID string) error {
	if err := s.AuthorizeAdmin(ctx, userID); err != nil {
		return err
	}
	if _, err := s.countryRepo.FindCountryByID(ctx, countryID); err != nil {
		return err
	}
	if err := s.countryRepo.DeleteCountry(ctx, countryID); err != nil {
		s.LogError(ctx, err, "Failed to delete country", "country_id", countryID)
		return fmt.Errorf("failed to delete country: %w", err)
	}
	return nil
}

// regionService manages the region catalog.
type regionService struct {
	BaseService
	regionRepo portsrepo.RegionRepositoryFacade
}

// NewRegionService creates a new instance of regionService
func NewRegionService(repo portsrepo.RegionRepositoryFacade, authorizer portssvc.RoleAuthorizerSvc) portssvc.RegionSvcFacade {
	return &regionService{
		BaseService: BaseService{RoleAuthorizer: authorizer},
		regionRepo:  repo,
	}
}

func (s *regionService) CreateRegion(ctx context.Context, userID string, req dto.CreateRegionRequest) (*domain.Region, error) {
	if err := s.AuthorizeAdmin(ctx, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	region := domain.Region{
		RegionID: uuid.NewString(),
		Name:     req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.regionRepo.SaveRegion(ctx, region); err != nil {
		s.LogError(ctx, err, "Failed to save region")
		return nil, fmt.Errorf("failed to save region: %w", err)
	}
	return &region, nil
}

func (s *regionService) ListRegions(ctx context.Context) ([]domain.Region, error) {
	regions, err := s.regionRepo.ListRegions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list regions")
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	return regions, nil
}

func (s *regionService) UpdateRegion(ctx context.Context, userID string, regionID string, req dto.UpdateRegionRequest) (*domain.Region, error) {
	if err := s.AuthorizeAdmin(ctx, userID); err != nil {
		return nil, err
	}

	region, err := s.regionRepo.FindRegionByID(ctx, regionID)
	if err != nil {
		return nil, err
	}
	region.Name = req.Name
	region.LastUpdatedAt = time.Now()
	region.LastUpdatedBy = userID

	if err := s.regionRepo.UpdateRegion(ctx, *region); err != nil {
		s.LogError(ctx, err, "Failed to update region", "region_id", regionID)
		return nil, fmt.Errorf("failed to update region: %w", err)
	}
	return region, nil
}

func (s *regionService) DeleteRegion(ctx context.Context, userID string, regionID string) error {
	if err := s.AuthorizeAdmin(ctx, userID); err != nil {
		return err
	}
	if _, err := s.regionRepo.FindRegionByID(ctx, regionID); err != nil {
		return err
	}
	if err := s.regionRepo.DeleteRegion(ctx, regionID); err != nil {
		s.LogError(ctx, err, "Failed to delete region", "region_id", regionID)
		return fmt.Errorf("failed to delete region: %w", err)
	}
	return nil
}

// exchangeHouseService manages the exchange house catalog. The country and
// region recorded here drive the indirect grouping of summary reports.
type exchangeHouseService struct {
	BaseService
	houseRepo portsrepo.ExchangeHouseRepositoryFacade
}

// NewExchangeHouseService creates a new instance of exchangeHouseService
func NewExchangeHouseService(repo portsrepo.ExchangeHouseRepositoryFacade, authorizer portssvc.RoleAuthorizerSvc) portssvc.ExchangeHouseSvcFacade {
	return &exchangeHouseService{
		BaseService: BaseService{RoleAuthorizer: authorizer},
		houseRepo:   repo,
	}
}

func (s *exchangeHouseService) CreateExchangeHouse(ctx context.Context, userID string, req dto.CreateExchangeHouseRequest) (*domain.ExchangeHouse, error) {
	if err := s.AuthorizeAdmin(ctx, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	house := domain.ExchangeHouse{
		ExchangeHouseID: uuid.NewString(),
		Name:            req.Name,
		Country:         req.Country,
		Region:          req.Region,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.houseRepo.SaveExchangeHouse(ctx, house); err != nil {
		s.LogError(ctx, err, "Failed to save exchange house")
		return nil, fmt.Errorf("failed to save exchange house: %w", err)
	}
	return &house, nil
}

func (s *exchangeHouseService) ListExchangeHouses(ctx context.Context) ([]domain.ExchangeHouse, error) {
	houses, err := s.houseRepo.ListExchangeHouses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange houses")
		return nil, fmt.Errorf("failed to list exchange houses: %w", err)
	}
	return houses, nil
}

func (s *exchangeHouseService) UpdateExchangeHouse(ctx context.Context, userID string, houseID string, req dto.UpdateExchangeHouseRequest) (*domain.ExchangeHouse, error) {
	if err := s.AuthorizeAdmin(ctx, userID); err != nil {
		return nil, err
	}

	house, err := s.houseRepo.FindExchangeHouseByID(ctx, houseID)
	if err != nil {
		return nil, err
	}
	house.Name = req.Name
	house.Country = req.Country
	house.Region = req.Region
	house.LastUpdatedAt = time.Now()
	house.LastUpdatedBy = userID

	if err := s.houseRepo.UpdateExchangeHouse(ctx, *house); err != nil {
		s.LogError(ctx, err, "Failed to update exchange house", "exchange_house_id", houseID)
		return nil, fmt.Errorf("failed to update exchange house: %w", err)
	}
	return house, nil
}

func (s *exchangeHouseService) DeleteExchangeHouse(ctx context.Context, userID string, houseID string) error {
	if err := s.AuthorizeAdmin(ctx, userID); err != nil {
		return err
	}
	if _, err := s.houseRepo.FindExchangeHouseByID(ctx, houseID); err != nil {
		return err
	}
	if err := s.houseRepo.DeleteExchangeHouse(ctx, houseID); err != nil {
		s.LogError(ctx, err, "Failed to delete exchange house", "exchange_house_id", houseID)
		return fmt.Errorf("failed to delete exchange house: %w", err)
	}
	return nil
}
