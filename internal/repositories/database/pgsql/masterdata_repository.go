package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jakiurshovon/Purchase-Web-App/internal/apperrors"
	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
	portsrepo "github.com/jakiurshovon/Purchase-Web-App/internal/core/ports/repositories"
	"github.com/jakiurshovon/Purchase-Web-App/internal/models"
	"github.com/jakiurshovon/Purchase-Web-App/internal/utils/mapping"
)

type PgxCountryRepository struct {
	BaseRepository
}

// newPgxCountryRepository creates a new repository for country master data.
func newPgxCountryRepository(pool *pgxpool.Pool) portsrepo.CountryRepositoryFacade {
	return &PgxCountryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CountryRepositoryFacade = (*PgxCountryRepository)(nil)

func scanCountry(row pgx.CollectableRow) (models.Country, error) {
	var c models.Country
	err := row.Scan(&c.CountryID, &c.Name, &c.Code, &c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy)
	return c, err
}

func (r *PgxCountryRepository) SaveCountry(ctx context.Context, country domain.Country) error {
	m := mapping.ToModelCountry(country)
	query := `
		INSERT INTO countries (country_id, name, code, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query, m.CountryID, m.Name, m.Code, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to save country %s: %w", m.Name, err)
	}
	return nil
}

func (r *PgxCountryRepository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	query := `SELECT country_id, name, code, created_at, created_by, last_updated_at, last_updated_by FROM countries ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query countries: %w", err)
	}
	ms, err := pgx.CollectRows(rows, scanCountry)
	if err != nil {
		return nil, fmt.Errorf("failed to collect country rows: %w", err)
	}
	return mapping.ToDomainCountrySlice(ms), nil
}

func (r *PgxCountryRepository) FindCountryByID(ctx context.Context, countryID string) (*domain.Country, error) {
	query := `SELECT country_id, name, code, created_at, created_by, last_updated_at, last_updated_by FROM countries WHERE country_id = $1;`
	rows, err := r.Pool.Query(ctx, query, countryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query country %s: %w", countryID, err)
	}
	m, err := pgx.CollectOneRow(rows, scanCountry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find country %s: %w", countryID, err)
	}
	c := mapping.ToDomainCountry(m)
	return &c, nil
}

func (r *PgxCountryRepository) UpdateCountry(ctx context.Context, country domain.Country) error {
	m := mapping.ToModelCountry(country)
	query := `
		UPDATE countries SET name = $2, code = $3, last_updated_at = $4, last_updated_by = $5
		WHERE country_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.CountryID, m.Name, m.Code, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update country %s: %w", m.CountryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCountryRepository) DeleteCountry(ctx context.Context, countryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM countries WHERE country_id = $1;`, countryID)
	if err != nil {
		return fmt.Errorf("failed to delete country %s: %w", countryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxRegionRepository struct {
	BaseRepository
}

// newPgxRegionRepository creates a new repository for region master data.
func newPgxRegionRepository(pool *pgxpool.Pool) portsrepo.RegionRepositoryFacade {
	return &PgxRegionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RegionRepositoryFacade = (*PgxRegionRepository)(nil)

func scanRegion(row pgx.CollectableRow) (models.Region, error) {
	var reg models.Region
	err := row.Scan(&reg.RegionID, &reg.Name, &reg.CreatedAt, &reg.CreatedBy, &reg.LastUpdatedAt, &reg.LastUpdatedBy)
	return reg, err
}

func (r *PgxRegionRepository) SaveRegion(ctx context.Context, region domain.Region) error {
	m := mapping.ToModelRegion(region)
	query := `
		INSERT INTO regions (region_id, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.RegionID, m.Name, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to save region %s: %w", m.Name, err)
	}
	return nil
}

func (r *PgxRegionRepository) ListRegions(ctx context.Context) ([]domain.Region, error) {
	query := `SELECT region_id, name, created_at, created_by, last_updated_at, last_updated_by FROM regions ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query regions: %w", err)
	}
	ms, err := pgx.CollectRows(rows, scanRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to collect region rows: %w", err)
	}
	return mapping.ToDomainRegionSlice(ms), nil
}

func (r *PgxRegionRepository) FindRegionByID(ctx context.Context, regionID string) (*domain.Region, error) {
	query := `SELECT region_id, name, created_at, created_by, last_updated_at, last_updated_by FROM regions WHERE region_id = $1;`
	rows, err := r.Pool.Query(ctx, query, regionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query region %s: %w", regionID, err)
	}
	m, err := pgx.CollectOneRow(rows, scanRegion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find region %s: %w", regionID, err)
	}
	reg := mapping.ToDomainRegion(m)
	return &reg, nil
}

func (r *PgxRegionRepository) UpdateRegion(ctx context.Context, region domain.Region) error {
	m := mapping.ToModelRegion(region)
	query := `UPDATE regions SET name = $2, last_updated_at = $3, last_updated_by = $4 WHERE region_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, m.RegionID, m.Name, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update region %s: %w", m.RegionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxRegionRepository) DeleteRegion(ctx context.Context, regionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM regions WHERE region_id = $1;`, regionID)
	if err != nil {
		return fmt.Errorf("failed to delete region %s: %w", regionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxExchangeHouseRepository struct {
	BaseRepository
}

// newPgxExchangeHouseRepository creates a new repository for exchange house master data.
func newPgxExchangeHouseRepository(pool *pgxpool.Pool) portsrepo.ExchangeHouseRepositoryFacade {
	return &PgxExchangeHouseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExchangeHouseRepositoryFacade = (*PgxExchangeHouseRepository)(nil)

func scanExchangeHouse(row pgx.CollectableRow) (models.ExchangeHouse, error) {
	var h models.ExchangeHouse
	err := row.Scan(&h.ExchangeHouseID, &h.Name, &h.Country, &h.Region, &h.CreatedAt, &h.CreatedBy, &h.LastUpdatedAt, &h.LastUpdatedBy)
	return h, err
}

func (r *PgxExchangeHouseRepository) SaveExchangeHouse(ctx context.Context, house domain.ExchangeHouse) error {
	m := mapping.ToModelExchangeHouse(house)
	query := `
		INSERT INTO exchange_houses (exchange_house_id, name, country, region, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query, m.ExchangeHouseID, m.Name, m.Country, m.Region, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to save exchange house %s: %w", m.Name, err)
	}
	return nil
}

func (r *PgxExchangeHouseRepository) ListExchangeHouses(ctx context.Context) ([]domain.ExchangeHouse, error) {
	query := `SELECT exchange_house_id, name, country, region, created_at, created_by, last_updated_at, last_updated_by FROM exchange_houses ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange houses: %w", err)
	}
	ms, err := pgx.CollectRows(rows, scanExchangeHouse)
	if err != nil {
		return nil, fmt.Errorf("failed to collect exchange house rows: %w", err)
	}
	return mapping.ToDomainExchangeHouseSlice(ms), nil
}

func (r *PgxExchangeHouseRepository) FindExchangeHouseByID(ctx context.Context, exchangeHouseID string) (*domain.ExchangeHouse, error) {
	query := `SELECT exchange_house_id, name, country, region, created_at, created_by, last_updated_at, last_updated_by FROM exchange_houses WHERE exchange_house_id = $1;`
	rows, err := r.Pool.Query(ctx, query, exchangeHouseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange house %s: %w", exchangeHouseID, err)
	}
	m, err := pgx.CollectOneRow(rows, scanExchangeHouse)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find exchange house %s: %w", exchangeHouseID, err)
	}
	h := mapping.ToDomainExchangeHouse(m)
	return &h, nil
}

func (r *PgxExchangeHouseRepository) UpdateExchangeHouse(ctx context.Context, house domain.ExchangeHouse) error {
	m := mapping.ToModelExchangeHouse(house)
	query := `
		UPDATE exchange_houses SET name = $2, country = $3, region = $4, last_updated_at = $5, last_updated_by = $6
		WHERE exchange_house_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.ExchangeHouseID, m.Name, m.Country, m.Region, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update exchange house %s: %w", m.ExchangeHouseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExchangeHouseRepository) DeleteExchangeHouse(ctx context.Context, exchangeHouseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM exchange_houses WHERE exchange_house_id = $1;`, exchangeHouseID)
	if err != nil {
		return fmt.Errorf("failed to delete exchange house %s: %w", exchangeHouseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
