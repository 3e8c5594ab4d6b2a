package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/jakiurshovon/Purchase-Web-App/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PurchaseRepo:      newPgxPurchaseRepository(dbPool),
		CountryRepo:       newPgxCountryRepository(dbPool),
		RegionRepo:        newPgxRegionRepository(dbPool),
		ExchangeHouseRepo: newPgxExchangeHouseRepository(dbPool),
		UserRepo:          newPgxUserRepository(dbPool),
	}
}
