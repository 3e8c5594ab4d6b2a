package repositories

// RepositoryProvider bundles all repository implementations for service wiring.
type RepositoryProvider struct {
	PurchaseRepo      PurchaseRepositoryWithTx
	CountryRepo       CountryRepositoryFacade
	RegionRepo        RegionRepositoryFacade
	ExchangeHouseRepo ExchangeHouseRepositoryFacade
	UserRepo          UserRepositoryFacade
}
