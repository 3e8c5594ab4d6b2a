package services

// ServiceContainer bundles all service implementations for handler wiring.
type ServiceContainer struct {
	PurchaseSvc      PurchaseSvcFacade
	ReportSvc        ReportSvcFacade
	CountrySvc       CountrySvcFacade
	RegionSvc        RegionSvcFacade
	ExchangeHouseSvc ExchangeHouseSvcFacade
	UserSvc          UserSvcFacade
	TokenSvc         TokenSvcFacade
	GoogleOAuthSvc   GoogleOAuthSvcFacade
	AuthSvc          AuthSvcFacade
}
