package services

import (
	portsrepo "github.com/jakiurshovon/Purchase-Web-App/internal/core/ports/repositories"
	portssvc "github.com/jakiurshovon/Purchase-Web-App/internal/core/ports/services"
	"github.com/jakiurshovon/Purchase-Web-App/internal/export"
	"github.com/jakiurshovon/Purchase-Web-App/pkg/config"
)

// NewServiceContainer wires all services with their repositories and returns
// the container the handlers are registered against.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	authorizer := NewRoleAuthorizer(repos.UserRepo)

	userSvc := NewUserService(repos.UserRepo)
	tokenSvc := NewTokenService(cfg)
	authSvc := NewAuthService(userSvc, tokenSvc)
	googleOAuthSvc := NewGoogleOAuthService(cfg, userSvc)

	letterhead := export.Letterhead{
		Organization: cfg.OrgName,
		Division:     cfg.OrgDivision,
		System:       cfg.SystemName,
	}

	return &portssvc.ServiceContainer{
		PurchaseSvc:      NewPurchaseService(repos.PurchaseRepo, authorizer),
		ReportSvc:        NewReportService(repos.PurchaseRepo, repos.ExchangeHouseRepo, letterhead),
		CountrySvc:       NewCountryService(repos.CountryRepo, authorizer),
		RegionSvc:        NewRegionService(repos.RegionRepo, authorizer),
		ExchangeHouseSvc: NewExchangeHouseService(repos.ExchangeHouseRepo, authorizer),
		UserSvc:          userSvc,
		TokenSvc:         tokenSvc,
		GoogleOAuthSvc:   googleOAuthSvc,
		AuthSvc:          authSvc,
	}
}
