package mapping

import (
	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
	"github.com/jakiurshovon/Purchase-Web-App/internal/models"
)

// ToDomainCountry converts a model Country to a domain Country.
func ToDomainCountry(m models.Country) domain.Country {
	return domain.Country{
		CountryID:   m.CountryID,
		Name:        m.Name,
		Code:        m.Code.String,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCountry converts a domain Country to a model Country.
func ToModelCountry(d domain.Country) models.Country {
	return models.Country{
		CountryID:   d.CountryID,
		Name:        d.Name,
		Code:        nullString(d.Code),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCountrySlice converts model Countries to domain Countries.
func ToDomainCountrySlice(ms []models.Country) []domain.Country {
	ds := make([]domain.Country, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCountry(m)
	}
	return ds
}

// ToDomainRegion converts a model Region to a domain Region.
func ToDomainRegion(m models.Region) domain.Region {
	return domain.Region{
		RegionID:    m.RegionID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelRegion converts a domain Region to a model Region.
func ToModelRegion(d domain.Region) models.Region {
	return models.Region{
		RegionID:    d.RegionID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRegionSlice converts model Regions to domain Regions.
func ToDomainRegionSlice(ms []models.Region) []domain.Region {
	ds := make([]domain.Region, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRegion(m)
	}
	return ds
}

// ToDomainExchangeHouse converts a model ExchangeHouse to a domain ExchangeHouse.
func ToDomainExchangeHouse(m models.ExchangeHouse) domain.ExchangeHouse {
	return domain.ExchangeHouse{
		ExchangeHouseID: m.ExchangeHouseID,
		Name:            m.Name,
		Country:         m.Country.String,
		Region:          m.Region.String,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelExchangeHouse converts a domain ExchangeHouse to a model ExchangeHouse.
func ToModelExchangeHouse(d domain.ExchangeHouse) models.ExchangeHouse {
	return models.ExchangeHouse{
		ExchangeHouseID: d.ExchangeHouseID,
		Name:            d.Name,
		Country:         nullString(d.Country),
		Region:          nullString(d.Region),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeHouseSlice converts model ExchangeHouses to domain ExchangeHouses.
func ToDomainExchangeHouseSlice(ms []models.ExchangeHouse) []domain.ExchangeHouse {
	ds := make([]domain.ExchangeHouse, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExchangeHouse(m)
	}
	return ds
}
