package domain

// Country is a master-data row for the country dropdowns and report filters.
type Country struct {
	CountryID string `json:"countryID"` // Primary Key (UUID)
	Name      string `json:"name"`
	Code      string `json:"code"` // ISO alpha-2, optional
	AuditFields
}

// Region is a master-data row grouping exchange houses geographically.
type Region struct {
	RegionID string `json:"regionID"` // Primary Key (UUID)
	Name     string `json:"name"`
	AuditFields
}

// ExchangeHouse is a master-data row for a remitting exchange house, carrying
// its home country and region. Summary reports grouped by country or region
// resolve the bucket key through this association.
type ExchangeHouse struct {
	ExchangeHouseID string `json:"exchangeHouseID"` // Primary Key (UUID)
	Name            string `json:"name"`
	Country         string `json:"country"`
	Region          string `json:"region"`
	AuditFields
}
