package models

import "database/sql"

// Country is the database shape of a countries row.
type Country struct {
	CountryID string         `db:"country_id"`
	Name      string         `db:"name"`
	Code      sql.NullString `db:"code"`
	AuditFields
}

// Region is the database shape of a regions row.
type Region struct {
	RegionID string `db:"region_id"`
	Name     string `db:"name"`
	AuditFields
}

// ExchangeHouse is the database shape of an exchange_houses row.
type ExchangeHouse struct {
	ExchangeHouseID string         `db:"exchange_house_id"`
	Name            string         `db:"name"`
	Country         sql.NullString `db:"country"`
	Region          sql.NullString `db:"region"`
	AuditFields
}
