package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is the database shape of a purchase row. Text and numeric columns
// are nullable: historical rows were imported with gaps, and the application
// policy is to default missing values rather than fail. The defaulting happens
// in mapping, not ad hoc at call sites.
type Purchase struct {
	PurchaseID    string              `db:"purchase_id"`
	Date          time.Time           `db:"date"`
	ExchangeHouse sql.NullString      `db:"exchange_house"`
	Region        sql.NullString      `db:"region"`
	Country       sql.NullString      `db:"country"`
	Currency      sql.NullString      `db:"currency"`
	Amount        decimal.NullDecimal `db:"amount"`
	CrossRate     decimal.NullDecimal `db:"cross_rate"`
	PurchaseRate  decimal.NullDecimal `db:"purchase_rate"`
	EqUsd         decimal.NullDecimal `db:"eq_usd"`
	EqBdt         decimal.NullDecimal `db:"eq_bdt"`
	AuditFields
}
