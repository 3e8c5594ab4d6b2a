package mapping

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
	"github.com/jakiurshovon/Purchase-Web-App/internal/models"
)

// ToDomainPurchase converts a database row to a domain record. Missing text
// columns default to "" and missing numeric columns to zero here, at the
// storage boundary, so the rest of the application never sees a null. The
// derived fields are recomputed from the base fields rather than trusted from
// storage.
func ToDomainPurchase(m models.Purchase) domain.PurchaseRecord {
	p := domain.PurchaseRecord{
		PurchaseID:    m.PurchaseID,
		Date:          m.Date,
		ExchangeHouse: m.ExchangeHouse.String,
		Region:        m.Region.String,
		Country:       m.Country.String,
		Currency:      m.Currency.String,
		Amount:        decimalOrZero(m.Amount),
		CrossRate:     decimalOrZero(m.CrossRate),
		PurchaseRate:  decimalOrZero(m.PurchaseRate),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	p.RecomputeDerived()
	return p
}

// ToDomainPurchaseSlice converts a slice of database rows to domain records.
func ToDomainPurchaseSlice(ms []models.Purchase) []domain.PurchaseRecord {
	ds := make([]domain.PurchaseRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPurchase(m)
	}
	return ds
}

// ToModelPurchase converts a domain record to its database shape. Derived
// fields are recomputed from the base fields before the write so stored
// equivalents always match their inputs.
func ToModelPurchase(d domain.PurchaseRecord) models.Purchase {
	d.RecomputeDerived()
	return models.Purchase{
		PurchaseID:    d.PurchaseID,
		Date:          d.Date,
		ExchangeHouse: nullString(d.ExchangeHouse),
		Region:        nullString(d.Region),
		Country:       nullString(d.Country),
		Currency:      nullString(d.Currency),
		Amount:        decimal.NewNullDecimal(d.Amount),
		CrossRate:     decimal.NewNullDecimal(d.CrossRate),
		PurchaseRate:  decimal.NewNullDecimal(d.PurchaseRate),
		EqUsd:         decimal.NewNullDecimal(d.EqUsd),
		EqBdt:         decimal.NewNullDecimal(d.EqBdt),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

func decimalOrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
