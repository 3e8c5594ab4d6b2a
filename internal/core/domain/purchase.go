package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseRecord represents one recorded foreign-currency purchase.
//
// EqUsd and EqBdt are derived from the three base numeric fields and are never
// edited independently: every read and write path recomputes them via
// RecomputeDerived so stored values cannot drift from their inputs.
type PurchaseRecord struct {
	PurchaseID    string          `json:"purchaseID"` // Primary Key (UUID)
	Date          time.Time       `json:"date"`
	ExchangeHouse string          `json:"exchangeHouse"`
	Region        string          `json:"region"`
	Country       string          `json:"country"`
	Currency      string          `json:"currency"` // e.g. "USD"
	Amount        decimal.Decimal `json:"amount"`
	CrossRate     decimal.Decimal `json:"crossRate"`    // transaction currency -> USD
	PurchaseRate  decimal.Decimal `json:"purchaseRate"` // transaction currency -> BDT
	EqUsd         decimal.Decimal `json:"eqUsd"`        // derived: amount * crossRate
	EqBdt         decimal.Decimal `json:"eqBdt"`        // derived: amount * purchaseRate
	AuditFields
}

// ComputeDerived computes the two equivalence fields from the base numeric
// fields. Pure; idempotent for the same inputs.
func ComputeDerived(amount, crossRate, purchaseRate decimal.Decimal) (eqUsd, eqBdt decimal.Decimal) {
	return amount.Mul(crossRate), amount.Mul(purchaseRate)
}

// RecomputeDerived refreshes EqUsd and EqBdt from the record's base fields.
func (p *PurchaseRecord) RecomputeDerived() {
	p.EqUsd, p.EqBdt = ComputeDerived(p.Amount, p.CrossRate, p.PurchaseRate)
}
