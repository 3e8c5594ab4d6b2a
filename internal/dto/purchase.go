package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
)

// CreatePurchaseRequest defines the data needed to record a new purchase.
// Derived equivalence fields are never accepted from the client; the service
// recomputes them from the base numeric fields.
type CreatePurchaseRequest struct {
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	ExchangeHouse string          `json:"exchangeHouse"`
	Region        string          `json:"region"`
	Country       string          `json:"country"`
	Currency      string          `json:"currency" binding:"required,uppercase,len=3"`
	Amount        decimal.Decimal `json:"amount"`
	CrossRate     decimal.Decimal `json:"crossRate"`
	PurchaseRate  decimal.Decimal `json:"purchaseRate"`
}

// UpdatePurchaseRequest defines the data for updating a single purchase.
type UpdatePurchaseRequest struct {
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	ExchangeHouse string          `json:"exchangeHouse"`
	Region        string          `json:"region"`
	Country       string          `json:"country"`
	Currency      string          `json:"currency" binding:"required,uppercase,len=3"`
	Amount        decimal.Decimal `json:"amount"`
	CrossRate     decimal.Decimal `json:"crossRate"`
	PurchaseRate  decimal.Decimal `json:"purchaseRate"`
}

// BulkPurchaseRow is one edit-grid row in a bulk writeback.
type BulkPurchaseRow struct {
	PurchaseID string `json:"purchaseID"`
	UpdatePurchaseRequest
}

// BulkUpdatePurchasesRequest carries the changed rows of the edit grid.
type BulkUpdatePurchasesRequest struct {
	Rows []BulkPurchaseRow `json:"rows" binding:"required,dive"`
}

// BulkUpdateResponse reports the outcome of a bulk writeback. Rows are written
// independently; partial failure is expected and reported, not rolled back.
type BulkUpdateResponse struct {
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
	Total   int `json:"total"`
}

// PurchaseResponse defines the data returned for a purchase.
type PurchaseResponse struct {
	PurchaseID    string          `json:"purchaseID"`
	Date          string          `json:"date"`
	ExchangeHouse string          `json:"exchangeHouse"`
	Region        string          `json:"region"`
	Country       string          `json:"country"`
	Currency      string          `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
	CrossRate     decimal.Decimal `json:"crossRate"`
	PurchaseRate  decimal.Decimal `json:"purchaseRate"`
	EqUsd         decimal.Decimal `json:"eqUsd"`
	EqBdt         decimal.Decimal `json:"eqBdt"`
}

// ListPurchasesResponse wraps a purchase listing.
type ListPurchasesResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
}

// ToPurchaseResponse converts a domain record to its response DTO.
func ToPurchaseResponse(p *domain.PurchaseRecord) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID:    p.PurchaseID,
		Date:          p.Date.Format("2006-01-02"),
		ExchangeHouse: p.ExchangeHouse,
		Region:        p.Region,
		Country:       p.Country,
		Currency:      p.Currency,
		Amount:        p.Amount,
		CrossRate:     p.CrossRate,
		PurchaseRate:  p.PurchaseRate,
		EqUsd:         p.EqUsd,
		EqBdt:         p.EqBdt,
	}
}

// ToListPurchasesResponse converts domain records to a listing response.
func ToListPurchasesResponse(records []domain.PurchaseRecord) ListPurchasesResponse {
	res := ListPurchasesResponse{Purchases: make([]PurchaseResponse, len(records))}
	for i := range records {
		res.Purchases[i] = ToPurchaseResponse(&records[i])
	}
	return res
}
