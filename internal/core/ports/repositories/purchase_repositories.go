package repositories

import (
	"context"

	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
)

// PurchaseReader defines read operations for purchase data
type PurchaseReader interface {
	// FindPurchaseByID retrieves a single purchase by its ID.
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.PurchaseRecord, error)

	// ListPurchases retrieves purchases matching the filter, ordered by date
	// ascending. Date bounds are inclusive; empty filter fields place no
	// restriction.
	ListPurchases(ctx context.Context, filter domain.ReportFilter) ([]domain.PurchaseRecord, error)
}

// PurchaseWriter defines write operations for purchase data
type PurchaseWriter interface {
	// SavePurchase persists a new purchase.
	SavePurchase(ctx context.Context, purchase domain.PurchaseRecord) error

	// UpdatePurchase updates an existing purchase by its ID.
	UpdatePurchase(ctx context.Context, purchase domain.PurchaseRecord) error

	// DeletePurchase removes a purchase by its ID.
	DeletePurchase(ctx context.Context, purchaseID string) error
}

// PurchaseRepositoryFacade combines all purchase-related repository interfaces
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}

// PurchaseRepositoryWithTx extends PurchaseRepositoryFacade with transaction capabilities
type PurchaseRepositoryWithTx interface {
	PurchaseRepositoryFacade
	TransactionManager
}
