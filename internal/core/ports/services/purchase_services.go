package services

import (
	"context"

	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
	"github.com/jakiurshovon/Purchase-Web-App/internal/dto"
)

// PurchaseReaderSvc defines read operations over purchase records.
type PurchaseReaderSvc interface {
	GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.PurchaseRecord, error)
	ListPurchases(ctx context.Context, filter domain.ReportFilter) ([]domain.PurchaseRecord, error)
}

// PurchaseWriterSvc defines write operations over purchase records.
type PurchaseWriterSvc interface {
	CreatePurchase(ctx context.Context, userID string, req dto.CreatePurchaseRequest) (*domain.PurchaseRecord, error)
	UpdatePurchase(ctx context.Context, userID string, purchaseID string, req dto.UpdatePurchaseRequest) (*domain.PurchaseRecord, error)
	BulkUpdatePurchases(ctx context.Context, userID string, req dto.BulkUpdatePurchasesRequest) (dto.BulkUpdateResponse, error)
	DeletePurchase(ctx context.Context, userID string, purchaseID string) error
}

// PurchaseSvcFacade combines read and write purchase operations.
type PurchaseSvcFacade interface {
	PurchaseReaderSvc
	PurchaseWriterSvc
}
