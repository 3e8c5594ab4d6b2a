package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jakiurshovon/Purchase-Web-App/internal/apperrors"
	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
	portsrepo "github.com/jakiurshovon/Purchase-Web-App/internal/core/ports/repositories"
	portssvc "github.com/jakiurshovon/Purchase-Web-App/internal/core/ports/services"
	"github.com/jakiurshovon/Purchase-Web-App/internal/dto"
)

const dateLayout = "2006-01-02"

// purchaseService provides purchase record management functionality
type purchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryWithTx
}

// NewPurchaseService creates a new instance of purchaseService
func NewPurchaseService(repo portsrepo.PurchaseRepositoryWithTx, authorizer portssvc.RoleAuthorizerSvc) portssvc.PurchaseSvcFacade {
	return &purchaseService{
		BaseService:  BaseService{RoleAuthorizer: authorizer},
		purchaseRepo: repo,
	}
}

// applyRequest copies request fields onto a record and recomputes the derived
// equivalence columns. Client-supplied derived values are always discarded.
func (s *purchaseService) applyRequest(record *domain.PurchaseRecord, req dto.UpdatePurchaseRequest) error {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return apperrors.NewValidationError("invalid date: " + req.Date)
	}
	if req.Amount.IsNegative() || req.CrossRate.IsNegative() || req.PurchaseRate.IsNegative() {
		return apperrors.NewValidationError("amount and rates must not be negative")
	}

	record.Date = date
	record.ExchangeHouse = req.ExchangeHouse
	record.Region = req.Region
	record.Country = req.Country
	record.Currency = req.Currency
	record.Amount = req.Amount
	record.CrossRate = req.CrossRate
	record.PurchaseRate = req.PurchaseRate
	record.RecomputeDerived()
	return nil
}

// CreatePurchase records a new purchase with derived fields computed server-side.
func (s *purchaseService) CreatePurchase(ctx context.Context, userID string, req dto.CreatePurchaseRequest) (*domain.PurchaseRecord, error) {
	now := time.Now()
	record := domain.PurchaseRecord{
		PurchaseID: uuid.NewString(),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.applyRequest(&record, dto.UpdatePurchaseRequest(req)); err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.SavePurchase(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save purchase")
		return nil, fmt.Errorf("failed to save purchase: %w", err)
	}

	s.LogInfo(ctx, "Purchase created", "purchase_id", record.PurchaseID)
	return &record, nil
}

// GetPurchaseByID retrieves a single purchase record.
func (s *purchaseService) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.PurchaseRecord, error) {
	record, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// ListPurchases retrieves purchase records matching the filter, ordered by date.
// Derived equivalents are recomputed on read so stored values never drift from
// the base fields, even for rows imported outside the app.
func (s *purchaseService) ListPurchases(ctx context.Context, filter domain.ReportFilter) ([]domain.PurchaseRecord, error) {
	records, err := s.purchaseRepo.ListPurchases(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases")
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	for i := range records {
		records[i].RecomputeDerived()
	}
	return records, nil
}

// UpdatePurchase updates an existing purchase and recomputes its derived fields.
func (s *purchaseService) UpdatePurchase(ctx context.Context, userID string, purchaseID string, req dto.UpdatePurchaseRequest) (*domain.PurchaseRecord, error) {
	record, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	if err := s.applyRequest(record, req); err != nil {
		return nil, err
	}
	record.LastUpdatedAt = time.Now()
	record.LastUpdatedBy = userID

	if err := s.purchaseRepo.UpdatePurchase(ctx, *record); err != nil {
		s.LogError(ctx, err, "Failed to update purchase", "purchase_id", purchaseID)
		return nil, fmt.Errorf("failed to update purchase: %w", err)
	}
	return record, nil
}

// BulkUpdatePurchases applies a batch of edit-grid rows. Each row is written
// independently: a failing row is counted and skipped, never aborting the rest.
func (s *purchaseService) BulkUpdatePurchases(ctx context.Context, userID string, req dto.BulkUpdatePurchasesRequest) (dto.BulkUpdateResponse, error) {
	result := dto.BulkUpdateResponse{Total: len(req.Rows)}
	for _, row := range req.Rows {
		if row.PurchaseID == "" {
			s.LogError(ctx, apperrors.ErrValidation, "Bulk update row has no purchase ID")
			result.Failed++
			continue
		}
		if _, err := s.UpdatePurchase(ctx, userID, row.PurchaseID, row.UpdatePurchaseRequest); err != nil {
			s.LogError(ctx, err, "Bulk update row failed", "purchase_id", row.PurchaseID)
			result.Failed++
			continue
		}
		result.Updated++
	}
	s.LogInfo(ctx, "Bulk update completed", "updated", result.Updated, "failed", result.Failed)
	return result, nil
}

// DeletePurchase removes a purchase record. Deletion is admin-only; members
// correct mistakes through the edit grid instead.
func (s *purchaseService) DeletePurchase(ctx context.Context, userID string, purchaseID string) error {
	if err := s.AuthorizeAdmin(ctx, userID); err != nil {
		return err
	}
	if _, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID); err != nil {
		return err
	}
	if err := s.purchaseRepo.DeletePurchase(ctx, purchaseID); err != nil {
		s.LogError(ctx, err, "Failed to delete purchase", "purchase_id", purchaseID)
		return fmt.Errorf("failed to delete purchase: %w", err)
	}
	s.LogInfo(ctx, "Purchase deleted", "purchase_id", purchaseID)
	return nil
}
