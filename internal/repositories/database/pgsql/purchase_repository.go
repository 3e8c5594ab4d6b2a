package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jakiurshovon/Purchase-Web-App/internal/apperrors"
	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
	portsrepo "github.com/jakiurshovon/Purchase-Web-App/internal/core/ports/repositories"
	"github.com/jakiurshovon/Purchase-Web-App/internal/models"
	"github.com/jakiurshovon/Purchase-Web-App/internal/utils/mapping"
)

type PgxPurchaseRepository struct {
	BaseRepository
}

// newPgxPurchaseRepository creates a new repository for purchase data.
func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryWithTx {
	return &PgxPurchaseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PurchaseRepositoryWithTx = (*PgxPurchaseRepository)(nil)

const purchaseColumns = `purchase_id, date, exchange_house, region, country, currency, amount, cross_rate, purchase_rate, eq_usd, eq_bdt, created_at, created_by, last_updated_at, last_updated_by`

func scanPurchase(row pgx.CollectableRow) (models.Purchase, error) {
	var p models.Purchase
	err := row.Scan(
		&p.PurchaseID,
		&p.Date,
		&p.ExchangeHouse,
		&p.Region,
		&p.Country,
		&p.Currency,
		&p.Amount,
		&p.CrossRate,
		&p.PurchaseRate,
		&p.EqUsd,
		&p.EqBdt,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	return p, err
}

// SavePurchase inserts a new purchase row.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.PurchaseRecord) error {
	modelPurchase := mapping.ToModelPurchase(purchase)

	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelPurchase.PurchaseID,
		modelPurchase.Date,
		modelPurchase.ExchangeHouse,
		modelPurchase.Region,
		modelPurchase.Country,
		modelPurchase.Currency,
		modelPurchase.Amount,
		modelPurchase.CrossRate,
		modelPurchase.PurchaseRate,
		modelPurchase.EqUsd,
		modelPurchase.EqBdt,
		modelPurchase.CreatedAt,
		modelPurchase.CreatedBy,
		modelPurchase.LastUpdatedAt,
		modelPurchase.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save purchase %s: %w", modelPurchase.PurchaseID, err)
	}
	return nil
}

// FindPurchaseByID retrieves a single purchase by its ID.
func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.PurchaseRecord, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE purchase_id = $1;`

	rows, err := r.Pool.Query(ctx, query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase %s: %w", purchaseID, err)
	}

	modelPurchase, err := pgx.CollectOneRow(rows, scanPurchase)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase %s: %w", purchaseID, err)
	}

	domainPurchase := mapping.ToDomainPurchase(modelPurchase)
	return &domainPurchase, nil
}

// ListPurchases retrieves purchases matching the filter, ordered by date then
// insertion time. Date bounds are inclusive; empty filter fields place no
// restriction.
func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, filter domain.ReportFilter) ([]domain.PurchaseRecord, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + purchaseColumns + ` FROM purchases`)

	var conditions []string
	var args []any
	addCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, clause+" $"+strconv.Itoa(len(args)))
	}

	if filter.DateFrom != nil {
		addCondition("date >=", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		addCondition("date <=", *filter.DateTo)
	}
	if filter.Country != "" {
		addCondition("country =", filter.Country)
	}
	if filter.Region != "" {
		addCondition("region =", filter.Region)
	}
	if filter.ExchangeHouse != "" {
		addCondition("exchange_house =", filter.ExchangeHouse)
	}

	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY date ASC, created_at ASC;")

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}

	modelPurchases, err := pgx.CollectRows(rows, scanPurchase)
	if err != nil {
		return nil, fmt.Errorf("failed to collect purchase rows: %w", err)
	}

	return mapping.ToDomainPurchaseSlice(modelPurchases), nil
}

// UpdatePurchase updates an existing purchase by its ID.
func (r *PgxPurchaseRepository) UpdatePurchase(ctx context.Context, purchase domain.PurchaseRecord) error {
	modelPurchase := mapping.ToModelPurchase(purchase)

	query := `
		UPDATE purchases SET
			date = $2,
			exchange_house = $3,
			region = $4,
			country = $5,
			currency = $6,
			amount = $7,
			cross_rate = $8,
			purchase_rate = $9,
			eq_usd = $10,
			eq_bdt = $11,
			last_updated_at = $12,
			last_updated_by = $13
		WHERE purchase_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelPurchase.PurchaseID,
		modelPurchase.Date,
		modelPurchase.ExchangeHouse,
		modelPurchase.Region,
		modelPurchase.Country,
		modelPurchase.Currency,
		modelPurchase.Amount,
		modelPurchase.CrossRate,
		modelPurchase.PurchaseRate,
		modelPurchase.EqUsd,
		modelPurchase.EqBdt,
		modelPurchase.LastUpdatedAt,
		modelPurchase.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update purchase %s: %w", modelPurchase.PurchaseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePurchase removes a purchase by its ID.
func (r *PgxPurchaseRepository) DeletePurchase(ctx context.Context, purchaseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM purchases WHERE purchase_id = $1;`, purchaseID)
	if err != nil {
		return fmt.Errorf("failed to delete purchase %s: %w", purchaseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
