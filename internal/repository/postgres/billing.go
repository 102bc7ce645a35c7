package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/inmovia/inmovia/internal/domain/billing"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/logger"
	"github.com/inmovia/inmovia/internal/postgres"
	"github.com/inmovia/inmovia/internal/types"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type billingRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewBillingRepository(db *postgres.DB, logger *logger.Logger) billing.Repository {
	return &billingRepository{db: db, logger: logger}
}

const lineItemColumns = `
	id, property_id, kind, amount, usage_quantity, reference_date,
	contract_reference, bill_status, description,
	receipt_id, payment_method, payment_date,
	status, created_at, updated_at
`

func (r *billingRepository) CreateIfAbsent(ctx context.Context, item *billing.LineItem) (bool, error) {
	query := `
	INSERT INTO billing_line_items (` + lineItemColumns + `
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
	)
	ON CONFLICT (id) DO NOTHING
	`

	var receiptID, paymentMethod *string
	var paymentDate *time.Time
	if item.Receipt != nil {
		receiptID = &item.Receipt.ReceiptID
		paymentMethod = &item.Receipt.PaymentMethod
		paymentDate = &item.Receipt.PaymentDate
	}

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		item.ID,
		item.PropertyID,
		item.Kind,
		item.Amount,
		item.Usage,
		item.ReferenceDate,
		item.ContractReference,
		item.Status,
		item.Description,
		receiptID,
		paymentMethod,
		paymentDate,
		item.BaseModel.Status,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		return false, ierr.WithError(err).
			WithHint("Failed to create line item").
			Mark(ierr.ErrDatabase)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, ierr.WithError(err).
			WithHint("Failed to create line item").
			Mark(ierr.ErrDatabase)
	}
	return rows > 0, nil
}

func (r *billingRepository) Get(ctx context.Context, id string) (*billing.LineItem, error) {
	query := `SELECT ` + lineItemColumns + ` FROM billing_line_items WHERE id = $1 AND status = $2`

	row := r.db.GetQuerier(ctx).QueryRowContext(ctx, query, id, types.StatusActive)
	item, err := scanLineItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHintf("Line item with ID %s was not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get line item").
			Mark(ierr.ErrDatabase)
	}
	return item, nil
}

func (r *billingRepository) List(ctx context.Context) ([]*billing.LineItem, error) {
	query := `SELECT ` + lineItemColumns + ` FROM billing_line_items WHERE status = $1 ORDER BY created_at`
	return r.queryLineItems(ctx, query, types.StatusActive)
}

func (r *billingRepository) ListByProperty(ctx context.Context, propertyID string) ([]*billing.LineItem, error) {
	query := `SELECT ` + lineItemColumns + ` FROM billing_line_items WHERE property_id = $1 AND status = $2 ORDER BY created_at`
	return r.queryLineItems(ctx, query, propertyID, types.StatusActive)
}

func (r *billingRepository) ListByProperties(ctx context.Context, propertyIDs []string) ([]*billing.LineItem, error) {
	if len(propertyIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + lineItemColumns + ` FROM billing_line_items WHERE property_id = ANY($1) AND status = $2 ORDER BY created_at`
	return r.queryLineItems(ctx, query, pq.Array(propertyIDs), types.StatusActive)
}

func (r *billingRepository) Update(ctx context.Context, item *billing.LineItem) error {
	query := `
	UPDATE billing_line_items SET
		bill_status = $2, description = $3,
		receipt_id = $4, payment_method = $5, payment_date = $6,
		updated_at = $7
	WHERE id = $1 AND status = $8
	`

	var receiptID, paymentMethod *string
	var paymentDate *time.Time
	if item.Receipt != nil {
		receiptID = &item.Receipt.ReceiptID
		paymentMethod = &item.Receipt.PaymentMethod
		paymentDate = &item.Receipt.PaymentDate
	}

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		item.ID,
		item.Status,
		item.Description,
		receiptID,
		paymentMethod,
		paymentDate,
		item.UpdatedAt,
		types.StatusActive,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update line item").
			Mark(ierr.ErrDatabase)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update line item").
			Mark(ierr.ErrDatabase)
	}
	if rows == 0 {
		return ierr.NewError("line item not found").
			WithHintf("Line item with ID %s was not found", item.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *billingRepository) queryLineItems(ctx context.Context, query string, args ...interface{}) ([]*billing.LineItem, error) {
	rows, err := r.db.GetQuerier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list line items").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var items []*billing.LineItem
	for rows.Next() {
		item, err := scanLineItem(rows)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan line item").
				Mark(ierr.ErrDatabase)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list line items").
			Mark(ierr.ErrDatabase)
	}
	return items, nil
}

func scanLineItem(row rowScanner) (*billing.LineItem, error) {
	var item billing.LineItem
	var usage decimal.NullDecimal
	var receiptID, paymentMethod sql.NullString
	var paymentDate sql.NullTime

	err := row.Scan(
		&item.ID,
		&item.PropertyID,
		&item.Kind,
		&item.Amount,
		&usage,
		&item.ReferenceDate,
		&item.ContractReference,
		&item.Status,
		&item.Description,
		&receiptID,
		&paymentMethod,
		&paymentDate,
		&item.BaseModel.Status,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if usage.Valid {
		item.Usage = &usage.Decimal
	}
	if receiptID.Valid {
		item.Receipt = &billing.Receipt{
			ReceiptID:     receiptID.String,
			PaymentMethod: paymentMethod.String,
			PaymentDate:   paymentDate.Time,
		}
	}
	return &item, nil
}
