package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/inmovia/inmovia/internal/domain/owner"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/logger"
	"github.com/inmovia/inmovia/internal/postgres"
	"github.com/inmovia/inmovia/internal/types"
)

type ownerRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewOwnerRepository(db *postgres.DB, logger *logger.Logger) owner.Repository {
	return &ownerRepository{db: db, logger: logger}
}

const ownerColumns = `
	id, dni, name, email, phone, payment_alias, notes,
	status, created_at, updated_at
`

func (r *ownerRepository) Create(ctx context.Context, o *owner.Owner) error {
	query := `
	INSERT INTO owners (` + ownerColumns + `
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
	)
	`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		o.ID,
		o.DNI,
		o.Name,
		o.Email,
		o.Phone,
		o.PaymentAlias,
		o.Notes,
		o.Status,
		o.CreatedAt,
		o.UpdatedAt,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create owner").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *ownerRepository) Get(ctx context.Context, id string) (*owner.Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM owners WHERE id = $1 AND status = $2`
	return r.getOwner(ctx, query, id)
}

func (r *ownerRepository) GetByDNI(ctx context.Context, dni string) (*owner.Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM owners WHERE dni = $1 AND status = $2`
	return r.getOwner(ctx, query, dni)
}

func (r *ownerRepository) getOwner(ctx context.Context, query, key string) (*owner.Owner, error) {
	row := r.db.GetQuerier(ctx).QueryRowContext(ctx, query, key, types.StatusActive)
	o, err := scanOwner(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHintf("Owner %s was not found", key).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get owner").
			Mark(ierr.ErrDatabase)
	}
	return o, nil
}

func (r *ownerRepository) List(ctx context.Context) ([]*owner.Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM owners WHERE status = $1 ORDER BY created_at`

	rows, err := r.db.GetQuerier(ctx).QueryContext(ctx, query, types.StatusActive)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list owners").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var owners []*owner.Owner
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan owner").
				Mark(ierr.ErrDatabase)
		}
		owners = append(owners, o)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list owners").
			Mark(ierr.ErrDatabase)
	}
	return owners, nil
}

func (r *ownerRepository) Update(ctx context.Context, o *owner.Owner) error {
	query := `
	UPDATE owners SET
		name = $2, email = $3, phone = $4, payment_alias = $5, notes = $6,
		updated_at = $7
	WHERE id = $1 AND status = $8
	`

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		o.ID,
		o.Name,
		o.Email,
		o.Phone,
		o.PaymentAlias,
		o.Notes,
		o.UpdatedAt,
		types.StatusActive,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update owner").
			Mark(ierr.ErrDatabase)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update owner").
			Mark(ierr.ErrDatabase)
	}
	if rows == 0 {
		return ierr.NewError("owner not found").
			WithHintf("Owner with ID %s was not found", o.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func scanOwner(row rowScanner) (*owner.Owner, error) {
	var o owner.Owner
	err := row.Scan(
		&o.ID,
		&o.DNI,
		&o.Name,
		&o.Email,
		&o.Phone,
		&o.PaymentAlias,
		&o.Notes,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
