package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/inmovia/inmovia/internal/domain/tenant"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/logger"
	"github.com/inmovia/inmovia/internal/postgres"
	"github.com/inmovia/inmovia/internal/types"
)

type tenantRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewTenantRepository(db *postgres.DB, logger *logger.Logger) tenant.Repository {
	return &tenantRepository{db: db, logger: logger}
}

const tenantColumns = `
	id, dni, name, email, phone, contract_start, contract_end, rent_amount,
	status, created_at, updated_at
`

func (r *tenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	query := `
	INSERT INTO tenants (` + tenantColumns + `
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
	)
	`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		t.ID,
		t.DNI,
		t.Name,
		t.Email,
		t.Phone,
		t.ContractStart,
		t.ContractEnd,
		t.RentAmount,
		t.Status,
		t.CreatedAt,
		t.UpdatedAt,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create tenant").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *tenantRepository) Get(ctx context.Context, id string) (*tenant.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1 AND status = $2`
	return r.getTenant(ctx, query, id)
}

func (r *tenantRepository) GetByDNI(ctx context.Context, dni string) (*tenant.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE dni = $1 AND status = $2`
	return r.getTenant(ctx, query, dni)
}

func (r *tenantRepository) getTenant(ctx context.Context, query, key string) (*tenant.Tenant, error) {
	row := r.db.GetQuerier(ctx).QueryRowContext(ctx, query, key, types.StatusActive)
	t, err := scanTenant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHintf("Tenant %s was not found", key).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get tenant").
			Mark(ierr.ErrDatabase)
	}
	return t, nil
}

func (r *tenantRepository) List(ctx context.Context) ([]*tenant.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE status = $1 ORDER BY created_at`

	rows, err := r.db.GetQuerier(ctx).QueryContext(ctx, query, types.StatusActive)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list tenants").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var tenants []*tenant.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan tenant").
				Mark(ierr.ErrDatabase)
		}
		tenants = append(tenants, t)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list tenants").
			Mark(ierr.ErrDatabase)
	}
	return tenants, nil
}

func (r *tenantRepository) Update(ctx context.Context, t *tenant.Tenant) error {
	query := `
	UPDATE tenants SET
		name = $2, email = $3, phone = $4, contract_start = $5,
		contract_end = $6, rent_amount = $7, updated_at = $8
	WHERE id = $1 AND status = $9
	`

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.Email,
		t.Phone,
		t.ContractStart,
		t.ContractEnd,
		t.RentAmount,
		t.UpdatedAt,
		types.StatusActive,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update tenant").
			Mark(ierr.ErrDatabase)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update tenant").
			Mark(ierr.ErrDatabase)
	}
	if rows == 0 {
		return ierr.NewError("tenant not found").
			WithHintf("Tenant with ID %s was not found", t.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func scanTenant(row rowScanner) (*tenant.Tenant, error) {
	var t tenant.Tenant
	err := row.Scan(
		&t.ID,
		&t.DNI,
		&t.Name,
		&t.Email,
		&t.Phone,
		&t.ContractStart,
		&t.ContractEnd,
		&t.RentAmount,
		&t.Status,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
