package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/inmovia/inmovia/internal/domain/property"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/logger"
	"github.com/inmovia/inmovia/internal/postgres"
	"github.com/inmovia/inmovia/internal/types"
)

type propertyRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewPropertyRepository(db *postgres.DB, logger *logger.Logger) property.Repository {
	return &propertyRepository{db: db, logger: logger}
}

const propertyColumns = `
	id, title, address, neighborhood, city, owner_id, tenant_id, price,
	electricity_contract, gas_contract, water_contract, tax_contract,
	status, created_at, updated_at
`

func (r *propertyRepository) Create(ctx context.Context, p *property.Property) error {
	query := `
	INSERT INTO properties (` + propertyColumns + `
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
	)
	`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		p.ID,
		p.Title,
		p.Address,
		p.Neighborhood,
		p.City,
		p.OwnerID,
		p.TenantID,
		p.Price,
		p.ElectricityContract,
		p.GasContract,
		p.WaterContract,
		p.TaxContract,
		p.Status,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create property").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *propertyRepository) Get(ctx context.Context, id string) (*property.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1 AND status = $2`

	row := r.db.GetQuerier(ctx).QueryRowContext(ctx, query, id, types.StatusActive)
	p, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHintf("Property with ID %s was not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get property").
			Mark(ierr.ErrDatabase)
	}
	return p, nil
}

func (r *propertyRepository) List(ctx context.Context) ([]*property.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE status = $1 ORDER BY created_at`
	return r.queryProperties(ctx, query, types.StatusActive)
}

func (r *propertyRepository) ListByOwner(ctx context.Context, ownerID string) ([]*property.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE owner_id = $1 AND status = $2 ORDER BY created_at`
	return r.queryProperties(ctx, query, ownerID, types.StatusActive)
}

func (r *propertyRepository) ListByTenant(ctx context.Context, tenantID string) ([]*property.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE tenant_id = $1 AND status = $2 ORDER BY created_at`
	return r.queryProperties(ctx, query, tenantID, types.StatusActive)
}

func (r *propertyRepository) Update(ctx context.Context, p *property.Property) error {
	query := `
	UPDATE properties SET
		title = $2, address = $3, neighborhood = $4, city = $5,
		tenant_id = $6, price = $7, electricity_contract = $8,
		gas_contract = $9, water_contract = $10, tax_contract = $11,
		updated_at = $12
	WHERE id = $1 AND status = $13
	`

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		p.ID,
		p.Title,
		p.Address,
		p.Neighborhood,
		p.City,
		p.TenantID,
		p.Price,
		p.ElectricityContract,
		p.GasContract,
		p.WaterContract,
		p.TaxContract,
		p.UpdatedAt,
		types.StatusActive,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update property").
			Mark(ierr.ErrDatabase)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update property").
			Mark(ierr.ErrDatabase)
	}
	if rows == 0 {
		return ierr.NewError("property not found").
			WithHintf("Property with ID %s was not found", p.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *propertyRepository) queryProperties(ctx context.Context, query string, args ...interface{}) ([]*property.Property, error) {
	rows, err := r.db.GetQuerier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list properties").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var properties []*property.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan property").
				Mark(ierr.ErrDatabase)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list properties").
			Mark(ierr.ErrDatabase)
	}
	return properties, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProperty(row rowScanner) (*property.Property, error) {
	var p property.Property
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Address,
		&p.Neighborhood,
		&p.City,
		&p.OwnerID,
		&p.TenantID,
		&p.Price,
		&p.ElectricityContract,
		&p.GasContract,
		&p.WaterContract,
		&p.TaxContract,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
