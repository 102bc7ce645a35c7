package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/inmovia/inmovia/internal/domain/rates"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/logger"
	"github.com/inmovia/inmovia/internal/postgres"
)

// ratesRowID pins the rate table to a single row. Saves overwrite it in
// place.
const ratesRowID = "default"

type ratesRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewRatesRepository(db *postgres.DB, logger *logger.Logger) rates.Repository {
	return &ratesRepository{db: db, logger: logger}
}

func (r *ratesRepository) Get(ctx context.Context) (*rates.RateTable, error) {
	query := `
	SELECT
		electricity_price_per_unit, gas_price_per_unit, water_price_per_unit,
		municipality_fixed_amount, status, created_at, updated_at
	FROM utility_rates
	WHERE id = $1
	`

	var rt rates.RateTable
	err := r.db.GetQuerier(ctx).QueryRowContext(ctx, query, ratesRowID).Scan(
		&rt.ElectricityPricePerUnit,
		&rt.GasPricePerUnit,
		&rt.WaterPricePerUnit,
		&rt.MunicipalityFixedAmount,
		&rt.Status,
		&rt.CreatedAt,
		&rt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHint("No rate table has been saved yet").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get rate table").
			Mark(ierr.ErrDatabase)
	}
	return &rt, nil
}

func (r *ratesRepository) Save(ctx context.Context, rt *rates.RateTable) error {
	query := `
	INSERT INTO utility_rates (
		id, electricity_price_per_unit, gas_price_per_unit,
		water_price_per_unit, municipality_fixed_amount,
		status, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8
	)
	ON CONFLICT (id) DO UPDATE SET
		electricity_price_per_unit = EXCLUDED.electricity_price_per_unit,
		gas_price_per_unit = EXCLUDED.gas_price_per_unit,
		water_price_per_unit = EXCLUDED.water_price_per_unit,
		municipality_fixed_amount = EXCLUDED.municipality_fixed_amount,
		updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		ratesRowID,
		rt.ElectricityPricePerUnit,
		rt.GasPricePerUnit,
		rt.WaterPricePerUnit,
		rt.MunicipalityFixedAmount,
		rt.Status,
		rt.CreatedAt,
		rt.UpdatedAt,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to save rate table").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
