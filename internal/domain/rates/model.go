package rates

import (
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/types"
	"github.com/shopspring/decimal"
)

// RateTable is the singleton configuration record holding the current
// per-unit prices and the fixed municipal amount. It is overwritten
// wholesale by an administrative save; no history is kept. Line items
// store their own resolved amount, so a save has no retroactive effect.
type RateTable struct {
	ElectricityPricePerUnit decimal.Decimal `json:"electricity_price_per_unit"`
	GasPricePerUnit         decimal.Decimal `json:"gas_price_per_unit"`
	WaterPricePerUnit       decimal.Decimal `json:"water_price_per_unit"`
	MunicipalityFixedAmount decimal.Decimal `json:"municipality_fixed_amount"`

	types.BaseModel
}

// RateFor returns the per-unit price for a consumption kind. Zero for
// kinds that are not consumption based.
func (r *RateTable) RateFor(kind types.LineItemKind) decimal.Decimal {
	switch kind {
	case types.LineItemKindElectricity:
		return r.ElectricityPricePerUnit
	case types.LineItemKindGas:
		return r.GasPricePerUnit
	case types.LineItemKindWater:
		return r.WaterPricePerUnit
	default:
		return decimal.Zero
	}
}

// Validate validates the rate table
func (r *RateTable) Validate() error {
	for _, d := range []decimal.Decimal{
		r.ElectricityPricePerUnit,
		r.GasPricePerUnit,
		r.WaterPricePerUnit,
		r.MunicipalityFixedAmount,
	} {
		if d.IsNegative() {
			return ierr.NewError("rate table values must be non-negative").
				WithHint("Rates and the fixed municipal amount must be non-negative").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// TableName returns the table name for the rate table
func (r *RateTable) TableName() string {
	return "utility_rates"
}
