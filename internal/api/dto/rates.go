package dto

import (
	"context"
	"time"

	"github.com/inmovia/inmovia/internal/domain/rates"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/types"
	"github.com/shopspring/decimal"
)

// SaveRatesRequest overwrites the rate table wholesale. The saved values
// apply to all future derivations and never touch existing line items.
type SaveRatesRequest struct {
	ElectricityPricePerUnit decimal.Decimal `json:"electricity_price_per_unit"`
	GasPricePerUnit         decimal.Decimal `json:"gas_price_per_unit"`
	WaterPricePerUnit       decimal.Decimal `json:"water_price_per_unit"`
	MunicipalityFixedAmount decimal.Decimal `json:"municipality_fixed_amount"`
}

func (r SaveRatesRequest) Validate() error {
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

// ToRateTable converts the request to a domain rate table
func (r SaveRatesRequest) ToRateTable(ctx context.Context) *rates.RateTable {
	return &rates.RateTable{
		ElectricityPricePerUnit: r.ElectricityPricePerUnit,
		GasPricePerUnit:         r.GasPricePerUnit,
		WaterPricePerUnit:       r.WaterPricePerUnit,
		MunicipalityFixedAmount: r.MunicipalityFixedAmount,
		BaseModel:               types.GetDefaultBaseModel(ctx),
	}
}

// RatesResponse represents the current rate table
type RatesResponse struct {
	ElectricityPricePerUnit decimal.Decimal `json:"electricity_price_per_unit"`
	GasPricePerUnit         decimal.Decimal `json:"gas_price_per_unit"`
	WaterPricePerUnit       decimal.Decimal `json:"water_price_per_unit"`
	MunicipalityFixedAmount decimal.Decimal `json:"municipality_fixed_amount"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

// NewRatesResponse creates a rates response from the domain rate table
func NewRatesResponse(r *rates.RateTable) *RatesResponse {
	return &RatesResponse{
		ElectricityPricePerUnit: r.ElectricityPricePerUnit,
		GasPricePerUnit:         r.GasPricePerUnit,
		WaterPricePerUnit:       r.WaterPricePerUnit,
		MunicipalityFixedAmount: r.MunicipalityFixedAmount,
		UpdatedAt:               r.UpdatedAt,
	}
}
