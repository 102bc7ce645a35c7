package dto

import (
	"context"
	"time"

	"github.com/inmovia/inmovia/internal/domain/property"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/types"
	"github.com/shopspring/decimal"
)

// CreatePropertyRequest represents a request to register a property
type CreatePropertyRequest struct {
	Title               string          `json:"title" binding:"required"`
	Address             string          `json:"address"`
	Neighborhood        string          `json:"neighborhood,omitempty"`
	City                string          `json:"city,omitempty"`
	OwnerID             string          `json:"owner_id" binding:"required"`
	TenantID            *string         `json:"tenant_id,omitempty"`
	Price               decimal.Decimal `json:"price"`
	ElectricityContract *string         `json:"electricity_contract,omitempty"`
	GasContract         *string         `json:"gas_contract,omitempty"`
	WaterContract       *string         `json:"water_contract,omitempty"`
	TaxContract         *string         `json:"tax_contract,omitempty"`
}

func (r CreatePropertyRequest) Validate() error {
	if r.Title == "" {
		return ierr.NewError("property title is required").
			WithHint("Title is required").
			Mark(ierr.ErrValidation)
	}
	if r.OwnerID == "" {
		return ierr.NewError("property owner is required").
			WithHint("Owner is required").
			Mark(ierr.ErrValidation)
	}
	if r.Price.IsNegative() {
		return ierr.NewError("property price must be non-negative").
			WithHint("Price must be non-negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ToProperty converts the request to a domain property
func (r CreatePropertyRequest) ToProperty(ctx context.Context) *property.Property {
	return &property.Property{
		ID:                  types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROPERTY),
		Title:               r.Title,
		Address:             r.Address,
		Neighborhood:        r.Neighborhood,
		City:                r.City,
		OwnerID:             r.OwnerID,
		TenantID:            r.TenantID,
		Price:               r.Price,
		ElectricityContract: r.ElectricityContract,
		GasContract:         r.GasContract,
		WaterContract:       r.WaterContract,
		TaxContract:         r.TaxContract,
		BaseModel:           types.GetDefaultBaseModel(ctx),
	}
}

// UpdatePropertyRequest represents a partial property update
type UpdatePropertyRequest struct {
	Title               *string          `json:"title,omitempty"`
	Address             *string          `json:"address,omitempty"`
	Neighborhood        *string          `json:"neighborhood,omitempty"`
	City                *string          `json:"city,omitempty"`
	TenantID            *string          `json:"tenant_id,omitempty"`
	Price               *decimal.Decimal `json:"price,omitempty"`
	ElectricityContract *string          `json:"electricity_contract,omitempty"`
	GasContract         *string          `json:"gas_contract,omitempty"`
	WaterContract       *string          `json:"water_contract,omitempty"`
	TaxContract         *string          `json:"tax_contract,omitempty"`
}

// PropertyResponse represents a property response
type PropertyResponse struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Address             string          `json:"address"`
	Neighborhood        string          `json:"neighborhood,omitempty"`
	City                string          `json:"city,omitempty"`
	OwnerID             string          `json:"owner_id"`
	TenantID            *string         `json:"tenant_id,omitempty"`
	Price               decimal.Decimal `json:"price"`
	ElectricityContract *string         `json:"electricity_contract,omitempty"`
	GasContract         *string         `json:"gas_contract,omitempty"`
	WaterContract       *string         `json:"water_contract,omitempty"`
	TaxContract         *string         `json:"tax_contract,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// ListPropertiesResponse represents a list of properties
type ListPropertiesResponse struct {
	Items []*PropertyResponse `json:"items"`
	Total int                 `json:"total"`
}

// NewPropertyResponse creates a property response from a domain property
func NewPropertyResponse(p *property.Property) *PropertyResponse {
	return &PropertyResponse{
		ID:                  p.ID,
		Title:               p.Title,
		Address:             p.Address,
		Neighborhood:        p.Neighborhood,
		City:                p.City,
		OwnerID:             p.OwnerID,
		TenantID:            p.TenantID,
		Price:               p.Price,
		ElectricityContract: p.ElectricityContract,
		GasContract:         p.GasContract,
		WaterContract:       p.WaterContract,
		TaxContract:         p.TaxContract,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}
