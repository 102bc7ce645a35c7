package tenant

import (
	"time"

	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/types"
	"github.com/shopspring/decimal"
)

// Tenant represents a renter in the directory
type Tenant struct {
	// Unique identifier for this tenant
	ID string `json:"id"`
	// National identifier, used for portal login matching
	DNI string `json:"dni"`
	// Contact fields
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	// Rental contract window
	ContractStart *time.Time `json:"contract_start,omitempty"`
	ContractEnd   *time.Time `json:"contract_end,omitempty"`
	// Agreed monthly rent
	RentAmount decimal.Decimal `json:"rent_amount"`

	types.BaseModel
}

// Validate validates the tenant
func (t *Tenant) Validate() error {
	if t.Name == "" {
		return ierr.NewError("tenant name is required").
			WithHint("Name is required").
			Mark(ierr.ErrValidation)
	}
	if t.DNI == "" {
		return ierr.NewError("tenant national identifier is required").
			WithHint("DNI is required").
			Mark(ierr.ErrValidation)
	}
	if t.RentAmount.IsNegative() {
		return ierr.NewError("tenant rent amount must be non-negative").
			WithHint("Rent amount must be non-negative").
			Mark(ierr.ErrValidation)
	}
	if t.ContractStart != nil && t.ContractEnd != nil && t.ContractEnd.Before(*t.ContractStart) {
		return ierr.NewError("tenant contract end precedes its start").
			WithHint("Contract end must be after contract start").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// TableName returns the table name for the tenant
func (t *Tenant) TableName() string {
	return "tenants"
}
