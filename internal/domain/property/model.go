package property

import (
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/types"
	"github.com/shopspring/decimal"
)

// Property represents one managed unit in the inventory
type Property struct {
	// Unique identifier for this property
	ID string `json:"id"`
	// Display title used for matching against administration labels
	Title string `json:"title"`
	// Street address of the unit
	Address string `json:"address"`
	// Optional neighborhood / city display fields
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	// The owner this unit belongs to
	OwnerID string `json:"owner_id"`
	// The active tenant, if any. A property has at most one active tenant
	// reference at a time.
	TenantID *string `json:"tenant_id,omitempty"`
	// Listing price or monthly rent value, depending on status
	Price decimal.Decimal `json:"price"`
	// Per-utility contract identifiers used for automated bill matching
	ElectricityContract *string `json:"electricity_contract,omitempty"`
	GasContract         *string `json:"gas_contract,omitempty"`
	WaterContract       *string `json:"water_contract,omitempty"`
	TaxContract         *string `json:"tax_contract,omitempty"`

	types.BaseModel
}

// ContractFor returns the stored contract identifier for the given line
// item kind, or nil when the property has none on file.
func (p *Property) ContractFor(kind types.LineItemKind) *string {
	switch kind {
	case types.LineItemKindElectricity:
		return p.ElectricityContract
	case types.LineItemKindGas:
		return p.GasContract
	case types.LineItemKindWater:
		return p.WaterContract
	case types.LineItemKindTaxes:
		return p.TaxContract
	default:
		return nil
	}
}

// Validate validates the property
func (p *Property) Validate() error {
	if p.Title == "" {
		return ierr.NewError("property title is required").
			WithHint("Title is required").
			Mark(ierr.ErrValidation)
	}
	if p.OwnerID == "" {
		return ierr.NewError("property owner is required").
			WithHint("Owner is required").
			Mark(ierr.ErrValidation)
	}
	if p.Price.IsNegative() {
		return ierr.NewError("property price must be non-negative").
			WithHint("Price must be non-negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// TableName returns the table name for the property
func (p *Property) TableName() string {
	return "properties"
}
