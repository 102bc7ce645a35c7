package owner

import (
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/types"
)

// Owner represents a property owner in the directory
type Owner struct {
	// Unique identifier for this owner
	ID string `json:"id"`
	// National identifier, used for portal login matching
	DNI string `json:"dni"`
	// Contact fields
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	// Optional alias for receiving transfers
	PaymentAlias *string `json:"payment_alias,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	types.BaseModel
}

// Validate validates the owner
func (o *Owner) Validate() error {
	if o.Name == "" {
		return ierr.NewError("owner name is required").
			WithHint("Name is required").
			Mark(ierr.ErrValidation)
	}
	if o.DNI == "" {
		return ierr.NewError("owner national identifier is required").
			WithHint("DNI is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// TableName returns the table name for the owner
func (o *Owner) TableName() string {
	return "owners"
}
