package dto

import (
	"context"
	"time"

	"github.com/inmovia/inmovia/internal/domain/owner"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/types"
)

// CreateOwnerRequest represents a request to register an owner
type CreateOwnerRequest struct {
	DNI          string  `json:"dni" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone,omitempty"`
	PaymentAlias *string `json:"payment_alias,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (r CreateOwnerRequest) Validate() error {
	if r.DNI == "" {
		return ierr.NewError("owner national identifier is required").
			WithHint("DNI is required").
			Mark(ierr.ErrValidation)
	}
	if r.Name == "" {
		return ierr.NewError("owner name is required").
			WithHint("Name is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ToOwner converts the request to a domain owner
func (r CreateOwnerRequest) ToOwner(ctx context.Context) *owner.Owner {
	return &owner.Owner{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_OWNER),
		DNI:          r.DNI,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		PaymentAlias: r.PaymentAlias,
		Notes:        r.Notes,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}
}

// UpdateOwnerRequest represents a partial owner update
type UpdateOwnerRequest struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	PaymentAlias *string `json:"payment_alias,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// OwnerResponse represents an owner response
type OwnerResponse struct {
	ID           string    `json:"id"`
	DNI          string    `json:"dni"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PaymentAlias *string   `json:"payment_alias,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ListOwnersResponse represents a list of owners
type ListOwnersResponse struct {
	Items []*OwnerResponse `json:"items"`
	Total int              `json:"total"`
}

// NewOwnerResponse creates an owner response from a domain owner
func NewOwnerResponse(o *owner.Owner) *OwnerResponse {
	return &OwnerResponse{
		ID:           o.ID,
		DNI:          o.DNI,
		Name:         o.Name,
		Email:        o.Email,
		Phone:        o.Phone,
		PaymentAlias: o.PaymentAlias,
		Notes:        o.Notes,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
