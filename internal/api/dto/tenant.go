package dto

import (
	"context"
	"time"

	"github.com/inmovia/inmovia/internal/domain/tenant"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/types"
	"github.com/shopspring/decimal"
)

// CreateTenantRequest represents a request to register a tenant
type CreateTenantRequest struct {
	DNI           string          `json:"dni" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone,omitempty"`
	ContractStart *time.Time      `json:"contract_start,omitempty"`
	ContractEnd   *time.Time      `json:"contract_end,omitempty"`
	RentAmount    decimal.Decimal `json:"rent_amount"`
}

func (r CreateTenantRequest) Validate() error {
	if r.DNI == "" {
		return ierr.NewError("tenant national identifier is required").
			WithHint("DNI is required").
			Mark(ierr.ErrValidation)
	}
	if r.Name == "" {
		return ierr.NewError("tenant name is required").
			WithHint("Name is required").
			Mark(ierr.ErrValidation)
	}
	if r.RentAmount.IsNegative() {
		return ierr.NewError("tenant rent amount must be non-negative").
			WithHint("Rent amount must be non-negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ToTenant converts the request to a domain tenant
func (r CreateTenantRequest) ToTenant(ctx context.Context) *tenant.Tenant {
	return &tenant.Tenant{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TENANT),
		DNI:           r.DNI,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		ContractStart: r.ContractStart,
		ContractEnd:   r.ContractEnd,
		RentAmount:    r.RentAmount,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

// UpdateTenantRequest represents a partial tenant update
type UpdateTenantRequest struct {
	Name          *string          `json:"name,omitempty"`
	Email         *string          `json:"email,omitempty"`
	Phone         *string          `json:"phone,omitempty"`
	ContractStart *time.Time       `json:"contract_start,omitempty"`
	ContractEnd   *time.Time       `json:"contract_end,omitempty"`
	RentAmount    *decimal.Decimal `json:"rent_amount,omitempty"`
}

// TenantResponse represents a tenant response
type TenantResponse struct {
	ID            string          `json:"id"`
	DNI           string          `json:"dni"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone,omitempty"`
	ContractStart *time.Time      `json:"contract_start,omitempty"`
	ContractEnd   *time.Time      `json:"contract_end,omitempty"`
	RentAmount    decimal.Decimal `json:"rent_amount"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ListTenantsResponse represents a list of tenants
type ListTenantsResponse struct {
	Items []*TenantResponse `json:"items"`
	Total int               `json:"total"`
}

// NewTenantResponse creates a tenant response from a domain tenant
func NewTenantResponse(t *tenant.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:            t.ID,
		DNI:           t.DNI,
		Name:          t.Name,
		Email:         t.Email,
		Phone:         t.Phone,
		ContractStart: t.ContractStart,
		ContractEnd:   t.ContractEnd,
		RentAmount:    t.RentAmount,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
