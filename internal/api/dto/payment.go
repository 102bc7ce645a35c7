package dto

import (
	"time"

	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/shopspring/decimal"
)

// MarkPaidRequest represents a request to settle a pending line item
type MarkPaidRequest struct {
	PaymentMethod string    `json:"payment_method" binding:"required"`
	PaymentDate   time.Time `json:"payment_date" binding:"required"`
	// ReceiptID supports pre-assigned receipt identifiers; a fresh one is
	// generated when empty
	ReceiptID string `json:"receipt_id,omitempty"`
}

func (r MarkPaidRequest) Validate() error {
	if r.PaymentMethod == "" {
		return ierr.NewError("payment method is required").
			WithHint("Payment method is required").
			Mark(ierr.ErrValidation)
	}
	if r.PaymentDate.IsZero() {
		return ierr.NewError("payment date is required").
			WithHint("Payment date is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// RegisterCreditRequest represents a manual tenant payment or advance
type RegisterCreditRequest struct {
	PropertyID    string          `json:"property_id"`
	TenantID      string          `json:"tenant_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Concept       string          `json:"concept" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	PaymentDate   time.Time       `json:"payment_date" binding:"required"`
}

func (r RegisterCreditRequest) Validate() error {
	if r.TenantID == "" {
		return ierr.NewError("tenant id is required").
			WithHint("Tenant id is required").
			Mark(ierr.ErrValidation)
	}
	if !r.Amount.IsPositive() {
		return ierr.NewError("credit amount must be strictly positive").
			WithHint("Amount must be greater than 0").
			Mark(ierr.ErrValidation)
	}
	if r.Concept == "" {
		return ierr.NewError("credit concept is required").
			WithHint("Concept is required").
			Mark(ierr.ErrValidation)
	}
	if r.PaymentMethod == "" {
		return ierr.NewError("payment method is required").
			WithHint("Payment method is required").
			Mark(ierr.ErrValidation)
	}
	if r.PaymentDate.IsZero() {
		return ierr.NewError("payment date is required").
			WithHint("Payment date is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}
