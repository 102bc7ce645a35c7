package dto

import (
	"time"

	"github.com/inmovia/inmovia/internal/domain/billing"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/types"
	"github.com/shopspring/decimal"
)

// Consumption carries the metered quantities supplied for one billing
// period. Absent values mean the utility was not metered for the period.
type Consumption struct {
	Electricity *decimal.Decimal `json:"electricity,omitempty"`
	Gas         *decimal.Decimal `json:"gas,omitempty"`
	Water       *decimal.Decimal `json:"water,omitempty"`
}

// ValueFor returns the supplied quantity for a consumption kind
func (c Consumption) ValueFor(kind types.LineItemKind) *decimal.Decimal {
	switch kind {
	case types.LineItemKindElectricity:
		return c.Electricity
	case types.LineItemKindGas:
		return c.Gas
	case types.LineItemKindWater:
		return c.Water
	default:
		return nil
	}
}

// Validate rejects negative consumption values
func (c Consumption) Validate() error {
	for _, v := range []*decimal.Decimal{c.Electricity, c.Gas, c.Water} {
		if v != nil && v.IsNegative() {
			return ierr.NewError("consumption values must be non-negative").
				WithHint("Consumption values must be non-negative").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// GenerateBillsRequest represents a request to derive line items for a
// property and billing period from the current rate table
type GenerateBillsRequest struct {
	PropertyID  string              `json:"property_id" binding:"required"`
	Period      types.BillingPeriod `json:"period" binding:"required"`
	Consumption Consumption         `json:"consumption"`
	// DryRun returns the derived items without persisting them
	DryRun bool `json:"dry_run"`
}

func (r GenerateBillsRequest) Validate() error {
	if r.PropertyID == "" {
		return ierr.NewError("property id is required").
			WithHint("Property id is required").
			Mark(ierr.ErrValidation)
	}
	if err := r.Period.Validate(); err != nil {
		return err
	}
	return r.Consumption.Validate()
}

// GenerateBillsResponse reports the outcome of a generation run
type GenerateBillsResponse struct {
	Items []*LineItemResponse `json:"items"`
	// SkippedIDs lists items that already existed and were left untouched
	SkippedIDs []string `json:"skipped_ids,omitempty"`
}

// ReceiptResponse is the proof-of-payment block of a paid line item
type ReceiptResponse struct {
	ReceiptID     string    `json:"receipt_id"`
	PaymentMethod string    `json:"payment_method"`
	PaymentDate   time.Time `json:"payment_date"`
}

// LineItemResponse represents a billing line item response
type LineItemResponse struct {
	ID                string             `json:"id"`
	PropertyID        string             `json:"property_id"`
	Kind              types.LineItemKind `json:"kind"`
	Amount            decimal.Decimal    `json:"amount"`
	Usage             *decimal.Decimal   `json:"usage,omitempty"`
	ReferenceDate     time.Time          `json:"reference_date"`
	ContractReference string             `json:"contract_reference"`
	Status            types.BillStatus   `json:"status"`
	Description       *string            `json:"description,omitempty"`
	Receipt           *ReceiptResponse   `json:"receipt,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// ListLineItemsResponse represents a list of line items
type ListLineItemsResponse struct {
	Items []*LineItemResponse `json:"items"`
	Total int                 `json:"total"`
}

// NewLineItemResponse creates a line item response from a domain line item
func NewLineItemResponse(li *billing.LineItem) *LineItemResponse {
	resp := &LineItemResponse{
		ID:                li.ID,
		PropertyID:        li.PropertyID,
		Kind:              li.Kind,
		Amount:            li.Amount,
		Usage:             li.Usage,
		ReferenceDate:     li.ReferenceDate,
		ContractReference: li.ContractReference,
		Status:            li.Status,
		Description:       li.Description,
		CreatedAt:         li.CreatedAt,
		UpdatedAt:         li.UpdatedAt,
	}
	if li.Receipt != nil {
		resp.Receipt = &ReceiptResponse{
			ReceiptID:     li.Receipt.ReceiptID,
			PaymentMethod: li.Receipt.PaymentMethod,
			PaymentDate:   li.Receipt.PaymentDate,
		}
	}
	return resp
}

// NewLineItemResponseList converts a list of domain line items
func NewLineItemResponseList(items []*billing.LineItem) []*LineItemResponse {
	result := make([]*LineItemResponse, len(items))
	for i, li := range items {
		result[i] = NewLineItemResponse(li)
	}
	return result
}
