package billing

import (
	"time"

	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/types"
	"github.com/shopspring/decimal"
)

// LineItem represents one billable or credit event in the ledger. It is
// created by the bill factory, the bulk reconciler or a manual credit
// registration, and mutated only by the payment processor. Line items are
// never deleted.
type LineItem struct {
	// Unique identifier, assigned at creation and never reused. Ids are
	// deterministic for generated and imported items so that insertion
	// can be idempotent.
	ID string `json:"id"`
	// The property this line item is billed against
	PropertyID string `json:"property_id"`
	// The kind of billable event
	Kind types.LineItemKind `json:"kind"`
	// Non-negative monetary amount. For TENANT_CREDIT this is money
	// received from the tenant, a negative contribution to debt.
	Amount decimal.Decimal `json:"amount"`
	// Metered quantity, present only for consumption-based kinds. When
	// present, Amount equals Usage times the rate at generation time.
	Usage *decimal.Decimal `json:"usage,omitempty"`
	// Due date for debts, payment date for credits
	ReferenceDate time.Time `json:"reference_date"`
	// Free-text identifier correlating the item to an external service
	// contract, used for automated matching during ingestion
	ContractReference string `json:"contract_reference"`
	// Payment status
	Status types.BillStatus `json:"status"`
	// Free-text override of the display label, used for ad-hoc entries
	Description *string `json:"description,omitempty"`
	// Proof-of-payment metadata, present only once the item is paid
	Receipt *Receipt `json:"receipt,omitempty"`

	types.BaseModel
}

// Receipt is the immutable proof-of-payment block attached to a line item
// once it is paid.
type Receipt struct {
	ReceiptID     string    `json:"receipt_id"`
	PaymentMethod string    `json:"payment_method"`
	PaymentDate   time.Time `json:"payment_date"`
}

// Validate enforces the line item invariants.
func (li *LineItem) Validate() error {
	if li.ID == "" {
		return ierr.NewError("line item id is required").
			WithHint("Line item id is required").
			Mark(ierr.ErrValidation)
	}
	if li.PropertyID == "" {
		return ierr.NewError("line item property is required").
			WithHint("Line item property is required").
			Mark(ierr.ErrValidation)
	}
	if err := li.Kind.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Line item kind is invalid").
			Mark(ierr.ErrValidation)
	}
	if err := li.Status.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Line item status is invalid").
			Mark(ierr.ErrValidation)
	}
	if li.Amount.IsNegative() {
		return ierr.NewError("line item amount must be non-negative").
			WithHint("Amount must be non-negative").
			Mark(ierr.ErrValidation)
	}
	if li.Usage != nil {
		if !li.Kind.IsConsumption() {
			return ierr.NewError("usage is only valid for consumption kinds").
				WithHintf("Usage is not valid for kind %s", li.Kind).
				Mark(ierr.ErrValidation)
		}
		if li.Usage.IsNegative() {
			return ierr.NewError("line item usage must be non-negative").
				WithHint("Usage must be non-negative").
				Mark(ierr.ErrValidation)
		}
	}
	if li.Status == types.BillStatusPending && li.Receipt != nil {
		return ierr.NewError("pending line item cannot carry a receipt").
			WithHint("A receipt is only valid once the item is paid").
			Mark(ierr.ErrValidation)
	}
	if li.Kind.IsCredit() && li.Status != types.BillStatusPaid {
		return ierr.NewError("credit line item must be created already paid").
			WithHint("A credit is recorded only once the money has been received").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// AttachReceipt transitions the item from pending to paid, attaching the
// receipt block. Both are set together so no intermediate state is
// observable. Fails without mutating the item when it is already paid.
func (li *LineItem) AttachReceipt(receipt Receipt) error {
	if li.Status == types.BillStatusPaid {
		return ierr.NewError("line item is already paid").
			WithHint("The bill has already been paid").
			WithReportableDetails(map[string]any{
				"line_item_id": li.ID,
			}).
			Mark(ierr.ErrInvalidOperation)
	}
	li.Status = types.BillStatusPaid
	li.Receipt = &receipt
	li.UpdatedAt = time.Now().UTC()
	return nil
}

// TableName returns the table name for the line item
func (li *LineItem) TableName() string {
	return "billing_line_items"
}
