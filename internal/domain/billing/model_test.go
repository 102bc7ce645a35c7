package billing

import (
	"context"
	"testing"
	"time"

	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingItem() *LineItem {
	return &LineItem{
		ID:                "bill_1",
		PropertyID:        "prop_1",
		Kind:              types.LineItemKindRent,
		Amount:            decimal.NewFromInt(450000),
		ReferenceDate:     time.Now().UTC(),
		ContractReference: "N/A",
		Status:            types.BillStatusPending,
		BaseModel:         types.GetDefaultBaseModel(context.Background()),
	}
}

func TestLineItemValidate(t *testing.T) {
	assert.NoError(t, pendingItem().Validate())

	missingID := pendingItem()
	missingID.ID = ""
	assert.Error(t, missingID.Validate())

	negative := pendingItem()
	negative.Amount = decimal.NewFromInt(-1)
	assert.Error(t, negative.Validate())

	badKind := pendingItem()
	badKind.Kind = "PARKING"
	assert.Error(t, badKind.Validate())
}

func TestLineItemValidateUsage(t *testing.T) {
	withUsage := pendingItem()
	withUsage.Kind = types.LineItemKindElectricity
	withUsage.Usage = lo.ToPtr(decimal.NewFromInt(100))
	assert.NoError(t, withUsage.Validate())

	rentWithUsage := pendingItem()
	rentWithUsage.Usage = lo.ToPtr(decimal.NewFromInt(100))
	assert.Error(t, rentWithUsage.Validate(), "usage is only valid for consumption kinds")
}

func TestLineItemValidateReceiptInvariants(t *testing.T) {
	pendingWithReceipt := pendingItem()
	pendingWithReceipt.Receipt = &Receipt{ReceiptID: "rcpt_1"}
	assert.Error(t, pendingWithReceipt.Validate(), "pending items cannot carry receipts")

	pendingCredit := pendingItem()
	pendingCredit.Kind = types.LineItemKindTenantCredit
	assert.Error(t, pendingCredit.Validate(), "credits must be created already paid")

	paidCredit := pendingItem()
	paidCredit.Kind = types.LineItemKindTenantCredit
	paidCredit.Status = types.BillStatusPaid
	paidCredit.Receipt = &Receipt{
		ReceiptID:     "rcpt_1",
		PaymentMethod: "efectivo",
		PaymentDate:   time.Now().UTC(),
	}
	assert.NoError(t, paidCredit.Validate())
}

func TestAttachReceipt(t *testing.T) {
	item := pendingItem()

	err := item.AttachReceipt(Receipt{
		ReceiptID:     "rcpt_1",
		PaymentMethod: "transferencia",
		PaymentDate:   time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.Equal(t, types.BillStatusPaid, item.Status)
	require.NotNil(t, item.Receipt)
	assert.Equal(t, "rcpt_1", item.Receipt.ReceiptID)

	// a second payment attempt leaves the item untouched
	err = item.AttachReceipt(Receipt{ReceiptID: "rcpt_2"})
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidOperation(err))
	assert.Equal(t, "rcpt_1", item.Receipt.ReceiptID)
}
