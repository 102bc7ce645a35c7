package service

import (
	"context"
	"fmt"

	"github.com/inmovia/inmovia/internal/api/dto"
	"github.com/inmovia/inmovia/internal/domain/billing"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/types"
)

// UnassignedPropertyID is recorded on manual credits for tenants that
// have no property on file.
const UnassignedPropertyID = "UNASSIGNED"

// PaymentService transitions line items through their payment lifecycle
// and records manual tenant credits.
type PaymentService interface {
	MarkPaid(ctx context.Context, billID string, req dto.MarkPaidRequest) (*dto.LineItemResponse, error)
	RegisterCredit(ctx context.Context, req dto.RegisterCreditRequest) (*dto.LineItemResponse, error)
}

type paymentService struct {
	ServiceParams
}

// NewPaymentService creates a new payment service
func NewPaymentService(params ServiceParams) PaymentService {
	return &paymentService{ServiceParams: params}
}

func (s *paymentService) MarkPaid(ctx context.Context, billID string, req dto.MarkPaidRequest) (*dto.LineItemResponse, error) {
	if billID == "" {
		return nil, ierr.NewError("bill id is required").
			WithHint("Bill id is required").
			Mark(ierr.ErrValidation)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item, err := s.BillRepo.Get(ctx, billID)
	if err != nil {
		return nil, err
	}

	receiptID := req.ReceiptID
	if receiptID == "" {
		receiptID = types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_RECEIPT)
	}

	// Status and receipt are attached together: no intermediate state is
	// observable, and an already paid item is rejected without mutation.
	if err := item.AttachReceipt(billing.Receipt{
		ReceiptID:     receiptID,
		PaymentMethod: req.PaymentMethod,
		PaymentDate:   req.PaymentDate.UTC(),
	}); err != nil {
		return nil, err
	}

	if err := s.BillRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.Logger.Infow("marked line item paid",
		"line_item_id", item.ID,
		"receipt_id", receiptID,
		"payment_method", req.PaymentMethod,
	)

	return dto.NewLineItemResponse(item), nil
}

func (s *paymentService) RegisterCredit(ctx context.Context, req dto.RegisterCreditRequest) (*dto.LineItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tnt, err := s.TenantRepo.Get(ctx, req.TenantID)
	if err != nil {
		return nil, err
	}

	propertyID := req.PropertyID
	if propertyID == "" {
		props, err := s.PropertyRepo.ListByTenant(ctx, tnt.ID)
		if err != nil {
			return nil, err
		}
		if len(props) > 0 {
			propertyID = props[0].ID
		} else {
			propertyID = UnassignedPropertyID
		}
	} else if _, err := s.PropertyRepo.Get(ctx, propertyID); err != nil {
		return nil, err
	}

	description := req.Concept
	if propertyID == UnassignedPropertyID {
		// Keep the tenant reference in the concept so the ledger can
		// still attribute the credit.
		description = fmt.Sprintf("%s (%s)", req.Concept, tnt.ID)
	}

	itemID := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LINE_ITEM)
	item := &billing.LineItem{
		ID:                itemID,
		PropertyID:        propertyID,
		Kind:              types.LineItemKindTenantCredit,
		Amount:            req.Amount,
		ReferenceDate:     req.PaymentDate.UTC(),
		ContractReference: "MANUAL-" + itemID[len(itemID)-6:],
		Status:            types.BillStatusPaid,
		Description:       &description,
		Receipt: &billing.Receipt{
			ReceiptID:     types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_RECEIPT),
			PaymentMethod: req.PaymentMethod,
			PaymentDate:   req.PaymentDate.UTC(),
		},
		BaseModel: types.GetDefaultBaseModel(ctx),
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.BillRepo.CreateIfAbsent(ctx, item); err != nil {
		return nil, err
	}

	s.Logger.Infow("registered tenant credit",
		"line_item_id", item.ID,
		"tenant_id", tnt.ID,
		"amount", req.Amount.String(),
	)

	return dto.NewLineItemResponse(item), nil
}
