package service

import (
	"context"

	"github.com/inmovia/inmovia/internal/api/dto"
	"github.com/inmovia/inmovia/internal/domain/billing"
	"github.com/inmovia/inmovia/internal/domain/property"
	"github.com/inmovia/inmovia/internal/domain/rates"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/idempotency"
	"github.com/inmovia/inmovia/internal/types"
)

// consumptionKinds is the emission order of consumption-based line items
var consumptionKinds = []types.LineItemKind{
	types.LineItemKindElectricity,
	types.LineItemKindGas,
	types.LineItemKindWater,
}

// BillingService derives billing line items from metered consumption and
// the current rate table, and persists them idempotently.
type BillingService interface {
	GenerateBills(ctx context.Context, req dto.GenerateBillsRequest) (*dto.GenerateBillsResponse, error)
	GetBill(ctx context.Context, id string) (*dto.LineItemResponse, error)
	ListBills(ctx context.Context, propertyID string) (*dto.ListLineItemsResponse, error)
}

type billingService struct {
	ServiceParams
}

// NewBillingService creates a new billing service
func NewBillingService(params ServiceParams) BillingService {
	return &billingService{ServiceParams: params}
}

// GenerateLineItems derives the line items for one property and billing
// period from the supplied consumption and rate table. It is pure: no
// side effects, and identical inputs produce identical items, ids
// included. Persisting the result is the caller's responsibility.
func GenerateLineItems(
	prop *property.Property,
	period types.BillingPeriod,
	consumption dto.Consumption,
	rateTable *rates.RateTable,
) ([]*billing.LineItem, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}
	if err := consumption.Validate(); err != nil {
		return nil, err
	}
	if err := rateTable.Validate(); err != nil {
		return nil, err
	}

	gen := idempotency.NewGenerator()
	dueDate := period.LastDay()
	items := make([]*billing.LineItem, 0, len(consumptionKinds)+1)

	for _, kind := range consumptionKinds {
		usage := consumption.ValueFor(kind)
		rate := rateTable.RateFor(kind)
		if usage == nil || !usage.IsPositive() || !rate.IsPositive() {
			continue
		}

		u := *usage
		items = append(items, &billing.LineItem{
			ID:                periodBillID(gen, prop.ID, period, kind),
			PropertyID:        prop.ID,
			Kind:              kind,
			Amount:            u.Mul(rate),
			Usage:             &u,
			ReferenceDate:     dueDate,
			ContractReference: contractReference(prop, period, kind),
			Status:            types.BillStatusPending,
			BaseModel:         types.GetDefaultBaseModel(context.Background()),
		})
	}

	// The fixed municipal amount is billed for every period regardless of
	// consumption.
	if rateTable.MunicipalityFixedAmount.IsPositive() {
		kind := types.LineItemKindTaxes
		items = append(items, &billing.LineItem{
			ID:                periodBillID(gen, prop.ID, period, kind),
			PropertyID:        prop.ID,
			Kind:              kind,
			Amount:            rateTable.MunicipalityFixedAmount,
			ReferenceDate:     dueDate,
			ContractReference: contractReference(prop, period, kind),
			Status:            types.BillStatusPending,
			BaseModel:         types.GetDefaultBaseModel(context.Background()),
		})
	}

	return items, nil
}

// periodBillID derives the line item id from (property, period, kind) so
// that re-running generation reproduces the same ids.
func periodBillID(gen *idempotency.Generator, propertyID string, period types.BillingPeriod, kind types.LineItemKind) string {
	return gen.GenerateKey(idempotency.ScopePeriodBill, map[string]interface{}{
		"property_id": propertyID,
		"period":      period.String(),
		"kind":        kind.String(),
	})
}

// contractReference resolves the property's stored contract id for the
// kind, or a placeholder token scoped to (property, period, utility).
func contractReference(prop *property.Property, period types.BillingPeriod, kind types.LineItemKind) string {
	if ref := prop.ContractFor(kind); ref != nil && *ref != "" {
		return *ref
	}
	return kind.PlaceholderPrefix() + "-" + prop.ID + "-" + period.String()
}

func (s *billingService) GenerateBills(ctx context.Context, req dto.GenerateBillsRequest) (*dto.GenerateBillsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prop, err := s.PropertyRepo.Get(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}

	rateTable, err := s.RatesRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	items, err := GenerateLineItems(prop, req.Period, req.Consumption, rateTable)
	if err != nil {
		return nil, err
	}

	if req.DryRun {
		return &dto.GenerateBillsResponse{
			Items: dto.NewLineItemResponseList(items),
		}, nil
	}

	created := make([]*billing.LineItem, 0, len(items))
	var skipped []string
	// The period's line items commit as one batch or not at all.
	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		for _, item := range items {
			inserted, err := s.BillRepo.CreateIfAbsent(ctx, item)
			if err != nil {
				return err
			}
			if inserted {
				created = append(created, item)
			} else {
				skipped = append(skipped, item.ID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("generated billing line items",
		"property_id", prop.ID,
		"period", req.Period.String(),
		"created", len(created),
		"skipped", len(skipped),
	)

	return &dto.GenerateBillsResponse{
		Items:      dto.NewLineItemResponseList(created),
		SkippedIDs: skipped,
	}, nil
}

func (s *billingService) GetBill(ctx context.Context, id string) (*dto.LineItemResponse, error) {
	if id == "" {
		return nil, ierr.NewError("bill id is required").
			WithHint("Bill id is required").
			Mark(ierr.ErrValidation)
	}

	item, err := s.BillRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return dto.NewLineItemResponse(item), nil
}

func (s *billingService) ListBills(ctx context.Context, propertyID string) (*dto.ListLineItemsResponse, error) {
	var (
		items []*billing.LineItem
		err   error
	)
	if propertyID != "" {
		items, err = s.BillRepo.ListByProperty(ctx, propertyID)
	} else {
		items, err = s.BillRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	return &dto.ListLineItemsResponse{
		Items: dto.NewLineItemResponseList(items),
		Total: len(items),
	}, nil
}
