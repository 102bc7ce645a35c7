package service

import (
	"context"
	"strings"

	"github.com/inmovia/inmovia/internal/api/dto"
	"github.com/inmovia/inmovia/internal/domain/billing"
	"github.com/inmovia/inmovia/internal/domain/property"
	"github.com/inmovia/inmovia/internal/types"
	"github.com/shopspring/decimal"
)

// Balance is the outstanding position of a subject over its line items
type Balance struct {
	// TotalOwed is the pending debt minus received credits. Negative
	// means the subject has paid in advance, which is a valid state.
	TotalOwed decimal.Decimal
	// Breakdown groups items by kind and status in first-appearance
	// order of the input sequence
	Breakdown []BalanceGroup
}

// BalanceGroup is one (kind, status) bucket of the breakdown
type BalanceGroup struct {
	Kind   types.LineItemKind
	Status types.BillStatus
	Count  int
	Total  decimal.Decimal
}

// ComputeBalance reduces a sequence of line items for one subject to its
// outstanding balance and a per kind/status breakdown. It is a pure
// function over the full set: the balance is recomputed from history on
// every read rather than maintained incrementally, so there is no second
// source of truth that could drift from the line items themselves.
func ComputeBalance(items []*billing.LineItem) *Balance {
	total := decimal.Zero
	var groups []BalanceGroup
	index := make(map[[2]string]int)

	for _, li := range items {
		switch {
		case li.Kind.IsCredit() && li.Status == types.BillStatusPaid:
			total = total.Sub(li.Amount)
		case !li.Kind.IsCredit() && li.Status == types.BillStatusPending:
			total = total.Add(li.Amount)
		}

		key := [2]string{li.Kind.String(), li.Status.String()}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, BalanceGroup{Kind: li.Kind, Status: li.Status, Total: decimal.Zero})
		}
		groups[i].Count++
		groups[i].Total = groups[i].Total.Add(li.Amount)
	}

	return &Balance{TotalOwed: total, Breakdown: groups}
}

// LedgerService aggregates line items into outstanding balances for
// tenants and owners
type LedgerService interface {
	TenantBalance(ctx context.Context, tenantID string) (*dto.BalanceResponse, error)
	OwnerBalance(ctx context.Context, ownerID string) (*dto.BalanceResponse, error)
}

type ledgerService struct {
	ServiceParams
}

// NewLedgerService creates a new ledger service
func NewLedgerService(params ServiceParams) LedgerService {
	return &ledgerService{ServiceParams: params}
}

func (s *ledgerService) TenantBalance(ctx context.Context, tenantID string) (*dto.BalanceResponse, error) {
	tnt, err := s.TenantRepo.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	props, err := s.PropertyRepo.ListByTenant(ctx, tnt.ID)
	if err != nil {
		return nil, err
	}

	all, err := s.BillRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	propSet := propertyIDSet(props)
	items := make([]*billing.LineItem, 0)
	for _, li := range all {
		if propSet[li.PropertyID] {
			items = append(items, li)
			continue
		}
		// Credits registered without an assigned property still count for
		// the tenant when the concept carries its parenthesized id. An
		// exact token match keeps tnt_1 from claiming tnt_10's credits.
		if li.Kind.IsCredit() && li.Description != nil && strings.Contains(*li.Description, "("+tnt.ID+")") {
			items = append(items, li)
		}
	}

	return newBalanceResponse(tnt.ID, "tenant", items), nil
}

func (s *ledgerService) OwnerBalance(ctx context.Context, ownerID string) (*dto.BalanceResponse, error) {
	own, err := s.OwnerRepo.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	props, err := s.PropertyRepo.ListByOwner(ctx, own.ID)
	if err != nil {
		return nil, err
	}

	items, err := s.BillRepo.ListByProperties(ctx, propertyIDs(props))
	if err != nil {
		return nil, err
	}

	return newBalanceResponse(own.ID, "owner", items), nil
}

func propertyIDs(props []*property.Property) []string {
	ids := make([]string, len(props))
	for i, p := range props {
		ids[i] = p.ID
	}
	return ids
}

func propertyIDSet(props []*property.Property) map[string]bool {
	set := make(map[string]bool, len(props))
	for _, p := range props {
		set[p.ID] = true
	}
	return set
}

func newBalanceResponse(subjectID, subjectType string, items []*billing.LineItem) *dto.BalanceResponse {
	balance := ComputeBalance(items)

	breakdown := make([]dto.BalanceGroupResponse, len(balance.Breakdown))
	for i, g := range balance.Breakdown {
		breakdown[i] = dto.BalanceGroupResponse{
			Kind:   g.Kind,
			Status: g.Status,
			Count:  g.Count,
			Total:  g.Total,
		}
	}

	return &dto.BalanceResponse{
		SubjectID:   subjectID,
		SubjectType: subjectType,
		TotalOwed:   balance.TotalOwed,
		Breakdown:   breakdown,
		Items:       dto.NewLineItemResponseList(items),
	}
}
