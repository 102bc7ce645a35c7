package service

import (
	"testing"

	"github.com/inmovia/inmovia/internal/domain/billing"
	"github.com/inmovia/inmovia/internal/domain/owner"
	"github.com/inmovia/inmovia/internal/domain/property"
	"github.com/inmovia/inmovia/internal/domain/tenant"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/testutil"
	"github.com/inmovia/inmovia/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceSuite struct {
	testutil.BaseServiceTestSuite
	ledgerService LedgerService
	testData      struct {
		owner    *owner.Owner
		tenant   *tenant.Tenant
		property *property.Property
	}
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceSuite))
}

func (s *LedgerServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.ledgerService = NewLedgerService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		PropertyRepo: stores.PropertyRepo,
		OwnerRepo:    stores.OwnerRepo,
		TenantRepo:   stores.TenantRepo,
		RatesRepo:    stores.RatesRepo,
		BillRepo:     stores.BillRepo,
	})

	s.setupTestData()
}

func (s *LedgerServiceSuite) setupTestData() {
	ctx := s.GetContext()

	s.testData.owner = &owner.Owner{
		ID:        "owner_1",
		DNI:       "20123456",
		Name:      "Marta Suarez",
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
	s.NoError(s.GetStores().OwnerRepo.Create(ctx, s.testData.owner))

	s.testData.tenant = &tenant.Tenant{
		ID:         "tnt_1",
		DNI:        "30987654",
		Name:       "Julian Paredes",
		RentAmount: decimal.NewFromInt(450000),
		BaseModel:  types.GetDefaultBaseModel(ctx),
	}
	s.NoError(s.GetStores().TenantRepo.Create(ctx, s.testData.tenant))

	s.testData.property = &property.Property{
		ID:        "prop_1",
		Title:     "Av. Rivadavia 1234 3B",
		OwnerID:   s.testData.owner.ID,
		TenantID:  lo.ToPtr(s.testData.tenant.ID),
		Price:     decimal.NewFromInt(450000),
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
	s.NoError(s.GetStores().PropertyRepo.Create(ctx, s.testData.property))
}

func (s *LedgerServiceSuite) lineItem(id string, kind types.LineItemKind, amount int64, status types.BillStatus) *billing.LineItem {
	item := &billing.LineItem{
		ID:                id,
		PropertyID:        s.testData.property.ID,
		Kind:              kind,
		Amount:            decimal.NewFromInt(amount),
		ReferenceDate:     s.GetNow(),
		ContractReference: "N/A",
		Status:            status,
		BaseModel:         types.GetDefaultBaseModel(s.GetContext()),
	}
	if status == types.BillStatusPaid {
		item.Receipt = &billing.Receipt{
			ReceiptID:     "rcpt_" + id,
			PaymentMethod: "efectivo",
			PaymentDate:   s.GetNow(),
		}
	}
	return item
}

func (s *LedgerServiceSuite) TestComputeBalanceFormula() {
	items := []*billing.LineItem{
		s.lineItem("b1", types.LineItemKindRent, 450000, types.BillStatusPending),
		s.lineItem("b2", types.LineItemKindTenantCredit, 100000, types.BillStatusPaid),
		s.lineItem("b3", types.LineItemKindElectricity, 15000, types.BillStatusPaid),
	}

	balance := ComputeBalance(items)
	// pending debt minus received credit; paid debts do not count
	s.True(balance.TotalOwed.Equal(decimal.NewFromInt(350000)))
}

func (s *LedgerServiceSuite) TestComputeBalanceOrderInvariant() {
	items := []*billing.LineItem{
		s.lineItem("b1", types.LineItemKindRent, 450000, types.BillStatusPending),
		s.lineItem("b2", types.LineItemKindTenantCredit, 100000, types.BillStatusPaid),
		s.lineItem("b3", types.LineItemKindTaxes, 15000, types.BillStatusPending),
	}
	reversed := []*billing.LineItem{items[2], items[1], items[0]}

	s.True(ComputeBalance(items).TotalOwed.Equal(ComputeBalance(reversed).TotalOwed))
}

func (s *LedgerServiceSuite) TestComputeBalanceCanBeNegative() {
	items := []*billing.LineItem{
		s.lineItem("b1", types.LineItemKindRent, 450000, types.BillStatusPending),
		s.lineItem("b2", types.LineItemKindTenantCredit, 500000, types.BillStatusPaid),
	}

	balance := ComputeBalance(items)
	s.True(balance.TotalOwed.Equal(decimal.NewFromInt(-50000)), "advance payments push the balance negative")
}

func (s *LedgerServiceSuite) TestComputeBalanceBreakdown() {
	items := []*billing.LineItem{
		s.lineItem("b1", types.LineItemKindRent, 450000, types.BillStatusPending),
		s.lineItem("b2", types.LineItemKindElectricity, 15000, types.BillStatusPending),
		s.lineItem("b3", types.LineItemKindElectricity, 12000, types.BillStatusPending),
		s.lineItem("b4", types.LineItemKindElectricity, 9000, types.BillStatusPaid),
	}

	balance := ComputeBalance(items)
	s.Require().Len(balance.Breakdown, 3)

	// groups appear in first-appearance order
	s.Equal(types.LineItemKindRent, balance.Breakdown[0].Kind)
	s.Equal(types.BillStatusPending, balance.Breakdown[0].Status)
	s.Equal(1, balance.Breakdown[0].Count)

	s.Equal(types.LineItemKindElectricity, balance.Breakdown[1].Kind)
	s.Equal(types.BillStatusPending, balance.Breakdown[1].Status)
	s.Equal(2, balance.Breakdown[1].Count)
	s.True(balance.Breakdown[1].Total.Equal(decimal.NewFromInt(27000)))

	s.Equal(types.BillStatusPaid, balance.Breakdown[2].Status)
}

func (s *LedgerServiceSuite) TestComputeBalanceEmpty() {
	balance := ComputeBalance(nil)
	s.True(balance.TotalOwed.IsZero())
	s.Empty(balance.Breakdown)
}

func (s *LedgerServiceSuite) TestTenantBalance() {
	ctx := s.GetContext()
	store := s.GetStores().BillRepo

	for _, item := range []*billing.LineItem{
		s.lineItem("b1", types.LineItemKindRent, 450000, types.BillStatusPending),
		s.lineItem("b2", types.LineItemKindTenantCredit, 100000, types.BillStatusPaid),
	} {
		_, err := store.CreateIfAbsent(ctx, item)
		s.NoError(err)
	}

	resp, err := s.ledgerService.TenantBalance(ctx, s.testData.tenant.ID)
	s.NoError(err)
	s.Equal("tenant", resp.SubjectType)
	s.True(resp.TotalOwed.Equal(decimal.NewFromInt(350000)))
	s.Len(resp.Items, 2)
}

func (s *LedgerServiceSuite) TestTenantBalanceIncludesUnassignedCredits() {
	ctx := s.GetContext()

	credit := &billing.LineItem{
		ID:                "b_credit",
		PropertyID:        UnassignedPropertyID,
		Kind:              types.LineItemKindTenantCredit,
		Amount:            decimal.NewFromInt(80000),
		ReferenceDate:     s.GetNow(),
		ContractReference: "MANUAL-credit",
		Status:            types.BillStatusPaid,
		Description:       lo.ToPtr("Adelanto marzo (tnt_1)"),
		Receipt: &billing.Receipt{
			ReceiptID:     "rcpt_b_credit",
			PaymentMethod: "transferencia",
			PaymentDate:   s.GetNow(),
		},
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
	_, err := s.GetStores().BillRepo.CreateIfAbsent(ctx, credit)
	s.NoError(err)

	resp, err := s.ledgerService.TenantBalance(ctx, s.testData.tenant.ID)
	s.NoError(err)
	s.True(resp.TotalOwed.Equal(decimal.NewFromInt(-80000)))
}

func (s *LedgerServiceSuite) TestTenantBalanceIgnoresOtherTenantsCredits() {
	ctx := s.GetContext()

	// tnt_1 exists; tnt_10 shares the prefix and must not leak credits
	other := &tenant.Tenant{
		ID:        "tnt_10",
		DNI:       "31222333",
		Name:      "Romina Paredes",
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
	s.NoError(s.GetStores().TenantRepo.Create(ctx, other))

	credit := &billing.LineItem{
		ID:                "b_credit_other",
		PropertyID:        UnassignedPropertyID,
		Kind:              types.LineItemKindTenantCredit,
		Amount:            decimal.NewFromInt(60000),
		ReferenceDate:     s.GetNow(),
		ContractReference: "MANUAL-other",
		Status:            types.BillStatusPaid,
		Description:       lo.ToPtr("Adelanto abril (tnt_10)"),
		Receipt: &billing.Receipt{
			ReceiptID:     "rcpt_b_credit_other",
			PaymentMethod: "transferencia",
			PaymentDate:   s.GetNow(),
		},
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
	_, err := s.GetStores().BillRepo.CreateIfAbsent(ctx, credit)
	s.NoError(err)

	resp, err := s.ledgerService.TenantBalance(ctx, s.testData.tenant.ID)
	s.NoError(err)
	s.True(resp.TotalOwed.IsZero(), "tnt_1 must not pick up tnt_10's credit")
	s.Empty(resp.Items)

	resp, err = s.ledgerService.TenantBalance(ctx, other.ID)
	s.NoError(err)
	s.True(resp.TotalOwed.Equal(decimal.NewFromInt(-60000)))
}

func (s *LedgerServiceSuite) TestOwnerBalance() {
	ctx := s.GetContext()

	_, err := s.GetStores().BillRepo.CreateIfAbsent(ctx,
		s.lineItem("b1", types.LineItemKindTaxes, 15000, types.BillStatusPending))
	s.NoError(err)

	resp, err := s.ledgerService.OwnerBalance(ctx, s.testData.owner.ID)
	s.NoError(err)
	s.Equal("owner", resp.SubjectType)
	s.True(resp.TotalOwed.Equal(decimal.NewFromInt(15000)))
}

func (s *LedgerServiceSuite) TestBalanceUnknownSubject() {
	_, err := s.ledgerService.TenantBalance(s.GetContext(), "tnt_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	_, err = s.ledgerService.OwnerBalance(s.GetContext(), "owner_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
