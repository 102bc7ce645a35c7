package service

import (
	"testing"

	"github.com/inmovia/inmovia/internal/api/dto"
	"github.com/inmovia/inmovia/internal/domain/property"
	"github.com/inmovia/inmovia/internal/domain/rates"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/testutil"
	"github.com/inmovia/inmovia/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BillingServiceSuite struct {
	testutil.BaseServiceTestSuite
	billingService BillingService
	paymentService PaymentService
	testData       struct {
		property  *property.Property
		rateTable *rates.RateTable
	}
}

func TestBillingService(t *testing.T) {
	suite.Run(t, new(BillingServiceSuite))
}

func (s *BillingServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	params := ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		PropertyRepo: stores.PropertyRepo,
		OwnerRepo:    stores.OwnerRepo,
		TenantRepo:   stores.TenantRepo,
		RatesRepo:    stores.RatesRepo,
		BillRepo:     stores.BillRepo,
	}
	s.billingService = NewBillingService(params)
	s.paymentService = NewPaymentService(params)

	s.setupTestData()
}

func (s *BillingServiceSuite) setupTestData() {
	s.testData.property = &property.Property{
		ID:        "prop_1",
		Title:     "Av. Rivadavia 1234 3B",
		Address:   "Av. Rivadavia 1234",
		OwnerID:   "owner_1",
		Price:     decimal.NewFromInt(450000),
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().PropertyRepo.Create(s.GetContext(), s.testData.property))

	s.testData.rateTable = &rates.RateTable{
		ElectricityPricePerUnit: decimal.NewFromInt(150),
		GasPricePerUnit:         decimal.NewFromInt(80),
		WaterPricePerUnit:       decimal.NewFromInt(120),
		MunicipalityFixedAmount: decimal.NewFromInt(15000),
		BaseModel:               types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().RatesRepo.Save(s.GetContext(), s.testData.rateTable))
}

func (s *BillingServiceSuite) TestGenerateLineItemsDerivation() {
	consumption := dto.Consumption{
		Electricity: lo.ToPtr(decimal.NewFromInt(100)),
	}

	items, err := GenerateLineItems(s.testData.property, "2024-03", consumption, s.testData.rateTable)
	s.NoError(err)
	s.Len(items, 2)

	elec := items[0]
	s.Equal(types.LineItemKindElectricity, elec.Kind)
	s.True(elec.Amount.Equal(decimal.NewFromInt(15000)), "100 kWh at 150 per unit")
	s.NotNil(elec.Usage)
	s.True(elec.Usage.Equal(decimal.NewFromInt(100)))
	s.Equal(types.BillStatusPending, elec.Status)

	taxes := items[1]
	s.Equal(types.LineItemKindTaxes, taxes.Kind)
	s.True(taxes.Amount.Equal(decimal.NewFromInt(15000)))
	s.Nil(taxes.Usage)

	balance := ComputeBalance(items)
	s.True(balance.TotalOwed.Equal(decimal.NewFromInt(30000)))
}

func (s *BillingServiceSuite) TestGenerateLineItemsDueDate() {
	consumption := dto.Consumption{Water: lo.ToPtr(decimal.NewFromInt(10))}

	items, err := GenerateLineItems(s.testData.property, "2024-02", consumption, s.testData.rateTable)
	s.NoError(err)
	s.NotEmpty(items)

	// 2024 is a leap year
	for _, item := range items {
		s.Equal(29, item.ReferenceDate.Day())
		s.Equal(2, int(item.ReferenceDate.Month()))
	}
}

func (s *BillingServiceSuite) TestGenerateLineItemsDeterministicIDs() {
	consumption := dto.Consumption{
		Electricity: lo.ToPtr(decimal.NewFromInt(100)),
		Gas:         lo.ToPtr(decimal.NewFromInt(50)),
	}

	first, err := GenerateLineItems(s.testData.property, "2024-03", consumption, s.testData.rateTable)
	s.NoError(err)
	second, err := GenerateLineItems(s.testData.property, "2024-03", consumption, s.testData.rateTable)
	s.NoError(err)

	s.Require().Equal(len(first), len(second))
	for i := range first {
		s.Equal(first[i].ID, second[i].ID)
	}

	// a different period produces different ids
	otherPeriod, err := GenerateLineItems(s.testData.property, "2024-04", consumption, s.testData.rateTable)
	s.NoError(err)
	for i := range first {
		s.NotEqual(first[i].ID, otherPeriod[i].ID)
	}

	// ids are unique across kinds within one run
	seen := make(map[string]bool)
	for _, item := range first {
		s.False(seen[item.ID])
		seen[item.ID] = true
	}
}

func (s *BillingServiceSuite) TestGenerateLineItemsContractReferences() {
	consumption := dto.Consumption{Electricity: lo.ToPtr(decimal.NewFromInt(10))}

	items, err := GenerateLineItems(s.testData.property, "2024-03", consumption, s.testData.rateTable)
	s.NoError(err)
	s.Equal("ELEC-prop_1-2024-03", items[0].ContractReference)

	withContract := *s.testData.property
	withContract.ElectricityContract = lo.ToPtr("EDESUR-555123")
	items, err = GenerateLineItems(&withContract, "2024-03", consumption, s.testData.rateTable)
	s.NoError(err)
	s.Equal("EDESUR-555123", items[0].ContractReference)
}

func (s *BillingServiceSuite) TestGenerateLineItemsSkipsZeroUsageAndZeroRates() {
	// zero usage produces nothing for that utility
	items, err := GenerateLineItems(s.testData.property, "2024-03", dto.Consumption{
		Gas: lo.ToPtr(decimal.Zero),
	}, s.testData.rateTable)
	s.NoError(err)
	s.Len(items, 1)
	s.Equal(types.LineItemKindTaxes, items[0].Kind)

	// zero rate suppresses the utility even with usage
	noGasRate := *s.testData.rateTable
	noGasRate.GasPricePerUnit = decimal.Zero
	items, err = GenerateLineItems(s.testData.property, "2024-03", dto.Consumption{
		Gas: lo.ToPtr(decimal.NewFromInt(40)),
	}, &noGasRate)
	s.NoError(err)
	s.Len(items, 1)
	s.Equal(types.LineItemKindTaxes, items[0].Kind)

	// zero municipal amount suppresses the taxes item
	noTaxes := *s.testData.rateTable
	noTaxes.MunicipalityFixedAmount = decimal.Zero
	items, err = GenerateLineItems(s.testData.property, "2024-03", dto.Consumption{}, &noTaxes)
	s.NoError(err)
	s.Empty(items)
}

func (s *BillingServiceSuite) TestGenerateLineItemsValidation() {
	_, err := GenerateLineItems(s.testData.property, "2024-13", dto.Consumption{}, s.testData.rateTable)
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = GenerateLineItems(s.testData.property, "2024-03", dto.Consumption{
		Electricity: lo.ToPtr(decimal.NewFromInt(-1)),
	}, s.testData.rateTable)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *BillingServiceSuite) TestGenerateBillsPersistsIdempotently() {
	req := dto.GenerateBillsRequest{
		PropertyID: s.testData.property.ID,
		Period:     "2024-03",
		Consumption: dto.Consumption{
			Electricity: lo.ToPtr(decimal.NewFromInt(100)),
		},
	}

	resp, err := s.billingService.GenerateBills(s.GetContext(), req)
	s.NoError(err)
	s.Len(resp.Items, 2)
	s.Empty(resp.SkippedIDs)

	// re-running the same generation inserts nothing
	resp, err = s.billingService.GenerateBills(s.GetContext(), req)
	s.NoError(err)
	s.Empty(resp.Items)
	s.Len(resp.SkippedIDs, 2)

	list, err := s.billingService.ListBills(s.GetContext(), s.testData.property.ID)
	s.NoError(err)
	s.Equal(2, list.Total)
}

func (s *BillingServiceSuite) TestGenerateBillsDoesNotResurrectPaidItems() {
	req := dto.GenerateBillsRequest{
		PropertyID: s.testData.property.ID,
		Period:     "2024-03",
		Consumption: dto.Consumption{
			Electricity: lo.ToPtr(decimal.NewFromInt(100)),
		},
	}

	resp, err := s.billingService.GenerateBills(s.GetContext(), req)
	s.NoError(err)
	s.Require().Len(resp.Items, 2)
	billID := resp.Items[0].ID

	_, err = s.paymentService.MarkPaid(s.GetContext(), billID, dto.MarkPaidRequest{
		PaymentMethod: "transferencia",
		PaymentDate:   s.GetNow(),
	})
	s.NoError(err)

	// regeneration skips the paid item and leaves its receipt intact
	resp, err = s.billingService.GenerateBills(s.GetContext(), req)
	s.NoError(err)
	s.Contains(resp.SkippedIDs, billID)

	bill, err := s.billingService.GetBill(s.GetContext(), billID)
	s.NoError(err)
	s.Equal(types.BillStatusPaid, bill.Status)
	s.NotNil(bill.Receipt)
}

func (s *BillingServiceSuite) TestGenerateBillsPersistsInOneTransaction() {
	resp, err := s.billingService.GenerateBills(s.GetContext(), dto.GenerateBillsRequest{
		PropertyID: s.testData.property.ID,
		Period:     "2024-03",
		Consumption: dto.Consumption{
			Electricity: lo.ToPtr(decimal.NewFromInt(100)),
			Water:       lo.ToPtr(decimal.NewFromInt(8)),
		},
	})
	s.NoError(err)
	s.Require().Len(resp.Items, 3)

	// all items of a period commit in a single transaction
	s.Equal(1, s.GetDB().WithTxCalls())
}

func (s *BillingServiceSuite) TestGenerateBillsDryRun() {
	req := dto.GenerateBillsRequest{
		PropertyID: s.testData.property.ID,
		Period:     "2024-03",
		Consumption: dto.Consumption{
			Gas: lo.ToPtr(decimal.NewFromInt(40)),
		},
		DryRun: true,
	}

	resp, err := s.billingService.GenerateBills(s.GetContext(), req)
	s.NoError(err)
	s.Len(resp.Items, 2)

	list, err := s.billingService.ListBills(s.GetContext(), "")
	s.NoError(err)
	s.Equal(0, list.Total)
}

func (s *BillingServiceSuite) TestGenerateBillsUnknownProperty() {
	_, err := s.billingService.GenerateBills(s.GetContext(), dto.GenerateBillsRequest{
		PropertyID: "prop_missing",
		Period:     "2024-03",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
