package service

import (
	"strings"
	"testing"

	"github.com/inmovia/inmovia/internal/api/dto"
	"github.com/inmovia/inmovia/internal/domain/billing"
	"github.com/inmovia/inmovia/internal/domain/property"
	"github.com/inmovia/inmovia/internal/domain/tenant"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/testutil"
	"github.com/inmovia/inmovia/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceSuite struct {
	testutil.BaseServiceTestSuite
	paymentService PaymentService
	testData       struct {
		tenant      *tenant.Tenant
		property    *property.Property
		pendingBill *billing.LineItem
	}
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceSuite))
}

func (s *PaymentServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.paymentService = NewPaymentService(ServiceParams{
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

func (s *PaymentServiceSuite) setupTestData() {
	ctx := s.GetContext()

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
		OwnerID:   "owner_1",
		TenantID:  lo.ToPtr(s.testData.tenant.ID),
		Price:     decimal.NewFromInt(450000),
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
	s.NoError(s.GetStores().PropertyRepo.Create(ctx, s.testData.property))

	s.testData.pendingBill = &billing.LineItem{
		ID:                "bill_1",
		PropertyID:        s.testData.property.ID,
		Kind:              types.LineItemKindRent,
		Amount:            decimal.NewFromInt(450000),
		ReferenceDate:     s.GetNow(),
		ContractReference: "N/A",
		Status:            types.BillStatusPending,
		BaseModel:         types.GetDefaultBaseModel(ctx),
	}
	_, err := s.GetStores().BillRepo.CreateIfAbsent(ctx, s.testData.pendingBill)
	s.NoError(err)
}

func (s *PaymentServiceSuite) TestMarkPaidAttachesReceipt() {
	resp, err := s.paymentService.MarkPaid(s.GetContext(), "bill_1", dto.MarkPaidRequest{
		PaymentMethod: "transferencia",
		PaymentDate:   s.GetNow(),
	})
	s.NoError(err)
	s.Equal(types.BillStatusPaid, resp.Status)
	s.Require().NotNil(resp.Receipt)
	// generated receipt ids are short and human readable
	s.True(strings.HasPrefix(resp.Receipt.ReceiptID, types.SHORT_ID_PREFIX_RECEIPT))
	s.LessOrEqual(len(resp.Receipt.ReceiptID), 12)
	s.Equal("transferencia", resp.Receipt.PaymentMethod)

	// the stored item carries the same receipt
	stored, err := s.GetStores().BillRepo.Get(s.GetContext(), "bill_1")
	s.NoError(err)
	s.Equal(types.BillStatusPaid, stored.Status)
	s.Require().NotNil(stored.Receipt)
	s.Equal(resp.Receipt.ReceiptID, stored.Receipt.ReceiptID)
}

func (s *PaymentServiceSuite) TestMarkPaidHonorsPreAssignedReceiptID() {
	resp, err := s.paymentService.MarkPaid(s.GetContext(), "bill_1", dto.MarkPaidRequest{
		PaymentMethod: "efectivo",
		PaymentDate:   s.GetNow(),
		ReceiptID:     "REC-EXTERNAL-42",
	})
	s.NoError(err)
	s.Equal("REC-EXTERNAL-42", resp.Receipt.ReceiptID)
}

func (s *PaymentServiceSuite) TestMarkPaidTwiceFails() {
	_, err := s.paymentService.MarkPaid(s.GetContext(), "bill_1", dto.MarkPaidRequest{
		PaymentMethod: "transferencia",
		PaymentDate:   s.GetNow(),
	})
	s.NoError(err)

	_, err = s.paymentService.MarkPaid(s.GetContext(), "bill_1", dto.MarkPaidRequest{
		PaymentMethod: "efectivo",
		PaymentDate:   s.GetNow(),
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	// the original receipt is untouched
	stored, err := s.GetStores().BillRepo.Get(s.GetContext(), "bill_1")
	s.NoError(err)
	s.Equal("transferencia", stored.Receipt.PaymentMethod)
}

func (s *PaymentServiceSuite) TestMarkPaidUnknownBill() {
	_, err := s.paymentService.MarkPaid(s.GetContext(), "bill_missing", dto.MarkPaidRequest{
		PaymentMethod: "transferencia",
		PaymentDate:   s.GetNow(),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PaymentServiceSuite) TestMarkPaidValidation() {
	_, err := s.paymentService.MarkPaid(s.GetContext(), "bill_1", dto.MarkPaidRequest{
		PaymentDate: s.GetNow(),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PaymentServiceSuite) TestRegisterCredit() {
	resp, err := s.paymentService.RegisterCredit(s.GetContext(), dto.RegisterCreditRequest{
		TenantID:      s.testData.tenant.ID,
		Amount:        decimal.NewFromInt(100000),
		Concept:       "Pago parcial alquiler marzo",
		PaymentMethod: "transferencia",
		PaymentDate:   s.GetNow(),
	})
	s.NoError(err)
	s.Equal(types.LineItemKindTenantCredit, resp.Kind)
	s.Equal(types.BillStatusPaid, resp.Status)
	s.Require().NotNil(resp.Receipt)
	// the tenant's property is resolved when none is given
	s.Equal(s.testData.property.ID, resp.PropertyID)
	s.True(strings.HasPrefix(resp.ContractReference, "MANUAL-"))
}

func (s *PaymentServiceSuite) TestRegisterCreditWithoutProperty() {
	orphan := &tenant.Tenant{
		ID:        "tnt_2",
		DNI:       "27555444",
		Name:      "Carla Mendez",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().TenantRepo.Create(s.GetContext(), orphan))

	resp, err := s.paymentService.RegisterCredit(s.GetContext(), dto.RegisterCreditRequest{
		TenantID:      orphan.ID,
		Amount:        decimal.NewFromInt(50000),
		Concept:       "Seña",
		PaymentMethod: "efectivo",
		PaymentDate:   s.GetNow(),
	})
	s.NoError(err)
	s.Equal(UnassignedPropertyID, resp.PropertyID)
	// the concept keeps the tenant reference for later attribution
	s.Require().NotNil(resp.Description)
	s.Contains(*resp.Description, orphan.ID)
}

func (s *PaymentServiceSuite) TestRegisterCreditValidation() {
	_, err := s.paymentService.RegisterCredit(s.GetContext(), dto.RegisterCreditRequest{
		TenantID:      s.testData.tenant.ID,
		Amount:        decimal.Zero,
		Concept:       "Nada",
		PaymentMethod: "efectivo",
		PaymentDate:   s.GetNow(),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err), "zero amount credits are rejected")

	_, err = s.paymentService.RegisterCredit(s.GetContext(), dto.RegisterCreditRequest{
		TenantID:      "tnt_missing",
		Amount:        decimal.NewFromInt(1000),
		Concept:       "Pago",
		PaymentMethod: "efectivo",
		PaymentDate:   s.GetNow(),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PaymentServiceSuite) TestRegisterCreditUnknownProperty() {
	_, err := s.paymentService.RegisterCredit(s.GetContext(), dto.RegisterCreditRequest{
		PropertyID:    "prop_missing",
		TenantID:      s.testData.tenant.ID,
		Amount:        decimal.NewFromInt(1000),
		Concept:       "Pago",
		PaymentMethod: "efectivo",
		PaymentDate:   s.GetNow(),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
