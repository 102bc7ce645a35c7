package service

import (
	"testing"

	"github.com/inmovia/inmovia/internal/api/dto"
	"github.com/inmovia/inmovia/internal/domain/owner"
	"github.com/inmovia/inmovia/internal/domain/tenant"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/testutil"
	"github.com/inmovia/inmovia/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PropertyServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  PropertyService
	testData struct {
		owner  *owner.Owner
		tenant *tenant.Tenant
	}
}

func TestPropertyService(t *testing.T) {
	suite.Run(t, new(PropertyServiceSuite))
}

func (s *PropertyServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.service = NewPropertyService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		PropertyRepo: stores.PropertyRepo,
		OwnerRepo:    stores.OwnerRepo,
		TenantRepo:   stores.TenantRepo,
		RatesRepo:    stores.RatesRepo,
		BillRepo:     stores.BillRepo,
	})

	ctx := s.GetContext()
	s.testData.owner = &owner.Owner{
		ID:        "owner_1",
		DNI:       "20123456",
		Name:      "Marta Suarez",
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
	s.NoError(stores.OwnerRepo.Create(ctx, s.testData.owner))

	s.testData.tenant = &tenant.Tenant{
		ID:        "tnt_1",
		DNI:       "30987654",
		Name:      "Julian Paredes",
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
	s.NoError(stores.TenantRepo.Create(ctx, s.testData.tenant))
}

func (s *PropertyServiceSuite) TestCreateProperty() {
	resp, err := s.service.CreateProperty(s.GetContext(), dto.CreatePropertyRequest{
		Title:   "Av. Rivadavia 1234 3B",
		Address: "Av. Rivadavia 1234",
		OwnerID: s.testData.owner.ID,
		Price:   decimal.NewFromInt(450000),
	})
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.Equal("Av. Rivadavia 1234 3B", resp.Title)

	list, err := s.service.ListProperties(s.GetContext())
	s.NoError(err)
	s.Equal(1, list.Total)
}

func (s *PropertyServiceSuite) TestCreatePropertyUnknownOwner() {
	_, err := s.service.CreateProperty(s.GetContext(), dto.CreatePropertyRequest{
		Title:   "Av. Rivadavia 1234 3B",
		OwnerID: "owner_missing",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PropertyServiceSuite) TestCreatePropertyValidation() {
	_, err := s.service.CreateProperty(s.GetContext(), dto.CreatePropertyRequest{
		OwnerID: s.testData.owner.ID,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PropertyServiceSuite) TestUpdatePropertyAssignsTenant() {
	created, err := s.service.CreateProperty(s.GetContext(), dto.CreatePropertyRequest{
		Title:   "Av. Rivadavia 1234 3B",
		OwnerID: s.testData.owner.ID,
	})
	s.NoError(err)

	updated, err := s.service.UpdateProperty(s.GetContext(), created.ID, dto.UpdatePropertyRequest{
		TenantID: lo.ToPtr(s.testData.tenant.ID),
		Price:    lo.ToPtr(decimal.NewFromInt(500000)),
	})
	s.NoError(err)
	s.Require().NotNil(updated.TenantID)
	s.Equal(s.testData.tenant.ID, *updated.TenantID)
	s.True(updated.Price.Equal(decimal.NewFromInt(500000)))

	_, err = s.service.UpdateProperty(s.GetContext(), created.ID, dto.UpdatePropertyRequest{
		TenantID: lo.ToPtr("tnt_missing"),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PropertyServiceSuite) TestGetPropertyNotFound() {
	_, err := s.service.GetProperty(s.GetContext(), "prop_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
