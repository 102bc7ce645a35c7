package service

import (
	"testing"

	"github.com/inmovia/inmovia/internal/api/dto"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RatesServiceSuite struct {
	testutil.BaseServiceTestSuite
	service RatesService
}

func TestRatesService(t *testing.T) {
	suite.Run(t, new(RatesServiceSuite))
}

func (s *RatesServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.service = NewRatesService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		PropertyRepo: stores.PropertyRepo,
		OwnerRepo:    stores.OwnerRepo,
		TenantRepo:   stores.TenantRepo,
		RatesRepo:    stores.RatesRepo,
		BillRepo:     stores.BillRepo,
	})
}

func (s *RatesServiceSuite) TestSaveAndGetRates() {
	_, err := s.service.GetRates(s.GetContext())
	s.Error(err)
	s.True(ierr.IsNotFound(err), "no rates before the first save")

	saved, err := s.service.SaveRates(s.GetContext(), dto.SaveRatesRequest{
		ElectricityPricePerUnit: decimal.NewFromInt(150),
		GasPricePerUnit:         decimal.NewFromInt(80),
		WaterPricePerUnit:       decimal.NewFromInt(120),
		MunicipalityFixedAmount: decimal.NewFromInt(15000),
	})
	s.NoError(err)
	s.True(saved.ElectricityPricePerUnit.Equal(decimal.NewFromInt(150)))

	got, err := s.service.GetRates(s.GetContext())
	s.NoError(err)
	s.True(got.MunicipalityFixedAmount.Equal(decimal.NewFromInt(15000)))
}

func (s *RatesServiceSuite) TestSaveRatesOverwrites() {
	_, err := s.service.SaveRates(s.GetContext(), dto.SaveRatesRequest{
		ElectricityPricePerUnit: decimal.NewFromInt(150),
	})
	s.NoError(err)

	_, err = s.service.SaveRates(s.GetContext(), dto.SaveRatesRequest{
		ElectricityPricePerUnit: decimal.NewFromInt(175),
	})
	s.NoError(err)

	got, err := s.service.GetRates(s.GetContext())
	s.NoError(err)
	s.True(got.ElectricityPricePerUnit.Equal(decimal.NewFromInt(175)))
	s.True(got.GasPricePerUnit.IsZero())
}

func (s *RatesServiceSuite) TestSaveRatesRejectsNegatives() {
	_, err := s.service.SaveRates(s.GetContext(), dto.SaveRatesRequest{
		WaterPricePerUnit: decimal.NewFromInt(-5),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}
