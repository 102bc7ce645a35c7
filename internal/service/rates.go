package service

import (
	"context"

	"github.com/inmovia/inmovia/internal/api/dto"
)

// RatesService exposes the singleton utility rate table. Saved rates
// apply only to derivations performed after the save.
type RatesService interface {
	GetRates(ctx context.Context) (*dto.RatesResponse, error)
	SaveRates(ctx context.Context, req dto.SaveRatesRequest) (*dto.RatesResponse, error)
}

type ratesService struct {
	ServiceParams
}

// NewRatesService creates a new rates service
func NewRatesService(params ServiceParams) RatesService {
	return &ratesService{ServiceParams: params}
}

func (s *ratesService) GetRates(ctx context.Context) (*dto.RatesResponse, error) {
	rateTable, err := s.RatesRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewRatesResponse(rateTable), nil
}

func (s *ratesService) SaveRates(ctx context.Context, req dto.SaveRatesRequest) (*dto.RatesResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rateTable := req.ToRateTable(ctx)
	if err := rateTable.Validate(); err != nil {
		return nil, err
	}

	if err := s.RatesRepo.Save(ctx, rateTable); err != nil {
		return nil, err
	}

	s.Logger.Infow("saved rate table",
		"electricity", rateTable.ElectricityPricePerUnit,
		"gas", rateTable.GasPricePerUnit,
		"water", rateTable.WaterPricePerUnit,
		"municipality", rateTable.MunicipalityFixedAmount,
	)
	return dto.NewRatesResponse(rateTable), nil
}
