package service

import (
	"context"

	"github.com/inmovia/inmovia/internal/api/dto"
	"github.com/inmovia/inmovia/internal/domain/property"
	"github.com/samber/lo"
)

// PropertyService manages the property directory
type PropertyService interface {
	CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) (*dto.PropertyResponse, error)
	GetProperty(ctx context.Context, id string) (*dto.PropertyResponse, error)
	ListProperties(ctx context.Context) (*dto.ListPropertiesResponse, error)
	UpdateProperty(ctx context.Context, id string, req dto.UpdatePropertyRequest) (*dto.PropertyResponse, error)
}

type propertyService struct {
	ServiceParams
}

// NewPropertyService creates a new property service
func NewPropertyService(params ServiceParams) PropertyService {
	return &propertyService{ServiceParams: params}
}

func (s *propertyService) CreateProperty(ctx context.Context, req dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// the owner must exist before a property can point at it
	if _, err := s.OwnerRepo.Get(ctx, req.OwnerID); err != nil {
		return nil, err
	}
	if req.TenantID != nil {
		if _, err := s.TenantRepo.Get(ctx, *req.TenantID); err != nil {
			return nil, err
		}
	}

	prop := req.ToProperty(ctx)
	if err := prop.Validate(); err != nil {
		return nil, err
	}

	if err := s.PropertyRepo.Create(ctx, prop); err != nil {
		return nil, err
	}

	s.Logger.Infow("created property", "property_id", prop.ID, "owner_id", prop.OwnerID)
	return dto.NewPropertyResponse(prop), nil
}

func (s *propertyService) GetProperty(ctx context.Context, id string) (*dto.PropertyResponse, error) {
	prop, err := s.PropertyRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewPropertyResponse(prop), nil
}

func (s *propertyService) ListProperties(ctx context.Context) (*dto.ListPropertiesResponse, error) {
	properties, err := s.PropertyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := lo.Map(properties, func(p *property.Property, _ int) *dto.PropertyResponse {
		return dto.NewPropertyResponse(p)
	})
	return &dto.ListPropertiesResponse{Items: items, Total: len(items)}, nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, id string, req dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	prop, err := s.PropertyRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		prop.Title = *req.Title
	}
	if req.Address != nil {
		prop.Address = *req.Address
	}
	if req.Neighborhood != nil {
		prop.Neighborhood = *req.Neighborhood
	}
	if req.City != nil {
		prop.City = *req.City
	}
	if req.TenantID != nil {
		if _, err := s.TenantRepo.Get(ctx, *req.TenantID); err != nil {
			return nil, err
		}
		prop.TenantID = req.TenantID
	}
	if req.Price != nil {
		prop.Price = *req.Price
	}
	if req.ElectricityContract != nil {
		prop.ElectricityContract = req.ElectricityContract
	}
	if req.GasContract != nil {
		prop.GasContract = req.GasContract
	}
	if req.WaterContract != nil {
		prop.WaterContract = req.WaterContract
	}
	if req.TaxContract != nil {
		prop.TaxContract = req.TaxContract
	}

	if err := prop.Validate(); err != nil {
		return nil, err
	}
	if err := s.PropertyRepo.Update(ctx, prop); err != nil {
		return nil, err
	}
	return dto.NewPropertyResponse(prop), nil
}
