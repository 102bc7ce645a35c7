package service

import (
	"context"

	"github.com/inmovia/inmovia/internal/api/dto"
	"github.com/inmovia/inmovia/internal/domain/tenant"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/samber/lo"
)

// TenantService manages the tenant directory
type TenantService interface {
	CreateTenant(ctx context.Context, req dto.CreateTenantRequest) (*dto.TenantResponse, error)
	GetTenant(ctx context.Context, id string) (*dto.TenantResponse, error)
	ListTenants(ctx context.Context) (*dto.ListTenantsResponse, error)
	UpdateTenant(ctx context.Context, id string, req dto.UpdateTenantRequest) (*dto.TenantResponse, error)
}

type tenantService struct {
	ServiceParams
}

// NewTenantService creates a new tenant service
func NewTenantService(params ServiceParams) TenantService {
	return &tenantService{ServiceParams: params}
}

func (s *tenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.TenantRepo.GetByDNI(ctx, req.DNI); err == nil && existing != nil {
		return nil, ierr.NewError("tenant already registered").
			WithHintf("A tenant with DNI %s already exists", req.DNI).
			Mark(ierr.ErrAlreadyExists)
	}

	t := req.ToTenant(ctx)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.TenantRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.Logger.Infow("created tenant", "tenant_id", t.ID)
	return dto.NewTenantResponse(t), nil
}

func (s *tenantService) GetTenant(ctx context.Context, id string) (*dto.TenantResponse, error) {
	t, err := s.TenantRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewTenantResponse(t), nil
}

func (s *tenantService) ListTenants(ctx context.Context) (*dto.ListTenantsResponse, error) {
	tenants, err := s.TenantRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := lo.Map(tenants, func(t *tenant.Tenant, _ int) *dto.TenantResponse {
		return dto.NewTenantResponse(t)
	})
	return &dto.ListTenantsResponse{Items: items, Total: len(items)}, nil
}

func (s *tenantService) UpdateTenant(ctx context.Context, id string, req dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	t, err := s.TenantRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Email != nil {
		t.Email = *req.Email
	}
	if req.Phone != nil {
		t.Phone = *req.Phone
	}
	if req.ContractStart != nil {
		t.ContractStart = req.ContractStart
	}
	if req.ContractEnd != nil {
		t.ContractEnd = req.ContractEnd
	}
	if req.RentAmount != nil {
		t.RentAmount = *req.RentAmount
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.TenantRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return dto.NewTenantResponse(t), nil
}
