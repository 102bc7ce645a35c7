package service

import (
	"context"

	"github.com/inmovia/inmovia/internal/api/dto"
	"github.com/inmovia/inmovia/internal/domain/owner"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/samber/lo"
)

// OwnerService manages the owner directory
type OwnerService interface {
	CreateOwner(ctx context.Context, req dto.CreateOwnerRequest) (*dto.OwnerResponse, error)
	GetOwner(ctx context.Context, id string) (*dto.OwnerResponse, error)
	ListOwners(ctx context.Context) (*dto.ListOwnersResponse, error)
	UpdateOwner(ctx context.Context, id string, req dto.UpdateOwnerRequest) (*dto.OwnerResponse, error)
}

type ownerService struct {
	ServiceParams
}

// NewOwnerService creates a new owner service
func NewOwnerService(params ServiceParams) OwnerService {
	return &ownerService{ServiceParams: params}
}

func (s *ownerService) CreateOwner(ctx context.Context, req dto.CreateOwnerRequest) (*dto.OwnerResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.OwnerRepo.GetByDNI(ctx, req.DNI); err == nil && existing != nil {
		return nil, ierr.NewError("owner already registered").
			WithHintf("An owner with DNI %s already exists", req.DNI).
			Mark(ierr.ErrAlreadyExists)
	}

	o := req.ToOwner(ctx)
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := s.OwnerRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	s.Logger.Infow("created owner", "owner_id", o.ID)
	return dto.NewOwnerResponse(o), nil
}

func (s *ownerService) GetOwner(ctx context.Context, id string) (*dto.OwnerResponse, error) {
	o, err := s.OwnerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewOwnerResponse(o), nil
}

func (s *ownerService) ListOwners(ctx context.Context) (*dto.ListOwnersResponse, error) {
	owners, err := s.OwnerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := lo.Map(owners, func(o *owner.Owner, _ int) *dto.OwnerResponse {
		return dto.NewOwnerResponse(o)
	})
	return &dto.ListOwnersResponse{Items: items, Total: len(items)}, nil
}

func (s *ownerService) UpdateOwner(ctx context.Context, id string, req dto.UpdateOwnerRequest) (*dto.OwnerResponse, error) {
	o, err := s.OwnerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		o.Name = *req.Name
	}
	if req.Email != nil {
		o.Email = *req.Email
	}
	if req.Phone != nil {
		o.Phone = *req.Phone
	}
	if req.PaymentAlias != nil {
		o.PaymentAlias = req.PaymentAlias
	}
	if req.Notes != nil {
		o.Notes = req.Notes
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := s.OwnerRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	return dto.NewOwnerResponse(o), nil
}
