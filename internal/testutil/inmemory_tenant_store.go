package testutil

import (
	"context"
	"sync"

	"github.com/inmovia/inmovia/internal/domain/tenant"
	ierr "github.com/inmovia/inmovia/internal/errors"
)

type InMemoryTenantStore struct {
	mu      sync.RWMutex
	tenants []*tenant.Tenant
	byID    map[string]*tenant.Tenant
}

func NewInMemoryTenantStore() *InMemoryTenantStore {
	return &InMemoryTenantStore{
		byID: make(map[string]*tenant.Tenant),
	}
}

func (s *InMemoryTenantStore) Create(ctx context.Context, t *tenant.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		return ierr.NewError("tenant id is required").
			WithHint("Tenant id is required").
			Mark(ierr.ErrValidation)
	}
	if _, exists := s.byID[t.ID]; exists {
		return ierr.NewError("tenant already exists").
			WithHintf("Tenant with ID %s already exists", t.ID).
			Mark(ierr.ErrAlreadyExists)
	}

	s.tenants = append(s.tenants, t)
	s.byID[t.ID] = t
	return nil
}

func (s *InMemoryTenantStore) Get(ctx context.Context, id string) (*tenant.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, exists := s.byID[id]
	if !exists {
		return nil, ierr.NewError("tenant not found").
			WithHintf("Tenant with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return t, nil
}

func (s *InMemoryTenantStore) GetByDNI(ctx context.Context, dni string) (*tenant.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tenants {
		if t.DNI == dni {
			return t, nil
		}
	}
	return nil, ierr.NewError("tenant not found").
		WithHintf("Tenant with DNI %s was not found", dni).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryTenantStore) List(ctx context.Context) ([]*tenant.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*tenant.Tenant, len(s.tenants))
	copy(result, s.tenants)
	return result, nil
}

func (s *InMemoryTenantStore) Update(ctx context.Context, t *tenant.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[t.ID]; !exists {
		return ierr.NewError("tenant not found").
			WithHintf("Tenant with ID %s was not found", t.ID).
			Mark(ierr.ErrNotFound)
	}

	s.byID[t.ID] = t
	for i, existing := range s.tenants {
		if existing.ID == t.ID {
			s.tenants[i] = t
			break
		}
	}
	return nil
}
