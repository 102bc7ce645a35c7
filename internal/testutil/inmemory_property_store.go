package testutil

import (
	"context"
	"sync"

	"github.com/inmovia/inmovia/internal/domain/property"
	ierr "github.com/inmovia/inmovia/internal/errors"
)

// InMemoryPropertyStore keeps insertion order so list results are
// deterministic in tests.
type InMemoryPropertyStore struct {
	mu         sync.RWMutex
	properties []*property.Property
	byID       map[string]*property.Property
}

func NewInMemoryPropertyStore() *InMemoryPropertyStore {
	return &InMemoryPropertyStore{
		byID: make(map[string]*property.Property),
	}
}

func (s *InMemoryPropertyStore) Create(ctx context.Context, p *property.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		return ierr.NewError("property id is required").
			WithHint("Property id is required").
			Mark(ierr.ErrValidation)
	}
	if _, exists := s.byID[p.ID]; exists {
		return ierr.NewError("property already exists").
			WithHintf("Property with ID %s already exists", p.ID).
			Mark(ierr.ErrAlreadyExists)
	}

	s.properties = append(s.properties, p)
	s.byID[p.ID] = p
	return nil
}

func (s *InMemoryPropertyStore) Get(ctx context.Context, id string) (*property.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.byID[id]
	if !exists {
		return nil, ierr.NewError("property not found").
			WithHintf("Property with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return p, nil
}

func (s *InMemoryPropertyStore) List(ctx context.Context) ([]*property.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*property.Property, len(s.properties))
	copy(result, s.properties)
	return result, nil
}

func (s *InMemoryPropertyStore) ListByOwner(ctx context.Context, ownerID string) ([]*property.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*property.Property
	for _, p := range s.properties {
		if p.OwnerID == ownerID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (s *InMemoryPropertyStore) ListByTenant(ctx context.Context, tenantID string) ([]*property.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*property.Property
	for _, p := range s.properties {
		if p.TenantID != nil && *p.TenantID == tenantID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (s *InMemoryPropertyStore) Update(ctx context.Context, p *property.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[p.ID]; !exists {
		return ierr.NewError("property not found").
			WithHintf("Property with ID %s was not found", p.ID).
			Mark(ierr.ErrNotFound)
	}

	s.byID[p.ID] = p
	for i, existing := range s.properties {
		if existing.ID == p.ID {
			s.properties[i] = p
			break
		}
	}
	return nil
}
