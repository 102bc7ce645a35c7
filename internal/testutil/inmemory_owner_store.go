package testutil

import (
	"context"
	"sync"

	"github.com/inmovia/inmovia/internal/domain/owner"
	ierr "github.com/inmovia/inmovia/internal/errors"
)

type InMemoryOwnerStore struct {
	mu     sync.RWMutex
	owners []*owner.Owner
	byID   map[string]*owner.Owner
}

func NewInMemoryOwnerStore() *InMemoryOwnerStore {
	return &InMemoryOwnerStore{
		byID: make(map[string]*owner.Owner),
	}
}

func (s *InMemoryOwnerStore) Create(ctx context.Context, o *owner.Owner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o.ID == "" {
		return ierr.NewError("owner id is required").
			WithHint("Owner id is required").
			Mark(ierr.ErrValidation)
	}
	if _, exists := s.byID[o.ID]; exists {
		return ierr.NewError("owner already exists").
			WithHintf("Owner with ID %s already exists", o.ID).
			Mark(ierr.ErrAlreadyExists)
	}

	s.owners = append(s.owners, o)
	s.byID[o.ID] = o
	return nil
}

func (s *InMemoryOwnerStore) Get(ctx context.Context, id string) (*owner.Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, exists := s.byID[id]
	if !exists {
		return nil, ierr.NewError("owner not found").
			WithHintf("Owner with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return o, nil
}

func (s *InMemoryOwnerStore) GetByDNI(ctx context.Context, dni string) (*owner.Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.owners {
		if o.DNI == dni {
			return o, nil
		}
	}
	return nil, ierr.NewError("owner not found").
		WithHintf("Owner with DNI %s was not found", dni).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryOwnerStore) List(ctx context.Context) ([]*owner.Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*owner.Owner, len(s.owners))
	copy(result, s.owners)
	return result, nil
}

func (s *InMemoryOwnerStore) Update(ctx context.Context, o *owner.Owner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[o.ID]; !exists {
		return ierr.NewError("owner not found").
			WithHintf("Owner with ID %s was not found", o.ID).
			Mark(ierr.ErrNotFound)
	}

	s.byID[o.ID] = o
	for i, existing := range s.owners {
		if existing.ID == o.ID {
			s.owners[i] = o
			break
		}
	}
	return nil
}
