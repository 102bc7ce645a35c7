package testutil

import (
	"context"
	"sync"

	"github.com/inmovia/inmovia/internal/domain/billing"
	ierr "github.com/inmovia/inmovia/internal/errors"
)

// InMemoryBillingStore keeps insertion order so ledger breakdowns are
// deterministic in tests.
type InMemoryBillingStore struct {
	mu    sync.RWMutex
	items []*billing.LineItem
	byID  map[string]*billing.LineItem
}

func NewInMemoryBillingStore() *InMemoryBillingStore {
	return &InMemoryBillingStore{
		byID: make(map[string]*billing.LineItem),
	}
}

func (s *InMemoryBillingStore) CreateIfAbsent(ctx context.Context, item *billing.LineItem) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == "" {
		return false, ierr.NewError("line item id is required").
			WithHint("Line item id is required").
			Mark(ierr.ErrValidation)
	}
	if _, exists := s.byID[item.ID]; exists {
		return false, nil
	}

	s.items = append(s.items, item)
	s.byID[item.ID] = item
	return true, nil
}

func (s *InMemoryBillingStore) Get(ctx context.Context, id string) (*billing.LineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.byID[id]
	if !exists {
		return nil, ierr.NewError("line item not found").
			WithHintf("Line item with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return item, nil
}

func (s *InMemoryBillingStore) List(ctx context.Context) ([]*billing.LineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*billing.LineItem, len(s.items))
	copy(result, s.items)
	return result, nil
}

func (s *InMemoryBillingStore) ListByProperty(ctx context.Context, propertyID string) ([]*billing.LineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*billing.LineItem
	for _, item := range s.items {
		if item.PropertyID == propertyID {
			result = append(result, item)
		}
	}
	return result, nil
}

func (s *InMemoryBillingStore) ListByProperties(ctx context.Context, propertyIDs []string) ([]*billing.LineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idSet := make(map[string]struct{}, len(propertyIDs))
	for _, id := range propertyIDs {
		idSet[id] = struct{}{}
	}

	var result []*billing.LineItem
	for _, item := range s.items {
		if _, ok := idSet[item.PropertyID]; ok {
			result = append(result, item)
		}
	}
	return result, nil
}

func (s *InMemoryBillingStore) Update(ctx context.Context, item *billing.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[item.ID]; !exists {
		return ierr.NewError("line item not found").
			WithHintf("Line item with ID %s was not found", item.ID).
			Mark(ierr.ErrNotFound)
	}

	s.byID[item.ID] = item
	for i, existing := range s.items {
		if existing.ID == item.ID {
			s.items[i] = item
			break
		}
	}
	return nil
}
