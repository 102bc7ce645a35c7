package testutil

import (
	"context"
	"sync"

	"github.com/inmovia/inmovia/internal/domain/rates"
	ierr "github.com/inmovia/inmovia/internal/errors"
)

type InMemoryRatesStore struct {
	mu    sync.RWMutex
	rates *rates.RateTable
}

func NewInMemoryRatesStore() *InMemoryRatesStore {
	return &InMemoryRatesStore{}
}

func (s *InMemoryRatesStore) Get(ctx context.Context) (*rates.RateTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.rates == nil {
		return nil, ierr.NewError("rate table not found").
			WithHint("No rate table has been saved yet").
			Mark(ierr.ErrNotFound)
	}
	return s.rates, nil
}

func (s *InMemoryRatesStore) Save(ctx context.Context, rt *rates.RateTable) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rates = rt
	return nil
}
