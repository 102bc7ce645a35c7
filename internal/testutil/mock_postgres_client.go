package testutil

import (
	"context"
	"sync"

	"github.com/inmovia/inmovia/internal/postgres"
)

var _ postgres.IClient = (*MockPostgresClient)(nil) // Ensure MockPostgresClient implements IClient

// MockPostgresClient is a mock implementation of postgres client for testing
type MockPostgresClient struct {
	mu          sync.Mutex
	withTxCalls int
}

// NewMockPostgresClient creates a new mock postgres client
func NewMockPostgresClient() *MockPostgresClient {
	return &MockPostgresClient{}
}

// WithTx executes the given function within a transaction
func (c *MockPostgresClient) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	c.mu.Lock()
	c.withTxCalls++
	c.mu.Unlock()

	// For testing, we just execute the function without a real transaction
	return fn(ctx)
}

// GetQuerier returns nil; in-memory stores never touch SQL
func (c *MockPostgresClient) GetQuerier(ctx context.Context) postgres.Querier {
	return nil
}

// WithTxCalls returns how many transactions were opened
func (c *MockPostgresClient) WithTxCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.withTxCalls
}
