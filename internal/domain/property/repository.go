package property

import (
	"context"
)

// Repository defines the interface for property data access
type Repository interface {
	Create(ctx context.Context, property *Property) error
	Get(ctx context.Context, id string) (*Property, error)
	List(ctx context.Context) ([]*Property, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Property, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*Property, error)
	Update(ctx context.Context, property *Property) error
}
