package owner

import (
	"context"
)

// Repository defines the interface for owner data access
type Repository interface {
	Create(ctx context.Context, owner *Owner) error
	Get(ctx context.Context, id string) (*Owner, error)
	GetByDNI(ctx context.Context, dni string) (*Owner, error)
	List(ctx context.Context) ([]*Owner, error)
	Update(ctx context.Context, owner *Owner) error
}
