package rates

import (
	"context"
)

// Repository defines the interface for rate table access. The rate table
// is a singleton: Get returns the latest saved value and Save overwrites
// it in place.
type Repository interface {
	Get(ctx context.Context) (*RateTable, error)
	Save(ctx context.Context, rates *RateTable) error
}
