package billing

import (
	"context"
)

// Repository defines the interface for line item persistence. There is no
// delete: line items are append-only plus the single payment mutation.
type Repository interface {
	// CreateIfAbsent inserts the line item unless one with the same id
	// already exists. It returns true when a row was inserted and false
	// when the id was already present. It never overwrites: a regenerated
	// item cannot resurrect a receipt that has since been attached.
	CreateIfAbsent(ctx context.Context, item *LineItem) (bool, error)
	Get(ctx context.Context, id string) (*LineItem, error)
	List(ctx context.Context) ([]*LineItem, error)
	ListByProperty(ctx context.Context, propertyID string) ([]*LineItem, error)
	ListByProperties(ctx context.Context, propertyIDs []string) ([]*LineItem, error)
	Update(ctx context.Context, item *LineItem) error
}
