package metric

import "context"

// Repository persists the admin metric catalog.
type Repository interface {
	// Create stores a new catalog entry and assigns its ID. A
	// duplicate key yields a conflict error.
	Create(ctx context.Context, m *AdminMetric) error

	// List returns catalog entries ordered by ID. When activeOnly is
	// true, deactivated entries are skipped.
	List(ctx context.Context, activeOnly bool) ([]*AdminMetric, error)

	// GetByKey returns the entry for a key, or a not found error.
	GetByKey(ctx context.Context, key string) (*AdminMetric, error)
}
