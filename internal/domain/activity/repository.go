package activity

import (
	"context"
	"time"
)

// Repository is the record store contract consumed by the analytics core.
type Repository interface {
	// BatchUpsert inserts daily records; on conflict (owner_id, record_date)
	// the numeric fields are added onto the existing row.
	BatchUpsert(ctx context.Context, records []*Record) error

	// ListByDateRange returns records whose date falls in [from, to]
	// inclusive, restricted to ownerIDs when non-empty. Rows are ordered
	// by (record_date, id) so downstream folds are deterministic.
	ListByDateRange(ctx context.Context, from, to time.Time, ownerIDs []uint) ([]*Record, error)
}
