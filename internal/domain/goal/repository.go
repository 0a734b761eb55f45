package goal

import "context"

// Filter narrows a monthly goal query. Nil fields apply no predicate.
type Filter struct {
	IdentityType *string
	Scope        *string
	GroupID      *uint
	UserID       *uint
}

// Repository persists monthly goals.
type Repository interface {
	// Upsert creates the goal or, when one already exists for the same
	// (identity_type, scope, year, month, group_id, user_id) key,
	// replaces its targets and notes.
	Upsert(ctx context.Context, g *MonthlyGoal) error

	// BatchUpsert applies Upsert semantics to each goal in order.
	BatchUpsert(ctx context.Context, goals []*MonthlyGoal) error

	// ListByMonth returns goals for the given calendar month matching
	// the filter, ordered by ID.
	ListByMonth(ctx context.Context, year, month int, filter Filter) ([]*MonthlyGoal, error)
}
