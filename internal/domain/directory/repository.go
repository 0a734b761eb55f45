package directory

import "context"

// Filter narrows a directory query. Nil fields apply no predicate; all
// given predicates must match.
type Filter struct {
	IdentityType *string
	GroupID      *uint
	RoleScope    *string
	UserID       *uint
}

// IsEmpty reports whether no predicate is set.
func (f Filter) IsEmpty() bool {
	return f.IdentityType == nil && f.GroupID == nil && f.RoleScope == nil && f.UserID == nil
}

// Repository is the user directory contract consumed by the analytics core.
type Repository interface {
	// ListByFilter returns entries matching all given predicates,
	// ordered by ID.
	ListByFilter(ctx context.Context, filter Filter) ([]*Entry, error)

	// GetByIDs resolves entries by primary ID first, then by alias ID.
	// The returned map is keyed by the requested ID; missing IDs are
	// simply absent, never an error.
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*Entry, error)

	// AliasIndex returns a mapping from alias ID to primary ID for every
	// entry that carries an alias.
	AliasIndex(ctx context.Context) (map[uint]uint, error)

	// ListGroups returns the distinct groups with member counts.
	ListGroups(ctx context.Context) ([]Group, error)
}
