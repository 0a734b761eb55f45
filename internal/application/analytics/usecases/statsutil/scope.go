package statsutil

import (
	"context"

	"opsight/internal/domain/directory"
	"opsight/internal/shared/constants"
)

// ScopeFilter holds the request filters that narrow the eligible population.
// Nil fields apply no predicate; a RoleScope of "ALL" is a sentinel for
// unset.
type ScopeFilter struct {
	IdentityType *string
	GroupID      *uint
	UserID       *uint
	RoleScope    *string
}

// isUnset reports whether no effective predicate is present.
func (f ScopeFilter) isUnset() bool {
	roleUnset := f.RoleScope == nil || *f.RoleScope == constants.RoleScopeAll
	return f.IdentityType == nil && f.GroupID == nil && f.UserID == nil && roleUnset
}

// Scope is the resolved set of eligible primary user IDs. An unscoped Scope
// means the aggregation applies no owner filter at all; a scoped but empty
// Scope means the population is empty and downstream steps short-circuit.
type Scope struct {
	unscoped bool
	ids      []uint
	idSet    map[uint]struct{}
}

// UnscopedScope returns the scope that admits everyone.
func UnscopedScope() *Scope {
	return &Scope{unscoped: true}
}

// NewScope builds a scope from an explicit ID list, preserving order and
// dropping duplicates.
func NewScope(ids []uint) *Scope {
	s := &Scope{idSet: make(map[uint]struct{}, len(ids))}
	for _, id := range ids {
		if _, seen := s.idSet[id]; seen {
			continue
		}
		s.idSet[id] = struct{}{}
		s.ids = append(s.ids, id)
	}
	return s
}

// Unscoped reports whether the scope admits everyone.
func (s *Scope) Unscoped() bool { return s.unscoped }

// IsEmpty reports whether the scoped population is empty. An unscoped scope
// is never empty.
func (s *Scope) IsEmpty() bool { return !s.unscoped && len(s.ids) == 0 }

// IDs returns the eligible primary IDs in resolution order. Nil when
// unscoped.
func (s *Scope) IDs() []uint { return s.ids }

// Contains reports whether the ID belongs to the scope. An unscoped scope
// contains every ID.
func (s *Scope) Contains(id uint) bool {
	if s.unscoped {
		return true
	}
	_, ok := s.idSet[id]
	return ok
}

// ResolveScope turns request filters into a concrete population by querying
// the directory. With no effective filter the result is unscoped and the
// directory is not queried at all.
func ResolveScope(ctx context.Context, dir directory.Repository, filter ScopeFilter) (*Scope, error) {
	if filter.isUnset() {
		return UnscopedScope(), nil
	}

	dirFilter := directory.Filter{
		IdentityType: filter.IdentityType,
		GroupID:      filter.GroupID,
		UserID:       filter.UserID,
	}
	if filter.RoleScope != nil && *filter.RoleScope != constants.RoleScopeAll {
		dirFilter.RoleScope = filter.RoleScope
	}

	entries, err := dir.ListByFilter(ctx, dirFilter)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ID())
	}
	return NewScope(ids), nil
}

// ExpandOwnerFilter returns the owner IDs to query records with: the scope's
// primary IDs plus every alias that maps to a member. Nil when unscoped so
// the record query applies no owner filter.
func ExpandOwnerFilter(scope *Scope, aliasIndex map[uint]uint) []uint {
	if scope.Unscoped() {
		return nil
	}

	expanded := make([]uint, 0, len(scope.ids))
	expanded = append(expanded, scope.ids...)
	for alias, primary := range aliasIndex {
		if scope.Contains(primary) {
			expanded = append(expanded, alias)
		}
	}
	return expanded
}
