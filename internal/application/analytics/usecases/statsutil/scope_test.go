package statsutil

import (
	"context"
	"errors"
	"testing"
	"time"

	"opsight/internal/domain/directory"
)

type fakeDirectory struct {
	entries []*directory.Entry
	err     error

	lastFilter *directory.Filter
}

func (f *fakeDirectory) ListByFilter(ctx context.Context, filter directory.Filter) ([]*directory.Entry, error) {
	f.lastFilter = &filter
	if f.err != nil {
		return nil, f.err
	}

	var matched []*directory.Entry
	for _, e := range f.entries {
		if filter.IdentityType != nil && e.IdentityType() != *filter.IdentityType {
			continue
		}
		if filter.GroupID != nil && (e.GroupID() == nil || *e.GroupID() != *filter.GroupID) {
			continue
		}
		if filter.RoleScope != nil && e.RoleScope() != *filter.RoleScope {
			continue
		}
		if filter.UserID != nil && e.ID() != *filter.UserID &&
			(e.AliasID() == nil || *e.AliasID() != *filter.UserID) {
			continue
		}
		matched = append(matched, e)
	}
	return matched, nil
}

func (f *fakeDirectory) GetByIDs(ctx context.Context, ids []uint) (map[uint]*directory.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make(map[uint]*directory.Entry)
	for _, id := range ids {
		for _, e := range f.entries {
			if e.ID() == id || (e.AliasID() != nil && *e.AliasID() == id) {
				result[id] = e
				break
			}
		}
	}
	return result, nil
}

func (f *fakeDirectory) AliasIndex(ctx context.Context) (map[uint]uint, error) {
	if f.err != nil {
		return nil, f.err
	}
	index := make(map[uint]uint)
	for _, e := range f.entries {
		if e.AliasID() != nil {
			index[*e.AliasID()] = e.ID()
		}
	}
	return index, nil
}

func (f *fakeDirectory) ListGroups(ctx context.Context) ([]directory.Group, error) {
	return nil, f.err
}

func mustEntry(t *testing.T, id uint, aliasID *uint, name, identityType string, groupID *uint, roleScope string) *directory.Entry {
	t.Helper()
	e, err := directory.ReconstructEntry(id, aliasID, name, "", identityType, groupID, roleScope, "active", time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("reconstruct entry: %v", err)
	}
	return e
}

func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }

func TestResolveScope(t *testing.T) {
	dir := &fakeDirectory{entries: []*directory.Entry{
		mustEntry(t, 1, nil, "Ann", "CC", uintPtr(10), ""),
		mustEntry(t, 2, nil, "Bo", "SS", uintPtr(10), ""),
		mustEntry(t, 3, uintPtr(103), "Cai", "CC", uintPtr(20), "lead"),
	}}

	tests := []struct {
		name         string
		filter       ScopeFilter
		wantUnscoped bool
		wantIDs      []uint
	}{
		{
			name:         "no filter resolves unscoped",
			filter:       ScopeFilter{},
			wantUnscoped: true,
		},
		{
			name:         "ALL role scope alone is unset",
			filter:       ScopeFilter{RoleScope: strPtr("ALL")},
			wantUnscoped: true,
		},
		{
			name:    "identity type filter",
			filter:  ScopeFilter{IdentityType: strPtr("CC")},
			wantIDs: []uint{1, 3},
		},
		{
			name:    "identity and group combine",
			filter:  ScopeFilter{IdentityType: strPtr("CC"), GroupID: uintPtr(10)},
			wantIDs: []uint{1},
		},
		{
			name:    "role scope filter",
			filter:  ScopeFilter{RoleScope: strPtr("lead")},
			wantIDs: []uint{3},
		},
		{
			name:    "user filter matches alias",
			filter:  ScopeFilter{UserID: uintPtr(103)},
			wantIDs: []uint{3},
		},
		{
			name:    "no match yields empty scope",
			filter:  ScopeFilter{IdentityType: strPtr("LP")},
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, err := ResolveScope(context.Background(), dir, tt.filter)
			if err != nil {
				t.Fatalf("ResolveScope() error = %v", err)
			}
			if scope.Unscoped() != tt.wantUnscoped {
				t.Errorf("Unscoped() = %v, want %v", scope.Unscoped(), tt.wantUnscoped)
			}
			if tt.wantUnscoped {
				return
			}
			gotIDs := scope.IDs()
			if len(gotIDs) != len(tt.wantIDs) {
				t.Fatalf("IDs() = %v, want %v", gotIDs, tt.wantIDs)
			}
			for i, id := range tt.wantIDs {
				if gotIDs[i] != id {
					t.Errorf("IDs()[%d] = %d, want %d", i, gotIDs[i], id)
				}
			}
			if len(tt.wantIDs) == 0 && !scope.IsEmpty() {
				t.Error("IsEmpty() = false, want true")
			}
		})
	}
}

func TestResolveScope_DirectoryError(t *testing.T) {
	dir := &fakeDirectory{err: errors.New("directory unavailable")}

	_, err := ResolveScope(context.Background(), dir, ScopeFilter{IdentityType: strPtr("CC")})
	if err == nil {
		t.Fatal("expected directory error to propagate")
	}
}

func TestScope_Contains(t *testing.T) {
	scoped := NewScope([]uint{1, 2, 2, 3})
	if got := scoped.IDs(); len(got) != 3 {
		t.Fatalf("NewScope dedup: IDs() = %v, want 3 entries", got)
	}
	if !scoped.Contains(2) {
		t.Error("Contains(2) = false, want true")
	}
	if scoped.Contains(99) {
		t.Error("Contains(99) = true, want false")
	}

	unscoped := UnscopedScope()
	if !unscoped.Contains(99) {
		t.Error("unscoped Contains(99) = false, want true")
	}
	if unscoped.IsEmpty() {
		t.Error("unscoped IsEmpty() = true, want false")
	}
}

func TestExpandOwnerFilter(t *testing.T) {
	aliasIndex := map[uint]uint{103: 3, 104: 4}

	t.Run("unscoped returns nil", func(t *testing.T) {
		if got := ExpandOwnerFilter(UnscopedScope(), aliasIndex); got != nil {
			t.Errorf("ExpandOwnerFilter() = %v, want nil", got)
		}
	})

	t.Run("aliases of members are included", func(t *testing.T) {
		got := ExpandOwnerFilter(NewScope([]uint{1, 3}), aliasIndex)
		want := map[uint]bool{1: true, 3: true, 103: true}
		if len(got) != len(want) {
			t.Fatalf("ExpandOwnerFilter() = %v, want IDs %v", got, want)
		}
		for _, id := range got {
			if !want[id] {
				t.Errorf("unexpected ID %d in %v", id, got)
			}
		}
	})
}
