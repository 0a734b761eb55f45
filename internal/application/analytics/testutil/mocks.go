// Package testutil provides hand-rolled repository fakes for analytics
// use case tests.
package testutil

import (
	"context"
	"sort"
	"time"

	"opsight/internal/domain/activity"
	"opsight/internal/domain/directory"
	"opsight/internal/domain/goal"
)

// MockActivityRepository serves records from memory with the same ordering
// contract as the real store: record_date ascending, insertion order within
// a date.
type MockActivityRepository struct {
	Records []*activity.Record
	Err     error

	LastOwnerIDs []uint
	ListCalls    int
}

func (m *MockActivityRepository) BatchUpsert(ctx context.Context, records []*activity.Record) error {
	if m.Err != nil {
		return m.Err
	}
	m.Records = append(m.Records, records...)
	return nil
}

func (m *MockActivityRepository) ListByDateRange(ctx context.Context, from, to time.Time, ownerIDs []uint) ([]*activity.Record, error) {
	m.ListCalls++
	m.LastOwnerIDs = ownerIDs
	if m.Err != nil {
		return nil, m.Err
	}

	allowed := make(map[uint]struct{}, len(ownerIDs))
	for _, id := range ownerIDs {
		allowed[id] = struct{}{}
	}

	var matched []*activity.Record
	for _, rec := range m.Records {
		if rec.RecordDate().Before(from) || rec.RecordDate().After(to) {
			continue
		}
		if len(ownerIDs) > 0 {
			if _, ok := allowed[rec.OwnerID()]; !ok {
				continue
			}
		}
		matched = append(matched, rec)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].RecordDate().Before(matched[j].RecordDate())
	})
	return matched, nil
}

// MockDirectoryRepository answers directory queries from a fixed entry set.
type MockDirectoryRepository struct {
	Entries []*directory.Entry
	Groups  []directory.Group
	Err     error
}

func (m *MockDirectoryRepository) ListByFilter(ctx context.Context, filter directory.Filter) ([]*directory.Entry, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	var matched []*directory.Entry
	for _, e := range m.Entries {
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

func (m *MockDirectoryRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*directory.Entry, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	result := make(map[uint]*directory.Entry)
	for _, id := range ids {
		for _, e := range m.Entries {
			if e.ID() == id || (e.AliasID() != nil && *e.AliasID() == id) {
				result[id] = e
				break
			}
		}
	}
	return result, nil
}

func (m *MockDirectoryRepository) AliasIndex(ctx context.Context) (map[uint]uint, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	index := make(map[uint]uint)
	for _, e := range m.Entries {
		if e.AliasID() != nil {
			index[*e.AliasID()] = e.ID()
		}
	}
	return index, nil
}

func (m *MockDirectoryRepository) ListGroups(ctx context.Context) ([]directory.Group, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Groups, nil
}

// MockGoalRepository stores goals in memory.
type MockGoalRepository struct {
	Goals []*goal.MonthlyGoal
	Err   error
}

func (m *MockGoalRepository) Upsert(ctx context.Context, g *goal.MonthlyGoal) error {
	if m.Err != nil {
		return m.Err
	}
	m.Goals = append(m.Goals, g)
	return nil
}

func (m *MockGoalRepository) BatchUpsert(ctx context.Context, goals []*goal.MonthlyGoal) error {
	if m.Err != nil {
		return m.Err
	}
	m.Goals = append(m.Goals, goals...)
	return nil
}

func (m *MockGoalRepository) ListByMonth(ctx context.Context, year, month int, filter goal.Filter) ([]*goal.MonthlyGoal, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	var matched []*goal.MonthlyGoal
	for _, g := range m.Goals {
		if g.Year() != year || g.Month() != month {
			continue
		}
		if filter.IdentityType != nil && g.IdentityType() != *filter.IdentityType {
			continue
		}
		if filter.Scope != nil && g.Scope() != *filter.Scope {
			continue
		}
		if filter.GroupID != nil && (g.GroupID() == nil || *g.GroupID() != *filter.GroupID) {
			continue
		}
		if filter.UserID != nil && (g.UserID() == nil || *g.UserID() != *filter.UserID) {
			continue
		}
		matched = append(matched, g)
	}
	return matched, nil
}
