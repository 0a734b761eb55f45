package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"opsight/internal/domain/activity"
	"opsight/internal/domain/directory"
	"opsight/internal/domain/goal"
	"opsight/internal/domain/metric"
	"opsight/internal/infrastructure/persistence/models"
	"opsight/internal/shared/errors"
	"opsight/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.ActivityRecordModel{},
		&models.DirectoryUserModel{},
		&models.MonthlyGoalModel{},
		&models.AdminMetricModel{},
	)
	require.NoError(t, err)

	return db
}

func seedDirectoryUser(t *testing.T, db *gorm.DB, model *models.DirectoryUserModel) {
	require.NoError(t, db.Create(model).Error)
}

func uintPtr(v uint) *uint          { return &v }
func strPtr(v string) *string       { return &v }
func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestActivityRecordRepository_ListByDateRange(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRecordRepository(db, logger.NewLogger())
	ctx := context.Background()

	mk := func(owner uint, date time.Time, amount float64) *activity.Record {
		rec, err := activity.NewRecord(owner, date, activity.SumRecord{NewSignAmount: amount, NewSignCount: 1})
		require.NoError(t, err)
		return rec
	}

	records := []*activity.Record{
		mk(2, day(2026, 3, 2), 500),
		mk(1, day(2026, 3, 1), 300),
		mk(3, day(2026, 3, 1), 200),
		mk(1, day(2026, 4, 1), 999),
	}
	require.NoError(t, repo.BatchUpsert(ctx, records))

	t.Run("filters by range and orders by date then id", func(t *testing.T) {
		got, err := repo.ListByDateRange(ctx, day(2026, 3, 1), day(2026, 3, 31), nil)
		require.NoError(t, err)
		require.Len(t, got, 3)

		// March rows only, earliest date first
		assert.Equal(t, day(2026, 3, 1), got[0].RecordDate().UTC())
		assert.Equal(t, day(2026, 3, 1), got[1].RecordDate().UTC())
		assert.Equal(t, day(2026, 3, 2), got[2].RecordDate().UTC())
		assert.Less(t, got[0].ID(), got[1].ID())
	})

	t.Run("filters by owner IDs", func(t *testing.T) {
		got, err := repo.ListByDateRange(ctx, day(2026, 3, 1), day(2026, 3, 31), []uint{2})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, uint(2), got[0].OwnerID())
		assert.Equal(t, 500.0, got[0].Totals().NewSignAmount)
	})

	t.Run("empty range returns empty slice", func(t *testing.T) {
		got, err := repo.ListByDateRange(ctx, day(2025, 1, 1), day(2025, 1, 31), nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestActivityRecordRepository_BatchUpsertAccumulates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRecordRepository(db, logger.NewLogger())
	ctx := context.Background()

	first, err := activity.NewRecord(1, day(2026, 3, 1), activity.SumRecord{NewSignAmount: 300, NewSignCount: 1, CallCount: 5})
	require.NoError(t, err)
	require.NoError(t, repo.BatchUpsert(ctx, []*activity.Record{first}))

	second, err := activity.NewRecord(1, day(2026, 3, 1), activity.SumRecord{NewSignAmount: 100, NewSignCount: 2, CallCount: 3})
	require.NoError(t, err)
	require.NoError(t, repo.BatchUpsert(ctx, []*activity.Record{second}))

	got, err := repo.ListByDateRange(ctx, day(2026, 3, 1), day(2026, 3, 1), []uint{1})
	require.NoError(t, err)
	require.Len(t, got, 1)

	totals := got[0].Totals()
	assert.Equal(t, 400.0, totals.NewSignAmount)
	assert.Equal(t, int64(3), totals.NewSignCount)
	assert.Equal(t, int64(8), totals.CallCount)
}

func TestUserDirectoryRepository_ListByFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserDirectoryRepository(db, logger.NewLogger())
	ctx := context.Background()

	seedDirectoryUser(t, db, &models.DirectoryUserModel{ID: 1, DisplayName: "Ann", IdentityType: "CC", GroupID: uintPtr(10), GroupName: "North", Status: "active"})
	seedDirectoryUser(t, db, &models.DirectoryUserModel{ID: 2, DisplayName: "Bo", IdentityType: "SS", GroupID: uintPtr(10), GroupName: "North", Status: "active"})
	seedDirectoryUser(t, db, &models.DirectoryUserModel{ID: 3, AliasID: uintPtr(103), DisplayName: "Cai", IdentityType: "CC", GroupID: uintPtr(20), GroupName: "South", Status: "active"})

	t.Run("no filter returns everyone ordered by id", func(t *testing.T) {
		got, err := repo.ListByFilter(ctx, directory.Filter{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, uint(1), got[0].ID())
	})

	t.Run("identity and group filters combine", func(t *testing.T) {
		got, err := repo.ListByFilter(ctx, directory.Filter{IdentityType: strPtr("CC"), GroupID: uintPtr(10)})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Ann", got[0].DisplayName())
	})

	t.Run("user filter matches alias id", func(t *testing.T) {
		got, err := repo.ListByFilter(ctx, directory.Filter{UserID: uintPtr(103)})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, uint(3), got[0].ID())
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		got, err := repo.ListByFilter(ctx, directory.Filter{IdentityType: strPtr("LP")})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestUserDirectoryRepository_GetByIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserDirectoryRepository(db, logger.NewLogger())
	ctx := context.Background()

	seedDirectoryUser(t, db, &models.DirectoryUserModel{ID: 1, DisplayName: "Ann", IdentityType: "CC", Status: "active"})
	seedDirectoryUser(t, db, &models.DirectoryUserModel{ID: 3, AliasID: uintPtr(103), DisplayName: "Cai", IdentityType: "CC", Status: "active"})

	got, err := repo.GetByIDs(ctx, []uint{1, 103, 999})
	require.NoError(t, err)

	require.Contains(t, got, uint(1))
	assert.Equal(t, "Ann", got[1].DisplayName())

	// alias key resolves to the primary entry
	require.Contains(t, got, uint(103))
	assert.Equal(t, uint(3), got[103].ID())

	assert.NotContains(t, got, uint(999))
}

func TestUserDirectoryRepository_AliasIndex(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserDirectoryRepository(db, logger.NewLogger())
	ctx := context.Background()

	seedDirectoryUser(t, db, &models.DirectoryUserModel{ID: 1, DisplayName: "Ann", IdentityType: "CC", Status: "active"})
	seedDirectoryUser(t, db, &models.DirectoryUserModel{ID: 3, AliasID: uintPtr(103), DisplayName: "Cai", IdentityType: "CC", Status: "active"})

	index, err := repo.AliasIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[uint]uint{103: 3}, index)
}

func TestUserDirectoryRepository_ListGroups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserDirectoryRepository(db, logger.NewLogger())
	ctx := context.Background()

	seedDirectoryUser(t, db, &models.DirectoryUserModel{ID: 1, DisplayName: "Ann", IdentityType: "CC", GroupID: uintPtr(10), GroupName: "North", Status: "active"})
	seedDirectoryUser(t, db, &models.DirectoryUserModel{ID: 2, DisplayName: "Bo", IdentityType: "SS", GroupID: uintPtr(10), GroupName: "North", Status: "active"})
	seedDirectoryUser(t, db, &models.DirectoryUserModel{ID: 3, DisplayName: "Cai", IdentityType: "CC", GroupID: uintPtr(20), GroupName: "South", Status: "active"})
	seedDirectoryUser(t, db, &models.DirectoryUserModel{ID: 4, DisplayName: "Di", IdentityType: "LP", Status: "active"})

	groups, err := repo.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, directory.Group{ID: 10, Name: "North", MemberCount: 2}, groups[0])
	assert.Equal(t, directory.Group{ID: 20, Name: "South", MemberCount: 1}, groups[1])
}

func TestMonthlyGoalRepository_UpsertAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMonthlyGoalRepository(db, logger.NewLogger())
	ctx := context.Background()

	mkGoal := func(identity, scope string, amount float64, groupID, userID *uint) *goal.MonthlyGoal {
		g, err := goal.NewMonthlyGoal(identity, scope, 2026, 3, groupID, userID, goal.Targets{AmountTarget: amount}, "")
		require.NoError(t, err)
		return g
	}

	t.Run("upsert assigns id and second upsert replaces targets", func(t *testing.T) {
		g := mkGoal("CC", goal.ScopeGlobal, 300000, nil, nil)
		require.NoError(t, repo.Upsert(ctx, g))
		assert.NotZero(t, g.ID())

		g2 := mkGoal("CC", goal.ScopeGlobal, 400000, nil, nil)
		require.NoError(t, repo.Upsert(ctx, g2))

		listed, err := repo.ListByMonth(ctx, 2026, 3, goal.Filter{IdentityType: strPtr("CC")})
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, 400000.0, listed[0].Targets().AmountTarget)
	})

	t.Run("batch upsert and month filter", func(t *testing.T) {
		goals := []*goal.MonthlyGoal{
			mkGoal("SS", goal.ScopeGlobal, 120000, nil, nil),
			mkGoal("CC", goal.ScopeUser, 50000, nil, uintPtr(7)),
		}
		require.NoError(t, repo.BatchUpsert(ctx, goals))

		listed, err := repo.ListByMonth(ctx, 2026, 3, goal.Filter{UserID: uintPtr(7)})
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, goal.ScopeUser, listed[0].Scope())

		empty, err := repo.ListByMonth(ctx, 2026, 4, goal.Filter{})
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}

func TestAdminMetricRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminMetricRepository(db, logger.NewLogger())
	ctx := context.Background()

	mkMetric := func(key, name string, roles []string) *metric.AdminMetric {
		m, err := metric.NewAdminMetric(key, name, "", "ALL", "%", nil, nil, roles)
		require.NoError(t, err)
		return m
	}

	t.Run("create and get by key round trips roles", func(t *testing.T) {
		m := mkMetric("task_completion_rate", "Task Completion Rate", []string{"admin", "manager"})
		require.NoError(t, repo.Create(ctx, m))
		assert.NotZero(t, m.ID())

		found, err := repo.GetByKey(ctx, "task_completion_rate")
		require.NoError(t, err)
		assert.Equal(t, "Task Completion Rate", found.Name())
		assert.Equal(t, []string{"admin", "manager"}, found.VisibleRoles())
	})

	t.Run("duplicate key yields conflict error", func(t *testing.T) {
		err := repo.Create(ctx, mkMetric("task_completion_rate", "Duplicate", nil))
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
	})

	t.Run("missing key yields not found error", func(t *testing.T) {
		_, err := repo.GetByKey(ctx, "nope")
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("list filters inactive entries", func(t *testing.T) {
		m := mkMetric("report_submission_rate", "Report Submission Rate", nil)
		m.Deactivate()
		require.NoError(t, repo.Create(ctx, m))

		active, err := repo.List(ctx, true)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "task_completion_rate", active[0].Key())

		all, err := repo.List(ctx, false)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}
