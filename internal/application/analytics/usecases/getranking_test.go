package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"opsight/internal/application/analytics/testutil"
	"opsight/internal/domain/activity"
	"opsight/internal/domain/directory"
	"opsight/internal/shared/biztime"
	"opsight/internal/shared/constants"
	"opsight/internal/shared/logger"
)

func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func bizDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, biztime.Location()).UTC()
}

func makeEntry(t *testing.T, id uint, aliasID *uint, name, identityType string, groupID *uint, roleScope string) *directory.Entry {
	t.Helper()
	e, err := directory.ReconstructEntry(id, aliasID, name, "", identityType, groupID, roleScope, "active", time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("reconstruct entry: %v", err)
	}
	return e
}

func makeRecord(t *testing.T, owner uint, date time.Time, totals activity.SumRecord) *activity.Record {
	t.Helper()
	rec, err := activity.NewRecord(owner, date, totals)
	if err != nil {
		t.Fatalf("new record: %v", err)
	}
	return rec
}

func makeSalesRecord(t *testing.T, owner uint, date time.Time, amount float64) *activity.Record {
	return makeRecord(t, owner, date, activity.SumRecord{NewSignAmount: amount, NewSignCount: 1})
}

func TestGetRankingUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	start := bizDay(2026, 3, 1)
	end := bizDay(2026, 3, 31)

	t.Run("two users ranked descending with requester rank", func(t *testing.T) {
		// A has 300, B has 500, same group
		dir := &testutil.MockDirectoryRepository{Entries: []*directory.Entry{
			makeEntry(t, 1, nil, "A", "CC", uintPtr(10), ""),
			makeEntry(t, 2, nil, "B", "CC", uintPtr(10), ""),
		}}
		records := &testutil.MockActivityRepository{Records: []*activity.Record{
			makeSalesRecord(t, 1, bizDay(2026, 3, 2), 300),
			makeSalesRecord(t, 2, bizDay(2026, 3, 3), 500),
		}}
		uc := NewGetRankingUseCase(records, dir, 10, logger.NewLogger())

		resp, err := uc.Execute(ctx, GetRankingQuery{
			MetricKey: "period_sales_amount",
			StartDate: &start,
			EndDate:   &end,
			GroupID:   uintPtr(10),
			UserID:    uintPtr(1),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if len(resp.Top10) != 2 {
			t.Fatalf("Top10 length = %d, want 2", len(resp.Top10))
		}
		if resp.Top10[0].OwnerID != 2 || resp.Top10[0].Rank != 1 || resp.Top10[0].DisplayName != "B" {
			t.Errorf("Top10[0] = %+v, want B at rank 1", resp.Top10[0])
		}
		if resp.Top10[1].OwnerID != 1 || resp.Top10[1].Rank != 2 {
			t.Errorf("Top10[1] = %+v, want A at rank 2", resp.Top10[1])
		}
		if resp.CurrentUserRank == nil || resp.CurrentUserRank.Rank != 2 || resp.CurrentUserRank.DisplayName != "A" {
			t.Errorf("CurrentUserRank = %+v, want A at rank 2", resp.CurrentUserRank)
		}
	})

	t.Run("requester rank beyond top n", func(t *testing.T) {
		dir := &testutil.MockDirectoryRepository{}
		records := &testutil.MockActivityRepository{}
		for i := uint(1); i <= 12; i++ {
			dir.Entries = append(dir.Entries, makeEntry(t, i, nil, "U", "CC", nil, ""))
			records.Records = append(records.Records, makeSalesRecord(t, i, bizDay(2026, 3, 1), float64(1000-int(i))))
		}
		uc := NewGetRankingUseCase(records, dir, 10, logger.NewLogger())

		resp, err := uc.Execute(ctx, GetRankingQuery{
			StartDate: &start,
			EndDate:   &end,
			UserID:    uintPtr(12),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(resp.Top10) != 10 {
			t.Fatalf("Top10 length = %d, want 10", len(resp.Top10))
		}
		if resp.CurrentUserRank == nil || resp.CurrentUserRank.Rank != 12 {
			t.Errorf("CurrentUserRank = %+v, want rank 12", resp.CurrentUserRank)
		}
	})

	t.Run("empty population yields empty results without error", func(t *testing.T) {
		dir := &testutil.MockDirectoryRepository{Entries: []*directory.Entry{
			makeEntry(t, 1, nil, "A", "CC", nil, ""),
		}}
		records := &testutil.MockActivityRepository{Records: []*activity.Record{
			makeSalesRecord(t, 1, bizDay(2026, 3, 1), 100),
		}}
		uc := NewGetRankingUseCase(records, dir, 10, logger.NewLogger())

		resp, err := uc.Execute(ctx, GetRankingQuery{
			StartDate:    &start,
			EndDate:      &end,
			IdentityType: strPtr("LP"),
			UserID:       uintPtr(1),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(resp.Top10) != 0 {
			t.Errorf("Top10 = %+v, want empty", resp.Top10)
		}
		if resp.CurrentUserRank != nil {
			t.Errorf("CurrentUserRank = %+v, want nil", resp.CurrentUserRank)
		}
		if records.ListCalls != 0 {
			t.Errorf("record store queried %d times for empty scope, want 0", records.ListCalls)
		}
	})

	t.Run("unknown metric key falls back to composite sales", func(t *testing.T) {
		dir := &testutil.MockDirectoryRepository{Entries: []*directory.Entry{
			makeEntry(t, 1, nil, "A", "CC", nil, ""),
			makeEntry(t, 2, nil, "B", "CC", nil, ""),
		}}
		records := &testutil.MockActivityRepository{Records: []*activity.Record{
			makeSalesRecord(t, 1, bizDay(2026, 3, 1), 300),
			makeSalesRecord(t, 2, bizDay(2026, 3, 2), 500),
		}}
		uc := NewGetRankingUseCase(records, dir, 10, logger.NewLogger())

		known, err := uc.Execute(ctx, GetRankingQuery{MetricKey: "period_sales_amount", StartDate: &start, EndDate: &end})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		unknown, err := uc.Execute(ctx, GetRankingQuery{MetricKey: "unknown_key", StartDate: &start, EndDate: &end})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if unknown.MetricKey != "period_sales_amount" {
			t.Errorf("MetricKey = %q, want fallback", unknown.MetricKey)
		}
		for i := range known.Top10 {
			if known.Top10[i] != unknown.Top10[i] {
				t.Errorf("entry %d differs: %+v vs %+v", i, known.Top10[i], unknown.Top10[i])
			}
		}
	})

	t.Run("alias requester and alias records fold to one person", func(t *testing.T) {
		dir := &testutil.MockDirectoryRepository{Entries: []*directory.Entry{
			makeEntry(t, 3, uintPtr(103), "Cai", "CC", nil, ""),
			makeEntry(t, 4, nil, "Di", "CC", nil, ""),
		}}
		records := &testutil.MockActivityRepository{Records: []*activity.Record{
			makeSalesRecord(t, 3, bizDay(2026, 3, 1), 100),
			makeSalesRecord(t, 103, bizDay(2026, 3, 2), 50),
			makeSalesRecord(t, 4, bizDay(2026, 3, 1), 120),
		}}
		uc := NewGetRankingUseCase(records, dir, 10, logger.NewLogger())

		resp, err := uc.Execute(ctx, GetRankingQuery{
			StartDate: &start,
			EndDate:   &end,
			UserID:    uintPtr(103),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(resp.Top10) != 2 {
			t.Fatalf("Top10 length = %d, want 2 after alias folding", len(resp.Top10))
		}
		if resp.Top10[0].OwnerID != 3 || resp.Top10[0].RawValue != 150 {
			t.Errorf("Top10[0] = %+v, want owner 3 with 150", resp.Top10[0])
		}
		if resp.CurrentUserRank == nil || resp.CurrentUserRank.OwnerID != 3 || resp.CurrentUserRank.Rank != 1 {
			t.Errorf("CurrentUserRank = %+v, want owner 3 rank 1", resp.CurrentUserRank)
		}
	})

	t.Run("rate metric formats with percent suffix", func(t *testing.T) {
		dir := &testutil.MockDirectoryRepository{Entries: []*directory.Entry{
			makeEntry(t, 1, nil, "A", "CC", nil, ""),
		}}
		records := &testutil.MockActivityRepository{Records: []*activity.Record{
			makeRecord(t, 1, bizDay(2026, 3, 1), activity.SumRecord{TaskTotalCount: 4, TaskCompletedCount: 3}),
		}}
		uc := NewGetRankingUseCase(records, dir, 10, logger.NewLogger())

		resp, err := uc.Execute(ctx, GetRankingQuery{MetricKey: "task_completion_rate", StartDate: &start, EndDate: &end})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if resp.Top10[0].RawValue != 75 {
			t.Errorf("RawValue = %v, want 75", resp.Top10[0].RawValue)
		}
		if resp.Top10[0].FormattedValue != "75%" {
			t.Errorf("FormattedValue = %q, want 75%%", resp.Top10[0].FormattedValue)
		}
	})

	t.Run("missing directory entry degrades to placeholder", func(t *testing.T) {
		dir := &testutil.MockDirectoryRepository{}
		records := &testutil.MockActivityRepository{Records: []*activity.Record{
			makeSalesRecord(t, 42, bizDay(2026, 3, 1), 100),
		}}
		uc := NewGetRankingUseCase(records, dir, 10, logger.NewLogger())

		resp, err := uc.Execute(ctx, GetRankingQuery{StartDate: &start, EndDate: &end})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if resp.Top10[0].DisplayName != constants.PlaceholderDisplayName {
			t.Errorf("DisplayName = %q, want placeholder", resp.Top10[0].DisplayName)
		}
	})

	t.Run("record store failure propagates", func(t *testing.T) {
		dir := &testutil.MockDirectoryRepository{}
		records := &testutil.MockActivityRepository{Err: errors.New("store down")}
		uc := NewGetRankingUseCase(records, dir, 10, logger.NewLogger())

		_, err := uc.Execute(ctx, GetRankingQuery{StartDate: &start, EndDate: &end})
		if err == nil {
			t.Fatal("expected store failure to propagate")
		}
	})
}
