package statsutil

import (
	"testing"
	"time"

	"opsight/internal/domain/activity"
	"opsight/internal/shared/biztime"
)

func mustRecord(t *testing.T, owner uint, date time.Time, totals activity.SumRecord) *activity.Record {
	t.Helper()
	rec, err := activity.NewRecord(owner, date, totals)
	if err != nil {
		t.Fatalf("new record: %v", err)
	}
	return rec
}

func bizDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, biztime.Location())
}

func TestAggregateRecords(t *testing.T) {
	records := []*activity.Record{
		mustRecord(t, 1, bizDay(2026, 3, 1), activity.SumRecord{NewSignAmount: 100, NewSignCount: 1, CallCount: 5}),
		mustRecord(t, 2, bizDay(2026, 3, 1), activity.SumRecord{ReferralAmount: 200, ReferralCount: 2}),
		mustRecord(t, 1, bizDay(2026, 3, 3), activity.SumRecord{RenewalAmount: 50, RenewalCount: 1, TaskTotalCount: 4, TaskCompletedCount: 3}),
	}

	agg := AggregateRecords(records, nil)

	t.Run("per-owner sums", func(t *testing.T) {
		if len(agg.ByOwner) != 2 {
			t.Fatalf("ByOwner size = %d, want 2", len(agg.ByOwner))
		}
		one := agg.ByOwner[1]
		if one.Totals.NewSignAmount != 100 || one.Totals.RenewalAmount != 50 {
			t.Errorf("owner 1 totals = %+v", one.Totals)
		}
		if one.ActiveDays != 2 {
			t.Errorf("owner 1 ActiveDays = %d, want 2", one.ActiveDays)
		}
		if agg.ByOwner[2].ActiveDays != 1 {
			t.Errorf("owner 2 ActiveDays = %d, want 1", agg.ByOwner[2].ActiveDays)
		}
	})

	t.Run("owner order follows first occurrence", func(t *testing.T) {
		if len(agg.OwnerOrder) != 2 || agg.OwnerOrder[0] != 1 || agg.OwnerOrder[1] != 2 {
			t.Errorf("OwnerOrder = %v, want [1 2]", agg.OwnerOrder)
		}
	})

	t.Run("per-day sums are sparse", func(t *testing.T) {
		// three-day window with activity on day 1 and day 3 only
		if len(agg.DateOrder) != 2 {
			t.Fatalf("DateOrder = %v, want 2 dates", agg.DateOrder)
		}
		if agg.DateOrder[0] != "2026-03-01" || agg.DateOrder[1] != "2026-03-03" {
			t.Errorf("DateOrder = %v", agg.DateOrder)
		}
		day1 := agg.ByDate["2026-03-01"]
		if day1.NewSignAmount != 100 || day1.ReferralAmount != 200 {
			t.Errorf("day 1 sums = %+v", day1)
		}
	})

	t.Run("total folds everything", func(t *testing.T) {
		total := agg.Total()
		if total.NewSignAmount != 100 || total.ReferralAmount != 200 || total.RenewalAmount != 50 {
			t.Errorf("Total() = %+v", total)
		}
		if total.CallCount != 5 || total.TaskCompletedCount != 3 {
			t.Errorf("Total() counts = %+v", total)
		}
	})
}

func TestAggregateRecords_AliasCanonicalization(t *testing.T) {
	records := []*activity.Record{
		mustRecord(t, 3, bizDay(2026, 3, 1), activity.SumRecord{NewSignAmount: 100}),
		mustRecord(t, 103, bizDay(2026, 3, 2), activity.SumRecord{NewSignAmount: 40}),
	}

	agg := AggregateRecords(records, map[uint]uint{103: 3})

	if len(agg.ByOwner) != 1 {
		t.Fatalf("ByOwner size = %d, want 1 after alias folding", len(agg.ByOwner))
	}
	sum := agg.ByOwner[3]
	if sum == nil {
		t.Fatal("owner 3 missing")
	}
	if sum.Totals.NewSignAmount != 140 {
		t.Errorf("NewSignAmount = %v, want 140", sum.Totals.NewSignAmount)
	}
	if sum.ActiveDays != 2 {
		t.Errorf("ActiveDays = %d, want 2", sum.ActiveDays)
	}
}

func TestAggregateRecords_Empty(t *testing.T) {
	agg := AggregateRecords(nil, nil)

	if len(agg.ByOwner) != 0 || len(agg.ByDate) != 0 {
		t.Errorf("empty input produced non-empty aggregate: %+v", agg)
	}
	if !agg.Total().IsZero() {
		t.Errorf("Total() = %+v, want zero", agg.Total())
	}
	if agg.ActiveDayCount() != 0 {
		t.Errorf("ActiveDayCount() = %d, want 0", agg.ActiveDayCount())
	}
}
