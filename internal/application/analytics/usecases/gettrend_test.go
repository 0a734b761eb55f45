package usecases

import (
	"context"
	"testing"

	"opsight/internal/application/analytics/testutil"
	"opsight/internal/domain/activity"
	"opsight/internal/domain/directory"
	"opsight/internal/shared/logger"
)

func TestGetTrendUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	start := bizDay(2026, 3, 1)
	end := bizDay(2026, 3, 3)

	t.Run("sparse series ordered ascending", func(t *testing.T) {
		// three-day window, activity on day 1 and day 3 only
		records := &testutil.MockActivityRepository{Records: []*activity.Record{
			makeSalesRecord(t, 1, bizDay(2026, 3, 1), 100),
			makeSalesRecord(t, 2, bizDay(2026, 3, 3), 200),
			makeSalesRecord(t, 1, bizDay(2026, 3, 3), 50),
		}}
		uc := NewGetTrendUseCase(records, &testutil.MockDirectoryRepository{}, logger.NewLogger())

		resp, err := uc.Execute(ctx, GetTrendQuery{StartDate: &start, EndDate: &end})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if len(resp.Series) != 2 {
			t.Fatalf("Series length = %d, want 2 (no zero-filled gap day)", len(resp.Series))
		}
		if resp.Series[0].Date != "2026-03-01" || resp.Series[1].Date != "2026-03-03" {
			t.Errorf("dates = %q, %q", resp.Series[0].Date, resp.Series[1].Date)
		}
		if resp.Series[0].Values["period_sales_amount"] != 100 {
			t.Errorf("day 1 value = %v, want 100", resp.Series[0].Values["period_sales_amount"])
		}
		if resp.Series[1].Values["period_sales_amount"] != 250 {
			t.Errorf("day 3 value = %v, want 250", resp.Series[1].Values["period_sales_amount"])
		}
	})

	t.Run("requested metrics select the projected fields", func(t *testing.T) {
		records := &testutil.MockActivityRepository{Records: []*activity.Record{
			makeRecord(t, 1, bizDay(2026, 3, 1), activity.SumRecord{NewSignAmount: 100, CallCount: 7}),
		}}
		uc := NewGetTrendUseCase(records, &testutil.MockDirectoryRepository{}, logger.NewLogger())

		resp, err := uc.Execute(ctx, GetTrendQuery{
			StartDate: &start,
			EndDate:   &end,
			Metrics:   []string{"new_sign_amount", "call_count", "bogus", "new_sign_amount"},
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		values := resp.Series[0].Values
		if values["new_sign_amount"] != 100 {
			t.Errorf("new_sign_amount = %v, want 100", values["new_sign_amount"])
		}
		if values["call_count"] != 7 {
			t.Errorf("call_count = %v, want 7", values["call_count"])
		}
		// bogus falls back to the composite key; duplicates collapse
		if _, ok := values["period_sales_amount"]; !ok {
			t.Error("fallback key missing from values")
		}
		if len(values) != 3 {
			t.Errorf("values = %v, want 3 keys", values)
		}
	})

	t.Run("scope filter narrows the fold", func(t *testing.T) {
		dir := &testutil.MockDirectoryRepository{Entries: []*directory.Entry{
			makeEntry(t, 1, nil, "A", "CC", uintPtr(10), ""),
			makeEntry(t, 2, nil, "B", "SS", uintPtr(20), ""),
		}}
		records := &testutil.MockActivityRepository{Records: []*activity.Record{
			makeSalesRecord(t, 1, bizDay(2026, 3, 1), 100),
			makeSalesRecord(t, 2, bizDay(2026, 3, 1), 900),
		}}
		uc := NewGetTrendUseCase(records, dir, logger.NewLogger())

		resp, err := uc.Execute(ctx, GetTrendQuery{StartDate: &start, EndDate: &end, GroupID: uintPtr(10)})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if resp.Series[0].Values["period_sales_amount"] != 100 {
			t.Errorf("scoped value = %v, want 100", resp.Series[0].Values["period_sales_amount"])
		}
	})

	t.Run("empty window yields empty series", func(t *testing.T) {
		uc := NewGetTrendUseCase(&testutil.MockActivityRepository{}, &testutil.MockDirectoryRepository{}, logger.NewLogger())

		resp, err := uc.Execute(ctx, GetTrendQuery{StartDate: &start, EndDate: &end})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(resp.Series) != 0 {
			t.Errorf("Series = %+v, want empty", resp.Series)
		}
	})
}
