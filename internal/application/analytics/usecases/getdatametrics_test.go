package usecases

import (
	"context"
	"testing"

	"opsight/internal/application/analytics/testutil"
	"opsight/internal/domain/activity"
	"opsight/internal/domain/directory"
	"opsight/internal/shared/logger"
)

func TestGetDataMetricsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	start := bizDay(2026, 3, 1)
	end := bizDay(2026, 3, 10)

	t.Run("rates over an explicit window", func(t *testing.T) {
		records := &testutil.MockActivityRepository{Records: []*activity.Record{
			makeRecord(t, 1, bizDay(2026, 3, 1), activity.SumRecord{TaskTotalCount: 6, TaskCompletedCount: 3}),
			makeRecord(t, 1, bizDay(2026, 3, 4), activity.SumRecord{TaskTotalCount: 4, TaskCompletedCount: 4}),
		}}
		uc := NewGetDataMetricsUseCase(records, &testutil.MockDirectoryRepository{}, logger.NewLogger())

		resp, err := uc.Execute(ctx, GetDataMetricsQuery{StartDate: &start, EndDate: &end})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		// 7 of 10 tasks completed
		if resp.Metrics.TaskCompletionRate != 70 {
			t.Errorf("TaskCompletionRate = %v, want 70", resp.Metrics.TaskCompletionRate)
		}
		// 2 active days over a 10-day window
		if resp.Metrics.ReportSubmissionRate != 20 {
			t.Errorf("ReportSubmissionRate = %v, want 20", resp.Metrics.ReportSubmissionRate)
		}
	})

	t.Run("no activity yields zero rates", func(t *testing.T) {
		uc := NewGetDataMetricsUseCase(&testutil.MockActivityRepository{}, &testutil.MockDirectoryRepository{}, logger.NewLogger())

		resp, err := uc.Execute(ctx, GetDataMetricsQuery{StartDate: &start, EndDate: &end})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if resp.Metrics.TaskCompletionRate != 0 || resp.Metrics.ReportSubmissionRate != 0 {
			t.Errorf("Metrics = %+v, want zeros", resp.Metrics)
		}
	})

	t.Run("user filter narrows the rates", func(t *testing.T) {
		dir := &testutil.MockDirectoryRepository{Entries: []*directory.Entry{
			makeEntry(t, 1, nil, "A", "CC", nil, ""),
			makeEntry(t, 2, nil, "B", "CC", nil, ""),
		}}
		records := &testutil.MockActivityRepository{Records: []*activity.Record{
			makeRecord(t, 1, bizDay(2026, 3, 1), activity.SumRecord{TaskTotalCount: 2, TaskCompletedCount: 2}),
			makeRecord(t, 2, bizDay(2026, 3, 1), activity.SumRecord{TaskTotalCount: 2, TaskCompletedCount: 0}),
		}}
		uc := NewGetDataMetricsUseCase(records, dir, logger.NewLogger())

		resp, err := uc.Execute(ctx, GetDataMetricsQuery{StartDate: &start, EndDate: &end, UserID: uintPtr(1)})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if resp.Metrics.TaskCompletionRate != 100 {
			t.Errorf("TaskCompletionRate = %v, want 100", resp.Metrics.TaskCompletionRate)
		}
	})
}
