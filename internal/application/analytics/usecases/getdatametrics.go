package usecases

import (
	"context"
	"time"

	"opsight/internal/application/analytics/dto"
	"opsight/internal/application/analytics/usecases/statsutil"
	"opsight/internal/domain/activity"
	"opsight/internal/domain/directory"
	"opsight/internal/shared/biztime"
	"opsight/internal/shared/logger"
)

// GetDataMetricsQuery represents the query parameters for the operational
// rate metrics.
type GetDataMetricsQuery struct {
	StartDate *time.Time
	EndDate   *time.Time
	GroupID   *uint
	UserID    *uint
}

// GetDataMetricsUseCase computes the task completion and report submission
// rates over a window for a scoped population.
type GetDataMetricsUseCase struct {
	recordRepo    activity.Repository
	directoryRepo directory.Repository
	logger        logger.Interface
}

// NewGetDataMetricsUseCase creates a new GetDataMetricsUseCase
func NewGetDataMetricsUseCase(
	recordRepo activity.Repository,
	directoryRepo directory.Repository,
	logger logger.Interface,
) *GetDataMetricsUseCase {
	return &GetDataMetricsUseCase{
		recordRepo:    recordRepo,
		directoryRepo: directoryRepo,
		logger:        logger,
	}
}

// Execute aggregates the window and derives the two rates from the totals.
func (uc *GetDataMetricsUseCase) Execute(ctx context.Context, query GetDataMetricsQuery) (*dto.DataMetricsResponse, error) {
	window := statsutil.ResolveWindow(query.StartDate, query.EndDate, biztime.NowUTC())

	uc.logger.Infow("fetching data metrics",
		"from", window.From,
		"to", window.To,
		"group_id", query.GroupID,
		"user_id", query.UserID,
	)

	agg, err := aggregateWindow(ctx, uc.recordRepo, uc.directoryRepo, window, statsutil.ScopeFilter{
		GroupID: query.GroupID,
		UserID:  query.UserID,
	})
	if err != nil {
		uc.logger.Errorw("failed to aggregate data metrics window", "error", err)
		return nil, err
	}

	total := statsutil.OwnerSum{Totals: agg.Total(), ActiveDays: agg.ActiveDayCount()}
	composed := statsutil.Compose(total, window.DaysInWindow())

	return &dto.DataMetricsResponse{
		Metrics: dto.DataMetrics{
			TaskCompletionRate:   composed.TaskCompletionRate,
			ReportSubmissionRate: composed.ReportSubmissionRate,
		},
	}, nil
}
