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

// GetTrendQuery represents the query parameters for the trend series.
type GetTrendQuery struct {
	StartDate    *time.Time
	EndDate      *time.Time
	IdentityType *string
	GroupID      *uint
	UserID       *uint
	Metrics      []string
}

// GetTrendUseCase produces the date-ordered series of per-day sums for the
// requested metrics. Days without activity produce no point.
type GetTrendUseCase struct {
	recordRepo    activity.Repository
	directoryRepo directory.Repository
	logger        logger.Interface
}

// NewGetTrendUseCase creates a new GetTrendUseCase
func NewGetTrendUseCase(
	recordRepo activity.Repository,
	directoryRepo directory.Repository,
	logger logger.Interface,
) *GetTrendUseCase {
	return &GetTrendUseCase{
		recordRepo:    recordRepo,
		directoryRepo: directoryRepo,
		logger:        logger,
	}
}

// Execute aggregates the window per day and projects the requested metric
// keys onto each date bucket.
func (uc *GetTrendUseCase) Execute(ctx context.Context, query GetTrendQuery) (*dto.TrendResponse, error) {
	window := statsutil.ResolveWindow(query.StartDate, query.EndDate, biztime.NowUTC())
	keys := uc.resolveKeys(query.Metrics)

	uc.logger.Infow("fetching analytics trend",
		"from", window.From,
		"to", window.To,
		"metrics", query.Metrics,
	)

	agg, err := aggregateWindow(ctx, uc.recordRepo, uc.directoryRepo, window, statsutil.ScopeFilter{
		IdentityType: query.IdentityType,
		GroupID:      query.GroupID,
		UserID:       query.UserID,
	})
	if err != nil {
		uc.logger.Errorw("failed to aggregate trend window", "error", err)
		return nil, err
	}

	series := make([]dto.TrendPoint, 0, len(agg.DateOrder))
	for _, date := range agg.DateOrder {
		daySum := statsutil.OwnerSum{Totals: *agg.ByDate[date], ActiveDays: 1}
		values := make(map[string]float64, len(keys))
		for _, key := range keys {
			values[string(key)] = statsutil.MetricValue(key, daySum, 1)
		}
		series = append(series, dto.TrendPoint{Date: date, Values: values})
	}

	return &dto.TrendResponse{Series: series}, nil
}

// resolveKeys parses the requested metric names, deduplicates the fallback
// collisions, and defaults to the composite sales metric.
func (uc *GetTrendUseCase) resolveKeys(requested []string) []statsutil.MetricKey {
	if len(requested) == 0 {
		return []statsutil.MetricKey{statsutil.MetricPeriodSalesAmount}
	}

	seen := make(map[statsutil.MetricKey]struct{}, len(requested))
	keys := make([]statsutil.MetricKey, 0, len(requested))
	for _, name := range requested {
		key := statsutil.ParseMetricKey(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}
