package usecases

import (
	"context"
	"time"

	"opsight/internal/application/analytics/dto"
	"opsight/internal/application/analytics/usecases/statsutil"
	"opsight/internal/domain/activity"
	"opsight/internal/domain/directory"
	"opsight/internal/shared/biztime"
	"opsight/internal/shared/errors"
	"opsight/internal/shared/logger"
)

const defaultRankingSize = 10

// GetRankingQuery represents the query parameters for the leaderboard.
// UserID is the requester whose own rank must be resolvable regardless of
// leaderboard position; it does not narrow the population.
type GetRankingQuery struct {
	MetricKey    string
	StartDate    *time.Time
	EndDate      *time.Time
	IdentityType *string
	GroupID      *uint
	RoleScope    *string
	UserID       *uint
}

// GetRankingUseCase builds the leaderboard for a metric over a window.
type GetRankingUseCase struct {
	recordRepo    activity.Repository
	directoryRepo directory.Repository
	rankingSize   int
	logger        logger.Interface
}

// NewGetRankingUseCase creates a new GetRankingUseCase. A rankingSize of 0
// or less falls back to the default of 10.
func NewGetRankingUseCase(
	recordRepo activity.Repository,
	directoryRepo directory.Repository,
	rankingSize int,
	logger logger.Interface,
) *GetRankingUseCase {
	if rankingSize <= 0 {
		rankingSize = defaultRankingSize
	}
	return &GetRankingUseCase{
		recordRepo:    recordRepo,
		directoryRepo: directoryRepo,
		rankingSize:   rankingSize,
		logger:        logger,
	}
}

// Execute runs the full pipeline: scope, aggregate, rank, enrich.
func (uc *GetRankingUseCase) Execute(ctx context.Context, query GetRankingQuery) (*dto.RankingResponse, error) {
	window := statsutil.ResolveWindow(query.StartDate, query.EndDate, biztime.NowUTC())
	key := statsutil.ParseMetricKey(query.MetricKey)

	uc.logger.Infow("fetching analytics ranking",
		"metric_key", string(key),
		"from", window.From,
		"to", window.To,
		"group_id", query.GroupID,
		"role_scope", query.RoleScope,
		"requester_id", query.UserID,
	)

	agg, aliasIndex, err := aggregateWindowWithAliases(ctx, uc.recordRepo, uc.directoryRepo, window, statsutil.ScopeFilter{
		IdentityType: query.IdentityType,
		GroupID:      query.GroupID,
		RoleScope:    query.RoleScope,
	})
	if err != nil {
		uc.logger.Errorw("failed to aggregate ranking window", "error", err)
		return nil, err
	}

	requesterID := query.UserID
	if requesterID != nil {
		if primary, ok := aliasIndex[*requesterID]; ok {
			requesterID = &primary
		}
	}

	result := statsutil.Rank(agg, key, window.DaysInWindow(), uc.rankingSize, requesterID)

	if err := uc.enrich(ctx, &result); err != nil {
		uc.logger.Errorw("failed to enrich ranking entries", "error", err)
		return nil, errors.NewInternalError("failed to enrich ranking entries", err.Error())
	}

	return &dto.RankingResponse{
		MetricKey:       string(key),
		Top10:           result.Top,
		CurrentUserRank: result.Requester,
	}, nil
}

func (uc *GetRankingUseCase) enrich(ctx context.Context, result *statsutil.RankResult) error {
	ids := make([]uint, 0, len(result.Top)+1)
	for _, entry := range result.Top {
		ids = append(ids, entry.OwnerID)
	}
	if result.Requester != nil {
		ids = append(ids, result.Requester.OwnerID)
	}
	if len(ids) == 0 {
		return nil
	}

	dir, err := uc.directoryRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}

	statsutil.EnrichEntries(result.Top, dir)
	statsutil.EnrichEntry(result.Requester, dir)
	return nil
}
