package usecases

import (
	"context"
	"time"

	"opsight/internal/application/analytics/dto"
	"opsight/internal/application/analytics/usecases/statsutil"
	"opsight/internal/domain/activity"
	"opsight/internal/domain/directory"
	"opsight/internal/domain/goal"
	"opsight/internal/shared/biztime"
	"opsight/internal/shared/errors"
	"opsight/internal/shared/logger"
)

// GetSummaryQuery represents the query parameters for the monthly summary.
// Nil fields were absent or unparsable and apply no filter.
type GetSummaryQuery struct {
	IdentityType *string
	GroupID      *uint
	UserID       *uint
	Year         *int
	Month        *int
}

// GetSummaryUseCase aggregates one month of activity for a scoped
// population and attaches the matching monthly goal.
type GetSummaryUseCase struct {
	recordRepo    activity.Repository
	directoryRepo directory.Repository
	goalRepo      goal.Repository
	logger        logger.Interface
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase
func NewGetSummaryUseCase(
	recordRepo activity.Repository,
	directoryRepo directory.Repository,
	goalRepo goal.Repository,
	logger logger.Interface,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		recordRepo:    recordRepo,
		directoryRepo: directoryRepo,
		goalRepo:      goalRepo,
		logger:        logger,
	}
}

// Execute resolves the scope, folds the month's records, composes derived
// metrics and looks up the most specific matching goal.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, query GetSummaryQuery) (*dto.SummaryResponse, error) {
	year, month := uc.resolvePeriod(query)
	window := statsutil.MonthWindow(year, month)

	uc.logger.Infow("fetching analytics summary",
		"year", year,
		"month", int(month),
		"identity_type", query.IdentityType,
		"group_id", query.GroupID,
		"user_id", query.UserID,
	)

	agg, err := aggregateWindow(ctx, uc.recordRepo, uc.directoryRepo, window, statsutil.ScopeFilter{
		IdentityType: query.IdentityType,
		GroupID:      query.GroupID,
		UserID:       query.UserID,
	})
	if err != nil {
		uc.logger.Errorw("failed to aggregate summary window", "error", err)
		return nil, err
	}

	total := statsutil.OwnerSum{Totals: agg.Total(), ActiveDays: agg.ActiveDayCount()}
	composed := statsutil.Compose(total, window.DaysInWindow())

	matched, err := uc.findGoal(ctx, year, int(month), query)
	if err != nil {
		uc.logger.Errorw("failed to look up monthly goal", "error", err)
		return nil, errors.NewInternalError("failed to look up monthly goal", err.Error())
	}

	return &dto.SummaryResponse{
		Month: dto.MonthSummary{
			SumRecord:            total.Totals,
			TotalSales:           composed.TotalSales,
			TaskCompletionRate:   composed.TaskCompletionRate,
			ReportSubmissionRate: composed.ReportSubmissionRate,
			ActiveDays:           total.ActiveDays,
		},
		Goal: matched,
	}, nil
}

func (uc *GetSummaryUseCase) resolvePeriod(query GetSummaryQuery) (int, time.Month) {
	bizNow := biztime.ToBizTimezone(biztime.NowUTC())
	year := bizNow.Year()
	month := bizNow.Month()
	if query.Year != nil {
		year = *query.Year
	}
	if query.Month != nil && *query.Month >= 1 && *query.Month <= 12 {
		month = time.Month(*query.Month)
	}
	return year, month
}

// findGoal returns the most specific goal for the period: a user-scoped
// goal wins over a group-scoped one, which wins over a global one.
func (uc *GetSummaryUseCase) findGoal(ctx context.Context, year, month int, query GetSummaryQuery) (*dto.MonthlyGoalResponse, error) {
	filter := goal.Filter{IdentityType: query.IdentityType}
	goals, err := uc.goalRepo.ListByMonth(ctx, year, month, filter)
	if err != nil {
		return nil, err
	}

	var matched *goal.MonthlyGoal
	precedence := func(g *goal.MonthlyGoal) int {
		switch g.Scope() {
		case goal.ScopeUser:
			return 3
		case goal.ScopeGroup:
			return 2
		default:
			return 1
		}
	}
	for _, g := range goals {
		switch g.Scope() {
		case goal.ScopeUser:
			if query.UserID == nil || g.UserID() == nil || *g.UserID() != *query.UserID {
				continue
			}
		case goal.ScopeGroup:
			if query.GroupID == nil || g.GroupID() == nil || *g.GroupID() != *query.GroupID {
				continue
			}
		}
		if matched == nil || precedence(g) > precedence(matched) {
			matched = g
		}
	}

	if matched == nil {
		return nil, nil
	}
	targets := matched.Targets()
	return &dto.MonthlyGoalResponse{
		ID:                       matched.ID(),
		IdentityType:             matched.IdentityType(),
		Scope:                    matched.Scope(),
		Year:                     matched.Year(),
		Month:                    matched.Month(),
		GroupID:                  matched.GroupID(),
		UserID:                   matched.UserID(),
		AmountTarget:             targets.AmountTarget,
		NewSignTargetAmount:      targets.NewSignTargetAmount,
		ReferralTargetAmount:     targets.ReferralTargetAmount,
		RenewalTotalTargetAmount: targets.RenewalTotalTargetAmount,
		RenewalTargetCount:       targets.RenewalTargetCount,
		UpgradeTargetCount:       targets.UpgradeTargetCount,
		Notes:                    matched.Notes(),
	}, nil
}
