package usecases

import (
	"context"
	"time"

	"opsight/internal/application/goal/dto"
	"opsight/internal/domain/goal"
	"opsight/internal/shared/biztime"
	"opsight/internal/shared/errors"
	"opsight/internal/shared/logger"
)

// ListMonthlyGoalsQuery represents the query parameters for listing goals.
// Year and Month default to the current business month.
type ListMonthlyGoalsQuery struct {
	Year         *int
	Month        *int
	IdentityType *string
	GroupID      *uint
	UserID       *uint
}

// ListMonthlyGoalsUseCase lists the goals of one calendar month.
type ListMonthlyGoalsUseCase struct {
	goalRepo goal.Repository
	logger   logger.Interface
}

// NewListMonthlyGoalsUseCase creates a new ListMonthlyGoalsUseCase
func NewListMonthlyGoalsUseCase(goalRepo goal.Repository, logger logger.Interface) *ListMonthlyGoalsUseCase {
	return &ListMonthlyGoalsUseCase{
		goalRepo: goalRepo,
		logger:   logger,
	}
}

// Execute lists the month's goals matching the filters.
func (uc *ListMonthlyGoalsUseCase) Execute(ctx context.Context, query ListMonthlyGoalsQuery) ([]*dto.MonthlyGoalResponse, error) {
	bizNow := biztime.ToBizTimezone(biztime.NowUTC())
	year := bizNow.Year()
	month := int(bizNow.Month())
	if query.Year != nil {
		year = *query.Year
	}
	if query.Month != nil && *query.Month >= int(time.January) && *query.Month <= int(time.December) {
		month = *query.Month
	}

	goals, err := uc.goalRepo.ListByMonth(ctx, year, month, goal.Filter{
		IdentityType: query.IdentityType,
		GroupID:      query.GroupID,
		UserID:       query.UserID,
	})
	if err != nil {
		uc.logger.Errorw("failed to list monthly goals", "year", year, "month", month, "error", err)
		return nil, errors.NewInternalError("failed to list monthly goals", err.Error())
	}

	responses := make([]*dto.MonthlyGoalResponse, 0, len(goals))
	for _, g := range goals {
		responses = append(responses, goalToResponse(g))
	}
	return responses, nil
}
