package usecases

import (
	"context"

	"opsight/internal/application/goal/dto"
	"opsight/internal/domain/goal"
	"opsight/internal/shared/errors"
	"opsight/internal/shared/logger"
)

// UpsertMonthlyGoalUseCase creates or replaces a monthly goal.
type UpsertMonthlyGoalUseCase struct {
	goalRepo goal.Repository
	logger   logger.Interface
}

// NewUpsertMonthlyGoalUseCase creates a new UpsertMonthlyGoalUseCase
func NewUpsertMonthlyGoalUseCase(goalRepo goal.Repository, logger logger.Interface) *UpsertMonthlyGoalUseCase {
	return &UpsertMonthlyGoalUseCase{
		goalRepo: goalRepo,
		logger:   logger,
	}
}

// Execute validates the payload against the domain rules and upserts it.
func (uc *UpsertMonthlyGoalUseCase) Execute(ctx context.Context, input dto.MonthlyGoalInput) (*dto.MonthlyGoalResponse, error) {
	g, err := goal.NewMonthlyGoal(
		input.IdentityType,
		input.Scope,
		input.Year,
		input.Month,
		input.GroupID,
		input.UserID,
		goal.Targets{
			AmountTarget:             input.AmountTarget,
			NewSignTargetAmount:      input.NewSignTargetAmount,
			ReferralTargetAmount:     input.ReferralTargetAmount,
			RenewalTotalTargetAmount: input.RenewalTotalTargetAmount,
			RenewalTargetCount:       input.RenewalTargetCount,
			UpgradeTargetCount:       input.UpgradeTargetCount,
		},
		input.Notes,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.goalRepo.Upsert(ctx, g); err != nil {
		uc.logger.Errorw("failed to upsert monthly goal", "error", err)
		return nil, errors.NewInternalError("failed to upsert monthly goal", err.Error())
	}

	uc.logger.Infow("monthly goal upserted",
		"id", g.ID(),
		"identity_type", g.IdentityType(),
		"scope", g.Scope(),
		"year", g.Year(),
		"month", g.Month(),
	)
	return goalToResponse(g), nil
}

func goalToResponse(g *goal.MonthlyGoal) *dto.MonthlyGoalResponse {
	targets := g.Targets()
	return &dto.MonthlyGoalResponse{
		ID:                       g.ID(),
		IdentityType:             g.IdentityType(),
		Scope:                    g.Scope(),
		Year:                     g.Year(),
		Month:                    g.Month(),
		GroupID:                  g.GroupID(),
		UserID:                   g.UserID(),
		AmountTarget:             targets.AmountTarget,
		NewSignTargetAmount:      targets.NewSignTargetAmount,
		ReferralTargetAmount:     targets.ReferralTargetAmount,
		RenewalTotalTargetAmount: targets.RenewalTotalTargetAmount,
		RenewalTargetCount:       targets.RenewalTargetCount,
		UpgradeTargetCount:       targets.UpgradeTargetCount,
		Notes:                    g.Notes(),
	}
}
