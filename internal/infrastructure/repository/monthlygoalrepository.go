package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"opsight/internal/domain/goal"
	"opsight/internal/infrastructure/persistence/mappers"
	"opsight/internal/infrastructure/persistence/models"
	"opsight/internal/shared/logger"
)

// MonthlyGoalRepositoryImpl implements the goal.Repository interface
type MonthlyGoalRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MonthlyGoalMapper
	logger logger.Interface
}

// NewMonthlyGoalRepository creates a new monthly goal repository instance
func NewMonthlyGoalRepository(db *gorm.DB, logger logger.Interface) goal.Repository {
	return &MonthlyGoalRepositoryImpl{
		db:     db,
		mapper: mappers.NewMonthlyGoalMapper(),
		logger: logger,
	}
}

// Upsert creates the goal or replaces targets and notes of the existing one
// with the same scope key.
func (r *MonthlyGoalRepositoryImpl) Upsert(ctx context.Context, g *goal.MonthlyGoal) error {
	model := r.mapper.ToModel(g)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "identity_type"},
			{Name: "scope"},
			{Name: "year"},
			{Name: "month"},
			{Name: "group_id"},
			{Name: "user_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"amount_target",
			"new_sign_target_amount",
			"referral_target_amount",
			"renewal_total_target_amount",
			"renewal_target_count",
			"upgrade_target_count",
			"notes",
			"updated_at",
		}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert monthly goal", "identity_type", model.IdentityType, "scope", model.Scope, "year", model.Year, "month", model.Month, "error", err)
		return fmt.Errorf("failed to upsert monthly goal: %w", err)
	}

	if g.ID() == 0 {
		g.SetID(model.ID)
	}
	return nil
}

// BatchUpsert applies Upsert to each goal in order.
func (r *MonthlyGoalRepositoryImpl) BatchUpsert(ctx context.Context, goals []*goal.MonthlyGoal) error {
	if len(goals) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &MonthlyGoalRepositoryImpl{db: tx, mapper: r.mapper, logger: r.logger}
		for _, g := range goals {
			if err := txRepo.Upsert(ctx, g); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to batch upsert monthly goals", "count", len(goals), "error", err)
		return err
	}

	r.logger.Infow("monthly goals batch upserted successfully", "count", len(goals))
	return nil
}

// ListByMonth returns goals for the given calendar month matching the
// filter, ordered by ID.
func (r *MonthlyGoalRepositoryImpl) ListByMonth(ctx context.Context, year, month int, filter goal.Filter) ([]*goal.MonthlyGoal, error) {
	var goalModels []*models.MonthlyGoalModel

	query := r.db.WithContext(ctx).Where("year = ? AND month = ?", year, month)
	if filter.IdentityType != nil {
		query = query.Where("identity_type = ?", *filter.IdentityType)
	}
	if filter.Scope != nil {
		query = query.Where("scope = ?", *filter.Scope)
	}
	if filter.GroupID != nil {
		query = query.Where("group_id = ?", *filter.GroupID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	if err := query.Order("id ASC").Find(&goalModels).Error; err != nil {
		r.logger.Errorw("failed to list monthly goals", "year", year, "month", month, "error", err)
		return nil, fmt.Errorf("failed to list monthly goals: %w", err)
	}

	return r.mapper.ToEntities(goalModels), nil
}
