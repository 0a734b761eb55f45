package mappers

import (
	"opsight/internal/domain/goal"
	"opsight/internal/infrastructure/persistence/models"
)

// MonthlyGoalMapper handles the conversion between domain entities and persistence models
type MonthlyGoalMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.MonthlyGoalModel) *goal.MonthlyGoal

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *goal.MonthlyGoal) *models.MonthlyGoalModel

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.MonthlyGoalModel) []*goal.MonthlyGoal
}

// MonthlyGoalMapperImpl is the concrete implementation of MonthlyGoalMapper
type MonthlyGoalMapperImpl struct{}

// NewMonthlyGoalMapper creates a new monthly goal mapper
func NewMonthlyGoalMapper() MonthlyGoalMapper {
	return &MonthlyGoalMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *MonthlyGoalMapperImpl) ToEntity(model *models.MonthlyGoalModel) *goal.MonthlyGoal {
	if model == nil {
		return nil
	}

	return goal.ReconstructMonthlyGoal(
		model.ID,
		model.IdentityType,
		model.Scope,
		model.Year,
		model.Month,
		model.GroupID,
		model.UserID,
		goal.Targets{
			AmountTarget:             model.AmountTarget,
			NewSignTargetAmount:      model.NewSignTargetAmount,
			ReferralTargetAmount:     model.ReferralTargetAmount,
			RenewalTotalTargetAmount: model.RenewalTotalTargetAmount,
			RenewalTargetCount:       model.RenewalTargetCount,
			UpgradeTargetCount:       model.UpgradeTargetCount,
		},
		model.Notes,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ToModel converts a domain entity to a persistence model
func (m *MonthlyGoalMapperImpl) ToModel(entity *goal.MonthlyGoal) *models.MonthlyGoalModel {
	if entity == nil {
		return nil
	}

	targets := entity.Targets()
	return &models.MonthlyGoalModel{
		ID:                       entity.ID(),
		IdentityType:             entity.IdentityType(),
		Scope:                    entity.Scope(),
		Year:                     entity.Year(),
		Month:                    entity.Month(),
		GroupID:                  entity.GroupID(),
		UserID:                   entity.UserID(),
		AmountTarget:             targets.AmountTarget,
		NewSignTargetAmount:      targets.NewSignTargetAmount,
		ReferralTargetAmount:     targets.ReferralTargetAmount,
		RenewalTotalTargetAmount: targets.RenewalTotalTargetAmount,
		RenewalTargetCount:       targets.RenewalTargetCount,
		UpgradeTargetCount:       targets.UpgradeTargetCount,
		Notes:                    entity.Notes(),
		CreatedAt:                entity.CreatedAt(),
		UpdatedAt:                entity.UpdatedAt(),
	}
}

// ToEntities converts multiple persistence models to domain entities
func (m *MonthlyGoalMapperImpl) ToEntities(goalModels []*models.MonthlyGoalModel) []*goal.MonthlyGoal {
	if goalModels == nil {
		return nil
	}

	entities := make([]*goal.MonthlyGoal, 0, len(goalModels))
	for _, model := range goalModels {
		if entity := m.ToEntity(model); entity != nil {
			entities = append(entities, entity)
		}
	}

	return entities
}
