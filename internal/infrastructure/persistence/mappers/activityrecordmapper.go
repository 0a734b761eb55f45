package mappers

import (
	"fmt"

	"opsight/internal/domain/activity"
	"opsight/internal/infrastructure/persistence/models"
)

// ActivityRecordMapper handles the conversion between domain entities and persistence models
type ActivityRecordMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.ActivityRecordModel) (*activity.Record, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *activity.Record) (*models.ActivityRecordModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.ActivityRecordModel) ([]*activity.Record, error)

	// ToModels converts multiple domain entities to persistence models
	ToModels(entities []*activity.Record) ([]*models.ActivityRecordModel, error)
}

// ActivityRecordMapperImpl is the concrete implementation of ActivityRecordMapper
type ActivityRecordMapperImpl struct{}

// NewActivityRecordMapper creates a new activity record mapper
func NewActivityRecordMapper() ActivityRecordMapper {
	return &ActivityRecordMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *ActivityRecordMapperImpl) ToEntity(model *models.ActivityRecordModel) (*activity.Record, error) {
	if model == nil {
		return nil, nil
	}

	record, err := activity.ReconstructRecord(
		model.ID,
		model.OwnerID,
		model.RecordDate,
		sumRecordFromModel(model),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct activity record entity: %w", err)
	}

	return record, nil
}

// ToModel converts a domain entity to a persistence model
func (m *ActivityRecordMapperImpl) ToModel(entity *activity.Record) (*models.ActivityRecordModel, error) {
	if entity == nil {
		return nil, nil
	}

	totals := entity.Totals()
	model := &models.ActivityRecordModel{
		ID:                 entity.ID(),
		OwnerID:            entity.OwnerID(),
		RecordDate:         entity.RecordDate(),
		NewSignAmount:      totals.NewSignAmount,
		NewSignCount:       totals.NewSignCount,
		ReferralAmount:     totals.ReferralAmount,
		ReferralCount:      totals.ReferralCount,
		RenewalAmount:      totals.RenewalAmount,
		RenewalCount:       totals.RenewalCount,
		UpgradeAmount:      totals.UpgradeAmount,
		UpgradeCount:       totals.UpgradeCount,
		CallCount:          totals.CallCount,
		TaskTotalCount:     totals.TaskTotalCount,
		TaskCompletedCount: totals.TaskCompletedCount,
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}

	return model, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *ActivityRecordMapperImpl) ToEntities(recordModels []*models.ActivityRecordModel) ([]*activity.Record, error) {
	if recordModels == nil {
		return nil, nil
	}

	entities := make([]*activity.Record, 0, len(recordModels))
	for _, model := range recordModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}

	return entities, nil
}

// ToModels converts multiple domain entities to persistence models
func (m *ActivityRecordMapperImpl) ToModels(entities []*activity.Record) ([]*models.ActivityRecordModel, error) {
	if entities == nil {
		return nil, nil
	}

	recordModels := make([]*models.ActivityRecordModel, 0, len(entities))
	for _, entity := range entities {
		model, err := m.ToModel(entity)
		if err != nil {
			return nil, err
		}
		if model != nil {
			recordModels = append(recordModels, model)
		}
	}

	return recordModels, nil
}

func sumRecordFromModel(model *models.ActivityRecordModel) activity.SumRecord {
	return activity.SumRecord{
		NewSignAmount:      model.NewSignAmount,
		NewSignCount:       model.NewSignCount,
		ReferralAmount:     model.ReferralAmount,
		ReferralCount:      model.ReferralCount,
		RenewalAmount:      model.RenewalAmount,
		RenewalCount:       model.RenewalCount,
		UpgradeAmount:      model.UpgradeAmount,
		UpgradeCount:       model.UpgradeCount,
		CallCount:          model.CallCount,
		TaskTotalCount:     model.TaskTotalCount,
		TaskCompletedCount: model.TaskCompletedCount,
	}
}
