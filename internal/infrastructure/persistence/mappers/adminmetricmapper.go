package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"opsight/internal/domain/metric"
	"opsight/internal/infrastructure/persistence/models"
)

// AdminMetricMapper handles the conversion between domain entities and persistence models
type AdminMetricMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.AdminMetricModel) (*metric.AdminMetric, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *metric.AdminMetric) (*models.AdminMetricModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.AdminMetricModel) ([]*metric.AdminMetric, error)
}

// AdminMetricMapperImpl is the concrete implementation of AdminMetricMapper
type AdminMetricMapperImpl struct{}

// NewAdminMetricMapper creates a new admin metric mapper
func NewAdminMetricMapper() AdminMetricMapper {
	return &AdminMetricMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *AdminMetricMapperImpl) ToEntity(model *models.AdminMetricModel) (*metric.AdminMetric, error) {
	if model == nil {
		return nil, nil
	}

	var roles []string
	if len(model.VisibleRoles) > 0 {
		if err := json.Unmarshal(model.VisibleRoles, &roles); err != nil {
			return nil, fmt.Errorf("failed to decode visible roles for metric %q: %w", model.Key, err)
		}
	}

	return metric.ReconstructAdminMetric(
		model.ID,
		model.Key,
		model.Name,
		model.Description,
		model.IdentityScope,
		model.Unit,
		model.TargetCount,
		model.TargetAmount,
		model.IsActive,
		roles,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

// ToModel converts a domain entity to a persistence model
func (m *AdminMetricMapperImpl) ToModel(entity *metric.AdminMetric) (*models.AdminMetricModel, error) {
	if entity == nil {
		return nil, nil
	}

	var roles datatypes.JSON
	if entity.VisibleRoles() != nil {
		encoded, err := json.Marshal(entity.VisibleRoles())
		if err != nil {
			return nil, fmt.Errorf("failed to encode visible roles for metric %q: %w", entity.Key(), err)
		}
		roles = datatypes.JSON(encoded)
	}

	return &models.AdminMetricModel{
		ID:            entity.ID(),
		Key:           entity.Key(),
		Name:          entity.Name(),
		Description:   entity.Description(),
		IdentityScope: entity.IdentityScope(),
		TargetCount:   entity.TargetCount(),
		TargetAmount:  entity.TargetAmount(),
		Unit:          entity.Unit(),
		IsActive:      entity.IsActive(),
		VisibleRoles:  roles,
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *AdminMetricMapperImpl) ToEntities(metricModels []*models.AdminMetricModel) ([]*metric.AdminMetric, error) {
	if metricModels == nil {
		return nil, nil
	}

	entities := make([]*metric.AdminMetric, 0, len(metricModels))
	for _, model := range metricModels {
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
