package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"opsight/internal/domain/metric"
	"opsight/internal/infrastructure/persistence/mappers"
	"opsight/internal/infrastructure/persistence/models"
	"opsight/internal/shared/errors"
	"opsight/internal/shared/logger"
)

// AdminMetricRepositoryImpl implements the metric.Repository interface
type AdminMetricRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AdminMetricMapper
	logger logger.Interface
}

// NewAdminMetricRepository creates a new admin metric repository instance
func NewAdminMetricRepository(db *gorm.DB, logger logger.Interface) metric.Repository {
	return &AdminMetricRepositoryImpl{
		db:     db,
		mapper: mappers.NewAdminMetricMapper(),
		logger: logger,
	}
}

// Create stores a new catalog entry and assigns its ID.
func (r *AdminMetricRepositoryImpl) Create(ctx context.Context, m *metric.AdminMetric) error {
	model, err := r.mapper.ToModel(m)
	if err != nil {
		r.logger.Errorw("failed to map admin metric entity to model", "error", err)
		return fmt.Errorf("failed to map admin metric entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError(fmt.Sprintf("metric with key %q already exists", m.Key()))
		}
		r.logger.Errorw("failed to create admin metric", "key", model.Key, "error", err)
		return fmt.Errorf("failed to create admin metric: %w", err)
	}

	m.SetID(model.ID)
	r.logger.Infow("admin metric created successfully", "id", model.ID, "key", model.Key)
	return nil
}

// List returns catalog entries ordered by ID.
func (r *AdminMetricRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]*metric.AdminMetric, error) {
	var metricModels []*models.AdminMetricModel

	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Order("id ASC").Find(&metricModels).Error; err != nil {
		r.logger.Errorw("failed to list admin metrics", "error", err)
		return nil, fmt.Errorf("failed to list admin metrics: %w", err)
	}

	return r.mapper.ToEntities(metricModels)
}

// GetByKey returns the entry for a key.
func (r *AdminMetricRepositoryImpl) GetByKey(ctx context.Context, key string) (*metric.AdminMetric, error) {
	var model models.AdminMetricModel

	err := r.db.WithContext(ctx).Where("`key` = ?", key).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("metric with key %q not found", key))
		}
		r.logger.Errorw("failed to get admin metric by key", "key", key, "error", err)
		return nil, fmt.Errorf("failed to get admin metric: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
