package usecases

import (
	"context"

	"opsight/internal/application/admin/dto"
	"opsight/internal/domain/metric"
	"opsight/internal/shared/errors"
	"opsight/internal/shared/logger"
	"opsight/internal/shared/utils"
)

// CreateAdminMetricUseCase adds an entry to the metric catalog.
type CreateAdminMetricUseCase struct {
	metricRepo metric.Repository
	logger     logger.Interface
}

// NewCreateAdminMetricUseCase creates a new CreateAdminMetricUseCase
func NewCreateAdminMetricUseCase(metricRepo metric.Repository, logger logger.Interface) *CreateAdminMetricUseCase {
	return &CreateAdminMetricUseCase{
		metricRepo: metricRepo,
		logger:     logger,
	}
}

// Execute validates and stores the catalog entry.
func (uc *CreateAdminMetricUseCase) Execute(ctx context.Context, input dto.AdminMetricInput) (*dto.AdminMetricResponse, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	m, err := metric.NewAdminMetric(
		input.Key,
		input.Name,
		input.Description,
		input.IdentityScope,
		input.Unit,
		input.TargetCount,
		input.TargetAmount,
		input.VisibleRoles,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.metricRepo.Create(ctx, m); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create admin metric", "key", input.Key, "error", err)
		return nil, errors.NewInternalError("failed to create admin metric", err.Error())
	}

	uc.logger.Infow("admin metric created", "id", m.ID(), "key", m.Key())
	return metricToResponse(m), nil
}

// ListAdminMetricsUseCase lists the metric catalog.
type ListAdminMetricsUseCase struct {
	metricRepo metric.Repository
	logger     logger.Interface
}

// NewListAdminMetricsUseCase creates a new ListAdminMetricsUseCase
func NewListAdminMetricsUseCase(metricRepo metric.Repository, logger logger.Interface) *ListAdminMetricsUseCase {
	return &ListAdminMetricsUseCase{
		metricRepo: metricRepo,
		logger:     logger,
	}
}

// Execute lists catalog entries, active ones only unless includeInactive.
func (uc *ListAdminMetricsUseCase) Execute(ctx context.Context, includeInactive bool) ([]*dto.AdminMetricResponse, error) {
	metrics, err := uc.metricRepo.List(ctx, !includeInactive)
	if err != nil {
		uc.logger.Errorw("failed to list admin metrics", "error", err)
		return nil, errors.NewInternalError("failed to list admin metrics", err.Error())
	}

	responses := make([]*dto.AdminMetricResponse, 0, len(metrics))
	for _, m := range metrics {
		responses = append(responses, metricToResponse(m))
	}
	return responses, nil
}

func metricToResponse(m *metric.AdminMetric) *dto.AdminMetricResponse {
	return &dto.AdminMetricResponse{
		ID:            m.ID(),
		Key:           m.Key(),
		Name:          m.Name(),
		Description:   m.Description(),
		IdentityScope: m.IdentityScope(),
		TargetCount:   m.TargetCount(),
		TargetAmount:  m.TargetAmount(),
		Unit:          m.Unit(),
		IsActive:      m.IsActive(),
		VisibleRoles:  m.VisibleRoles(),
	}
}
