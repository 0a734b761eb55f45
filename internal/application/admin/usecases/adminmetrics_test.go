package usecases

import (
	"context"
	"testing"

	"opsight/internal/application/admin/dto"
	"opsight/internal/domain/metric"
	"opsight/internal/shared/errors"
	"opsight/internal/shared/logger"
)

type fakeMetricRepository struct {
	metrics []*metric.AdminMetric
	nextID  uint
}

func (f *fakeMetricRepository) Create(ctx context.Context, m *metric.AdminMetric) error {
	for _, existing := range f.metrics {
		if existing.Key() == m.Key() {
			return errors.NewConflictError("metric key already exists", m.Key())
		}
	}
	f.nextID++
	m.SetID(f.nextID)
	f.metrics = append(f.metrics, m)
	return nil
}

func (f *fakeMetricRepository) List(ctx context.Context, activeOnly bool) ([]*metric.AdminMetric, error) {
	var out []*metric.AdminMetric
	for _, m := range f.metrics {
		if activeOnly && !m.IsActive() {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMetricRepository) GetByKey(ctx context.Context, key string) (*metric.AdminMetric, error) {
	for _, m := range f.metrics {
		if m.Key() == key {
			return m, nil
		}
	}
	return nil, errors.NewNotFoundError("metric not found", key)
}

func TestCreateAdminMetric(t *testing.T) {
	repo := &fakeMetricRepository{}
	uc := NewCreateAdminMetricUseCase(repo, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), dto.AdminMetricInput{
		Key:           "period_sales_amount",
		Name:          "Period Sales",
		IdentityScope: "CC",
		Unit:          "CNY",
		VisibleRoles:  []string{"manager", "director"},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if resp.ID == 0 {
		t.Error("response ID not assigned")
	}
	if !resp.IsActive {
		t.Error("new metric should be active")
	}
	if len(resp.VisibleRoles) != 2 {
		t.Errorf("VisibleRoles = %v, want 2 entries", resp.VisibleRoles)
	}
}

func TestCreateAdminMetricDuplicateKey(t *testing.T) {
	repo := &fakeMetricRepository{}
	uc := NewCreateAdminMetricUseCase(repo, logger.NewLogger())

	input := dto.AdminMetricInput{Key: "call_count", Name: "Calls"}
	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("first Execute() error = %v", err)
	}

	_, err := uc.Execute(context.Background(), input)
	if err == nil {
		t.Fatal("Execute() error = nil, want conflict error")
	}
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Type != errors.ErrorTypeConflict {
		t.Errorf("error = %v, want conflict error", err)
	}
}

func TestCreateAdminMetricValidation(t *testing.T) {
	repo := &fakeMetricRepository{}
	uc := NewCreateAdminMetricUseCase(repo, logger.NewLogger())

	tests := []struct {
		name  string
		input dto.AdminMetricInput
	}{
		{"missing key", dto.AdminMetricInput{Name: "No Key"}},
		{"missing name", dto.AdminMetricInput{Key: "no_name"}},
		{"bad identity scope", dto.AdminMetricInput{Key: "k", Name: "n", IdentityScope: "XX"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("Execute() error = nil, want validation error")
			}
			appErr := errors.GetAppError(err)
			if appErr == nil || appErr.Type != errors.ErrorTypeValidation {
				t.Errorf("error = %v, want validation error", err)
			}
		})
	}
}

func TestListAdminMetricsActiveFilter(t *testing.T) {
	repo := &fakeMetricRepository{}
	create := NewCreateAdminMetricUseCase(repo, logger.NewLogger())

	if _, err := create.Execute(context.Background(), dto.AdminMetricInput{Key: "a", Name: "A"}); err != nil {
		t.Fatalf("create error = %v", err)
	}
	if _, err := create.Execute(context.Background(), dto.AdminMetricInput{Key: "b", Name: "B"}); err != nil {
		t.Fatalf("create error = %v", err)
	}
	repo.metrics[1].Deactivate()

	uc := NewListAdminMetricsUseCase(repo, logger.NewLogger())

	active, err := uc.Execute(context.Background(), false)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(active) != 1 || active[0].Key != "a" {
		t.Errorf("active list = %v, want only 'a'", active)
	}

	all, err := uc.Execute(context.Background(), true)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d metrics with include_inactive, want 2", len(all))
	}
}
