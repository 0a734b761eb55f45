package metric

import (
	"time"

	"opsight/internal/shared/errors"
)

// AdminMetric is a catalog entry describing a metric the dashboard can
// rank and chart, with optional identity scoping and visibility roles.
type AdminMetric struct {
	id            uint
	key           string
	name          string
	description   string
	identityScope string
	targetCount   *int
	targetAmount  *float64
	unit          string
	isActive      bool
	visibleRoles  []string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewAdminMetric creates a catalog entry. Key and name are required.
func NewAdminMetric(key, name, description, identityScope, unit string, targetCount *int, targetAmount *float64, visibleRoles []string) (*AdminMetric, error) {
	if key == "" {
		return nil, errors.NewValidationError("metric key is required")
	}
	if name == "" {
		return nil, errors.NewValidationError("metric name is required")
	}
	now := time.Now()
	return &AdminMetric{
		key:           key,
		name:          name,
		description:   description,
		identityScope: identityScope,
		targetCount:   targetCount,
		targetAmount:  targetAmount,
		unit:          unit,
		isActive:      true,
		visibleRoles:  visibleRoles,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructAdminMetric rebuilds an entry from persistence without validation.
func ReconstructAdminMetric(id uint, key, name, description, identityScope, unit string, targetCount *int, targetAmount *float64, isActive bool, visibleRoles []string, createdAt, updatedAt time.Time) *AdminMetric {
	return &AdminMetric{
		id:            id,
		key:           key,
		name:          name,
		description:   description,
		identityScope: identityScope,
		targetCount:   targetCount,
		targetAmount:  targetAmount,
		unit:          unit,
		isActive:      isActive,
		visibleRoles:  visibleRoles,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (m *AdminMetric) ID() uint               { return m.id }
func (m *AdminMetric) Key() string            { return m.key }
func (m *AdminMetric) Name() string           { return m.name }
func (m *AdminMetric) Description() string    { return m.description }
func (m *AdminMetric) IdentityScope() string  { return m.identityScope }
func (m *AdminMetric) TargetCount() *int      { return m.targetCount }
func (m *AdminMetric) TargetAmount() *float64 { return m.targetAmount }
func (m *AdminMetric) Unit() string           { return m.unit }
func (m *AdminMetric) IsActive() bool         { return m.isActive }
func (m *AdminMetric) VisibleRoles() []string { return m.visibleRoles }
func (m *AdminMetric) CreatedAt() time.Time   { return m.createdAt }
func (m *AdminMetric) UpdatedAt() time.Time   { return m.updatedAt }

// SetID assigns the persistence ID after creation.
func (m *AdminMetric) SetID(id uint) { m.id = id }

// Deactivate hides the metric from the catalog without deleting it.
func (m *AdminMetric) Deactivate() {
	m.isActive = false
	m.updatedAt = time.Now()
}
