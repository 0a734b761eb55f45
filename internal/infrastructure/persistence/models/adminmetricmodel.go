package models

import (
	"time"

	"gorm.io/datatypes"

	"opsight/internal/shared/constants"
)

// AdminMetricModel represents the database persistence model for the admin
// metric catalog. VisibleRoles is a JSON array of role labels.
type AdminMetricModel struct {
	ID            uint           `gorm:"primarykey"`
	Key           string         `gorm:"size:100;not null;uniqueIndex:idx_metric_key"`
	Name          string         `gorm:"size:200;not null"`
	Description   string         `gorm:"type:text"`
	IdentityScope string         `gorm:"size:20"`
	TargetCount   *int
	TargetAmount  *float64
	Unit          string         `gorm:"size:20"`
	IsActive      bool           `gorm:"not null;default:true"`
	VisibleRoles  datatypes.JSON `gorm:"type:json"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (AdminMetricModel) TableName() string {
	return constants.TableAdminMetrics
}
