package migration

import (
	"opsight/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every model managed by GORM AutoMigrate.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.DirectoryUserModel{},
		&models.ActivityRecordModel{},
		&models.MonthlyGoalModel{},
		&models.AdminMetricModel{},
	}
}
