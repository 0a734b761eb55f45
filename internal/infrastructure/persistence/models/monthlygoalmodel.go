package models

import (
	"time"

	"opsight/internal/shared/constants"
)

// MonthlyGoalModel represents the database persistence model for monthly
// goals. A goal is unique per identity, scope, month and scope target.
type MonthlyGoalModel struct {
	ID                       uint   `gorm:"primarykey"`
	IdentityType             string `gorm:"size:10;not null;uniqueIndex:idx_goal_key"`
	Scope                    string `gorm:"size:10;not null;uniqueIndex:idx_goal_key"`
	Year                     int    `gorm:"not null;uniqueIndex:idx_goal_key"`
	Month                    int    `gorm:"not null;uniqueIndex:idx_goal_key"`
	GroupID                  *uint  `gorm:"uniqueIndex:idx_goal_key"`
	UserID                   *uint  `gorm:"uniqueIndex:idx_goal_key"`
	AmountTarget             float64 `gorm:"not null;default:0"`
	NewSignTargetAmount      float64 `gorm:"not null;default:0"`
	ReferralTargetAmount     float64 `gorm:"not null;default:0"`
	RenewalTotalTargetAmount float64 `gorm:"not null;default:0"`
	RenewalTargetCount       int     `gorm:"not null;default:0"`
	UpgradeTargetCount       int     `gorm:"not null;default:0"`
	Notes                    string  `gorm:"type:text"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// TableName specifies the table name for GORM
func (MonthlyGoalModel) TableName() string {
	return constants.TableMonthlyGoals
}
