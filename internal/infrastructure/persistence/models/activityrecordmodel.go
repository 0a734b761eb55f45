package models

import (
	"time"

	"opsight/internal/shared/constants"
)

// ActivityRecordModel represents the database persistence model for daily
// activity records. One row per owner per business day; repeated ingests
// for the same day accumulate into the existing row.
type ActivityRecordModel struct {
	ID                 uint      `gorm:"primarykey"`
	OwnerID            uint      `gorm:"not null;uniqueIndex:idx_owner_record_date;index:idx_owner"`
	RecordDate         time.Time `gorm:"not null;uniqueIndex:idx_owner_record_date;index:idx_record_date"`
	NewSignAmount      float64   `gorm:"not null;default:0"`
	NewSignCount       int64     `gorm:"not null;default:0"`
	ReferralAmount     float64   `gorm:"not null;default:0"`
	ReferralCount      int64     `gorm:"not null;default:0"`
	RenewalAmount      float64   `gorm:"not null;default:0"`
	RenewalCount       int64     `gorm:"not null;default:0"`
	UpgradeAmount      float64   `gorm:"not null;default:0"`
	UpgradeCount       int64     `gorm:"not null;default:0"`
	CallCount          int64     `gorm:"not null;default:0"`
	TaskTotalCount     int64     `gorm:"not null;default:0"`
	TaskCompletedCount int64     `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (ActivityRecordModel) TableName() string {
	return constants.TableActivityRecords
}
