package models

import (
	"time"

	"opsight/internal/shared/constants"
)

// DirectoryUserModel represents the database persistence model for directory
// users. AliasID carries a legacy identifier that historical activity rows
// may still reference.
type DirectoryUserModel struct {
	ID           uint    `gorm:"primarykey"`
	AliasID      *uint   `gorm:"uniqueIndex:idx_alias_id"`
	DisplayName  string  `gorm:"size:100;not null"`
	Avatar       string  `gorm:"size:255"`
	IdentityType string  `gorm:"size:10;not null;index:idx_identity_type"`
	GroupID      *uint   `gorm:"index:idx_group_id"`
	GroupName    string  `gorm:"size:100"`
	RoleScope    string  `gorm:"size:20;not null;default:''"`
	Status       string  `gorm:"size:20;not null;default:'active'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (DirectoryUserModel) TableName() string {
	return constants.TableDirectoryUsers
}
