package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"opsight/internal/domain/directory"
	"opsight/internal/infrastructure/persistence/mappers"
	"opsight/internal/infrastructure/persistence/models"
	"opsight/internal/shared/logger"
)

// UserDirectoryRepositoryImpl implements the directory.Repository interface
type UserDirectoryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DirectoryUserMapper
	logger logger.Interface
}

// NewUserDirectoryRepository creates a new user directory repository instance
func NewUserDirectoryRepository(db *gorm.DB, logger logger.Interface) directory.Repository {
	return &UserDirectoryRepositoryImpl{
		db:     db,
		mapper: mappers.NewDirectoryUserMapper(),
		logger: logger,
	}
}

// ListByFilter returns directory entries matching all given predicates,
// ordered by ID.
func (r *UserDirectoryRepositoryImpl) ListByFilter(ctx context.Context, filter directory.Filter) ([]*directory.Entry, error) {
	var userModels []*models.DirectoryUserModel

	query := r.db.WithContext(ctx)
	if filter.IdentityType != nil {
		query = query.Where("identity_type = ?", *filter.IdentityType)
	}
	if filter.GroupID != nil {
		query = query.Where("group_id = ?", *filter.GroupID)
	}
	if filter.RoleScope != nil {
		query = query.Where("role_scope = ?", *filter.RoleScope)
	}
	if filter.UserID != nil {
		query = query.Where("id = ? OR alias_id = ?", *filter.UserID, *filter.UserID)
	}

	if err := query.Order("id ASC").Find(&userModels).Error; err != nil {
		r.logger.Errorw("failed to list directory users", "error", err)
		return nil, fmt.Errorf("failed to list directory users: %w", err)
	}

	return r.mapper.ToEntities(userModels)
}

// GetByIDs resolves entries by primary ID first, then by alias ID. The map
// is keyed by the requested ID; IDs with no match are absent.
func (r *UserDirectoryRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) (map[uint]*directory.Entry, error) {
	result := make(map[uint]*directory.Entry, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var userModels []*models.DirectoryUserModel
	err := r.db.WithContext(ctx).
		Where("id IN ? OR alias_id IN ?", ids, ids).
		Find(&userModels).Error
	if err != nil {
		r.logger.Errorw("failed to get directory users by IDs", "count", len(ids), "error", err)
		return nil, fmt.Errorf("failed to get directory users by IDs: %w", err)
	}

	byPrimary := make(map[uint]*directory.Entry, len(userModels))
	byAlias := make(map[uint]*directory.Entry)
	for _, model := range userModels {
		entry, err := r.mapper.ToEntity(model)
		if err != nil {
			return nil, err
		}
		byPrimary[entry.ID()] = entry
		if entry.AliasID() != nil {
			byAlias[*entry.AliasID()] = entry
		}
	}

	for _, id := range ids {
		if entry, ok := byPrimary[id]; ok {
			result[id] = entry
			continue
		}
		if entry, ok := byAlias[id]; ok {
			result[id] = entry
		}
	}

	return result, nil
}

// AliasIndex returns alias ID to primary ID for every entry with an alias.
func (r *UserDirectoryRepositoryImpl) AliasIndex(ctx context.Context) (map[uint]uint, error) {
	type aliasRow struct {
		ID      uint
		AliasID uint
	}

	var rows []aliasRow
	err := r.db.WithContext(ctx).
		Model(&models.DirectoryUserModel{}).
		Select("id", "alias_id").
		Where("alias_id IS NOT NULL").
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to load alias index", "error", err)
		return nil, fmt.Errorf("failed to load alias index: %w", err)
	}

	index := make(map[uint]uint, len(rows))
	for _, row := range rows {
		index[row.AliasID] = row.ID
	}
	return index, nil
}

// ListGroups returns the distinct groups with member counts, ordered by
// group ID. Users without a group are not counted.
func (r *UserDirectoryRepositoryImpl) ListGroups(ctx context.Context) ([]directory.Group, error) {
	var groups []directory.Group
	err := r.db.WithContext(ctx).
		Model(&models.DirectoryUserModel{}).
		Select("group_id AS id", "MAX(group_name) AS name", "COUNT(*) AS member_count").
		Where("group_id IS NOT NULL").
		Group("group_id").
		Order("group_id ASC").
		Find(&groups).Error
	if err != nil {
		r.logger.Errorw("failed to list directory groups", "error", err)
		return nil, fmt.Errorf("failed to list directory groups: %w", err)
	}

	return groups, nil
}
