package mappers

import (
	"fmt"

	"opsight/internal/domain/directory"
	"opsight/internal/infrastructure/persistence/models"
)

// DirectoryUserMapper handles the conversion between domain entities and persistence models
type DirectoryUserMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.DirectoryUserModel) (*directory.Entry, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *directory.Entry) (*models.DirectoryUserModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.DirectoryUserModel) ([]*directory.Entry, error)
}

// DirectoryUserMapperImpl is the concrete implementation of DirectoryUserMapper
type DirectoryUserMapperImpl struct{}

// NewDirectoryUserMapper creates a new directory user mapper
func NewDirectoryUserMapper() DirectoryUserMapper {
	return &DirectoryUserMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *DirectoryUserMapperImpl) ToEntity(model *models.DirectoryUserModel) (*directory.Entry, error) {
	if model == nil {
		return nil, nil
	}

	entry, err := directory.ReconstructEntry(
		model.ID,
		model.AliasID,
		model.DisplayName,
		model.Avatar,
		model.IdentityType,
		model.GroupID,
		model.RoleScope,
		model.Status,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct directory entry: %w", err)
	}

	return entry, nil
}

// ToModel converts a domain entity to a persistence model
func (m *DirectoryUserMapperImpl) ToModel(entity *directory.Entry) (*models.DirectoryUserModel, error) {
	if entity == nil {
		return nil, nil
	}

	model := &models.DirectoryUserModel{
		ID:           entity.ID(),
		AliasID:      entity.AliasID(),
		DisplayName:  entity.DisplayName(),
		Avatar:       entity.Avatar(),
		IdentityType: entity.IdentityType(),
		GroupID:      entity.GroupID(),
		RoleScope:    entity.RoleScope(),
		Status:       entity.Status(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}

	return model, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *DirectoryUserMapperImpl) ToEntities(userModels []*models.DirectoryUserModel) ([]*directory.Entry, error) {
	if userModels == nil {
		return nil, nil
	}

	entities := make([]*directory.Entry, 0, len(userModels))
	for _, model := range userModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}

	return entities, nil
}
