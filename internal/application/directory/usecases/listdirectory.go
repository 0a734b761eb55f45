package usecases

import (
	"context"

	"opsight/internal/application/directory/dto"
	"opsight/internal/domain/directory"
	"opsight/internal/shared/errors"
	"opsight/internal/shared/logger"
)

// ListUsersQuery represents the directory listing filters.
type ListUsersQuery struct {
	IdentityType *string
	GroupID      *uint
}

// ListUsersUseCase lists directory users, read-only.
type ListUsersUseCase struct {
	directoryRepo directory.Repository
	logger        logger.Interface
}

// NewListUsersUseCase creates a new ListUsersUseCase
func NewListUsersUseCase(directoryRepo directory.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		directoryRepo: directoryRepo,
		logger:        logger,
	}
}

// Execute lists users matching the filters.
func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) ([]*dto.UserResponse, error) {
	entries, err := uc.directoryRepo.ListByFilter(ctx, directory.Filter{
		IdentityType: query.IdentityType,
		GroupID:      query.GroupID,
	})
	if err != nil {
		uc.logger.Errorw("failed to list directory users", "error", err)
		return nil, errors.NewInternalError("failed to list directory users", err.Error())
	}

	responses := make([]*dto.UserResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, &dto.UserResponse{
			ID:           e.ID(),
			AliasID:      e.AliasID(),
			DisplayName:  e.DisplayName(),
			Avatar:       e.Avatar(),
			IdentityType: e.IdentityType(),
			GroupID:      e.GroupID(),
			RoleScope:    e.RoleScope(),
			Status:       e.Status(),
		})
	}
	return responses, nil
}

// ListGroupsUseCase lists the distinct directory groups.
type ListGroupsUseCase struct {
	directoryRepo directory.Repository
	logger        logger.Interface
}

// NewListGroupsUseCase creates a new ListGroupsUseCase
func NewListGroupsUseCase(directoryRepo directory.Repository, logger logger.Interface) *ListGroupsUseCase {
	return &ListGroupsUseCase{
		directoryRepo: directoryRepo,
		logger:        logger,
	}
}

// Execute lists the groups with member counts.
func (uc *ListGroupsUseCase) Execute(ctx context.Context) ([]*dto.GroupResponse, error) {
	groups, err := uc.directoryRepo.ListGroups(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list directory groups", "error", err)
		return nil, errors.NewInternalError("failed to list directory groups", err.Error())
	}

	responses := make([]*dto.GroupResponse, 0, len(groups))
	for _, g := range groups {
		responses = append(responses, &dto.GroupResponse{
			ID:          g.ID,
			Name:        g.Name,
			MemberCount: g.MemberCount,
		})
	}
	return responses, nil
}
