package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opsight/internal/application/directory/usecases"
	"opsight/internal/shared/logger"
	"opsight/internal/shared/utils"
)

// DirectoryHandler serves the read-only user and group listings.
type DirectoryHandler struct {
	listUsersUC  *usecases.ListUsersUseCase
	listGroupsUC *usecases.ListGroupsUseCase
	logger       logger.Interface
}

// NewDirectoryHandler creates a new directory handler.
func NewDirectoryHandler(
	listUsersUC *usecases.ListUsersUseCase,
	listGroupsUC *usecases.ListGroupsUseCase,
) *DirectoryHandler {
	return &DirectoryHandler{
		listUsersUC:  listUsersUC,
		listGroupsUC: listGroupsUC,
		logger:       logger.NewLogger(),
	}
}

// ListUsers handles GET /users
func (h *DirectoryHandler) ListUsers(c *gin.Context) {
	query := usecases.ListUsersQuery{
		IdentityType: optStringQuery(c, "identity_type"),
		GroupID:      optUintQuery(c, "group_id"),
	}

	result, err := h.listUsersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListGroups handles GET /groups
func (h *DirectoryHandler) ListGroups(c *gin.Context) {
	result, err := h.listGroupsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
