package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opsight/internal/application/goal/dto"
	"opsight/internal/application/goal/usecases"
	"opsight/internal/shared/logger"
	"opsight/internal/shared/utils"
)

// GoalHandler serves the monthly goal endpoints.
type GoalHandler struct {
	upsertGoalUC *usecases.UpsertMonthlyGoalUseCase
	listGoalsUC  *usecases.ListMonthlyGoalsUseCase
	logger       logger.Interface
}

// NewGoalHandler creates a new goal handler.
func NewGoalHandler(
	upsertGoalUC *usecases.UpsertMonthlyGoalUseCase,
	listGoalsUC *usecases.ListMonthlyGoalsUseCase,
) *GoalHandler {
	return &GoalHandler{
		upsertGoalUC: upsertGoalUC,
		listGoalsUC:  listGoalsUC,
		logger:       logger.NewLogger(),
	}
}

// ListMonthlyGoals handles GET /goals/monthly
func (h *GoalHandler) ListMonthlyGoals(c *gin.Context) {
	query := usecases.ListMonthlyGoalsQuery{
		Year:         optIntQuery(c, "year"),
		Month:        optIntQuery(c, "month"),
		IdentityType: optStringQuery(c, "identity_type"),
		GroupID:      optUintQuery(c, "group_id"),
		UserID:       optUintQuery(c, "user_id"),
	}

	result, err := h.listGoalsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpsertMonthlyGoal handles POST /goals/monthly
func (h *GoalHandler) UpsertMonthlyGoal(c *gin.Context) {
	var req dto.MonthlyGoalInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for goal upsert", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.upsertGoalUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Monthly goal saved successfully", result)
}
