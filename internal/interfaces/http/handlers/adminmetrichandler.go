package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opsight/internal/application/admin/dto"
	"opsight/internal/application/admin/usecases"
	"opsight/internal/shared/logger"
	"opsight/internal/shared/utils"
)

// AdminMetricHandler serves the metric catalog endpoints.
type AdminMetricHandler struct {
	createMetricUC *usecases.CreateAdminMetricUseCase
	listMetricsUC  *usecases.ListAdminMetricsUseCase
	logger         logger.Interface
}

// NewAdminMetricHandler creates a new admin metric handler.
func NewAdminMetricHandler(
	createMetricUC *usecases.CreateAdminMetricUseCase,
	listMetricsUC *usecases.ListAdminMetricsUseCase,
) *AdminMetricHandler {
	return &AdminMetricHandler{
		createMetricUC: createMetricUC,
		listMetricsUC:  listMetricsUC,
		logger:         logger.NewLogger(),
	}
}

// ListMetrics handles GET /admin/metrics
func (h *AdminMetricHandler) ListMetrics(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	result, err := h.listMetricsUC.Execute(c.Request.Context(), includeInactive)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateMetric handles POST /admin/metrics
func (h *AdminMetricHandler) CreateMetric(c *gin.Context) {
	var req dto.AdminMetricInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for metric create", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createMetricUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Metric created successfully")
}
