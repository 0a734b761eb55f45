package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opsight/internal/application/analytics/usecases"
	"opsight/internal/shared/logger"
	"opsight/internal/shared/utils"
)

// AnalyticsHandler serves the four analytics read endpoints.
type AnalyticsHandler struct {
	getSummaryUC     *usecases.GetSummaryUseCase
	getTrendUC       *usecases.GetTrendUseCase
	getDataMetricsUC *usecases.GetDataMetricsUseCase
	getRankingUC     *usecases.GetRankingUseCase
	logger           logger.Interface
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(
	getSummaryUC *usecases.GetSummaryUseCase,
	getTrendUC *usecases.GetTrendUseCase,
	getDataMetricsUC *usecases.GetDataMetricsUseCase,
	getRankingUC *usecases.GetRankingUseCase,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		getSummaryUC:     getSummaryUC,
		getTrendUC:       getTrendUC,
		getDataMetricsUC: getDataMetricsUC,
		getRankingUC:     getRankingUC,
		logger:           logger.NewLogger(),
	}
}

// GetSummary handles GET /analytics/summary
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	query := usecases.GetSummaryQuery{
		IdentityType: optStringQuery(c, "identity_type"),
		GroupID:      optUintQuery(c, "group_id"),
		UserID:       optUintQuery(c, "user_id"),
		Year:         optIntQuery(c, "year"),
		Month:        optIntQuery(c, "month"),
	}

	result, err := h.getSummaryUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTrend handles GET /analytics/trend
func (h *AnalyticsHandler) GetTrend(c *gin.Context) {
	query := usecases.GetTrendQuery{
		StartDate:    optDateQuery(c, "start_date"),
		EndDate:      optDateQuery(c, "end_date"),
		IdentityType: optStringQuery(c, "identity_type"),
		GroupID:      optUintQuery(c, "group_id"),
		UserID:       optUintQuery(c, "user_id"),
		Metrics:      listQuery(c, "metrics"),
	}

	result, err := h.getTrendUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetData handles GET /analytics/data
func (h *AnalyticsHandler) GetData(c *gin.Context) {
	query := usecases.GetDataMetricsQuery{
		StartDate: optDateQuery(c, "start_date"),
		EndDate:   optDateQuery(c, "end_date"),
		GroupID:   optUintQuery(c, "group_id"),
		UserID:    optUintQuery(c, "user_id"),
	}

	result, err := h.getDataMetricsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetRanking handles GET /analytics/ranking
func (h *AnalyticsHandler) GetRanking(c *gin.Context) {
	query := usecases.GetRankingQuery{
		MetricKey:    c.Query("metric_key"),
		StartDate:    optDateQuery(c, "start_date"),
		EndDate:      optDateQuery(c, "end_date"),
		IdentityType: optStringQuery(c, "identity_type"),
		GroupID:      optUintQuery(c, "group_id"),
		RoleScope:    optStringQuery(c, "role_scope"),
		UserID:       optUintQuery(c, "user_id"),
	}

	result, err := h.getRankingUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
