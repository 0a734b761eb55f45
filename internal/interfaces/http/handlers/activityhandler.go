package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opsight/internal/application/activity/dto"
	"opsight/internal/application/activity/usecases"
	"opsight/internal/shared/logger"
	"opsight/internal/shared/utils"
)

// ActivityHandler serves the record ingestion endpoint.
type ActivityHandler struct {
	ingestRecordsUC *usecases.IngestRecordsUseCase
	logger          logger.Interface
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(ingestRecordsUC *usecases.IngestRecordsUseCase) *ActivityHandler {
	return &ActivityHandler{
		ingestRecordsUC: ingestRecordsUC,
		logger:          logger.NewLogger(),
	}
}

// IngestRecords handles POST /activity/records
func (h *ActivityHandler) IngestRecords(c *gin.Context) {
	var req dto.IngestRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for record ingest", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.ingestRecordsUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Activity records ingested successfully", result)
}
