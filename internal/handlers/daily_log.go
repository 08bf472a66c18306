package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/wellness/backend/internal/apierror"
	"github.com/JonnyWalker81/wellness/backend/internal/models"
	"github.com/JonnyWalker81/wellness/backend/internal/service"
)

type DailyLogHandler struct {
	logService service.DailyLogService
}

// NewDailyLogHandler creates a new daily log handler
func NewDailyLogHandler(logService service.DailyLogService) *DailyLogHandler {
	return &DailyLogHandler{logService: logService}
}

// CreateLog handles POST /api/v1/daily-logs
func (h *DailyLogHandler) CreateLog(c *gin.Context) {
	var req models.CreateDailyLogRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.LogDate.IsZero() {
		apierror.WriteProblem(c, apierror.NewInvalidDateError(apierror.GetRequestID(c), "log_date", ""))
		return
	}

	log, err := h.logService.CreateLog(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err, "Daily log", req.ID)
		return
	}

	c.JSON(http.StatusCreated, log)
}

// ListLogs handles GET /api/v1/daily-logs?from=&to=
func (h *DailyLogHandler) ListLogs(c *gin.Context) {
	opts, ok := dateRange(c)
	if !ok {
		return
	}

	logs, err := h.logService.ListLogs(c.Request.Context(), opts)
	if err != nil {
		writeServiceError(c, err, "Daily logs", "")
		return
	}

	c.JSON(http.StatusOK, logs)
}

// GetLog handles GET /api/v1/daily-logs/:id
func (h *DailyLogHandler) GetLog(c *gin.Context) {
	id := c.Param("id")
	if !validID(c, id) {
		return
	}

	log, err := h.logService.GetLog(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "Daily log", id)
		return
	}

	c.JSON(http.StatusOK, log)
}

// UpdateLog handles PUT /api/v1/daily-logs/:id
func (h *DailyLogHandler) UpdateLog(c *gin.Context) {
	id := c.Param("id")
	if !validID(c, id) {
		return
	}

	var req models.UpdateDailyLogRequest
	if !bindJSON(c, &req) {
		return
	}

	log, err := h.logService.UpdateLog(c.Request.Context(), id, &req)
	if err != nil {
		writeServiceError(c, err, "Daily log", id)
		return
	}

	c.JSON(http.StatusOK, log)
}

// DeleteLog handles DELETE /api/v1/daily-logs/:id
func (h *DailyLogHandler) DeleteLog(c *gin.Context) {
	id := c.Param("id")
	if !validID(c, id) {
		return
	}

	if err := h.logService.DeleteLog(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "Daily log", id)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAlerts handles GET /api/v1/daily-logs/:id/alerts
func (h *DailyLogHandler) GetAlerts(c *gin.Context) {
	id := c.Param("id")
	if !validID(c, id) {
		return
	}

	alerts, err := h.logService.GetAlerts(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "Daily log", id)
		return
	}

	c.JSON(http.StatusOK, alerts)
}
