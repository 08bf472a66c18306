package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/wellness/backend/internal/apierror"
	"github.com/JonnyWalker81/wellness/backend/internal/logger"
	"github.com/JonnyWalker81/wellness/backend/internal/models"
	"github.com/JonnyWalker81/wellness/backend/internal/report"
	"github.com/JonnyWalker81/wellness/backend/internal/service"
)

type ReportHandler struct {
	reportService service.ReportService
	defaultPeriod models.ReportPeriod
}

// NewReportHandler creates a report handler; defaultPeriod applies when
// the request names none.
func NewReportHandler(reportService service.ReportService, defaultPeriod models.ReportPeriod) *ReportHandler {
	if !defaultPeriod.Valid() {
		defaultPeriod = models.ReportPeriodWeek
	}
	return &ReportHandler{reportService: reportService, defaultPeriod: defaultPeriod}
}

// GetReport handles GET /api/v1/reports?period=week|month&format=json|text|markdown|html
// JSON (the default) returns the report data; the other formats are
// served as a download.
func (h *ReportHandler) GetReport(c *gin.Context) {
	period := models.ReportPeriod(strings.ToLower(c.DefaultQuery("period", string(h.defaultPeriod))))

	rawFormat := strings.ToLower(c.Query("format"))
	asJSON := rawFormat == "" || rawFormat == "json"

	var format report.Format
	if !asJSON {
		var err error
		if format, err = report.ParseFormat(rawFormat); err != nil {
			apierror.WriteProblem(c, apierror.NewBadRequestError(apierror.GetRequestID(c), err.Error(),
				"Format must be json, text, markdown or html"))
			return
		}
	}

	r, err := h.reportService.BuildReport(c.Request.Context(), period)
	if err != nil {
		writeServiceError(c, err, "Report data", "")
		return
	}

	if asJSON {
		c.JSON(http.StatusOK, r)
		return
	}

	body, err := report.Render(r, format)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to render report", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", report.Filename(r, format)))
	c.Data(http.StatusOK, format.ContentType(), body)
}
