package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/wellness/backend/internal/analysis"
	"github.com/JonnyWalker81/wellness/backend/internal/service"
)

// AnalyticsHandler serves derived statistics. Every response is
// recomputed from the stored logs.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetDashboard handles GET /api/v1/analytics/dashboard
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.analyticsService.GetDashboard(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "Dashboard", "")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// GetStatistics handles GET /api/v1/analytics/statistics?from=&to=
func (h *AnalyticsHandler) GetStatistics(c *gin.Context) {
	opts, ok := dateRange(c)
	if !ok {
		return
	}

	stats, err := h.analyticsService.GetStatistics(c.Request.Context(), opts)
	if err != nil {
		writeServiceError(c, err, "Statistics", "")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetTrend handles GET /api/v1/analytics/trends?dimension=&window=
func (h *AnalyticsHandler) GetTrend(c *gin.Context) {
	dimension := c.DefaultQuery("dimension", "mood")
	window, ok := intQuery(c, "window", analysis.TrendWindowShort)
	if !ok {
		return
	}

	series, err := h.analyticsService.GetTrend(c.Request.Context(), dimension, window)
	if err != nil {
		writeServiceError(c, err, "Trend", "")
		return
	}

	c.JSON(http.StatusOK, series)
}

// GetCorrelations handles GET /api/v1/analytics/correlations
func (h *AnalyticsHandler) GetCorrelations(c *gin.Context) {
	correlations, err := h.analyticsService.GetCorrelations(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "Correlations", "")
		return
	}

	c.JSON(http.StatusOK, correlations)
}

// GetInsights handles GET /api/v1/analytics/insights
func (h *AnalyticsHandler) GetInsights(c *gin.Context) {
	insights, err := h.analyticsService.GetInsights(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "Insights", "")
		return
	}

	c.JSON(http.StatusOK, insights)
}

// GetStreak handles GET /api/v1/analytics/streak
func (h *AnalyticsHandler) GetStreak(c *gin.Context) {
	streak, err := h.analyticsService.GetStreak(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "Streak", "")
		return
	}

	c.JSON(http.StatusOK, streak)
}

// GetWellnessScore handles GET /api/v1/analytics/wellness-score
func (h *AnalyticsHandler) GetWellnessScore(c *gin.Context) {
	score, err := h.analyticsService.GetWellnessScore(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "Wellness score", "")
		return
	}

	c.JSON(http.StatusOK, score)
}
