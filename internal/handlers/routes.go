package handlers

import (
	"github.com/gin-gonic/gin"
)

// Handlers groups every API handler for route registration.
type Handlers struct {
	DailyLogs *DailyLogHandler
	Profile   *ProfileHandler
	Analytics *AnalyticsHandler
	Reports   *ReportHandler
}

// Register mounts the API under /api/v1.
func (h Handlers) Register(router gin.IRouter) {
	v1 := router.Group("/api/v1")
	{
		logs := v1.Group("/daily-logs")
		logs.GET("", h.DailyLogs.ListLogs)
		logs.POST("", h.DailyLogs.CreateLog)
		logs.GET("/:id", h.DailyLogs.GetLog)
		logs.PUT("/:id", h.DailyLogs.UpdateLog)
		logs.DELETE("/:id", h.DailyLogs.DeleteLog)
		logs.GET("/:id/alerts", h.DailyLogs.GetAlerts)

		profile := v1.Group("/profile")
		profile.GET("", h.Profile.GetProfile)
		profile.POST("", h.Profile.CreateProfile)
		profile.PUT("/:id", h.Profile.UpdateProfile)
		profile.DELETE("/:id", h.Profile.DeleteProfile)

		analytics := v1.Group("/analytics")
		analytics.GET("/dashboard", h.Analytics.GetDashboard)
		analytics.GET("/statistics", h.Analytics.GetStatistics)
		analytics.GET("/trends", h.Analytics.GetTrend)
		analytics.GET("/correlations", h.Analytics.GetCorrelations)
		analytics.GET("/insights", h.Analytics.GetInsights)
		analytics.GET("/streak", h.Analytics.GetStreak)
		analytics.GET("/wellness-score", h.Analytics.GetWellnessScore)

		v1.GET("/reports", h.Reports.GetReport)
	}
}
