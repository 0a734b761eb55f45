package routes

import (
	"github.com/gin-gonic/gin"

	"opsight/internal/interfaces/http/handlers"
	"opsight/internal/interfaces/http/middleware"
)

// AnalyticsRouteConfig holds dependencies for the analytics routes.
type AnalyticsRouteConfig struct {
	AnalyticsHandler *handlers.AnalyticsHandler
	RateLimiter      *middleware.RateLimiter // may be nil when rate limiting is disabled
}

// SetupAnalyticsRoutes configures the read-only analytics routes.
func SetupAnalyticsRoutes(rg *gin.RouterGroup, cfg *AnalyticsRouteConfig) {
	analytics := rg.Group("/analytics")
	if cfg.RateLimiter != nil {
		analytics.Use(cfg.RateLimiter.Limit())
	}
	{
		analytics.GET("/summary", cfg.AnalyticsHandler.GetSummary)
		analytics.GET("/trend", cfg.AnalyticsHandler.GetTrend)
		analytics.GET("/data", cfg.AnalyticsHandler.GetData)
		analytics.GET("/ranking", cfg.AnalyticsHandler.GetRanking)
	}
}
