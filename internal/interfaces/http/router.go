package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	activityUC "opsight/internal/application/activity/usecases"
	adminUC "opsight/internal/application/admin/usecases"
	analyticsUC "opsight/internal/application/analytics/usecases"
	directoryUC "opsight/internal/application/directory/usecases"
	goalUC "opsight/internal/application/goal/usecases"
	"opsight/internal/infrastructure/config"
	"opsight/internal/infrastructure/repository"
	"opsight/internal/interfaces/http/handlers"
	"opsight/internal/interfaces/http/middleware"
	"opsight/internal/interfaces/http/routes"
	"opsight/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine             *gin.Engine
	analyticsHandler   *handlers.AnalyticsHandler
	activityHandler    *handlers.ActivityHandler
	goalHandler        *handlers.GoalHandler
	adminMetricHandler *handlers.AdminMetricHandler
	directoryHandler   *handlers.DirectoryHandler
	healthHandler      *handlers.HealthHandler
	rateLimiter        *middleware.RateLimiter
	redisClient        *redis.Client
	logger             logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	recordRepo := repository.NewActivityRecordRepository(db, log)
	directoryRepo := repository.NewUserDirectoryRepository(db, log)
	goalRepo := repository.NewMonthlyGoalRepository(db, log)
	metricRepo := repository.NewAdminMetricRepository(db, log)

	getSummaryUC := analyticsUC.NewGetSummaryUseCase(recordRepo, directoryRepo, goalRepo, log)
	getTrendUC := analyticsUC.NewGetTrendUseCase(recordRepo, directoryRepo, log)
	getDataMetricsUC := analyticsUC.NewGetDataMetricsUseCase(recordRepo, directoryRepo, log)
	getRankingUC := analyticsUC.NewGetRankingUseCase(recordRepo, directoryRepo, cfg.Analytics.RankingSize, log)
	ingestRecordsUC := activityUC.NewIngestRecordsUseCase(recordRepo, log)
	listGoalsUC := goalUC.NewListMonthlyGoalsUseCase(goalRepo, log)
	upsertGoalUC := goalUC.NewUpsertMonthlyGoalUseCase(goalRepo, log)
	listMetricsUC := adminUC.NewListAdminMetricsUseCase(metricRepo, log)
	createMetricUC := adminUC.NewCreateAdminMetricUseCase(metricRepo, log)
	listUsersUC := directoryUC.NewListUsersUseCase(directoryRepo, log)
	listGroupsUC := directoryUC.NewListGroupsUseCase(directoryRepo, log)

	var rateLimiter *middleware.RateLimiter
	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit.RequestsPerMinute, time.Minute)
	}

	return &Router{
		engine:             engine,
		analyticsHandler:   handlers.NewAnalyticsHandler(getSummaryUC, getTrendUC, getDataMetricsUC, getRankingUC),
		activityHandler:    handlers.NewActivityHandler(ingestRecordsUC),
		goalHandler:        handlers.NewGoalHandler(upsertGoalUC, listGoalsUC),
		adminMetricHandler: handlers.NewAdminMetricHandler(createMetricUC, listMetricsUC),
		directoryHandler:   handlers.NewDirectoryHandler(listUsersUC, listGroupsUC),
		healthHandler:      handlers.NewHealthHandler(),
		rateLimiter:        rateLimiter,
		redisClient:        redisClient,
		logger:             log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.healthHandler.HealthCheck)
	r.engine.GET("/version", r.healthHandler.Version)

	v1 := r.engine.Group("/api/v1")

	routes.SetupAnalyticsRoutes(v1, &routes.AnalyticsRouteConfig{
		AnalyticsHandler: r.analyticsHandler,
		RateLimiter:      r.rateLimiter,
	})

	routes.SetupDirectoryRoutes(v1, &routes.DirectoryRouteConfig{
		DirectoryHandler: r.directoryHandler,
	})

	r.setupGoalRoutes(v1)
	r.setupAdminRoutes(v1)
	r.setupActivityRoutes(v1)
}

// setupGoalRoutes configures monthly goal routes
func (r *Router) setupGoalRoutes(v1 *gin.RouterGroup) {
	goals := v1.Group("/goals")
	{
		goals.GET("/monthly", r.goalHandler.ListMonthlyGoals)
		goals.POST("/monthly", r.goalHandler.UpsertMonthlyGoal)
	}
}

// setupAdminRoutes configures metric catalog routes
func (r *Router) setupAdminRoutes(v1 *gin.RouterGroup) {
	admin := v1.Group("/admin")
	{
		admin.GET("/metrics", r.adminMetricHandler.ListMetrics)
		admin.POST("/metrics", r.adminMetricHandler.CreateMetric)
	}
}

// setupActivityRoutes configures the record ingestion route
func (r *Router) setupActivityRoutes(v1 *gin.RouterGroup) {
	activity := v1.Group("/activity")
	if r.rateLimiter != nil {
		activity.Use(r.rateLimiter.Limit())
	}
	{
		activity.POST("/records", r.activityHandler.IngestRecords)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Shutdown releases resources held by the router
func (r *Router) Shutdown() {
	if r.redisClient != nil {
		if err := r.redisClient.Close(); err != nil {
			r.logger.Errorw("failed to close redis client", "error", err)
		}
	}
}
