package router

import (
	"time"

	"github.com/NomadCrew/tripboard/config"
	_ "github.com/NomadCrew/tripboard/docs"
	"github.com/NomadCrew/tripboard/handlers"
	"github.com/NomadCrew/tripboard/middleware"
	"github.com/NomadCrew/tripboard/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config            *config.Config
	HealthHandler     *handlers.HealthHandler
	TripBoardHandler  *handlers.TripBoardHandler
	PreferenceHandler *handlers.PreferenceHandler
	RateLimiter       services.RateLimiterInterface // nil disables rate limiting
	Logger            *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/v1")
	v1.Use(middleware.SecurityHeadersMiddleware(deps.Config))
	if deps.RateLimiter != nil {
		v1.Use(middleware.RateLimiter(deps.RateLimiter, deps.Config.RateLimit.RequestsPerMinute, time.Minute))
	} else if deps.Logger != nil {
		deps.Logger.Info("Rate limiting disabled")
	}
	{
		tripRoutes := v1.Group("/trips")
		{
			tripRoutes.GET("/board", deps.TripBoardHandler.GetBoardHandler)
			tripRoutes.GET("/stats", deps.TripBoardHandler.GetStatsHandler)
		}

		viewRoutes := v1.Group("/views")
		{
			viewRoutes.GET("/:viewId/preferences", deps.PreferenceHandler.GetPreferencesHandler)
			viewRoutes.PUT("/:viewId/preferences", deps.PreferenceHandler.SavePreferencesHandler)
			viewRoutes.DELETE("/:viewId/preferences", deps.PreferenceHandler.DeletePreferencesHandler)
			viewRoutes.DELETE("/preferences", deps.PreferenceHandler.ResetPreferencesHandler)
		}
	}

	return r
}
