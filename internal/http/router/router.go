package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/contract-dictionary/internal/codes"
	"github.com/ignatzorin/contract-dictionary/internal/config"
	"github.com/ignatzorin/contract-dictionary/internal/http/handlers"
	"github.com/ignatzorin/contract-dictionary/internal/http/middleware"
)

func SetupRouter(
	cfg *config.Config,
	registry *codes.Registry,
	dictionaryHandler *handlers.DictionaryHandler,
	healthHandler *handlers.HealthHandler,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod))

	// Справочник публичный и только для чтения
	api.GET("/dictionary", dictionaryHandler.ListCategories)
	api.GET("/dictionary/:category", middleware.CategoryValidator(registry, "category"), dictionaryHandler.GetCategory)
	api.GET("/dictionary/:category/resolve", middleware.CategoryValidator(registry, "category"), dictionaryHandler.Resolve)

	return r
}
