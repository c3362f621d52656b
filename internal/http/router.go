package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/aeron-ops/backend/internal/config"
	"github.com/aeron-ops/backend/internal/db"
	"github.com/aeron-ops/backend/internal/http/handlers"
	"github.com/aeron-ops/backend/internal/http/middleware"
	"github.com/aeron-ops/backend/internal/optionsource"
	"github.com/aeron-ops/backend/internal/refdata"

	_ "github.com/aeron-ops/backend/docs"
)

func Router(cfg config.Config, resolver *optionsource.Resolver, store *db.Store, ref refdata.Provider, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Key", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Resolver:  resolver,
		Store:     store,
		Reference: ref,
		Policy:    cfg.Policy,
		Validator: validator.New(),
		Logger:    logger,
		AdminKey:  cfg.AdminKey,
	}

	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/recovery/options", h.GenerateOptions)
		api.POST("/recovery/plan", h.Plan)
		api.POST("/recovery/validate", h.Validate)
		api.POST("/recovery/recalculate", h.Recalculate)
		api.GET("/reference/resources", h.ReferenceResources)
		api.GET("/disruptions/:id/options", h.DisruptionOptions)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.POST("/disruptions", h.CreateDisruption)
		admin.POST("/disruptions/:id/options/regenerate", h.RegenerateOptions)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
