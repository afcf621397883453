package routes

import (
	"context"
	"fmt"
	"strconv"

	_ "installer_crm/docs" // swagger docs
	"installer_crm/internal/adapter/http/middleware"
	"installer_crm/internal/adapter/persistence/repository"
	"installer_crm/internal/config"
	"installer_crm/internal/infrastructure/cache"
	"installer_crm/internal/infrastructure/database"
	"installer_crm/internal/observability"
	"installer_crm/internal/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run(cfg *config.Config, log *logger.Logger) error {
	kv, err := cache.Open(cfg.Cache)
	if err != nil {
		return fmt.Errorf("open local cache: %w", err)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			log.Error("failed to close local cache", "error", err)
		}
	}()

	var ddb repository.DynamoAPI
	if cfg.Remote.Enabled {
		client, err := database.ConnectDynamoDB(context.Background(), cfg.Remote)
		if err != nil {
			log.Warn("dynamodb not configured, running local-only", "error", err)
		} else {
			ddb = client
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app := newApp(kv, ddb, cfg.Remote.Tables, log, observability.NewMetrics(reg))

	router := NewRouter(cfg, log, reg, app)
	addr := ":" + strconv.Itoa(cfg.Server.HTTPPort)
	log.Info("starting server", "addr", addr, "cache_driver", cfg.Cache.Driver, "remote", ddb != nil)
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// NewRouter builds the gin engine with middlewares and every route mounted.
func NewRouter(cfg *config.Config, log *logger.Logger, gatherer prometheus.Gatherer, app *app) *gin.Engine {
	if cfg.Server.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router, cfg, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1, app.status)
	addCRMRoutes(v1, app)
	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, log *logger.Logger) {
	if cfg.Server.AppEnv == "dev" {
		router.Use(gin.Logger())
	}
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.OptionalAuth(middleware.NewTokenVerifier(cfg.JWT.Secret), log))
}
