package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/resi/internal/config"
	"github.com/polkiloo/resi/internal/server/http/handlers"
	"github.com/polkiloo/resi/internal/server/http/middleware"
)

const banner = "resi API running"

// HealthChecker reports whether backing services are reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.Facade, health HealthChecker, logger *slog.Logger, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.MaxMultipartMemory = cfg.ImportMaxBytes

	engine.Use(middleware.RequestID())
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			slog.Any("panic", recovered),
			slog.String("path", c.Request.URL.Path),
			slog.String("request_id", c.GetString(middleware.RequestIDContextKey)),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, banner)
	})
	engine.GET("/healthz", func(c *gin.Context) {
		if err := health.HealthCheck(c.Request.Context()); err != nil {
			logger.Warn("health check failed", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := handlers.NewAuthHandler(facade, logger)
	receiptHandler := handlers.NewReceiptHandler(facade, logger)

	api := engine.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	resi := api.Group("/resi")
	resi.Use(middleware.AuthRequired(facade))
	resi.GET("", receiptHandler.List)
	resi.POST("", receiptHandler.Create)
	resi.GET("/export", receiptHandler.Export)
	resi.POST("/import", middleware.LimitBody(cfg.ImportMaxBytes), receiptHandler.Import)
	resi.PUT("/:id", receiptHandler.Update)
	resi.DELETE("/:id", receiptHandler.Delete)

	return engine
}
