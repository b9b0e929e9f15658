package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oguardiao/guardiao-api/docs"
	"github.com/oguardiao/guardiao-api/internal/api/handlers"
	"github.com/oguardiao/guardiao-api/internal/api/middleware"
	"github.com/oguardiao/guardiao-api/internal/config"
	"github.com/oguardiao/guardiao-api/internal/models"
	"github.com/oguardiao/guardiao-api/internal/services"
	"github.com/oguardiao/guardiao-api/internal/validation"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	Router      *gin.Engine
	config      *config.Config
	logger      *logrus.Logger
	services    *services.Container
	rateLimiter *middleware.RateLimiter
	health      *handlers.HealthHandler
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, logger *logrus.Logger, services *services.Container) (*Server, error) {
	if err := validation.Register(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	server := &Server{
		config:   cfg,
		logger:   logger,
		services: services,
	}

	server.setupRouter()
	return server, nil
}

// setupRouter configures the router with all routes and middleware
func (s *Server) setupRouter() {
	s.Router = gin.New()

	// Match on the escaped path so a formatted CNPJ with %2F stays one segment
	s.Router.UseRawPath = true
	s.Router.UnescapePathValues = true

	// Global middleware; Metrics wraps Recovery so panics are counted as 500
	s.Router.Use(middleware.Logger(s.logger))
	s.Router.Use(middleware.Metrics(s.services.Metrics))
	s.Router.Use(middleware.Recovery(s.logger))
	s.Router.Use(middleware.CORS(s.config.Security.CORS))
	s.Router.Use(middleware.Security())
	s.Router.Use(middleware.RequestID())

	s.health = handlers.NewHealthHandler(s.services, s.logger)

	// Health endpoints are registered before the rate limiter
	s.Router.GET("/health", s.health.GetHealth)
	s.Router.GET("/health/ready", s.health.GetReadiness)
	s.Router.GET("/health/live", s.health.GetLiveness)

	s.rateLimiter = middleware.NewRateLimiter(s.config.Security.RateLimit)
	s.Router.Use(s.rateLimiter.Middleware())

	s.Router.GET("/metrics", handlers.NewMetricsHandler(s.services.Metrics, s.rateLimiter.GetStats, s.logger).GetMetrics)
	s.Router.GET("/metrics/prometheus", gin.WrapH(s.services.Metrics.Handler()))

	// Swagger documentation
	if !s.config.IsProduction() {
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", s.config.Server.Port)
		s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		s.Router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
		})
	}

	v1 := s.Router.Group("/api/v1")
	{
		cnpjHandler := handlers.NewCNPJHandler(s.services.ValidationService, s.config.Upload.MaxBatchSize, s.logger)
		cnpj := v1.Group("/cnpj")
		{
			cnpj.POST("/validate", cnpjHandler.Validate)
			cnpj.POST("/batch", cnpjHandler.Batch)
			cnpj.POST("/extract", cnpjHandler.Extract)
			cnpj.GET("/:cnpj", cnpjHandler.GetCNPJ)
		}

		maskHandler := handlers.NewMaskHandler()
		mask := v1.Group("/mask")
		{
			mask.POST("/cnpj", maskHandler.CNPJ)
			mask.POST("/date", maskHandler.Date)
		}

		certificateHandler := handlers.NewCertificateHandler(s.config.Upload.MaxDashboardEntries, s.logger)
		certificates := v1.Group("/certificates")
		{
			certificates.POST("/status", certificateHandler.Status)
			certificates.POST("/upload/check", certificateHandler.UploadCheck)
			certificates.POST("/alerts", certificateHandler.Alerts)
		}

		dashboardHandler := handlers.NewDashboardHandler(s.services.DashboardService, s.config.Upload.MaxDashboardEntries, s.logger)
		dashboard := v1.Group("/dashboard")
		{
			dashboard.POST("/charts", dashboardHandler.Charts)
			dashboard.POST("/charts/:chart/csv", dashboardHandler.ExportCSV)
		}

		cacheHandler := handlers.NewCacheHandler(s.services.CacheService, s.services.ValidationService, s.logger)
		cache := v1.Group("/cache")
		{
			cache.GET("/stats", cacheHandler.GetStats)
			cache.DELETE("/clear", cacheHandler.Clear)
			cache.DELETE("/:cnpj", cacheHandler.Delete)
		}
	}

	s.Router.HandleMethodNotAllowed = true

	// 404 handler
	s.Router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:     "Not Found",
			Message:   "The requested resource was not found",
			Code:      "NOT_FOUND",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	})

	// 405 handler
	s.Router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{
			Error:     "Method Not Allowed",
			Message:   "The requested method is not allowed for this resource",
			Code:      "METHOD_NOT_ALLOWED",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	})
}

// Drain fails readiness ahead of shutdown
func (s *Server) Drain() {
	s.health.Drain()
}

// Close releases the server's background workers
func (s *Server) Close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Close()
	}
}
