package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/nexconsult/docbr-api/internal/api/handlers"
	"github.com/nexconsult/docbr-api/internal/api/middleware"
	"github.com/nexconsult/docbr-api/internal/config"
	"github.com/nexconsult/docbr-api/internal/services"
	"github.com/nexconsult/docbr-api/internal/worker"
)

// Server represents the HTTP server
type Server struct {
	Router   *gin.Engine
	config   *config.Config
	logger   *logrus.Logger
	services *services.Container
	pool     *worker.Pool
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, logger *logrus.Logger, container *services.Container, pool *worker.Pool) *Server {
	server := &Server{
		config:   cfg,
		logger:   logger,
		services: container,
		pool:     pool,
	}

	server.setupRouter()
	return server
}

// setupRouter configures the router with all routes and middleware
func (s *Server) setupRouter() {
	s.Router = gin.New()

	// Global middleware
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Logger(s.logger))
	s.Router.Use(middleware.Recovery(s.logger))
	s.Router.Use(middleware.CORS(s.config.Security.CORS))
	s.Router.Use(middleware.Security())
	s.Router.Use(s.recordRequests())

	// Rate limiting middleware
	rateLimiter := middleware.NewRateLimiter(s.config.Security.RateLimit)
	s.Router.Use(rateLimiter.Middleware())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(s.services, s.logger)
	s.Router.GET("/health", healthHandler.GetHealth)
	s.Router.GET("/health/ready", healthHandler.GetReadiness)
	s.Router.GET("/health/live", healthHandler.GetLiveness)

	// Metrics endpoint
	s.Router.GET("/metrics", handlers.NewMetricsHandler(s.services.MetricsService, s.pool, s.logger).GetMetrics)

	// Swagger documentation
	if s.config.Server.Environment != "production" {
		s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		s.Router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
		})
	}

	// API v1 routes
	v1 := s.Router.Group("/api/v1")
	{
		cpfHandler := handlers.NewCPFHandler(s.services.MetricsService, s.logger)
		cpfGroup := v1.Group("/cpf")
		{
			cpfGroup.GET("/validate/:cpf", cpfHandler.Validate)
			cpfGroup.POST("/generate", cpfHandler.Generate)
			cpfGroup.GET("/format/:cpf", cpfHandler.Format)
		}

		cnpjHandler := handlers.NewCNPJHandler(s.services.MetricsService, s.logger)
		cnpjGroup := v1.Group("/cnpj")
		{
			cnpjGroup.GET("/validate/:cnpj", cnpjHandler.Validate)
			cnpjGroup.POST("/generate", cnpjHandler.Generate)
			cnpjGroup.GET("/format/:cnpj", cnpjHandler.Format)
		}

		documentHandler := handlers.NewDocumentHandler(s.services.DocumentService, s.services.ExtractorService, s.pool, s.logger)
		documents := v1.Group("/documents")
		{
			documents.POST("/validate", documentHandler.Validate)
			documents.GET("/analyze/:document", documentHandler.Analyze)
			documents.POST("/batch", documentHandler.Batch)
			documents.POST("/extract", documentHandler.Extract)
		}

		cacheHandler := handlers.NewCacheHandler(s.services.CacheService, s.logger)
		cache := v1.Group("/cache")
		{
			cache.GET("/stats", cacheHandler.GetStats)
			cache.DELETE("/clear", cacheHandler.Clear)
			cache.DELETE("/:document", cacheHandler.Delete)
		}
	}

	// 404 handler
	s.Router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Not Found",
			"message":   "The requested resource was not found",
			"timestamp": time.Now(),
			"path":      c.Request.URL.Path,
		})
	})

	// 405 handler
	s.Router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error":     "Method Not Allowed",
			"message":   "The requested method is not allowed for this resource",
			"timestamp": time.Now(),
			"path":      c.Request.URL.Path,
			"method":    c.Request.Method,
		})
	})
}

// recordRequests feeds the request counters of the metrics service
func (s *Server) recordRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.services.MetricsService.RecordRequest(c.Writer.Status())
	}
}
