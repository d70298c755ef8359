package services

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/docbr-api/internal/config"
)

// Container holds all service dependencies
type Container struct {
	config      *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client

	DocumentService  DocumentServiceInterface
	CacheService     CacheServiceInterface
	ExtractorService ExtractorServiceInterface
	MetricsService   MetricsServiceInterface
}

// NewContainer creates a new service container
func NewContainer(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	container := &Container{
		config: cfg,
		logger: logger,
	}

	container.initRedis()
	container.initServices()

	return container, nil
}

// initRedis initializes the Redis client. A failed connection downgrades
// the cache to memory-only instead of failing startup.
func (c *Container) initRedis() {
	c.redisClient = redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", c.config.Redis.Host, c.config.Redis.Port),
		Password:     c.config.Redis.Password,
		DB:           c.config.Redis.DB,
		PoolSize:     c.config.Redis.PoolSize,
		DialTimeout:  c.config.Redis.DialTimeout,
		ReadTimeout:  c.config.Redis.ReadTimeout,
		WriteTimeout: c.config.Redis.WriteTimeout,
	})

	ctx := context.Background()
	if err := c.redisClient.Ping(ctx).Err(); err != nil {
		c.logger.Warn("Redis connection failed, running with memory cache only")
		c.redisClient = nil
	} else {
		c.logger.Info("Redis connection established")
	}
}

// initServices initializes all services
func (c *Container) initServices() {
	c.MetricsService = NewMetricsService()
	c.CacheService = NewCacheService(c.redisClient, c.config.Document.AnalysisCacheTTL, c.logger)
	c.CacheService.StartCleanupRoutine()
	c.DocumentService = NewDocumentService(c.CacheService, c.MetricsService, c.logger)
	c.ExtractorService = NewExtractorService(c.logger)
}

// Close closes all service connections
func (c *Container) Close() error {
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			return fmt.Errorf("failed to close Redis: %w", err)
		}
	}
	return nil
}

// Health checks the health of all services
func (c *Container) Health() map[string]interface{} {
	return map[string]interface{}{
		"document":  c.DocumentService.Health(),
		"cache":     c.CacheService.Health(),
		"extractor": c.ExtractorService.Health(),
	}
}
