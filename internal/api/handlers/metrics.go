package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/docbr-api/internal/services"
	"github.com/nexconsult/docbr-api/internal/worker"
)

// MetricsHandler handles metrics requests
type MetricsHandler struct {
	metrics services.MetricsServiceInterface
	pool    *worker.Pool
	logger  *logrus.Logger
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(metrics services.MetricsServiceInterface, pool *worker.Pool, logger *logrus.Logger) *MetricsHandler {
	return &MetricsHandler{
		metrics: metrics,
		pool:    pool,
		logger:  logger,
	}
}

// GetMetrics returns current service metrics
// @Summary Service metrics
// @Tags Metrics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /metrics [get]
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":     h.metrics.Snapshot(),
		"worker_pool": h.pool.GetStats(),
	})
}
