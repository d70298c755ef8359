package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/docbr-api/internal/models"
	"github.com/nexconsult/docbr-api/internal/services"
)

// CacheHandler handles cache management requests
type CacheHandler struct {
	cache  services.CacheServiceInterface
	logger *logrus.Logger
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(cache services.CacheServiceInterface, logger *logrus.Logger) *CacheHandler {
	return &CacheHandler{
		cache:  cache,
		logger: logger,
	}
}

// GetStats returns cache statistics
// @Summary Cache statistics
// @Tags Cache
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /cache/stats [get]
func (h *CacheHandler) GetStats(c *gin.Context) {
	stats, err := h.cache.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:     "Failed to get cache stats",
			Message:   err.Error(),
			Code:      "CACHE_ERROR",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Clear removes all cached analysis results
// @Summary Clear the cache
// @Tags Cache
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /cache/clear [delete]
func (h *CacheHandler) Clear(c *gin.Context) {
	if err := h.cache.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:     "Failed to clear cache",
			Message:   err.Error(),
			Code:      "CACHE_ERROR",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	h.logger.WithField("request_id", c.GetString("request_id")).Info("Cache cleared by request")

	c.JSON(http.StatusOK, gin.H{
		"message":   "Cache cleared",
		"timestamp": time.Now(),
	})
}

// Delete removes one document's cached analysis
// @Summary Evict a document from the cache
// @Tags Cache
// @Produce json
// @Param document path string true "CPF or CNPJ" example(54550752000155)
// @Success 200 {object} map[string]interface{}
// @Router /cache/{document} [delete]
func (h *CacheHandler) Delete(c *gin.Context) {
	key := services.AnalysisCacheKey(c.Param("document"))

	if err := h.cache.Delete(c.Request.Context(), key); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:     "Failed to delete cache entry",
			Message:   err.Error(),
			Code:      "CACHE_ERROR",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Cache entry removed",
		"timestamp": time.Now(),
	})
}
