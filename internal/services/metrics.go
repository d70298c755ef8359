package services

import (
	"sync/atomic"
	"time"

	"github.com/nexconsult/docbr-api/internal/models"
)

// MetricsService keeps in-process counters for the metrics endpoint
type MetricsService struct {
	requestsTotal   int64
	requestsSuccess int64
	requestsErrors  int64

	validationsCPF     int64
	validationsCNPJ    int64
	validationsValid   int64
	validationsInvalid int64

	cacheHits   int64
	cacheMisses int64
}

// NewMetricsService creates a new metrics service
func NewMetricsService() MetricsServiceInterface {
	return &MetricsService{}
}

// RecordRequest records a request metric
func (m *MetricsService) RecordRequest(statusCode int) {
	atomic.AddInt64(&m.requestsTotal, 1)
	if statusCode < 400 {
		atomic.AddInt64(&m.requestsSuccess, 1)
	} else {
		atomic.AddInt64(&m.requestsErrors, 1)
	}
}

// RecordValidation records a document validation outcome
func (m *MetricsService) RecordValidation(docType string, valid bool) {
	switch docType {
	case TypeCPF:
		atomic.AddInt64(&m.validationsCPF, 1)
	case TypeCNPJ:
		atomic.AddInt64(&m.validationsCNPJ, 1)
	}

	if valid {
		atomic.AddInt64(&m.validationsValid, 1)
	} else {
		atomic.AddInt64(&m.validationsInvalid, 1)
	}
}

// RecordCacheHit records a cache hit or miss
func (m *MetricsService) RecordCacheHit(hit bool) {
	if hit {
		atomic.AddInt64(&m.cacheHits, 1)
	} else {
		atomic.AddInt64(&m.cacheMisses, 1)
	}
}

// Snapshot returns current metrics
func (m *MetricsService) Snapshot() models.MetricsResponse {
	total := atomic.LoadInt64(&m.requestsTotal)
	success := atomic.LoadInt64(&m.requestsSuccess)
	hits := atomic.LoadInt64(&m.cacheHits)
	misses := atomic.LoadInt64(&m.cacheMisses)

	var successRate float64
	if total > 0 {
		successRate = float64(success) / float64(total) * 100
	}

	var hitRate float64
	if hits+misses > 0 {
		hitRate = float64(hits) / float64(hits+misses) * 100
	}

	return models.MetricsResponse{
		Requests: models.RequestsMetrics{
			Total:       total,
			Success:     success,
			Errors:      atomic.LoadInt64(&m.requestsErrors),
			SuccessRate: successRate,
		},
		Validations: models.ValidationsMetrics{
			CPF:     atomic.LoadInt64(&m.validationsCPF),
			CNPJ:    atomic.LoadInt64(&m.validationsCNPJ),
			Valid:   atomic.LoadInt64(&m.validationsValid),
			Invalid: atomic.LoadInt64(&m.validationsInvalid),
		},
		Cache: models.CacheMetrics{
			HitRate: hitRate,
			Hits:    hits,
			Misses:  misses,
		},
		Timestamp: time.Now(),
	}
}
