package services

import (
	"context"

	"github.com/nexconsult/docbr-api/internal/models"
)

// DocumentServiceInterface defines the interface for the document service
type DocumentServiceInterface interface {
	// Validate validates a single document, classifying it as CPF or CNPJ
	Validate(document string) models.ValidationResult

	// Analyze returns detailed information about a document
	Analyze(ctx context.Context, document string) (*models.AnalysisResponse, error)

	// GenerateCPF generates a random valid CPF
	GenerateCPF(formatted bool) string

	// GenerateCNPJ generates a random valid CNPJ of the given variant
	GenerateCNPJ(variant string, formatted bool) (string, error)

	// Health returns service health status
	Health() map[string]interface{}
}

// CacheServiceInterface defines the interface for cache service
type CacheServiceInterface interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value string) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error

	// Clear clears all cache entries
	Clear(ctx context.Context) error

	// GetStats returns cache statistics
	GetStats(ctx context.Context) (map[string]interface{}, error)

	// Health returns cache service health status
	Health() map[string]interface{}

	// StartCleanupRoutine starts periodic eviction of expired memory entries
	StartCleanupRoutine()
}

// ExtractorServiceInterface defines the interface for document extraction
type ExtractorServiceInterface interface {
	// Extract scans text or HTML content for valid CPF and CNPJ numbers
	Extract(content string, html bool) (*models.ExtractResponse, error)

	// Health returns extractor service health status
	Health() map[string]interface{}
}

// MetricsServiceInterface defines the interface for metrics service
type MetricsServiceInterface interface {
	// RecordRequest records a request metric
	RecordRequest(statusCode int)

	// RecordValidation records a document validation outcome
	RecordValidation(docType string, valid bool)

	// RecordCacheHit records a cache hit or miss
	RecordCacheHit(hit bool)

	// Snapshot returns current metrics
	Snapshot() models.MetricsResponse
}
