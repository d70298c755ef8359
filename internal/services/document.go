package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/nexconsult/docbr-api/internal/cnpj"
	"github.com/nexconsult/docbr-api/internal/cpf"
	"github.com/nexconsult/docbr-api/internal/models"
)

// Document type labels used in responses and metrics.
const (
	TypeCPF     = "cpf"
	TypeCNPJ    = "cnpj"
	TypeUnknown = "unknown"
)

// DocumentService implements validation, analysis and generation of
// Brazilian tax documents
type DocumentService struct {
	cache   CacheServiceInterface
	metrics MetricsServiceInterface
	logger  *logrus.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(cache CacheServiceInterface, metrics MetricsServiceInterface, logger *logrus.Logger) DocumentServiceInterface {
	return &DocumentService{
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

// Validate validates a single document. Classification follows the cleaned
// length: 11 digits is a CPF, 14 alphanumeric characters is a CNPJ.
func (s *DocumentService) Validate(document string) models.ValidationResult {
	docType, cleaned := classify(document)

	result := models.ValidationResult{
		Document: cleaned,
		Type:     docType,
	}

	switch docType {
	case TypeCPF:
		result.Valid = cpf.IsValid(cleaned)
	case TypeCNPJ:
		result.Valid = cnpj.IsValid(cleaned)
	default:
		result.Document = document
	}

	if s.metrics != nil {
		s.metrics.RecordValidation(docType, result.Valid)
	}

	s.logger.WithFields(logrus.Fields{
		"type":  docType,
		"valid": result.Valid,
	}).Debug("Document validated")

	return result
}

// Analyze returns detailed information about a document, served from the
// analysis cache when possible
func (s *DocumentService) Analyze(ctx context.Context, document string) (*models.AnalysisResponse, error) {
	docType, cleaned := classify(document)
	if docType == TypeUnknown {
		return nil, fmt.Errorf("unrecognized document format: length %d after cleaning", len(cleaned))
	}

	cacheKey := AnalysisCacheKey(cleaned)

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		var analysis models.AnalysisResponse
		if err := json.Unmarshal([]byte(cached), &analysis); err == nil {
			analysis.Original = document
			analysis.Cache = true
			if s.metrics != nil {
				s.metrics.RecordCacheHit(true)
			}
			return &analysis, nil
		}
		s.logger.WithField("key", cacheKey).Warn("Discarding corrupted cache entry")
		_ = s.cache.Delete(ctx, cacheKey)
	}
	if s.metrics != nil {
		s.metrics.RecordCacheHit(false)
	}

	analysis := s.analyze(document, docType, cleaned)

	if payload, err := json.Marshal(analysis); err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(payload)); err != nil {
			s.logger.WithError(err).Warn("Failed to cache analysis result")
		}
	}

	return analysis, nil
}

// analyze builds the analysis payload from the engines
func (s *DocumentService) analyze(document, docType, cleaned string) *models.AnalysisResponse {
	analysis := &models.AnalysisResponse{
		Original: document,
		Cleaned:  cleaned,
		Type:     docType,
	}

	switch docType {
	case TypeCPF:
		analysis.Valid = cpf.IsValid(cleaned)
		if analysis.Valid {
			analysis.Formatted = cpf.Format(cleaned)
		}
	case TypeCNPJ:
		analysis.Valid = cnpj.IsValid(cleaned)
		if cnpj.IsAlphanumeric(cleaned) {
			analysis.Variant = string(cnpj.TypeAlphanumeric)
		} else {
			analysis.Variant = string(cnpj.TypeNumeric)
		}
		if analysis.Valid {
			analysis.Formatted = cnpj.Format(cleaned)
			analysis.Establishment = cnpj.EstablishmentKind(cleaned)
			analysis.Root = cnpj.Root(cleaned)
			analysis.Branch = cnpj.Branch(cleaned)
		}
	}

	return analysis
}

// GenerateCPF generates a random valid CPF
func (s *DocumentService) GenerateCPF(formatted bool) string {
	return cpf.Generate(formatted)
}

// GenerateCNPJ generates a random valid CNPJ. An empty variant defaults to
// the legacy numeric one.
func (s *DocumentService) GenerateCNPJ(variant string, formatted bool) (string, error) {
	switch cnpj.Type(variant) {
	case "", cnpj.TypeNumeric:
		return cnpj.Generate(cnpj.TypeNumeric, formatted), nil
	case cnpj.TypeAlphanumeric:
		return cnpj.Generate(cnpj.TypeAlphanumeric, formatted), nil
	default:
		return "", fmt.Errorf("unknown CNPJ variant: %q", variant)
	}
}

// Health returns service health status
func (s *DocumentService) Health() map[string]interface{} {
	// The engines are pure functions; the only dependency is the cache
	return map[string]interface{}{
		"status": "healthy",
		"cache":  s.cache.Health(),
	}
}

// AnalysisCacheKey returns the cache key under which the analysis of the
// given document is stored.
func AnalysisCacheKey(document string) string {
	_, cleaned := classify(document)
	return "document:analysis:" + cleaned
}

// classify determines the document type from the cleaned input. CPF input
// is cleaned digit-only, CNPJ input keeps letters and digits.
func classify(document string) (string, string) {
	alnum := cnpj.Clean(document)
	if len(alnum) == 14 {
		return TypeCNPJ, alnum
	}

	digits := cpf.Clean(document)
	if len(digits) == 11 {
		return TypeCPF, digits
	}

	return TypeUnknown, alnum
}
