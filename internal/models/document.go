package models

import (
	"time"
)

// ValidateRequest represents a document validation request. The cpf and
// cnpj binding tags are the pluggable rules registered by the validators
// package; empty fields are left to the required handling of the binding
// framework.
type ValidateRequest struct {
	CPF  string `json:"cpf,omitempty" binding:"omitempty,cpf" example:"295.379.955-93"`
	CNPJ string `json:"cnpj,omitempty" binding:"omitempty,cnpj" example:"54.550.752/0001-55"`
}

// ValidationResult represents the outcome of a single document validation
type ValidationResult struct {
	Document string `json:"document" example:"29537995593"`
	Type     string `json:"type" example:"cpf"`
	Valid    bool   `json:"valid" example:"true"`
}

// GenerateCPFRequest represents a CPF generation request
type GenerateCPFRequest struct {
	Formatted bool `json:"formatted" example:"true"`
}

// GenerateCNPJRequest represents a CNPJ generation request
type GenerateCNPJRequest struct {
	Type      string `json:"type,omitempty" binding:"omitempty,oneof=numeric alfanumeric" example:"alfanumeric"`
	Formatted bool   `json:"formatted" example:"true"`
}

// GenerateResponse represents a generated document
type GenerateResponse struct {
	Document  string `json:"document" example:"12.ABC.345/01DE-35"`
	Type      string `json:"type" example:"cnpj"`
	Variant   string `json:"variant,omitempty" example:"alfanumeric"`
	Formatted bool   `json:"formatted" example:"true"`
}

// FormatResponse represents a formatted document
type FormatResponse struct {
	Document  string `json:"document" example:"29537995593"`
	Formatted string `json:"formatted" example:"295.379.955-93"`
}

// AnalysisResponse represents detailed information about a document
type AnalysisResponse struct {
	Original  string `json:"original" example:"54.550.752/0001-55"`
	Cleaned   string `json:"cleaned" example:"54550752000155"`
	Formatted string `json:"formatted,omitempty" example:"54.550.752/0001-55"`
	Type      string `json:"type" example:"cnpj"`
	Variant   string `json:"variant,omitempty" example:"numeric"`
	Valid     bool   `json:"valid" example:"true"`

	// CNPJ only
	Establishment string `json:"establishment,omitempty" example:"MATRIZ"`
	Root          string `json:"root,omitempty" example:"54550752"`
	Branch        string `json:"branch,omitempty" example:"0001"`

	Cache bool `json:"cache" example:"false"`
}

// ExtractRequest represents a document extraction request
type ExtractRequest struct {
	Content     string `json:"content" binding:"required" example:"Cliente CPF 295.379.955-93, fornecedor CNPJ 54.550.752/0001-55"`
	ContentType string `json:"content_type,omitempty" binding:"omitempty,oneof=text html" example:"text"`
}

// ExtractResponse represents extracted and checksum-filtered documents
type ExtractResponse struct {
	CPFs  []string `json:"cpfs" example:"29537995593"`
	CNPJs []string `json:"cnpjs" example:"54550752000155"`
	Total int      `json:"total" example:"2"`
}

// BatchRequest represents a batch document validation request
type BatchRequest struct {
	Documents []string `json:"documents" binding:"required,min=1,max=1000" example:"[\"29537995593\",\"54550752000155\"]"`
}

// BatchResult represents individual result in batch response
type BatchResult struct {
	Document   string            `json:"document" example:"54550752000155"`
	Success    bool              `json:"success" example:"true"`
	Data       *AnalysisResponse `json:"data,omitempty"`
	Error      string            `json:"error,omitempty"`
	DurationMs int64             `json:"duration_ms" example:"1"`
}

// BatchResponse represents a batch document validation response
type BatchResponse struct {
	Results    []BatchResult `json:"results"`
	Total      int           `json:"total" example:"2"`
	Success    int           `json:"success" example:"2"`
	Errors     int           `json:"errors" example:"0"`
	DurationMs int64         `json:"duration_ms" example:"3"`
	Timestamp  time.Time     `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string            `json:"error" example:"Invalid document"`
	Message   string            `json:"message" example:"CPF inválido"`
	Code      string            `json:"code,omitempty" example:"document.cpf"`
	Fields    []ValidationError `json:"fields,omitempty"`
	Timestamp time.Time         `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Path      string            `json:"path" example:"/api/v1/documents/validate"`
}

// ValidationError represents validation error details for a single field
type ValidationError struct {
	Field   string `json:"field" example:"cpf"`
	Code    string `json:"code" example:"document.cpf"`
	Message string `json:"message" example:"CPF inválido"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string                 `json:"status" example:"healthy"`
	Timestamp time.Time              `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Version   string                 `json:"version" example:"1.0.0"`
	Services  map[string]interface{} `json:"services"`
	Uptime    string                 `json:"uptime" example:"2h30m45s"`
}

// MetricsResponse represents metrics response
type MetricsResponse struct {
	Requests    RequestsMetrics    `json:"requests"`
	Validations ValidationsMetrics `json:"validations"`
	Cache       CacheMetrics       `json:"cache"`
	Timestamp   time.Time          `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// RequestsMetrics represents request metrics
type RequestsMetrics struct {
	Total       int64   `json:"total" example:"1500"`
	Success     int64   `json:"success" example:"1450"`
	Errors      int64   `json:"errors" example:"50"`
	SuccessRate float64 `json:"success_rate" example:"96.67"`
}

// ValidationsMetrics represents document validation metrics
type ValidationsMetrics struct {
	CPF     int64 `json:"cpf" example:"800"`
	CNPJ    int64 `json:"cnpj" example:"650"`
	Valid   int64 `json:"valid" example:"1200"`
	Invalid int64 `json:"invalid" example:"250"`
}

// CacheMetrics represents cache metrics
type CacheMetrics struct {
	HitRate float64 `json:"hit_rate" example:"85.5"`
	Hits    int64   `json:"hits" example:"1240"`
	Misses  int64   `json:"misses" example:"210"`
}
