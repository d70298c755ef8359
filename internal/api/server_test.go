package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexconsult/docbr-api/internal/config"
	"github.com/nexconsult/docbr-api/internal/models"
	"github.com/nexconsult/docbr-api/internal/services"
	"github.com/nexconsult/docbr-api/internal/validators"
	"github.com/nexconsult/docbr-api/internal/worker"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	gin.SetMode(gin.TestMode)
	require.NoError(t, validators.RegisterBinding())

	cfg, err := config.Load()
	require.NoError(t, err)
	// Tests should never block on a real Redis instance
	cfg.Redis.DialTimeout = 100 * time.Millisecond

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	container, err := services.NewContainer(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	pool := worker.NewPool(2, 16, 5*time.Second, container.DocumentService, logger)
	pool.Start()
	t.Cleanup(pool.Stop)

	return NewServer(cfg, logger, container, pool)
}

func doRequest(t *testing.T, server *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	server.Router.ServeHTTP(recorder, req)
	return recorder
}

func TestHealthEndpoints(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/health", "/health/live", "/health/ready"} {
		recorder := doRequest(t, server, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, recorder.Code, path)
	}
}

func TestCPFRoutes(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodGet, "/api/v1/cpf/validate/29537995593", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var result models.ValidationResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.True(t, result.Valid)
	assert.Equal(t, "cpf", result.Type)

	recorder = doRequest(t, server, http.MethodGet, "/api/v1/cpf/validate/29537995594", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.False(t, result.Valid)

	recorder = doRequest(t, server, http.MethodGet, "/api/v1/cpf/format/29537995593", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var formatted models.FormatResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &formatted))
	assert.Equal(t, "295.379.955-93", formatted.Formatted)

	// Generation accepts an empty body
	recorder = doRequest(t, server, http.MethodPost, "/api/v1/cpf/generate", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var generated models.GenerateResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &generated))
	assert.Len(t, generated.Document, 11)
}

func TestCNPJRoutes(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodGet, "/api/v1/cnpj/validate/54550752000155", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var result models.ValidationResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.True(t, result.Valid)
	assert.Equal(t, "cnpj", result.Type)

	recorder = doRequest(t, server, http.MethodGet, "/api/v1/cnpj/validate/12ABC34501DE35", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.True(t, result.Valid)

	recorder = doRequest(t, server, http.MethodPost, "/api/v1/cnpj/generate",
		models.GenerateCNPJRequest{Type: "alfanumeric", Formatted: true})
	require.Equal(t, http.StatusOK, recorder.Code)

	var generated models.GenerateResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &generated))
	assert.Equal(t, "alfanumeric", generated.Variant)

	recorder = doRequest(t, server, http.MethodPost, "/api/v1/cnpj/generate",
		models.GenerateCNPJRequest{Type: "hexadecimal"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDocumentValidateRoute(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodPost, "/api/v1/documents/validate",
		models.ValidateRequest{CPF: "295.379.955-93", CNPJ: "54.550.752/0001-55"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var results []models.ValidationResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &results))
	require.Len(t, results, 2)
	assert.True(t, results[0].Valid)
	assert.True(t, results[1].Valid)
}

func TestDocumentValidateRoute_SchemaErrors(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodPost, "/api/v1/documents/validate",
		models.ValidateRequest{CPF: "12345678909"})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var errResponse models.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResponse))
	assert.Equal(t, validators.CodeCPF, errResponse.Code)
	assert.Equal(t, validators.MessageCPF, errResponse.Message)
	require.Len(t, errResponse.Fields, 1)
	assert.Equal(t, validators.CodeCPF, errResponse.Fields[0].Code)
}

func TestDocumentAnalyzeRoute(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodGet, "/api/v1/documents/analyze/54550752000155", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "MISS", recorder.Header().Get("X-Cache"))

	var analysis models.AnalysisResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &analysis))
	assert.True(t, analysis.Valid)
	assert.Equal(t, "MATRIZ", analysis.Establishment)

	recorder = doRequest(t, server, http.MethodGet, "/api/v1/documents/analyze/54550752000155", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "HIT", recorder.Header().Get("X-Cache"))

	recorder = doRequest(t, server, http.MethodGet, "/api/v1/documents/analyze/123", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDocumentBatchRoute(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodPost, "/api/v1/documents/batch",
		models.BatchRequest{Documents: []string{"29537995593", "54550752000155", "bad"}})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response models.BatchResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 3, response.Total)
	assert.Equal(t, 2, response.Success)
	assert.Equal(t, 1, response.Errors)
}

func TestDocumentExtractRoute(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodPost, "/api/v1/documents/extract",
		models.ExtractRequest{Content: "CPF 295.379.955-93 e CNPJ 54.550.752/0001-55"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response models.ExtractResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Total)
}

func TestCacheRoutes(t *testing.T) {
	server := newTestServer(t)

	// Warm the cache through an analysis
	doRequest(t, server, http.MethodGet, "/api/v1/documents/analyze/54550752000155", nil)

	recorder := doRequest(t, server, http.MethodGet, "/api/v1/cache/stats", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(t, server, http.MethodDelete, "/api/v1/cache/54550752000155", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	// Entry is gone, next analysis misses again
	recorder = doRequest(t, server, http.MethodGet, "/api/v1/documents/analyze/54550752000155", nil)
	assert.Equal(t, "MISS", recorder.Header().Get("X-Cache"))

	recorder = doRequest(t, server, http.MethodDelete, "/api/v1/cache/clear", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestMetricsRoute(t *testing.T) {
	server := newTestServer(t)

	doRequest(t, server, http.MethodGet, "/api/v1/cpf/validate/29537995593", nil)

	recorder := doRequest(t, server, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Contains(t, payload, "service")
	assert.Contains(t, payload, "worker_pool")
}

func TestNotFound(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
