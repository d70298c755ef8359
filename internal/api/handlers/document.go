package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/docbr-api/internal/models"
	"github.com/nexconsult/docbr-api/internal/services"
	"github.com/nexconsult/docbr-api/internal/validators"
	"github.com/nexconsult/docbr-api/internal/worker"
)

// DocumentHandler handles mixed-document requests
type DocumentHandler struct {
	documents services.DocumentServiceInterface
	extractor services.ExtractorServiceInterface
	pool      *worker.Pool
	logger    *logrus.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documents services.DocumentServiceInterface, extractor services.ExtractorServiceInterface, pool *worker.Pool, logger *logrus.Logger) *DocumentHandler {
	return &DocumentHandler{
		documents: documents,
		extractor: extractor,
		pool:      pool,
		logger:    logger,
	}
}

// Validate handles schema-based document validation
// @Summary Validate documents through the schema rules
// @Description Validate the cpf and cnpj fields of the request body using the registered binding rules. A failed rule is reported as a named condition with its fixed message.
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body models.ValidateRequest true "Documents to validate"
// @Success 200 {array} models.ValidationResult
// @Failure 400 {object} models.ErrorResponse
// @Router /documents/validate [post]
func (h *DocumentHandler) Validate(c *gin.Context) {
	var request models.ValidateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]models.ValidationError, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, models.ValidationError{
					Field:   strings.ToLower(fe.Field()),
					Code:    validators.CodeFor(fe.Tag()),
					Message: validators.MessageFor(fe.Tag()),
				})
			}

			h.logger.WithFields(logrus.Fields{
				"request_id": c.GetString("request_id"),
				"fields":     len(fields),
			}).Warn("Document validation failed")

			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "Invalid document",
				Message:   fields[0].Message,
				Code:      fields[0].Code,
				Fields:    fields,
				Timestamp: time.Now(),
				Path:      c.Request.URL.Path,
			})
			return
		}

		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "Invalid request format",
			Message:   err.Error(),
			Code:      "INVALID_REQUEST",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	results := make([]models.ValidationResult, 0, 2)
	if request.CPF != "" {
		results = append(results, h.documents.Validate(request.CPF))
	}
	if request.CNPJ != "" {
		results = append(results, h.documents.Validate(request.CNPJ))
	}

	c.JSON(http.StatusOK, results)
}

// Analyze handles document analysis
// @Summary Analyze a document
// @Description Return cleaned, formatted and structural information about a CPF or CNPJ. Results are cached.
// @Tags Documents
// @Produce json
// @Param document path string true "CPF or CNPJ" example(54.550.752/0001-55)
// @Success 200 {object} models.AnalysisResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /documents/analyze/{document} [get]
func (h *DocumentHandler) Analyze(c *gin.Context) {
	analysis, err := h.documents.Analyze(c.Request.Context(), c.Param("document"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "Invalid document",
			Message:   err.Error(),
			Code:      "INVALID_DOCUMENT",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	if analysis.Cache {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}

	c.JSON(http.StatusOK, analysis)
}

// Batch handles batch document analysis
// @Summary Analyze multiple documents
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body models.BatchRequest true "Batch request"
// @Success 200 {object} models.BatchResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /documents/batch [post]
func (h *DocumentHandler) Batch(c *gin.Context) {
	start := time.Now()
	requestID := c.GetString("request_id")

	var request models.BatchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "Invalid request format",
			Message:   err.Error(),
			Code:      "INVALID_REQUEST",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"documents":  len(request.Documents),
	}).Info("Processing batch document analysis")

	response := h.pool.ProcessBatch(c.Request.Context(), request.Documents)

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"total":      response.Total,
		"success":    response.Success,
		"errors":     response.Errors,
		"duration":   time.Since(start),
	}).Info("Batch document analysis completed")

	c.JSON(http.StatusOK, response)
}

// Extract handles document extraction from text or HTML
// @Summary Extract documents from content
// @Description Scan free text or HTML for CPF and CNPJ numbers, keeping only checksum-valid ones
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body models.ExtractRequest true "Content to scan"
// @Success 200 {object} models.ExtractResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /documents/extract [post]
func (h *DocumentHandler) Extract(c *gin.Context) {
	var request models.ExtractRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "Invalid request format",
			Message:   err.Error(),
			Code:      "INVALID_REQUEST",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	result, err := h.extractor.Extract(request.Content, request.ContentType == "html")
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"error":      err.Error(),
		}).Error("Document extraction failed")

		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:     "Extraction failed",
			Message:   err.Error(),
			Code:      "EXTRACTION_ERROR",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
