package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/docbr-api/internal/cnpj"
	"github.com/nexconsult/docbr-api/internal/models"
	"github.com/nexconsult/docbr-api/internal/services"
)

// CNPJHandler handles CNPJ-related requests
type CNPJHandler struct {
	metrics services.MetricsServiceInterface
	logger  *logrus.Logger
}

// NewCNPJHandler creates a new CNPJ handler
func NewCNPJHandler(metrics services.MetricsServiceInterface, logger *logrus.Logger) *CNPJHandler {
	return &CNPJHandler{
		metrics: metrics,
		logger:  logger,
	}
}

// Validate handles CNPJ validation
// @Summary Validate a CNPJ
// @Description Check a CNPJ number against the official modulo-11 checksum. Accepts the legacy numeric and the alphanumeric variants.
// @Tags CNPJ
// @Produce json
// @Param cnpj path string true "CNPJ, with or without punctuation" example(54.550.752/0001-55)
// @Success 200 {object} models.ValidationResult
// @Router /cnpj/validate/{cnpj} [get]
func (h *CNPJHandler) Validate(c *gin.Context) {
	input := c.Param("cnpj")
	valid := cnpj.IsValid(input)
	h.metrics.RecordValidation(services.TypeCNPJ, valid)

	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"valid":      valid,
	}).Info("CNPJ validation")

	c.JSON(http.StatusOK, models.ValidationResult{
		Document: cnpj.Clean(input),
		Type:     services.TypeCNPJ,
		Valid:    valid,
	})
}

// Generate handles CNPJ generation
// @Summary Generate a random valid CNPJ
// @Description Generate a valid CNPJ. The type option selects the legacy numeric variant (default) or the alphanumeric one.
// @Tags CNPJ
// @Accept json
// @Produce json
// @Param request body models.GenerateCNPJRequest false "Generation options"
// @Success 200 {object} models.GenerateResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /cnpj/generate [post]
func (h *CNPJHandler) Generate(c *gin.Context) {
	var request models.GenerateCNPJRequest
	if c.Request.ContentLength > 0 {
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
	}

	variant := request.Type
	if variant == "" {
		variant = string(cnpj.TypeNumeric)
	}

	document := cnpj.Generate(cnpj.Type(variant), request.Formatted)

	c.JSON(http.StatusOK, models.GenerateResponse{
		Document:  document,
		Type:      services.TypeCNPJ,
		Variant:   variant,
		Formatted: request.Formatted,
	})
}

// Format handles CNPJ formatting
// @Summary Format a CNPJ
// @Description Render a 14-character CNPJ as XX.XXX.XXX/XXXX-XX
// @Tags CNPJ
// @Produce json
// @Param cnpj path string true "CNPJ characters" example(54550752000155)
// @Success 200 {object} models.FormatResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /cnpj/format/{cnpj} [get]
func (h *CNPJHandler) Format(c *gin.Context) {
	cleaned := cnpj.Clean(c.Param("cnpj"))
	if len(cleaned) != 14 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "Invalid CNPJ length",
			Message:   "CNPJ must contain exactly 14 characters",
			Code:      "INVALID_LENGTH",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	c.JSON(http.StatusOK, models.FormatResponse{
		Document:  cleaned,
		Formatted: cnpj.Format(cleaned),
	})
}
