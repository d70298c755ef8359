package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/docbr-api/internal/cpf"
	"github.com/nexconsult/docbr-api/internal/models"
	"github.com/nexconsult/docbr-api/internal/services"
)

// CPFHandler handles CPF-related requests
type CPFHandler struct {
	metrics services.MetricsServiceInterface
	logger  *logrus.Logger
}

// NewCPFHandler creates a new CPF handler
func NewCPFHandler(metrics services.MetricsServiceInterface, logger *logrus.Logger) *CPFHandler {
	return &CPFHandler{
		metrics: metrics,
		logger:  logger,
	}
}

// Validate handles CPF validation
// @Summary Validate a CPF
// @Description Check a CPF number against the official modulo-11 checksum
// @Tags CPF
// @Produce json
// @Param cpf path string true "CPF, with or without punctuation" example(295.379.955-93)
// @Success 200 {object} models.ValidationResult
// @Router /cpf/validate/{cpf} [get]
func (h *CPFHandler) Validate(c *gin.Context) {
	input := c.Param("cpf")
	valid := cpf.IsValid(input)
	h.metrics.RecordValidation(services.TypeCPF, valid)

	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"valid":      valid,
	}).Info("CPF validation")

	c.JSON(http.StatusOK, models.ValidationResult{
		Document: cpf.Clean(input),
		Type:     services.TypeCPF,
		Valid:    valid,
	})
}

// Generate handles CPF generation
// @Summary Generate a random valid CPF
// @Tags CPF
// @Accept json
// @Produce json
// @Param request body models.GenerateCPFRequest false "Generation options"
// @Success 200 {object} models.GenerateResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /cpf/generate [post]
func (h *CPFHandler) Generate(c *gin.Context) {
	var request models.GenerateCPFRequest
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

	document := cpf.Generate(request.Formatted)

	c.JSON(http.StatusOK, models.GenerateResponse{
		Document:  document,
		Type:      services.TypeCPF,
		Formatted: request.Formatted,
	})
}

// Format handles CPF formatting
// @Summary Format a CPF
// @Description Render an 11-digit CPF as XXX.XXX.XXX-XX
// @Tags CPF
// @Produce json
// @Param cpf path string true "CPF digits" example(29537995593)
// @Success 200 {object} models.FormatResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /cpf/format/{cpf} [get]
func (h *CPFHandler) Format(c *gin.Context) {
	cleaned := cpf.Clean(c.Param("cpf"))
	if len(cleaned) != 11 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "Invalid CPF length",
			Message:   "CPF must contain exactly 11 digits",
			Code:      "INVALID_LENGTH",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	c.JSON(http.StatusOK, models.FormatResponse{
		Document:  cleaned,
		Formatted: cpf.Format(cleaned),
	})
}
