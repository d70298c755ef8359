package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/docbr-api/internal/cnpj"
	"github.com/nexconsult/docbr-api/internal/cpf"
	"github.com/nexconsult/docbr-api/internal/models"
)

// Candidate patterns. CNPJ patterns cover the alphanumeric variant; check
// digits are always numeric.
var (
	formattedCPFPattern   = regexp.MustCompile(`\d{3}\.\d{3}\.\d{3}-\d{2}`)
	unformattedCPFPattern = regexp.MustCompile(`\b\d{11}\b`)

	formattedCNPJPattern   = regexp.MustCompile(`[0-9A-Z]{2}\.[0-9A-Z]{3}\.[0-9A-Z]{3}/[0-9A-Z]{4}-\d{2}`)
	unformattedCNPJPattern = regexp.MustCompile(`\b[0-9A-Z]{14}\b`)
)

// ExtractorService scans free text and HTML for CPF and CNPJ numbers
type ExtractorService struct {
	logger *logrus.Logger
}

// NewExtractorService creates a new extractor service
func NewExtractorService(logger *logrus.Logger) ExtractorServiceInterface {
	return &ExtractorService{
		logger: logger,
	}
}

// Extract scans the content for document candidates and keeps only those
// passing the checksum. HTML content is reduced to its text nodes first.
func (e *ExtractorService) Extract(content string, html bool) (*models.ExtractResponse, error) {
	text := content
	if html {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse HTML: %w", err)
		}
		// Scripts and styles are text nodes too; drop them before scanning
		doc.Find("script, style").Remove()
		text = doc.Text()
	}

	cpfs := e.scan(text, formattedCPFPattern, unformattedCPFPattern, cpf.IsValid, cpf.Clean)
	cnpjs := e.scan(text, formattedCNPJPattern, unformattedCNPJPattern, cnpj.IsValid, cnpj.Clean)

	e.logger.WithFields(logrus.Fields{
		"html":  html,
		"cpfs":  len(cpfs),
		"cnpjs": len(cnpjs),
	}).Debug("Document extraction completed")

	return &models.ExtractResponse{
		CPFs:  cpfs,
		CNPJs: cnpjs,
		Total: len(cpfs) + len(cnpjs),
	}, nil
}

// scan collects checksum-valid matches of both patterns, deduplicated and
// in cleaned form, preserving first-seen order
func (e *ExtractorService) scan(text string, formatted, unformatted *regexp.Regexp, isValid func(string) bool, clean func(string) string) []string {
	seen := make(map[string]bool)
	var results []string

	for _, pattern := range []*regexp.Regexp{formatted, unformatted} {
		for _, match := range pattern.FindAllString(text, -1) {
			if !isValid(match) {
				continue
			}
			cleaned := clean(match)
			if seen[cleaned] {
				continue
			}
			seen[cleaned] = true
			results = append(results, cleaned)
		}
	}

	return results
}

// Health returns extractor service health status
func (e *ExtractorService) Health() map[string]interface{} {
	return map[string]interface{}{
		"status": "healthy",
	}
}
