package services

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexconsult/docbr-api/internal/cnpj"
	"github.com/nexconsult/docbr-api/internal/cpf"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newDocumentService() DocumentServiceInterface {
	logger := testLogger()
	cache := NewCacheService(nil, time.Minute, logger)
	return NewDocumentService(cache, NewMetricsService(), logger)
}

func TestValidate_Classification(t *testing.T) {
	svc := newDocumentService()

	tests := []struct {
		name     string
		input    string
		wantType string
		wantOK   bool
	}{
		{"valid cpf", "295.379.955-93", TypeCPF, true},
		{"invalid cpf", "29537995594", TypeCPF, false},
		{"valid numeric cnpj", "54.550.752/0001-55", TypeCNPJ, true},
		{"valid alphanumeric cnpj", "12.ABC.345/01DE-35", TypeCNPJ, true},
		{"invalid cnpj", "12ABC34501DE36", TypeCNPJ, false},
		{"unrecognized", "123", TypeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.Validate(tt.input)
			assert.Equal(t, tt.wantType, result.Type)
			assert.Equal(t, tt.wantOK, result.Valid)
		})
	}
}

func TestAnalyze_CNPJ(t *testing.T) {
	svc := newDocumentService()
	ctx := context.Background()

	analysis, err := svc.Analyze(ctx, "54.550.752/0001-55")
	require.NoError(t, err)

	assert.Equal(t, "54.550.752/0001-55", analysis.Original)
	assert.Equal(t, "54550752000155", analysis.Cleaned)
	assert.Equal(t, "54.550.752/0001-55", analysis.Formatted)
	assert.Equal(t, TypeCNPJ, analysis.Type)
	assert.Equal(t, string(cnpj.TypeNumeric), analysis.Variant)
	assert.True(t, analysis.Valid)
	assert.Equal(t, "MATRIZ", analysis.Establishment)
	assert.Equal(t, "54550752", analysis.Root)
	assert.Equal(t, "0001", analysis.Branch)
	assert.False(t, analysis.Cache)
}

func TestAnalyze_AlphanumericVariant(t *testing.T) {
	svc := newDocumentService()

	analysis, err := svc.Analyze(context.Background(), "12ABC34501DE35")
	require.NoError(t, err)

	assert.Equal(t, string(cnpj.TypeAlphanumeric), analysis.Variant)
	assert.True(t, analysis.Valid)
}

func TestAnalyze_CPF(t *testing.T) {
	svc := newDocumentService()

	analysis, err := svc.Analyze(context.Background(), "29537995593")
	require.NoError(t, err)

	assert.Equal(t, TypeCPF, analysis.Type)
	assert.Equal(t, "295.379.955-93", analysis.Formatted)
	assert.True(t, analysis.Valid)
	assert.Empty(t, analysis.Root)
}

func TestAnalyze_CacheHit(t *testing.T) {
	svc := newDocumentService()
	ctx := context.Background()

	first, err := svc.Analyze(ctx, "54550752000155")
	require.NoError(t, err)
	assert.False(t, first.Cache)

	second, err := svc.Analyze(ctx, "54.550.752/0001-55")
	require.NoError(t, err)
	assert.True(t, second.Cache)
	// The cached entry keeps the caller's original input
	assert.Equal(t, "54.550.752/0001-55", second.Original)
	assert.Equal(t, first.Cleaned, second.Cleaned)
}

func TestAnalyze_InvalidDocumentStillAnalyzed(t *testing.T) {
	svc := newDocumentService()

	// Wrong checksum is an analysis result, not an error
	analysis, err := svc.Analyze(context.Background(), "54550752000156")
	require.NoError(t, err)
	assert.False(t, analysis.Valid)
	assert.Empty(t, analysis.Formatted)
}

func TestAnalyze_UnrecognizedFormat(t *testing.T) {
	svc := newDocumentService()

	_, err := svc.Analyze(context.Background(), "123")
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	svc := newDocumentService()

	assert.True(t, cpf.IsValid(svc.GenerateCPF(false)))
	assert.True(t, cpf.IsValid(svc.GenerateCPF(true)))

	numeric, err := svc.GenerateCNPJ("", false)
	require.NoError(t, err)
	assert.True(t, cnpj.IsValid(numeric))
	assert.False(t, cnpj.IsAlphanumeric(numeric))

	alpha, err := svc.GenerateCNPJ("alfanumeric", false)
	require.NoError(t, err)
	assert.True(t, cnpj.IsValid(alpha))

	_, err = svc.GenerateCNPJ("hexadecimal", false)
	assert.Error(t, err)
}

func TestAnalysisCacheKey(t *testing.T) {
	assert.Equal(t, "document:analysis:54550752000155", AnalysisCacheKey("54.550.752/0001-55"))
	assert.Equal(t, "document:analysis:29537995593", AnalysisCacheKey("295.379.955-93"))
}
