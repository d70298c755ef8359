package worker

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexconsult/docbr-api/internal/services"
)

func newTestPool(t *testing.T, workers, queueSize int) *Pool {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cache := services.NewCacheService(nil, time.Minute, logger)
	documents := services.NewDocumentService(cache, services.NewMetricsService(), logger)

	pool := NewPool(workers, queueSize, 5*time.Second, documents, logger)
	pool.Start()
	t.Cleanup(pool.Stop)

	return pool
}

func TestProcessBatch(t *testing.T) {
	pool := newTestPool(t, 2, 10)

	documents := []string{
		"29537995593",
		"54.550.752/0001-55",
		"not-a-document",
	}

	response := pool.ProcessBatch(context.Background(), documents)

	require.Len(t, response.Results, 3)
	assert.Equal(t, 3, response.Total)
	assert.Equal(t, 2, response.Success)
	assert.Equal(t, 1, response.Errors)

	// Results come back in input order regardless of worker scheduling
	assert.Equal(t, "29537995593", response.Results[0].Document)
	assert.True(t, response.Results[0].Success)
	require.NotNil(t, response.Results[0].Data)
	assert.True(t, response.Results[0].Data.Valid)

	assert.Equal(t, "54550752000155", response.Results[1].Document)
	assert.True(t, response.Results[1].Success)

	assert.False(t, response.Results[2].Success)
	assert.Nil(t, response.Results[2].Data)
	assert.NotEmpty(t, response.Results[2].Error)
}

func TestProcessBatch_InvalidChecksumIsStillAnalyzed(t *testing.T) {
	pool := newTestPool(t, 1, 10)

	response := pool.ProcessBatch(context.Background(), []string{"54550752000156"})

	require.Len(t, response.Results, 1)
	assert.Equal(t, 1, response.Success)
	require.NotNil(t, response.Results[0].Data)
	assert.False(t, response.Results[0].Data.Valid)
}

func TestProcessBatch_LargerThanWorkerCount(t *testing.T) {
	pool := newTestPool(t, 2, 32)

	documents := make([]string, 20)
	for i := range documents {
		documents[i] = "29537995593"
	}

	response := pool.ProcessBatch(context.Background(), documents)

	assert.Equal(t, 20, response.Total)
	assert.Equal(t, 20, response.Success)
	assert.Equal(t, 0, response.Errors)
}

func TestGetStats(t *testing.T) {
	pool := newTestPool(t, 2, 10)

	pool.ProcessBatch(context.Background(), []string{"29537995593", "bad"})

	stats := pool.GetStats()
	assert.Equal(t, int64(2), stats.TotalJobs)
	assert.Equal(t, int64(1), stats.CompletedJobs)
	assert.Equal(t, int64(1), stats.FailedJobs)
	assert.False(t, stats.StartTime.IsZero())
}
