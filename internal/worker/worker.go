package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/docbr-api/internal/models"
	"github.com/nexconsult/docbr-api/internal/services"
)

// Job represents a single document to analyze inside a batch
type Job struct {
	ID       string
	Document string
	Created  time.Time
	Result   chan models.BatchResult
}

// PoolStats holds counters for the pool
type PoolStats struct {
	TotalJobs     int64     `json:"total_jobs"`
	CompletedJobs int64     `json:"completed_jobs"`
	FailedJobs    int64     `json:"failed_jobs"`
	ActiveWorkers int32     `json:"active_workers"`
	QueueSize     int       `json:"queue_size"`
	StartTime     time.Time `json:"start_time"`
}

// Pool fans batch document requests out to a fixed set of workers
type Pool struct {
	documents services.DocumentServiceInterface
	logger    *logrus.Logger

	workerCount int
	jobQueue    chan *Job
	jobTimeout  time.Duration

	stats PoolStats

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPool creates a new worker pool
func NewPool(workerCount, queueSize int, jobTimeout time.Duration, documents services.DocumentServiceInterface, logger *logrus.Logger) *Pool {
	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		documents:   documents,
		logger:      logger,
		workerCount: workerCount,
		jobQueue:    make(chan *Job, queueSize),
		jobTimeout:  jobTimeout,
		ctx:         ctx,
		cancel:      cancel,
		stats: PoolStats{
			StartTime: time.Now(),
		},
	}
}

// Start launches the workers
func (p *Pool) Start() {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	p.logger.WithField("workers", p.workerCount).Info("Worker pool started")
}

// Stop drains and stops the pool
func (p *Pool) Stop() {
	p.logger.Info("Stopping worker pool...")

	p.cancel()
	close(p.jobQueue)
	p.wg.Wait()

	p.logger.Info("Worker pool stopped")
}

// ProcessBatch analyzes all documents through the pool and collects the
// per-document results in input order
func (p *Pool) ProcessBatch(ctx context.Context, documents []string) models.BatchResponse {
	start := time.Now()

	jobs := make([]*Job, len(documents))
	for i, document := range documents {
		jobs[i] = &Job{
			ID:       uuid.New().String(),
			Document: document,
			Created:  time.Now(),
			Result:   make(chan models.BatchResult, 1),
		}
	}

	for _, job := range jobs {
		select {
		case p.jobQueue <- job:
			atomic.AddInt64(&p.stats.TotalJobs, 1)
		case <-ctx.Done():
			job.Result <- models.BatchResult{
				Document: job.Document,
				Error:    "canceled: " + ctx.Err().Error(),
			}
		case <-time.After(p.jobTimeout):
			job.Result <- models.BatchResult{
				Document: job.Document,
				Error:    "timeout: queue is full",
			}
		}
	}

	results := make([]models.BatchResult, len(jobs))
	var success, errors int

	for i, job := range jobs {
		select {
		case result := <-job.Result:
			results[i] = result
		case <-time.After(p.jobTimeout):
			results[i] = models.BatchResult{
				Document: job.Document,
				Error:    "timeout: processing took too long",
			}
		}

		if results[i].Success {
			success++
		} else {
			errors++
		}
	}

	return models.BatchResponse{
		Results:    results,
		Total:      len(results),
		Success:    success,
		Errors:     errors,
		DurationMs: time.Since(start).Milliseconds(),
		Timestamp:  time.Now(),
	}
}

// GetStats returns current pool statistics
func (p *Pool) GetStats() PoolStats {
	return PoolStats{
		TotalJobs:     atomic.LoadInt64(&p.stats.TotalJobs),
		CompletedJobs: atomic.LoadInt64(&p.stats.CompletedJobs),
		FailedJobs:    atomic.LoadInt64(&p.stats.FailedJobs),
		ActiveWorkers: atomic.LoadInt32(&p.stats.ActiveWorkers),
		QueueSize:     len(p.jobQueue),
		StartTime:     p.stats.StartTime,
	}
}

// worker consumes jobs until the queue closes or the pool is canceled
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	p.logger.WithField("worker_id", id).Debug("Worker started")

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				p.logger.WithField("worker_id", id).Debug("Worker stopped")
				return
			}
			p.processJob(id, job)

		case <-p.ctx.Done():
			p.logger.WithField("worker_id", id).Debug("Worker stopped by context")
			return
		}
	}
}

// processJob analyzes one document and delivers the result
func (p *Pool) processJob(workerID int, job *Job) {
	atomic.AddInt32(&p.stats.ActiveWorkers, 1)
	defer atomic.AddInt32(&p.stats.ActiveWorkers, -1)

	start := time.Now()

	analysis, err := p.documents.Analyze(p.ctx, job.Document)

	var result models.BatchResult
	if err != nil {
		result = models.BatchResult{
			Document:   job.Document,
			Error:      err.Error(),
			DurationMs: time.Since(start).Milliseconds(),
		}
		atomic.AddInt64(&p.stats.FailedJobs, 1)

		p.logger.WithFields(logrus.Fields{
			"worker_id": workerID,
			"job_id":    job.ID,
			"error":     err.Error(),
		}).Warn("Job failed")
	} else {
		result = models.BatchResult{
			Document:   analysis.Cleaned,
			Success:    true,
			Data:       analysis,
			DurationMs: time.Since(start).Milliseconds(),
		}
		atomic.AddInt64(&p.stats.CompletedJobs, 1)
	}

	select {
	case job.Result <- result:
	default:
		p.logger.WithFields(logrus.Fields{
			"worker_id": workerID,
			"job_id":    job.ID,
		}).Warn("Result channel full, dropping result")
	}
}
