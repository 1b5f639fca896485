package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/nnamdi-udeh/dealdesk/internal/pipeline"
)

// ProcessorQueue is a bounded worker pool over the pipeline processor.
// A document already waiting or running is not enqueued twice; the
// duplicate submission is dropped.
type ProcessorQueue struct {
	proc    *pipeline.Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu       sync.Mutex
	closed   bool
	sending  sync.WaitGroup // enqueues past the closed check, not yet on the channel
	inFlight map[uuid.UUID]struct{}
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewProcessorQueue(proc *pipeline.Processor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		proc:     proc,
		logger:   logger,
		workers:  4,
		timeout:  5 * time.Minute,
		ch:       make(chan Job, 64),
		inFlight: map[uuid.UUID]struct{}{},
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					var err error
					if job.Reprocess {
						err = q.proc.Reprocess(ctx, job.DocumentID)
					} else {
						err = q.proc.ProcessDocument(ctx, job.DocumentID)
					}
					cancel()

					q.mu.Lock()
					delete(q.inFlight, job.DocumentID)
					q.mu.Unlock()

					if err != nil {
						q.logger.Error("processing failed", "worker_id", workerID, "document_id", job.DocumentID, "error", err)
					} else {
						q.logger.Info("processed document successfully", "worker_id", workerID, "document_id", job.DocumentID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue submits a document for processing. Returns without error when
// the document is already in flight; the pipeline never runs the same
// document concurrently with itself.
func (q *ProcessorQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.logger.Warn("cannot enqueue: queue is shutting down", "document_id", job.DocumentID)
		return nil
	}
	if _, busy := q.inFlight[job.DocumentID]; busy {
		q.mu.Unlock()
		q.logger.Info("document already queued, skipping", "document_id", job.DocumentID)
		return nil
	}
	q.inFlight[job.DocumentID] = struct{}{}
	q.sending.Add(1)
	q.mu.Unlock()
	defer q.sending.Done()

	select {
	case q.ch <- job:
		q.logger.Info("queued document for processing", "document_id", job.DocumentID, "reprocess", job.Reprocess)
	default:
		q.logger.Warn("queue full, applying backpressure", "document_id", job.DocumentID)
		q.ch <- job
	}
	return nil
}

func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	// a send that passed the closed check must land before the channel closes
	q.sending.Wait()
	close(q.ch)

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
