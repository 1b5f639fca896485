package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nnamdi-udeh/dealdesk/constants"
	"github.com/nnamdi-udeh/dealdesk/internal/analyze"
	"github.com/nnamdi-udeh/dealdesk/internal/entity"
	"github.com/nnamdi-udeh/dealdesk/internal/extract"
	"github.com/nnamdi-udeh/dealdesk/internal/pipeline"
	"github.com/nnamdi-udeh/dealdesk/internal/repository"
	"github.com/nnamdi-udeh/dealdesk/internal/score"
)

// countingDocuments is a DocumentRepository whose runs fail at the
// extraction stage (the source path never exists); gate, when set,
// holds every run inside GetDocument until released.
type countingDocuments struct {
	mu   sync.Mutex
	gets int
	gate chan struct{}
}

func (f *countingDocuments) getCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gets
}

func (f *countingDocuments) CreateDocument(_ context.Context, _ *repository.CreateDocumentRequest) (*entity.Document, error) {
	return nil, nil
}

func (f *countingDocuments) GetDocument(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	f.mu.Lock()
	f.gets++
	f.mu.Unlock()
	if f.gate != nil {
		<-f.gate
	}
	return &entity.Document{
		ID:               id,
		FileType:         "application/pdf",
		SourcePath:       "/nonexistent/" + id.String() + ".pdf",
		ProcessingStatus: string(constants.StatusPending),
	}, nil
}

func (f *countingDocuments) ListDocuments(_ context.Context, _ uuid.UUID, _ string) ([]*entity.Document, error) {
	return nil, nil
}

func (f *countingDocuments) MarkProcessing(_ context.Context, _ uuid.UUID) error { return nil }

func (f *countingDocuments) MarkCompleted(_ context.Context, _ uuid.UUID, _ *repository.CompleteDocumentRequest) error {
	return nil
}

func (f *countingDocuments) MarkFailed(_ context.Context, _ uuid.UUID, _ string) error { return nil }

func (f *countingDocuments) ResetForReprocessing(_ context.Context, _ uuid.UUID) error { return nil }

type noopEvaluations struct{}

func (noopEvaluations) CreateEvaluation(_ context.Context, _ uuid.UUID, _ *score.ScoreResult) (*entity.Evaluation, error) {
	return &entity.Evaluation{}, nil
}

func (noopEvaluations) LatestEvaluation(_ context.Context, _ uuid.UUID) (*entity.Evaluation, error) {
	return nil, nil
}

func (noopEvaluations) ListByDocument(_ context.Context, _ uuid.UUID) ([]*entity.Evaluation, error) {
	return nil, nil
}

func (noopEvaluations) ListByVenture(_ context.Context, _ uuid.UUID) ([]*entity.Evaluation, error) {
	return nil, nil
}

func newQueueUnderTest(docs *countingDocuments, opts ...Option) *ProcessorQueue {
	proc := pipeline.NewProcessor(nil, docs, noopEvaluations{},
		extract.NewCoordinator(extract.Config{}, nil),
		analyze.NewAnalyzer(analyze.DefaultConfig(), nil),
		score.NewEngine(score.DefaultConfig(), nil),
	)
	return NewProcessorQueue(proc, nil, opts...)
}

func TestEnqueueDropsInFlightDuplicate(t *testing.T) {
	docs := &countingDocuments{gate: make(chan struct{})}
	q := newQueueUnderTest(docs, WithWorkers(2))

	id := uuid.New()
	ctx := context.Background()
	if err := q.Enqueue(ctx, Job{DocumentID: id, SubmittedAt: time.Now()}); err != nil {
		t.Fatal(err)
	}
	// the first submission is still queued or running; this one drops
	if err := q.Enqueue(ctx, Job{DocumentID: id, SubmittedAt: time.Now()}); err != nil {
		t.Fatal(err)
	}

	close(docs.gate)
	q.Shutdown(ctx)

	if got := docs.getCount(); got != 1 {
		t.Errorf("document fetched %d times, want 1 (duplicate dropped)", got)
	}
}

func TestShutdownDrainsQueuedJobs(t *testing.T) {
	docs := &countingDocuments{}
	q := newQueueUnderTest(docs, WithWorkers(1), WithQueueSize(8))

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if err := q.Enqueue(ctx, Job{DocumentID: uuid.New()}); err != nil {
			t.Fatal(err)
		}
	}
	q.Shutdown(ctx)

	if got := docs.getCount(); got != 3 {
		t.Errorf("processed %d jobs before shutdown completed, want 3", got)
	}
}

func TestShutdownDuringConcurrentEnqueues(t *testing.T) {
	docs := &countingDocuments{}
	q := newQueueUnderTest(docs, WithWorkers(2), WithQueueSize(1))

	const (
		goroutines = 8
		perWorker  = 25
	)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for j := 0; j < perWorker; j++ {
				if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); err != nil {
					t.Errorf("Enqueue: %v", err)
				}
			}
		}()
	}
	close(start)
	// a send racing the close must land, never panic
	q.Shutdown(context.Background())
	wg.Wait()

	if got := docs.getCount(); got > goroutines*perWorker {
		t.Errorf("processed %d jobs, more than the %d submitted", got, goroutines*perWorker)
	}
}

func TestEnqueueAfterShutdownIsNoop(t *testing.T) {
	docs := &countingDocuments{}
	q := newQueueUnderTest(docs)
	q.Shutdown(context.Background())

	if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); err != nil {
		t.Errorf("enqueue after shutdown should drop quietly, got %v", err)
	}
	if got := docs.getCount(); got != 0 {
		t.Errorf("processed %d jobs after shutdown, want 0", got)
	}
}
