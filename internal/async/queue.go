package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one queued pipeline run.
type Job struct {
	DocumentID  uuid.UUID
	Reprocess   bool // reset prior outputs before running
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
