package ports

import (
	"context"

	"tradesafe/internal/domain"
)

// DocumentJob is one queued generation request.
type DocumentJob struct {
	ID       string
	DocType  domain.DocType
	RecordID string
}

// JobStatus is the observable state of a generation job.
type JobStatus struct {
	ID          string
	Status      string // queued|running|completed|failed
	CurrentStep string
	Progress    float64
	Result      []byte // completed jobs carry the JSON generation result
	Error       *string
}

// JobRepository supports enqueueing, claiming and updating generation jobs.
type JobRepository interface {
	Enqueue(ctx context.Context, docType domain.DocType, recordID string) (jobID string, err error)
	ClaimNext(ctx context.Context) (job DocumentJob, found bool, err error)
	UpdateProgress(ctx context.Context, jobID, step string, progress float64) error
	MarkCompleted(ctx context.Context, jobID string, result []byte) error
	MarkFailed(ctx context.Context, jobID, reason string) error
	Status(ctx context.Context, jobID string) (JobStatus, error)
}
