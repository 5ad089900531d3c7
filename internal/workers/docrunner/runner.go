package docrunner

import (
	"context"
	"log"
	"time"

	"tradesafe/internal/ports"
)

// Processor performs the generation work for a claimed job and returns the
// JSON result payload to store on the job row.
type Processor interface {
	Process(ctx context.Context, job ports.DocumentJob, progress func(step string, p float64)) ([]byte, error)
}

// Run starts a dispatcher plus worker goroutines that claim queued document
// jobs and process them until the context is cancelled.
func Run(ctx context.Context, repo ports.JobRepository, processor Processor, concurrency int, pollInterval time.Duration) {
	if concurrency < 1 {
		return
	}
	jobsCh := make(chan ports.DocumentJob, concurrency)

	// dispatcher loop
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				close(jobsCh)
				return
			case <-ticker.C:
				for {
					job, found, err := repo.ClaimNext(ctx)
					if err != nil {
						log.Printf("job claim error: %v", err)
						break
					}
					if !found {
						break
					}
					jobsCh <- job
				}
			}
		}
	}()

	// workers
	for i := 0; i < concurrency; i++ {
		go func(idx int) {
			for job := range jobsCh {
				progress := func(step string, p float64) {
					if err := repo.UpdateProgress(ctx, job.ID, step, p); err != nil {
						log.Printf("worker %d: progress update failed: %v", idx, err)
					}
				}
				result, err := processor.Process(ctx, job, progress)
				if err != nil {
					_ = repo.MarkFailed(ctx, job.ID, err.Error())
					log.Printf("worker %d: job %s (%s/%s) failed: %v", idx, job.ID, job.DocType, job.RecordID, err)
					continue
				}
				if err := repo.MarkCompleted(ctx, job.ID, result); err != nil {
					log.Printf("worker %d: complete err: %v", idx, err)
				}
			}
		}(i)
	}
}
