package docrunner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tradesafe/internal/domain"
	"tradesafe/internal/ports"
)

type memJobs struct {
	mu        sync.Mutex
	queue     []ports.DocumentJob
	completed map[string][]byte
	failed    map[string]string
	steps     map[string][]string
}

func newMemJobs(jobs ...ports.DocumentJob) *memJobs {
	return &memJobs{
		queue:     jobs,
		completed: map[string][]byte{},
		failed:    map[string]string{},
		steps:     map[string][]string{},
	}
}

func (m *memJobs) Enqueue(ctx context.Context, docType domain.DocType, recordID string) (string, error) {
	return "", errors.New("not used")
}

func (m *memJobs) ClaimNext(ctx context.Context) (ports.DocumentJob, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queue) == 0 {
		return ports.DocumentJob{}, false, nil
	}
	job := m.queue[0]
	m.queue = m.queue[1:]
	return job, true, nil
}

func (m *memJobs) UpdateProgress(ctx context.Context, jobID, step string, progress float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.steps[jobID] = append(m.steps[jobID], step)
	return nil
}

func (m *memJobs) MarkCompleted(ctx context.Context, jobID string, result []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completed[jobID] = result
	return nil
}

func (m *memJobs) MarkFailed(ctx context.Context, jobID, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failed[jobID] = reason
	return nil
}

func (m *memJobs) Status(ctx context.Context, jobID string) (ports.JobStatus, error) {
	return ports.JobStatus{}, errors.New("not used")
}

type funcProcessor func(ctx context.Context, job ports.DocumentJob, progress func(step string, p float64)) ([]byte, error)

func (f funcProcessor) Process(ctx context.Context, job ports.DocumentJob, progress func(step string, p float64)) ([]byte, error) {
	return f(ctx, job, progress)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestRunProcessesQueuedJobs(t *testing.T) {
	repo := newMemJobs(
		ports.DocumentJob{ID: "j1", DocType: domain.DocAccident, RecordID: "r1"},
		ports.DocumentJob{ID: "j2", DocType: domain.DocCoshh, RecordID: "r2"},
	)
	proc := funcProcessor(func(ctx context.Context, job ports.DocumentJob, progress func(string, float64)) ([]byte, error) {
		progress("rendering document", 0.2)
		return []byte(`{"reference":"` + job.RecordID + `"}`), nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	Run(ctx, repo, proc, 2, 10*time.Millisecond)

	waitFor(t, func() bool {
		repo.mu.Lock()
		defer repo.mu.Unlock()
		return len(repo.completed) == 2
	})

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, []byte(`{"reference":"r1"}`), repo.completed["j1"])
	assert.Equal(t, []byte(`{"reference":"r2"}`), repo.completed["j2"])
	assert.Equal(t, []string{"rendering document"}, repo.steps["j1"])
	assert.Empty(t, repo.failed)
}

func TestRunMarksFailedJobs(t *testing.T) {
	repo := newMemJobs(ports.DocumentJob{ID: "j1", DocType: domain.DocAccident, RecordID: "r1"})
	proc := funcProcessor(func(ctx context.Context, job ports.DocumentJob, progress func(string, float64)) ([]byte, error) {
		return nil, errors.New("render pdf: rendering service returned 500")
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	Run(ctx, repo, proc, 1, 10*time.Millisecond)

	waitFor(t, func() bool {
		repo.mu.Lock()
		defer repo.mu.Unlock()
		return len(repo.failed) == 1
	})

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Contains(t, repo.failed["j1"], "rendering service returned 500")
	assert.Empty(t, repo.completed)
}

func TestRunZeroConcurrencyIsNoop(t *testing.T) {
	repo := newMemJobs(ports.DocumentJob{ID: "j1"})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	Run(ctx, repo, funcProcessor(func(context.Context, ports.DocumentJob, func(string, float64)) ([]byte, error) {
		t.Fatal("processor must not run")
		return nil, nil
	}), 0, time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Len(t, repo.queue, 1)
}
