package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"tradesafe/internal/domain"
	"tradesafe/internal/ports"
)

// JobRepository. Generation jobs are claimed with SKIP LOCKED so any number
// of workers can poll the same table without coordination.

func (db *DB) Enqueue(ctx context.Context, docType domain.DocType, recordID string) (string, error) {
	var jobID string
	err := db.Pool.QueryRow(ctx, `
        INSERT INTO document_jobs (doc_type, record_id, status, progress)
        VALUES ($1, $2, 'queued', 0)
        RETURNING id
    `, string(docType), recordID).Scan(&jobID)
	return jobID, err
}

// ClaimNext locks the oldest queued job and marks it running.
func (db *DB) ClaimNext(ctx context.Context) (job ports.DocumentJob, found bool, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var docType string
	err = tx.QueryRow(ctx, `
        SELECT id, doc_type, record_id FROM document_jobs
        WHERE status = 'queued'
        ORDER BY queued_at
        FOR UPDATE SKIP LOCKED
        LIMIT 1
    `).Scan(&job.ID, &docType, &job.RecordID)
	if errors.Is(err, pgx.ErrNoRows) {
		return job, false, nil
	}
	if err != nil {
		return job, false, err
	}
	job.DocType = domain.DocType(docType)

	if _, err = tx.Exec(ctx, `
        UPDATE document_jobs
        SET status='running', current_step='starting', started_at=now(), attempts=attempts+1
        WHERE id=$1
    `, job.ID); err != nil {
		return job, false, err
	}
	return job, true, nil
}

func (db *DB) UpdateProgress(ctx context.Context, jobID, step string, progress float64) error {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	_, err := db.Pool.Exec(ctx, `
        UPDATE document_jobs SET current_step=$2, progress=$3 WHERE id=$1
    `, jobID, step, progress)
	return err
}

func (db *DB) MarkCompleted(ctx context.Context, jobID string, result []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := db.Pool.Exec(ctx, `
        UPDATE document_jobs
        SET status='completed', current_step='done', progress=1, result=$2, finished_at=now()
        WHERE id=$1
    `, jobID, result)
	return err
}

func (db *DB) MarkFailed(ctx context.Context, jobID, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := db.Pool.Exec(ctx, `
        UPDATE document_jobs SET status='failed', error=$2, finished_at=now() WHERE id=$1
    `, jobID, reason)
	return err
}

func (db *DB) Status(ctx context.Context, jobID string) (ports.JobStatus, error) {
	var st ports.JobStatus
	err := db.Pool.QueryRow(ctx, `
        SELECT id, status, COALESCE(current_step, ''), progress, result, error
        FROM document_jobs WHERE id=$1
    `, jobID).Scan(&st.ID, &st.Status, &st.CurrentStep, &st.Progress, &st.Result, &st.Error)
	if errors.Is(err, pgx.ErrNoRows) {
		return st, ErrNotFound
	}
	return st, err
}
