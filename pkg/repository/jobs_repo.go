package repository

import (
	"context"
	"database/sql"

	"github.com/hirefold/hirefold/pkg/domain"
)

// JobsRepository handles job-board persistence. The board is shared: jobs
// are not owned by a company.
type JobsRepository struct {
	db *sql.DB
}

// NewJobsRepository creates a new jobs repository.
func NewJobsRepository(db *sql.DB) *JobsRepository {
	return &JobsRepository{db: db}
}

// ReplaceAll swaps the entire job board for the given set in one
// transaction. Used by the seed operation.
func (r *JobsRepository) ReplaceAll(ctx context.Context, jobs []*domain.Job) error {
	return Tx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM jobs`); err != nil {
			return err
		}
		query := `
			INSERT INTO jobs (id, title, work_policy, location, department, employment_type,
				experience_level, job_type, salary_range, job_slug, posted_days_ago, status,
				created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		`
		for _, job := range jobs {
			_, err := tx.ExecContext(ctx, query,
				job.ID, job.Title, job.WorkPolicy, job.Location, job.Department,
				job.EmploymentType, job.ExperienceLevel, job.JobType, job.SalaryRange,
				job.JobSlug, job.PostedDaysAgo, job.Status, job.CreatedAt, job.UpdatedAt,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// List lists every job on the board, newest first.
func (r *JobsRepository) List(ctx context.Context) ([]*domain.Job, error) {
	query := `
		SELECT id, title, work_policy, location, department, employment_type,
		       experience_level, job_type, salary_range, job_slug, posted_days_ago, status,
		       created_at, updated_at
		FROM jobs
		ORDER BY created_at DESC
	`
	return r.list(ctx, query)
}

// ListOpen lists only open jobs, newest first.
func (r *JobsRepository) ListOpen(ctx context.Context) ([]*domain.Job, error) {
	query := `
		SELECT id, title, work_policy, location, department, employment_type,
		       experience_level, job_type, salary_range, job_slug, posted_days_ago, status,
		       created_at, updated_at
		FROM jobs
		WHERE status = 'open'
		ORDER BY created_at DESC
	`
	return r.list(ctx, query)
}

func (r *JobsRepository) list(ctx context.Context, query string) ([]*domain.Job, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*domain.Job
	for rows.Next() {
		job := &domain.Job{}
		err := rows.Scan(
			&job.ID, &job.Title, &job.WorkPolicy, &job.Location, &job.Department,
			&job.EmploymentType, &job.ExperienceLevel, &job.JobType, &job.SalaryRange,
			&job.JobSlug, &job.PostedDaysAgo, &job.Status, &job.CreatedAt, &job.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
