package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobmatch/internal/types"
)

const jobColumns = `id, title, company, description, requirements, responsibilities,
	experience_level, employment_type, location, salary_min, salary_max,
	is_active, created_at, updated_at`

// CreateJob inserts a job posting and returns it with generated fields set.
func (db *DB) CreateJob(ctx context.Context, job *types.Job) (*types.Job, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, company, description, requirements, responsibilities,
		     experience_level, employment_type, location, salary_min, salary_max, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, true)
		 RETURNING `+jobColumns,
		job.Title, job.Company, job.Description, job.Requirements, job.Responsibilities,
		job.ExperienceLevel, job.EmploymentType, job.Location, job.SalaryMin, job.SalaryMax,
	)
	created, err := scanJob(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return created, nil
}

// GetJob retrieves a job by ID. Returns nil when the job does not exist.
func (db *DB) GetJob(ctx context.Context, jobID uuid.UUID) (*types.Job, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, jobID)
	job, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// GetJobs retrieves the jobs with the given IDs. Missing IDs are silently
// omitted from the result.
func (db *DB) GetJobs(ctx context.Context, jobIDs []uuid.UUID) ([]types.Job, error) {
	if len(jobIDs) == 0 {
		return nil, nil
	}
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = ANY($1)`, jobIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs: %w", err)
	}
	defer rows.Close()
	return collectJobs(rows)
}

// JobFilters holds optional filters for listing jobs.
type JobFilters struct {
	Company         string
	ExperienceLevel string
	ActiveOnly      bool
	Limit           int
}

// ListJobs retrieves jobs with optional filters, newest first.
func (db *DB) ListJobs(ctx context.Context, filters JobFilters) ([]types.Job, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Company != "" {
		query += fmt.Sprintf(" AND company ILIKE $%d", argNum)
		args = append(args, "%"+filters.Company+"%")
		argNum++
	}
	if filters.ExperienceLevel != "" {
		query += fmt.Sprintf(" AND experience_level = $%d", argNum)
		args = append(args, filters.ExperienceLevel)
		argNum++
	}
	if filters.ActiveOnly {
		query += " AND is_active"
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()
	return collectJobs(rows)
}

// DeactivateJob marks a job inactive so it stops appearing in rankings.
func (db *DB) DeactivateJob(ctx context.Context, jobID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE jobs SET is_active = false, updated_at = NOW() WHERE id = $1`, jobID)
	if err != nil {
		return fmt.Errorf("failed to deactivate job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", jobID)
	}
	return nil
}

func scanJob(row pgx.Row) (*types.Job, error) {
	var job types.Job
	err := row.Scan(&job.ID, &job.Title, &job.Company, &job.Description,
		&job.Requirements, &job.Responsibilities, &job.ExperienceLevel,
		&job.EmploymentType, &job.Location, &job.SalaryMin, &job.SalaryMax,
		&job.IsActive, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func collectJobs(rows pgx.Rows) ([]types.Job, error) {
	var jobs []types.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}
