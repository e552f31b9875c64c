package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobmatch/internal/types"
)

const profileColumns = `id, name, email, phone, skills, resume_text, has_picture,
	created_at, updated_at`

// CreateProfile inserts an applicant profile. Skills must already be
// canonicalized by the caller.
func (db *DB) CreateProfile(ctx context.Context, profile *types.Profile) (*types.Profile, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO profiles (name, email, phone, skills, resume_text, has_picture)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+profileColumns,
		profile.Name, profile.Email, profile.Phone, profile.Skills,
		profile.ResumeText, profile.HasPicture,
	)
	created, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return created, nil
}

// GetProfile retrieves a profile by ID. Returns nil when it does not exist.
func (db *DB) GetProfile(ctx context.Context, profileID uuid.UUID) (*types.Profile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, profileID)
	profile, err := scanProfile(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// UpdateProfileSkills replaces a profile's skill set.
func (db *DB) UpdateProfileSkills(ctx context.Context, profileID uuid.UUID, skills []string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE profiles SET skills = $1, updated_at = NOW() WHERE id = $2`,
		skills, profileID)
	if err != nil {
		return fmt.Errorf("failed to update profile skills: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", profileID)
	}
	return nil
}

// CreateApplication links a profile to a job.
func (db *DB) CreateApplication(ctx context.Context, profileID, jobID uuid.UUID) (*types.Application, error) {
	var app types.Application
	err := db.pool.QueryRow(ctx,
		`INSERT INTO applications (profile_id, job_id)
		 VALUES ($1, $2)
		 RETURNING id, profile_id, job_id, created_at`,
		profileID, jobID,
	).Scan(&app.ID, &app.ProfileID, &app.JobID, &app.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return &app, nil
}

// ListApplicants retrieves the profiles that applied to a job.
func (db *DB) ListApplicants(ctx context.Context, jobID uuid.UUID) ([]types.Profile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT p.id, p.name, p.email, p.phone, p.skills, p.resume_text, p.has_picture,
		        p.created_at, p.updated_at
		 FROM profiles p
		 JOIN applications a ON a.profile_id = p.id
		 WHERE a.job_id = $1
		 ORDER BY a.created_at ASC`,
		jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}
	defer rows.Close()

	var profiles []types.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, *profile)
	}
	return profiles, rows.Err()
}

func scanProfile(row pgx.Row) (*types.Profile, error) {
	var profile types.Profile
	err := row.Scan(&profile.ID, &profile.Name, &profile.Email, &profile.Phone,
		&profile.Skills, &profile.ResumeText, &profile.HasPicture,
		&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
