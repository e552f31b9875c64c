package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobmatch/internal/types"
)

// SaveMatchScore persists a computed score for a (profile, job) pair. Scores
// are transient by contract; persisting one is always an explicit caller
// decision, and a re-computation overwrites the stored value. The breakdown
// is stored as JSON for ranking-explanation display.
func (db *DB) SaveMatchScore(ctx context.Context, profileID, jobID uuid.UUID, score types.MatchScore) error {
	breakdown, err := json.Marshal(score.Breakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal breakdown: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO match_scores (profile_id, job_id, score, breakdown)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (profile_id, job_id)
		 DO UPDATE SET score = $3, breakdown = $4, created_at = NOW()`,
		profileID, jobID, score.Score, breakdown,
	)
	if err != nil {
		return fmt.Errorf("failed to save match score: %w", err)
	}
	return nil
}

// GetMatchScore retrieves a stored score for a (profile, job) pair. Returns
// nil when no score was stored.
func (db *DB) GetMatchScore(ctx context.Context, profileID, jobID uuid.UUID) (*types.MatchScore, error) {
	var score types.MatchScore
	var breakdown []byte
	err := db.pool.QueryRow(ctx,
		`SELECT score, breakdown FROM match_scores
		 WHERE profile_id = $1 AND job_id = $2`,
		profileID, jobID,
	).Scan(&score.Score, &breakdown)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match score: %w", err)
	}

	if len(breakdown) > 0 {
		if err := json.Unmarshal(breakdown, &score.Breakdown); err != nil {
			return nil, fmt.Errorf("failed to unmarshal breakdown: %w", err)
		}
	}
	return &score, nil
}
