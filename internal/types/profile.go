package types

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents an applicant profile as consumed by the matching
// pipeline. Skills holds canonical skill strings; ResumeText is the raw
// resume body.
type Profile struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Skills     []string  `json:"skills,omitempty"`
	ResumeText string    `json:"resume_text,omitempty"`
	HasPicture bool      `json:"has_picture,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Application links an applicant profile to a job posting.
type Application struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	JobID     uuid.UUID `json:"job_id"`
	CreatedAt time.Time `json:"created_at"`
}
