// Package types provides type definitions for structured data shared across
// the jobmatch system.
package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Experience levels recognized in job postings.
const (
	ExperienceEntry     = "entry"
	ExperienceMid       = "mid"
	ExperienceSenior    = "senior"
	ExperienceExecutive = "executive"
)

// Employment types recognized in job postings.
const (
	EmploymentFullTime   = "full_time"
	EmploymentPartTime   = "part_time"
	EmploymentContract   = "contract"
	EmploymentInternship = "internship"
	EmploymentFreelance  = "freelance"
)

// Job represents a job posting as consumed by the matching pipeline.
type Job struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	Description      string    `json:"description"`
	Requirements     string    `json:"requirements"`
	Responsibilities string    `json:"responsibilities"`
	ExperienceLevel  string    `json:"experience_level,omitempty"`
	EmploymentType   string    `json:"employment_type,omitempty"`
	Location         string    `json:"location,omitempty"`
	SalaryMin        int       `json:"salary_min,omitempty"`
	SalaryMax        int       `json:"salary_max,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// MatchText returns the concatenated free text a job contributes to
// matching: description, requirements and responsibilities.
func (j *Job) MatchText() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{j.Description, j.Requirements, j.Responsibilities} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
