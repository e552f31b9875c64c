package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MatchRequest asks for a composite score of one skill set against one job
// text. ResumeText, when present, also feeds the vector component.
type MatchRequest struct {
	Skills     []string `json:"skills"`
	ResumeText string   `json:"resume_text,omitempty"`
	JobText    string   `json:"job_text" validate:"required"`

	// Persist stores the computed score for (ProfileID, JobID); both IDs
	// are required when set.
	Persist   bool      `json:"persist,omitempty"`
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	JobID     uuid.UUID `json:"job_id,omitempty"`
}

// ExtractRequest asks for skill extraction from free text.
type ExtractRequest struct {
	Text   string   `json:"text" validate:"required"`
	Custom []string `json:"custom,omitempty"`
	Fuzzy  bool     `json:"fuzzy,omitempty"`
}

// InferRequest asks for soft-skill inference from narrative text.
type InferRequest struct {
	Text string `json:"text" validate:"required"`
}

// AnalyzeRequest asks for a quality or ATS report on resume text.
type AnalyzeRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
}

// RankJobsRequest asks for a ranking of jobs against one profile.
type RankJobsRequest struct {
	Skills     []string    `json:"skills"`
	ResumeText string      `json:"resume_text,omitempty"`
	Jobs       []uuid.UUID `json:"job_ids" validate:"required,min=1"`
}

// AdviceRequest asks for career advice for a skill set.
type AdviceRequest struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years,omitempty" validate:"omitempty,min=0"`
}

// ApplyRequest links an existing profile to a job.
type ApplyRequest struct {
	ProfileID uuid.UUID `json:"profile_id" validate:"required"`
}

// CreateJobRequest creates a job posting.
type CreateJobRequest struct {
	Title            string `json:"title" validate:"required,min=1"`
	Company          string `json:"company" validate:"required,min=1"`
	Description      string `json:"description" validate:"required"`
	Requirements     string `json:"requirements,omitempty"`
	Responsibilities string `json:"responsibilities,omitempty"`
	ExperienceLevel  string `json:"experience_level,omitempty" validate:"omitempty,oneof=entry mid senior executive"`
	EmploymentType   string `json:"employment_type,omitempty" validate:"omitempty,oneof=full_time part_time contract internship freelance"`
	Location         string `json:"location,omitempty"`
	SalaryMin        int    `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax        int    `json:"salary_max,omitempty" validate:"omitempty,min=0"`
}

// CreateProfileRequest creates an applicant profile.
type CreateProfileRequest struct {
	Name       string `json:"name" validate:"required,min=1"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string `json:"phone,omitempty"`
	Skills     string `json:"skills,omitempty"` // comma-separated
	ResumeText string `json:"resume_text,omitempty"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ExtractRequest using the validator.
func (r *ExtractRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the InferRequest using the validator.
func (r *InferRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the RankJobsRequest using the validator.
func (r *RankJobsRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the AdviceRequest using the validator.
func (r *AdviceRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ApplyRequest using the validator.
func (r *ApplyRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the CreateProfileRequest using the validator.
func (r *CreateProfileRequest) Validate() error {
	return validate.Struct(r)
}

var validate = validator.New()
