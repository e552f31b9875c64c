package types

import "github.com/google/uuid"

// Breakdown exposes the raw component values behind a composite match
// score, for observability and ranking-explanation UI. Components that
// could not be computed have their Has flag unset and contribute nothing
// to the final average.
type Breakdown struct {
	VectorScore  int  `json:"vector_score"`
	HasVector    bool `json:"has_vector"`
	SkillScore   int  `json:"skill_score"`
	HasSkill     bool `json:"has_skill"`
	KeywordScore int  `json:"keyword_score"`
	HasKeyword   bool `json:"has_keyword"`

	// ExperienceBonus is a flat addend, never averaged.
	ExperienceBonus int `json:"experience_bonus"`

	MatchedSkills []string `json:"matched_skills,omitempty"`
	Note          string   `json:"note,omitempty"`
}

// MatchScore is a composite 0-100 match score for one (profile, job) pair.
// It is transient: computed on demand and only persisted when the caller
// explicitly stores it.
type MatchScore struct {
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	JobID     uuid.UUID `json:"job_id,omitempty"`
	Score     int       `json:"score"`
	Breakdown Breakdown `json:"breakdown"`
}

// RankedJob pairs a job with its computed score, for job-list ranking.
type RankedJob struct {
	Job   Job        `json:"job"`
	Score MatchScore `json:"score"`
}

// RankedApplicant pairs an applicant profile with its computed score, for
// the company dashboard.
type RankedApplicant struct {
	Profile Profile    `json:"profile"`
	Score   MatchScore `json:"score"`
}
