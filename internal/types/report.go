package types

// Suggestion is a single actionable resume improvement, with the matched
// substring as context when the issue was pattern-located.
type Suggestion struct {
	Message string `json:"message"`
	Context string `json:"context,omitempty"`
}

// QualityReport is the output of the resume quality analyzer. Stateless,
// computed per resume text.
type QualityReport struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// ATSReport is the output of the ATS friendliness checker. Score is the
// clamped 0-100 sum of the documented point contributions.
type ATSReport struct {
	Score               int      `json:"score"`
	HasContactInfo      bool     `json:"has_contact_info"`
	UsesStandardSection bool     `json:"uses_standard_sections"`
	WordCount           int      `json:"word_count"`
	Warnings            []string `json:"warnings,omitempty"`
	Recommendations     []string `json:"recommendations,omitempty"`
	Summary             string   `json:"summary"`
}

// ProfileInsights summarizes profile completeness and derived guidance.
type ProfileInsights struct {
	Completeness    int      `json:"completeness"`
	Strengths       []string `json:"strengths,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	MarketPosition  string   `json:"market_position"`
	GrowthPotential string   `json:"growth_potential"`
}

// Advice is the career advice produced for a profile: deterministic
// structure, optionally expanded into prose by the LLM collaborator.
type Advice struct {
	SkillGaps       []string `json:"skill_gaps,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	NextSteps       []string `json:"next_steps,omitempty"`
	MarketInsights  []string `json:"market_insights,omitempty"`
	Prose           string   `json:"prose,omitempty"`
}
