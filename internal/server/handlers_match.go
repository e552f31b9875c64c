package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/jobmatch/internal/matching"
	"github.com/jonathan/jobmatch/internal/skills"
	"github.com/jonathan/jobmatch/internal/textnorm"
	"github.com/jonathan/jobmatch/internal/types"
)

// decodeJSON decodes the request body into v, writing a 400 on failure.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// capText enforces the configured input size limit. A zero or negative
// limit disables the cap.
func (s *Server) capText(w http.ResponseWriter, field, text string) bool {
	if s.cfg.MaxTextLen > 0 && len(text) > s.cfg.MaxTextLen {
		err := &ErrTextTooLong{Field: field, Limit: s.cfg.MaxTextLen}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return false
	}
	return true
}

// requireDB writes a 503 when no database is configured.
func (s *Server) requireDB(w http.ResponseWriter) bool {
	if s.db == nil {
		err := &ErrStorageUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return false
	}
	return true
}

// handleMatch computes a composite match score for one skill set against
// one job text.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.capText(w, "job_text", req.JobText) || !s.capText(w, "resume_text", req.ResumeText) {
		return
	}

	signals := matching.Signals{}
	if req.ResumeText != "" {
		signals.ResumeVector = textnorm.VectorFromText(req.ResumeText)
	}

	score, breakdown := matching.CompositeScore(req.Skills, req.JobText, signals)
	result := types.MatchScore{Score: score, Breakdown: breakdown}

	// Scores are transient unless the caller explicitly asks to keep one.
	if req.Persist {
		if req.ProfileID == uuid.Nil || req.JobID == uuid.Nil {
			s.errorResponse(w, http.StatusBadRequest, "Persisting a score requires profile_id and job_id")
			return
		}
		if !s.requireDB(w) {
			return
		}
		result.ProfileID = req.ProfileID
		result.JobID = req.JobID
		if err := s.db.SaveMatchScore(r.Context(), req.ProfileID, req.JobID, result); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleExtractSkills extracts canonical skills from free text.
func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req types.ExtractRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.capText(w, "text", req.Text) {
		return
	}

	extractor := s.extractor
	if req.Fuzzy {
		fuzzy := skills.NewPatternExtractor(nil)
		fuzzy.FuzzyThreshold = skills.DefaultFuzzyThreshold
		extractor = fuzzy
	}

	found, err := extractor.Extract(r.Context(), req.Text, req.Custom)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Skill extraction failed: "+err.Error())
		return
	}
	if found == nil {
		found = []string{}
	}
	s.jsonResponse(w, http.StatusOK, map[string][]string{"skills": found})
}

// handleInferSkills infers soft skills from narrative text via trigger
// phrases.
func (s *Server) handleInferSkills(w http.ResponseWriter, r *http.Request) {
	var req types.InferRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.capText(w, "text", req.Text) {
		return
	}

	inferred := s.triggers.InferSkills(req.Text)
	if inferred == nil {
		inferred = []string{}
	}
	s.jsonResponse(w, http.StatusOK, map[string][]string{"skills": inferred})
}

// handleRankJobs ranks stored jobs for a profile. The profile's stored
// skills and resume are used unless the request supplies its own.
func (s *Server) handleRankJobs(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	profileID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req types.RankJobsRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := s.db.GetProfile(r.Context(), profileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		nf := &ErrProfileNotFound{ProfileID: profileID}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	userSkills := req.Skills
	if len(userSkills) == 0 {
		userSkills = profile.Skills
	}
	resumeText := req.ResumeText
	if resumeText == "" {
		resumeText = profile.ResumeText
	}

	jobs, err := s.db.GetJobs(r.Context(), req.Jobs)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	ranked, err := matching.RankJobs(r.Context(), userSkills, resumeText, jobs)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Ranking failed: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"ranked": ranked})
}
