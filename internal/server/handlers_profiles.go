package server

import (
	"net/http"

	"github.com/jonathan/jobmatch/internal/profile"
	"github.com/jonathan/jobmatch/internal/skills"
	"github.com/jonathan/jobmatch/internal/types"
)

// mergeProfileSkills combines declared, extracted and inferred skills into
// one canonical set.
func mergeProfileSkills(lists ...[]string) []string {
	merged := skills.MergeSkillSets(nil, lists...)
	if merged == nil {
		merged = []string{}
	}
	return merged
}

// handleCreateProfile creates an applicant profile. Declared skills are
// merged with skills extracted from the resume before storage, so stored
// skill sets are always canonical.
func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	var req types.CreateProfileRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.capText(w, "resume_text", req.ResumeText) {
		return
	}

	merged, _, err := profile.ComputeResumeKeywords(r.Context(), s.extractor, req.Skills, req.ResumeText)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Skill extraction failed: "+err.Error())
		return
	}

	created, err := s.db.CreateProfile(r.Context(), &types.Profile{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Skills:     merged,
		ResumeText: req.ResumeText,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleGetProfile returns a profile by ID.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	profileID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	p, err := s.db.GetProfile(r.Context(), profileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if p == nil {
		nf := &ErrProfileNotFound{ProfileID: profileID}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, p)
}

// handleProfileInsights returns completeness scoring for a profile.
func (s *Server) handleProfileInsights(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	profileID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	p, err := s.db.GetProfile(r.Context(), profileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if p == nil {
		nf := &ErrProfileNotFound{ProfileID: profileID}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, profile.ComputeInsights(*p))
}

// handleRefreshKeywords re-derives a profile's skill set from its stored
// resume and persists the result.
func (s *Server) handleRefreshKeywords(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	profileID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	p, err := s.db.GetProfile(r.Context(), profileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if p == nil {
		nf := &ErrProfileNotFound{ProfileID: profileID}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	extracted, err := s.extractor.Extract(r.Context(), p.ResumeText, nil)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Skill extraction failed: "+err.Error())
		return
	}
	inferred := s.triggers.InferSkills(p.ResumeText)

	merged := mergeProfileSkills(p.Skills, extracted, inferred)
	if err := s.db.UpdateProfileSkills(r.Context(), profileID, merged); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string][]string{"skills": merged})
}
