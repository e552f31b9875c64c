package server

import (
	"net/http"

	"github.com/jonathan/jobmatch/internal/quality"
	"github.com/jonathan/jobmatch/internal/types"
)

// handleAnalyzeQuality reports writing-quality suggestions for resume text.
func (s *Server) handleAnalyzeQuality(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
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

	s.jsonResponse(w, http.StatusOK, quality.AnalyzeQuality(req.ResumeText))
}

// handleAnalyzeATS reports ATS friendliness for resume text.
func (s *Server) handleAnalyzeATS(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
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

	s.jsonResponse(w, http.StatusOK, quality.AnalyzeATS(req.ResumeText))
}

// handleAdvice returns career advice for a skill set. Prose is only present
// when a generative client is configured.
func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	var req types.AdviceRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.advisor.Advise(r.Context(), req.Skills, req.ExperienceYears))
}
