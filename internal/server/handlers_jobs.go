package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/jobmatch/internal/db"
	"github.com/jonathan/jobmatch/internal/matching"
	"github.com/jonathan/jobmatch/internal/types"
)

// pathUUID parses a UUID path segment, writing a 400 on failure.
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	idStr := r.PathValue(name)
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// handleCreateJob creates a job posting.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	var req types.CreateJobRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.capText(w, "description", req.Description) ||
		!s.capText(w, "requirements", req.Requirements) ||
		!s.capText(w, "responsibilities", req.Responsibilities) {
		return
	}

	job, err := s.db.CreateJob(r.Context(), &types.Job{
		Title:            req.Title,
		Company:          req.Company,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		ExperienceLevel:  req.ExperienceLevel,
		EmploymentType:   req.EmploymentType,
		Location:         req.Location,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, job)
}

// handleListJobs lists jobs with optional company, experience_level and
// active filters.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}

	q := r.URL.Query()
	jobs, err := s.db.ListJobs(r.Context(), db.JobFilters{
		Company:         q.Get("company"),
		ExperienceLevel: q.Get("experience_level"),
		ActiveOnly:      q.Get("active") == "true",
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if jobs == nil {
		jobs = []types.Job{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": jobs})
}

// handleGetJob returns a job by ID.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	jobID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		nf := &ErrJobNotFound{JobID: jobID}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleDeactivateJob marks a job inactive.
func (s *Server) handleDeactivateJob(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	jobID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := s.db.DeactivateJob(r.Context(), jobID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deactivated"})
}

// handleApply links a profile to a job.
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	jobID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req types.ApplyRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	app, err := s.db.CreateApplication(r.Context(), req.ProfileID, jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, app)
}

// handleRankApplicants returns a job's applicants sorted by match score.
func (s *Server) handleRankApplicants(w http.ResponseWriter, r *http.Request) {
	if !s.requireDB(w) {
		return
	}
	jobID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		nf := &ErrJobNotFound{JobID: jobID}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	profiles, err := s.db.ListApplicants(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	ranked, err := matching.RankApplicants(r.Context(), *job, profiles)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Ranking failed: "+err.Error())
		return
	}
	if ranked == nil {
		ranked = []types.RankedApplicant{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"ranked": ranked})
}
