package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest is the job creation payload. Handle is required even when
// direct input is supplied; it names the job and the resulting lookbook.
type AnalyzeRequest struct {
	Handle      string `json:"handle" validate:"required,max=64"`
	DirectInput string `json:"direct_input,omitempty" validate:"max=10000"`
}

// AnalyzeResponse is returned immediately; the job runs in the background and
// its id is polled via GET /status/{id}.
type AnalyzeResponse struct {
	JobID string `json:"job_id"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	jobID, err := s.jobs.StartAnalysis(r.Context(), req.Handle, req.DirectInput)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to start analysis: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusAccepted, AnalyzeResponse{JobID: jobID})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("id")

	job, err := s.jobs.GetJobStatus(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	jobs, err := s.jobs.ListJobs(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": jobs})
}

func (s *Server) handleLookbook(w http.ResponseWriter, r *http.Request) {
	lookbookID := r.PathValue("id")

	lookbook, err := s.jobs.GetLookbook(r.Context(), lookbookID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if lookbook == nil {
		s.errorResponse(w, http.StatusNotFound, "Lookbook not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, lookbook)
}

func (s *Server) handleLookbookByHandle(w http.ResponseWriter, r *http.Request) {
	handle := r.PathValue("handle")

	lookbook, err := s.jobs.GetLookbookByHandle(r.Context(), handle)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if lookbook == nil {
		s.errorResponse(w, http.StatusNotFound, "No lookbook for handle")
		return
	}

	s.jsonResponse(w, http.StatusOK, lookbook)
}

func (s *Server) handleListArchetypes(w http.ResponseWriter, r *http.Request) {
	archetypes, err := s.catalog.ListArchetypes(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"archetypes": archetypes})
}

func (s *Server) handleGetArchetype(w http.ResponseWriter, r *http.Request) {
	archetype, err := s.catalog.GetArchetype(r.Context(), r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if archetype == nil {
		s.errorResponse(w, http.StatusNotFound, "Archetype not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, archetype)
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.ListProducts(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"products": products})
}

// validationMessage flattens validator errors into a single readable message.
func validationMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request"
	}
	parts := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			parts = append(parts, fieldErr.Field()+" is required")
		case "max":
			parts = append(parts, fieldErr.Field()+" is too long")
		default:
			parts = append(parts, fieldErr.Field()+" is invalid")
		}
	}
	return strings.Join(parts, "; ")
}
