package server

import (
	"encoding/json"
	"net/http"

	"github.com/adaeze/cv-studio/internal/types"
)

// AssistSummaryRequest carries the CV to draft a summary for.
type AssistSummaryRequest struct {
	CV types.CV `json:"cv"`
}

// AssistBulletsRequest carries the role to draft bullet points for.
type AssistBulletsRequest struct {
	Experience types.WorkExperience `json:"experience"`
}

// handleAssistSummary drafts a professional summary from the submitted CV.
func (s *Server) handleAssistSummary(w http.ResponseWriter, r *http.Request) {
	if s.assist == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Writing assistance is not configured")
		return
	}

	var req AssistSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	summary, err := s.assist.SuggestSummary(r.Context(), req.CV)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Failed to generate summary")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"summary": summary})
}

// handleAssistBullets drafts achievement bullets for one work experience.
func (s *Server) handleAssistBullets(w http.ResponseWriter, r *http.Request) {
	if s.assist == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Writing assistance is not configured")
		return
	}

	var req AssistBulletsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	bullets, err := s.assist.SuggestBullets(r.Context(), req.Experience)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Failed to generate bullet points")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"bullets": bullets})
}
