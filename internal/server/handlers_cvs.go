package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/adaeze/cv-studio/internal/server/middleware"
	"github.com/adaeze/cv-studio/internal/types"
)

// authedUser reads the authenticated user ID placed in the context by the
// auth middleware.
func (s *Server) authedUser(r *http.Request) (uuid.UUID, error) {
	return middleware.GetUserID(r)
}

// pathUUID parses a path parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	return id, err == nil
}

// CreateVersionRequest is the request body for snapshot creation.
type CreateVersionRequest struct {
	Label string `json:"label"`
}

// handleListCVs returns the caller's CV summaries.
func (s *Server) handleListCVs(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUser(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summaries, err := s.cvs.ListCVs(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list CVs")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"cvs": summaries})
}

// handleCreateCV stores a new CV document. The body is the document itself;
// anything malformed inside it is repaired by normalization.
func (s *Server) handleCreateCV(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUser(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var doc types.CV
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	record, err := s.cvs.CreateCV(r.Context(), userID, doc)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create CV")
		return
	}
	s.jsonResponse(w, http.StatusCreated, record)
}

// handleGetCV returns one CV document.
func (s *Server) handleGetCV(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUser(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	cvID, ok := pathUUID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid CV id")
		return
	}

	record, err := s.cvs.GetCV(r.Context(), userID, cvID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get CV")
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "CV not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}

// handleUpdateCV replaces the stored document.
func (s *Server) handleUpdateCV(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUser(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	cvID, ok := pathUUID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid CV id")
		return
	}

	var doc types.CV
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	record, err := s.cvs.UpdateCV(r.Context(), userID, cvID, doc)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update CV")
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "CV not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}

// handleDeleteCV removes a CV and its snapshots.
func (s *Server) handleDeleteCV(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUser(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	cvID, ok := pathUUID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid CV id")
		return
	}

	deleted, err := s.cvs.DeleteCV(r.Context(), userID, cvID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete CV")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "CV not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCreateVersion snapshots the CV's current document.
func (s *Server) handleCreateVersion(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUser(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	cvID, ok := pathUUID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid CV id")
		return
	}

	var req CreateVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	versionID, err := s.cvs.CreateVersion(r.Context(), userID, cvID, req.Label)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create version")
		return
	}
	if versionID == uuid.Nil {
		s.errorResponse(w, http.StatusNotFound, "CV not found")
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]string{"version_id": versionID.String()})
}

// handleListVersions returns a CV's snapshots, newest first.
func (s *Server) handleListVersions(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUser(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	cvID, ok := pathUUID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid CV id")
		return
	}

	versions, err := s.cvs.ListVersions(r.Context(), userID, cvID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list versions")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"versions": versions})
}

// handleGetVersion returns the document stored in a snapshot.
func (s *Server) handleGetVersion(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUser(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	versionID, ok := pathUUID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid version id")
		return
	}

	doc, err := s.cvs.GetVersionSnapshot(r.Context(), userID, versionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get version")
		return
	}
	if doc == nil {
		s.errorResponse(w, http.StatusNotFound, "Version not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleRestoreVersion replaces the CV's document with a snapshot's content.
func (s *Server) handleRestoreVersion(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUser(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	cvID, ok := pathUUID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid CV id")
		return
	}
	versionID, ok := pathUUID(r, "version_id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid version id")
		return
	}

	doc, err := s.cvs.GetVersionSnapshot(r.Context(), userID, versionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get version")
		return
	}
	if doc == nil {
		s.errorResponse(w, http.StatusNotFound, "Version not found")
		return
	}

	record, err := s.cvs.UpdateCV(r.Context(), userID, cvID, *doc)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to restore version")
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "CV not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}
