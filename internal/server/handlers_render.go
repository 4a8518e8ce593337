package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/adaeze/cv-studio/internal/interchange"
	"github.com/adaeze/cv-studio/internal/render"
	"github.com/adaeze/cv-studio/internal/themes"
	"github.com/adaeze/cv-studio/internal/types"
)

// TemplateInfo is one entry of the template catalog.
type TemplateInfo struct {
	ID         types.TemplateID `json:"id"`
	Name       string           `json:"name"`
	Layout     string           `json:"layout"`
	SkillsMode string           `json:"skillsMode"`
}

// handleListTemplates returns the template catalog. Public: the editor shows
// it before login.
func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	all := themes.All()
	infos := make([]TemplateInfo, 0, len(all))
	for _, theme := range all {
		infos = append(infos, TemplateInfo{
			ID:         theme.ID,
			Name:       theme.Name,
			Layout:     string(theme.Layout),
			SkillsMode: string(theme.SkillsMode),
		})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"templates": infos})
}

// loadCVForRender fetches the CV and resolves the effective template id,
// honoring an optional ?template= override. A nil record means the 404 was
// already written.
func (s *Server) loadCVForRender(w http.ResponseWriter, r *http.Request) (*types.CV, types.TemplateID, bool) {
	userID, err := s.authedUser(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, "", false
	}
	cvID, ok := pathUUID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid CV id")
		return nil, "", false
	}

	record, err := s.cvs.GetCV(r.Context(), userID, cvID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get CV")
		return nil, "", false
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "CV not found")
		return nil, "", false
	}

	templateID := record.Document.TemplateID
	if override := r.URL.Query().Get("template"); override != "" {
		templateID = types.TemplateID(override)
		if !types.ValidTemplateID(templateID) {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Unknown template %q", override))
			return nil, "", false
		}
	}
	return &record.Document, templateID, true
}

// handleRenderCV returns the full edit-surface HTML for a CV.
func (s *Server) handleRenderCV(w http.ResponseWriter, r *http.Request) {
	doc, templateID, ok := s.loadCVForRender(w, r)
	if !ok {
		return
	}

	page, err := render.Screen(*doc, templateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render CV")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, page)
}

// handlePreviewCV returns sample-filled HTML so sparse CVs still show the
// template's shape.
func (s *Server) handlePreviewCV(w http.ResponseWriter, r *http.Request) {
	doc, templateID, ok := s.loadCVForRender(w, r)
	if !ok {
		return
	}

	page, err := render.Preview(*doc, templateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render preview")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, page)
}

// handleExportPDF renders the CV through headless Chrome and streams the PDF.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	doc, templateID, ok := s.loadCVForRender(w, r)
	if !ok {
		return
	}

	pdf, err := s.generator.PDF(r.Context(), *doc, templateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="cv.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// handleExportJSON returns the CV wrapped in the interchange envelope.
func (s *Server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
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

	envelope := interchange.Export(record.Document, s.appVersion)
	data, err := interchange.Stringify(envelope)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to serialize CV")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="cv.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// handleImport accepts an interchange envelope (or a bare legacy document)
// and stores it as a new CV.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUser(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 4<<20))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	doc, schemaVersion, err := interchange.ParseImport(body)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	record, err := s.cvs.CreateCV(r.Context(), userID, doc)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store imported CV")
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"cv":            record,
		"schemaVersion": schemaVersion,
	})
}
