package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaeze/cv-studio/internal/db"
	"github.com/adaeze/cv-studio/internal/export"
	"github.com/adaeze/cv-studio/internal/normalize"
	"github.com/adaeze/cv-studio/internal/server/middleware"
	"github.com/adaeze/cv-studio/internal/types"
)

// stubCVStore is an in-memory CVStore for handler tests.
type stubCVStore struct {
	records   map[uuid.UUID]*db.CVRecord
	versions  map[uuid.UUID]types.CV
	ownerID   uuid.UUID
	createErr error
}

func newStubCVStore(ownerID uuid.UUID) *stubCVStore {
	return &stubCVStore{
		records:  make(map[uuid.UUID]*db.CVRecord),
		versions: make(map[uuid.UUID]types.CV),
		ownerID:  ownerID,
	}
}

func (s *stubCVStore) CreateCV(_ context.Context, userID uuid.UUID, doc types.CV) (*db.CVRecord, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	record := &db.CVRecord{ID: uuid.New(), UserID: userID, Document: normalize.Normalize(doc)}
	s.records[record.ID] = record
	return record, nil
}

func (s *stubCVStore) UpdateCV(_ context.Context, userID, cvID uuid.UUID, doc types.CV) (*db.CVRecord, error) {
	record, ok := s.records[cvID]
	if !ok || record.UserID != userID {
		return nil, nil
	}
	record.Document = normalize.Normalize(doc)
	return record, nil
}

func (s *stubCVStore) GetCV(_ context.Context, userID, cvID uuid.UUID) (*db.CVRecord, error) {
	record, ok := s.records[cvID]
	if !ok || record.UserID != userID {
		return nil, nil
	}
	return record, nil
}

func (s *stubCVStore) ListCVs(_ context.Context, userID uuid.UUID) ([]db.CVSummary, error) {
	summaries := make([]db.CVSummary, 0, len(s.records))
	for _, record := range s.records {
		if record.UserID != userID {
			continue
		}
		summaries = append(summaries, db.CVSummary{
			ID:         record.ID,
			Name:       record.Document.PersonalInfo.FirstName,
			TemplateID: record.Document.TemplateID,
		})
	}
	return summaries, nil
}

func (s *stubCVStore) DeleteCV(_ context.Context, userID, cvID uuid.UUID) (bool, error) {
	record, ok := s.records[cvID]
	if !ok || record.UserID != userID {
		return false, nil
	}
	delete(s.records, cvID)
	return true, nil
}

func (s *stubCVStore) CreateVersion(_ context.Context, userID, cvID uuid.UUID, label string) (uuid.UUID, error) {
	record, ok := s.records[cvID]
	if !ok || record.UserID != userID {
		return uuid.Nil, nil
	}
	versionID := uuid.New()
	s.versions[versionID] = record.Document
	return versionID, nil
}

func (s *stubCVStore) ListVersions(_ context.Context, userID, cvID uuid.UUID) ([]db.Version, error) {
	versions := make([]db.Version, 0, len(s.versions))
	for id := range s.versions {
		versions = append(versions, db.Version{ID: id, CVID: cvID})
	}
	return versions, nil
}

func (s *stubCVStore) GetVersionSnapshot(_ context.Context, _, versionID uuid.UUID) (*types.CV, error) {
	doc, ok := s.versions[versionID]
	if !ok {
		return nil, nil
	}
	return &doc, nil
}

// stubAssist returns canned suggestions.
type stubAssist struct {
	summary string
	bullets []string
	err     error
}

func (s *stubAssist) SuggestSummary(_ context.Context, _ types.CV) (string, error) {
	return s.summary, s.err
}

func (s *stubAssist) SuggestBullets(_ context.Context, _ types.WorkExperience) ([]string, error) {
	return s.bullets, s.err
}

func (s *stubAssist) Close() error { return nil }

func newTestServer(store CVStore) *Server {
	return &Server{
		cvs:        store,
		generator:  &export.Generator{},
		appVersion: "test",
	}
}

func authedRequest(method, target string, body []byte, userID uuid.UUID) *http.Request {
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(r.Context(), middleware.UserIDKey(), userID)
	return r.WithContext(ctx)
}

func seedCV(t *testing.T, store *stubCVStore, doc map[string]any) *db.CVRecord {
	t.Helper()
	record, err := store.CreateCV(context.Background(), store.ownerID, normalize.Normalize(doc))
	require.NoError(t, err)
	return record
}

func TestHandleCreateCV_ReturnsNormalizedRecord(t *testing.T) {
	userID := uuid.New()
	store := newStubCVStore(userID)
	srv := newTestServer(store)

	body := []byte(`{"templateId":"retro","personalInfo":{"firstName":"Ngozi","lastName":"Eze"}}`)
	r := authedRequest(http.MethodPost, "/cvs", body, userID)
	w := httptest.NewRecorder()
	srv.handleCreateCV(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	var record db.CVRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, types.TemplateModern, record.Document.TemplateID, "unknown template collapses to the default")
	assert.Equal(t, "Ngozi", record.Document.PersonalInfo.FirstName)
}

func TestHandleCreateCV_RejectsMalformedBody(t *testing.T) {
	userID := uuid.New()
	srv := newTestServer(newStubCVStore(userID))

	r := authedRequest(http.MethodPost, "/cvs", []byte(`{not json`), userID)
	w := httptest.NewRecorder()
	srv.handleCreateCV(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetCV_NotFound(t *testing.T) {
	userID := uuid.New()
	srv := newTestServer(newStubCVStore(userID))

	r := authedRequest(http.MethodGet, "/cvs/"+uuid.NewString(), nil, userID)
	r.SetPathValue("id", uuid.NewString())
	w := httptest.NewRecorder()
	srv.handleGetCV(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetCV_OtherUsersCVHidden(t *testing.T) {
	ownerID := uuid.New()
	store := newStubCVStore(ownerID)
	srv := newTestServer(store)
	record := seedCV(t, store, map[string]any{"personalInfo": map[string]any{"firstName": "Ngozi"}})

	r := authedRequest(http.MethodGet, "/cvs/"+record.ID.String(), nil, uuid.New())
	r.SetPathValue("id", record.ID.String())
	w := httptest.NewRecorder()
	srv.handleGetCV(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetCV_InvalidID(t *testing.T) {
	userID := uuid.New()
	srv := newTestServer(newStubCVStore(userID))

	r := authedRequest(http.MethodGet, "/cvs/not-a-uuid", nil, userID)
	r.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()
	srv.handleGetCV(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetCV_MissingAuthContext(t *testing.T) {
	srv := newTestServer(newStubCVStore(uuid.New()))

	r := httptest.NewRequest(http.MethodGet, "/cvs/"+uuid.NewString(), nil)
	r.SetPathValue("id", uuid.NewString())
	w := httptest.NewRecorder()
	srv.handleGetCV(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleDeleteCV_NoContent(t *testing.T) {
	userID := uuid.New()
	store := newStubCVStore(userID)
	srv := newTestServer(store)
	record := seedCV(t, store, map[string]any{})

	r := authedRequest(http.MethodDelete, "/cvs/"+record.ID.String(), nil, userID)
	r.SetPathValue("id", record.ID.String())
	w := httptest.NewRecorder()
	srv.handleDeleteCV(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, store.records)
}

func TestHandleCreateVersion_MissingCV(t *testing.T) {
	userID := uuid.New()
	srv := newTestServer(newStubCVStore(userID))

	r := authedRequest(http.MethodPost, "/cvs/"+uuid.NewString()+"/versions", []byte(`{"label":"before edits"}`), userID)
	r.SetPathValue("id", uuid.NewString())
	w := httptest.NewRecorder()
	srv.handleCreateVersion(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleRestoreVersion_ReplacesDocument(t *testing.T) {
	userID := uuid.New()
	store := newStubCVStore(userID)
	srv := newTestServer(store)
	record := seedCV(t, store, map[string]any{"summary": "original"})

	versionID, err := store.CreateVersion(context.Background(), userID, record.ID, "v1")
	require.NoError(t, err)

	_, err = store.UpdateCV(context.Background(), userID, record.ID, normalize.Normalize(map[string]any{"summary": "edited"}))
	require.NoError(t, err)

	r := authedRequest(http.MethodPost, "/cvs/"+record.ID.String()+"/versions/"+versionID.String()+"/restore", nil, userID)
	r.SetPathValue("id", record.ID.String())
	r.SetPathValue("version_id", versionID.String())
	w := httptest.NewRecorder()
	srv.handleRestoreVersion(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "original", store.records[record.ID].Document.Summary)
}

func TestHandleRenderCV_ReturnsHTML(t *testing.T) {
	userID := uuid.New()
	store := newStubCVStore(userID)
	srv := newTestServer(store)
	record := seedCV(t, store, map[string]any{
		"templateId":   "tech",
		"personalInfo": map[string]any{"firstName": "Ngozi", "lastName": "Eze"},
	})

	r := authedRequest(http.MethodGet, "/cvs/"+record.ID.String()+"/render", nil, userID)
	r.SetPathValue("id", record.ID.String())
	w := httptest.NewRecorder()
	srv.handleRenderCV(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Ngozi Eze")
}

func TestHandleRenderCV_TemplateOverride(t *testing.T) {
	userID := uuid.New()
	store := newStubCVStore(userID)
	srv := newTestServer(store)
	record := seedCV(t, store, map[string]any{"templateId": "modern"})

	r := authedRequest(http.MethodGet, "/cvs/"+record.ID.String()+"/render?template=executive", nil, userID)
	r.SetPathValue("id", record.ID.String())
	w := httptest.NewRecorder()
	srv.handleRenderCV(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	r = authedRequest(http.MethodGet, "/cvs/"+record.ID.String()+"/render?template=futuristic", nil, userID)
	r.SetPathValue("id", record.ID.String())
	w = httptest.NewRecorder()
	srv.handleRenderCV(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlePreviewCV_FillsSampleContent(t *testing.T) {
	userID := uuid.New()
	store := newStubCVStore(userID)
	srv := newTestServer(store)
	record := seedCV(t, store, map[string]any{"templateId": "professional"})

	r := authedRequest(http.MethodGet, "/cvs/"+record.ID.String()+"/preview", nil, userID)
	r.SetPathValue("id", record.ID.String())
	w := httptest.NewRecorder()
	srv.handlePreviewCV(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Your Name", "preview substitutes sample data for the name")
}

func TestHandleExportJSON_WrapsEnvelope(t *testing.T) {
	userID := uuid.New()
	store := newStubCVStore(userID)
	srv := newTestServer(store)
	record := seedCV(t, store, map[string]any{"personalInfo": map[string]any{"firstName": "Ngozi"}})

	r := authedRequest(http.MethodGet, "/cvs/"+record.ID.String()+"/export/json", nil, userID)
	r.SetPathValue("id", record.ID.String())
	w := httptest.NewRecorder()
	srv.handleExportJSON(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "1", string(envelope["schemaVersion"]))
	assert.Contains(t, string(envelope["cv"]), "Ngozi")
}

func TestHandleImport_StoresEnvelope(t *testing.T) {
	userID := uuid.New()
	store := newStubCVStore(userID)
	srv := newTestServer(store)

	body := []byte(`{"schemaVersion":1,"cv":{"personalInfo":{"firstName":"Ngozi"}}}`)
	r := authedRequest(http.MethodPost, "/import", body, userID)
	w := httptest.NewRecorder()
	srv.handleImport(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.records, 1)
}

func TestHandleImport_RejectsWrongShape(t *testing.T) {
	userID := uuid.New()
	srv := newTestServer(newStubCVStore(userID))

	body := []byte(`{"cv":{"skills":"Go, SQL"}}`)
	r := authedRequest(http.MethodPost, "/import", body, userID)
	w := httptest.NewRecorder()
	srv.handleImport(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "skills")
}

func TestHandleListTemplates_CatalogOrder(t *testing.T) {
	srv := newTestServer(newStubCVStore(uuid.New()))

	r := httptest.NewRequest(http.MethodGet, "/templates", nil)
	w := httptest.NewRecorder()
	srv.handleListTemplates(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Templates []TemplateInfo `json:"templates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Templates, 7)
	assert.Equal(t, types.TemplateModern, resp.Templates[0].ID)
}

func TestHandleAssistSummary_Unconfigured(t *testing.T) {
	srv := newTestServer(newStubCVStore(uuid.New()))

	r := authedRequest(http.MethodPost, "/assist/summary", []byte(`{"cv":{}}`), uuid.New())
	w := httptest.NewRecorder()
	srv.handleAssistSummary(w, r)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleAssistBullets_ReturnsSuggestions(t *testing.T) {
	srv := newTestServer(newStubCVStore(uuid.New()))
	srv.assist = &stubAssist{bullets: []string{"Shipped the payments pipeline", "Cut latency by 40%"}}

	body := []byte(`{"experience":{"jobTitle":"Engineer","company":"Paystack"}}`)
	r := authedRequest(http.MethodPost, "/assist/bullets", body, uuid.New())
	w := httptest.NewRecorder()
	srv.handleAssistBullets(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Bullets []string `json:"bullets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Bullets, 2)
}

func TestHandleListCVs_OnlyOwnDocuments(t *testing.T) {
	userID := uuid.New()
	store := newStubCVStore(userID)
	srv := newTestServer(store)
	seedCV(t, store, map[string]any{"personalInfo": map[string]any{"firstName": "Ngozi"}})

	r := authedRequest(http.MethodGet, "/cvs", nil, userID)
	w := httptest.NewRecorder()
	srv.handleListCVs(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ngozi")
}
