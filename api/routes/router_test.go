package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/scoutworks/supplierscout-backend/internal/auth"
	"github.com/scoutworks/supplierscout-backend/internal/favorites"
	"github.com/scoutworks/supplierscout-backend/internal/inbox"
	"github.com/scoutworks/supplierscout-backend/internal/notes"
	"github.com/scoutworks/supplierscout-backend/internal/suppliers"
	"github.com/scoutworks/supplierscout-backend/internal/users"
	"github.com/scoutworks/supplierscout-backend/pkg/config"
	"github.com/scoutworks/supplierscout-backend/pkg/generator"
	"github.com/scoutworks/supplierscout-backend/pkg/logger"
	"github.com/scoutworks/supplierscout-backend/pkg/metrics"
	"github.com/scoutworks/supplierscout-backend/pkg/session"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test"},
		Session: config.SessionConfig{
			Backend:  "memory",
			UserTTL:  24 * time.Hour,
			SSOTTL:   7 * 24 * time.Hour,
			GuestTTL: 24 * time.Hour,
		},
		SSO: config.SSOConfig{Secret: "test-secret", Issuer: "walmart-sso"},
	}
}

func buildRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := testConfig()

	catalog, err := suppliers.NewService(generator.Generate(generator.DefaultSeed, 100))
	require.NoError(t, err)

	sessions, err := session.NewManager(session.NewMemoryStore())
	require.NoError(t, err)

	inboxSvc, err := inbox.NewService(inbox.NewMemoryRepository())
	require.NoError(t, err)

	authSvc, err := auth.NewService(auth.ServiceParams{
		UserRepo:       users.NewMemoryRepository(),
		SessionManager: sessions,
		Inbox:          inboxSvc,
		SessionConfig:  cfg.Session,
		SSOConfig:      cfg.SSO,
		PasswordConfig: cfg.Password,
	})
	require.NoError(t, err)

	favoritesSvc, err := favorites.NewService(favorites.ServiceParams{
		Repo:    favorites.NewMemoryRepository(),
		Catalog: catalog,
		Inbox:   inboxSvc,
	})
	require.NoError(t, err)

	notesSvc, err := notes.NewService(notes.ServiceParams{
		Repo:    notes.NewMemoryRepository(),
		Catalog: catalog,
	})
	require.NoError(t, err)

	registry := prometheus.NewRegistry()

	return NewRouter(RouterParams{
		Config:      cfg,
		Logger:      logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
		HTTPMetrics: metrics.NewHTTPMetrics(registry),
		Gatherer:    registry,
		Auth:        authSvc,
		Catalog:     catalog,
		Favorites:   favoritesSvc,
		Notes:       notesSvc,
		Inbox:       inboxSvc,
	})
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func dataField(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func registerUser(t *testing.T, handler http.Handler, username string) (token string, userID string) {
	t.Helper()
	rec := doJSON(t, handler, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"password": "password12345",
		"email":    username + "@example.com",
		"name":     username,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	data := dataField(t, rec)
	sessionData, ok := data["session"].(map[string]any)
	require.True(t, ok, "missing session in %v", data)
	token, _ = sessionData["session_token"].(string)
	require.NotEmpty(t, token)

	userData, ok := data["user"].(map[string]any)
	require.True(t, ok)
	userID, _ = userData["id"].(string)
	require.NotEmpty(t, userID)
	return token, userID
}

func TestPublicCatalogRoutes(t *testing.T) {
	handler := buildRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/suppliers?skip=0&limit=5", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := dataField(t, rec)
	require.EqualValues(t, 100, data["total"])
	require.Len(t, data["suppliers"], 5)

	rec = doJSON(t, handler, http.MethodGet, "/api/suppliers/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/suppliers/9999", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/suppliers/search/steel", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	search := dataField(t, rec)
	require.Equal(t, "steel", search["query"])

	rec = doJSON(t, handler, http.MethodGet, "/api/dashboard/stats", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := dataField(t, rec)
	require.EqualValues(t, 100, stats["total_suppliers"])
}

func TestAuthLifecycleOverHTTP(t *testing.T) {
	handler := buildRouter(t)

	token, _ := registerUser(t, handler, "alice")

	// Duplicate registration conflicts.
	rec := doJSON(t, handler, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "alice",
		"password": "password12345",
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/auth/validate", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := dataField(t, rec)
	require.Equal(t, true, data["valid"])

	rec = doJSON(t, handler, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "alice",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/auth/validate", token, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionTokenQueryParamAccepted(t *testing.T) {
	handler := buildRouter(t)
	token, _ := registerUser(t, handler, "bob")

	rec := doJSON(t, handler, http.MethodGet, "/api/favorites?session_token="+token, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUserDataRoutesRequireSession(t *testing.T) {
	handler := buildRouter(t)

	for _, path := range []string{"/api/favorites", "/api/notes", "/api/inbox", "/api/inbox/unread-count"} {
		rec := doJSON(t, handler, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestFavoritesAndInboxFlow(t *testing.T) {
	handler := buildRouter(t)
	token, _ := registerUser(t, handler, "carol")

	rec := doJSON(t, handler, http.MethodPost, "/api/favorites/add", token, map[string]int{"supplier_id": 3})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, handler, http.MethodGet, "/api/favorites", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := dataField(t, rec)
	require.EqualValues(t, 1, data["count"])

	// Welcome message plus favorite confirmation.
	rec = doJSON(t, handler, http.MethodGet, "/api/inbox/unread-count", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	unread := dataField(t, rec)
	require.EqualValues(t, 2, unread["unread_count"])

	rec = doJSON(t, handler, http.MethodPost, "/api/inbox/read-all", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/inbox/unread-count", token, nil)
	unread = dataField(t, rec)
	require.EqualValues(t, 0, unread["unread_count"])

	rec = doJSON(t, handler, http.MethodPost, "/api/favorites/remove", token, map[string]int{"supplier_id": 3})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNotesFlowOverHTTP(t *testing.T) {
	handler := buildRouter(t)
	token, _ := registerUser(t, handler, "dave")

	rec := doJSON(t, handler, http.MethodPost, "/api/notes/add", token, map[string]any{
		"supplier_id": 2,
		"content":     "asked for a quote",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	note := dataField(t, rec)
	noteID, _ := note["id"].(string)
	require.NotEmpty(t, noteID)

	rec = doJSON(t, handler, http.MethodPost, "/api/notes/update", token, map[string]any{
		"note_id": noteID,
		"content": "quote received",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Another user cannot touch the note.
	otherToken, _ := registerUser(t, handler, "erin")
	rec = doJSON(t, handler, http.MethodPost, "/api/notes/delete", otherToken, map[string]any{"note_id": noteID})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/api/notes/delete", token, map[string]any{"note_id": noteID})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsServeAfterTraffic(t *testing.T) {
	handler := buildRouter(t)

	doJSON(t, handler, http.MethodGet, "/api/suppliers?limit=1", "", nil)

	rec := doJSON(t, handler, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestHealthEndpoints(t *testing.T) {
	handler := buildRouter(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		rec := doJSON(t, handler, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}
