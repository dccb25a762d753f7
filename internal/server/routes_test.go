package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomun/internal/config"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:             8080,
		SessionTTL:       time.Hour,
		CORSAllowOrigins: []string{"http://localhost:5173"},
		ReadTimeout:      15 * time.Second,
		WriteTimeout:     60 * time.Second,
		IdleTimeout:      120 * time.Second,
	}
	return New(cfg).RegisterRoutes()
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var decoded map[string]any
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func registerExpert(t *testing.T, h http.Handler, email string) string {
	t.Helper()
	w, body := doJSON(t, h, http.MethodPost, "/api/register", "", gin.H{
		"role":      "expert",
		"email":     email,
		"password":  "abcdefg1",
		"name":      "Alice",
		"specialty": "Environmental law",
	})
	require.Equal(t, http.StatusOK, w.Code, "register failed: %s", w.Body.String())
	return body["token"].(string)
}

func TestRegisterIssuesSession(t *testing.T) {
	h := newTestServer(t)

	w, body := doJSON(t, h, http.MethodPost, "/api/register", "", gin.H{
		"role":      "expert",
		"email":     "alice@example.com",
		"password":  "abcdefg1",
		"name":      "Alice",
		"specialty": "Environmental law",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "expert", body["role"])
	assert.Equal(t, "Alice", body["name"])
	assert.Equal(t, "alice@example.com", body["email"])
	assert.Equal(t, float64(3600), body["expiresIn"])
}

func TestRegisterValidation(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name    string
		payload gin.H
		status  int
	}{
		{
			"weak password",
			gin.H{"role": "expert", "email": "a@x.com", "password": "abcdefg", "specialty": "law"},
			http.StatusBadRequest,
		},
		{
			"missing role",
			gin.H{"email": "a@x.com", "password": "abcdefg1"},
			http.StatusBadRequest,
		},
		{
			"company without company name",
			gin.H{"role": "company", "email": "a@x.com", "password": "abcdefg1"},
			http.StatusBadRequest,
		},
		{
			"expert without specialty",
			gin.H{"role": "expert", "email": "a@x.com", "password": "abcdefg1"},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := doJSON(t, h, http.MethodPost, "/api/register", "", tt.payload)
			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h := newTestServer(t)
	registerExpert(t, h, "alice@example.com")

	w, _ := doJSON(t, h, http.MethodPost, "/api/register", "", gin.H{
		"role":      "expert",
		"email":     "alice@example.com",
		"password":  "abcdefg1",
		"specialty": "Tax law",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin(t *testing.T) {
	h := newTestServer(t)
	registerExpert(t, h, "alice@example.com")

	w, body := doJSON(t, h, http.MethodPost, "/api/login", "", gin.H{
		"role":     "expert",
		"email":    "alice@example.com",
		"password": "abcdefg1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, body["token"])

	// wrong any of role, email, password -> 401
	w, _ = doJSON(t, h, http.MethodPost, "/api/login", "", gin.H{
		"role":     "company",
		"email":    "alice@example.com",
		"password": "abcdefg1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, h, http.MethodPost, "/api/login", "", gin.H{
		"role":     "expert",
		"email":    "alice@example.com",
		"password": "wrongpass1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileRoundtrip(t *testing.T) {
	h := newTestServer(t)
	token := registerExpert(t, h, "alice@example.com")

	w, body := doJSON(t, h, http.MethodGet, "/api/profile/alice@example.com", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice", body["name"])
	assert.Equal(t, "Environmental law", body["title"])

	w, body = doJSON(t, h, http.MethodPatch, "/api/profile/alice@example.com", token, gin.H{
		"region": "Seoul",
		"bio":    "Ten years in the field.",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Seoul", body["region"])
	assert.Equal(t, "Ten years in the field.", body["bio"])
	// merged, not replaced
	assert.Equal(t, "Alice", body["name"])
}

func TestProfileAccessControl(t *testing.T) {
	h := newTestServer(t)
	token := registerExpert(t, h, "alice@example.com")

	// no token
	w, _ := doJSON(t, h, http.MethodGet, "/api/profile/alice@example.com", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// someone else's profile, even a nonexistent one
	w, _ = doJSON(t, h, http.MethodGet, "/api/profile/bob@example.com", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCompanyHasNoProfile(t *testing.T) {
	h := newTestServer(t)

	w, body := doJSON(t, h, http.MethodPost, "/api/register", "", gin.H{
		"role":        "company",
		"email":       "acme@example.com",
		"password":    "abcdefg1",
		"name":        "Acme",
		"companyName": "Acme Corp",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := body["token"].(string)

	w, _ = doJSON(t, h, http.MethodGet, "/api/profile/acme@example.com", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotificationFlow(t *testing.T) {
	h := newTestServer(t)
	aliceToken := registerExpert(t, h, "alice@example.com")
	bobToken := registerExpert(t, h, "bob@example.com")

	// bob sends alice two notifications
	w, first := doJSON(t, h, http.MethodPost, "/api/notifications", bobToken, gin.H{
		"recipient": "alice@example.com",
		"title":     "Project offer",
		"message":   "We would like to work with you.",
		"tag":       "project",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bob@example.com", first["from"])
	assert.Equal(t, false, first["read"])

	w, second := doJSON(t, h, http.MethodPost, "/api/notifications", bobToken, gin.H{
		"recipient": "alice@example.com",
		"title":     "Follow-up",
		"message":   "Any thoughts?",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// alice lists them newest first
	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	req.Header.Set("Authorization", "Bearer "+aliceToken)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var notes []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Len(t, notes, 2)
	assert.Equal(t, second["id"], notes[0]["id"])
	assert.Equal(t, first["id"], notes[1]["id"])

	// alice marks the older one read; order is unchanged
	w, marked := doJSON(t, h, http.MethodPatch, "/api/notifications/"+first["id"].(string), aliceToken, gin.H{"read": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, marked["read"])

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req.Clone(req.Context()))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	assert.Equal(t, second["id"], notes[0]["id"])

	// bob cannot mark alice's notification: not in his mailbox
	w, _ = doJSON(t, h, http.MethodPatch, "/api/notifications/"+first["id"].(string), bobToken, gin.H{"read": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotificationUnknownRecipient(t *testing.T) {
	h := newTestServer(t)
	token := registerExpert(t, h, "alice@example.com")

	w, _ := doJSON(t, h, http.MethodPost, "/api/notifications", token, gin.H{
		"recipient": "ghost@example.com",
		"title":     "Hello",
		"message":   "Anyone there?",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotificationsRequireAuth(t *testing.T) {
	h := newTestServer(t)

	w, _ := doJSON(t, h, http.MethodGet, "/api/notifications", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, h, http.MethodPost, "/api/notifications", "", gin.H{
		"recipient": "alice@example.com", "title": "t", "message": "m",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExpertDirectoryIsPublic(t *testing.T) {
	h := newTestServer(t)
	registerExpert(t, h, "alice@example.com")

	req := httptest.NewRequest(http.MethodGet, "/api/experts", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var cards []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, "alice@example.com", cards[0]["email"])
	assert.Equal(t, "Nationwide", cards[0]["region"])
	assert.Equal(t, 4.5, cards[0]["rating"])
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestServer(t)
	registerExpert(t, h, "alice@example.com")

	w, body := doJSON(t, h, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(1), body["accounts"])
	assert.Equal(t, float64(1), body["sessions"])
}
