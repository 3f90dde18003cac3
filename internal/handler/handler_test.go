package handler_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/auth"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/config"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/models"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/router"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/store"
)

func newServer(t *testing.T) (*gin.Engine, *store.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode},
		Auth:   config.AuthConfig{TokenSecret: "test-secret", SessionHours: 8},
	}
	st := store.NewMemoryStore()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return router.Setup(cfg, st, log), st
}

func do(t *testing.T, r *gin.Engine, method, path, authHeader string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func basicHeader(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

// addUser seeds an account directly in the store, bypassing signup, so
// tests can create admins.
func addUser(t *testing.T, st *store.MemoryStore, uuid, username, password string, role models.Role) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	u := &models.User{
		UUID:      uuid,
		FirstName: "Test",
		LastName:  "User",
		Username:  username,
		Email:     username + "@example.com",
		Password:  hash,
		Role:      role,
	}
	require.NoError(t, st.CreateUser(u))
	return u
}

// signin logs the user in over HTTP and returns the bearer header.
func signin(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/user/signin", basicHeader(username, password), nil)
	require.Equal(t, http.StatusOK, w.Code, "signin failed: %s", w.Body.String())
	token := w.Header().Get("access-token")
	require.NotEmpty(t, token)
	return "Bearer " + token
}
