//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres/testhelper"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/app"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/config"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:         "test-secret-at-least-32-chars-long!!",
			JWTIssuer:         "test-issuer",
			SessionTTL:        time.Hour,
			PasswordMinLength: 8,
			BcryptCost:        4,
		},
		Limits: config.LimitsConfig{FreeMaxFolders: 1, FreeMaxEvaluations: 10},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
		RateLimit: config.RateLimitConfig{AuthPerMinute: 10000, CleanupInterval: time.Minute},
	}

	handler := app.NewHandler(cfg, pool, logger)
	srv := httptest.NewServer(handler)
	t.Cleanup(func() {
		srv.Close()
		handler.Stop()
	})

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// restRequest sends a JSON request. An empty token sends no Authorization header.
func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var reqBody io.Reader = http.NoBody
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// doJSON performs a request, asserts the status and decodes the body into a map
// (or nil for 204).
func doJSON(t *testing.T, ts *testServer, method, path, token string, body any, wantStatus int) map[string]any {
	t.Helper()

	resp := restRequest(t, ts, method, path, token, body)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "%s %s: %s", method, path, raw)

	if len(raw) == 0 {
		return nil
	}
	var out map[string]any
	if raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return out
}

// doJSONList is doJSON for endpoints returning an array.
func doJSONList(t *testing.T, ts *testServer, method, path, token string, wantStatus int) []map[string]any {
	t.Helper()

	resp := restRequest(t, ts, method, path, token, nil)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "%s %s: %s", method, path, raw)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// uniqueEmail returns a fresh address; the container is shared across tests.
func uniqueEmail(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8] + "@example.com"
}

// registerUser signs up and returns the access token.
func registerUser(t *testing.T, ts *testServer, email string) string {
	t.Helper()

	body := doJSON(t, ts, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    email,
		"password": "securepassword123",
		"name":     strings.Split(email, "@")[0],
	}, http.StatusCreated)

	tok, ok := body["accessToken"].(string)
	require.True(t, ok, "expected accessToken in response")
	return tok
}

// createFolder creates a folder and returns its id.
func createFolder(t *testing.T, ts *testServer, token, name string) string {
	t.Helper()

	body := doJSON(t, ts, http.MethodPost, "/folders", token, map[string]string{"name": name}, http.StatusCreated)
	id, ok := body["id"].(string)
	require.True(t, ok)
	return id
}

// setSubscription writes billing state directly, as the billing sync would.
func setSubscription(t *testing.T, ts *testServer, email, status string) {
	t.Helper()

	_, err := ts.Pool.Exec(t.Context(),
		`INSERT INTO subscriptions (email, status, updated_at) VALUES (lower($1), $2, now())
		 ON CONFLICT (email) DO UPDATE SET status = EXCLUDED.status, updated_at = now()`,
		email, status,
	)
	require.NoError(t, err)
}

// refreshSession re-issues the session so it reflects current billing state.
func refreshSession(t *testing.T, ts *testServer, token string) string {
	t.Helper()

	body := doJSON(t, ts, http.MethodPost, "/auth/session/refresh", token, nil, http.StatusOK)
	tok, ok := body["accessToken"].(string)
	require.True(t, ok)
	return tok
}
