//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/growth-journal-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/growth-journal-backend/internal/app"
	"github.com/heartmarshall/growth-journal-backend/internal/config"
)

const testPassword = "securepassword123"

type testServer struct {
	*httptest.Server
}

// testLogWriter routes server logs through t.Log so they only show up for
// failing tests.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:        "e2e-secret-at-least-32-characters-long",
			JWTIssuer:        "growth-journal-e2e",
			AccessTokenTTL:   15 * time.Minute,
			RefreshTokenTTL:  24 * time.Hour,
			PasswordHashCost: 4,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         60,
		},
		RateLimit: config.RateLimitConfig{AuthPerMinute: 1000, CleanupInterval: time.Minute},
		Progress: config.ProgressConfig{
			MilestoneThresholds: []int{3, 7},
			DefaultWindowDays:   30,
		},
		Evaluation: config.EvaluationConfig{
			QuestionsRaw:    "What went well?|What will you change?",
			TraitsRaw:       "Patient|Curious|Honest",
			FaithOptionsRaw: "Spiritual|Agnostic",
		},
	}
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	server, err := app.NewServer(testConfig(), pool, logger)
	require.NoError(t, err)

	srv := httptest.NewServer(server.Handler)
	t.Cleanup(func() {
		srv.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Close(ctx)
	})

	return &testServer{Server: srv}
}

// do sends a JSON request. token may be empty for anonymous calls.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var rd io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	return resp
}

// doJSON sends a request, asserts the status and decodes the body into a map.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any, wantStatus int) map[string]any {
	t.Helper()

	resp := ts.do(t, method, path, token, body)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "body: %s", raw)

	if len(raw) == 0 {
		return nil
	}
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

type session struct {
	AccessToken  string
	RefreshToken string
	UserID       string
	Email        string
}

// register creates a fresh user with a unique email.
func (ts *testServer) register(t *testing.T) session {
	t.Helper()

	email := "user-" + uuid.NewString()[:8] + "@example.com"
	body := ts.doJSON(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    email,
		"name":     "E2E User",
		"password": testPassword,
	}, http.StatusCreated)

	user := body["user"].(map[string]any)
	return session{
		AccessToken:  body["accessToken"].(string),
		RefreshToken: body["refreshToken"].(string),
		UserID:       user["id"].(string),
		Email:        email,
	}
}

// createEntry posts an entry that occurred at the given time.
func (ts *testServer) createEntry(t *testing.T, token, title string, at time.Time) map[string]any {
	t.Helper()

	return ts.doJSON(t, http.MethodPost, "/journal/entries", token, map[string]any{
		"title":      title,
		"body":       "Body of " + title,
		"mood":       3,
		"occurredAt": at.UTC().Format(time.RFC3339),
	}, http.StatusCreated)
}
