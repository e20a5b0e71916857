package rest

import (
	"net/http"

	"github.com/heartmarshall/growth-journal-backend/internal/transport/middleware"
)

// Handlers groups every REST handler the router mounts.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	User       *UserHandler
	Journal    *JournalHandler
	Progress   *ProgressHandler
	Evaluation *EvaluationHandler
}

// NewRouter registers the REST surface on a ServeMux. authLimit throttles
// the unauthenticated auth endpoints; protected routes require a user on
// the context (set by middleware.Auth around the returned handler).
func NewRouter(h Handlers, authLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	limited := func(f http.HandlerFunc) http.Handler { return authLimit(f) }
	mux.Handle("POST /auth/register", limited(h.Auth.Register))
	mux.Handle("POST /auth/login", limited(h.Auth.Login))
	mux.Handle("POST /auth/refresh", limited(h.Auth.Refresh))

	protected := func(f http.HandlerFunc) http.Handler { return middleware.RequireAuth(f) }
	mux.Handle("POST /auth/logout", protected(h.Auth.Logout))

	mux.Handle("GET /me", protected(h.User.GetProfile))
	mux.Handle("PUT /me", protected(h.User.UpdateProfile))
	mux.Handle("GET /me/settings", protected(h.User.GetSettings))
	mux.Handle("PUT /me/settings", protected(h.User.UpdateSettings))

	mux.Handle("POST /journal/entries", protected(h.Journal.Create))
	mux.Handle("GET /journal/entries", protected(h.Journal.List))
	mux.Handle("GET /journal/entries/{id}", protected(h.Journal.Get))
	mux.Handle("DELETE /journal/entries/{id}", protected(h.Journal.Delete))
	mux.Handle("POST /journal/entries/{id}/summary", protected(h.Journal.Summarize))

	mux.Handle("GET /progress", protected(h.Progress.Get))
	mux.Handle("GET /milestones", protected(h.Progress.Milestones))

	mux.Handle("GET /evaluations/form", protected(h.Evaluation.Form))
	mux.Handle("POST /evaluations", protected(h.Evaluation.Submit))
	mux.Handle("GET /evaluations", protected(h.Evaluation.List))
	mux.Handle("GET /evaluations/latest", protected(h.Evaluation.Latest))

	return mux
}
