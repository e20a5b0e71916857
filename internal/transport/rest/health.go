package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and full health probes.
type HealthHandler struct {
	db       dbPinger
	version  string
	started  time.Time
	optional map[string]bool
	now      func() time.Time
}

// NewHealthHandler creates a HealthHandler. optional lists integrations that
// may be switched off by configuration (summarizer, mail); they are reported
// as "enabled" or "disabled" and never affect the overall status.
func NewHealthHandler(db dbPinger, version string, optional map[string]bool) *HealthHandler {
	return &HealthHandler{
		db:       db,
		version:  version,
		started:  time.Now(),
		optional: optional,
		now:      time.Now,
	}
}

// HealthResponse is the JSON response for /health, /live and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always returns 200 while the process serves requests.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now().UTC()})
}

// Ready returns 503 until the database answers a ping.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	comp := h.pingDB(r.Context())

	status := http.StatusOK
	if comp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{Status: comp.Status, Timestamp: h.now().UTC()})
}

// Health reports every component with the database latency, version and uptime.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())

	components := map[string]CompStatus{"database": db}
	for name, enabled := range h.optional {
		st := "disabled"
		if enabled {
			st = "enabled"
		}
		components[name] = CompStatus{Status: st}
	}

	status := http.StatusOK
	if db.Status != "ok" {
		status = http.StatusServiceUnavailable
	}

	now := h.now()
	writeJSON(w, status, HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Uptime:     now.Sub(h.started).Round(time.Second).String(),
		Components: components,
		Timestamp:  now.UTC(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
