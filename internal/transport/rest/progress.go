package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
	"github.com/heartmarshall/growth-journal-backend/internal/service/progress"
)

type progressService interface {
	GetProgress(ctx context.Context, input progress.GetProgressInput) (*progress.Snapshot, error)
}

type milestoneService interface {
	List(ctx context.Context) ([]*domain.Milestone, error)
}

// ProgressHandler serves streaks, activity buckets and milestones.
type ProgressHandler struct {
	progress   progressService
	milestones milestoneService
	log        *slog.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(p progressService, m milestoneService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{progress: p, milestones: m, log: logger.With("handler", "progress")}
}

type streakResponse struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

type bucketResponse struct {
	Date  domain.Date `json:"date"`
	Count int         `json:"count"`
}

type milestoneResponse struct {
	ThresholdDays int       `json:"thresholdDays"`
	Label         string    `json:"label"`
	UnlockedAt    time.Time `json:"unlockedAt"`
}

type progressResponse struct {
	Today         domain.Date         `json:"today"`
	WindowDays    int                 `json:"windowDays"`
	Streak        streakResponse      `json:"streak"`
	Buckets       []bucketResponse    `json:"buckets"`
	Milestones    []milestoneResponse `json:"milestones"`
	NewlyUnlocked []milestoneResponse `json:"newlyUnlocked"`
}

// Get handles GET /progress?window=N.
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	window, err := queryInt(r, "window", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	snap, err := h.progress.GetProgress(r.Context(), progress.GetProgressInput{WindowDays: window})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(snap))
}

// Milestones handles GET /milestones.
func (h *ProgressHandler) Milestones(w http.ResponseWriter, r *http.Request) {
	ms, err := h.milestones.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]milestoneResponse, len(ms))
	for i, m := range ms {
		out[i] = toMilestoneResponse(*m)
	}
	writeJSON(w, http.StatusOK, map[string]any{"milestones": out})
}

func toProgressResponse(s *progress.Snapshot) *progressResponse {
	if s == nil {
		return nil
	}

	resp := &progressResponse{
		Today:         s.Today,
		WindowDays:    s.WindowDays,
		Streak:        streakResponse{Current: s.Streak.Current, Longest: s.Streak.Longest},
		Buckets:       make([]bucketResponse, len(s.Buckets)),
		Milestones:    make([]milestoneResponse, len(s.Unlocked)),
		NewlyUnlocked: make([]milestoneResponse, len(s.NewlyUnlocked)),
	}
	for i, b := range s.Buckets {
		resp.Buckets[i] = bucketResponse{Date: b.Date, Count: b.Count}
	}
	for i, m := range s.Unlocked {
		resp.Milestones[i] = toMilestoneResponse(*m)
	}
	for i, m := range s.NewlyUnlocked {
		resp.NewlyUnlocked[i] = toMilestoneResponse(m)
	}
	return resp
}

func toMilestoneResponse(m domain.Milestone) milestoneResponse {
	return milestoneResponse{ThresholdDays: m.ThresholdDays, Label: m.Label, UnlockedAt: m.UnlockedAt}
}
