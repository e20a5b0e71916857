package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
	"github.com/heartmarshall/growth-journal-backend/internal/service/journal"
	"github.com/heartmarshall/growth-journal-backend/internal/service/progress"
)

type journalService interface {
	CreateEntry(ctx context.Context, input journal.CreateEntryInput) (*journal.CreateResult, error)
	GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, input journal.ListEntriesInput) ([]*domain.JournalEntry, int, error)
	DeleteEntry(ctx context.Context, entryID uuid.UUID) (*progress.Snapshot, error)
	Summarize(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error)
}

// JournalHandler serves journal entry endpoints.
type JournalHandler struct {
	svc journalService
	log *slog.Logger
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(svc journalService, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{svc: svc, log: logger.With("handler", "journal")}
}

type createEntryRequest struct {
	Title      string     `json:"title"`
	Body       string     `json:"body"`
	Mood       *int       `json:"mood"`
	OccurredAt *time.Time `json:"occurredAt"`
}

type entryResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Mood       *int      `json:"mood"`
	Summary    *string   `json:"summary"`
	OccurredAt time.Time `json:"occurredAt"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// entryWriteResponse carries the progress a write produced. Progress is
// null when the recompute failed.
type entryWriteResponse struct {
	Entry    *entryResponse    `json:"entry,omitempty"`
	Progress *progressResponse `json:"progress"`
}

type entryListResponse struct {
	Entries []entryResponse `json:"entries"`
	Total   int             `json:"total"`
}

// Create handles POST /journal/entries.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.CreateEntry(r.Context(), journal.CreateEntryInput{
		Title:      req.Title,
		Body:       req.Body,
		Mood:       req.Mood,
		OccurredAt: req.OccurredAt,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry := toEntryResponse(res.Entry)
	writeJSON(w, http.StatusCreated, entryWriteResponse{
		Entry:    &entry,
		Progress: toProgressResponse(res.Progress),
	})
}

// List handles GET /journal/entries?mood=&from=&to=&limit=&offset=.
// from and to are RFC 3339 timestamps.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListEntries(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, total, err := h.svc.ListEntries(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := entryListResponse{Entries: make([]entryResponse, len(entries)), Total: total}
	for i, e := range entries {
		resp.Entries[i] = toEntryResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /journal/entries/{id}.
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.GetEntry(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Delete handles DELETE /journal/entries/{id}.
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	snap, err := h.svc.DeleteEntry(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entryWriteResponse{Progress: toProgressResponse(snap)})
}

// Summarize handles POST /journal/entries/{id}/summary.
func (h *JournalHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.Summarize(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

func parseListEntries(r *http.Request) (journal.ListEntriesInput, error) {
	var (
		input journal.ListEntriesInput
		err   error
	)
	q := r.URL.Query()

	if input.Limit, err = queryInt(r, "limit", 0); err != nil {
		return input, err
	}
	if input.Offset, err = queryInt(r, "offset", 0); err != nil {
		return input, err
	}
	if q.Has("mood") {
		mood, err := queryInt(r, "mood", 0)
		if err != nil {
			return input, err
		}
		input.Mood = &mood
	}
	if input.From, err = queryTime(r, "from"); err != nil {
		return input, err
	}
	if input.To, err = queryTime(r, "to"); err != nil {
		return input, err
	}
	return input, nil
}

func queryTime(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be an RFC 3339 timestamp")
	}
	return &t, nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

func toEntryResponse(e *domain.JournalEntry) entryResponse {
	resp := entryResponse{
		ID:         e.ID.String(),
		Title:      e.Title,
		Body:       e.Body,
		Summary:    e.Summary,
		OccurredAt: e.OccurredAt,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
	if e.Mood != nil {
		m := int(*e.Mood)
		resp.Mood = &m
	}
	return resp
}
