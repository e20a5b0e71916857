package journal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
	"github.com/heartmarshall/growth-journal-backend/internal/service/progress"
	"github.com/heartmarshall/growth-journal-backend/pkg/ctxutil"
)

// CreateResult is a stored entry together with the progress it produced.
// Progress is nil when the recompute failed.
type CreateResult struct {
	Entry    *domain.JournalEntry
	Progress *progress.Snapshot
}

// CreateEntry stores a new entry for the user in ctx and recomputes their
// progress. A missing OccurredAt means now.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*CreateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.now()
	if err := input.Validate(now); err != nil {
		return nil, err
	}

	occurredAt := now
	if input.OccurredAt != nil {
		occurredAt = input.OccurredAt.UTC()
	}

	entry := &domain.JournalEntry{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      strings.TrimSpace(input.Title),
		Body:       strings.TrimSpace(input.Body),
		OccurredAt: occurredAt,
	}
	if input.Mood != nil {
		m := domain.Mood(*input.Mood)
		entry.Mood = &m
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("create journal entry: %w", err)
	}

	s.log.InfoContext(ctx, "journal entry created",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", created.ID.String()),
	)

	return &CreateResult{Entry: created, Progress: s.recompute(ctx, userID)}, nil
}

// GetEntry returns one of the caller's entries.
func (s *Service) GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entry, err := s.entries.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("get journal entry: %w", err)
	}

	return entry, nil
}

// ListEntries returns a page of the caller's entries, newest first, and the
// total count matching the filter.
func (s *Service) ListEntries(ctx context.Context, input ListEntriesInput) ([]*domain.JournalEntry, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	entries, total, err := s.entries.List(ctx, userID, input.filter())
	if err != nil {
		return nil, 0, fmt.Errorf("list journal entries: %w", err)
	}

	return entries, total, nil
}

// DeleteEntry removes one of the caller's entries and returns the progress
// recomputed without it. Milestones already unlocked stay unlocked.
func (s *Service) DeleteEntry(ctx context.Context, entryID uuid.UUID) (*progress.Snapshot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if entryID == uuid.Nil {
		return nil, domain.NewValidationError("entry_id", "required")
	}

	if err := s.entries.Delete(ctx, userID, entryID); err != nil {
		return nil, fmt.Errorf("delete journal entry: %w", err)
	}

	s.log.InfoContext(ctx, "journal entry deleted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entryID.String()),
	)

	return s.recompute(ctx, userID), nil
}
