package journal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
	"github.com/heartmarshall/growth-journal-backend/pkg/ctxutil"
)

// Summarize generates a short summary of one of the caller's entries and
// stores it on the entry. Calling it again replaces the summary.
func (s *Service) Summarize(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if s.summarizer == nil {
		return nil, fmt.Errorf("summarize entry: summarizer not configured: %w", domain.ErrUnavailable)
	}

	entry, err := s.entries.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("summarize entry: %w", err)
	}

	summary, err := s.summarizer.Summarize(ctx, entry.Title, entry.Body)
	if err != nil {
		s.log.ErrorContext(ctx, "summarizer failed",
			slog.String("user_id", userID.String()),
			slog.String("entry_id", entryID.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("summarize entry: %w", err)
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		return nil, fmt.Errorf("summarize entry: empty summary: %w", domain.ErrUnavailable)
	}

	updated, err := s.entries.UpdateSummary(ctx, userID, entryID, summary)
	if err != nil {
		return nil, fmt.Errorf("store summary: %w", err)
	}

	return updated, nil
}
