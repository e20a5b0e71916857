package journal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
	"github.com/heartmarshall/growth-journal-backend/internal/service/progress"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	MaxTitleLength = 200
	MaxBodyLength  = 20000
)

// Consumer-defined interfaces (private)

type entryRepo interface {
	Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) ([]*domain.JournalEntry, int, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
	UpdateSummary(ctx context.Context, userID, entryID uuid.UUID, summary string) (*domain.JournalEntry, error)
}

type progressRecomputer interface {
	Recompute(ctx context.Context, userID uuid.UUID, windowDays int) (*progress.Snapshot, error)
}

type summarizer interface {
	Summarize(ctx context.Context, title, body string) (string, error)
}

// Service manages journal entries. Writes that change the activity history
// trigger a progress recompute whose snapshot is returned with the result.
type Service struct {
	entries    entryRepo
	progress   progressRecomputer
	summarizer summarizer
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new Journal service. A nil summarizer disables
// Summarize, which then fails with domain.ErrUnavailable.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	progress progressRecomputer,
	summarizer summarizer,
) *Service {
	return &Service{
		entries:    entries,
		progress:   progress,
		summarizer: summarizer,
		log:        log.With("service", "journal"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// recompute refreshes progress after a write. A failure leaves the write in
// place and yields a nil snapshot; the next read recomputes.
func (s *Service) recompute(ctx context.Context, userID uuid.UUID) *progress.Snapshot {
	if s.progress == nil {
		return nil
	}

	snap, err := s.progress.Recompute(ctx, userID, 0)
	if err != nil {
		s.log.WarnContext(ctx, "progress recompute failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return nil
	}

	for _, m := range snap.NewlyUnlocked {
		s.log.InfoContext(ctx, "milestone unlocked",
			slog.String("user_id", userID.String()),
			slog.Int("threshold_days", m.ThresholdDays),
		)
	}

	return snap
}
