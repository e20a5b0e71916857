package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
	"github.com/heartmarshall/growth-journal-backend/internal/service/streak"
	"github.com/heartmarshall/growth-journal-backend/pkg/ctxutil"
)

// Snapshot is one recomputation of a user's progress.
type Snapshot struct {
	Today      domain.Date
	WindowDays int
	Streak     domain.StreakResult
	Buckets    []domain.DayBucket
	// Unlocked holds every milestone on record, NewlyUnlocked only those
	// created by this recomputation.
	Unlocked      []*domain.Milestone
	NewlyUnlocked []domain.Milestone
}

// GetProgressInput holds the parameters of GetProgress.
type GetProgressInput struct {
	WindowDays int
}

// Validate checks all fields and collects all errors. A zero window selects
// the configured default.
func (i GetProgressInput) Validate() error {
	if i.WindowDays < 0 || i.WindowDays > MaxWindowDays {
		return domain.NewValidationError("window", fmt.Sprintf("must be between 0 and %d (0 = default)", MaxWindowDays))
	}
	return nil
}

// GetProgress recomputes the progress of the user in ctx.
func (s *Service) GetProgress(ctx context.Context, input GetProgressInput) (*Snapshot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	window := input.WindowDays
	if window == 0 {
		window = s.window
	}

	return s.Recompute(ctx, userID, window)
}

// Recompute loads the full activity history of userID, runs the streak
// engine and applies the milestone trigger policy: every threshold exactly
// equal to the current streak is offered to the ledger, and the notifier hears
// about each milestone the ledger reports as newly created.
//
// Ledger and notification failures are logged and do not fail the call; the
// next recomputation retries them. A non-positive windowDays selects the
// default window.
func (s *Service) Recompute(ctx context.Context, userID uuid.UUID, windowDays int) (*Snapshot, error) {
	if windowDays <= 0 {
		windowDays = s.window
	}

	loc, err := s.location(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := domain.DateIn(now, loc)

	// The whole history is loaded so a current run longer than the longest
	// horizon is still counted in full.
	stamps, err := s.activity.ListActivityDates(ctx, userID, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("load activity: %w", err)
	}

	dates := make([]domain.Date, len(stamps))
	for i, ts := range stamps {
		dates[i] = domain.DateIn(ts, loc)
	}

	res := streak.Compute(dates, today, windowDays)
	newly := s.applyThresholds(ctx, userID, res.Streak.Current, now)

	unlocked, err := s.milestones.ListForOwner(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "list milestones failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		unlocked = []*domain.Milestone{}
	}

	return &Snapshot{
		Today:         today,
		WindowDays:    windowDays,
		Streak:        res.Streak,
		Buckets:       res.Buckets,
		Unlocked:      unlocked,
		NewlyUnlocked: newly,
	}, nil
}

func (s *Service) applyThresholds(ctx context.Context, userID uuid.UUID, current int, now time.Time) []domain.Milestone {
	newly := []domain.Milestone{}

	for _, days := range s.thresholds {
		if days != current {
			continue
		}

		label := domain.MilestoneLabel(days)
		created, err := s.milestones.TryUnlock(ctx, userID, days, label)
		if err != nil {
			s.log.WarnContext(ctx, "milestone unlock failed",
				slog.String("user_id", userID.String()),
				slog.Int("threshold_days", days),
				slog.String("error", err.Error()),
			)
			continue
		}
		if !created {
			continue
		}

		m := domain.Milestone{
			UserID:        userID,
			ThresholdDays: days,
			Label:         label,
			UnlockedAt:    now.UTC(),
		}
		s.notifier.NotifyUnlock(ctx, userID, m)
		newly = append(newly, m)
	}

	return newly
}

func (s *Service) location(ctx context.Context, userID uuid.UUID) (*time.Location, error) {
	settings, err := s.settings.GetSettings(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return time.UTC, nil
	case err != nil:
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return ParseTimezone(settings.Timezone), nil
}
