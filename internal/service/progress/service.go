package progress

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
)

const (
	DefaultWindowDays = 30
	MaxWindowDays     = 365
)

// Consumer-defined interfaces (private)

type activityStore interface {
	ListActivityDates(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)
}

type settingsRepo interface {
	GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
}

type milestoneLedger interface {
	TryUnlock(ctx context.Context, ownerID uuid.UUID, thresholdDays int, label string) (bool, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Milestone, error)
}

type unlockNotifier interface {
	NotifyUnlock(ctx context.Context, ownerID uuid.UUID, m domain.Milestone)
}

// Config controls the milestone trigger policy and the default window.
type Config struct {
	Thresholds        []int
	DefaultWindowDays int
}

// Service recomputes a user's progress from their journal activity.
type Service struct {
	activity   activityStore
	settings   settingsRepo
	milestones milestoneLedger
	notifier   unlockNotifier
	thresholds []int
	window     int
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new Progress service.
func NewService(
	log *slog.Logger,
	activity activityStore,
	settings settingsRepo,
	milestones milestoneLedger,
	notifier unlockNotifier,
	cfg Config,
) *Service {
	thresholds := slices.Clone(cfg.Thresholds)
	if len(thresholds) == 0 {
		thresholds = slices.Clone(domain.DefaultMilestoneThresholds)
	}
	slices.Sort(thresholds)
	thresholds = slices.Compact(thresholds)

	window := cfg.DefaultWindowDays
	if window <= 0 || window > MaxWindowDays {
		window = DefaultWindowDays
	}

	return &Service{
		activity:   activity,
		settings:   settings,
		milestones: milestones,
		notifier:   notifier,
		thresholds: thresholds,
		window:     window,
		log:        log.With("service", "progress"),
		now:        time.Now,
	}
}
