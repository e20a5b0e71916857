package milestone

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
	"github.com/heartmarshall/growth-journal-backend/pkg/ctxutil"
)

type ledgerRepo interface {
	FindByOwnerAndThreshold(ctx context.Context, userID uuid.UUID, thresholdDays int) (*domain.Milestone, error)
	InsertIfAbsent(ctx context.Context, m *domain.Milestone) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Milestone, error)
}

// Service is the "unlock once" milestone ledger.
type Service struct {
	ledger ledgerRepo
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new Milestone service.
func NewService(log *slog.Logger, ledger ledgerRepo) *Service {
	return &Service{
		ledger: ledger,
		log:    log.With("service", "milestone"),
		now:    time.Now,
	}
}

// TryUnlock records the milestone (ownerID, thresholdDays) unless it already
// exists. It returns true iff this call created the record.
//
// Any storage failure is reported as domain.ErrPersistenceUnavailable and
// leaves nothing written; the unlock simply is not confirmed this time.
func (s *Service) TryUnlock(ctx context.Context, ownerID uuid.UUID, thresholdDays int, label string) (bool, error) {
	if ownerID == uuid.Nil {
		return false, domain.NewValidationError("owner_id", "required")
	}
	if thresholdDays <= 0 {
		return false, domain.NewValidationError("threshold_days", "must be positive")
	}

	_, err := s.ledger.FindByOwnerAndThreshold(ctx, ownerID, thresholdDays)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, domain.ErrNotFound):
		return false, fmt.Errorf("milestone.TryUnlock find: %w: %w", domain.ErrPersistenceUnavailable, err)
	}

	// The lookup is only a fast path; the conditional insert decides.
	created, err := s.ledger.InsertIfAbsent(ctx, &domain.Milestone{
		ID:            uuid.New(),
		UserID:        ownerID,
		ThresholdDays: thresholdDays,
		Label:         label,
		UnlockedAt:    s.now().UTC(),
	})
	if err != nil {
		return false, fmt.Errorf("milestone.TryUnlock insert: %w: %w", domain.ErrPersistenceUnavailable, err)
	}

	if created {
		s.log.InfoContext(ctx, "milestone unlocked",
			slog.String("user_id", ownerID.String()),
			slog.Int("threshold_days", thresholdDays),
		)
	}

	return created, nil
}

// ListForOwner returns every milestone ownerID has unlocked.
func (s *Service) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Milestone, error) {
	milestones, err := s.ledger.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	return milestones, nil
}

// List returns the milestones of the user in ctx.
func (s *Service) List(ctx context.Context) ([]*domain.Milestone, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.ListForOwner(ctx, userID)
}
