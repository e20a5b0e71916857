// Package notify delivers milestone unlock notifications. Delivery runs in
// the background so a slow mail provider never delays a journal write.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/growth-journal-backend/internal/adapter/provider/mailer"
	"github.com/heartmarshall/growth-journal-backend/internal/domain"
)

const defaultSendTimeout = 15 * time.Second

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type mailSender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// Service sends unlock notifications. With no mail sender it only logs.
type Service struct {
	users   userRepo
	mail    mailSender
	timeout time.Duration
	log     *slog.Logger
	wg      sync.WaitGroup
}

// NewService creates a new Notify service. mail may be nil.
func NewService(log *slog.Logger, users userRepo, mail mailSender) *Service {
	return &Service{
		users:   users,
		mail:    mail,
		timeout: defaultSendTimeout,
		log:     log.With("service", "notify"),
	}
}

// NotifyUnlock schedules a notification for ownerID and returns at once.
// Failures are logged; the milestone stays unlocked either way.
func (s *Service) NotifyUnlock(ctx context.Context, ownerID uuid.UUID, m domain.Milestone) {
	s.log.InfoContext(ctx, "milestone unlocked",
		slog.String("user_id", ownerID.String()),
		slog.Int("threshold_days", m.ThresholdDays),
		slog.String("label", m.Label),
	)

	if s.mail == nil {
		return
	}

	// The request may finish before delivery does.
	bg := context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		sendCtx, cancel := context.WithTimeout(bg, s.timeout)
		defer cancel()

		if err := s.deliver(sendCtx, ownerID, m); err != nil {
			s.log.ErrorContext(sendCtx, "unlock notification failed",
				slog.String("user_id", ownerID.String()),
				slog.Int("threshold_days", m.ThresholdDays),
				slog.String("error", err.Error()),
			)
		}
	}()
}

// Wait blocks until all scheduled deliveries finish or ctx is done.
func (s *Service) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) deliver(ctx context.Context, ownerID uuid.UUID, m domain.Milestone) error {
	user, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("load recipient: %w", err)
	}

	if err := s.mail.Send(ctx, composeUnlock(user, m)); err != nil {
		return fmt.Errorf("send unlock mail: %w", err)
	}
	return nil
}

func composeUnlock(user *domain.User, m domain.Milestone) mailer.Message {
	return mailer.Message{
		To:      user.Email,
		Subject: fmt.Sprintf("Milestone unlocked: %s", m.Label),
		Text: fmt.Sprintf(
			"Hi %s,\n\nYou have journaled %d days in a row and unlocked \"%s\".\nKeep going.\n",
			user.Name, m.ThresholdDays, m.Label,
		),
	}
}
