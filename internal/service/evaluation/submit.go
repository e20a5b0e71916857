package evaluation

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
	"github.com/heartmarshall/growth-journal-backend/pkg/ctxutil"
)

// Submit replays the client's answers through a fresh wizard, so every step
// guard runs on the server, and stores the payload once Review is passed.
// Answers are stored exactly as sent; guards trim only to test for blanks.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Evaluation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.form); err != nil {
		return nil, err
	}

	var stored *domain.Evaluation
	w := NewWizard(s.form, SubmitterFunc(func(ctx context.Context, p domain.EvaluationPayload) error {
		created, err := s.evaluations.Create(ctx, &domain.Evaluation{
			ID:          uuid.New(),
			UserID:      userID,
			Questions:   slices.Clone(s.form.Questions),
			Answers:     p.Answers,
			Traits:      p.Traits,
			Faith:       p.Faith,
			SubmittedAt: s.now().UTC(),
		})
		if err != nil {
			return err
		}
		stored = created
		return nil
	}))

	if err := replay(ctx, w, input); err != nil {
		s.log.WarnContext(ctx, "evaluation rejected",
			slog.String("user_id", userID.String()),
			slog.String("step", w.Step().String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("submit evaluation: %w", err)
	}

	s.log.InfoContext(ctx, "evaluation submitted",
		slog.String("user_id", userID.String()),
		slog.String("evaluation_id", stored.ID.String()),
	)

	return stored, nil
}

// replay drives w from its first question to Submitted with the given input.
func replay(ctx context.Context, w *Wizard, input SubmitInput) error {
	for _, answer := range input.Answers {
		if err := w.SetAnswer(answer); err != nil {
			return err
		}
		if err := w.Next(ctx); err != nil {
			return err
		}
	}

	for _, trait := range input.Traits {
		if err := w.ToggleTrait(trait); err != nil {
			return err
		}
	}
	if err := w.Next(ctx); err != nil {
		return err
	}

	if err := w.SetFaith(input.Faith); err != nil {
		return err
	}
	if err := w.Next(ctx); err != nil {
		return err
	}

	// Review → Submitted.
	return w.Next(ctx)
}

// List returns the caller's past evaluations, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Evaluation, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	items, total, err := s.evaluations.ListByUser(ctx, userID, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list evaluations: %w", err)
	}

	return items, total, nil
}

// Latest returns the caller's most recent evaluation.
func (s *Service) Latest(ctx context.Context) (*domain.Evaluation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	e, err := s.evaluations.GetLatest(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("latest evaluation: %w", err)
	}
	return e, nil
}
