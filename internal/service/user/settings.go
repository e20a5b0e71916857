package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
	"github.com/heartmarshall/growth-journal-backend/pkg/ctxutil"
)

// GetSettings returns the authenticated user's settings, or the defaults if
// none were ever saved.
func (s *Service) GetSettings(ctx context.Context) (*domain.UserSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	settings, err := s.loadSettings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetSettings: %w", err)
	}

	return settings, nil
}

// UpdateSettings applies a partial settings update.
// Changing the timezone moves the day boundary used for streaks from the next
// progress recomputation on.
func (s *Service) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*domain.UserSettings, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		updated  *domain.UserSettings
		previous string
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.loadSettings(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get current settings: %w", err)
		}
		previous = current.Timezone

		next := applySettingsChanges(*current, input)

		updated, err = s.settings.UpsertSettings(txCtx, next)
		if err != nil {
			return fmt.Errorf("upsert settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateSettings: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.String("user_id", userID.String()),
		slog.String("timezone_old", previous),
		slog.String("timezone_new", updated.Timezone))

	return updated, nil
}

func (s *Service) loadSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	settings, err := s.settings.GetSettings(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		d := domain.DefaultUserSettings(userID)
		return &d, nil
	}
	return settings, err
}

// applySettingsChanges merges the input changes into current settings.
func applySettingsChanges(current domain.UserSettings, input UpdateSettingsInput) domain.UserSettings {
	result := current

	if input.Timezone != nil {
		result.Timezone = *input.Timezone
	}

	return result
}
