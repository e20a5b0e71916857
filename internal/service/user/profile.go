package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
	"github.com/heartmarshall/growth-journal-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return user, nil
}

// UpdateProfile renames the authenticated user.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.UpdateName(ctx, userID, strings.TrimSpace(input.Name))
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()))

	return user, nil
}
