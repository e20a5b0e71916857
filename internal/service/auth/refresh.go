package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/growth-journal-backend/internal/auth"
	"github.com/heartmarshall/growth-journal-backend/internal/domain"
)

// Refresh performs token rotation and returns new access/refresh tokens.
// Unknown, expired or revoked tokens and deleted users yield ErrUnauthorized;
// presenting a revoked token also revokes every other session of its owner.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	token, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "unknown refresh token presented")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	// A revoked token being replayed means the pair leaked: end every session.
	if token.IsRevoked() {
		s.log.WarnContext(ctx, "revoked refresh token reused",
			slog.String("user_id", token.UserID.String()))
		if err := s.tokens.RevokeAllByUser(ctx, token.UserID); err != nil {
			return nil, fmt.Errorf("auth.Refresh revoke all: %w", err)
		}
		return nil, domain.ErrUnauthorized
	}

	if token.IsExpired(s.now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", token.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
		return nil, fmt.Errorf("auth.Refresh revoke token: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}
	return result, nil
}
