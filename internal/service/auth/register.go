package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
)

// Register creates a new user with email + password authentication.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// User and default settings are created together; email uniqueness is
	// enforced by the database.
	var createdUser *domain.User

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now().UTC()
		user, err := s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: string(hash),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if _, err := s.settings.UpsertSettings(txCtx, domain.DefaultUserSettings(user.ID)); err != nil {
			return fmt.Errorf("create settings: %w", err)
		}

		createdUser = user
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueTokens(ctx, createdUser)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", createdUser.ID.String()))

	return result, nil
}
