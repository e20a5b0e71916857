package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user and user_settings with default values.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "not-a-real-hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	settings := domain.DefaultUserSettings(user.ID)
	settings.UpdatedAt = now

	_, err = pool.Exec(ctx,
		`INSERT INTO user_settings (user_id, timezone, updated_at) VALUES ($1, $2, $3)`,
		settings.UserID, settings.Timezone, settings.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user_settings: %v", err)
	}

	return user
}

// SeedEntry creates a journal entry for userID that occurred at occurredAt.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, occurredAt time.Time) domain.JournalEntry {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.JournalEntry{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      "Entry " + uniqueSuffix(),
		Body:       "Today I noticed something small and kept it.",
		OccurredAt: occurredAt.UTC().Truncate(time.Microsecond),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO journal_entries (id, user_id, title, body, occurred_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.UserID, entry.Title, entry.Body, entry.OccurredAt, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert: %v", err)
	}

	return entry
}
