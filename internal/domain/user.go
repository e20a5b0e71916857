package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated journal owner.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserSettings holds per-user display preferences.
type UserSettings struct {
	UserID uuid.UUID
	// Timezone is an IANA zone name; it decides which calendar day an entry
	// counts toward.
	Timezone  string
	UpdatedAt time.Time
}

// DefaultUserSettings returns UserSettings with sensible defaults.
func DefaultUserSettings(userID uuid.UUID) UserSettings {
	return UserSettings{
		UserID:   userID,
		Timezone: "UTC",
	}
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
