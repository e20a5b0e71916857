package domain

import (
	"time"

	"github.com/google/uuid"
)

// Mood is the self-reported mood of a journal entry, 1 (low) to 5 (high).
type Mood int

const (
	MoodMin Mood = 1
	MoodMax Mood = 5
)

func (m Mood) IsValid() bool { return m >= MoodMin && m <= MoodMax }

// JournalEntry is one written journal entry. Only OccurredAt matters to
// streak computation.
type JournalEntry struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Title      string
	Body       string
	Mood       *Mood
	Summary    *string
	OccurredAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ActivityRecord is the streak-relevant projection of a journal entry.
type ActivityRecord struct {
	OwnerID    uuid.UUID
	OccurredAt time.Time
}

// JournalFilter narrows a journal entry listing.
type JournalFilter struct {
	Mood  *Mood
	From  *time.Time
	To    *time.Time
	Limit int
	// Offset is applied after ordering by occurred_at DESC.
	Offset int
}
