package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StreakResult holds consecutive-day counts. Longest >= Current always.
type StreakResult struct {
	Current int
	Longest int
}

// DayBucket is the activity count of one calendar day in a lookback window.
type DayBucket struct {
	Date  Date
	Count int
}

// Milestone is a one-time unlock tied to reaching an exact streak length.
// At most one exists per (UserID, ThresholdDays).
type Milestone struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ThresholdDays int
	Label         string
	UnlockedAt    time.Time
}

// DefaultMilestoneThresholds is the ascending list of streak lengths that
// unlock a milestone.
var DefaultMilestoneThresholds = []int{3, 7, 14, 30, 60, 90}

// MilestoneLabel returns the display label of a threshold.
func MilestoneLabel(days int) string {
	switch days {
	case 3:
		return "First spark: 3-day streak"
	case 7:
		return "One full week"
	case 14:
		return "Two-week rhythm"
	case 30:
		return "A month of reflection"
	case 60:
		return "Sixty days strong"
	case 90:
		return "Quarter-year habit"
	}
	return fmt.Sprintf("%d-day streak", days)
}
