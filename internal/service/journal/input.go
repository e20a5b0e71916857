package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
)

// maxFutureSkew bounds how far ahead of the server clock occurred_at may be,
// covering clients in timezones ahead of UTC.
const maxFutureSkew = 24 * time.Hour

// CreateEntryInput holds the parameters for writing a journal entry.
type CreateEntryInput struct {
	Title      string
	Body       string
	Mood       *int
	OccurredAt *time.Time
}

// Validate checks all fields against now and collects all errors.
func (i CreateEntryInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", MaxTitleLength)})
	}

	body := strings.TrimSpace(i.Body)
	if body == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}
	if len(body) > MaxBodyLength {
		errs = append(errs, domain.FieldError{Field: "body", Message: fmt.Sprintf("max %d characters", MaxBodyLength)})
	}

	if i.Mood != nil && !domain.Mood(*i.Mood).IsValid() {
		errs = append(errs, domain.FieldError{Field: "mood", Message: "must be between 1 and 5"})
	}

	if i.OccurredAt != nil && i.OccurredAt.After(now.Add(maxFutureSkew)) {
		errs = append(errs, domain.FieldError{Field: "occurred_at", Message: "must not be in the future"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListEntriesInput holds the parameters for listing journal entries.
// From is inclusive, To exclusive.
type ListEntriesInput struct {
	Mood   *int
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListEntriesInput) Validate() error {
	var errs []domain.FieldError

	if i.Mood != nil && !domain.Mood(*i.Mood).IsValid() {
		errs = append(errs, domain.FieldError{Field: "mood", Message: "must be between 1 and 5"})
	}
	if i.From != nil && i.To != nil && !i.From.Before(*i.To) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must be after from"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("max %d", MaxLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListEntriesInput) filter() domain.JournalFilter {
	f := domain.JournalFilter{
		From:   i.From,
		To:     i.To,
		Limit:  i.Limit,
		Offset: i.Offset,
	}
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	if i.Mood != nil {
		m := domain.Mood(*i.Mood)
		f.Mood = &m
	}
	return f
}
