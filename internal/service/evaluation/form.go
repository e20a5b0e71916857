package evaluation

import (
	"slices"
	"strings"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
)

// Form is the fixed content of the evaluation: its free-text prompts and the
// options offered on the selection steps.
type Form struct {
	Questions    []string
	Traits       []string
	FaithOptions []string
}

// ParseList splits a "|"-separated list, trimming blanks.
func ParseList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, "|") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks that every step has something to offer.
func (f Form) Validate() error {
	var errs []domain.FieldError
	if len(f.Questions) == 0 {
		errs = append(errs, domain.FieldError{Field: "questions", Message: "at least one required"})
	}
	if len(f.Traits) == 0 {
		errs = append(errs, domain.FieldError{Field: "traits", Message: "at least one required"})
	}
	if len(f.FaithOptions) == 0 {
		errs = append(errs, domain.FieldError{Field: "faith_options", Message: "at least one required"})
	}
	if hasDuplicates(f.Traits) {
		errs = append(errs, domain.FieldError{Field: "traits", Message: "must be unique"})
	}
	if hasDuplicates(f.FaithOptions) {
		errs = append(errs, domain.FieldError{Field: "faith_options", Message: "must be unique"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func hasDuplicates(items []string) bool {
	sorted := slices.Clone(items)
	slices.Sort(sorted)
	return len(slices.Compact(sorted)) != len(items)
}
