package user

import (
	"strings"
	"time"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
)

// UpdateProfileInput holds parameters for profile update operation.
type UpdateProfileInput struct {
	Name string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	name := strings.TrimSpace(i.Name)
	if name == "" {
		return domain.NewValidationError("name", "required")
	}
	if len(name) > 255 {
		return domain.NewValidationError("name", "too long")
	}
	return nil
}

// UpdateSettingsInput holds parameters for settings update operation.
// All fields are optional (nil = don't change).
type UpdateSettingsInput struct {
	Timezone *string
}

// Validate validates the update settings input.
func (i UpdateSettingsInput) Validate() error {
	var errs []domain.FieldError

	if i.Timezone != nil {
		if *i.Timezone == "" {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "cannot be empty"})
		} else if len(*i.Timezone) > 64 {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "too long"})
		} else if _, err := time.LoadLocation(*i.Timezone); err != nil {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "invalid IANA timezone"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
