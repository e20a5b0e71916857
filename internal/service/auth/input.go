package auth

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
)

const (
	minPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	maxPasswordLength = 72
)

// RegisterInput holds parameters for password registration.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil || !strings.Contains(i.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(i.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "at least 8 characters"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "at most 72 bytes"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
