package evaluation

import (
	"fmt"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
)

const maxAnswerLength = 5000

// SubmitInput holds the final answers of a client-side wizard run.
type SubmitInput struct {
	Answers []string
	Traits  []string
	Faith   string
}

// Validate checks the shape of the input. Step guards are enforced by the
// wizard replay, not here.
func (i SubmitInput) Validate(form Form) error {
	var errs []domain.FieldError

	if len(i.Answers) != len(form.Questions) {
		errs = append(errs, domain.FieldError{
			Field:   "answers",
			Message: fmt.Sprintf("expected %d answers", len(form.Questions)),
		})
	}
	for idx, a := range i.Answers {
		if len(a) > maxAnswerLength {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("answers[%d]", idx),
				Message: fmt.Sprintf("max %d characters", maxAnswerLength),
			})
		}
	}

	seen := make(map[string]struct{}, len(i.Traits))
	for _, t := range i.Traits {
		if _, dup := seen[t]; dup {
			errs = append(errs, domain.FieldError{Field: "traits", Message: "must be unique"})
			break
		}
		seen[t] = struct{}{}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the parameters for listing past evaluations.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
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
		return domain.NewValidationErrors(errs)
	}
	return nil
}
