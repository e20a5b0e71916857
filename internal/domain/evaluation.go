package domain

import (
	"time"

	"github.com/google/uuid"
)

// EvaluationState is the in-memory state of one self-evaluation wizard.
// It is owned by a single wizard and never shared.
type EvaluationState struct {
	StepIndex       int
	FreeTextAnswers []string
	SelectedTraits  []string
	FaithChoice     string
	IsSubmitted     bool
}

// EvaluationPayload is what a completed wizard hands to the submission
// collaborator. Answers keep question order, traits keep selection order.
type EvaluationPayload struct {
	Answers []string
	Traits  []string
	Faith   string
}

// Evaluation is a stored self-evaluation submission.
type Evaluation struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Questions   []string
	Answers     []string
	Traits      []string
	Faith       string
	SubmittedAt time.Time
}
