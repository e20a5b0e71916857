package evaluation

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
)

// StepKind identifies what the wizard is asking for at its current step.
type StepKind int

const (
	StepQuestion StepKind = iota
	StepTraitSelection
	StepFaithSelection
	StepReview
	StepSubmitted
)

func (k StepKind) String() string {
	switch k {
	case StepQuestion:
		return "QUESTION"
	case StepTraitSelection:
		return "TRAIT_SELECTION"
	case StepFaithSelection:
		return "FAITH_SELECTION"
	case StepReview:
		return "REVIEW"
	case StepSubmitted:
		return "SUBMITTED"
	}
	return fmt.Sprintf("StepKind(%d)", int(k))
}

var (
	// ErrFinished is returned for any transition or input after submission.
	ErrFinished = fmt.Errorf("evaluation already submitted: %w", domain.ErrConflict)
	// ErrAtFirstStep is returned by Back on the first question.
	ErrAtFirstStep = fmt.Errorf("evaluation is at its first step: %w", domain.ErrConflict)
	// ErrWrongStep is returned when an input does not belong to the current step.
	ErrWrongStep = fmt.Errorf("input does not belong to the current step: %w", domain.ErrConflict)
)

// Submitter receives the payload of a completed evaluation.
type Submitter interface {
	SubmitEvaluation(ctx context.Context, payload domain.EvaluationPayload) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, payload domain.EvaluationPayload) error

func (f SubmitterFunc) SubmitEvaluation(ctx context.Context, payload domain.EvaluationPayload) error {
	return f(ctx, payload)
}

// Wizard is the guarded, linear self-evaluation flow:
//
//	Question(0) → … → Question(N-1) → TraitSelection → FaithSelection → Review → Submitted
//
// Next is guarded per step, Back is not. Submitted is terminal.
// A Wizard has a single writer and is not safe for concurrent use.
type Wizard struct {
	form      Form
	state     domain.EvaluationState
	message   string
	submitter Submitter
}

// NewWizard starts a wizard at the first question with all answers empty.
func NewWizard(form Form, submitter Submitter) *Wizard {
	return &Wizard{
		form: form,
		state: domain.EvaluationState{
			FreeTextAnswers: make([]string, len(form.Questions)),
			SelectedTraits:  []string{},
		},
		submitter: submitter,
	}
}

// Step returns the kind of the current step.
func (w *Wizard) Step() StepKind {
	n := len(w.form.Questions)
	switch i := w.state.StepIndex; {
	case i < n:
		return StepQuestion
	case i == n:
		return StepTraitSelection
	case i == n+1:
		return StepFaithSelection
	case i == n+2:
		return StepReview
	default:
		return StepSubmitted
	}
}

// QuestionIndex returns the index of the current question, or false when
// the wizard is past the questions.
func (w *Wizard) QuestionIndex() (int, bool) {
	if w.Step() != StepQuestion {
		return 0, false
	}
	return w.state.StepIndex, true
}

// State returns a copy of the accumulated state.
func (w *Wizard) State() domain.EvaluationState {
	s := w.state
	s.FreeTextAnswers = slices.Clone(w.state.FreeTextAnswers)
	s.SelectedTraits = slices.Clone(w.state.SelectedTraits)
	return s
}

// ValidationMessage is the message of the last failed guard or rejected input,
// empty once the user moves on.
func (w *Wizard) ValidationMessage() string { return w.message }

// Payload returns what will be (or was) handed to the submitter.
func (w *Wizard) Payload() domain.EvaluationPayload {
	return domain.EvaluationPayload{
		Answers: slices.Clone(w.state.FreeTextAnswers),
		Traits:  slices.Clone(w.state.SelectedTraits),
		Faith:   w.state.FaithChoice,
	}
}

// SetAnswer stores the free-text answer of the current question.
func (w *Wizard) SetAnswer(text string) error {
	i, ok := w.QuestionIndex()
	if !ok {
		return w.wrongStep()
	}
	w.state.FreeTextAnswers[i] = text
	return nil
}

// ToggleTrait selects trait, or deselects it if already selected. Selection
// order is kept.
func (w *Wizard) ToggleTrait(trait string) error {
	if w.Step() != StepTraitSelection {
		return w.wrongStep()
	}
	if !slices.Contains(w.form.Traits, trait) {
		return w.reject("traits", fmt.Sprintf("unknown trait %q", trait))
	}

	if i := slices.Index(w.state.SelectedTraits, trait); i >= 0 {
		w.state.SelectedTraits = slices.Delete(w.state.SelectedTraits, i, i+1)
	} else {
		w.state.SelectedTraits = append(w.state.SelectedTraits, trait)
	}
	return nil
}

// SetFaith sets the single faith/category choice. An empty choice clears it.
func (w *Wizard) SetFaith(choice string) error {
	if w.Step() != StepFaithSelection {
		return w.wrongStep()
	}
	if choice != "" && !slices.Contains(w.form.FaithOptions, choice) {
		return w.reject("faith", fmt.Sprintf("unknown option %q", choice))
	}
	w.state.FaithChoice = choice
	return nil
}

// Next advances one step if the current step's guard passes. A failed guard
// returns a *domain.ValidationError and leaves the step unchanged.
//
// From Review, Next hands the payload to the submitter. If the submitter
// fails the wizard stays at Review with its state intact, and the error wraps
// domain.ErrSubmissionFailed.
func (w *Wizard) Next(ctx context.Context) error {
	switch w.Step() {
	case StepSubmitted:
		return ErrFinished

	case StepQuestion:
		i := w.state.StepIndex
		if strings.TrimSpace(w.state.FreeTextAnswers[i]) == "" {
			return w.reject(fmt.Sprintf("answers[%d]", i), "an answer is required to continue")
		}

	case StepTraitSelection:
		if len(w.state.SelectedTraits) == 0 {
			return w.reject("traits", "select at least one trait")
		}

	case StepFaithSelection:
		if strings.TrimSpace(w.state.FaithChoice) == "" {
			return w.reject("faith", "choose an option")
		}

	case StepReview:
		if err := w.submit(ctx); err != nil {
			w.message = "submission failed, please try again"
			return err
		}
		w.state.IsSubmitted = true
	}

	w.state.StepIndex++
	w.message = ""
	return nil
}

// Back returns to the previous step. It is unguarded and clears any pending
// validation message.
func (w *Wizard) Back() error {
	if w.Step() == StepSubmitted {
		return ErrFinished
	}
	if w.state.StepIndex == 0 {
		return ErrAtFirstStep
	}
	w.state.StepIndex--
	w.message = ""
	return nil
}

func (w *Wizard) submit(ctx context.Context) error {
	if w.submitter == nil {
		return fmt.Errorf("evaluation submit: %w: no submitter configured", domain.ErrSubmissionFailed)
	}
	if err := w.submitter.SubmitEvaluation(ctx, w.Payload()); err != nil {
		if errors.Is(err, domain.ErrSubmissionFailed) {
			return err
		}
		return fmt.Errorf("evaluation submit: %w: %w", domain.ErrSubmissionFailed, err)
	}
	return nil
}

func (w *Wizard) reject(field, message string) error {
	w.message = message
	return domain.NewValidationError(field, message)
}

func (w *Wizard) wrongStep() error {
	if w.Step() == StepSubmitted {
		return ErrFinished
	}
	return fmt.Errorf("%w (current step %s)", ErrWrongStep, w.Step())
}
