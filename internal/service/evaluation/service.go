package evaluation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type evaluationRepo interface {
	Create(ctx context.Context, e *domain.Evaluation) (*domain.Evaluation, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Evaluation, int, error)
	GetLatest(ctx context.Context, userID uuid.UUID) (*domain.Evaluation, error)
}

// Service exposes the self-evaluation form and stores completed submissions.
type Service struct {
	evaluations evaluationRepo
	form        Form
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new Evaluation service. The form must be valid.
func NewService(log *slog.Logger, evaluations evaluationRepo, form Form) (*Service, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	return &Service{
		evaluations: evaluations,
		form:        form,
		log:         log.With("service", "evaluation"),
		now:         time.Now,
	}, nil
}

// Form returns the configured evaluation form.
func (s *Service) Form() Form {
	return s.form
}
