package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
	"github.com/heartmarshall/growth-journal-backend/internal/service/evaluation"
)

type evaluationService interface {
	Form() evaluation.Form
	Submit(ctx context.Context, input evaluation.SubmitInput) (*domain.Evaluation, error)
	List(ctx context.Context, input evaluation.ListInput) ([]*domain.Evaluation, int, error)
	Latest(ctx context.Context) (*domain.Evaluation, error)
}

// EvaluationHandler serves the self-evaluation form and its submissions.
type EvaluationHandler struct {
	svc evaluationService
	log *slog.Logger
}

// NewEvaluationHandler creates an EvaluationHandler.
func NewEvaluationHandler(svc evaluationService, logger *slog.Logger) *EvaluationHandler {
	return &EvaluationHandler{svc: svc, log: logger.With("handler", "evaluation")}
}

type formResponse struct {
	Questions    []string `json:"questions"`
	Traits       []string `json:"traits"`
	FaithOptions []string `json:"faithOptions"`
}

type submitEvaluationRequest struct {
	Answers []string `json:"answers"`
	Traits  []string `json:"traits"`
	Faith   string   `json:"faith"`
}

type evaluationResponse struct {
	ID          string    `json:"id"`
	Questions   []string  `json:"questions"`
	Answers     []string  `json:"answers"`
	Traits      []string  `json:"traits"`
	Faith       string    `json:"faith"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type evaluationListResponse struct {
	Evaluations []evaluationResponse `json:"evaluations"`
	Total       int                  `json:"total"`
}

// Form handles GET /evaluations/form.
func (h *EvaluationHandler) Form(w http.ResponseWriter, r *http.Request) {
	f := h.svc.Form()
	writeJSON(w, http.StatusOK, formResponse{
		Questions:    f.Questions,
		Traits:       f.Traits,
		FaithOptions: f.FaithOptions,
	})
}

// Submit handles POST /evaluations.
func (h *EvaluationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitEvaluationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	e, err := h.svc.Submit(r.Context(), evaluation.SubmitInput{
		Answers: req.Answers,
		Traits:  req.Traits,
		Faith:   req.Faith,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEvaluationResponse(e))
}

// List handles GET /evaluations?limit=&offset=.
func (h *EvaluationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, total, err := h.svc.List(r.Context(), evaluation.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := evaluationListResponse{Evaluations: make([]evaluationResponse, len(items)), Total: total}
	for i, e := range items {
		resp.Evaluations[i] = toEvaluationResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Latest handles GET /evaluations/latest.
func (h *EvaluationHandler) Latest(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.Latest(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEvaluationResponse(e))
}

func toEvaluationResponse(e *domain.Evaluation) evaluationResponse {
	return evaluationResponse{
		ID:          e.ID.String(),
		Questions:   e.Questions,
		Answers:     e.Answers,
		Traits:      e.Traits,
		Faith:       e.Faith,
		SubmittedAt: e.SubmittedAt,
	}
}
