// Package evaluation implements self-evaluation persistence using PostgreSQL.
// Questions are stored alongside the answers so a submission stays readable
// after the configured form changes.
package evaluation

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/growth-journal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/growth-journal-backend/internal/domain"
)

const table = "evaluations"

var columns = []string{"id", "user_id", "questions", "answers", "traits", "faith", "submitted_at"}

// Repo provides evaluation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new evaluation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create stores a submission and returns it as stored.
func (r *Repo) Create(ctx context.Context, e *domain.Evaluation) (*domain.Evaluation, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(e.ID, e.UserID, e.Questions, e.Answers, e.Traits, e.Faith, e.SubmittedAt).
		Suffix("RETURNING id, user_id, questions, answers, traits, faith, submitted_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert evaluation query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	created, err := scanEvaluation(row)
	if err != nil {
		return nil, postgres.MapError(err, "evaluation", e.ID)
	}

	return created, nil
}

// ListByUser returns a page of the user's submissions, newest first, and the
// total number of submissions.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Evaluation, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countQuery, countArgs, err := postgres.Builder.
		Select("count(*)").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count evaluations query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count evaluations: %w", err)
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("submitted_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list evaluations query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list evaluations: %w", err)
	}
	defer rows.Close()

	out := []*domain.Evaluation{}
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan evaluation: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate evaluations: %w", err)
	}

	return out, total, nil
}

// GetLatest returns the user's newest submission or domain.ErrNotFound.
func (r *Repo) GetLatest(ctx context.Context, userID uuid.UUID) (*domain.Evaluation, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("submitted_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest evaluation query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	e, err := scanEvaluation(row)
	if err != nil {
		return nil, postgres.MapError(err, "latest evaluation of user", userID)
	}

	return e, nil
}

func scanEvaluation(row pgx.Row) (*domain.Evaluation, error) {
	var e domain.Evaluation
	if err := row.Scan(&e.ID, &e.UserID, &e.Questions, &e.Answers, &e.Traits, &e.Faith, &e.SubmittedAt); err != nil {
		return nil, err
	}
	e.SubmittedAt = e.SubmittedAt.UTC()
	return &e, nil
}
