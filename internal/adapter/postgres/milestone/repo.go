// Package milestone implements the milestone ledger using PostgreSQL.
// Uniqueness of (user_id, threshold_days) is enforced by a table constraint;
// InsertIfAbsent relies on it through ON CONFLICT DO NOTHING.
package milestone

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/growth-journal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/growth-journal-backend/internal/domain"
)

const table = "milestones"

var columns = []string{"id", "user_id", "threshold_days", "label", "unlocked_at"}

// Repo provides milestone persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new milestone repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// FindByOwnerAndThreshold returns the unlocked milestone for (userID, thresholdDays).
// Returns domain.ErrNotFound if it has not been unlocked.
func (r *Repo) FindByOwnerAndThreshold(ctx context.Context, userID uuid.UUID, thresholdDays int) (*domain.Milestone, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where("user_id = ? AND threshold_days = ?", userID, thresholdDays).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find milestone query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	m, err := scanMilestone(row)
	if err != nil {
		return nil, postgres.MapError(err, "milestone", ledgerKey(userID, thresholdDays))
	}

	return m, nil
}

// ListByUser returns all milestones a user unlocked, lowest threshold first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Milestone, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where("user_id = ?", userID).
		OrderBy("threshold_days ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list milestones query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	defer rows.Close()

	milestones := []*domain.Milestone{}
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, fmt.Errorf("scan milestone: %w", err)
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate milestones: %w", err)
	}

	return milestones, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// InsertIfAbsent atomically records m unless a row for
// (m.UserID, m.ThresholdDays) already exists. It reports true only when this
// call created the row; concurrent callers for the same key see exactly one
// true between them.
func (r *Repo) InsertIfAbsent(ctx context.Context, m *domain.Milestone) (bool, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(m.ID, m.UserID, m.ThresholdDays, m.Label, m.UnlockedAt).
		Suffix("ON CONFLICT (user_id, threshold_days) DO NOTHING RETURNING id").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build insert milestone query: %w", err)
	}

	var id uuid.UUID
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		// Conflict: someone already holds this (user, threshold).
		return false, nil
	}
	if err != nil {
		return false, postgres.MapError(err, "milestone", ledgerKey(m.UserID, m.ThresholdDays))
	}

	return true, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanMilestone(row pgx.Row) (*domain.Milestone, error) {
	var (
		m          domain.Milestone
		unlockedAt time.Time
	)
	if err := row.Scan(&m.ID, &m.UserID, &m.ThresholdDays, &m.Label, &unlockedAt); err != nil {
		return nil, err
	}
	m.UnlockedAt = unlockedAt.UTC()
	return &m, nil
}

func ledgerKey(userID uuid.UUID, thresholdDays int) string {
	return fmt.Sprintf("%s/%d", userID, thresholdDays)
}
