// Package journal implements journal entry persistence using PostgreSQL.
// It is also the activity store the progress service reads streak input from.
package journal

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/growth-journal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/growth-journal-backend/internal/domain"
)

const table = "journal_entries"

var columns = []string{
	"id", "user_id", "title", "body", "mood", "summary",
	"occurred_at", "created_at", "updated_at",
}

// Repo provides journal entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new journal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the entry owned by userID. An entry of another user is
// reported as domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get entry query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	entry, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "journal entry", entryID)
	}

	return entry, nil
}

// List returns a page of the user's entries, newest first, and the total
// number of entries matching the filter.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.JournalFilter) ([]*domain.JournalEntry, int, error) {
	where := applyFilter(sq.And{sq.Eq{"user_id": userID}}, filter)
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countQuery, countArgs, err := postgres.Builder.
		Select("count(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count entries query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count entries: %w", err)
	}

	b := postgres.Builder.
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("occurred_at DESC", "id DESC")
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list entries query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := []*domain.JournalEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate entries: %w", err)
	}

	return entries, total, nil
}

// ListActivityDates returns occurred_at of every entry of userID at or after
// since, oldest first. A zero since returns the full history.
func (r *Repo) ListActivityDates(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	b := postgres.Builder.
		Select("occurred_at").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("occurred_at ASC")
	if !since.IsZero() {
		b = b.Where(sq.GtOrEq{"occurred_at": since})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build activity query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	dates, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, fmt.Errorf("collect activity: %w", err)
	}

	return dates, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new entry and returns it as stored.
func (r *Repo) Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "user_id", "title", "body", "mood", "summary", "occurred_at").
		Values(entry.ID, entry.UserID, entry.Title, entry.Body, moodParam(entry.Mood), entry.Summary, entry.OccurredAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert entry query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	created, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "journal entry", entry.ID)
	}

	return created, nil
}

// UpdateSummary stores a generated summary on the user's entry.
func (r *Repo) UpdateSummary(ctx context.Context, userID, entryID uuid.UUID, summary string) (*domain.JournalEntry, error) {
	query, args, err := postgres.Builder.
		Update(table).
		Set("summary", summary).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update summary query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	entry, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "journal entry", entryID)
	}

	return entry, nil
}

// Delete removes the user's entry. Returns domain.ErrNotFound if no such
// entry exists for that user.
func (r *Repo) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete entry query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "journal entry", entryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("journal entry %s: %w", entryID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func applyFilter(where sq.And, f domain.JournalFilter) sq.And {
	if f.Mood != nil {
		where = append(where, sq.Eq{"mood": int16(*f.Mood)})
	}
	if f.From != nil {
		where = append(where, sq.GtOrEq{"occurred_at": *f.From})
	}
	if f.To != nil {
		where = append(where, sq.Lt{"occurred_at": *f.To})
	}
	return where
}

func moodParam(m *domain.Mood) *int16 {
	if m == nil {
		return nil
	}
	v := int16(*m)
	return &v
}

func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var (
		e    domain.JournalEntry
		mood *int16
	)
	err := row.Scan(
		&e.ID, &e.UserID, &e.Title, &e.Body, &mood, &e.Summary,
		&e.OccurredAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if mood != nil {
		m := domain.Mood(*mood)
		e.Mood = &m
	}
	e.OccurredAt = e.OccurredAt.UTC()
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	return &e, nil
}
