// Package user implements the User and UserSettings repositories using PostgreSQL.
package user

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

const (
	usersTable    = "users"
	settingsTable = "user_settings"
)

var (
	userColumns     = []string{"id", "email", "name", "password_hash", "created_at", "updated_at"}
	settingsColumns = []string{"user_id", "timezone", "updated_at"}
)

// Repo provides user and user-settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByEmail returns a user by email address, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, sq.Expr("lower(email) = ?", strings.ToLower(email)), email)
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, key any) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// A taken email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(u.ID, u.Email, u.Name, u.PasswordHash, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create user query: %w", err)
	}

	created, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return created, nil
}

// UpdateName renames a user and bumps updated_at.
func (r *Repo) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Update(usersTable).
		Set("name", name).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// ---------------------------------------------------------------------------
// Settings operations
// ---------------------------------------------------------------------------

// GetSettings returns the settings row of a user.
// Returns domain.ErrNotFound if none was ever written.
func (r *Repo) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	query, args, err := postgres.Builder.
		Select(settingsColumns...).
		From(settingsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get settings query: %w", err)
	}

	s, err := scanSettings(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user_settings", userID)
	}
	return s, nil
}

// UpsertSettings writes the full settings row of s.UserID.
func (r *Repo) UpsertSettings(ctx context.Context, s domain.UserSettings) (*domain.UserSettings, error) {
	query, args, err := postgres.Builder.
		Insert(settingsTable).
		Columns(settingsColumns...).
		Values(s.UserID, s.Timezone, sq.Expr("now()")).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET timezone = EXCLUDED.timezone, updated_at = EXCLUDED.updated_at").
		Suffix("RETURNING " + strings.Join(settingsColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert settings query: %w", err)
	}

	saved, err := scanSettings(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user_settings", s.UserID)
	}
	return saved, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u                    domain.User
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	u.CreatedAt = createdAt.UTC()
	u.UpdatedAt = updatedAt.UTC()
	return &u, nil
}

func scanSettings(row pgx.Row) (*domain.UserSettings, error) {
	var (
		s         domain.UserSettings
		updatedAt time.Time
	)
	if err := row.Scan(&s.UserID, &s.Timezone, &updatedAt); err != nil {
		return nil, err
	}
	s.UpdatedAt = updatedAt.UTC()
	return &s, nil
}
