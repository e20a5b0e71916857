// Package token implements the RefreshToken repository using PostgreSQL.
package token

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

const table = "refresh_tokens"

var columns = []string{"id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at"}

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, token *domain.RefreshToken) error {
	id := token.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "user_id", "token_hash", "expires_at").
		Values(id, token.UserID, token.TokenHash, token.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create token query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "refresh_token", token.UserID)
	}
	return nil
}

// GetByHash returns a refresh token by its hash, revoked or not, so callers
// can tell replay of a rotated token from an unknown one.
// Returns domain.ErrNotFound if no such token exists.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get token query: %w", err)
	}

	t, err := scanToken(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", "by-hash")
	}
	return t, nil
}

// RevokeByID revokes a specific refresh token by setting revoked_at.
// Idempotent: revoking an already-revoked token is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	return r.revoke(ctx, sq.Eq{"id": id}, id)
}

// RevokeAllByUser revokes all active refresh tokens for the given user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	return r.revoke(ctx, sq.Eq{"user_id": userID}, userID)
}

func (r *Repo) revoke(ctx context.Context, where sq.Eq, key uuid.UUID) error {
	query, args, err := postgres.Builder.
		Update(table).
		Set("revoked_at", sq.Expr("now()")).
		Where(where).
		Where(sq.Eq{"revoked_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke token query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "refresh_token", key)
	}
	return nil
}

// DeleteExpired removes all expired or revoked tokens from the database.
// Returns the count of deleted tokens.
// May delete many records; does not use a transaction.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(sq.Or{
			sq.Expr("expires_at < now()"),
			sq.NotEq{"revoked_at": nil},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete expired query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", "expired")
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanToken(row pgx.Row) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	if err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt); err != nil {
		return nil, err
	}
	t.ExpiresAt = t.ExpiresAt.UTC()
	t.CreatedAt = t.CreatedAt.UTC()
	return &t, nil
}
