package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sitepulse/erp-backend-go/internal/domain/auth"
	"github.com/sitepulse/erp-backend-go/internal/pkg/database"
)

// RefreshTokenRepository persists issued refresh tokens so they can be
// revoked on logout and checked on refresh.
type RefreshTokenRepository interface {
	Store(ctx context.Context, userID string, token string, expiresAt int64) error
	GetUserID(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

type refreshTokenRepository struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (r *refreshTokenRepository) Store(ctx context.Context, userID string, token string, expiresAt int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO refresh_tokens (token, user_id, expires_at) VALUES ($1, $2, $3)`,
		token, userID, time.Unix(expiresAt, 0),
	)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	return nil
}

func (r *refreshTokenRepository) GetUserID(ctx context.Context, token string) (string, error) {
	q := GetQuerier(ctx, r.db)

	var userID string
	err := q.QueryRow(ctx,
		`SELECT user_id FROM refresh_tokens WHERE token = $1 AND revoked_at IS NULL AND expires_at > NOW()`,
		token,
	).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", auth.ErrRefreshTokenRevoked
		}
		return "", fmt.Errorf("failed to look up refresh token: %w", err)
	}

	return userID, nil
}

func (r *refreshTokenRepository) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE refresh_tokens SET revoked_at = NOW() WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}
