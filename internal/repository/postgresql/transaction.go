package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sitepulse/erp-backend-go/internal/pkg/database"
)

type querierKey struct{}

// ContextWithQuerier pins all repository calls made with the returned
// context to the given querier (a transaction, or a mock in tests).
func ContextWithQuerier(ctx context.Context, q database.Querier) context.Context {
	return context.WithValue(ctx, querierKey{}, q)
}

// WithTransaction executes fn inside a database transaction
func WithTransaction(ctx context.Context, db *database.DB, fn func(txCtx context.Context) error) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
				fmt.Printf("rollback error during panic recovery: %v\n", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(ContextWithQuerier(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetQuerier returns either the context-pinned querier or the pool.
// Used in repositories to support both transactional and
// non-transactional operations.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if q, ok := ctx.Value(querierKey{}).(database.Querier); ok {
		return q
	}
	return db.Pool
}
