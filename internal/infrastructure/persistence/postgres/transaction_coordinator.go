package postgres

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const maxSerializationAttempts = 10

// TransactionCoordinator runs work inside database transactions.
type TransactionCoordinator struct {
	pool *pgxpool.Pool
}

func NewTransactionCoordinator(db *DB) *TransactionCoordinator {
	return &TransactionCoordinator{
		pool: db.Pool,
	}
}

// WithTransaction executes fn within a transaction at the given isolation level.
func (tc *TransactionCoordinator) WithTransaction(
	ctx context.Context,
	iso pgx.TxIsoLevel,
	fn func(ctx context.Context, tx pgx.Tx) error,
) error {
	tx, err := tc.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: iso})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// WithSerializable runs fn at SERIALIZABLE isolation, re-running it when
// PostgreSQL aborts the transaction with a serialization failure.
func (tc *TransactionCoordinator) WithSerializable(
	ctx context.Context,
	fn func(ctx context.Context, tx pgx.Tx) error,
) error {
	var err error
	for attempt := 0; attempt < maxSerializationAttempts; attempt++ {
		err = tc.WithTransaction(ctx, pgx.Serializable, fn)
		if err == nil || !IsSerializationFailure(err) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(serializationBackoff(attempt)):
		}
	}
	return fmt.Errorf("serialization retries exhausted: %w", err)
}

func serializationBackoff(attempt int) time.Duration {
	jitter := time.Duration(rand.Intn(10)) * time.Millisecond
	return time.Duration(attempt+1)*5*time.Millisecond + jitter
}
