package shared

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"venue-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type TxFunc[T any] func(tx DBTX) (T, error)

// RetryPolicy bounds how often a transaction is replayed after a
// serialization failure or a deadlock. Attempt n waits n*Backoff.
type RetryPolicy struct {
	Retries int
	Backoff time.Duration
}

var DefaultRetry = RetryPolicy{Retries: 3, Backoff: 100 * time.Millisecond}

// InTx runs fn in one transaction and commits when fn succeeds.
func InTx[T any](ctx context.Context, db TxBeginner, fn TxFunc[T]) (T, error) {
	var zero T

	tx, err := db.Begin(ctx)
	if err != nil {
		return zero, errs.Mark(err, ErrTransactionBegin)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", slog.String("error", err.Error()))
		}
	}()

	out, err := fn(tx)
	if err != nil {
		return zero, err
	}
	if err := tx.Commit(ctx); err != nil {
		return zero, errs.Mark(err, ErrTransactionCommit)
	}
	return out, nil
}

func InTxWithRetry[T any](ctx context.Context, db TxBeginner, policy RetryPolicy, fn TxFunc[T]) (T, error) {
	var zero T

	for attempt := 1; ; attempt++ {
		out, err := InTx(ctx, db, fn)
		switch {
		case err == nil:
			return out, nil
		case !retryable(err):
			return zero, err
		case attempt > policy.Retries:
			return zero, errs.Mark(err, ErrMaxRetriesExceeded)
		}

		wait := time.Duration(attempt) * policy.Backoff
		slog.Warn("retrying transaction", slog.Int("attempt", attempt), slog.Duration("wait", wait), slog.String("error", err.Error()))
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(wait):
		}
	}
}

// 40001 serialization_failure, 40P01 deadlock_detected
func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
