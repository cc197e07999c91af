package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type pgxPool interface {
	Begin(context.Context) (pgx.Tx, error)
}

// TxManager runs units of work inside a single database transaction.
type TxManager struct {
	pool    pgxPool
	timeout time.Duration
	logger  zerolog.Logger
}

func newTxManagerWithPool(pool pgxPool, timeout time.Duration, logger zerolog.Logger) *TxManager {
	return &TxManager{
		pool:    pool,
		timeout: timeout,
		logger:  logger,
	}
}

// WithinTx calls fn inside a transaction. The transaction commits when fn
// returns nil and is rolled back otherwise. A positive timeout bounds the
// whole unit of work.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) (err error) {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			m.logger.Warn().Err(rbErr).Msg("rollback failed")
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
