package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/iho/buckpal/internal/domain"
	"github.com/iho/buckpal/internal/infrastructure/postgres/generated"
	"github.com/iho/buckpal/internal/usecase"
)

type dbPool interface {
	generated.DBTX
	pgxPool
}

// AccountPersistenceAdapter implements usecase.LoadAccountPort and
// usecase.UpdateAccountStatePort on top of the account and activity tables.
type AccountPersistenceAdapter struct {
	queries   *generated.Queries
	txManager *TxManager
	retrier   usecase.Retrier
	logger    zerolog.Logger
}

// NewAccountPersistenceAdapter creates a new AccountPersistenceAdapter. Activity
// flushes are retried according to policy.
func NewAccountPersistenceAdapter(pool *pgxpool.Pool, policy RetryPolicy, logger zerolog.Logger) *AccountPersistenceAdapter {
	return newAccountPersistenceAdapter(pool, NewRetrier(policy, logger), logger)
}

func newAccountPersistenceAdapter(pool dbPool, retrier usecase.Retrier, logger zerolog.Logger) *AccountPersistenceAdapter {
	return &AccountPersistenceAdapter{
		queries:   generated.New(pool),
		txManager: newTxManagerWithPool(pool, usecase.DefaultTransactionTimeout, logger),
		retrier:   retrier,
		logger:    logger.With().Str("component", "account_persistence").Logger(),
	}
}

// LoadAccount loads an account with the activities it owns since baselineDate.
// Older activities are folded into the baseline balance.
func (a *AccountPersistenceAdapter) LoadAccount(
	ctx context.Context,
	accountID domain.AccountID,
	baselineDate time.Time,
) (*domain.Account, error) {
	id := int64(accountID)
	since := timeToPgTimestamptz(baselineDate)

	a.logger.Debug().Int64("account_id", id).Time("baseline_date", baselineDate).Msg("find account")

	if _, err := a.queries.FindAccountByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account %d: %w", id, domain.ErrAccountNotFound)
		}

		return nil, fmt.Errorf("find account %d: %w", id, err)
	}

	a.logger.Debug().Int64("account_id", id).Msg("find activities since baseline")

	activities, err := a.queries.FindActivitiesByOwnerSince(ctx, generated.FindActivitiesByOwnerSinceParams{
		OwnerAccountID: id,
		Timestamp:      since,
	})
	if err != nil {
		return nil, fmt.Errorf("find activities of account %d: %w", id, err)
	}

	a.logger.Debug().Int64("account_id", id).Msg("sum withdrawals before baseline")

	withdrawalBalance, err := a.queries.GetWithdrawalBalanceUntil(ctx, generated.GetWithdrawalBalanceUntilParams{
		SourceAccountID: id,
		Timestamp:       since,
	})
	if err != nil {
		return nil, fmt.Errorf("sum withdrawals of account %d: %w", id, err)
	}

	a.logger.Debug().Int64("account_id", id).Msg("sum deposits before baseline")

	depositBalance, err := a.queries.GetDepositBalanceUntil(ctx, generated.GetDepositBalanceUntilParams{
		TargetAccountID: id,
		Timestamp:       since,
	})
	if err != nil {
		return nil, fmt.Errorf("sum deposits of account %d: %w", id, err)
	}

	return mapToAccount(id, activities, withdrawalBalance, depositBalance)
}

// UpdateActivities inserts the account's activities that have no id yet and
// assigns the generated ids. Persisted activities are never rewritten.
func (a *AccountPersistenceAdapter) UpdateActivities(ctx context.Context, account *domain.Account) error {
	pending := account.ActivityWindow().NewActivities()
	if len(pending) == 0 {
		return nil
	}

	var ids []domain.ActivityID

	err := a.retrier.Retry(ctx, func() error {
		var err error
		ids, err = a.insertActivities(ctx, pending)
		return err
	})
	if err != nil {
		return fmt.Errorf("persist activities: %w", err)
	}

	return account.ActivityWindow().MarkPersisted(ids)
}

// insertActivities writes all pending activities of one account in a single transaction.
func (a *AccountPersistenceAdapter) insertActivities(ctx context.Context, pending []domain.Activity) ([]domain.ActivityID, error) {
	ids := make([]domain.ActivityID, 0, len(pending))

	err := a.txManager.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		queries := a.queries.WithTx(tx)

		for _, activity := range pending {
			a.logger.Debug().
				Int64("owner_account_id", int64(activity.OwnerAccountID)).
				Int64("source_account_id", int64(activity.SourceAccountID)).
				Int64("target_account_id", int64(activity.TargetAccountID)).
				Str("amount", activity.Money.String()).
				Msg("insert activity")

			id, err := queries.InsertActivity(ctx, mapToInsertActivityParams(activity))
			if err != nil {
				return fmt.Errorf("insert activity: %w", err)
			}

			ids = append(ids, domain.ActivityID(id))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}
