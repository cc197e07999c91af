package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/iho/buckpal/internal/domain"
)

// SendMoneyUseCase moves money between two accounts.
type SendMoneyUseCase struct {
	loadAccountPort        LoadAccountPort
	accountLock            AccountLock
	updateAccountStatePort UpdateAccountStatePort
	properties             MoneyTransferProperties
	clock                  Clock
	metrics                TransferMetrics
	logger                 zerolog.Logger
}

// NewSendMoneyUseCase creates a new SendMoneyUseCase. metrics may be nil.
func NewSendMoneyUseCase(
	loadAccountPort LoadAccountPort,
	accountLock AccountLock,
	updateAccountStatePort UpdateAccountStatePort,
	properties MoneyTransferProperties,
	clock Clock,
	metrics TransferMetrics,
	logger zerolog.Logger,
) *SendMoneyUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &SendMoneyUseCase{
		loadAccountPort:        loadAccountPort,
		accountLock:            accountLock,
		updateAccountStatePort: updateAccountStatePort,
		properties:             properties,
		clock:                  clock,
		metrics:                metrics,
		logger:                 logger,
	}
}

// SendMoney withdraws cmd.Money from the source account and deposits it to the
// target account.
//
// It returns (false, nil) when the source account cannot cover the amount; in
// that case nothing is persisted. Any returned error means the transfer was
// aborted.
func (uc *SendMoneyUseCase) SendMoney(ctx context.Context, cmd SendMoneyCommand) (bool, error) {
	start := time.Now()

	ok, err := uc.sendMoney(ctx, cmd)

	outcome := OutcomeSucceeded
	switch {
	case err != nil:
		outcome = OutcomeFailed
	case !ok:
		outcome = OutcomeRejected
	}
	uc.metrics.RecordTransfer(outcome, cmd.Money, time.Since(start))

	return ok, err
}

func (uc *SendMoneyUseCase) sendMoney(ctx context.Context, cmd SendMoneyCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	if err := uc.checkThreshold(cmd); err != nil {
		uc.logger.Error().Err(err).Msg("transfer above maximum threshold")
		return false, err
	}

	now := uc.clock.Now()
	baselineDate := now.Add(-ActivityWindow)

	sourceAccount, targetAccount, err := uc.loadAccounts(ctx, cmd, baselineDate)
	if err != nil {
		return false, err
	}

	sourceAccountID, ok := sourceAccount.ID()
	if !ok {
		return false, fmt.Errorf("source account: %w", domain.ErrMissingAccountID)
	}

	targetAccountID, ok := targetAccount.ID()
	if !ok {
		return false, fmt.Errorf("target account: %w", domain.ErrMissingAccountID)
	}

	// Releases must run even when the request context is already cancelled.
	releaseCtx := context.WithoutCancel(ctx)

	if err := uc.accountLock.LockAccount(ctx, sourceAccountID); err != nil {
		return false, fmt.Errorf("lock source account %d: %w", sourceAccountID, err)
	}

	withdrawn, err := sourceAccount.Withdraw(cmd.Money, targetAccountID, now)
	if err != nil || !withdrawn {
		uc.accountLock.ReleaseAccount(releaseCtx, sourceAccountID)
		if err != nil {
			return false, fmt.Errorf("withdraw from account %d: %w", sourceAccountID, err)
		}

		uc.logger.Info().
			Int64("source_account_id", int64(sourceAccountID)).
			Int64("target_account_id", int64(targetAccountID)).
			Str("amount", cmd.Money.String()).
			Msg("withdrawal rejected: insufficient balance")

		return false, nil
	}

	if err := uc.accountLock.LockAccount(ctx, targetAccountID); err != nil {
		uc.accountLock.ReleaseAccount(releaseCtx, sourceAccountID)
		return false, fmt.Errorf("lock target account %d: %w", targetAccountID, err)
	}

	releaseBoth := func() {
		uc.accountLock.ReleaseAccount(releaseCtx, sourceAccountID)
		uc.accountLock.ReleaseAccount(releaseCtx, targetAccountID)
	}

	deposited, err := targetAccount.Deposit(cmd.Money, sourceAccountID, now)
	if err != nil || !deposited {
		releaseBoth()
		if err != nil {
			return false, fmt.Errorf("deposit to account %d: %w", targetAccountID, err)
		}

		uc.logger.Info().
			Int64("target_account_id", int64(targetAccountID)).
			Msg("deposit rejected")

		return false, nil
	}

	if err := uc.updateAccountStatePort.UpdateActivities(ctx, sourceAccount); err != nil {
		releaseBoth()
		return false, fmt.Errorf("update source account %d: %w", sourceAccountID, err)
	}

	if err := uc.updateAccountStatePort.UpdateActivities(ctx, targetAccount); err != nil {
		releaseBoth()
		uc.logger.Error().
			Err(err).
			Int64("source_account_id", int64(sourceAccountID)).
			Int64("target_account_id", int64(targetAccountID)).
			Msg("source account updated but target account update failed")

		return false, fmt.Errorf("update target account %d: %w", targetAccountID, err)
	}

	releaseBoth()

	return true, nil
}

func (uc *SendMoneyUseCase) checkThreshold(cmd SendMoneyCommand) error {
	threshold := uc.properties.MaximumTransferThreshold
	if cmd.Money.IsGreaterThan(threshold) {
		return fmt.Errorf("%w: tried to transfer %s but threshold is %s", domain.ErrThresholdExceeded, cmd.Money, threshold)
	}

	return nil
}

// loadAccounts loads both accounts concurrently.
func (uc *SendMoneyUseCase) loadAccounts(
	ctx context.Context,
	cmd SendMoneyCommand,
	baselineDate time.Time,
) (*domain.Account, *domain.Account, error) {
	var sourceAccount, targetAccount *domain.Account

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		account, err := uc.loadAccountPort.LoadAccount(gctx, cmd.SourceAccountID, baselineDate)
		if err != nil {
			return fmt.Errorf("load source account %d: %w", cmd.SourceAccountID, err)
		}
		sourceAccount = account
		return nil
	})

	g.Go(func() error {
		account, err := uc.loadAccountPort.LoadAccount(gctx, cmd.TargetAccountID, baselineDate)
		if err != nil {
			return fmt.Errorf("load target account %d: %w", cmd.TargetAccountID, err)
		}
		targetAccount = account
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return sourceAccount, targetAccount, nil
}

type nopMetrics struct{}

func (nopMetrics) RecordTransfer(string, domain.Money, time.Duration) {}
