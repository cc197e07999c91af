package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/buckpal/internal/domain"
)

// InProcess serializes access to each account within a single process.
// Waiting for a lock honours context cancellation and gives up after maxWait,
// so two transfers locking the same pair of accounts in opposite order cannot
// block each other forever.
type InProcess struct {
	mu      sync.Mutex
	locks   map[domain.AccountID]*accountSlot
	maxWait time.Duration
	logger  zerolog.Logger
}

// accountSlot is a one-token semaphore shared by every caller interested in an
// account. refs counts holders plus waiters so idle slots can be dropped.
type accountSlot struct {
	sem  chan struct{}
	refs int
}

// NewInProcess creates an InProcess lock. A positive maxWait bounds how long
// LockAccount waits before failing with ErrAccountLocked.
func NewInProcess(maxWait time.Duration, logger zerolog.Logger) *InProcess {
	return newInProcess(maxWait, logger.With().Str("component", "account_lock").Str("kind", string(KindMemory)).Logger())
}

func newInProcess(maxWait time.Duration, logger zerolog.Logger) *InProcess {
	return &InProcess{
		locks:   make(map[domain.AccountID]*accountSlot),
		maxWait: maxWait,
		logger:  logger,
	}
}

// LockAccount blocks until the account is free, ctx is done or maxWait passes.
func (l *InProcess) LockAccount(ctx context.Context, accountID domain.AccountID) error {
	l.mu.Lock()
	slot, ok := l.locks[accountID]
	if !ok {
		slot = &accountSlot{sem: make(chan struct{}, 1)}
		l.locks[accountID] = slot
	}
	slot.refs++
	l.mu.Unlock()

	var timeout <-chan time.Time
	if l.maxWait > 0 {
		timer := time.NewTimer(l.maxWait)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case slot.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		l.abandon(accountID, slot)
		return fmt.Errorf("lock account %d: %w", accountID, ctx.Err())
	case <-timeout:
		l.abandon(accountID, slot)
		l.logger.Warn().Int64("account_id", int64(accountID)).Dur("max_wait", l.maxWait).Msg("gave up waiting for account lock")
		return fmt.Errorf("lock account %d after %s: %w", accountID, l.maxWait, ErrAccountLocked)
	}
}

func (l *InProcess) abandon(accountID domain.AccountID, slot *accountSlot) {
	l.mu.Lock()
	l.unref(accountID, slot)
	l.mu.Unlock()
}

// ReleaseAccount frees the account for the next waiter.
func (l *InProcess) ReleaseAccount(_ context.Context, accountID domain.AccountID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.locks[accountID]
	if !ok {
		l.logger.Warn().Int64("account_id", int64(accountID)).Msg("release of an account that is not locked")
		return
	}

	select {
	case <-slot.sem:
		l.unref(accountID, slot)
	default:
		l.logger.Warn().Int64("account_id", int64(accountID)).Msg("release of an account that is not locked")
	}
}

// unref must be called with l.mu held.
func (l *InProcess) unref(accountID domain.AccountID, slot *accountSlot) {
	slot.refs--
	if slot.refs == 0 {
		delete(l.locks, accountID)
	}
}
