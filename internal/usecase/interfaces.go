package usecase

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"
	"time"

	"github.com/iho/buckpal/internal/domain"
)

// LoadAccountPort loads an account together with its activities since baselineDate.
type LoadAccountPort interface {
	// LoadAccount returns domain.ErrAccountNotFound when no such account exists.
	LoadAccount(ctx context.Context, accountID domain.AccountID, baselineDate time.Time) (*domain.Account, error)
}

// UpdateAccountStatePort persists the state of an account.
type UpdateAccountStatePort interface {
	// UpdateActivities persists every activity of the account that has no id yet.
	// Activities that already have an id are never written again.
	UpdateActivities(ctx context.Context, account *domain.Account) error
}

// AccountLock grants exclusive access to a single account.
type AccountLock interface {
	// LockAccount blocks until the account is locked or ctx is done.
	LockAccount(ctx context.Context, accountID domain.AccountID) error
	// ReleaseAccount releases a lock taken by LockAccount. Failures are logged by the implementation.
	ReleaseAccount(ctx context.Context, accountID domain.AccountID)
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// TransferMetrics records the outcome of money transfers.
type TransferMetrics interface {
	RecordTransfer(outcome string, amount domain.Money, duration time.Duration)
}

// Retrier retries an operation on transient storage errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}
