package lock

import (
	"context"

	"github.com/iho/buckpal/internal/domain"
)

// NoOp never blocks. It gives no mutual exclusion and is meant for tests and
// single-request tooling.
type NoOp struct{}

// NewNoOp creates a NoOp lock.
func NewNoOp() NoOp {
	return NoOp{}
}

// LockAccount always succeeds immediately.
func (NoOp) LockAccount(context.Context, domain.AccountID) error {
	return nil
}

// ReleaseAccount does nothing.
func (NoOp) ReleaseAccount(context.Context, domain.AccountID) {}
