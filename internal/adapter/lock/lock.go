// Package lock provides usecase.AccountLock implementations.
package lock

import (
	"errors"
	"fmt"
)

// ErrAccountLocked is returned when a lock could not be acquired before giving up.
var ErrAccountLocked = errors.New("account is locked")

// Kind names an AccountLock implementation.
type Kind string

const (
	KindMemory Kind = "memory"
	KindRedis  Kind = "redis"
	KindNoOp   Kind = "noop"
)

// ParseKind validates a lock kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindMemory, KindRedis, KindNoOp:
		return k, nil
	default:
		return "", fmt.Errorf("unknown account lock %q", s)
	}
}
