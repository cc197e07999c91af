package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound  = errors.New("account not found")
	ErrMissingAccountID = errors.New("account has no id")

	// Activity errors
	ErrEmptyActivityWindow = errors.New("activity window is empty")
	ErrActivityIDMismatch  = errors.New("activity id count does not match new activities")

	// Transfer errors
	ErrSameAccount       = errors.New("cannot transfer to same account")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrMalformedAmount   = errors.New("amount is not a whole number")
	ErrThresholdExceeded = errors.New("maximum transfer threshold exceeded")
)
