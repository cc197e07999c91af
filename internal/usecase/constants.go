package usecase

import "time"

const (
	// ActivityWindow is how far back the activities of a loaded account reach.
	// Older activities are folded into the baseline balance.
	ActivityWindow = 10 * 24 * time.Hour

	// DefaultMaximumTransferThreshold applies when no threshold is configured.
	DefaultMaximumTransferThreshold = 1_000_000

	// DefaultTransactionTimeout is the maximum duration for a database transaction
	DefaultTransactionTimeout = 10 * time.Second
)

// Transfer outcomes reported to TransferMetrics.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)
