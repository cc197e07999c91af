package dto

import (
	"github.com/iho/buckpal/internal/domain"
)

// BalanceResponse represents an account balance in API responses.
// Balance is a decimal integer string so amounts beyond 64 bits survive JSON.
type BalanceResponse struct {
	AccountID int64        `json:"account_id"`
	Balance   domain.Money `json:"balance"`
}

// BalanceFromDomain converts an account id and balance to a response.
func BalanceFromDomain(accountID domain.AccountID, balance domain.Money) *BalanceResponse {
	return &BalanceResponse{
		AccountID: int64(accountID),
		Balance:   balance,
	}
}

// HealthResponse represents a health or readiness probe result.
type HealthResponse struct {
	Status   string `json:"status"`
	Postgres string `json:"postgres,omitempty"`
	Redis    string `json:"redis,omitempty"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
