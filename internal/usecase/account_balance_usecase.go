package usecase

import (
	"context"

	"github.com/iho/buckpal/internal/domain"
)

// AccountBalanceUseCase answers balance queries.
type AccountBalanceUseCase struct {
	loadAccountPort LoadAccountPort
	clock           Clock
}

// NewAccountBalanceUseCase creates a new AccountBalanceUseCase.
func NewAccountBalanceUseCase(loadAccountPort LoadAccountPort, clock Clock) *AccountBalanceUseCase {
	return &AccountBalanceUseCase{
		loadAccountPort: loadAccountPort,
		clock:           clock,
	}
}

// GetAccountBalance returns the current balance of an account.
func (uc *AccountBalanceUseCase) GetAccountBalance(ctx context.Context, accountID domain.AccountID) (domain.Money, error) {
	account, err := uc.loadAccountPort.LoadAccount(ctx, accountID, uc.clock.Now())
	if err != nil {
		return domain.Money{}, err
	}

	return account.CalculateBalance()
}
