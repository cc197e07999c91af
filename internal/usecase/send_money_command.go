package usecase

import (
	"github.com/iho/buckpal/internal/domain"
)

// SendMoneyCommand asks to move money from one account to another.
type SendMoneyCommand struct {
	SourceAccountID domain.AccountID
	TargetAccountID domain.AccountID
	Money           domain.Money
}

// NewSendMoneyCommand creates a validated SendMoneyCommand.
func NewSendMoneyCommand(source, target domain.AccountID, money domain.Money) (SendMoneyCommand, error) {
	cmd := SendMoneyCommand{
		SourceAccountID: source,
		TargetAccountID: target,
		Money:           money,
	}

	if err := cmd.Validate(); err != nil {
		return SendMoneyCommand{}, err
	}

	return cmd, nil
}

// Validate checks that the amount is positive and the accounts differ.
func (c SendMoneyCommand) Validate() error {
	if c.SourceAccountID == c.TargetAccountID {
		return domain.ErrSameAccount
	}

	if !c.Money.IsPositive() {
		return domain.ErrInvalidAmount
	}

	return nil
}

// MoneyTransferProperties holds the tunables of money transfers.
type MoneyTransferProperties struct {
	MaximumTransferThreshold domain.Money
}

// NewMoneyTransferProperties returns properties with the given threshold, or
// DefaultMaximumTransferThreshold when threshold is nil.
func NewMoneyTransferProperties(threshold *domain.Money) MoneyTransferProperties {
	if threshold == nil {
		return MoneyTransferProperties{
			MaximumTransferThreshold: domain.Of(DefaultMaximumTransferThreshold),
		}
	}

	return MoneyTransferProperties{MaximumTransferThreshold: *threshold}
}
