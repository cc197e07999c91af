// Package domaintest provides builders for domain objects used across tests.
package domaintest

import (
	"time"

	"github.com/iho/buckpal/internal/domain"
)

// AccountBuilder builds accounts with sensible defaults.
type AccountBuilder struct {
	id              domain.AccountID
	withoutID       bool
	baselineBalance domain.Money
	window          *domain.ActivityWindow
}

// DefaultAccount returns a builder for account 42 with a baseline of 999 and no activities.
func DefaultAccount() *AccountBuilder {
	return &AccountBuilder{
		id:              42,
		baselineBalance: domain.Of(999),
		window:          domain.NewActivityWindow(),
	}
}

func (b *AccountBuilder) WithID(id domain.AccountID) *AccountBuilder {
	b.id = id
	b.withoutID = false
	return b
}

func (b *AccountBuilder) WithoutID() *AccountBuilder {
	b.withoutID = true
	return b
}

func (b *AccountBuilder) WithBaselineBalance(balance domain.Money) *AccountBuilder {
	b.baselineBalance = balance
	return b
}

func (b *AccountBuilder) WithActivityWindow(window *domain.ActivityWindow) *AccountBuilder {
	b.window = window
	return b
}

func (b *AccountBuilder) Build() *domain.Account {
	if b.withoutID {
		return domain.NewAccountWithoutID(b.baselineBalance, b.window)
	}
	return domain.NewAccountWithID(b.id, b.baselineBalance, b.window)
}

// ActivityBuilder builds activities with sensible defaults.
type ActivityBuilder struct {
	activity domain.Activity
}

// DefaultActivity returns a builder for an unpersisted transfer of 999 from account 42 to 41.
func DefaultActivity() *ActivityBuilder {
	return &ActivityBuilder{
		activity: domain.NewActivity(42, 42, 41, time.Now().UTC(), domain.Of(999)),
	}
}

func (b *ActivityBuilder) WithID(id domain.ActivityID) *ActivityBuilder {
	b.activity.ID = id
	return b
}

func (b *ActivityBuilder) WithOwnerAccount(id domain.AccountID) *ActivityBuilder {
	b.activity.OwnerAccountID = id
	return b
}

func (b *ActivityBuilder) WithSourceAccount(id domain.AccountID) *ActivityBuilder {
	b.activity.SourceAccountID = id
	return b
}

func (b *ActivityBuilder) WithTargetAccount(id domain.AccountID) *ActivityBuilder {
	b.activity.TargetAccountID = id
	return b
}

func (b *ActivityBuilder) WithTimestamp(ts time.Time) *ActivityBuilder {
	b.activity.Timestamp = ts
	return b
}

func (b *ActivityBuilder) WithMoney(money domain.Money) *ActivityBuilder {
	b.activity.Money = money
	return b
}

func (b *ActivityBuilder) Build() domain.Activity {
	return b.activity
}
