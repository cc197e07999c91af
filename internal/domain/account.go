package domain

import (
	"time"
)

// AccountID identifies an account.
type AccountID int64

// Account holds a certain amount of money. An Account only contains a window of
// its latest activities; the total balance is the baseline balance that was valid
// before the first activity in the window plus the sum of the activity values.
type Account struct {
	id              AccountID
	hasID           bool
	baselineBalance Money
	activityWindow  *ActivityWindow
}

// NewAccountWithID creates an account that has already been persisted.
func NewAccountWithID(id AccountID, baselineBalance Money, window *ActivityWindow) *Account {
	a := NewAccountWithoutID(baselineBalance, window)
	a.id = id
	a.hasID = true

	return a
}

// NewAccountWithoutID creates an account that has not been persisted yet.
func NewAccountWithoutID(baselineBalance Money, window *ActivityWindow) *Account {
	if window == nil {
		window = NewActivityWindow()
	}

	return &Account{
		baselineBalance: baselineBalance,
		activityWindow:  window,
	}
}

// ID returns the account id and whether it is set.
func (a *Account) ID() (AccountID, bool) {
	return a.id, a.hasID
}

// BaselineBalance returns the balance before the first activity in the window.
func (a *Account) BaselineBalance() Money {
	return a.baselineBalance
}

// ActivityWindow returns the window of latest activities on this account.
func (a *Account) ActivityWindow() *ActivityWindow {
	return a.activityWindow
}

// CalculateBalance adds the activity values in the window to the baseline balance.
func (a *Account) CalculateBalance() (Money, error) {
	if !a.hasID {
		return Money{}, ErrMissingAccountID
	}

	return Add(a.baselineBalance, a.activityWindow.CalculateBalance(a.id)), nil
}

// Withdraw tries to withdraw money from this account to targetAccountID at the
// given time. It returns false without touching the window when the balance
// would go negative.
func (a *Account) Withdraw(money Money, targetAccountID AccountID, at time.Time) (bool, error) {
	ok, err := a.mayWithdraw(money)
	if err != nil || !ok {
		return false, err
	}

	a.activityWindow.AddActivity(NewActivity(a.id, a.id, targetAccountID, at, money))

	return true, nil
}

// Deposit deposits money from sourceAccountID into this account at the given time.
func (a *Account) Deposit(money Money, sourceAccountID AccountID, at time.Time) (bool, error) {
	if !a.hasID {
		return false, ErrMissingAccountID
	}

	a.activityWindow.AddActivity(NewActivity(a.id, sourceAccountID, a.id, at, money))

	return true, nil
}

func (a *Account) mayWithdraw(money Money) (bool, error) {
	balance, err := a.CalculateBalance()
	if err != nil {
		return false, err
	}

	return Add(balance, money.Negate()).IsPositiveOrZero(), nil
}
