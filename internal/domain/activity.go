package domain

import (
	"fmt"
	"time"
)

// ActivityID identifies a persisted activity. Zero means not yet persisted.
type ActivityID int64

// Activity is a single money movement from a source account to a target account,
// recorded on the books of its owner account.
type Activity struct {
	ID              ActivityID
	OwnerAccountID  AccountID
	SourceAccountID AccountID
	TargetAccountID AccountID
	Timestamp       time.Time
	Money           Money
}

// NewActivity creates an activity that has not been persisted yet.
func NewActivity(owner, source, target AccountID, timestamp time.Time, money Money) Activity {
	return Activity{
		OwnerAccountID:  owner,
		SourceAccountID: source,
		TargetAccountID: target,
		Timestamp:       timestamp,
		Money:           money,
	}
}

// IsPersisted reports whether the activity has been assigned an id by storage.
func (a Activity) IsPersisted() bool {
	return a.ID != 0
}

// ActivityWindow is a window of account activities.
type ActivityWindow struct {
	activities []Activity
}

// NewActivityWindow creates a window holding activities in the given order.
func NewActivityWindow(activities ...Activity) *ActivityWindow {
	w := &ActivityWindow{activities: make([]Activity, 0, len(activities)+2)}
	w.activities = append(w.activities, activities...)

	return w
}

// StartTimestamp returns the timestamp of the first activity within the window.
func (w *ActivityWindow) StartTimestamp() (time.Time, error) {
	if len(w.activities) == 0 {
		return time.Time{}, ErrEmptyActivityWindow
	}

	start := w.activities[0].Timestamp
	for _, a := range w.activities[1:] {
		if a.Timestamp.Before(start) {
			start = a.Timestamp
		}
	}

	return start, nil
}

// EndTimestamp returns the timestamp of the last activity within the window.
func (w *ActivityWindow) EndTimestamp() (time.Time, error) {
	if len(w.activities) == 0 {
		return time.Time{}, ErrEmptyActivityWindow
	}

	end := w.activities[0].Timestamp
	for _, a := range w.activities[1:] {
		if a.Timestamp.After(end) {
			end = a.Timestamp
		}
	}

	return end, nil
}

// CalculateBalance sums the deposits to accountID and subtracts the withdrawals
// from it, over the activities in this window only.
func (w *ActivityWindow) CalculateBalance(accountID AccountID) Money {
	deposits := Zero
	withdrawals := Zero

	for _, a := range w.activities {
		if a.TargetAccountID == accountID {
			deposits = deposits.Plus(a.Money)
		}
		if a.SourceAccountID == accountID {
			withdrawals = withdrawals.Plus(a.Money)
		}
	}

	return Add(deposits, withdrawals.Negate())
}

// AddActivity appends an activity to the window.
func (w *ActivityWindow) AddActivity(activity Activity) {
	w.activities = append(w.activities, activity)
}

// Activities returns a copy of the activities in insertion order.
func (w *ActivityWindow) Activities() []Activity {
	out := make([]Activity, len(w.activities))
	copy(out, w.activities)

	return out
}

// Len returns the number of activities in the window.
func (w *ActivityWindow) Len() int {
	return len(w.activities)
}

// NewActivities returns the activities that have not been persisted, in insertion order.
func (w *ActivityWindow) NewActivities() []Activity {
	var out []Activity
	for _, a := range w.activities {
		if !a.IsPersisted() {
			out = append(out, a)
		}
	}

	return out
}

// MarkPersisted assigns ids to the unpersisted activities, in the order
// NewActivities returned them.
func (w *ActivityWindow) MarkPersisted(ids []ActivityID) error {
	pending := 0
	for _, a := range w.activities {
		if !a.IsPersisted() {
			pending++
		}
	}

	if pending != len(ids) {
		return fmt.Errorf("%w: %d new activities, %d ids", ErrActivityIDMismatch, pending, len(ids))
	}

	next := 0
	for i := range w.activities {
		if w.activities[i].IsPersisted() {
			continue
		}
		w.activities[i].ID = ids[next]
		next++
	}

	return nil
}
