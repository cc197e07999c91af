// Package clock provides the wall clock used by the use cases.
package clock

import "time"

// System reads the current UTC time.
type System struct{}

// New returns the system clock.
func New() System {
	return System{}
}

// Now returns the current time in UTC.
func (System) Now() time.Time {
	return time.Now().UTC()
}
