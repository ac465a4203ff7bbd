// Package clock supplies the current instant to the ledger and the
// elapsed-days computation behind the MaxiSavings recency rule. Callers
// take the interface so tests can freeze time.
package clock

import "time"

type Clock interface {
	Now() time.Time
	// DaysSince returns the number of whole days elapsed between t and
	// now, truncated toward zero.
	DaysSince(t time.Time) int
}

// System is the wall-clock implementation used outside of tests.
type System struct{}

func NewSystem() System {
	return System{}
}

func (System) Now() time.Time {
	return time.Now().UTC()
}

func (s System) DaysSince(t time.Time) int {
	return daysBetween(t, s.Now())
}

// Fixed reports a pinned instant. Advance moves it forward, which is how
// tests replay "a withdrawal happened N days ago" against the recency
// window.
type Fixed struct {
	now time.Time
}

func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now}
}

func (f *Fixed) Now() time.Time {
	return f.now
}

func (f *Fixed) DaysSince(t time.Time) int {
	return daysBetween(t, f.now)
}

func (f *Fixed) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
