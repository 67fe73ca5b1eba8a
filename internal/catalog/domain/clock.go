package domain

import "time"

// Clock supplies the current time for time-dependent rules such as the
// year-launched upper bound.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now()
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	At time.Time
}

// Now returns the fixed instant
func (c FixedClock) Now() time.Time {
	return c.At
}

// YearClock returns a clock pinned to the first day of year.
func YearClock(year int) Clock {
	return FixedClock{At: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)}
}
