package domain

import "time"

// Clock abstracts time so callers can pin "now" in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the current system time.
type SystemClock struct{}

// NewSystemClock returns a SystemClock.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns time.Now.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
