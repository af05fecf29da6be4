package domain

import "time"

// Clock supplies the current time to aggregate constructors.
// Injecting it keeps construction deterministic under test.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now returns the current time from the wrapped function.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock returns a Clock backed by the local system time.
func SystemClock() Clock {
	return ClockFunc(time.Now)
}

// FixedClock returns a Clock that always reports the given instant.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
