package clock

import "time"

// Clocker abstracts time so callers can replace real time in tests.
type Clocker interface {
	Now() time.Time
}

// TimeClocker is the production clock implementation backed by time.Now.
type TimeClocker struct{}

// New returns a TimeClocker that reads the current system time.
func New() *TimeClocker {
	return &TimeClocker{}
}

// Now returns the current system time.
func (*TimeClocker) Now() time.Time {
	return time.Now()
}

// FixedClocker always reports the same instant. Intended for tests and for
// generators pinned to an explicit timestamp override.
type FixedClocker struct {
	T time.Time
}

// Fixed returns a clock frozen at t.
func Fixed(t time.Time) *FixedClocker {
	return &FixedClocker{T: t}
}

// Now returns the frozen instant.
func (c *FixedClocker) Now() time.Time {
	return c.T
}

// FuncClocker adapts a plain function to the Clocker interface. Tests use it
// to script a sequence of instants.
type FuncClocker func() time.Time

// Now invokes the wrapped function.
func (f FuncClocker) Now() time.Time {
	return f()
}
