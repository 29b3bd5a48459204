// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock abstracts wall-clock access so settlement timestamps can be fixed in tests.
type Clock interface {
	// Now returns the current time in UTC.
	Now() time.Time
}

// SystemClock is the production Clock backed by the system time.
type SystemClock struct{}

// Now returns the current system time in UTC.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
