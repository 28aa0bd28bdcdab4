package adapter

import "time"

// Clock is the time source of everything that stamps rows or computes trailing windows
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	// Now returns the current time in UTC
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
}

type utcClock struct{}

// NewClock returns the wall clock
func NewClock() Clock {
	return utcClock{}
}

func (utcClock) Now() time.Time {
	return time.Now().UTC()
}

func (utcClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}
