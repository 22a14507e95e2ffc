package game

import "time"

// Clock supplies the real time the fixed-timestep loop accumulates
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a controllable clock for tests and headless drivers
type ManualClock struct {
	current time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

func (m *ManualClock) Now() time.Time {
	return m.current
}

func (m *ManualClock) Set(t time.Time) {
	m.current = t
}

// Advance moves the clock forward by d and returns the new time
func (m *ManualClock) Advance(d time.Duration) time.Time {
	m.current = m.current.Add(d)
	return m.current
}
