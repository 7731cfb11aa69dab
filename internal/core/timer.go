package core

import "time"

// Stopwatch measures the wall-clock duration of consecutive generation
// passes. Each Lap returns the time since the previous Lap (or since
// construction for the first one).
type Stopwatch struct {
	last time.Time
}

// NewStopwatch constructs a running Stopwatch.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{last: time.Now()}
}

// Lap returns the elapsed time since the previous lap and restarts the
// interval.
func (s *Stopwatch) Lap() time.Duration {
	now := time.Now()
	d := now.Sub(s.last)
	s.last = now
	return d
}
