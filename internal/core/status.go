package core

import "time"

// Status captures the simulation state at a given moment, for display.
type Status struct {
	Generation int
	Population int
	Paused     bool
	Interval   time.Duration
	Cursor     Point
	Size       Size
}

// Mode returns a short label for the running state.
func (s Status) Mode() string {
	if s.Paused {
		return "paused"
	}
	return "running"
}
