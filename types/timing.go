package types

import "time"

// Timing records the wall-clock duration of an operation
type Timing struct {
	Start time.Time
	End   time.Time
}

func (t *Timing) Duration() time.Duration {
	return t.End.Sub(t.Start)
}
