package util

import "time"

// Timer measures elapsed time for request logging and latency metrics.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer starting at current time.
func StartTimer() Timer {
	return Timer{start: time.Now()}
}

// Elapsed returns the time since start, or zero for an unstarted timer.
func (t Timer) Elapsed() time.Duration {
	if t.start.IsZero() {
		return 0
	}
	return time.Since(t.start)
}

// ElapsedMs returns the elapsed milliseconds since start.
func (t Timer) ElapsedMs() int64 {
	return t.Elapsed().Milliseconds()
}

// Seconds returns the elapsed time in fractional seconds, the unit Prometheus
// histograms expect.
func (t Timer) Seconds() float64 {
	return t.Elapsed().Seconds()
}
