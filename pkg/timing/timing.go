// Package timing provides tiny named timers for load-phase diagnostics.
// A Timer accumulates across Start/Stop cycles so repeated phases under the
// same name report a total.
package timing

import (
	"log/slog"
	"time"
)

// Timer measures one named phase.
type Timer struct {
	name    string
	started time.Time
	elapsed time.Duration
	running bool
}

// Start creates a Timer and starts it.
func Start(name string) *Timer {
	return &Timer{name: name, started: time.Now(), running: true}
}

// Resume restarts a stopped timer. Running timers are unaffected.
func (t *Timer) Resume() {
	if !t.running {
		t.started = time.Now()
		t.running = true
	}
}

// Stop stops the timer and returns the total elapsed duration so far.
func (t *Timer) Stop() time.Duration {
	if t.running {
		t.elapsed += time.Since(t.started)
		t.running = false
	}
	return t.elapsed
}

// Elapsed returns the accumulated duration, including the current cycle if
// the timer is running.
func (t *Timer) Elapsed() time.Duration {
	if t.running {
		return t.elapsed + time.Since(t.started)
	}
	return t.elapsed
}

// Name returns the timer's name.
func (t *Timer) Name() string {
	return t.name
}

// Report logs the accumulated duration at info level.
func (t *Timer) Report(logger *slog.Logger) {
	logger.Info("timer",
		slog.String("name", t.name),
		slog.Duration("elapsed", t.Elapsed()),
	)
}
