package timing

import (
	"testing"
	"time"
)

func TestStartStop(t *testing.T) {
	tm := Start("load")
	time.Sleep(10 * time.Millisecond)
	elapsed := tm.Stop()

	if elapsed <= 0 {
		t.Fatalf("expected positive elapsed time, got %v", elapsed)
	}
	if tm.Name() != "load" {
		t.Errorf("Name() = %q, want %q", tm.Name(), "load")
	}
	// Stopped timer no longer accumulates.
	if tm.Elapsed() != elapsed {
		t.Errorf("Elapsed() after Stop changed: %v != %v", tm.Elapsed(), elapsed)
	}
}

func TestResume_Accumulates(t *testing.T) {
	tm := Start("phase")
	time.Sleep(5 * time.Millisecond)
	first := tm.Stop()

	tm.Resume()
	time.Sleep(5 * time.Millisecond)
	total := tm.Stop()

	if total <= first {
		t.Errorf("resumed timer must accumulate: first=%v total=%v", first, total)
	}
}

func TestStop_Idempotent(t *testing.T) {
	tm := Start("x")
	a := tm.Stop()
	time.Sleep(2 * time.Millisecond)
	b := tm.Stop()
	if a != b {
		t.Errorf("second Stop changed elapsed: %v != %v", a, b)
	}
}
