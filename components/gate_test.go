package components

import (
	"testing"
	"time"
)

func TestGateInactiveByDefault(t *testing.T) {
	var g Gate
	if g.Active(time.Now()) {
		t.Fatal("zero-value gate should be inactive")
	}
}

func TestGateHoldsUntilDeadline(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	var g Gate
	g.Arm(t0, 500*time.Millisecond)

	if !g.Active(t0) {
		t.Fatal("gate should be active immediately after arming")
	}
	if !g.Active(t0.Add(499 * time.Millisecond)) {
		t.Fatal("gate should be active just before the deadline")
	}
	if !g.Active(t0.Add(500 * time.Millisecond)) {
		t.Fatal("gate should hold through the full window")
	}
	if g.Active(t0.Add(500*time.Millisecond + time.Nanosecond)) {
		t.Fatal("gate should release once the window is exceeded")
	}
	if g.Active(t0.Add(time.Hour)) {
		t.Fatal("gate should stay released")
	}
}

func TestGateRearmExtends(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	var g Gate
	g.Arm(t0, 100*time.Millisecond)
	g.Arm(t0.Add(50*time.Millisecond), 100*time.Millisecond)

	if !g.Active(t0.Add(120 * time.Millisecond)) {
		t.Fatal("re-arming should extend the deadline")
	}
	if g.Active(t0.Add(150*time.Millisecond + time.Nanosecond)) {
		t.Fatal("extended gate should release past the new deadline")
	}
}
