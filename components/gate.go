package components

import "time"

// Gate is a one-shot timed lock: arming it keeps it active for a fixed
// duration, after which it reads as inactive with no explicit release step.
// The reload lock, the shoot movement lock and the post-hit invulnerability
// window all use the same mechanism.
type Gate struct {
	deadline time.Time
}

// Arm activates the gate for d starting at now. Re-arming an active gate
// extends it; the source never needs to cancel one early.
func (g *Gate) Arm(now time.Time, d time.Duration) {
	g.deadline = now.Add(d)
}

// Active reports whether the gate is still holding at now. The gate holds
// through the full window: it reads released only once the deadline has
// been exceeded.
func (g *Gate) Active(now time.Time) bool {
	return !now.After(g.deadline)
}
