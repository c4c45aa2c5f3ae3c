package scenes

import (
	"testing"

	cfg "github.com/mossbit/grove/config"
)

func TestWorldLingersBeforeGameOver(t *testing.T) {
	ws := NewWorldScene(nil)

	if ws.advanceEnding(false) {
		t.Fatal("run must not end while the player lives")
	}

	for i := 0; i < cfg.Combat.GameOverDelayTicks-1; i++ {
		if ws.advanceEnding(true) {
			t.Fatalf("run ended after %d ticks, want %d", i+1, cfg.Combat.GameOverDelayTicks)
		}
	}
	if !ws.advanceEnding(true) {
		t.Fatal("run should end once the delay elapses")
	}
}
