package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData carries the wall-clock time for the current frame. All systems
// and gates read the same snapshot, so a gate is observed either released or
// held for a whole tick, never in between.
type ClockData struct {
	Now time.Time
}

var Clock = donburi.NewComponentType[ClockData]()
