package systems

import (
	"time"

	"github.com/mossbit/grove/archetypes"
	"github.com/mossbit/grove/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock snapshots wall-clock time for the frame. It must run before
// any system that queries a gate, so every lock is observed consistently
// within one tick.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	clock.Now = time.Now()
}

func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	if entry, ok := components.Clock.First(ecs.World); ok {
		return components.Clock.Get(entry)
	}
	entry := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(entry, components.ClockData{Now: time.Now()})
	return components.Clock.Get(entry)
}
