package systems

import (
	"github.com/mossbit/grove/components"
	"github.com/mossbit/grove/systems/factory"
	"github.com/mossbit/grove/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths winds down dying entities. The player lingers for its death
// pose, then is torn down and leaves exactly one grave marker at its last
// position, since the entity is gone the moment the marker appears. Shades
// linger for their fade-out before removal.
func UpdateDeaths(ecs *ecs.ECS) {
	var done []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer--
		if death.Timer <= 0 {
			done = append(done, e)
		}
	})

	for _, e := range done {
		if e.HasComponent(tags.Player) {
			obj := components.Object.Get(e)
			markerX := obj.X + obj.W/2
			markerY := obj.Y + obj.H
			removeFromSpace(ecs, e)
			ecs.World.Remove(e.Entity())
			factory.CreateGraveMarker(ecs, markerX, markerY)
			continue
		}

		removeFromSpace(ecs, e)
		ecs.World.Remove(e.Entity())
	}
}

func removeFromSpace(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		if obj := components.Object.Get(e); obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
}
