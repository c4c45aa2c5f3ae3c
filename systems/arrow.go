package systems

import (
	"math"

	"github.com/mossbit/grove/components"
	"github.com/mossbit/grove/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateArrows advances arrow flight and resolves hits. An arrow dies on the
// first wall or shade it touches, or when it runs out of range; a hit shade
// gets a damage event queued for the combat system.
func UpdateArrows(ecs *ecs.ECS) {
	var spent []*donburi.Entry

	components.Arrow.Each(ecs.World, func(e *donburi.Entry) {
		arrow := components.Arrow.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		obj.X += physics.SpeedX
		obj.Y += physics.SpeedY
		obj.Update()

		arrow.DistanceTraveled += math.Hypot(physics.SpeedX, physics.SpeedY)
		if arrow.DistanceTraveled >= arrow.MaxRange {
			spent = append(spent, e)
			return
		}

		if check := obj.Check(0, 0, tags.ResolvSolid); check != nil {
			spent = append(spent, e)
			return
		}

		check := obj.Check(0, 0, tags.ResolvEnemy)
		if check == nil {
			return
		}
		for _, hit := range check.ObjectsByTags(tags.ResolvEnemy) {
			target, ok := hit.Data.(*donburi.Entry)
			if !ok || !target.Valid() || target.HasComponent(components.Death) {
				continue
			}
			if !target.HasComponent(components.DamageEvent) {
				donburi.Add(target, components.DamageEvent, &components.DamageEventData{
					Amount: arrow.Damage,
				})
			}
			spent = append(spent, e)
			return
		}
	})

	for _, e := range spent {
		removeFromSpace(ecs, e)
		ecs.World.Remove(e.Entity())
	}
}
