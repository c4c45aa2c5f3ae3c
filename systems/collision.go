package systems

import (
	"github.com/mossbit/grove/components"
	"github.com/mossbit/grove/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves characters by their per-frame velocity, sliding
// along solid tiles axis by axis.
func UpdateCollisions(ecs *ecs.ECS) {
	moveCharacters := func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)
		moveWithSolids(physics, obj.Object)
	}

	tags.Player.Each(ecs.World, moveCharacters)
	tags.Enemy.Each(ecs.World, moveCharacters)
}

func moveWithSolids(physics *components.PhysicsData, object *resolv.Object) {
	if dx := physics.SpeedX; dx != 0 {
		if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
			}
		}
		object.X += dx
	}

	if dy := physics.SpeedY; dy != 0 {
		if check := object.Check(0, dy, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dy = check.ContactWithObject(solids[0]).Y()
			}
		}
		object.Y += dy
	}

	object.Update()
}

// UpdateObjects syncs every collision object's cell placement after the
// frame's movement.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
