package systems

import (
	"math"
	"math/rand"

	"github.com/mossbit/grove/components"
	cfg "github.com/mossbit/grove/config"
	"github.com/mossbit/grove/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies drives shade behavior: drift on a random heading, chase the
// player when it comes close, and queue contact damage on overlap. Whether
// the damage actually lands is the combat system's call.
func UpdateEnemies(ecs *ecs.ECS) {
	playerEntry, playerAlive := alivePlayer(ecs)

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			if anim := components.Animation.Get(e); anim != nil && anim.CurrentAnimation != nil {
				anim.CurrentAnimation.Update()
			}
			return
		}

		shade := components.Enemy.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		if playerAlive && withinChaseRange(obj, playerEntry) {
			shade.State = components.ShadeChase
			chasePlayer(physics, obj, playerEntry)
		} else {
			shade.State = components.ShadeWander
			wander(shade, physics)
		}

		if playerAlive {
			queueContactDamage(obj, playerEntry)
		}

		if anim := components.Animation.Get(e); anim != nil && anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}

func alivePlayer(ecs *ecs.ECS) (*donburi.Entry, bool) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return nil, false
	}
	return playerEntry, true
}

func withinChaseRange(obj *components.ObjectData, playerEntry *donburi.Entry) bool {
	playerObj := components.Object.Get(playerEntry)
	dx := (playerObj.X + playerObj.W/2) - (obj.X + obj.W/2)
	dy := (playerObj.Y + playerObj.H/2) - (obj.Y + obj.H/2)
	return math.Hypot(dx, dy) <= cfg.Enemy.ChaseRange
}

func chasePlayer(physics *components.PhysicsData, obj *components.ObjectData, playerEntry *donburi.Entry) {
	playerObj := components.Object.Get(playerEntry)
	dx := (playerObj.X + playerObj.W/2) - (obj.X + obj.W/2)
	dy := (playerObj.Y + playerObj.H/2) - (obj.Y + obj.H/2)
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		physics.SpeedX, physics.SpeedY = 0, 0
		return
	}
	physics.SpeedX = dx / dist * cfg.Enemy.ChaseSpeed
	physics.SpeedY = dy / dist * cfg.Enemy.ChaseSpeed
}

func wander(shade *components.EnemyData, physics *components.PhysicsData) {
	shade.HeadingTicks--
	if shade.HeadingTicks <= 0 {
		shade.HeadingTicks = cfg.Enemy.WanderTurnTicks
		angle := rand.Float64() * 2 * math.Pi
		shade.HeadingX = math.Cos(angle)
		shade.HeadingY = math.Sin(angle)
	}
	physics.SpeedX = shade.HeadingX * cfg.Enemy.WanderSpeed
	physics.SpeedY = shade.HeadingY * cfg.Enemy.WanderSpeed
}

func queueContactDamage(obj *components.ObjectData, playerEntry *donburi.Entry) {
	check := obj.Check(0, 0, tags.ResolvPlayer)
	if check == nil {
		return
	}
	if len(check.ObjectsByTags(tags.ResolvPlayer)) == 0 {
		return
	}
	if !playerEntry.HasComponent(components.DamageEvent) {
		donburi.Add(playerEntry, components.DamageEvent, &components.DamageEventData{
			Amount: cfg.Enemy.ContactDamage,
		})
	}
}
