package factory

import (
	"github.com/mossbit/grove/archetypes"
	"github.com/mossbit/grove/components"
	cfg "github.com/mossbit/grove/config"
	"github.com/mossbit/grove/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the warden at (x, y). Hit points are seeded into the
// session store only when absent, so re-creating the player within the same
// scene session keeps whatever health was left.
func CreatePlayer(ecs *ecs.ECS, session *components.SessionData, x, y float64) *donburi.Entry {
	session.Seed(components.SessionHitPoints, cfg.Player.MaxHitPoints)

	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight))
	obj.AddTags("character", tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Player.SetValue(player, components.PlayerData{
		Orientation: components.Down,
	})
	components.Physics.SetValue(player, components.PhysicsData{})
	components.Health.SetValue(player, components.HealthData{
		Current: session.Get(components.SessionHitPoints),
		Max:     cfg.Player.MaxHitPoints,
	})
	components.Flash.SetValue(player, components.FlashData{
		R: 1, G: 1, B: 1,
	})

	animData := GenerateAnimations("player", cfg.Player.FrameWidth, cfg.Player.FrameHeight)
	animData.SetAnimation(cfg.IdleDown)
	components.Animation.Set(player, animData)

	CreateHearts(ecs, session.Get(components.SessionHitPoints))

	return player
}
