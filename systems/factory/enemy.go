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

// CreateShade spawns a hostile shade at (x, y).
func CreateShade(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	shade := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(x, y, float64(cfg.Enemy.CollisionWidth), float64(cfg.Enemy.CollisionHeight))
	obj.AddTags("character", tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(cfg.Enemy.CollisionWidth), float64(cfg.Enemy.CollisionHeight)))
	obj.Data = shade
	components.Object.SetValue(shade, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Enemy.SetValue(shade, components.EnemyData{
		State: components.ShadeWander,
	})
	components.Physics.SetValue(shade, components.PhysicsData{})
	components.Health.SetValue(shade, components.HealthData{
		Current: cfg.Enemy.Health,
		Max:     cfg.Enemy.Health,
	})
	components.Flash.SetValue(shade, components.FlashData{
		R: 1, G: 1, B: 1,
	})

	animData := GenerateAnimations("shade", cfg.Enemy.FrameWidth, cfg.Enemy.FrameHeight)
	animData.SetAnimation(cfg.ShadeDrift)
	components.Animation.Set(shade, animData)

	return shade
}
