package factory

import (
	"github.com/mossbit/grove/archetypes"
	"github.com/mossbit/grove/assets"
	"github.com/mossbit/grove/components"
	cfg "github.com/mossbit/grove/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHearts builds the heart row: MaxHitPoints empty backdrops (created
// once per scene, permanent) and one filled overlay per current hit point.
// Filled hearts belong to the player's lifetime; re-creating the player
// rebuilds them from the hit-point value at that instant.
func CreateHearts(ecs *ecs.ECS, hitPoints int) {
	if !heartsExist(ecs, false) {
		for i := 0; i < cfg.Player.MaxHitPoints; i++ {
			spawnHeart(ecs, i, false)
		}
	}

	removeFilledHearts(ecs)
	for i := 0; i < hitPoints; i++ {
		spawnHeart(ecs, i, true)
	}
}

func spawnHeart(ecs *ecs.ECS, index int, filled bool) {
	heart := archetypes.Heart.Spawn(ecs)
	components.Heart.SetValue(heart, components.HeartData{
		Index:  index,
		Filled: filled,
	})

	icon := "heart_empty.png"
	if filled {
		icon = "heart_full.png"
	}
	components.Sprite.SetValue(heart, components.SpriteData{
		Image: assets.GetIconImage(icon),
		Alpha: 1,
	})
}

func heartsExist(ecs *ecs.ECS, filled bool) bool {
	found := false
	components.Heart.Each(ecs.World, func(e *donburi.Entry) {
		if components.Heart.Get(e).Filled == filled {
			found = true
		}
	})
	return found
}

func removeFilledHearts(ecs *ecs.ECS) {
	var stale []*donburi.Entry
	components.Heart.Each(ecs.World, func(e *donburi.Entry) {
		if components.Heart.Get(e).Filled {
			stale = append(stale, e)
		}
	})
	for _, e := range stale {
		ecs.World.Remove(e.Entity())
	}
}
