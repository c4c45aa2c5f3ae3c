package factory

import (
	"github.com/mossbit/grove/archetypes"
	"github.com/mossbit/grove/assets"
	"github.com/mossbit/grove/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the grove map. Wall entities are spawned by the scene
// once the collision space exists.
func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	loader := assets.NewLevelLoader()
	current := loader.MustLoadLevel("levels/grove.tmx")

	components.Level.Set(level, &components.LevelData{
		CurrentLevel: current,
	})

	return level
}
