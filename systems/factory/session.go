package factory

import (
	"github.com/mossbit/grove/archetypes"
	"github.com/mossbit/grove/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the scene-lifetime key/value store.
func CreateSession(ecs *ecs.ECS) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{})
	return session
}
