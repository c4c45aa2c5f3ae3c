package systems

import (
	"github.com/mossbit/grove/components"
	cfg "github.com/mossbit/grove/config"
	"github.com/mossbit/grove/systems/factory"
	"github.com/mossbit/grove/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug handles development shortcuts. Respawn tears the warden down
// and rebuilds it through the factory; remaining hit points survive because
// they live in the session store, not on the entity.
func UpdateDebug(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionRespawn).JustPressed {
		respawnPlayer(ecs)
	}
}

func respawnPlayer(ecs *ecs.ECS) {
	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.CurrentLevel == nil {
		return
	}

	// A run that already ended stays ended.
	if session.Get(components.SessionHitPoints) <= 0 {
		return
	}

	var stale []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		stale = append(stale, e)
	})
	for _, e := range stale {
		removeFromSpace(ecs, e)
		ecs.World.Remove(e.Entity())
	}

	spawn := level.CurrentLevel.PlayerSpawn
	factory.CreatePlayer(ecs, session, spawn.X, spawn.Y)
}
