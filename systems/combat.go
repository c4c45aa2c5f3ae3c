package systems

import (
	"time"

	"github.com/mossbit/grove/components"
	cfg "github.com/mossbit/grove/config"
	"github.com/mossbit/grove/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat drains queued damage events. The player's invulnerability
// window and dead-actor guard are enforced here, inside the damage entry
// point, so two collisions in the same window cannot both land no matter
// who raised them.
func UpdateCombat(ecs *ecs.ECS) {
	now := GetOrCreateClock(ecs).Now

	var hit []*donburi.Entry
	components.DamageEvent.Each(ecs.World, func(e *donburi.Entry) {
		hit = append(hit, e)
	})

	for _, e := range hit {
		amount := components.DamageEvent.Get(e).Amount
		if e.HasComponent(components.Player) {
			applyPlayerDamage(ecs, e, amount, now)
		} else if e.HasComponent(tags.Enemy) {
			applyShadeDamage(ecs, e, amount)
		}
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}
}

// CanTakeDamage reports whether the player is outside the post-hit
// invulnerability window.
func CanTakeDamage(player *components.PlayerData, now time.Time) bool {
	return !player.Hurt.Active(now)
}

func applyPlayerDamage(ecs *ecs.ECS, playerEntry *donburi.Entry, amount int, now time.Time) {
	// Already torn down or mid-death: late damage is a no-op.
	if playerEntry.HasComponent(components.Death) {
		return
	}

	player := components.Player.Get(playerEntry)
	if !CanTakeDamage(player, now) {
		return
	}

	session := mustSession(ecs)
	remaining := session.Add(components.SessionHitPoints, -amount)
	if remaining < 0 {
		remaining = 0
		session.Set(components.SessionHitPoints, 0)
	}

	hp := components.Health.Get(playerEntry)
	hp.Current = remaining

	player.Hurt.Arm(now, cfg.Player.InvulnWindow)

	if playerEntry.HasComponent(components.Flash) {
		flash := components.Flash.Get(playerEntry)
		flash.Duration = cfg.Combat.FlashTicks
		flash.R, flash.G, flash.B = 1, 0.4, 0.4
	}

	RefreshHearts(ecs, remaining)

	if remaining <= 0 {
		donburi.Add(playerEntry, components.Death, &components.DeathData{Timer: cfg.Player.DeathLingerTicks})
	}
}

func applyShadeDamage(ecs *ecs.ECS, shadeEntry *donburi.Entry, amount int) {
	// A fading shade cannot be hit again.
	if shadeEntry.HasComponent(components.Death) {
		return
	}

	hp := components.Health.Get(shadeEntry)
	hp.Current -= amount
	if hp.Current < 0 {
		hp.Current = 0
	}

	if shadeEntry.HasComponent(components.Flash) {
		flash := components.Flash.Get(shadeEntry)
		flash.Duration = cfg.Combat.FlashTicks
		flash.R, flash.G, flash.B = 1.6, 1.6, 1.6
	}

	if hp.Current > 0 {
		return
	}

	donburi.Add(shadeEntry, components.Death, &components.DeathData{Timer: cfg.Enemy.DeathTicks})
	if shadeEntry.HasComponent(components.Animation) {
		components.Animation.Get(shadeEntry).SetAnimation(cfg.ShadeFade)
	}

	mustSession(ecs).Add(components.SessionShadesSlain, 1)
}

func mustSession(ecs *ecs.ECS) *components.SessionData {
	entry := components.Session.MustFirst(ecs.World)
	return components.Session.Get(entry)
}
