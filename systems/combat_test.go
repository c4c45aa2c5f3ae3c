package systems

import (
	"testing"
	"time"

	"github.com/mossbit/grove/components"
	cfg "github.com/mossbit/grove/config"
	"github.com/mossbit/grove/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newCombatWorld() (*ecs.ECS, *components.SessionData, *donburi.Entry) {
	e := ecs.NewECS(donburi.NewWorld())

	sessionEntry := factory.CreateSession(e)
	session := components.Session.Get(sessionEntry)
	session.Seed(components.SessionHitPoints, cfg.Player.MaxHitPoints)

	player := e.World.Entry(e.World.Create(components.Player, components.Health))
	components.Player.SetValue(player, components.PlayerData{})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHitPoints,
		Max:     cfg.Player.MaxHitPoints,
	})

	return e, session, player
}

func TestDamageReducesHitPointsAndArmsInvulnerability(t *testing.T) {
	e, session, player := newCombatWorld()
	now := time.Now()

	applyPlayerDamage(e, player, 1, now)

	if got := session.Get(components.SessionHitPoints); got != 2 {
		t.Fatalf("session hit points = %d, want 2", got)
	}
	if got := components.Health.Get(player).Current; got != 2 {
		t.Fatalf("entity hit points = %d, want 2", got)
	}
	if CanTakeDamage(components.Player.Get(player), now) {
		t.Fatal("player should be invulnerable right after a hit")
	}
}

func TestInvulnerabilityWindowBlocksSecondHit(t *testing.T) {
	e, session, player := newCombatWorld()
	now := time.Now()

	applyPlayerDamage(e, player, 1, now)
	applyPlayerDamage(e, player, 1, now.Add(cfg.Player.InvulnWindow-time.Millisecond))

	if got := session.Get(components.SessionHitPoints); got != 2 {
		t.Fatalf("hit inside the window landed: hit points = %d, want 2", got)
	}

	// The window grants protection through its full length.
	applyPlayerDamage(e, player, 1, now.Add(cfg.Player.InvulnWindow))

	if got := session.Get(components.SessionHitPoints); got != 2 {
		t.Fatalf("hit at the window boundary landed: hit points = %d, want 2", got)
	}

	applyPlayerDamage(e, player, 1, now.Add(cfg.Player.InvulnWindow+time.Millisecond))

	if got := session.Get(components.SessionHitPoints); got != 1 {
		t.Fatalf("hit after the window should land: hit points = %d, want 1", got)
	}
}

func TestLethalDamageMarksDeathOnce(t *testing.T) {
	e, session, player := newCombatWorld()

	now := time.Now()
	for i := 0; i < cfg.Player.MaxHitPoints; i++ {
		applyPlayerDamage(e, player, 1, now)
		now = now.Add(cfg.Player.InvulnWindow + time.Millisecond)
	}

	if got := session.Get(components.SessionHitPoints); got != 0 {
		t.Fatalf("hit points = %d, want 0", got)
	}
	if !player.HasComponent(components.Death) {
		t.Fatal("lethal damage should mark the player dying")
	}
	if got := components.Death.Get(player).Timer; got != cfg.Player.DeathLingerTicks {
		t.Fatalf("death linger = %d, want %d", got, cfg.Player.DeathLingerTicks)
	}

	// Damage against a dying player is a no-op.
	applyPlayerDamage(e, player, 1, now)
	if got := session.Get(components.SessionHitPoints); got != 0 {
		t.Fatalf("post-death damage changed hit points: %d", got)
	}
}

func TestUpdateCombatDrainsDamageEvents(t *testing.T) {
	e, session, player := newCombatWorld()

	donburi.Add(player, components.DamageEvent, &components.DamageEventData{Amount: 1})
	UpdateCombat(e)

	if player.HasComponent(components.DamageEvent) {
		t.Fatal("damage event should be consumed")
	}
	if got := session.Get(components.SessionHitPoints); got != 2 {
		t.Fatalf("hit points = %d, want 2", got)
	}
}

func TestShadeDamageAndDeath(t *testing.T) {
	e, session, _ := newCombatWorld()

	shade := e.World.Entry(e.World.Create(components.Health))
	components.Health.SetValue(shade, components.HealthData{
		Current: cfg.Enemy.Health,
		Max:     cfg.Enemy.Health,
	})

	applyShadeDamage(e, shade, 1)
	if shade.HasComponent(components.Death) {
		t.Fatal("shade should survive the first hit")
	}

	applyShadeDamage(e, shade, 1)
	if !shade.HasComponent(components.Death) {
		t.Fatal("shade should be dying after the second hit")
	}
	if got := components.Death.Get(shade).Timer; got != cfg.Enemy.DeathTicks {
		t.Fatalf("fade timer = %d, want %d", got, cfg.Enemy.DeathTicks)
	}
	if got := session.Get(components.SessionShadesSlain); got != 1 {
		t.Fatalf("slain count = %d, want 1", got)
	}

	// A fading shade cannot be hit again.
	applyShadeDamage(e, shade, 1)
	if got := session.Get(components.SessionShadesSlain); got != 1 {
		t.Fatalf("slain count after extra hit = %d, want 1", got)
	}
}
