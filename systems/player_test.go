package systems

import (
	"testing"
	"time"

	"github.com/mossbit/grove/components"
	cfg "github.com/mossbit/grove/config"
	"github.com/mossbit/grove/systems/factory"
	"github.com/mossbit/grove/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func pressed(actions ...cfg.ActionID) *components.InputData {
	input := &components.InputData{}
	for _, a := range actions {
		input.Current[a] = true
	}
	return input
}

func TestMovementSetsVelocityAndFacing(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name        string
		input       *components.InputData
		wantX       float64
		wantY       float64
		wantFacing  components.Orientation
		wantSheet   cfg.StateID
		wantFlipped bool
	}{
		{
			name:       "left",
			input:      pressed(cfg.ActionMoveLeft),
			wantX:      -cfg.Player.WalkSpeed,
			wantFacing: components.Left, wantSheet: cfg.WalkSide, wantFlipped: true,
		},
		{
			name:       "right",
			input:      pressed(cfg.ActionMoveRight),
			wantX:      cfg.Player.WalkSpeed,
			wantFacing: components.Right, wantSheet: cfg.WalkSide,
		},
		{
			name:       "up",
			input:      pressed(cfg.ActionMoveUp),
			wantY:      -cfg.Player.WalkSpeed,
			wantFacing: components.Up, wantSheet: cfg.WalkUp,
		},
		{
			name:       "down",
			input:      pressed(cfg.ActionMoveDown),
			wantY:      cfg.Player.WalkSpeed,
			wantFacing: components.Down, wantSheet: cfg.WalkDown,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			player := &components.PlayerData{}
			physics := &components.PhysicsData{}
			animData := &components.AnimationData{}

			handleMovementInput(tc.input, player, physics, animData, now)

			if physics.SpeedX != tc.wantX || physics.SpeedY != tc.wantY {
				t.Fatalf("velocity = (%v, %v), want (%v, %v)",
					physics.SpeedX, physics.SpeedY, tc.wantX, tc.wantY)
			}
			if player.Orientation != tc.wantFacing {
				t.Fatalf("orientation = %v, want %v", player.Orientation, tc.wantFacing)
			}
			if animData.CurrentSheet != tc.wantSheet {
				t.Fatalf("sheet = %v, want %v", animData.CurrentSheet, tc.wantSheet)
			}
			if animData.FlipX != tc.wantFlipped {
				t.Fatalf("FlipX = %v, want %v", animData.FlipX, tc.wantFlipped)
			}
		})
	}
}

func TestDiagonalMovementFacesHorizontal(t *testing.T) {
	now := time.Now()
	player := &components.PlayerData{}
	physics := &components.PhysicsData{}
	animData := &components.AnimationData{}

	handleMovementInput(pressed(cfg.ActionMoveLeft, cfg.ActionMoveUp), player, physics, animData, now)

	if physics.SpeedX != -cfg.Player.WalkSpeed || physics.SpeedY != -cfg.Player.WalkSpeed {
		t.Fatalf("diagonal velocity = (%v, %v)", physics.SpeedX, physics.SpeedY)
	}
	if player.Orientation != components.Left {
		t.Fatalf("diagonal orientation = %v, want Left", player.Orientation)
	}
	if animData.CurrentSheet != cfg.WalkSide || !animData.FlipX {
		t.Fatalf("diagonal should play the mirrored side walk, got sheet %v flip %v",
			animData.CurrentSheet, animData.FlipX)
	}
}

func TestMoveLockSuppressesMovement(t *testing.T) {
	now := time.Now()
	player := &components.PlayerData{Orientation: components.Right}
	player.MoveLock.Arm(now, cfg.Player.ShootLockDuration)
	physics := &components.PhysicsData{SpeedX: 5, SpeedY: 5}
	animData := &components.AnimationData{CurrentSheet: cfg.ShootSide}

	handleMovementInput(pressed(cfg.ActionMoveLeft, cfg.ActionMoveDown), player, physics, animData, now)

	if physics.SpeedX != 0 || physics.SpeedY != 0 {
		t.Fatalf("locked player moved: velocity = (%v, %v)", physics.SpeedX, physics.SpeedY)
	}
	if player.Orientation != components.Right {
		t.Fatalf("locked player turned: orientation = %v", player.Orientation)
	}
	if animData.CurrentSheet != cfg.ShootSide {
		t.Fatalf("locked player changed animation: sheet = %v", animData.CurrentSheet)
	}

	// Once the gate releases, the held keys take effect again.
	later := now.Add(cfg.Player.ShootLockDuration + time.Millisecond)
	handleMovementInput(pressed(cfg.ActionMoveLeft, cfg.ActionMoveDown), player, physics, animData, later)
	if physics.SpeedX != -cfg.Player.WalkSpeed {
		t.Fatalf("unlocked player should move, velocity X = %v", physics.SpeedX)
	}
}

func TestIdleFallback(t *testing.T) {
	now := time.Now()

	t.Run("no input selects idle for current facing", func(t *testing.T) {
		player := &components.PlayerData{Orientation: components.Left}
		animData := &components.AnimationData{CurrentSheet: cfg.WalkSide}

		applyIdleFallback(&components.InputData{}, player, animData, now)

		if animData.CurrentSheet != cfg.IdleSide {
			t.Fatalf("sheet = %v, want IdleSide", animData.CurrentSheet)
		}
		if !animData.FlipX {
			t.Fatal("left-facing idle should stay mirrored")
		}
	})

	t.Run("held key skips fallback", func(t *testing.T) {
		player := &components.PlayerData{}
		animData := &components.AnimationData{CurrentSheet: cfg.WalkDown}

		applyIdleFallback(pressed(cfg.ActionMoveDown), player, animData, now)

		if animData.CurrentSheet != cfg.WalkDown {
			t.Fatalf("sheet = %v, want WalkDown", animData.CurrentSheet)
		}
	})

	t.Run("active reload keeps the shoot pose", func(t *testing.T) {
		player := &components.PlayerData{}
		player.Reload.Arm(now, cfg.Player.ReloadDelay)
		animData := &components.AnimationData{CurrentSheet: cfg.ShootDown}

		applyIdleFallback(&components.InputData{}, player, animData, now)

		if animData.CurrentSheet != cfg.ShootDown {
			t.Fatalf("sheet = %v, want ShootDown", animData.CurrentSheet)
		}

		// Reload expired: fallback applies.
		applyIdleFallback(&components.InputData{}, player, animData, now.Add(cfg.Player.ReloadDelay+time.Millisecond))
		if animData.CurrentSheet != cfg.IdleDown {
			t.Fatalf("sheet after reload = %v, want IdleDown", animData.CurrentSheet)
		}
	})
}

func TestPunchIsUngated(t *testing.T) {
	now := time.Now()
	player := &components.PlayerData{Orientation: components.Up}
	// Mid-reload: the punch must still land.
	player.Reload.Arm(now, cfg.Player.ReloadDelay)
	animData := &components.AnimationData{}

	handleCombatInput(nil, nil, pressed(cfg.ActionMelee), player, animData, now)

	if animData.CurrentSheet != cfg.PunchUp {
		t.Fatalf("sheet = %v, want PunchUp", animData.CurrentSheet)
	}
	if player.MoveLock.Active(now) {
		t.Fatal("punch must not arm the movement lock")
	}
}

func TestShootRejectedWhileReloading(t *testing.T) {
	now := time.Now()
	player := &components.PlayerData{}
	player.Reload.Arm(now, cfg.Player.ReloadDelay)
	animData := &components.AnimationData{CurrentSheet: cfg.IdleDown}

	handleCombatInput(nil, nil, pressed(cfg.ActionShoot), player, animData, now)

	if animData.CurrentSheet != cfg.IdleDown {
		t.Fatalf("rejected shot changed animation: sheet = %v", animData.CurrentSheet)
	}
	if player.MoveLock.Active(now) {
		t.Fatal("rejected shot must not arm the movement lock")
	}
}

func TestShootHeldDoesNotRefire(t *testing.T) {
	now := time.Now()
	player := &components.PlayerData{}
	animData := &components.AnimationData{}

	// Key held since last frame: no JustPressed edge, so nothing fires and
	// CreateArrow is never reached.
	input := pressed(cfg.ActionShoot)
	input.Previous[cfg.ActionShoot] = true

	handleCombatInput(nil, nil, input, player, animData, now)

	if player.Reload.Active(now) {
		t.Fatal("held shoot key must not arm the reload")
	}
}

func TestShootSpawnsOneArrowAndArmsGates(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 360, 16, 16)
	sessionEntry := factory.CreateSession(e)
	session := components.Session.Get(sessionEntry)
	playerEntry := factory.CreatePlayer(e, session, 100, 100)

	player := components.Player.Get(playerEntry)
	animData := components.Animation.Get(playerEntry)
	now := time.Now()

	handleCombatInput(e, playerEntry, pressed(cfg.ActionShoot), player, animData, now)

	if !player.Reload.Active(now) {
		t.Fatal("shot should arm the reload lock")
	}
	if !player.MoveLock.Active(now) {
		t.Fatal("shot should arm the movement lock")
	}
	if animData.CurrentSheet != cfg.ShootDown {
		t.Fatalf("sheet = %v, want ShootDown", animData.CurrentSheet)
	}
	if got := countEntries(e.World, tags.Arrow.Each); got != 1 {
		t.Fatalf("arrows after one shot = %d, want 1", got)
	}

	// A second press inside the reload delay spawns nothing.
	handleCombatInput(e, playerEntry, pressed(cfg.ActionShoot), player, animData,
		now.Add(cfg.Player.ReloadDelay-time.Millisecond))
	if got := countEntries(e.World, tags.Arrow.Each); got != 1 {
		t.Fatalf("arrows after a reloading shot = %d, want 1", got)
	}

	// Once the reload releases, the next press fires again.
	handleCombatInput(e, playerEntry, pressed(cfg.ActionShoot), player, animData,
		now.Add(cfg.Player.ReloadDelay+time.Millisecond))
	if got := countEntries(e.World, tags.Arrow.Each); got != 2 {
		t.Fatalf("arrows after the reload released = %d, want 2", got)
	}
}
