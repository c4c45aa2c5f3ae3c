package systems

import (
	"time"

	"github.com/mossbit/grove/components"
	cfg "github.com/mossbit/grove/config"
	"github.com/mossbit/grove/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	now := GetOrCreateClock(ecs).Now
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs, playerEntry, now)
	})
}

func updateSinglePlayer(ecs *ecs.ECS, playerEntry *donburi.Entry, now time.Time) {
	// A dying player only advances its animation; the death system removes
	// the entity.
	if playerEntry.HasComponent(components.Death) {
		if anim := components.Animation.Get(playerEntry); anim != nil && anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
		return
	}

	input := getOrCreateInput(ecs)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	animData := components.Animation.Get(playerEntry)

	handleMovementInput(input, player, physics, animData, now)
	handleCombatInput(ecs, playerEntry, input, player, animData, now)
	applyIdleFallback(input, player, animData, now)

	if animData != nil && animData.CurrentAnimation != nil {
		animData.CurrentAnimation.Update()
	}
}

// handleMovementInput converts the held directional keys into velocity and a
// walk animation. Velocity is reset every frame, so releasing all keys stops
// the player within one frame. While the shoot movement lock holds, the whole
// block is skipped: the attack animation must not be overridden by a walk.
func handleMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, animData *components.AnimationData, now time.Time) {
	physics.SpeedX = 0
	physics.SpeedY = 0

	if player.MoveLock.Active(now) {
		return
	}

	left := GetAction(input, cfg.ActionMoveLeft).Pressed
	right := GetAction(input, cfg.ActionMoveRight).Pressed
	up := GetAction(input, cfg.ActionMoveUp).Pressed
	down := GetAction(input, cfg.ActionMoveDown).Pressed

	horizontal := left || right

	// Both axes contribute velocity, but a held horizontal key wins the
	// facing: diagonal movement has no orientation of its own.
	if left {
		physics.SpeedX = -cfg.Player.WalkSpeed
		faceAndWalk(player, animData, components.Left)
	} else if right {
		physics.SpeedX = cfg.Player.WalkSpeed
		faceAndWalk(player, animData, components.Right)
	}

	if up {
		physics.SpeedY = -cfg.Player.WalkSpeed
		if !horizontal {
			faceAndWalk(player, animData, components.Up)
		}
	} else if down {
		physics.SpeedY = cfg.Player.WalkSpeed
		if !horizontal {
			faceAndWalk(player, animData, components.Down)
		}
	}
}

// handleCombatInput dispatches the punch and the shot. The punch is
// fire-and-forget: no lock gates it and it sets none, so it can land while
// reloading and even in the same frame as a shot. The shot is rejected
// outright while the reload gate holds; otherwise it arms both gates and
// spawns one arrow along the current facing.
func handleCombatInput(ecs *ecs.ECS, playerEntry *donburi.Entry, input *components.InputData, player *components.PlayerData, animData *components.AnimationData, now time.Time) {
	if GetAction(input, cfg.ActionMelee).JustPressed {
		playFacing(player, animData, player.Orientation.Facing().Punch)
	}

	if GetAction(input, cfg.ActionShoot).JustPressed && !player.Reload.Active(now) {
		player.Reload.Arm(now, cfg.Player.ReloadDelay)
		player.MoveLock.Arm(now, cfg.Player.ShootLockDuration)
		playFacing(player, animData, player.Orientation.Facing().Shoot)
		factory.CreateArrow(ecs, playerEntry)
	}
}

// applyIdleFallback selects the idle animation for the current orientation
// when nothing is held and no reload is in progress. The reload check keeps
// the shoot pose from snapping back to idle mid-reload.
func applyIdleFallback(input *components.InputData, player *components.PlayerData, animData *components.AnimationData, now time.Time) {
	for _, action := range []cfg.ActionID{
		cfg.ActionMoveLeft, cfg.ActionMoveRight, cfg.ActionMoveUp, cfg.ActionMoveDown,
		cfg.ActionMelee, cfg.ActionShoot,
	} {
		if GetAction(input, action).Pressed {
			return
		}
	}

	if player.Reload.Active(now) {
		return
	}

	playFacing(player, animData, player.Orientation.Facing().Idle)
}

func faceAndWalk(player *components.PlayerData, animData *components.AnimationData, o components.Orientation) {
	player.Orientation = o
	playFacing(player, animData, o.Facing().Walk)
}

func playFacing(player *components.PlayerData, animData *components.AnimationData, state cfg.StateID) {
	if animData == nil {
		return
	}
	animData.FlipX = player.Orientation.Facing().FlipX
	animData.SetAnimation(state)
}
