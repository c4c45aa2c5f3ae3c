package config

import "time"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	WalkSpeed float64

	// Combat
	MaxHitPoints int

	// Timed gates. ShootLockDuration must stay shorter than ReloadDelay so
	// the player regains movement before the next shot is possible.
	ReloadDelay       time.Duration
	ShootLockDuration time.Duration
	InvulnWindow      time.Duration

	// Frames the dying player lingers before it is torn down and the grave
	// marker is placed.
	DeathLingerTicks int

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  int
	CollisionHeight int
}

// ArrowConfig contains projectile configuration values
type ArrowConfig struct {
	Speed    float64
	MaxRange float64
	Damage   int

	// Offset from the player center to the arrow spawn point, along the
	// firing direction.
	SpawnOffset float64

	Width  float64
	Height float64
}

// EnemyConfig contains configuration for the shade enemy type
type EnemyConfig struct {
	Health      int
	WanderSpeed float64
	ChaseSpeed  float64
	ChaseRange  float64

	// How long a shade keeps its current wander heading before rerolling.
	WanderTurnTicks int

	ContactDamage int

	// Death fade-out duration in frames.
	DeathTicks int

	FrameWidth      int
	FrameHeight     int
	CollisionWidth  int
	CollisionHeight int
}

// CombatConfig contains cross-entity combat values
type CombatConfig struct {
	// Hit flash duration in frames.
	FlashTicks int

	// Frames the world scene keeps running after the player entity is gone,
	// long enough for the grave marker fade-in to play out.
	GameOverDelayTicks int
}

// CameraConfig contains camera behavior values
type CameraConfig struct {
	FollowSmoothing float64
}

// HUDConfig contains heart display layout values
type HUDConfig struct {
	Margin  int
	Spacing int
}

type GameConfig struct {
	Width  int
	Height int
	Title  string
}

var C = GameConfig{
	Width:  640,
	Height: 360,
	Title:  "Grove",
}

var Player = PlayerConfig{
	WalkSpeed:    2.0,
	MaxHitPoints: 3,

	ReloadDelay:       500 * time.Millisecond,
	ShootLockDuration: 300 * time.Millisecond,
	InvulnWindow:      500 * time.Millisecond,

	DeathLingerTicks: 45,

	FrameWidth:      32,
	FrameHeight:     32,
	CollisionWidth:  20,
	CollisionHeight: 26,
}

var Arrow = ArrowConfig{
	Speed:       6.0,
	MaxRange:    260,
	Damage:      1,
	SpawnOffset: 14,
	Width:       10,
	Height:      10,
}

var Enemy = EnemyConfig{
	Health:          2,
	WanderSpeed:     0.6,
	ChaseSpeed:      1.2,
	ChaseRange:      120,
	WanderTurnTicks: 90,
	ContactDamage:   1,
	DeathTicks:      20,

	FrameWidth:      32,
	FrameHeight:     32,
	CollisionWidth:  22,
	CollisionHeight: 22,
}

var Combat = CombatConfig{
	FlashTicks:         10,
	GameOverDelayTicks: 75,
}

var Camera = CameraConfig{
	FollowSmoothing: 0.08,
}

var HUD = HUDConfig{
	Margin:  8,
	Spacing: 2,
}

// DebugConfig contains development-only toggles
type DebugConfig struct {
	SkipMenu      bool
	DrawColliders bool
}

var Debug = DebugConfig{
	SkipMenu:      false,
	DrawColliders: false,
}
