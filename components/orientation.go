package components

import (
	cfg "github.com/mossbit/grove/config"
	"github.com/yohamta/donburi/features/math"
)

// Orientation is the last-faced cardinal direction. It drives animation
// selection and the firing direction of arrows. The zero value is Down.
type Orientation int

const (
	Down Orientation = iota
	Up
	Left
	Right
)

// Facing bundles everything orientation-dependent about the player's
// presentation: which sheet plays for each action and whether the side
// sheets are mirrored.
type Facing struct {
	Idle  cfg.StateID
	Walk  cfg.StateID
	Punch cfg.StateID
	Shoot cfg.StateID
	FlipX bool
}

// facings is indexed by Orientation. Left and Right share the side sheets;
// Left mirrors them.
var facings = [4]Facing{
	Down:  {Idle: cfg.IdleDown, Walk: cfg.WalkDown, Punch: cfg.PunchDown, Shoot: cfg.ShootDown},
	Up:    {Idle: cfg.IdleUp, Walk: cfg.WalkUp, Punch: cfg.PunchUp, Shoot: cfg.ShootUp},
	Left:  {Idle: cfg.IdleSide, Walk: cfg.WalkSide, Punch: cfg.PunchSide, Shoot: cfg.ShootSide, FlipX: true},
	Right: {Idle: cfg.IdleSide, Walk: cfg.WalkSide, Punch: cfg.PunchSide, Shoot: cfg.ShootSide},
}

func (o Orientation) Facing() Facing {
	return facings[o]
}

// Vector returns the unit direction the orientation points at.
func (o Orientation) Vector() math.Vec2 {
	switch o {
	case Up:
		return math.Vec2{X: 0, Y: -1}
	case Left:
		return math.Vec2{X: -1, Y: 0}
	case Right:
		return math.Vec2{X: 1, Y: 0}
	default:
		return math.Vec2{X: 0, Y: 1}
	}
}

func (o Orientation) String() string {
	switch o {
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "down"
	}
}
