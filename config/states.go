package config

// StateID identifies a sprite sheet / animation for an entity. The String
// value doubles as the sheet file name under assets/images/spritesheets.
type StateID int

const (
	StateNone StateID = iota

	IdleDown
	IdleUp
	IdleSide
	WalkDown
	WalkUp
	WalkSide
	PunchDown
	PunchUp
	PunchSide
	ShootDown
	ShootUp
	ShootSide

	// Shade states
	ShadeDrift
	ShadeFade

	StateCount // Must be last - used for array sizing
)

var stateToFileName = map[StateID]string{
	IdleDown:   "idle_down",
	IdleUp:     "idle_up",
	IdleSide:   "idle_side",
	WalkDown:   "walk_down",
	WalkUp:     "walk_up",
	WalkSide:   "walk_side",
	PunchDown:  "punch_down",
	PunchUp:    "punch_up",
	PunchSide:  "punch_side",
	ShootDown:  "shoot_down",
	ShootUp:    "shoot_up",
	ShootSide:  "shoot_side",
	ShadeDrift: "drift",
	ShadeFade:  "fade",
}

func (s StateID) String() string {
	if name, ok := stateToFileName[s]; ok {
		return name
	}
	return "none"
}
