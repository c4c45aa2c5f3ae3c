package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Orientation Orientation

	// Reload holds after a shot; shooting is rejected while it is active.
	// MoveLock holds for the (shorter) shoot animation; movement input is
	// ignored while it is active.
	Reload   Gate
	MoveLock Gate

	// Hurt is the post-hit invulnerability window.
	Hurt Gate
}

var Player = donburi.NewComponentType[PlayerData]()
