package components

import "github.com/yohamta/donburi"

// DeathData marks an entity that has started its death sequence.
// Timer counts down each frame; when it reaches 0, the entity is removed
// from the world.
type DeathData struct {
	Timer int
}

var Death = donburi.NewComponentType[DeathData]()

// GraveMarkerData tags the stationary visual left behind when the player
// dies. Exactly one is created per death; it outlives the player entity.
type GraveMarkerData struct {
	X, Y float64
}

var GraveMarker = donburi.NewComponentType[GraveMarkerData]()
