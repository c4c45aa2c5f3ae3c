package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData is top-down velocity. There is no gravity; controllers set
// speed directly each frame and the collision system moves the object.
type PhysicsData struct {
	SpeedX float64
	SpeedY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
