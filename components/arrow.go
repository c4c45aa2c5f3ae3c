package components

import (
	"github.com/yohamta/donburi"
)

type ArrowData struct {
	Owner       *donburi.Entry
	Orientation Orientation
	Damage      int

	DistanceTraveled float64
	MaxRange         float64
}

var Arrow = donburi.NewComponentType[ArrowData]()
