package components

import "github.com/yohamta/donburi"

// HeartData is one indicator of the heart row. The empty backdrops are
// created once and never change; the filled overlays are created from the
// hit-point value at player construction and are only ever hidden as hit
// points drop. Nothing re-shows or recreates an indicator mid-scene.
type HeartData struct {
	Index  int
	Filled bool
	Hidden bool
}

var Heart = donburi.NewComponentType[HeartData]()
