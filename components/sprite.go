package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image    *ebiten.Image
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Alpha lets effects fade a static sprite in or out.
	Alpha float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
