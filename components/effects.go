package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks sprite flash effect (hit flash, damage flash)
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // color multipliers (1,1,1 = white, 1,0.5,0.5 = red tint)
}

var Flash = donburi.NewComponentType[FlashData]()

// FadeData drives a sprite alpha tween, used for the grave marker fade-in
// and the shade fade-out.
type FadeData struct {
	Tween *gween.Tween
	// DestroyOnDone removes the entity when the tween completes.
	DestroyOnDone bool
}

var Fade = donburi.NewComponentType[FadeData]()
