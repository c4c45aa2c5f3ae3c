package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mossbit/grove/components"
	cfg "github.com/mossbit/grove/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var hudDrawOp = &ebiten.DrawImageOptions{}

// RefreshHearts hides every filled heart whose index is at or above the
// current hit-point count. Hearts are never re-shown or recreated here; hit
// points only drop while a player lives.
func RefreshHearts(ecs *ecs.ECS, hitPoints int) {
	components.Heart.Each(ecs.World, func(e *donburi.Entry) {
		heart := components.Heart.Get(e)
		if heart.Filled && heart.Index >= hitPoints {
			heart.Hidden = true
		}
	})
}

// DrawHearts renders the heart row screen-fixed in the top-left corner,
// backdrops first so filled overlays sit on top.
func DrawHearts(ecs *ecs.ECS, screen *ebiten.Image) {
	drawHeartLayer(ecs, screen, false)
	drawHeartLayer(ecs, screen, true)
}

func drawHeartLayer(ecs *ecs.ECS, screen *ebiten.Image, filled bool) {
	components.Heart.Each(ecs.World, func(e *donburi.Entry) {
		heart := components.Heart.Get(e)
		if heart.Filled != filled || heart.Hidden {
			return
		}
		sprite := components.Sprite.Get(e)
		if sprite == nil || sprite.Image == nil {
			return
		}

		width := sprite.Image.Bounds().Dx()
		hudDrawOp.GeoM.Reset()
		hudDrawOp.GeoM.Translate(
			float64(cfg.HUD.Margin+heart.Index*(width+cfg.HUD.Spacing)),
			float64(cfg.HUD.Margin),
		)
		screen.DrawImage(sprite.Image, hudDrawOp)
	})
}
