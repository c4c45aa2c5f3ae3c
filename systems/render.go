package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mossbit/grove/components"
	cfg "github.com/mossbit/grove/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// cameraOffset converts world coordinates to screen coordinates.
func cameraOffset(ecs *ecs.ECS) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	return float64(cfg.C.Width)/2 - camera.Position.X, float64(cfg.C.Height)/2 - camera.Position.Y, true
}

// DrawLevel renders the pre-rendered tile map background.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	offX, offY, ok := cameraOffset(ecs)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.CurrentLevel == nil || level.CurrentLevel.Background == nil {
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(offX, offY)
	screen.DrawImage(level.CurrentLevel.Background, drawOp)
}

// DrawAnimated renders entities with an Animation component based on their
// current frame, flipping side sheets for left-facing entities.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	offX, offY, ok := cameraOffset(ecs)
	if !ok {
		return
	}

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		o := components.Object.Get(e)
		animData := components.Animation.Get(e)
		if animData.CurrentAnimation == nil {
			return
		}

		frame := animData.CurrentAnimation.Frame()
		var img *ebiten.Image
		if frames, ok := animData.CachedFrames[animData.CurrentSheet]; ok {
			img = frames[frame]
		}
		if img == nil {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		if animData.FlipX {
			drawOp.GeoM.Scale(-1, 1)
			drawOp.GeoM.Translate(float64(animData.FrameWidth), 0)
		}

		// Center the sprite frame on the (smaller) collision box.
		frameOffX := (float64(animData.FrameWidth) - o.W) / 2
		frameOffY := float64(animData.FrameHeight) - o.H

		if e.HasComponent(components.Flash) {
			flash := components.Flash.Get(e)
			if flash.Duration > 0 {
				drawOp.ColorScale.Scale(flash.R, flash.G, flash.B, 1)
			}
		}

		drawOp.GeoM.Translate(o.X-frameOffX+offX, o.Y-frameOffY+offY)
		screen.DrawImage(img, drawOp)
	})
}

// DrawSprites renders static world sprites: arrows and the grave marker.
// Screen-fixed sprites (hearts) have their own renderer.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	offX, offY, ok := cameraOffset(ecs)
	if !ok {
		return
	}

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Heart) {
			return
		}
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil {
			return
		}

		var x, y float64
		switch {
		case e.HasComponent(components.Object):
			o := components.Object.Get(e)
			x, y = o.X, o.Y
		case e.HasComponent(components.GraveMarker):
			m := components.GraveMarker.Get(e)
			x = m.X - float64(sprite.Image.Bounds().Dx())/2
			y = m.Y - float64(sprite.Image.Bounds().Dy())
		default:
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		if sprite.Rotation != 0 {
			drawOp.GeoM.Translate(-sprite.PivotX, -sprite.PivotY)
			drawOp.GeoM.Rotate(sprite.Rotation)
			drawOp.GeoM.Translate(sprite.PivotX, sprite.PivotY)
		}
		if sprite.Alpha < 1 {
			drawOp.ColorScale.ScaleAlpha(float32(sprite.Alpha))
		}

		drawOp.GeoM.Translate(x+offX, y+offY)
		screen.DrawImage(sprite.Image, drawOp)
	})
}

// DrawDebug outlines collision objects when enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawColliders {
		return
	}
	offX, offY, ok := cameraOffset(ecs)
	if !ok {
		return
	}

	outline := color.RGBA{255, 0, 255, 255}
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.StrokeRect(screen,
			float32(o.X+offX), float32(o.Y+offY),
			float32(o.W), float32(o.H),
			1, outline, false)
	})
}
