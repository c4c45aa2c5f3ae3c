package factory

import (
	"github.com/mossbit/grove/archetypes"
	"github.com/mossbit/grove/assets"
	"github.com/mossbit/grove/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGraveMarker places the stationary death marker at the player's last
// position. It fades in and then persists for the rest of the scene.
func CreateGraveMarker(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	marker := archetypes.GraveMarker.Spawn(ecs)

	components.GraveMarker.SetValue(marker, components.GraveMarkerData{X: x, Y: y})

	img := assets.GetObjectImage("grave_marker.png")
	components.Sprite.SetValue(marker, components.SpriteData{
		Image: img,
		Alpha: 0,
	})

	components.Fade.SetValue(marker, components.FadeData{
		Tween: gween.New(0, 1, 1.0, ease.OutQuad),
	})

	return marker
}
