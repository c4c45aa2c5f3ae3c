package factory

import (
	"math"

	"github.com/mossbit/grove/archetypes"
	"github.com/mossbit/grove/assets"
	"github.com/mossbit/grove/components"
	cfg "github.com/mossbit/grove/config"
	"github.com/mossbit/grove/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArrow spawns an arrow positioned and oriented from the owner's
// current facing.
func CreateArrow(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	a := archetypes.Arrow.Spawn(ecs)

	ownerObj := components.Object.Get(owner).Object
	orientation := components.Player.Get(owner).Orientation
	dir := orientation.Vector()

	startX := ownerObj.X + ownerObj.W/2 + dir.X*cfg.Arrow.SpawnOffset - cfg.Arrow.Width/2
	startY := ownerObj.Y + ownerObj.H/2 + dir.Y*cfg.Arrow.SpawnOffset - cfg.Arrow.Height/2

	obj := resolv.NewObject(startX, startY, cfg.Arrow.Width, cfg.Arrow.Height, tags.ResolvArrow)
	obj.Data = a
	components.Object.Set(a, &components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Physics.Set(a, &components.PhysicsData{
		SpeedX: dir.X * cfg.Arrow.Speed,
		SpeedY: dir.Y * cfg.Arrow.Speed,
	})

	components.Arrow.Set(a, &components.ArrowData{
		Owner:       owner,
		Orientation: orientation,
		Damage:      cfg.Arrow.Damage,
		MaxRange:    cfg.Arrow.MaxRange,
	})

	img := assets.GetObjectImage("arrow.png")
	components.Sprite.Set(a, &components.SpriteData{
		Image:    img,
		Rotation: math.Atan2(dir.Y, dir.X),
		PivotX:   float64(img.Bounds().Dx()) / 2,
		PivotY:   float64(img.Bounds().Dy()) / 2,
		Alpha:    1,
	})

	return a
}
