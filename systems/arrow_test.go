package systems

import (
	"testing"

	"github.com/mossbit/grove/components"
	cfg "github.com/mossbit/grove/config"
	"github.com/mossbit/grove/systems/factory"
	"github.com/mossbit/grove/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newArrowWorld() (*ecs.ECS, *resolv.Space) {
	e := ecs.NewECS(donburi.NewWorld())
	spaceEntry := factory.CreateSpace(e, 640, 360, 16, 16)
	return e, components.Space.Get(spaceEntry)
}

func spawnTestArrow(e *ecs.ECS, space *resolv.Space, x, y, speedX, speedY, maxRange float64) *donburi.Entry {
	arrow := e.World.Entry(e.World.Create(tags.Arrow, components.Arrow, components.Object, components.Physics))

	obj := resolv.NewObject(x, y, cfg.Arrow.Width, cfg.Arrow.Height, tags.ResolvArrow)
	obj.Data = arrow
	space.Add(obj)

	components.Object.SetValue(arrow, components.ObjectData{Object: obj})
	components.Physics.SetValue(arrow, components.PhysicsData{SpeedX: speedX, SpeedY: speedY})
	components.Arrow.SetValue(arrow, components.ArrowData{
		Damage:   cfg.Arrow.Damage,
		MaxRange: maxRange,
	})

	return arrow
}

func TestArrowExpiresAtMaxRange(t *testing.T) {
	e, space := newArrowWorld()
	spawnTestArrow(e, space, 100, 100, cfg.Arrow.Speed, 0, cfg.Arrow.Speed)

	UpdateArrows(e)

	if got := countEntries(e.World, tags.Arrow.Each); got != 0 {
		t.Fatalf("arrow past its range still flying: count = %d", got)
	}
}

func TestArrowStopsAtWall(t *testing.T) {
	e, space := newArrowWorld()

	wall := resolv.NewObject(110, 96, 16, 16, tags.ResolvSolid)
	space.Add(wall)

	spawnTestArrow(e, space, 100, 100, cfg.Arrow.Speed, 0, cfg.Arrow.MaxRange)
	UpdateArrows(e)

	if got := countEntries(e.World, tags.Arrow.Each); got != 0 {
		t.Fatalf("arrow flew through a wall: count = %d", got)
	}
}

func TestArrowHitQueuesDamageAndIsSpent(t *testing.T) {
	e, space := newArrowWorld()

	shade := e.World.Entry(e.World.Create(tags.Enemy, components.Health))
	components.Health.SetValue(shade, components.HealthData{Current: cfg.Enemy.Health, Max: cfg.Enemy.Health})
	shadeObj := resolv.NewObject(110, 96, 22, 22, tags.ResolvEnemy)
	shadeObj.Data = shade
	space.Add(shadeObj)

	spawnTestArrow(e, space, 100, 100, cfg.Arrow.Speed, 0, cfg.Arrow.MaxRange)
	UpdateArrows(e)

	if !shade.HasComponent(components.DamageEvent) {
		t.Fatal("hit shade has no damage event queued")
	}
	if got := components.DamageEvent.Get(shade).Amount; got != cfg.Arrow.Damage {
		t.Fatalf("queued damage = %d, want %d", got, cfg.Arrow.Damage)
	}
	if got := countEntries(e.World, tags.Arrow.Each); got != 0 {
		t.Fatalf("arrow survived its hit: count = %d", got)
	}
}

func TestArrowIgnoresFadingShade(t *testing.T) {
	e, space := newArrowWorld()

	shade := e.World.Entry(e.World.Create(tags.Enemy, components.Health, components.Death))
	components.Death.SetValue(shade, components.DeathData{Timer: 10})
	shadeObj := resolv.NewObject(110, 96, 22, 22, tags.ResolvEnemy)
	shadeObj.Data = shade
	space.Add(shadeObj)

	spawnTestArrow(e, space, 100, 100, cfg.Arrow.Speed, 0, cfg.Arrow.MaxRange)
	UpdateArrows(e)

	if shade.HasComponent(components.DamageEvent) {
		t.Fatal("fading shade must not take damage")
	}
}
