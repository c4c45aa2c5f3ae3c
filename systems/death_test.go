package systems

import (
	"testing"

	"github.com/mossbit/grove/components"
	"github.com/mossbit/grove/systems/factory"
	"github.com/mossbit/grove/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func countEntries(w donburi.World, each func(donburi.World, func(entry *donburi.Entry))) int {
	n := 0
	each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestPlayerDeathLingersThenLeavesExactlyOneGraveMarker(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	spaceEntry := factory.CreateSpace(e, 640, 360, 16, 16)
	space := components.Space.Get(spaceEntry)

	player := e.World.Entry(e.World.Create(tags.Player, components.Object, components.Death))
	obj := resolv.NewObject(100, 50, 20, 26)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	space.Add(obj)
	components.Death.SetValue(player, components.DeathData{Timer: 2})

	// The dying player holds its pose for the timer before teardown.
	UpdateDeaths(e)
	if got := countEntries(e.World, tags.Player.Each); got != 1 {
		t.Fatalf("player removed during its death linger: count = %d, want 1", got)
	}
	if got := countEntries(e.World, tags.GraveMarker.Each); got != 0 {
		t.Fatalf("marker placed before the linger elapsed: %d", got)
	}

	UpdateDeaths(e)

	if got := countEntries(e.World, tags.Player.Each); got != 0 {
		t.Fatalf("player entities after death = %d, want 0", got)
	}
	if got := countEntries(e.World, tags.GraveMarker.Each); got != 1 {
		t.Fatalf("grave markers = %d, want 1", got)
	}

	markerEntry, _ := components.GraveMarker.First(e.World)
	marker := components.GraveMarker.Get(markerEntry)
	if marker.X != 110 || marker.Y != 76 {
		t.Fatalf("marker at (%v, %v), want (110, 76)", marker.X, marker.Y)
	}

	// Running the system again must not produce another marker.
	UpdateDeaths(e)
	if got := countEntries(e.World, tags.GraveMarker.Each); got != 1 {
		t.Fatalf("grave markers after second pass = %d, want 1", got)
	}
}

func TestShadeFadesBeforeRemoval(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 360, 16, 16)

	shade := e.World.Entry(e.World.Create(tags.Enemy, components.Object, components.Death))
	obj := resolv.NewObject(20, 20, 22, 22)
	components.Object.SetValue(shade, components.ObjectData{Object: obj})
	components.Death.SetValue(shade, components.DeathData{Timer: 3})

	UpdateDeaths(e)
	UpdateDeaths(e)
	if got := countEntries(e.World, tags.Enemy.Each); got != 1 {
		t.Fatalf("shade removed during fade: count = %d, want 1", got)
	}

	UpdateDeaths(e)
	if got := countEntries(e.World, tags.Enemy.Each); got != 0 {
		t.Fatalf("shade still present after fade: count = %d, want 0", got)
	}
	if got := countEntries(e.World, tags.GraveMarker.Each); got != 0 {
		t.Fatalf("shades must not leave grave markers, got %d", got)
	}
}
