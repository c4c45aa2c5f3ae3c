package systems

import (
	"testing"

	"github.com/mossbit/grove/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func spawnTestHeart(e *ecs.ECS, index int, filled bool) *donburi.Entry {
	heart := e.World.Entry(e.World.Create(components.Heart))
	components.Heart.SetValue(heart, components.HeartData{Index: index, Filled: filled})
	return heart
}

func TestRefreshHeartsHidesLostHitPoints(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	for i := 0; i < 3; i++ {
		spawnTestHeart(e, i, false)
		spawnTestHeart(e, i, true)
	}

	RefreshHearts(e, 1)

	components.Heart.Each(e.World, func(entry *donburi.Entry) {
		heart := components.Heart.Get(entry)
		switch {
		case !heart.Filled && heart.Hidden:
			t.Errorf("empty backdrop %d must never hide", heart.Index)
		case heart.Filled && heart.Index == 0 && heart.Hidden:
			t.Error("remaining hit point hidden")
		case heart.Filled && heart.Index >= 1 && !heart.Hidden:
			t.Errorf("lost hit point %d still showing", heart.Index)
		}
	})
}

func TestRefreshHeartsNeverReshows(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	heart := spawnTestHeart(e, 2, true)

	RefreshHearts(e, 1)
	if !components.Heart.Get(heart).Hidden {
		t.Fatal("heart above the hit-point count should hide")
	}

	// A higher count later must not bring it back.
	RefreshHearts(e, 3)
	if !components.Heart.Get(heart).Hidden {
		t.Fatal("hidden heart came back")
	}
}
