package components

import (
	"testing"

	cfg "github.com/mossbit/grove/config"
)

func TestFacingCoversEveryOrientation(t *testing.T) {
	want := map[Orientation]struct {
		idle, walk, punch, shoot cfg.StateID
		flipX                    bool
	}{
		Down:  {cfg.IdleDown, cfg.WalkDown, cfg.PunchDown, cfg.ShootDown, false},
		Up:    {cfg.IdleUp, cfg.WalkUp, cfg.PunchUp, cfg.ShootUp, false},
		Left:  {cfg.IdleSide, cfg.WalkSide, cfg.PunchSide, cfg.ShootSide, true},
		Right: {cfg.IdleSide, cfg.WalkSide, cfg.PunchSide, cfg.ShootSide, false},
	}

	for o, w := range want {
		f := o.Facing()
		if f.Idle != w.idle || f.Walk != w.walk || f.Punch != w.punch || f.Shoot != w.shoot {
			t.Errorf("%s facing = %+v, want %+v", o, f, w)
		}
		if f.FlipX != w.flipX {
			t.Errorf("%s FlipX = %v, want %v", o, f.FlipX, w.flipX)
		}
	}
}

func TestOrientationVectorIsUnitCardinal(t *testing.T) {
	cases := []struct {
		o    Orientation
		x, y float64
	}{
		{Down, 0, 1},
		{Up, 0, -1},
		{Left, -1, 0},
		{Right, 1, 0},
	}

	for _, c := range cases {
		v := c.o.Vector()
		if v.X != c.x || v.Y != c.y {
			t.Errorf("%s vector = (%v, %v), want (%v, %v)", c.o, v.X, v.Y, c.x, c.y)
		}
	}
}

func TestZeroOrientationIsDown(t *testing.T) {
	var o Orientation
	if o != Down {
		t.Fatalf("zero orientation = %v, want Down", o)
	}
}
