package assets

import "testing"

func TestMustLoadLevelParsesMap(t *testing.T) {
	level := NewLevelLoader().MustLoadLevel("levels/grove.tmx")

	if level.Width != 960 || level.Height != 640 {
		t.Fatalf("level size = %dx%d, want 960x640", level.Width, level.Height)
	}
	if len(level.Walls) == 0 {
		t.Fatal("no collision rects parsed from the walls layer")
	}
	if level.PlayerSpawn.X == 0 && level.PlayerSpawn.Y == 0 {
		t.Fatal("player spawn missing")
	}
	if len(level.EnemySpawns) == 0 {
		t.Fatal("no shade spawns parsed")
	}
	if level.Background == nil {
		t.Fatal("background not rendered")
	}
}
