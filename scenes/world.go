package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mossbit/grove/assets"
	"github.com/mossbit/grove/components"
	cfg "github.com/mossbit/grove/config"
	"github.com/mossbit/grove/systems"
	"github.com/mossbit/grove/systems/factory"
	"github.com/mossbit/grove/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs a single expedition into the grove. One scene is one
// session: hit points persist across respawns within it and reset with it.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	ending       bool
	endDelay     int
	once         sync.Once
}

// NewWorldScene creates a new world scene
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if ws.advanceEnding(ws.checkGameOver()) {
		ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, ws.runStats()))
	}
}

// advanceEnding counts down the post-death delay once the player entity is
// gone, so the grave marker and its fade-in stay on screen before the game
// over screen takes over.
func (ws *WorldScene) advanceEnding(over bool) bool {
	if !over {
		return false
	}
	if !ws.ending {
		ws.ending = true
		ws.endDelay = cfg.Combat.GameOverDelayTicks
	}
	ws.endDelay--
	return ws.endDelay <= 0
}

// checkGameOver returns true once the player entity has been removed
// (after the death sequence completes).
func (ws *WorldScene) checkGameOver() bool {
	if ws.ecs == nil {
		return false
	}

	playerCount := 0
	tags.Player.Each(ws.ecs.World, func(entry *donburi.Entry) {
		playerCount++
	})
	return playerCount == 0
}

func (ws *WorldScene) runStats() RunStats {
	stats := RunStats{}
	if sessionEntry, ok := components.Session.First(ws.ecs.World); ok {
		session := components.Session.Get(sessionEntry)
		stats.ShadesSlain = session.Get(components.SessionShadesSlain)
	}
	return stats
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	assets.PreloadAllAnimations()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems skipped while paused
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateArrows))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCombat))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDebug))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	// Renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawHearts)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ws.ecs = ecs

	// Load the level first: walls and spawn points come from the map.
	level := factory.CreateLevel(ws.ecs)
	levelData := components.Level.Get(level)

	factory.CreateSpace(ws.ecs,
		levelData.CurrentLevel.Width,
		levelData.CurrentLevel.Height,
		16, 16,
	)
	factory.CreateCamera(ws.ecs)

	for _, w := range levelData.CurrentLevel.Walls {
		factory.CreateWall(ws.ecs, w.X, w.Y, w.Width, w.Height)
	}

	sessionEntry := factory.CreateSession(ws.ecs)
	session := components.Session.Get(sessionEntry)

	spawn := levelData.CurrentLevel.PlayerSpawn
	factory.CreatePlayer(ws.ecs, session, spawn.X, spawn.Y)

	for _, es := range levelData.CurrentLevel.EnemySpawns {
		factory.CreateShade(ws.ecs, es.X, es.Y)
	}

	// Snap camera onto the player to prevent panning in from (0,0).
	if cameraEntry, ok := components.Camera.First(ws.ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Position.X = spawn.X
		camera.Position.Y = spawn.Y
	}
}
