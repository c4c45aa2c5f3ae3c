package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/mossbit/grove/config"
	"github.com/mossbit/grove/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RunStats carries the finished run's results into the game over screen.
type RunStats struct {
	ShadesSlain int
}

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	stats        RunStats
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, stats RunStats) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, stats: stats}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	// Scene factories
	createWorldScene := func() interface{} {
		return NewWorldScene(gs.sceneChanger)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger)
	}

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createWorldScene, createMenuScene))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	gameOver := systems.GetOrCreateGameOver(gs.ecs)
	gameOver.ShadesSlain = gs.stats.ShadesSlain
	gameOver.NewRecord = systems.SaveRecordIfBest(gs.stats.ShadesSlain)
}
