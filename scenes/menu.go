package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mossbit/grove/systems"
	"github.com/mossbit/grove/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	menuUI       *ui.MenuUI
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.Draw(screen)
}

func (ms *MenuScene) configure() {
	bestRecord := -1
	if record := systems.LoadRecord(); record != nil {
		bestRecord = record.MostShadesSlain
	}

	ms.menuUI = ui.NewMenuUI(
		bestRecord,
		func() {
			systems.SaveSettings(&systems.SavedSettings{Fullscreen: ebiten.IsFullscreen()})
			ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger))
		},
		func() {
			systems.SaveSettings(&systems.SavedSettings{Fullscreen: ebiten.IsFullscreen()})
			os.Exit(0)
		},
	)
}
