package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/icefall/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title screen with one button per level.
type MenuScene struct {
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	quit         bool
	once         sync.Once
}

func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.UI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

// ShouldQuit reports that the quit button was clicked.
func (ms *MenuScene) ShouldQuit() bool { return ms.quit }

func (ms *MenuScene) configure() {
	ms.menuUI = ui.NewMenuUI(
		func(levelName string) {
			ms.sceneChanger.ChangeScene(NewGameScene(ms.sceneChanger, levelName))
		},
		func() {
			ms.quit = true
		},
	)
}
