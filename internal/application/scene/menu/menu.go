// Package menu provides the title scene.
package menu

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/invaders/internal/application/scene"
	"github.com/younwookim/invaders/internal/application/scene/playing"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

var colorBG = color.RGBA{10, 10, 24, 255}

// Menu is the title screen. Starting a run hands off to the playing scene.
type Menu struct {
	config *config.GameConfig
	seed   func() int64

	readStart func() bool
}

// New creates the title scene. seed is called once per started run.
func New(cfg *config.GameConfig, seed func() int64) *Menu {
	return &Menu{
		config:    cfg,
		seed:      seed,
		readStart: readStart,
	}
}

func readStart() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Update waits for the start command (implements scene.Scene)
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	if !m.readStart() {
		return nil, nil
	}
	p := playing.New(m.config, m.seed())
	p.SetMenu(func() scene.Scene { return m })
	return p, nil
}

// Draw renders the title screen
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	d := m.config.Balance.Display
	cx, cy := d.ScreenWidth/2, d.ScreenHeight/2
	ebitenutil.DebugPrintAt(screen, d.Title, cx-len(d.Title)*3, cy-60)

	lines := []string{
		"WASD / arrows or drag: move",
		"J: fire   Space: ultimate   P: pause",
		fmt.Sprintf("Clear waves, buy upgrades, a boss every %d waves", m.config.Waves.Boss.Every),
		"",
		"[Enter] Start",
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, cx-len(l)*3, cy-20+i*18)
	}
}

// OnEnter is called when entering this scene
func (m *Menu) OnEnter() {}

// OnExit is called when leaving this scene
func (m *Menu) OnExit() {}
