// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/invaders/internal/application/scene"
)

// DeltaSource yields the seconds to simulate for each update
type DeltaSource interface {
	Tick() float64
}

// resetter is implemented by delta sources that can drop the pending frame
type resetter interface {
	Reset()
}

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	clock   DeltaSource
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	dt := g.dt
	if g.clock != nil {
		dt = g.clock.Tick()
	}

	next, err := g.current.Update(dt)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()

		// Time spent switching scenes is not simulated
		if r, ok := g.clock.(resetter); ok {
			r.Reset()
		}
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the fixed delta time used for updates.
// Ignored while a clock is set.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetClock measures each update's delta with src instead of the fixed dt.
// Pass nil to return to the fixed dt.
func (g *Game) SetClock(src DeltaSource) {
	g.clock = src
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}
