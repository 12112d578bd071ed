package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem maps raw input to player intents
type InputSystem struct {
	autoFire bool
}

// NewInputSystem creates a new input system. With autoFire the player
// fires whenever the cooldown allows.
func NewInputSystem(autoFire bool) *InputSystem {
	return &InputSystem{autoFire: autoFire}
}

// InputState holds the current input state
type InputState struct {
	Left     bool
	Right    bool
	Up       bool
	Down     bool
	Fire     bool
	Ultimate bool
	Pause    bool
	Confirm  bool
	Dragging bool // Left mouse held: ship follows the cursor
	MouseX   int
	MouseY   int
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		Left:     ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:       ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:     ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Fire:     ebiten.IsKeyPressed(ebiten.KeyJ),
		Ultimate: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Pause:    inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Confirm:  inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Dragging: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		MouseX:   mx,
		MouseY:   my,
	}
}

// Intents converts an input snapshot into commands for the simulation
func (s *InputSystem) Intents(input InputState) []Intent {
	intents := make([]Intent, 0, 3)

	// Dragging wins over keys
	if input.Dragging {
		intents = append(intents, MoveToIntent{X: float64(input.MouseX), Y: float64(input.MouseY)})
	} else {
		dx, dy := 0.0, 0.0
		if input.Left {
			dx--
		}
		if input.Right {
			dx++
		}
		if input.Up {
			dy--
		}
		if input.Down {
			dy++
		}
		if dx != 0 || dy != 0 {
			intents = append(intents, MoveByIntent{DX: dx, DY: dy})
		}
	}

	if input.Fire || s.autoFire {
		intents = append(intents, FireIntent{})
	}
	if input.Ultimate {
		intents = append(intents, UltimateIntent{})
	}
	return intents
}
