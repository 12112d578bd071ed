package entity

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EffectKind selects how an effect is drawn
type EffectKind int

const (
	EffectExplosion EffectKind = iota
	EffectPlayerHit
)

// Effect is a cosmetic burst. It never affects simulation outcomes.
type Effect struct {
	X, Y      float64
	Kind      EffectKind
	Particles int
	Progress  float64 // 0 at spawn, 1 when finished

	tween *gween.Tween
	done  bool
}

// NewEffect creates an effect that plays for duration seconds
func NewEffect(kind EffectKind, x, y float64, particles int, duration float64) *Effect {
	if duration <= 0 {
		duration = 0.01
	}
	return &Effect{
		X:         x,
		Y:         y,
		Kind:      kind,
		Particles: particles,
		tween:     gween.New(0, 1, float32(duration), ease.OutQuad),
	}
}

// Update advances the effect's tween
func (e *Effect) Update(dt float64) {
	if e.done {
		return
	}
	current, finished := e.tween.Update(float32(dt))
	e.Progress = float64(current)
	e.done = finished
}

// Done returns true once the effect finished playing
func (e *Effect) Done() bool {
	return e.done
}

// Alpha returns the fade-out opacity for rendering
func (e *Effect) Alpha() float64 {
	return 1 - e.Progress
}
