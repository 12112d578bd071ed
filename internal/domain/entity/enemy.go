package entity

import (
	"math"
	"math/rand"
)

// Kind identifies an enemy's stats and behavior
type Kind int

const (
	KindBasic Kind = iota
	KindFast
	KindZigzag
	KindTank
	KindTripleShot
	KindDiagonal
	KindBurst
	KindSniper
	KindBossSpread
	KindBossRadial
	KindBossTwin
	KindBossSpiral
)

var kindNames = map[Kind]string{
	KindBasic:      "basic",
	KindFast:       "fast",
	KindZigzag:     "zigzag",
	KindTank:       "tank",
	KindTripleShot: "tripleShot",
	KindDiagonal:   "diagonal",
	KindBurst:      "burst",
	KindSniper:     "sniper",
	KindBossSpread: "bossSpread",
	KindBossRadial: "bossRadial",
	KindBossTwin:   "bossTwin",
	KindBossSpiral: "bossSpiral",
}

// String returns the config key of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps a config key back to a Kind
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// IsBoss returns true for boss variants
func (k Kind) IsBoss() bool {
	return k >= KindBossSpread && k <= KindBossSpiral
}

// IsSpecialist returns true for non-boss kinds with their own fire pattern
func (k Kind) IsSpecialist() bool {
	return k >= KindTripleShot && k <= KindSniper
}

// MovementMode is fixed at spawn
type MovementMode int

const (
	ModeFormation MovementMode = iota
	ModeFreeRoam
)

// Enemy is a single actor of the enemy roster
type Enemy struct {
	ID   EntityID
	Kind Kind
	Mode MovementMode

	// Visible position (center)
	X, Y float64
	// Formation anchor, moved only by formation stepping
	AnchorX, AnchorY float64
	W, H             float64

	HP, MaxHP int
	Alive     bool
	Frame     int // Animation phase toggled by each formation step

	// Formation wobble
	Phase      float64
	SpinRadius float64
	SpinSpeed  float64
	BobAmp     float64

	// Free-roam motion
	VX, VY      float64
	CurvePhase  float64
	CurveSpeed  float64
	CurveAmount float64

	// Generic fire roll multiplier (ignored when Pattern is set)
	FireRate float64
	Pattern  FirePattern
}

// NewFormationEnemy creates an enemy anchored to the formation grid
func NewFormationEnemy(id EntityID, kind Kind, x, y float64, hp int, w, h float64, rng *rand.Rand) *Enemy {
	e := newEnemy(id, kind, ModeFormation, x, y, hp, w, h, rng)
	e.AnchorX, e.AnchorY = x, y

	switch kind {
	case KindTank:
		e.SpinRadius = uniform(rng, 8, 22)
		e.SpinSpeed *= 0.7
	case KindFast:
		e.SpinRadius = uniform(rng, 2, 8)
		e.SpinSpeed *= 1.6
	}
	return e
}

// NewFreeRoamEnemy creates an enemy that integrates its own velocity
func NewFreeRoamEnemy(id EntityID, kind Kind, x, y, vx, vy float64, hp int, w, h float64, rng *rand.Rand) *Enemy {
	e := newEnemy(id, kind, ModeFreeRoam, x, y, hp, w, h, rng)
	e.VX, e.VY = vx, vy
	e.RandomizeCurve(rng)
	return e
}

func newEnemy(id EntityID, kind Kind, mode MovementMode, x, y float64, hp int, w, h float64, rng *rand.Rand) *Enemy {
	if hp < 1 {
		hp = 1
	}
	e := &Enemy{
		ID:         id,
		Kind:       kind,
		Mode:       mode,
		X:          x,
		Y:          y,
		W:          w,
		H:          h,
		HP:         hp,
		MaxHP:      hp,
		Alive:      true,
		FireRate:   1,
		Phase:      uniform(rng, 0, 2*math.Pi),
		SpinRadius: uniform(rng, 4, 18),
		SpinSpeed:  uniform(rng, 1, 3),
		BobAmp:     uniform(rng, 0, 4),
	}
	if kind == KindTank {
		e.SpinSpeed *= 0.6
	}
	return e
}

// RandomizeCurve rolls fresh lateral curve parameters
func (e *Enemy) RandomizeCurve(rng *rand.Rand) {
	e.CurvePhase = uniform(rng, 0, 2*math.Pi)
	e.CurveSpeed = uniform(rng, 0.4, 1.2)
	e.CurveAmount = uniform(rng, 8, 38)
}

// Update moves the enemy. elapsed is the wave's simulation clock.
func (e *Enemy) Update(dt, elapsed float64) {
	if !e.Alive {
		return
	}
	if e.Mode == ModeFormation {
		e.updateFormation(elapsed)
		return
	}
	e.updateFreeRoam(dt, elapsed)
}

// updateFormation derives the visible position from the anchor; nothing accumulates
func (e *Enemy) updateFormation(elapsed float64) {
	a := elapsed*e.SpinSpeed + e.Phase
	e.X = e.AnchorX + math.Cos(a)*e.SpinRadius
	e.Y = e.AnchorY + math.Sin(a)*e.SpinRadius*0.6 + e.bob(elapsed)
}

func (e *Enemy) bob(elapsed float64) float64 {
	switch e.Kind {
	case KindZigzag:
		return math.Sin(elapsed*2+e.Phase) * 6
	case KindTank:
		return math.Sin(elapsed*1.2+e.Phase) * 3
	default:
		return math.Sin(elapsed*1.6+e.Phase) * e.BobAmp
	}
}

func (e *Enemy) updateFreeRoam(dt, elapsed float64) {
	e.CurvePhase += e.CurveSpeed * dt
	curve := math.Sin(e.CurvePhase) * e.CurveAmount
	if e.Kind == KindFast {
		curve *= 0.5
	}

	e.X += e.VX*dt + curve*18*dt
	e.Y += e.VY * dt

	if e.Kind == KindZigzag {
		e.Y += math.Sin(elapsed*2+e.Phase) * 48 * dt
	}
}

// OutOfPlay reports whether a free-roam enemy drifted past the out-of-play buffer
func (e *Enemy) OutOfPlay(f Field) bool {
	return !f.Contains(e.X, e.Y, f.OutOfPlayBuffer)
}

// TakeDamage applies damage and returns true if this hit killed the enemy
func (e *Enemy) TakeDamage(damage int) bool {
	if !e.Alive || damage <= 0 {
		return false
	}
	e.HP -= damage
	if e.HP <= 0 {
		e.HP = 0
		e.Alive = false
		return true
	}
	return false
}

// IsBoss returns true if the enemy is a boss variant
func (e *Enemy) IsBoss() bool {
	return e.Kind.IsBoss()
}

// Shape returns the collision rectangle
func (e *Enemy) Shape() Shape {
	return Rect(e.X, e.Y, e.W, e.H)
}

// AnchorLeft returns the left edge of the anchor's bounding box
func (e *Enemy) AnchorLeft() float64 {
	return e.AnchorX - e.W/2
}

// AnchorRight returns the right edge of the anchor's bounding box
func (e *Enemy) AnchorRight() float64 {
	return e.AnchorX + e.W/2
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
