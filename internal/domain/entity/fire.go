package entity

import "math"

// FireContext carries what a fire pattern may aim at
type FireContext struct {
	TargetX, TargetY float64 // Player position at fire time
	Elapsed          float64 // Wave clock
	BulletRadius     float64
}

// FirePattern replaces the generic fire roll for bosses and specialists.
// Each pattern owns its cooldown.
type FirePattern interface {
	Tick(e *Enemy, dt float64, ctx FireContext) []*Projectile
}

// cycle advances a cooldown and reports whether it elapsed this tick.
// The remainder carries over so cadence does not depend on frame rate.
func cycle(cooldown *float64, dt, interval float64) bool {
	*cooldown -= dt
	if *cooldown > 0 {
		return false
	}
	*cooldown += interval
	if *cooldown <= 0 {
		// Long hitch: fire once, do not queue a backlog
		*cooldown = interval
	}
	return true
}

// SpreadPattern fires parallel downward shots from fixed x offsets
type SpreadPattern struct {
	Offsets  []float64
	Interval float64
	Speed    float64
	MuzzleY  float64 // Extra offset below the enemy's bottom edge
	cooldown float64
}

// NewBossSpreadPattern creates the default boss pattern: 3 shots every 0.8s
func NewBossSpreadPattern() *SpreadPattern {
	return &SpreadPattern{Offsets: []float64{-16, 0, 16}, Interval: 0.8, Speed: 252, MuzzleY: 6, cooldown: 0.8}
}

// NewTripleSpreadPattern creates the triple-shot specialist pattern
func NewTripleSpreadPattern() *SpreadPattern {
	return &SpreadPattern{Offsets: []float64{-4.8, 0, 4.8}, Interval: 1.1, Speed: 252, cooldown: 1.1}
}

func (p *SpreadPattern) Tick(e *Enemy, dt float64, ctx FireContext) []*Projectile {
	if !cycle(&p.cooldown, dt, p.Interval) {
		return nil
	}
	shots := make([]*Projectile, 0, len(p.Offsets))
	for _, off := range p.Offsets {
		shots = append(shots, NewProjectile(e.X+off, e.Y+e.H/2+p.MuzzleY, 0, p.Speed, ctx.BulletRadius, 1, OwnerEnemy))
	}
	return shots
}

// RadialPattern fires Count bullets evenly spaced around a rotating angle
type RadialPattern struct {
	Count      int
	Interval   float64
	SpinSpeed  float64 // Radians per second
	Speed      float64
	Jitter     float64 // Amplitude of the phase wobble, 0 for none
	JitterFreq float64
	angle      float64
	cooldown   float64
}

// NewRadialPattern creates a radial burst boss pattern
func NewRadialPattern(count int, interval, spinSpeed, speed float64) *RadialPattern {
	if count < 1 {
		count = 1
	}
	return &RadialPattern{Count: count, Interval: interval, SpinSpeed: spinSpeed, Speed: speed, cooldown: interval}
}

// NewSpiralPattern creates a radial burst with fewer bullets, faster spin and phase jitter
func NewSpiralPattern() *RadialPattern {
	p := NewRadialPattern(4, 0.35, 2.0, 228)
	p.Jitter = 0.12
	p.JitterFreq = 1.3
	return p
}

// Angle returns the current rotation
func (p *RadialPattern) Angle() float64 {
	return p.angle
}

func (p *RadialPattern) Tick(e *Enemy, dt float64, ctx FireContext) []*Projectile {
	p.angle += p.SpinSpeed * dt
	if !cycle(&p.cooldown, dt, p.Interval) {
		return nil
	}

	jitter := 0.0
	if p.Jitter != 0 {
		jitter = math.Sin(ctx.Elapsed*p.JitterFreq) * p.Jitter
	}

	shots := make([]*Projectile, 0, p.Count)
	step := 2 * math.Pi / float64(p.Count)
	for i := 0; i < p.Count; i++ {
		a := p.angle + float64(i)*step + jitter
		shots = append(shots, NewProjectile(e.X, e.Y+e.H/2, math.Cos(a)*p.Speed, math.Sin(a)*p.Speed, ctx.BulletRadius, 1, OwnerEnemy))
	}
	return shots
}

// TwinPattern fires two synchronized bullets outward from opposite offsets
type TwinPattern struct {
	Interval float64
	Speed    float64
	Offset   float64
	Vertical bool // false: left/right, true: up/down
	cooldown float64
}

// NewTwinPattern creates a twin lateral boss pattern
func NewTwinPattern(vertical bool) *TwinPattern {
	return &TwinPattern{Interval: 0.55, Speed: 252, Offset: 12, Vertical: vertical, cooldown: 0.55}
}

func (p *TwinPattern) Tick(e *Enemy, dt float64, ctx FireContext) []*Projectile {
	if !cycle(&p.cooldown, dt, p.Interval) {
		return nil
	}
	if p.Vertical {
		return []*Projectile{
			NewProjectile(e.X, e.Y-p.Offset, 0, -p.Speed, ctx.BulletRadius, 1, OwnerEnemy),
			NewProjectile(e.X, e.Y+p.Offset, 0, p.Speed, ctx.BulletRadius, 1, OwnerEnemy),
		}
	}
	return []*Projectile{
		NewProjectile(e.X-p.Offset, e.Y, -p.Speed, 0, ctx.BulletRadius, 1, OwnerEnemy),
		NewProjectile(e.X+p.Offset, e.Y, p.Speed, 0, ctx.BulletRadius, 1, OwnerEnemy),
	}
}

// DiagonalPattern fires a left/right diagonal pair
type DiagonalPattern struct {
	Interval float64
	VX, VY   float64
	cooldown float64
}

// NewDiagonalPattern creates the diagonal specialist pattern
func NewDiagonalPattern() *DiagonalPattern {
	return &DiagonalPattern{Interval: 1.3, VX: 132, VY: 180, cooldown: 1.3}
}

func (p *DiagonalPattern) Tick(e *Enemy, dt float64, ctx FireContext) []*Projectile {
	if !cycle(&p.cooldown, dt, p.Interval) {
		return nil
	}
	return []*Projectile{
		NewProjectile(e.X, e.Y, p.VX, p.VY, ctx.BulletRadius, 1, OwnerEnemy),
		NewProjectile(e.X, e.Y, -p.VX, p.VY, ctx.BulletRadius, 1, OwnerEnemy),
	}
}

// BurstPattern fires Shots bullets Gap apart, then pauses
type BurstPattern struct {
	Shots    int
	Gap      float64
	Pause    float64
	Speed    float64
	fired    int
	cooldown float64
}

// NewBurstPattern creates the burst-of-5-then-pause specialist pattern
func NewBurstPattern() *BurstPattern {
	return &BurstPattern{Shots: 5, Gap: 0.12, Pause: 2.2, Speed: 330, cooldown: 2.2}
}

func (p *BurstPattern) Tick(e *Enemy, dt float64, ctx FireContext) []*Projectile {
	interval := p.Gap
	if p.fired == p.Shots-1 {
		interval = p.Pause
	}
	if !cycle(&p.cooldown, dt, interval) {
		return nil
	}
	p.fired = (p.fired + 1) % p.Shots
	return []*Projectile{NewProjectile(e.X, e.Y, 0, p.Speed, ctx.BulletRadius, 1, OwnerEnemy)}
}

// HomingPattern fires one shot at the player's position at fire time
type HomingPattern struct {
	Interval float64
	Speed    float64
	cooldown float64
}

// NewHomingPattern creates the sniper specialist pattern
func NewHomingPattern() *HomingPattern {
	return &HomingPattern{Interval: 2.0, Speed: 390, cooldown: 2.0}
}

func (p *HomingPattern) Tick(e *Enemy, dt float64, ctx FireContext) []*Projectile {
	if !cycle(&p.cooldown, dt, p.Interval) {
		return nil
	}
	return []*Projectile{NewAimedProjectile(e.X, e.Y, ctx.TargetX, ctx.TargetY, p.Speed, ctx.BulletRadius, 1, OwnerEnemy)}
}

// PatternFor returns the fire pattern of a kind, or nil for generic shooters.
// variant distinguishes repeat appearances of the same boss kind.
func PatternFor(kind Kind, variant int) FirePattern {
	switch kind {
	case KindBossSpread:
		return NewBossSpreadPattern()
	case KindBossRadial:
		return NewRadialPattern(8, 0.9, 0.9, 204)
	case KindBossTwin:
		return NewTwinPattern(variant%2 == 1)
	case KindBossSpiral:
		return NewSpiralPattern()
	case KindTripleShot:
		return NewTripleSpreadPattern()
	case KindDiagonal:
		return NewDiagonalPattern()
	case KindBurst:
		return NewBurstPattern()
	case KindSniper:
		return NewHomingPattern()
	default:
		return nil
	}
}
