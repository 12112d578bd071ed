package entity

import "math"

// Owner identifies who fired a projectile
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Projectile is a bullet moving at constant velocity
type Projectile struct {
	X, Y   float64
	VX, VY float64 // Pixels per second
	Radius float64
	Damage int
	Owner  Owner
	Active bool
}

// NewProjectile creates a new projectile. Damage is clamped to at least 1.
func NewProjectile(x, y, vx, vy, radius float64, damage int, owner Owner) *Projectile {
	if damage < 1 {
		damage = 1
	}
	if radius < 0 {
		radius = 0
	}
	return &Projectile{
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Radius: radius,
		Damage: damage,
		Owner:  owner,
		Active: true,
	}
}

// NewAimedProjectile creates a projectile heading from (x, y) toward (targetX, targetY).
// The direction is fixed at creation.
func NewAimedProjectile(x, y, targetX, targetY, speed, radius float64, damage int, owner Owner) *Projectile {
	dx := targetX - x
	dy := targetY - y
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		// Degenerate aim falls straight down
		return NewProjectile(x, y, 0, speed, radius, damage, owner)
	}
	return NewProjectile(x, y, dx/dist*speed, dy/dist*speed, radius, damage, owner)
}

// Update moves the projectile along its velocity
func (p *Projectile) Update(dt float64) {
	if !p.Active {
		return
	}
	p.X += p.VX * dt
	p.Y += p.VY * dt
}

// IsPlayer returns true if the player fired this projectile
func (p *Projectile) IsPlayer() bool {
	return p.Owner == OwnerPlayer
}

// OffField reports whether the projectile left the field by more than the cull margin
func (p *Projectile) OffField(f Field) bool {
	return !f.Contains(p.X, p.Y, f.CullMargin)
}

// Shape returns the collision circle
func (p *Projectile) Shape() Shape {
	return Circle(p.X, p.Y, p.Radius)
}

// Deactivate marks the projectile as inactive. Safe to call more than once.
func (p *Projectile) Deactivate() {
	p.Active = false
}
