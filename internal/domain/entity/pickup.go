package entity

import "math/rand"

// PickupKind is the buff a pickup grants
type PickupKind int

const (
	PickupRapidFire PickupKind = iota
	PickupShield
	PickupHeal
)

var pickupKinds = []PickupKind{PickupRapidFire, PickupShield, PickupHeal}

// String returns the pickup name
func (k PickupKind) String() string {
	switch k {
	case PickupRapidFire:
		return "rapid-fire"
	case PickupShield:
		return "shield"
	case PickupHeal:
		return "heal"
	default:
		return "unknown"
	}
}

// RandomPickupKind picks a kind uniformly
func RandomPickupKind(rng *rand.Rand) PickupKind {
	return pickupKinds[rng.Intn(len(pickupKinds))]
}

// Pickup is a falling buff dropped by a destroyed enemy
type Pickup struct {
	X, Y   float64
	VY     float64
	Radius float64
	Kind   PickupKind
	Active bool
}

// NewPickup creates a new pickup
func NewPickup(x, y, fallSpeed, radius float64, kind PickupKind) *Pickup {
	return &Pickup{
		X:      x,
		Y:      y,
		VY:     fallSpeed,
		Radius: radius,
		Kind:   kind,
		Active: true,
	}
}

// Update moves the pickup down
func (p *Pickup) Update(dt float64) {
	if !p.Active {
		return
	}
	p.Y += p.VY * dt
}

// OffField reports whether the pickup fell past the bottom cull line
func (p *Pickup) OffField(f Field) bool {
	return p.Y > f.Height+f.CullMargin
}

// Shape returns the collision circle
func (p *Pickup) Shape() Shape {
	return Circle(p.X, p.Y, p.Radius)
}

// Deactivate removes the pickup from play
func (p *Pickup) Deactivate() {
	p.Active = false
}
