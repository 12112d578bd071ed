package entity

import (
	"math"
	"math/rand"
)

// PlayerStats holds the tuning a Player is built from
type PlayerStats struct {
	Radius        float64
	Speed         float64
	MaxHP         int
	FireDelay     float64
	MinFireDelay  float64
	BulletSpeed   float64
	BulletRadius  float64
	BulletDamage  int
	SpreadOffsets []float64

	Invincibility float64
	HitFlash      float64

	RapidFireDuration float64
	ShieldDuration    float64
	ShieldCharges     int
	HealAmount        int

	UltimateThreshold   int
	UltimateDuration    float64
	UltimateFireDelay   float64
	UltimateOffsets     []float64
	UltimateBulletSpeed float64
	UltimateDamage      int
}

// DamageOutcome reports which branch of the damage pipeline handled an event
type DamageOutcome int

const (
	DamageIgnored  DamageOutcome = iota // Invincibility window, feedback only
	DamageAbsorbed                      // Shield took the hit
	DamageTaken                         // HP lost
	DamageFatal                         // HP reached zero
)

// String returns the outcome name
func (o DamageOutcome) String() string {
	switch o {
	case DamageIgnored:
		return "ignored"
	case DamageAbsorbed:
		return "absorbed"
	case DamageTaken:
		return "taken"
	case DamageFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// DamageEvent is a single hit against the player
type DamageEvent struct {
	Amount           int
	SourceX, SourceY float64
	Knockback        float64
}

// Player is the player ship. All timers are remaining durations in seconds.
type Player struct {
	X, Y   float64
	Radius float64

	HP, MaxHP int
	FireDelay float64

	ShieldCharges  int
	UltimateCharge int

	fireCooldown     float64
	shieldTimer      float64
	rapidFireTimer   float64
	invincibleTimer  float64
	hitFlashTimer    float64
	ultimateReady    bool
	ultimateTimer    float64
	ultimateCooldown float64

	stats PlayerStats
}

// NewPlayer creates a player at full health
func NewPlayer(stats PlayerStats, x, y float64) *Player {
	p := &Player{stats: stats}
	p.Reset(x, y)
	return p
}

// Reset restores the player to its starting state
func (p *Player) Reset(x, y float64) {
	*p = Player{
		X:         x,
		Y:         y,
		Radius:    p.stats.Radius,
		HP:        p.stats.MaxHP,
		MaxHP:     p.stats.MaxHP,
		FireDelay: p.stats.FireDelay,
		stats:     p.stats,
	}
}

// Stats returns the tuning the player was built from
func (p *Player) Stats() PlayerStats {
	return p.stats
}

// Tick advances every timer and expires the windows that ran out
func (p *Player) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	p.fireCooldown = tickDown(p.fireCooldown, dt)
	p.rapidFireTimer = tickDown(p.rapidFireTimer, dt)
	p.invincibleTimer = tickDown(p.invincibleTimer, dt)
	p.hitFlashTimer = tickDown(p.hitFlashTimer, dt)

	p.shieldTimer = tickDown(p.shieldTimer, dt)
	if p.shieldTimer == 0 {
		p.ShieldCharges = 0
	}

	if p.ultimateTimer > 0 {
		p.ultimateTimer = tickDown(p.ultimateTimer, dt)
		p.ultimateCooldown = tickDown(p.ultimateCooldown, dt)
	}
}

// MoveTo moves the player to an absolute target, clamped to the field
func (p *Player) MoveTo(x, y float64, f Field) {
	p.X, p.Y = f.ClampCircle(x, y, p.Radius)
}

// MoveBy moves the player along a direction (components in [-1, 1]) at its speed
func (p *Player) MoveBy(dirX, dirY, dt float64, f Field) {
	dirX = clamp(dirX, -1, 1)
	dirY = clamp(dirY, -1, 1)
	p.MoveTo(p.X+dirX*p.stats.Speed*dt, p.Y+dirY*p.stats.Speed*dt, f)
}

// RequestFire fires the normal weapon if the cooldown elapsed.
// Returns nil while the ultimate is active, since it has its own cadence.
func (p *Player) RequestFire() []*Projectile {
	if p.IsDead() || p.UltimateActive() || p.fireCooldown > 0 {
		return nil
	}
	p.fireCooldown = p.FireDelay

	if !p.RapidFireActive() {
		return []*Projectile{p.bullet(0, p.Radius+6, p.stats.BulletSpeed, p.stats.BulletDamage)}
	}
	shots := make([]*Projectile, 0, len(p.stats.SpreadOffsets))
	for _, off := range p.stats.SpreadOffsets {
		shots = append(shots, p.bullet(off, p.Radius+4, p.stats.BulletSpeed, p.stats.BulletDamage))
	}
	return shots
}

// UltimateVolley fires the heavy spread when the ultimate is active and its cadence elapsed
func (p *Player) UltimateVolley() []*Projectile {
	if p.IsDead() || !p.UltimateActive() || p.ultimateCooldown > 0 {
		return nil
	}
	p.ultimateCooldown = p.stats.UltimateFireDelay

	shots := make([]*Projectile, 0, len(p.stats.UltimateOffsets))
	for _, off := range p.stats.UltimateOffsets {
		shots = append(shots, p.bullet(off, p.Radius+6, p.stats.UltimateBulletSpeed, p.stats.UltimateDamage))
	}
	return shots
}

func (p *Player) bullet(offsetX, above, speed float64, damage int) *Projectile {
	return NewProjectile(p.X+offsetX, p.Y-above, 0, -speed, p.stats.BulletRadius, damage, OwnerPlayer)
}

// AddKill charges the ultimate. Kills during an active ultimate do not count.
func (p *Player) AddKill() {
	if p.UltimateActive() {
		return
	}
	if p.UltimateCharge < p.stats.UltimateThreshold {
		p.UltimateCharge++
	}
	if p.UltimateCharge >= p.stats.UltimateThreshold {
		p.ultimateReady = true
	}
}

// ActivateUltimate starts the ultimate window. No-op unless ready.
func (p *Player) ActivateUltimate() bool {
	if !p.ultimateReady || p.UltimateActive() || p.IsDead() {
		return false
	}
	p.UltimateCharge = 0
	p.ultimateReady = false
	p.ultimateTimer = p.stats.UltimateDuration
	p.ultimateCooldown = 0
	return true
}

// ApplyDamage runs the damage pipeline: invincibility, then shield, then hp.
func (p *Player) ApplyDamage(ev DamageEvent, f Field, rng *rand.Rand) DamageOutcome {
	amount := ev.Amount
	if amount < 0 {
		amount = 0
	}
	p.hitFlashTimer = p.stats.HitFlash

	if p.IsDead() || p.IsInvincible() {
		return DamageIgnored
	}

	if p.ShieldActive() {
		p.ShieldCharges -= amount
		if p.ShieldCharges <= 0 {
			p.ShieldCharges = 0
			p.shieldTimer = 0
		}
		p.invincibleTimer = p.stats.Invincibility
		p.knockback(ev, f, rng)
		return DamageAbsorbed
	}

	p.HP -= amount
	if p.HP < 0 {
		p.HP = 0
	}
	p.invincibleTimer = p.stats.Invincibility
	p.knockback(ev, f, rng)
	if p.HP == 0 {
		return DamageFatal
	}
	return DamageTaken
}

// knockback pushes the player away from the damage source
func (p *Player) knockback(ev DamageEvent, f Field, rng *rand.Rand) {
	p.Push(ev.SourceX, ev.SourceY, ev.Knockback, f, rng)
}

// Push displaces the player distance pixels away from (srcX, srcY).
// A source on top of the player pushes in a random direction.
func (p *Player) Push(srcX, srcY, distance float64, f Field, rng *rand.Rand) {
	if distance <= 0 {
		return
	}
	dx := p.X - srcX
	dy := p.Y - srcY
	d := math.Hypot(dx, dy)
	if d == 0 {
		a := rng.Float64() * 2 * math.Pi
		dx, dy, d = math.Cos(a), math.Sin(a), 1
	}
	p.MoveTo(p.X+dx/d*distance, p.Y+dy/d*distance, f)
}

// ApplyPickup grants a pickup's effect
func (p *Player) ApplyPickup(kind PickupKind) {
	switch kind {
	case PickupRapidFire:
		p.rapidFireTimer = p.stats.RapidFireDuration
	case PickupShield:
		p.ShieldCharges = p.stats.ShieldCharges
		p.shieldTimer = p.stats.ShieldDuration
	case PickupHeal:
		p.Heal(p.stats.HealAmount)
	}
}

// Heal restores hp, capped at MaxHP
func (p *Player) Heal(amount int) {
	if amount <= 0 {
		return
	}
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// ReduceFireDelay shortens the fire delay by step, floor-clamped
func (p *Player) ReduceFireDelay(step float64) {
	if step < 0 {
		step = 0
	}
	p.FireDelay -= step
	if p.FireDelay < p.stats.MinFireDelay {
		p.FireDelay = p.stats.MinFireDelay
	}
}

// IncreaseMaxHP raises MaxHP and HP by one
func (p *Player) IncreaseMaxHP() {
	p.MaxHP++
	p.HP++
}

// FullHeal restores HP to MaxHP
func (p *Player) FullHeal() {
	p.HP = p.MaxHP
}

// Shape returns the collision circle
func (p *Player) Shape() Shape {
	return Circle(p.X, p.Y, p.Radius)
}

// IsDead returns true once hp reached zero
func (p *Player) IsDead() bool {
	return p.HP <= 0
}

// IsInvincible returns true during the post-hit window
func (p *Player) IsInvincible() bool {
	return p.invincibleTimer > 0
}

// HitFlashActive returns true while the hit feedback should be shown
func (p *Player) HitFlashActive() bool {
	return p.hitFlashTimer > 0
}

// ShieldActive returns true while the shield has charges and time left
func (p *Player) ShieldActive() bool {
	return p.ShieldCharges > 0 && p.shieldTimer > 0
}

// ShieldRemaining returns the shield's remaining time
func (p *Player) ShieldRemaining() float64 {
	if !p.ShieldActive() {
		return 0
	}
	return p.shieldTimer
}

// RapidFireActive returns true while the spread buff lasts
func (p *Player) RapidFireActive() bool {
	return p.rapidFireTimer > 0
}

// RapidFireRemaining returns the buff's remaining time
func (p *Player) RapidFireRemaining() float64 {
	return p.rapidFireTimer
}

// InvincibleRemaining returns the invincibility window's remaining time
func (p *Player) InvincibleRemaining() float64 {
	return p.invincibleTimer
}

// UltimateReady returns true when the ultimate can be activated
func (p *Player) UltimateReady() bool {
	return p.ultimateReady
}

// UltimateActive returns true during the ultimate window
func (p *Player) UltimateActive() bool {
	return p.ultimateTimer > 0
}

// UltimateRemaining returns the ultimate window's remaining time
func (p *Player) UltimateRemaining() float64 {
	return p.ultimateTimer
}
