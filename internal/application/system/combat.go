package system

import (
	"math/rand"

	"github.com/solarlune/resolv"

	"github.com/younwookim/invaders/internal/domain/entity"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

const (
	tagEnemy  = "enemy"
	tagBullet = "bullet"
)

// CombatResult collects what a Resolve pass produced
type CombatResult struct {
	Score      int
	Kills      int
	Drops      []*entity.Pickup
	Effects    []*entity.Effect
	Outcomes   []entity.DamageOutcome // One per damage event against the player
	PlayerDied bool
}

// CombatSystem detects overlaps and applies damage once per frame
type CombatSystem struct {
	balance *config.BalanceConfig
	field   entity.Field
	rng     *rand.Rand

	// Event callbacks
	OnPlayerHit   func(outcome entity.DamageOutcome)
	OnEnemyKilled func(e *entity.Enemy)
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.GameConfig, rng *rand.Rand) *CombatSystem {
	return &CombatSystem{
		balance: cfg.Balance,
		field:   FieldFromConfig(cfg.Balance.Field),
		rng:     rng,
	}
}

// Resolve runs the collision passes in order: player bullets against enemies,
// enemy bullets against the player, enemy bodies against the player, pickups.
func (s *CombatSystem) Resolve(player *entity.Player, enemies []*entity.Enemy, projectiles []*entity.Projectile, pickups []*entity.Pickup) CombatResult {
	var res CombatResult

	s.resolvePlayerBullets(player, enemies, projectiles, &res)
	s.resolveEnemyBullets(player, projectiles, &res)
	s.resolveBodies(player, enemies, &res)
	s.resolvePickups(player, pickups)

	return res
}

// resolvePlayerBullets uses a resolv space as broadphase. Each bullet hits at
// most one enemy, the earliest in roster order.
func (s *CombatSystem) resolvePlayerBullets(player *entity.Player, enemies []*entity.Enemy, projectiles []*entity.Projectile, res *CombatResult) {
	buf := s.field.OutOfPlayBuffer
	cell := s.balance.Combat.BroadphaseCell
	space := resolv.NewSpace(int(s.field.Width+2*buf), int(s.field.Height+2*buf), cell, cell)

	objects := make([]*resolv.Object, len(enemies))
	for i, e := range enemies {
		if !e.Alive {
			continue
		}
		x, y, w, h := e.Shape().Bounds()
		obj := resolv.NewObject(x+buf, y+buf, w, h, tagEnemy)
		obj.Data = i
		space.Add(obj)
		objects[i] = obj
	}

	for _, b := range projectiles {
		if !b.Active || !b.IsPlayer() {
			continue
		}

		x, y, w, h := b.Shape().Bounds()
		probe := resolv.NewObject(x+buf, y+buf, w, h, tagBullet)
		space.Add(probe)

		target := -1
		if c := probe.Check(0, 0, tagEnemy); c != nil {
			for _, obj := range c.ObjectsByTags(tagEnemy) {
				idx := obj.Data.(int)
				e := enemies[idx]
				if !e.Alive || !entity.Overlaps(b.Shape(), e.Shape(), 0) {
					continue
				}
				if target < 0 || idx < target {
					target = idx
				}
			}
		}
		space.Remove(probe)

		if target < 0 {
			continue
		}

		b.Deactivate()
		e := enemies[target]
		if e.TakeDamage(b.Damage) {
			space.Remove(objects[target])
			s.onKill(player, e, res)
		}
	}
}

func (s *CombatSystem) onKill(player *entity.Player, e *entity.Enemy, res *CombatResult) {
	res.Kills++
	fb := s.balance.Feedback
	particles := fb.ExplosionParticles

	if e.IsBoss() {
		res.Score += s.balance.Score.Boss
		particles += fb.BossExtraParticles
	} else {
		res.Score += s.balance.Score.Kill
		player.AddKill()
		if s.rng.Float64() < s.balance.Buffs.DropChance {
			kind := entity.RandomPickupKind(s.rng)
			res.Drops = append(res.Drops, entity.NewPickup(e.X, e.Y, s.balance.Buffs.FallSpeed, s.balance.Buffs.Radius, kind))
		}
	}

	res.Effects = append(res.Effects, entity.NewEffect(entity.EffectExplosion, e.X, e.Y, particles, fb.ExplosionDuration))

	if s.OnEnemyKilled != nil {
		s.OnEnemyKilled(e)
	}
}

// resolveEnemyBullets consumes every enemy bullet touching the player,
// whatever the damage pipeline decides.
func (s *CombatSystem) resolveEnemyBullets(player *entity.Player, projectiles []*entity.Projectile, res *CombatResult) {
	if player.IsDead() {
		return
	}
	tol := s.balance.Combat.Tolerance

	for _, b := range projectiles {
		if !b.Active || b.IsPlayer() {
			continue
		}
		if !entity.Overlaps(b.Shape(), player.Shape(), tol) {
			continue
		}

		b.Deactivate()
		outcome := player.ApplyDamage(entity.DamageEvent{
			Amount:    b.Damage,
			SourceX:   b.X,
			SourceY:   b.Y,
			Knockback: s.balance.Combat.Knockback,
		}, s.field, s.rng)
		s.recordHit(player, outcome, res)

		if outcome == entity.DamageFatal {
			return
		}
	}
}

// resolveBodies applies at most one body collision per frame
func (s *CombatSystem) resolveBodies(player *entity.Player, enemies []*entity.Enemy, res *CombatResult) {
	if player.IsDead() {
		return
	}
	tol := s.balance.Combat.Tolerance

	for _, e := range enemies {
		if !e.Alive || !entity.Overlaps(player.Shape(), e.Shape(), tol) {
			continue
		}

		outcome := player.ApplyDamage(entity.DamageEvent{
			Amount:    s.balance.Combat.BodyDamage,
			SourceX:   e.X,
			SourceY:   e.Y,
			Knockback: s.balance.Combat.Knockback,
		}, s.field, s.rng)
		// Extra bump so the ship does not stay wedged in the enemy
		player.Push(e.X, e.Y, s.balance.Combat.BodyBump, s.field, s.rng)
		s.recordHit(player, outcome, res)
		return
	}
}

func (s *CombatSystem) recordHit(player *entity.Player, outcome entity.DamageOutcome, res *CombatResult) {
	res.Outcomes = append(res.Outcomes, outcome)
	if outcome == entity.DamageFatal {
		res.PlayerDied = true
	}
	if outcome != entity.DamageIgnored {
		fb := s.balance.Feedback
		res.Effects = append(res.Effects, entity.NewEffect(entity.EffectPlayerHit, player.X, player.Y, fb.HitParticles, fb.ExplosionDuration))
	}
	if s.OnPlayerHit != nil {
		s.OnPlayerHit(outcome)
	}
}

func (s *CombatSystem) resolvePickups(player *entity.Player, pickups []*entity.Pickup) {
	if player.IsDead() {
		return
	}
	for _, p := range pickups {
		if !p.Active || !entity.Overlaps(p.Shape(), player.Shape(), 0) {
			continue
		}
		p.Deactivate()
		player.ApplyPickup(p.Kind)
	}
}
