package system

import (
	"math/rand"

	"github.com/younwookim/invaders/internal/domain/entity"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

// FieldFromConfig converts field config into the entity field
func FieldFromConfig(cfg config.FieldConfig) entity.Field {
	return entity.Field{
		Width:           cfg.Width,
		Height:          cfg.Height,
		SideMargin:      cfg.SideMargin,
		OutOfPlayBuffer: cfg.OutOfPlayBuffer,
		CullMargin:      cfg.CullMargin,
	}
}

// PlayerStatsFromConfig collects the player tuning spread across balance config
func PlayerStatsFromConfig(cfg *config.BalanceConfig) entity.PlayerStats {
	return entity.PlayerStats{
		Radius:        cfg.Player.Radius,
		Speed:         cfg.Player.Speed,
		MaxHP:         cfg.Player.MaxHP,
		FireDelay:     cfg.Player.FireDelay,
		MinFireDelay:  cfg.Player.MinFireDelay,
		BulletSpeed:   cfg.Player.BulletSpeed,
		BulletRadius:  cfg.Player.BulletRadius,
		BulletDamage:  cfg.Player.BulletDamage,
		SpreadOffsets: cfg.Player.SpreadOffsets,

		Invincibility: cfg.Combat.Invincibility,
		HitFlash:      cfg.Combat.HitFlash,

		RapidFireDuration: cfg.Buffs.RapidFireDuration,
		ShieldDuration:    cfg.Buffs.ShieldDuration,
		ShieldCharges:     cfg.Buffs.ShieldCharges,
		HealAmount:        cfg.Buffs.HealAmount,

		UltimateThreshold:   cfg.Ultimate.Threshold,
		UltimateDuration:    cfg.Ultimate.Duration,
		UltimateFireDelay:   cfg.Ultimate.FireDelay,
		UltimateOffsets:     cfg.Ultimate.Offsets,
		UltimateBulletSpeed: cfg.Ultimate.BulletSpeed,
		UltimateDamage:      cfg.Ultimate.Damage,
	}
}

// HUD is the scalar snapshot the renderer shows
type HUD struct {
	Score              int
	Wave               int
	HP, MaxHP          int
	ShieldCharges      int
	ShieldRemaining    float64
	RapidFireRemaining float64
	UltimateCharge     int
	UltimateThreshold  int
	UltimateReady      bool
	UltimateRemaining  float64
	Invincible         bool
	EnemiesAlive       int
}

// StepResult reports what happened during one Step
type StepResult struct {
	Kills       int
	Outcomes    []entity.DamageOutcome
	PlayerDied  bool
	WaveCleared bool // Set only on the frame the wave became clear
}

// Simulation owns every live entity and runs one frame at a time
type Simulation struct {
	cfg    *config.GameConfig
	field  entity.Field
	rng    *rand.Rand
	player *entity.Player
	waves  *WaveManager
	combat *CombatSystem

	enemies     []*entity.Enemy
	projectiles []*entity.Projectile
	pickups     []*entity.Pickup
	effects     []*entity.Effect

	score   int
	cleared bool
}

// NewSimulation creates a simulation. Call Start before stepping.
func NewSimulation(cfg *config.GameConfig, rng *rand.Rand) *Simulation {
	b := cfg.Balance
	return &Simulation{
		cfg:    cfg,
		field:  FieldFromConfig(b.Field),
		rng:    rng,
		player: entity.NewPlayer(PlayerStatsFromConfig(b), b.Player.StartX, b.Player.StartY),
		waves:  NewWaveManager(cfg, rng),
		combat: NewCombatSystem(cfg, rng),
	}
}

// Start resets the session and spawns wave 1
func (s *Simulation) Start() {
	b := s.cfg.Balance
	s.player.Reset(b.Player.StartX, b.Player.StartY)
	s.score = 0
	s.spawn(1)
}

// NextWave regenerates the roster for the following wave.
// Live projectiles, pickups and effects are discarded.
func (s *Simulation) NextWave() {
	s.spawn(s.waves.Wave() + 1)
}

func (s *Simulation) spawn(wave int) {
	s.enemies = s.waves.SpawnWave(wave, s.player.X, s.player.Y)
	s.projectiles = make([]*entity.Projectile, 0, 64)
	s.pickups = make([]*entity.Pickup, 0, 8)
	s.effects = make([]*entity.Effect, 0, 16)
	s.cleared = false
}

// Step advances the simulation by dt seconds
func (s *Simulation) Step(dt float64, intents []Intent) StepResult {
	if dt < 0 {
		dt = 0
	}
	var res StepResult

	// Player timers and commands
	s.player.Tick(dt)
	s.applyIntents(dt, intents)
	s.projectiles = append(s.projectiles, s.player.UltimateVolley()...)

	// Enemies move and fire
	s.projectiles = append(s.projectiles, s.waves.Advance(dt, s.enemies, s.player.X, s.player.Y)...)

	// Integrate and cull
	for _, p := range s.projectiles {
		p.Update(dt)
		if p.OffField(s.field) {
			p.Deactivate()
		}
	}
	for _, p := range s.pickups {
		p.Update(dt)
		if p.OffField(s.field) {
			p.Deactivate()
		}
	}
	for _, e := range s.effects {
		e.Update(dt)
	}

	// Collisions
	cr := s.combat.Resolve(s.player, s.enemies, s.projectiles, s.pickups)
	s.score += cr.Score
	s.pickups = append(s.pickups, cr.Drops...)
	s.effects = append(s.effects, cr.Effects...)
	res.Kills = cr.Kills
	res.Outcomes = cr.Outcomes
	res.PlayerDied = cr.PlayerDied

	s.compact()

	if !s.cleared && s.WaveCleared() {
		s.cleared = true
		s.score += s.cfg.Balance.Score.WaveClear
		res.WaveCleared = true
	}
	return res
}

func (s *Simulation) applyIntents(dt float64, intents []Intent) {
	if s.player.IsDead() {
		return
	}
	for _, intent := range intents {
		switch in := intent.(type) {
		case MoveToIntent:
			s.player.MoveTo(in.X, in.Y, s.field)
		case MoveByIntent:
			s.player.MoveBy(in.DX, in.DY, dt, s.field)
		case FireIntent:
			s.projectiles = append(s.projectiles, s.player.RequestFire()...)
		case UltimateIntent:
			s.player.ActivateUltimate()
		}
	}
}

// compact drops consumed projectiles, pickups and finished effects
func (s *Simulation) compact() {
	projectiles := s.projectiles[:0]
	for _, p := range s.projectiles {
		if p.Active {
			projectiles = append(projectiles, p)
		}
	}
	s.projectiles = projectiles

	pickups := s.pickups[:0]
	for _, p := range s.pickups {
		if p.Active {
			pickups = append(pickups, p)
		}
	}
	s.pickups = pickups

	effects := s.effects[:0]
	for _, e := range s.effects {
		if !e.Done() {
			effects = append(effects, e)
		}
	}
	s.effects = effects
}

// WaveCleared returns true when no enemy of the current wave is alive
func (s *Simulation) WaveCleared() bool {
	return s.EnemiesAlive() == 0
}

// EnemiesAlive counts living enemies
func (s *Simulation) EnemiesAlive() int {
	n := 0
	for _, e := range s.enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// SpendScore deducts amount if the score covers it
func (s *Simulation) SpendScore(amount int) bool {
	if amount < 0 || s.score < amount {
		return false
	}
	s.score -= amount
	return true
}

// HUD returns the scalar state for rendering
func (s *Simulation) HUD() HUD {
	p := s.player
	return HUD{
		Score:              s.score,
		Wave:               s.waves.Wave(),
		HP:                 p.HP,
		MaxHP:              p.MaxHP,
		ShieldCharges:      p.ShieldCharges,
		ShieldRemaining:    p.ShieldRemaining(),
		RapidFireRemaining: p.RapidFireRemaining(),
		UltimateCharge:     p.UltimateCharge,
		UltimateThreshold:  p.Stats().UltimateThreshold,
		UltimateReady:      p.UltimateReady(),
		UltimateRemaining:  p.UltimateRemaining(),
		Invincible:         p.IsInvincible(),
		EnemiesAlive:       s.EnemiesAlive(),
	}
}

// Player returns the player
func (s *Simulation) Player() *entity.Player { return s.player }

// Enemies returns the current roster, dead actors included
func (s *Simulation) Enemies() []*entity.Enemy { return s.enemies }

// Projectiles returns live projectiles
func (s *Simulation) Projectiles() []*entity.Projectile { return s.projectiles }

// Pickups returns live pickups
func (s *Simulation) Pickups() []*entity.Pickup { return s.pickups }

// Effects returns active cosmetic effects
func (s *Simulation) Effects() []*entity.Effect { return s.effects }

// Score returns the current score
func (s *Simulation) Score() int { return s.score }

// Field returns the playfield
func (s *Simulation) Field() entity.Field { return s.field }

// Combat exposes the combat system so the shell can hook its callbacks
func (s *Simulation) Combat() *CombatSystem { return s.combat }
