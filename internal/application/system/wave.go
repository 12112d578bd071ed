package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/invaders/internal/domain/entity"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

// Dynamic entry geometry (pixels, pixels per second)
const (
	entryInset     = 40.0  // Distance from the edges entry points keep
	entrySideTop   = 60.0  // Highest side entry
	entrySideFloor = 220.0 // Side entries stay this far above the bottom
)

var specialistKinds = []entity.Kind{
	entity.KindTripleShot,
	entity.KindDiagonal,
	entity.KindBurst,
	entity.KindSniper,
}

var dynamicKinds = []entity.Kind{
	entity.KindBasic,
	entity.KindFast,
	entity.KindZigzag,
	entity.KindTank,
}

// WaveManager builds each wave's roster and advances it every frame
type WaveManager struct {
	cfg          *config.WaveConfig
	field        entity.Field
	bulletSpeed  float64
	bulletRadius float64
	rng          *rand.Rand

	nextID    entity.EntityID
	wave      int
	elapsed   float64 // Wave clock
	stepAccum float64
	direction float64 // +1 right, -1 left
}

// NewWaveManager creates a wave manager
func NewWaveManager(cfg *config.GameConfig, rng *rand.Rand) *WaveManager {
	return &WaveManager{
		cfg:          cfg.Waves,
		field:        FieldFromConfig(cfg.Balance.Field),
		bulletSpeed:  cfg.Balance.Combat.EnemyBulletSpeed,
		bulletRadius: cfg.Balance.Combat.EnemyBulletRadius,
		rng:          rng,
		direction:    1,
	}
}

// Wave returns the index of the last spawned wave
func (m *WaveManager) Wave() int {
	return m.wave
}

// Elapsed returns the wave clock
func (m *WaveManager) Elapsed() float64 {
	return m.elapsed
}

// Direction returns the formation's horizontal march direction
func (m *WaveManager) Direction() float64 {
	return m.direction
}

// StepInterval returns the seconds between formation steps for a wave
func (m *WaveManager) StepInterval(wave int) float64 {
	return m.cfg.StepInterval.At(wave)
}

// MarchSpeed returns the formation's horizontal speed in px/s for a wave
func (m *WaveManager) MarchSpeed(wave int) float64 {
	return m.cfg.MarchSpeed.At(wave)
}

// StepSize is the distance one formation step covers
func (m *WaveManager) StepSize(wave int) float64 {
	return m.MarchSpeed(wave) * m.StepInterval(wave)
}

// FireProbability returns the per-1/60s generic fire chance for a wave
func (m *WaveManager) FireProbability(wave int) float64 {
	return m.cfg.FireProb.At(wave)
}

// Counts returns the formation and dynamic group sizes of a wave
func (m *WaveManager) Counts(wave int) (formation, dynamic int) {
	total := m.cfg.BaseEnemies + wave
	if total < 0 {
		total = 0
	}
	formation = total / 3
	if formation > m.cfg.FormationMax {
		formation = m.cfg.FormationMax
	}
	return formation, total - formation
}

// SpawnWave builds a fresh roster for the wave. Dynamic entries avoid the
// player's position on a best-effort basis.
func (m *WaveManager) SpawnWave(wave int, playerX, playerY float64) []*entity.Enemy {
	m.wave = wave
	m.elapsed = 0
	m.stepAccum = 0
	m.direction = 1

	formationCount, dynamicCount := m.Counts(wave)
	enemies := make([]*entity.Enemy, 0, formationCount+dynamicCount+1)

	boss := m.cfg.Boss.IsBossWave(wave)
	rowY := m.cfg.FormationY
	if boss {
		rowY += m.cfg.Boss.RowOffset
	}

	if formationCount > 0 {
		startX := math.Max(m.cfg.FormationMinX, m.field.Width/2-float64(formationCount/2)*m.cfg.FormationSpacing)
		for i := 0; i < formationCount; i++ {
			kind := m.rollFormationKind(wave)
			x := startX + float64(i)*m.cfg.FormationSpacing
			enemies = append(enemies, m.newFormationEnemy(kind, x, rowY, wave, 0))
		}
	}

	for i := 0; i < dynamicCount; i++ {
		enemies = append(enemies, m.newDynamicEnemy(playerX, playerY))
	}

	if boss {
		enemies = append(enemies, m.newBoss(wave))
	}

	// Place formation actors at their wobble positions before the first frame
	for _, e := range enemies {
		if e.Mode == entity.ModeFormation {
			e.Update(0, 0)
		}
	}
	return enemies
}

func (m *WaveManager) rollFormationKind(wave int) entity.Kind {
	if wave >= m.cfg.SpecialistFromWave && m.rng.Float64() < m.cfg.SpecialistChance {
		return specialistKinds[m.rng.Intn(len(specialistKinds))]
	}
	t := m.rng.Float64()
	switch {
	case t < 0.62:
		return entity.KindBasic
	case t < 0.82:
		return entity.KindFast
	case t < 0.94:
		return entity.KindZigzag
	default:
		return entity.KindTank
	}
}

func (m *WaveManager) kindConfig(kind entity.Kind) config.EnemyKindConfig {
	if kc, ok := m.cfg.Enemies[kind.String()]; ok {
		return kc
	}
	return m.cfg.Enemies["basic"]
}

func (m *WaveManager) id() entity.EntityID {
	m.nextID++
	return m.nextID
}

func (m *WaveManager) newFormationEnemy(kind entity.Kind, x, y float64, wave, variant int) *entity.Enemy {
	kc := m.kindConfig(kind)
	hp := kc.HP
	if kc.HPWaveDivisor > 0 {
		hp += wave / kc.HPWaveDivisor
	}
	e := entity.NewFormationEnemy(m.id(), kind, x, y, hp, kc.Width, kc.Height, m.rng)
	m.equip(e, kc, variant)
	return e
}

func (m *WaveManager) newBoss(wave int) *entity.Enemy {
	idx := wave/m.cfg.Boss.Every - 1
	variants := m.cfg.Boss.Variants
	kind, ok := entity.ParseKind(variants[idx%len(variants)])
	if !ok || !kind.IsBoss() {
		kind = entity.KindBossSpread
	}

	e := m.newFormationEnemy(kind, m.field.Width/2, m.cfg.Boss.Y, wave, idx/len(variants))
	e.HP = m.cfg.Boss.HPAt(wave)
	e.MaxHP = e.HP
	return e
}

func (m *WaveManager) newDynamicEnemy(playerX, playerY float64) *entity.Enemy {
	kind := dynamicKinds[m.rng.Intn(len(dynamicKinds))]
	kc := m.kindConfig(kind)

	side := entrySide(m.rng.Intn(3))
	var x, y, vx, vy float64
	for attempt := 0; attempt < m.cfg.SpawnAttempts; attempt++ {
		x, y, vx, vy = m.sideEntry(side)
		if math.Hypot(x-playerX, y-playerY) > m.cfg.SpawnClearance {
			break
		}
	}
	// Out of attempts: the last candidate stands

	e := entity.NewFreeRoamEnemy(m.id(), kind, x, y, vx, vy, kc.HP, kc.Width, kc.Height, m.rng)
	switch kind {
	case entity.KindFast:
		e.VX *= 1.2
		e.VY *= 1.1
		e.CurveAmount *= 0.6
	case entity.KindTank:
		e.VX *= 0.6
		e.VY *= 0.75
		e.CurveAmount *= 1.1
	}
	m.equip(e, kc, 0)
	return e
}

func (m *WaveManager) equip(e *entity.Enemy, kc config.EnemyKindConfig, variant int) {
	if kc.FireRate > 0 {
		e.FireRate = kc.FireRate
	}
	e.Pattern = entity.PatternFor(e.Kind, variant)
}

type entrySide int

const (
	entryTop entrySide = iota
	entryLeft
	entryRight
)

// sideEntry samples an entry point on the given edge
func (m *WaveManager) sideEntry(side entrySide) (x, y, vx, vy float64) {
	switch side {
	case entryTop:
		return m.topEntry()
	case entryLeft:
		x = -entryInset
		y = m.uniform(entrySideTop, m.field.Height-entrySideFloor)
		vx = m.uniform(60, 156)
		vy = m.uniform(-12, 24)
	default:
		x = m.field.Width + entryInset
		y = m.uniform(entrySideTop, m.field.Height-entrySideFloor)
		vx = -m.uniform(60, 156)
		vy = m.uniform(-12, 24)
	}
	return x, y, vx, vy
}

func (m *WaveManager) topEntry() (x, y, vx, vy float64) {
	x = m.uniform(entryInset, m.field.Width-entryInset)
	y = -entryInset
	vx = m.uniform(-36, 36)
	vy = m.uniform(72, 150)
	return x, y, vx, vy
}

// reenter moves an out-of-play free-roam actor back to the top edge
func (m *WaveManager) reenter(e *entity.Enemy) {
	e.X, e.Y, e.VX, e.VY = m.topEntry()
	e.RandomizeCurve(m.rng)
}

func (m *WaveManager) uniform(lo, hi float64) float64 {
	return lo + m.rng.Float64()*(hi-lo)
}

// Advance moves every actor by dt and returns the shots enemies fired
func (m *WaveManager) Advance(dt float64, enemies []*entity.Enemy, playerX, playerY float64) []*entity.Projectile {
	if dt < 0 {
		dt = 0
	}
	m.elapsed += dt
	m.stepFormation(dt, enemies)

	ctx := entity.FireContext{
		TargetX:      playerX,
		TargetY:      playerY,
		Elapsed:      m.elapsed,
		BulletRadius: m.bulletRadius,
	}
	chance := m.FireProbability(m.wave) * m.cfg.FireProbScale

	var shots []*entity.Projectile
	for _, e := range enemies {
		if !e.Alive {
			continue
		}
		e.Update(dt, m.elapsed)
		if e.Mode == entity.ModeFreeRoam && e.OutOfPlay(m.field) {
			m.reenter(e)
		}
		shots = append(shots, m.fire(e, dt, chance, ctx)...)
	}
	return shots
}

// stepFormation runs every formation step that elapsed during dt
func (m *WaveManager) stepFormation(dt float64, enemies []*entity.Enemy) {
	interval := m.StepInterval(m.wave)
	m.stepAccum += dt
	for m.stepAccum >= interval {
		m.stepAccum -= interval
		m.step(enemies)
	}
}

// step shifts the formation, or drops and reverses it when the shift would cross a margin
func (m *WaveManager) step(enemies []*entity.Enemy) {
	dx := m.direction * m.StepSize(m.wave)
	left := m.field.SideMargin
	right := m.field.Width - m.field.SideMargin

	cross := false
	for _, e := range enemies {
		if !e.Alive || e.Mode != entity.ModeFormation {
			continue
		}
		if e.AnchorLeft()+dx < left || e.AnchorRight()+dx > right {
			cross = true
			break
		}
	}

	for _, e := range enemies {
		if !e.Alive || e.Mode != entity.ModeFormation {
			continue
		}
		if cross {
			e.AnchorY += m.cfg.Drop
		} else {
			e.AnchorX += dx
		}
		e.Frame ^= 1
	}

	if cross {
		m.direction = -m.direction
	}
}

// fire runs the actor's pattern, or the generic roll when it has none
func (m *WaveManager) fire(e *entity.Enemy, dt, chance float64, ctx entity.FireContext) []*entity.Projectile {
	if e.Pattern != nil {
		return e.Pattern.Tick(e, dt, ctx)
	}

	p := math.Min(chance*e.FireRate, 1)
	// Probability per 1/60s, scaled to this frame's length
	if m.rng.Float64() >= 1-math.Pow(1-p, dt*60) {
		return nil
	}

	aim := (ctx.TargetX - e.X) / (m.field.Width / 2)
	aim = math.Max(-0.6, math.Min(0.6, aim))
	return []*entity.Projectile{
		entity.NewProjectile(e.X+aim*6, e.Y+e.H/2+6, 0, m.bulletSpeed, m.bulletRadius, 1, entity.OwnerEnemy),
	}
}
