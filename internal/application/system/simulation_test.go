package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/invaders/internal/domain/entity"
)

func newTestSimulation() *Simulation {
	sim := NewSimulation(createTestGameConfig(), testRNG())
	sim.Start()
	return sim
}

func playerShots(sim *Simulation) int {
	n := 0
	for _, p := range sim.Projectiles() {
		if p.IsPlayer() {
			n++
		}
	}
	return n
}

func killAll(sim *Simulation) {
	for _, e := range sim.Enemies() {
		e.TakeDamage(e.HP)
	}
}

func TestSimulation_Start(t *testing.T) {
	sim := newTestSimulation()

	hud := sim.HUD()
	assert.Equal(t, 1, hud.Wave)
	assert.Equal(t, 0, hud.Score)
	assert.Equal(t, 6, hud.HP)
	assert.Equal(t, 6, hud.MaxHP)
	assert.Equal(t, 10, hud.UltimateThreshold)
	assert.Equal(t, 7, hud.EnemiesAlive)
	assert.Len(t, sim.Enemies(), 7)
	assert.Empty(t, sim.Projectiles())

	p := sim.Player()
	assert.Equal(t, 440.0, p.X)
	assert.Equal(t, 650.0, p.Y)
}

func TestSimulation_StartResets(t *testing.T) {
	sim := newTestSimulation()
	killAll(sim)
	sim.Step(0, nil)
	sim.NextWave()
	sim.Player().HP = 2

	sim.Start()

	hud := sim.HUD()
	assert.Equal(t, 1, hud.Wave)
	assert.Equal(t, 0, hud.Score)
	assert.Equal(t, 6, hud.HP)
}

func TestSimulation_Intents(t *testing.T) {
	t.Run("fire", func(t *testing.T) {
		sim := newTestSimulation()

		sim.Step(1.0/60, []Intent{FireIntent{}})
		assert.Equal(t, 1, playerShots(sim))

		// Cooldown holds the next shot
		sim.Step(1.0/60, []Intent{FireIntent{}})
		assert.Equal(t, 1, playerShots(sim))
	})

	t.Run("move to clamps to the field", func(t *testing.T) {
		sim := newTestSimulation()

		sim.Step(0, []Intent{MoveToIntent{X: -100, Y: 2000}})

		assert.Equal(t, 18.0, sim.Player().X)
		assert.Equal(t, 702.0, sim.Player().Y)
	})

	t.Run("move by uses player speed", func(t *testing.T) {
		sim := newTestSimulation()

		sim.Step(0.5, []Intent{MoveByIntent{DX: 1}})

		assert.InDelta(t, 620.0, sim.Player().X, 1e-9)
		assert.Equal(t, 650.0, sim.Player().Y)
	})

	t.Run("ultimate replaces normal fire", func(t *testing.T) {
		sim := newTestSimulation()
		for i := 0; i < 10; i++ {
			sim.Player().AddKill()
		}
		require.True(t, sim.HUD().UltimateReady)

		sim.Step(1.0/60, []Intent{UltimateIntent{}, FireIntent{}})

		hud := sim.HUD()
		assert.False(t, hud.UltimateReady)
		assert.Equal(t, 0, hud.UltimateCharge)
		assert.Greater(t, hud.UltimateRemaining, 0.0)
		assert.Equal(t, len(createTestGameConfig().Balance.Ultimate.Offsets), playerShots(sim))
	})
}

func TestSimulation_ProjectilesAreCulled(t *testing.T) {
	sim := newTestSimulation()
	sim.Step(1.0/60, []Intent{FireIntent{}})
	require.Equal(t, 1, playerShots(sim))

	sim.Step(2.0, nil)

	assert.Equal(t, 0, playerShots(sim))
}

func TestSimulation_WaveClear(t *testing.T) {
	sim := newTestSimulation()
	killAll(sim)

	res := sim.Step(0, nil)
	assert.True(t, res.WaveCleared)
	assert.True(t, sim.WaveCleared())
	assert.Equal(t, 300, sim.Score())

	res = sim.Step(1.0/60, nil)
	assert.False(t, res.WaveCleared, "bonus is awarded once")
	assert.Equal(t, 300, sim.Score())
}

func TestSimulation_NextWave(t *testing.T) {
	sim := newTestSimulation()
	sim.Step(1.0/60, []Intent{FireIntent{}})
	killAll(sim)
	sim.Step(0, nil)

	sim.NextWave()

	assert.Equal(t, 2, sim.HUD().Wave)
	assert.Len(t, sim.Enemies(), 8)
	assert.Empty(t, sim.Projectiles())
	assert.Empty(t, sim.Pickups())
	assert.False(t, sim.WaveCleared())

	// Clearing the new wave pays again
	killAll(sim)
	assert.True(t, sim.Step(0, nil).WaveCleared)
	assert.Equal(t, 600, sim.Score())
}

func TestSimulation_SpendScore(t *testing.T) {
	sim := newTestSimulation()
	killAll(sim)
	sim.Step(0, nil)
	require.Equal(t, 300, sim.Score())

	assert.False(t, sim.SpendScore(800))
	assert.Equal(t, 300, sim.Score())
	assert.False(t, sim.SpendScore(-5))

	assert.True(t, sim.SpendScore(200))
	assert.Equal(t, 100, sim.Score())
}

func TestSimulation_PlayerDeath(t *testing.T) {
	sim := newTestSimulation()
	var hits []entity.DamageOutcome
	sim.Combat().OnPlayerHit = func(o entity.DamageOutcome) { hits = append(hits, o) }

	p := sim.Player()
	p.HP = 1
	rammer := sim.Enemies()[0]
	require.Equal(t, entity.ModeFormation, rammer.Mode)
	rammer.AnchorX, rammer.AnchorY = p.X, p.Y

	res := sim.Step(1.0/60, nil)

	assert.True(t, res.PlayerDied)
	assert.Equal(t, []entity.DamageOutcome{entity.DamageFatal}, res.Outcomes)
	assert.Equal(t, []entity.DamageOutcome{entity.DamageFatal}, hits)
	assert.Equal(t, 0, sim.HUD().HP)

	// Dead players ignore commands
	sim.Step(1.0/60, []Intent{FireIntent{}})
	assert.Equal(t, 0, playerShots(sim))
}

func TestSimulation_NegativeDeltaIsIgnored(t *testing.T) {
	sim := newTestSimulation()
	before := sim.Enemies()[0].AnchorX

	sim.Step(-1, nil)

	assert.Equal(t, before, sim.Enemies()[0].AnchorX)
	assert.Equal(t, 0.0, sim.waves.Elapsed())
}
