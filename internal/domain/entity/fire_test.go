package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fireCtx() FireContext {
	return FireContext{TargetX: 440, TargetY: 650, BulletRadius: 5}
}

func boss(kind Kind) *Enemy {
	return NewFormationEnemy(1, kind, 440, 140, 37, 120, 70, testRNG())
}

// runPattern ticks a pattern for duration seconds and collects every shot
func runPattern(p FirePattern, e *Enemy, duration, dt float64) [][]*Projectile {
	var volleys [][]*Projectile
	for t := 0.0; t < duration-1e-9; t += dt {
		if shots := p.Tick(e, dt, fireCtx()); shots != nil {
			volleys = append(volleys, shots)
		}
	}
	return volleys
}

func TestSpreadPattern(t *testing.T) {
	e := boss(KindBossSpread)
	p := NewBossSpreadPattern()

	assert.Nil(t, p.Tick(e, 0.5, fireCtx()))

	shots := p.Tick(e, 0.4, fireCtx())
	require.Len(t, shots, 3)
	for i, off := range []float64{-16, 0, 16} {
		assert.InDelta(t, e.X+off, shots[i].X, 1e-9)
		assert.InDelta(t, e.Y+e.H/2+6, shots[i].Y, 1e-9)
		assert.Equal(t, 0.0, shots[i].VX)
		assert.Equal(t, 252.0, shots[i].VY)
		assert.Equal(t, OwnerEnemy, shots[i].Owner)
	}
}

func TestSpreadPattern_CadenceIndependentOfFrameRate(t *testing.T) {
	e := boss(KindBossSpread)

	at60 := runPattern(NewBossSpreadPattern(), e, 8.4, 1.0/60)
	at30 := runPattern(NewBossSpreadPattern(), e, 8.4, 1.0/30)

	assert.Len(t, at60, 10)
	assert.Len(t, at30, 10)
}

func TestCycle_HitchFiresOnce(t *testing.T) {
	cooldown := 0.8
	assert.True(t, cycle(&cooldown, 5, 0.8))
	assert.Equal(t, 0.8, cooldown)
}

func TestRadialPattern(t *testing.T) {
	e := boss(KindBossRadial)
	p := NewRadialPattern(8, 0.9, 0.9, 204)

	shots := p.Tick(e, 0.9, fireCtx())
	require.Len(t, shots, 8)
	assert.InDelta(t, 0.81, p.Angle(), 1e-9)

	for i, s := range shots {
		assert.InDelta(t, 204.0, math.Hypot(s.VX, s.VY), 1e-9)
		want := p.Angle() + float64(i)*2*math.Pi/8
		assert.InDelta(t, math.Cos(want)*204, s.VX, 1e-9)
	}

	// Angle keeps advancing between volleys
	assert.Nil(t, p.Tick(e, 0.1, fireCtx()))
	assert.InDelta(t, 0.9, p.Angle(), 1e-9)
}

func TestSpiralPattern(t *testing.T) {
	e := boss(KindBossSpiral)
	p := NewSpiralPattern()

	volleys := runPattern(p, e, 3.5, 0.05)
	require.NotEmpty(t, volleys)
	for _, v := range volleys {
		assert.Len(t, v, 4)
	}
	assert.InDelta(t, 10, len(volleys), 1)
	assert.Equal(t, 0.12, p.Jitter)
}

func TestTwinPattern(t *testing.T) {
	e := boss(KindBossTwin)

	t.Run("horizontal", func(t *testing.T) {
		shots := NewTwinPattern(false).Tick(e, 0.55, fireCtx())
		require.Len(t, shots, 2)
		assert.Equal(t, e.X-12, shots[0].X)
		assert.Equal(t, -252.0, shots[0].VX)
		assert.Equal(t, e.X+12, shots[1].X)
		assert.Equal(t, 252.0, shots[1].VX)
		assert.Equal(t, 0.0, shots[0].VY)
	})

	t.Run("vertical", func(t *testing.T) {
		shots := NewTwinPattern(true).Tick(e, 0.55, fireCtx())
		require.Len(t, shots, 2)
		assert.Equal(t, -252.0, shots[0].VY)
		assert.Equal(t, 252.0, shots[1].VY)
		assert.Equal(t, 0.0, shots[1].VX)
	})
}

func TestDiagonalPattern(t *testing.T) {
	e := NewFormationEnemy(1, KindDiagonal, 200, 90, 5, 36, 30, testRNG())
	shots := NewDiagonalPattern().Tick(e, 1.3, fireCtx())

	require.Len(t, shots, 2)
	assert.Equal(t, 132.0, shots[0].VX)
	assert.Equal(t, -132.0, shots[1].VX)
	assert.Equal(t, 180.0, shots[0].VY)
	assert.Equal(t, 180.0, shots[1].VY)
}

func TestBurstPattern(t *testing.T) {
	e := NewFormationEnemy(1, KindBurst, 200, 90, 6, 36, 30, testRNG())
	p := NewBurstPattern()

	// Initial pause
	assert.Nil(t, p.Tick(e, 2.1, fireCtx()))

	// Five shots 0.12s apart
	fired := 0
	for i := 0; i < 5; i++ {
		dt := 0.12
		if i == 0 {
			dt = 0.2
		}
		shots := p.Tick(e, dt, fireCtx())
		require.Len(t, shots, 1, "shot %d", i)
		assert.Equal(t, 330.0, shots[0].VY)
		fired++
	}
	assert.Equal(t, 5, fired)

	// Then a pause before the next burst
	assert.Nil(t, p.Tick(e, 0.12, fireCtx()))
	assert.Nil(t, p.Tick(e, 1.9, fireCtx()))
	assert.Len(t, p.Tick(e, 0.2, fireCtx()), 1)
}

func TestHomingPattern(t *testing.T) {
	e := NewFormationEnemy(1, KindSniper, 440, 100, 4, 36, 30, testRNG())
	p := NewHomingPattern()

	ctx := fireCtx()
	ctx.TargetX, ctx.TargetY = 440+300, 100+400
	shots := p.Tick(e, 2.0, ctx)

	require.Len(t, shots, 1)
	assert.InDelta(t, 390*0.6, shots[0].VX, 1e-9)
	assert.InDelta(t, 390*0.8, shots[0].VY, 1e-9)

	// Velocity is not re-aimed in flight
	vx := shots[0].VX
	shots[0].Update(0.5)
	assert.Equal(t, vx, shots[0].VX)
}

func TestPatternFor(t *testing.T) {
	assert.Nil(t, PatternFor(KindBasic, 0))
	assert.Nil(t, PatternFor(KindTank, 0))
	assert.IsType(t, &SpreadPattern{}, PatternFor(KindBossSpread, 0))
	assert.IsType(t, &RadialPattern{}, PatternFor(KindBossRadial, 0))
	assert.IsType(t, &RadialPattern{}, PatternFor(KindBossSpiral, 0))
	assert.IsType(t, &SpreadPattern{}, PatternFor(KindTripleShot, 0))
	assert.IsType(t, &DiagonalPattern{}, PatternFor(KindDiagonal, 0))
	assert.IsType(t, &BurstPattern{}, PatternFor(KindBurst, 0))
	assert.IsType(t, &HomingPattern{}, PatternFor(KindSniper, 0))

	twin0 := PatternFor(KindBossTwin, 0).(*TwinPattern)
	twin1 := PatternFor(KindBossTwin, 1).(*TwinPattern)
	assert.False(t, twin0.Vertical)
	assert.True(t, twin1.Vertical)
}
