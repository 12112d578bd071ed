package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/invaders/internal/domain/entity"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

func newTestPlayer(cfg *config.GameConfig, x, y float64) *entity.Player {
	return entity.NewPlayer(PlayerStatsFromConfig(cfg.Balance), x, y)
}

func newTestEnemy(kind entity.Kind, x, y float64, hp int) *entity.Enemy {
	return entity.NewFormationEnemy(1, kind, x, y, hp, 36, 30, testRNG())
}

func playerShot(x, y float64) *entity.Projectile {
	return entity.NewProjectile(x, y, 0, -600, 4, 1, entity.OwnerPlayer)
}

func enemyShot(x, y float64) *entity.Projectile {
	return entity.NewProjectile(x, y, 0, 180, 5, 1, entity.OwnerEnemy)
}

func TestNewCombatSystem(t *testing.T) {
	sys := NewCombatSystem(createTestGameConfig(), testRNG())

	require.NotNil(t, sys)
	assert.Equal(t, 880.0, sys.field.Width)
}

func TestCombatSystem_PlayerBulletKillsEnemy(t *testing.T) {
	cfg := createTestGameConfig()
	cfg.Balance.Buffs.DropChance = 0
	sys := NewCombatSystem(cfg, testRNG())
	player := newTestPlayer(cfg, 440, 650)

	enemy := newTestEnemy(entity.KindBasic, 300, 200, 1)
	shot := playerShot(300, 200)

	res := sys.Resolve(player, []*entity.Enemy{enemy}, []*entity.Projectile{shot}, nil)

	assert.Equal(t, 1, res.Kills)
	assert.Equal(t, 120, res.Score)
	assert.False(t, enemy.Alive)
	assert.False(t, shot.Active)
	assert.Equal(t, 1, player.UltimateCharge)
	assert.Empty(t, res.Drops)
	require.Len(t, res.Effects, 1)
	assert.Equal(t, entity.EffectExplosion, res.Effects[0].Kind)
	assert.Equal(t, 14, res.Effects[0].Particles)
}

func TestCombatSystem_KillDrops(t *testing.T) {
	cfg := createTestGameConfig()
	cfg.Balance.Buffs.DropChance = 1
	sys := NewCombatSystem(cfg, testRNG())
	player := newTestPlayer(cfg, 440, 650)

	enemy := newTestEnemy(entity.KindBasic, 300, 200, 1)
	res := sys.Resolve(player, []*entity.Enemy{enemy}, []*entity.Projectile{playerShot(300, 200)}, nil)

	require.Len(t, res.Drops, 1)
	drop := res.Drops[0]
	assert.True(t, drop.Active)
	assert.Equal(t, enemy.X, drop.X)
	assert.Equal(t, enemy.Y, drop.Y)
	assert.Equal(t, 132.0, drop.VY)
}

func TestCombatSystem_BossKill(t *testing.T) {
	cfg := createTestGameConfig()
	cfg.Balance.Buffs.DropChance = 1
	sys := NewCombatSystem(cfg, testRNG())
	player := newTestPlayer(cfg, 440, 650)

	boss := entity.NewFormationEnemy(1, entity.KindBossSpread, 440, 55, 1, 120, 70, testRNG())
	res := sys.Resolve(player, []*entity.Enemy{boss}, []*entity.Projectile{playerShot(440, 55)}, nil)

	assert.Equal(t, 1, res.Kills)
	assert.Equal(t, 1200, res.Score)
	assert.Empty(t, res.Drops, "bosses never drop")
	assert.Equal(t, 0, player.UltimateCharge, "bosses do not charge the ultimate")
	require.Len(t, res.Effects, 1)
	assert.Equal(t, 20, res.Effects[0].Particles)
}

func TestCombatSystem_NonLethalHit(t *testing.T) {
	cfg := createTestGameConfig()
	sys := NewCombatSystem(cfg, testRNG())
	player := newTestPlayer(cfg, 440, 650)

	tank := newTestEnemy(entity.KindTank, 300, 200, 2)
	shot := playerShot(300, 200)

	res := sys.Resolve(player, []*entity.Enemy{tank}, []*entity.Projectile{shot}, nil)

	assert.Equal(t, 0, res.Kills)
	assert.Equal(t, 0, res.Score)
	assert.True(t, tank.Alive)
	assert.Equal(t, 1, tank.HP)
	assert.False(t, shot.Active, "a hit consumes the bullet")
}

func TestCombatSystem_BulletHitsOneEnemy(t *testing.T) {
	cfg := createTestGameConfig()
	cfg.Balance.Buffs.DropChance = 0
	sys := NewCombatSystem(cfg, testRNG())
	player := newTestPlayer(cfg, 440, 650)

	first := newTestEnemy(entity.KindBasic, 300, 200, 1)
	second := newTestEnemy(entity.KindBasic, 306, 200, 1)
	enemies := []*entity.Enemy{first, second}

	res := sys.Resolve(player, enemies, []*entity.Projectile{playerShot(303, 200)}, nil)

	assert.Equal(t, 1, res.Kills)
	assert.False(t, first.Alive, "earliest roster entry wins")
	assert.True(t, second.Alive)
}

func TestCombatSystem_OneHitPerBullet_ManyBullets(t *testing.T) {
	cfg := createTestGameConfig()
	cfg.Balance.Buffs.DropChance = 0
	sys := NewCombatSystem(cfg, testRNG())
	player := newTestPlayer(cfg, 440, 650)

	tank := newTestEnemy(entity.KindTank, 300, 200, 5)
	shots := []*entity.Projectile{playerShot(295, 200), playerShot(300, 200), playerShot(305, 200)}

	res := sys.Resolve(player, []*entity.Enemy{tank}, shots, nil)

	assert.Equal(t, 2, tank.HP)
	assert.Equal(t, 0, res.Kills)
	for _, s := range shots {
		assert.False(t, s.Active)
	}
}

func TestCombatSystem_DeadEnemiesAreIgnored(t *testing.T) {
	cfg := createTestGameConfig()
	sys := NewCombatSystem(cfg, testRNG())
	player := newTestPlayer(cfg, 440, 650)

	enemy := newTestEnemy(entity.KindBasic, 300, 200, 1)
	enemy.TakeDamage(1)
	shot := playerShot(300, 200)

	res := sys.Resolve(player, []*entity.Enemy{enemy}, []*entity.Projectile{shot}, nil)

	assert.Equal(t, 0, res.Kills)
	assert.True(t, shot.Active)
}

func TestCombatSystem_HitsEnemyOutsideField(t *testing.T) {
	cfg := createTestGameConfig()
	cfg.Balance.Buffs.DropChance = 0
	sys := NewCombatSystem(cfg, testRNG())
	player := newTestPlayer(cfg, 440, 650)

	// Free-roam actors enter from beyond the left edge
	enemy := entity.NewFreeRoamEnemy(1, entity.KindBasic, -30, 100, 90, 0, 1, 36, 30, testRNG())
	res := sys.Resolve(player, []*entity.Enemy{enemy}, []*entity.Projectile{playerShot(-30, 100)}, nil)

	assert.Equal(t, 1, res.Kills)
}

func TestCombatSystem_BulletsIgnoreTheirOwner(t *testing.T) {
	cfg := createTestGameConfig()
	sys := NewCombatSystem(cfg, testRNG())
	player := newTestPlayer(cfg, 440, 400)

	enemy := newTestEnemy(entity.KindBasic, 300, 200, 1)
	onEnemy := enemyShot(300, 200)
	onPlayer := playerShot(440, 400)

	res := sys.Resolve(player, []*entity.Enemy{enemy}, []*entity.Projectile{onEnemy, onPlayer}, nil)

	assert.True(t, enemy.Alive)
	assert.Equal(t, 6, player.HP)
	assert.Empty(t, res.Outcomes)
	assert.True(t, onEnemy.Active)
	assert.True(t, onPlayer.Active)
}

func TestCombatSystem_EnemyBullets(t *testing.T) {
	cfg := createTestGameConfig()

	t.Run("hit takes hp and knocks back", func(t *testing.T) {
		sys := NewCombatSystem(cfg, testRNG())
		player := newTestPlayer(cfg, 440, 400)
		shot := enemyShot(440, 390)

		res := sys.Resolve(player, nil, []*entity.Projectile{shot}, nil)

		assert.Equal(t, []entity.DamageOutcome{entity.DamageTaken}, res.Outcomes)
		assert.Equal(t, 5, player.HP)
		assert.False(t, shot.Active)
		assert.InDelta(t, 415.0, player.Y, 1e-9)
		assert.True(t, player.IsInvincible())
		require.Len(t, res.Effects, 1)
		assert.Equal(t, entity.EffectPlayerHit, res.Effects[0].Kind)
	})

	t.Run("tolerance extends the hit radius", func(t *testing.T) {
		sys := NewCombatSystem(cfg, testRNG())
		player := newTestPlayer(cfg, 440, 400)
		// 18 + 5 + 2 reaches 25px
		near := enemyShot(440, 376)
		res := sys.Resolve(player, nil, []*entity.Projectile{near}, nil)
		assert.Len(t, res.Outcomes, 1)

		far := enemyShot(440, 600)
		res = sys.Resolve(player, nil, []*entity.Projectile{far}, nil)
		assert.Empty(t, res.Outcomes)
		assert.True(t, far.Active)
	})

	t.Run("shield absorbs once per invincibility window", func(t *testing.T) {
		sys := NewCombatSystem(cfg, testRNG())
		player := newTestPlayer(cfg, 440, 400)
		player.ApplyPickup(entity.PickupShield)
		shots := []*entity.Projectile{enemyShot(440, 400), enemyShot(440, 400), enemyShot(440, 400)}

		res := sys.Resolve(player, nil, shots, nil)

		assert.Equal(t, []entity.DamageOutcome{entity.DamageAbsorbed, entity.DamageIgnored, entity.DamageIgnored}, res.Outcomes)
		assert.Equal(t, 2, player.ShieldCharges)
		assert.Equal(t, 6, player.HP)
		for _, s := range shots {
			assert.False(t, s.Active, "bullets are consumed even when ignored")
		}
		assert.Len(t, res.Effects, 1, "ignored hits spawn no effect")
	})

	t.Run("fatal hit stops the pass", func(t *testing.T) {
		sys := NewCombatSystem(cfg, testRNG())
		player := newTestPlayer(cfg, 440, 400)
		player.HP = 1
		first, second := enemyShot(440, 400), enemyShot(440, 400)
		enemy := newTestEnemy(entity.KindBasic, 440, 400, 1)

		res := sys.Resolve(player, []*entity.Enemy{enemy}, []*entity.Projectile{first, second}, nil)

		assert.True(t, res.PlayerDied)
		assert.Equal(t, []entity.DamageOutcome{entity.DamageFatal}, res.Outcomes)
		assert.False(t, first.Active)
		assert.True(t, second.Active)
		assert.True(t, player.IsDead())
	})
}

func TestCombatSystem_BodyCollision(t *testing.T) {
	cfg := createTestGameConfig()

	t.Run("one body hit per frame", func(t *testing.T) {
		sys := NewCombatSystem(cfg, testRNG())
		player := newTestPlayer(cfg, 440, 400)
		a := newTestEnemy(entity.KindBasic, 450, 400, 1)
		b := newTestEnemy(entity.KindBasic, 430, 400, 1)

		res := sys.Resolve(player, []*entity.Enemy{a, b}, nil, nil)

		assert.Equal(t, []entity.DamageOutcome{entity.DamageTaken}, res.Outcomes)
		assert.Equal(t, 5, player.HP)
		assert.True(t, a.Alive)
		assert.True(t, b.Alive)
		// Knockback then the body bump, both away from the first enemy
		assert.InDelta(t, 419.0, player.X, 1e-9)
		assert.InDelta(t, 400.0, player.Y, 1e-9)
	})

	t.Run("invincible contact is ignored but still bumps", func(t *testing.T) {
		sys := NewCombatSystem(cfg, testRNG())
		player := newTestPlayer(cfg, 440, 400)
		player.ApplyDamage(entity.DamageEvent{Amount: 1, SourceX: 440, SourceY: 500}, sys.field, testRNG())
		enemy := newTestEnemy(entity.KindBasic, 450, 400, 1)

		res := sys.Resolve(player, []*entity.Enemy{enemy}, nil, nil)

		assert.Equal(t, []entity.DamageOutcome{entity.DamageIgnored}, res.Outcomes)
		assert.Equal(t, 5, player.HP)
		assert.Empty(t, res.Effects)
		assert.InDelta(t, 434.0, player.X, 1e-9)
	})

	t.Run("enemy killed this frame cannot ram", func(t *testing.T) {
		cfg := createTestGameConfig()
		cfg.Balance.Buffs.DropChance = 0
		sys := NewCombatSystem(cfg, testRNG())
		player := newTestPlayer(cfg, 440, 400)
		enemy := newTestEnemy(entity.KindBasic, 440, 400, 1)

		res := sys.Resolve(player, []*entity.Enemy{enemy}, []*entity.Projectile{playerShot(440, 400)}, nil)

		assert.Equal(t, 1, res.Kills)
		assert.Empty(t, res.Outcomes)
		assert.Equal(t, 6, player.HP)
	})
}

func TestCombatSystem_Pickups(t *testing.T) {
	cfg := createTestGameConfig()
	sys := NewCombatSystem(cfg, testRNG())
	player := newTestPlayer(cfg, 440, 400)
	player.HP = 4

	heal := entity.NewPickup(445, 395, 132, 10, entity.PickupHeal)
	rapid := entity.NewPickup(100, 100, 132, 10, entity.PickupRapidFire)

	sys.Resolve(player, nil, nil, []*entity.Pickup{heal, rapid})

	assert.Equal(t, 5, player.HP)
	assert.False(t, heal.Active)
	assert.True(t, rapid.Active)
	assert.False(t, player.RapidFireActive())
}

func TestCombatSystem_Callbacks(t *testing.T) {
	cfg := createTestGameConfig()
	cfg.Balance.Buffs.DropChance = 0
	sys := NewCombatSystem(cfg, testRNG())

	var killed []*entity.Enemy
	var outcomes []entity.DamageOutcome
	sys.OnEnemyKilled = func(e *entity.Enemy) { killed = append(killed, e) }
	sys.OnPlayerHit = func(o entity.DamageOutcome) { outcomes = append(outcomes, o) }

	player := newTestPlayer(cfg, 440, 400)
	enemy := newTestEnemy(entity.KindBasic, 200, 200, 1)

	sys.Resolve(player, []*entity.Enemy{enemy}, []*entity.Projectile{playerShot(200, 200), enemyShot(440, 400)}, nil)

	require.Len(t, killed, 1)
	assert.Same(t, enemy, killed[0])
	assert.Equal(t, []entity.DamageOutcome{entity.DamageTaken}, outcomes)
}
