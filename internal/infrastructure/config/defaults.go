package config

// Default returns the built-in balance, matching cmd/game/configs.
// The loader decodes files over it.
func Default() *GameConfig {
	return &GameConfig{
		Balance: &BalanceConfig{
			Display: DisplayConfig{
				Title:        "Alien Invaders",
				ScreenWidth:  880,
				ScreenHeight: 720,
				Framerate:    60,
			},
			Field: FieldConfig{
				Width:           880,
				Height:          720,
				SideMargin:      20,
				OutOfPlayBuffer: 200,
				CullMargin:      40,
			},
			Simulation: SimulationConfig{
				MaxStep: 0.05,
			},
			Player: PlayerConfig{
				StartX:        440,
				StartY:        650,
				Radius:        18,
				Speed:         360,
				MaxHP:         6,
				FireDelay:     0.22,
				MinFireDelay:  0.08,
				BulletSpeed:   600,
				BulletRadius:  4,
				BulletDamage:  1,
				SpreadOffsets: []float64{-14, 0, 14},
				AutoFire:      true,
			},
			Buffs: BuffConfig{
				DropChance:        0.18,
				FallSpeed:         132,
				Radius:            10,
				RapidFireDuration: 5,
				ShieldDuration:    5,
				ShieldCharges:     3,
				HealAmount:        1,
			},
			Ultimate: UltimateConfig{
				Threshold:   10,
				Duration:    8,
				FireDelay:   0.18,
				Offsets:     []float64{-40, -20, 0, 20, 40},
				BulletSpeed: 960,
				Damage:      2,
			},
			Combat: CombatConfig{
				Invincibility:     0.5,
				HitFlash:          0.18,
				Knockback:         15,
				BodyBump:          6,
				BodyDamage:        1,
				Tolerance:         2,
				EnemyBulletSpeed:  180,
				EnemyBulletRadius: 5,
				BroadphaseCell:    32,
			},
			Score: ScoreConfig{
				Kill:      120,
				Boss:      1200,
				WaveClear: 300,
			},
			Shop: ShopConfig{
				FireDelayStep: 0.02,
				FireRatePrice: 800,
				MaxHPPrice:    1000,
				HealPrice:     1300,
			},
			Feedback: FeedbackConfig{
				ExplosionParticles: 14,
				BossExtraParticles: 6,
				HitParticles:       18,
				ExplosionDuration:  0.6,
				ScreenShake:        6,
				ScreenShakeDecay:   0.35,
			},
		},
		Waves: &WaveConfig{
			BaseEnemies:      6,
			FormationMax:     10,
			FormationSpacing: 50,
			FormationY:       90,
			FormationMinX:    80,
			Drop:             24,
			StepInterval:     KnobConfig{Base: 0.95, PerWave: -0.02, Min: 0.35, Max: 0.95},
			MarchSpeed:       KnobConfig{Base: 20, PerWave: 2.2, Min: 20, Max: 120},
			FireProb:         KnobConfig{Base: 0.004, PerWave: 0.0009, Min: 0.004, Max: 0.02},
			FireProbScale:    2,
			SpawnClearance:   140,
			SpawnAttempts:    40,

			SpecialistFromWave: 3,
			SpecialistChance:   0.15,

			Boss: BossConfig{
				Every:     5,
				HPBase:    20,
				HPScale:   3.5,
				Y:         55,
				RowOffset: 80,
				Variants:  []string{"bossSpread", "bossRadial", "bossTwin", "bossSpiral"},
			},
			Enemies: map[string]EnemyKindConfig{
				"basic":      {HP: 1, Width: 36, Height: 30, FireRate: 1},
				"fast":       {HP: 1, Width: 36, Height: 30, FireRate: 0.5},
				"zigzag":     {HP: 1, Width: 36, Height: 30, FireRate: 1},
				"tank":       {HP: 2, HPWaveDivisor: 3, Width: 36, Height: 30, FireRate: 1.6},
				"tripleShot": {HP: 7, Width: 36, Height: 30},
				"diagonal":   {HP: 5, Width: 36, Height: 30},
				"burst":      {HP: 6, Width: 36, Height: 30},
				"sniper":     {HP: 4, Width: 36, Height: 30},
				"bossSpread": {HP: 20, Width: 120, Height: 70},
				"bossRadial": {HP: 20, Width: 140, Height: 80},
				"bossTwin":   {HP: 20, Width: 120, Height: 72},
				"bossSpiral": {HP: 20, Width: 130, Height: 76},
			},
		},
	}
}
