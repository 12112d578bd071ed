package config

// BalanceConfig is the root config for balance.yaml
type BalanceConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Field      FieldConfig      `yaml:"field"`
	Simulation SimulationConfig `yaml:"simulation"`
	Player     PlayerConfig     `yaml:"player"`
	Buffs      BuffConfig       `yaml:"buffs"`
	Ultimate   UltimateConfig   `yaml:"ultimate"`
	Combat     CombatConfig     `yaml:"combat"`
	Score      ScoreConfig      `yaml:"score"`
	Shop       ShopConfig       `yaml:"shop"`
	Feedback   FeedbackConfig   `yaml:"feedback"`
}

type DisplayConfig struct {
	Title        string `yaml:"title"`
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Framerate    int    `yaml:"framerate"`
}

// FieldConfig describes the playfield rectangle and its culling margins
type FieldConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	SideMargin      float64 `yaml:"sideMargin"`      // Formation may not cross this inset
	OutOfPlayBuffer float64 `yaml:"outOfPlayBuffer"` // Free-roam respawn threshold
	CullMargin      float64 `yaml:"cullMargin"`      // Projectile/pickup removal margin
}

type SimulationConfig struct {
	MaxStep float64 `yaml:"maxStep"` // Upper bound for a single frame delta (seconds)
	Seed    int64   `yaml:"seed"`    // 0 = seed from clock
}

type PlayerConfig struct {
	StartX        float64   `yaml:"startX"`
	StartY        float64   `yaml:"startY"`
	Radius        float64   `yaml:"radius"`
	Speed         float64   `yaml:"speed"`
	MaxHP         int       `yaml:"maxHP"`
	FireDelay     float64   `yaml:"fireDelay"`
	MinFireDelay  float64   `yaml:"minFireDelay"`
	BulletSpeed   float64   `yaml:"bulletSpeed"`
	BulletRadius  float64   `yaml:"bulletRadius"`
	BulletDamage  int       `yaml:"bulletDamage"`
	SpreadOffsets []float64 `yaml:"spreadOffsets"`
	AutoFire      bool      `yaml:"autoFire"`
}

type BuffConfig struct {
	DropChance        float64 `yaml:"dropChance"`
	FallSpeed         float64 `yaml:"fallSpeed"`
	Radius            float64 `yaml:"radius"`
	RapidFireDuration float64 `yaml:"rapidFireDuration"`
	ShieldDuration    float64 `yaml:"shieldDuration"`
	ShieldCharges     int     `yaml:"shieldCharges"`
	HealAmount        int     `yaml:"healAmount"`
}

type UltimateConfig struct {
	Threshold   int       `yaml:"threshold"`
	Duration    float64   `yaml:"duration"`
	FireDelay   float64   `yaml:"fireDelay"`
	Offsets     []float64 `yaml:"offsets"`
	BulletSpeed float64   `yaml:"bulletSpeed"`
	Damage      int       `yaml:"damage"`
}

type CombatConfig struct {
	Invincibility     float64 `yaml:"invincibility"`
	HitFlash          float64 `yaml:"hitFlash"`
	Knockback         float64 `yaml:"knockback"`
	BodyBump          float64 `yaml:"bodyBump"`
	BodyDamage        int     `yaml:"bodyDamage"`
	Tolerance         float64 `yaml:"tolerance"`
	EnemyBulletSpeed  float64 `yaml:"enemyBulletSpeed"`
	EnemyBulletRadius float64 `yaml:"enemyBulletRadius"`
	BroadphaseCell    int     `yaml:"broadphaseCell"`
}

type ScoreConfig struct {
	Kill      int `yaml:"kill"`
	Boss      int `yaml:"boss"`
	WaveClear int `yaml:"waveClear"`
}

type ShopConfig struct {
	FireDelayStep float64 `yaml:"fireDelayStep"`
	FireRatePrice int     `yaml:"fireRatePrice"`
	MaxHPPrice    int     `yaml:"maxHPPrice"`
	HealPrice     int     `yaml:"healPrice"`
}

type FeedbackConfig struct {
	ExplosionParticles int     `yaml:"explosionParticles"`
	BossExtraParticles int     `yaml:"bossExtraParticles"`
	HitParticles       int     `yaml:"hitParticles"`
	ExplosionDuration  float64 `yaml:"explosionDuration"`
	ScreenShake        float64 `yaml:"screenShake"`
	ScreenShakeDecay   float64 `yaml:"screenShakeDecay"`
}
