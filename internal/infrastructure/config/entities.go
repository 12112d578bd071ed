package config

// WaveConfig is the root config for waves.yaml
type WaveConfig struct {
	BaseEnemies      int     `yaml:"baseEnemies"`
	FormationMax     int     `yaml:"formationMax"`
	FormationSpacing float64 `yaml:"formationSpacing"`
	FormationY       float64 `yaml:"formationY"`
	FormationMinX    float64 `yaml:"formationMinX"`
	Drop             float64 `yaml:"drop"`

	StepInterval  KnobConfig `yaml:"stepInterval"`
	MarchSpeed    KnobConfig `yaml:"marchSpeed"` // px/s; a step covers marchSpeed * stepInterval
	FireProb      KnobConfig `yaml:"fireProb"`
	FireProbScale float64    `yaml:"fireProbScale"`

	SpawnClearance float64 `yaml:"spawnClearance"`
	SpawnAttempts  int     `yaml:"spawnAttempts"`

	SpecialistFromWave int     `yaml:"specialistFromWave"`
	SpecialistChance   float64 `yaml:"specialistChance"`

	Boss    BossConfig                 `yaml:"boss"`
	Enemies map[string]EnemyKindConfig `yaml:"enemies"`
}

// KnobConfig is a per-wave difficulty value: clamp(base + perWave*wave, min, max)
type KnobConfig struct {
	Base    float64 `yaml:"base"`
	PerWave float64 `yaml:"perWave"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
}

// At returns the knob value for the given wave index
func (k KnobConfig) At(wave int) float64 {
	v := k.Base + k.PerWave*float64(wave)
	if v < k.Min {
		v = k.Min
	}
	if v > k.Max {
		v = k.Max
	}
	return v
}

type BossConfig struct {
	Every     int      `yaml:"every"`
	HPBase    int      `yaml:"hpBase"`
	HPScale   float64  `yaml:"hpScale"`
	Y         float64  `yaml:"y"`         // Boss anchor height
	RowOffset float64  `yaml:"rowOffset"` // Formation row moves down by this on boss waves
	Variants  []string `yaml:"variants"`  // Cycled per boss wave
}

// HPAt returns boss hp for the given wave index
func (b BossConfig) HPAt(wave int) int {
	return b.HPBase + int(float64(wave)*b.HPScale)
}

// IsBossWave reports whether the wave index spawns a boss
func (b BossConfig) IsBossWave(wave int) bool {
	return b.Every > 0 && wave > 0 && wave%b.Every == 0
}

// EnemyKindConfig holds per-kind stats
type EnemyKindConfig struct {
	HP            int     `yaml:"hp"`
	HPWaveDivisor int     `yaml:"hpWaveDivisor"` // Formation hp += wave / divisor (0 = off)
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	FireRate      float64 `yaml:"fireRate"` // Multiplier on the generic fire probability
}
