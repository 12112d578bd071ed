package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Kind names every waves.yaml enemies table must define
var requiredKinds = []string{"basic", "fast", "zigzag", "tank"}

// Validate checks balance values the simulation relies on
func (c *BalanceConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("%w: field size must be positive, got %vx%v", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	}
	if c.Field.SideMargin < 0 || c.Field.SideMargin*2 >= c.Field.Width {
		return fmt.Errorf("%w: sideMargin %v does not fit field width %v", ErrInvalidConfig, c.Field.SideMargin, c.Field.Width)
	}
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("%w: display.framerate must be positive", ErrInvalidConfig)
	}
	if c.Simulation.MaxStep <= 0 {
		return fmt.Errorf("%w: simulation.maxStep must be positive", ErrInvalidConfig)
	}
	if c.Player.MaxHP <= 0 {
		return fmt.Errorf("%w: player.maxHP must be positive", ErrInvalidConfig)
	}
	if c.Player.MinFireDelay <= 0 || c.Player.FireDelay < c.Player.MinFireDelay {
		return fmt.Errorf("%w: player.fireDelay %v must be >= minFireDelay %v > 0", ErrInvalidConfig, c.Player.FireDelay, c.Player.MinFireDelay)
	}
	if c.Player.BulletDamage < 1 || c.Ultimate.Damage < 1 {
		return fmt.Errorf("%w: bullet damage must be at least 1", ErrInvalidConfig)
	}
	if len(c.Player.SpreadOffsets) == 0 || len(c.Ultimate.Offsets) == 0 {
		return fmt.Errorf("%w: spread offsets must not be empty", ErrInvalidConfig)
	}
	if c.Ultimate.Threshold <= 0 {
		return fmt.Errorf("%w: ultimate.threshold must be positive", ErrInvalidConfig)
	}
	if c.Buffs.DropChance < 0 || c.Buffs.DropChance > 1 {
		return fmt.Errorf("%w: buffs.dropChance %v outside [0,1]", ErrInvalidConfig, c.Buffs.DropChance)
	}
	if c.Combat.BroadphaseCell <= 0 {
		return fmt.Errorf("%w: combat.broadphaseCell must be positive", ErrInvalidConfig)
	}
	return nil
}

// Validate checks wave tuning and the enemy kind table
func (c *WaveConfig) Validate() error {
	if c.BaseEnemies < 0 || c.FormationMax < 0 {
		return fmt.Errorf("%w: enemy counts must not be negative", ErrInvalidConfig)
	}
	if c.StepInterval.Min <= 0 {
		return fmt.Errorf("%w: stepInterval.min must be positive", ErrInvalidConfig)
	}
	if c.StepInterval.PerWave > 0 || c.MarchSpeed.PerWave < 0 || c.FireProb.PerWave < 0 {
		return fmt.Errorf("%w: difficulty knobs must not get easier with wave index", ErrInvalidConfig)
	}
	if c.FireProb.Max > 1 {
		return fmt.Errorf("%w: fireProb.max %v above 1", ErrInvalidConfig, c.FireProb.Max)
	}
	if c.SpawnAttempts < 1 {
		return fmt.Errorf("%w: spawnAttempts must be at least 1", ErrInvalidConfig)
	}
	if c.Boss.Every > 0 && len(c.Boss.Variants) == 0 {
		return fmt.Errorf("%w: boss.variants must not be empty", ErrInvalidConfig)
	}
	for _, name := range requiredKinds {
		kind, ok := c.Enemies[name]
		if !ok {
			return fmt.Errorf("%w: enemies.%s missing", ErrInvalidConfig, name)
		}
		if kind.HP < 1 || kind.Width <= 0 || kind.Height <= 0 {
			return fmt.Errorf("%w: enemies.%s needs positive hp and size", ErrInvalidConfig, name)
		}
	}
	for _, name := range c.Boss.Variants {
		if _, ok := c.Enemies[name]; !ok {
			return fmt.Errorf("%w: boss variant %s has no enemies entry", ErrInvalidConfig, name)
		}
	}
	return nil
}
