package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Balance *BalanceConfig
	Waves   *WaveConfig
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadBalance loads balance.yaml. Keys the file omits keep their Default values.
func (l *Loader) LoadBalance() (*BalanceConfig, error) {
	cfg := Default().Balance
	if err := l.decode("balance.yaml", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid balance.yaml: %w", err)
	}
	return cfg, nil
}

// LoadWaves loads waves.yaml. Keys the file omits keep their Default values;
// an enemies table entry replaces the default entry for that kind.
func (l *Loader) LoadWaves() (*WaveConfig, error) {
	cfg := Default().Waves
	if err := l.decode("waves.yaml", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid waves.yaml: %w", err)
	}
	return cfg, nil
}

// LoadAll loads all base configurations (balance, waves)
func (l *Loader) LoadAll() (*GameConfig, error) {
	balance, err := l.LoadBalance()
	if err != nil {
		return nil, err
	}

	waves, err := l.LoadWaves()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Balance: balance,
		Waves:   waves,
	}, nil
}

func (l *Loader) decode(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
