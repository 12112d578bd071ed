package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/invaders/internal/application/game"
	"github.com/younwookim/invaders/internal/application/scene/menu"
	"github.com/younwookim/invaders/internal/application/system"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

// loadConfig reads configs from dir, or from the embedded defaults when dir is empty
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

// seedSource returns fixed when non-zero, otherwise a clock-based seed per run
func seedSource(fixed int64) func() int64 {
	return func() int64 {
		if fixed != 0 {
			return fixed
		}
		return time.Now().UnixNano()
	}
}

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Load balance.yaml and waves.yaml from this directory instead of the built-in configs")
	seedFlag := flag.Int64("seed", 0, "Fixed RNG seed (0 = use the config seed, or the clock)")
	fixedStep := flag.Bool("fixed-step", false, "Advance exactly 1/TPS per update instead of measuring wall-clock time")
	flag.Parse()

	cfg, err := loadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *configDir != "" {
		log.Printf("Config loaded from %s", *configDir)
	}

	seed := cfg.Balance.Simulation.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}

	display := cfg.Balance.Display
	g := game.New(menu.New(cfg, seedSource(seed)), display.ScreenWidth, display.ScreenHeight)
	g.SetDT(1.0 / float64(display.Framerate))
	if !*fixedStep {
		g.SetClock(system.NewClock(cfg.Balance.Simulation.MaxStep))
	}

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth, display.ScreenHeight)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
