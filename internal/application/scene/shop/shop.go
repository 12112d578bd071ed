// Package shop provides the between-waves upgrade scene.
package shop

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/invaders/internal/application/scene"
	"github.com/younwookim/invaders/internal/application/system"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

var colorBG = color.RGBA{18, 18, 34, 255}

// Item is an upgrade the shop sells
type Item int

const (
	ItemFireRate Item = iota
	ItemMaxHP
	ItemHeal
)

var items = []Item{ItemFireRate, ItemMaxHP, ItemHeal}

// String returns the item's label
func (i Item) String() string {
	switch i {
	case ItemFireRate:
		return "Fire rate"
	case ItemMaxHP:
		return "Max HP +1"
	case ItemHeal:
		return "Full heal"
	default:
		return "Unknown"
	}
}

// Action is a shop command read from input
type Action int

const (
	ActionNone Action = iota
	ActionBuyFireRate
	ActionBuyMaxHP
	ActionBuyHeal
	ActionContinue
)

// Shop sells upgrades for score, then resumes the run on the next wave
type Shop struct {
	cfg     config.ShopConfig
	sim     *system.Simulation
	back    scene.Scene
	message string

	readAction func() Action
}

// New creates a shop over the running simulation. back is the scene to
// resume once the player continues.
func New(cfg config.ShopConfig, sim *system.Simulation, back scene.Scene) *Shop {
	return &Shop{
		cfg:        cfg,
		sim:        sim,
		back:       back,
		readAction: readAction,
	}
}

func readAction() Action {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		return ActionBuyFireRate
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		return ActionBuyMaxHP
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		return ActionBuyHeal
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return ActionContinue
	default:
		return ActionNone
	}
}

// Price returns the score cost of an item
func (s *Shop) Price(item Item) int {
	switch item {
	case ItemFireRate:
		return s.cfg.FireRatePrice
	case ItemMaxHP:
		return s.cfg.MaxHPPrice
	case ItemHeal:
		return s.cfg.HealPrice
	default:
		return 0
	}
}

// Available reports whether buying the item would change anything
func (s *Shop) Available(item Item) bool {
	p := s.sim.Player()
	switch item {
	case ItemFireRate:
		return p.FireDelay > p.Stats().MinFireDelay
	case ItemHeal:
		return p.HP < p.MaxHP
	default:
		return true
	}
}

// Buy spends score on an item. Returns false if it is unaffordable or useless.
func (s *Shop) Buy(item Item) bool {
	if !s.Available(item) {
		s.message = fmt.Sprintf("%s: nothing to gain", item)
		return false
	}
	if !s.sim.SpendScore(s.Price(item)) {
		s.message = fmt.Sprintf("%s: need %d", item, s.Price(item))
		return false
	}

	p := s.sim.Player()
	switch item {
	case ItemFireRate:
		p.ReduceFireDelay(s.cfg.FireDelayStep)
	case ItemMaxHP:
		p.IncreaseMaxHP()
	case ItemHeal:
		p.FullHeal()
	}
	s.message = fmt.Sprintf("Bought %s", item)
	log.Printf("shop: bought %s, %d score left", item, s.sim.Score())
	return true
}

// Update handles purchases and leaves on continue (implements scene.Scene)
func (s *Shop) Update(_ float64) (scene.Scene, error) {
	switch s.readAction() {
	case ActionBuyFireRate:
		s.Buy(ItemFireRate)
	case ActionBuyMaxHP:
		s.Buy(ItemMaxHP)
	case ActionBuyHeal:
		s.Buy(ItemHeal)
	case ActionContinue:
		s.sim.NextWave()
		return s.back, nil
	}
	return nil, nil
}

// Draw renders the shop menu
func (s *Shop) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	hud := s.sim.HUD()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("WAVE %d CLEARED", hud.Wave), 40, 40)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d   HP: %d/%d   Fire delay: %.2fs",
		hud.Score, hud.HP, hud.MaxHP, s.sim.Player().FireDelay), 40, 70)

	for i, item := range items {
		line := fmt.Sprintf("[%d] %-10s %5d", i+1, item, s.Price(item))
		if !s.Available(item) {
			line += "  (maxed)"
		}
		ebitenutil.DebugPrintAt(screen, line, 60, 110+i*20)
	}
	ebitenutil.DebugPrintAt(screen, "[Enter] Next wave", 60, 110+len(items)*20+20)

	if s.message != "" {
		ebitenutil.DebugPrintAt(screen, s.message, 40, 110+len(items)*20+60)
	}
}

// OnEnter is called when entering this scene
func (s *Shop) OnEnter() {
	s.message = ""
}

// OnExit is called when leaving this scene
func (s *Shop) OnExit() {}
