// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/invaders/internal/application/scene"
	"github.com/younwookim/invaders/internal/application/scene/shop"
	"github.com/younwookim/invaders/internal/application/state"
	"github.com/younwookim/invaders/internal/application/system"
	"github.com/younwookim/invaders/internal/domain/entity"
	"github.com/younwookim/invaders/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG          = color.RGBA{10, 10, 24, 255}
	colorPlayer      = color.RGBA{100, 200, 255, 255}
	colorFlash       = color.RGBA{255, 255, 255, 220}
	colorShield      = color.RGBA{80, 160, 255, 160}
	colorBullet      = color.RGBA{255, 240, 120, 255}
	colorEnemyBullet = color.RGBA{255, 90, 90, 255}
	colorExplosion   = color.RGBA{255, 170, 60, 255}
	colorPlayerHit   = color.RGBA{255, 255, 255, 255}
	colorHealthBG    = color.RGBA{60, 60, 60, 255}
	colorHealthFG    = color.RGBA{220, 60, 60, 255}
	colorOverlay     = color.RGBA{0, 0, 0, 150}
)

var kindColors = map[entity.Kind]color.RGBA{
	entity.KindBasic:      {120, 220, 120, 255},
	entity.KindFast:       {120, 220, 220, 255},
	entity.KindZigzag:     {220, 220, 120, 255},
	entity.KindTank:       {160, 120, 220, 255},
	entity.KindTripleShot: {230, 140, 60, 255},
	entity.KindDiagonal:   {230, 100, 180, 255},
	entity.KindBurst:      {240, 80, 80, 255},
	entity.KindSniper:     {200, 200, 255, 255},
}

var pickupColors = map[entity.PickupKind]color.RGBA{
	entity.PickupRapidFire: {255, 220, 0, 255},
	entity.PickupShield:    {80, 160, 255, 255},
	entity.PickupHeal:      {80, 230, 120, 255},
}

var colorBoss = color.RGBA{230, 60, 60, 255}

// Playing is the main gameplay scene
type Playing struct {
	config *config.GameConfig
	sim    *system.Simulation
	state  state.GameState

	inputSystem *system.InputSystem
	readInput   func() system.InputState

	screenW int
	screenH int

	// Feedback
	shake       *gween.Tween
	shakeAmount float64
	jitter      *rand.Rand // Cosmetic only, never shared with the simulation

	seed    int64
	newMenu func() scene.Scene
}

// New creates a new Playing scene and starts a run seeded with seed
func New(cfg *config.GameConfig, seed int64) *Playing {
	p := &Playing{
		config:      cfg,
		sim:         system.NewSimulation(cfg, rand.New(rand.NewSource(seed))),
		state:       state.StatePlaying,
		inputSystem: system.NewInputSystem(cfg.Balance.Player.AutoFire),
		screenW:     cfg.Balance.Display.ScreenWidth,
		screenH:     cfg.Balance.Display.ScreenHeight,
		jitter:      rand.New(rand.NewSource(seed + 1)),
		seed:        seed,
	}
	p.readInput = p.inputSystem.GetInput

	// Set up combat callbacks
	p.sim.Combat().OnPlayerHit = func(outcome entity.DamageOutcome) {
		if outcome != entity.DamageIgnored {
			p.startShake()
		}
	}

	p.sim.Start()
	log.Printf("run started (seed: %d)", seed)
	return p
}

// Simulation returns the running simulation
func (p *Playing) Simulation() *system.Simulation {
	return p.sim
}

// SetMenu sets the scene game over returns to
func (p *Playing) SetMenu(newMenu func() scene.Scene) {
	p.newMenu = newMenu
}

// State returns the scene's current state
func (p *Playing) State() state.GameState {
	return p.state
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	input := p.readInput()

	if p.state.Simulating() {
		return p.updatePlaying(dt, input), nil
	}

	switch p.state {
	case state.StatePaused:
		if input.Pause {
			p.state = state.StatePlaying
		}
	case state.StateGameOver:
		if input.Confirm && p.newMenu != nil {
			p.state = state.StateMenu
			return p.newMenu(), nil
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying(dt float64, input system.InputState) scene.Scene {
	if input.Pause {
		p.state = state.StatePaused
		return nil
	}

	res := p.sim.Step(dt, p.inputSystem.Intents(input))
	p.updateShake(dt)

	hud := p.sim.HUD()
	switch {
	case res.PlayerDied:
		p.state = state.StateGameOver
		log.Printf("game over on wave %d (score: %d)", hud.Wave, hud.Score)
	case res.WaveCleared:
		p.state = state.StateShop
		log.Printf("wave %d cleared (score: %d)", hud.Wave, hud.Score)
		return shop.New(p.config.Balance.Shop, p.sim, p)
	}
	return nil
}

func (p *Playing) startShake() {
	fb := p.config.Balance.Feedback
	p.shake = gween.New(float32(fb.ScreenShake), 0, float32(fb.ScreenShakeDecay), ease.OutQuad)
	p.shakeAmount = fb.ScreenShake
}

func (p *Playing) updateShake(dt float64) {
	if p.shake == nil {
		return
	}
	current, finished := p.shake.Update(float32(dt))
	p.shakeAmount = float64(current)
	if finished {
		p.shake = nil
		p.shakeAmount = 0
	}
}

func (p *Playing) logWave() {
	hud := p.sim.HUD()
	log.Printf("wave %d: %d enemies", hud.Wave, hud.EnemiesAlive)
	for _, e := range p.sim.Enemies() {
		if e.IsBoss() {
			log.Printf("wave %d: boss %s (hp: %d)", hud.Wave, e.Kind, e.HP)
		}
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	ox, oy := 0.0, 0.0
	if p.shakeAmount > 0 {
		ox = p.shakeAmount * (2*p.jitter.Float64() - 1)
		oy = p.shakeAmount * (2*p.jitter.Float64() - 1)
	}

	p.drawPickups(screen, ox, oy)
	p.drawEnemies(screen, ox, oy)
	p.drawProjectiles(screen, ox, oy)
	p.drawPlayer(screen, ox, oy)
	p.drawEffects(screen, ox, oy)

	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED", "[P] Resume")
	case state.StateGameOver:
		p.drawOverlay(screen, "GAME OVER", fmt.Sprintf("Score: %d   [Enter] Menu", p.sim.Score()))
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, ox, oy float64) {
	pl := p.sim.Player()
	if pl.IsDead() {
		return
	}

	if pl.ShieldActive() {
		vector.StrokeCircle(screen, float32(pl.X+ox), float32(pl.Y+oy), float32(pl.Radius+8), 3, colorShield, true)
	}

	c := colorPlayer
	// Blink while invincible, solid white on the hit flash
	if pl.HitFlashActive() || (pl.IsInvincible() && int(pl.InvincibleRemaining()*20)%2 == 0) {
		c = colorFlash
	}
	vector.DrawFilledCircle(screen, float32(pl.X+ox), float32(pl.Y+oy), float32(pl.Radius), c, true)
}

func (p *Playing) drawEnemies(screen *ebiten.Image, ox, oy float64) {
	for _, e := range p.sim.Enemies() {
		if !e.Alive {
			continue
		}
		x, y, w, h := e.Shape().Bounds()

		c, ok := kindColors[e.Kind]
		if e.IsBoss() || !ok {
			c = colorBoss
		}
		// Two-frame march animation
		if e.Frame == 1 {
			c.A = 200
		}
		ebitenutil.DrawRect(screen, x+ox, y+oy, w, h, c)

		if e.MaxHP > 1 {
			ratio := float64(e.HP) / float64(e.MaxHP)
			ebitenutil.DrawRect(screen, x+ox, y+oy-6, w, 3, colorHealthBG)
			ebitenutil.DrawRect(screen, x+ox, y+oy-6, w*ratio, 3, colorHealthFG)
		}
	}
}

func (p *Playing) drawProjectiles(screen *ebiten.Image, ox, oy float64) {
	for _, pr := range p.sim.Projectiles() {
		if !pr.Active {
			continue
		}
		c := colorEnemyBullet
		if pr.IsPlayer() {
			c = colorBullet
		}
		vector.DrawFilledCircle(screen, float32(pr.X+ox), float32(pr.Y+oy), float32(pr.Radius), c, false)
	}
}

func (p *Playing) drawPickups(screen *ebiten.Image, ox, oy float64) {
	for _, pk := range p.sim.Pickups() {
		if !pk.Active {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pk.X+ox), float32(pk.Y+oy), float32(pk.Radius), pickupColors[pk.Kind], true)
	}
}

func (p *Playing) drawEffects(screen *ebiten.Image, ox, oy float64) {
	for _, fx := range p.sim.Effects() {
		base := colorExplosion
		spread := 40.0
		if fx.Kind == entity.EffectPlayerHit {
			base = colorPlayerHit
			spread = 24
		}

		// Pre-multiplied alpha
		a := fx.Alpha()
		c := color.RGBA{
			uint8(float64(base.R) * a),
			uint8(float64(base.G) * a),
			uint8(float64(base.B) * a),
			uint8(float64(base.A) * a),
		}

		r := fx.Progress * spread
		for i := 0; i < fx.Particles; i++ {
			angle := 2 * math.Pi * float64(i) / float64(fx.Particles)
			x := fx.X + math.Cos(angle)*r
			y := fx.Y + math.Sin(angle)*r
			ebitenutil.DrawRect(screen, x+ox-1.5, y+oy-1.5, 3, 3, c)
		}
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	hud := p.sim.HUD()

	// HP bar
	barW := 120.0
	ebitenutil.DrawRect(screen, 10, 10, barW, 8, colorHealthBG)
	if hud.MaxHP > 0 {
		ebitenutil.DrawRect(screen, 10, 10, barW*float64(hud.HP)/float64(hud.MaxHP), 8, colorHealthFG)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %d/%d  Wave %d  Score %d  Enemies %d",
		hud.HP, hud.MaxHP, hud.Wave, hud.Score, hud.EnemiesAlive), 140, 6)

	ult := fmt.Sprintf("Ultimate %d/%d", hud.UltimateCharge, hud.UltimateThreshold)
	switch {
	case hud.UltimateRemaining > 0:
		ult = fmt.Sprintf("ULTIMATE %.1fs", hud.UltimateRemaining)
	case hud.UltimateReady:
		ult = "Ultimate READY [Space]"
	}
	ebitenutil.DebugPrintAt(screen, ult, 10, 24)

	line := 40
	if hud.ShieldCharges > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Shield x%d %.1fs", hud.ShieldCharges, hud.ShieldRemaining), 10, line)
		line += 16
	}
	if hud.RapidFireRemaining > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Rapid fire %.1fs", hud.RapidFireRemaining), 10, line)
	}
}

func (p *Playing) drawOverlay(screen *ebiten.Image, title, hint string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)
	ebitenutil.DebugPrintAt(screen, title, p.screenW/2-len(title)*3, p.screenH/2-20)
	ebitenutil.DebugPrintAt(screen, hint, p.screenW/2-len(hint)*3, p.screenH/2)
}

// OnEnter is called when entering this scene, including returns from the shop
func (p *Playing) OnEnter() {
	p.state = state.StatePlaying
	p.logWave()
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
