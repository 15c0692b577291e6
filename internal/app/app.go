//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"heartmaze/internal/audio"
	"heartmaze/internal/core"
	"heartmaze/internal/render"
	"heartmaze/internal/theme"
	"heartmaze/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var moveKeys = map[ebiten.Key]core.Direction{
	ebiten.KeyArrowUp:    core.DirUp,
	ebiten.KeyW:          core.DirUp,
	ebiten.KeyArrowRight: core.DirRight,
	ebiten.KeyD:          core.DirRight,
	ebiten.KeyArrowDown:  core.DirDown,
	ebiten.KeyS:          core.DirDown,
	ebiten.KeyArrowLeft:  core.DirLeft,
	ebiten.KeyA:          core.DirLeft,
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	sound   *audio.Player
	step    *core.FixedStep

	theme    theme.Theme
	themes   []string
	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	muted    bool
	seed     int64
	ended    bool
}

// New constructs a Game for the provided simulation. sound may be nil.
func New(sim core.Sim, cfg *Config, th theme.Theme, sound *audio.Player) *Game {
	size := sim.Size()
	step := core.NewFixedStep(cfg.TPS)
	if t, ok := sim.(core.Ticker); ok {
		step = core.NewFixedStepInterval(t.TickInterval())
	}
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, cfg.Scale, th),
		hud:      ui.NewHUD(sim, cfg.HUDWidth, th),
		sound:    sound,
		step:     step,
		theme:    th,
		themes:   theme.Keys(),
		scale:    cfg.Scale,
		hudWidth: max(cfg.HUDWidth, 0),
		muted:    cfg.Mute,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.ended = false
	if t, ok := g.sim.(core.Ticker); ok {
		g.step.SetInterval(t.TickInterval())
	}
	log.Printf("%s: new session seed=%d", g.sim.Name(), seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.overlay.SetPaused(g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	// S doubles as "down"; a new seed needs shift
	if inpututil.IsKeyJustPressed(ebiten.KeyS) && ebiten.IsKeyPressed(ebiten.KeyShift) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.cycleTheme()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.muted = !g.muted
	}

	g.overlay.Update()
	g.hud.Update(g.boardWidth())

	if ctrl, ok := g.sim.(core.Controllable); ok && !g.paused {
		for key, dir := range moveKeys {
			if inpututil.IsKeyJustPressed(key) && !ebiten.IsKeyPressed(ebiten.KeyShift) {
				ctrl.Move(dir)
			}
		}
	}
	if e, ok := g.sim.(core.Expirer); ok && !g.paused {
		e.Expire()
	}
	if (!g.paused && g.step.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	g.flushCues()
	return nil
}

func (g *Game) flushCues() {
	src, ok := g.sim.(core.CueSource)
	if !ok {
		return
	}
	cues := src.DrainCues()
	if !g.muted && g.sound != nil {
		g.sound.PlayAll(cues)
	}
	if sp, ok := g.sim.(core.StatusProvider); ok {
		st := sp.Status()
		if st.Terminal && !g.ended {
			log.Printf("session over: %s", Summary(g.sim, g.seed))
		}
		g.ended = st.Terminal
	}
}

func (g *Game) cycleTheme() {
	next := 0
	for i, key := range g.themes {
		if key == g.theme.Key {
			next = (i + 1) % len(g.themes)
		}
	}
	g.theme = theme.MustLookup(g.themes[next])
	if t, ok := g.sim.(theme.Setter); ok {
		t.SetTheme(g.theme)
	}
	g.overlay.SetTheme(g.theme)
	g.hud.SetTheme(g.theme)
}

func (g *Game) boardWidth() int { return g.sim.Size().W * g.scale }

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.theme.Background)
	var palette []color.RGBA
	if p, ok := g.sim.(core.PaletteProvider); ok {
		palette = p.Palette()
	}
	g.painter.Blit(screen, g.sim.Cells(), palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.boardWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
