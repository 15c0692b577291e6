package pursuit

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"heartmaze/internal/core"
	"heartmaze/internal/theme"
	rng "heartmaze/pkg/core"
)

// World adapts a Simulator to the core.Sim contract so the shared hosts can
// drive it: Reset starts a seeded session on the configured layout and Step
// is one pursuer tick.
type World struct {
	sim    *Simulator
	layout Layout
	seed   int64
	clock  core.Clock
	theme  theme.Theme
	cells  []uint8
}

// NewWorld builds a world for cfg. Unknown layouts fall back to "garden".
func NewWorld(cfg Config, clock core.Clock) *World {
	cfg = cfg.Normalize()
	layout, err := cfg.ResolveLayout()
	if err != nil {
		log.Printf("pursuit: %v; using garden layout", err)
		layout, _ = BuiltinLayout("garden")
		cfg.Grid = nil
		cfg.Layout = "garden"
	}
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &World{
		sim:    New(cfg, WithClock(clock)),
		layout: layout,
		seed:   cfg.Seed,
		clock:  clock,
		theme:  theme.MustLookup(theme.Default),
	}
}

// Sim exposes the underlying simulator.
func (w *World) Sim() *Simulator { return w.sim }

// Name returns the simulation identifier.
func (w *World) Name() string { return "pursuit" }

// Size reports the layout dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.layout.Grid.W, H: w.layout.Grid.H} }

// Reset starts a new session. A zero seed reuses the configured seed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.sim.Config().Seed
	}
	w.seed = seed
	w.sim.rand = rng.NewRNG(seed)
	w.sim.StartLayout(w.layout)
}

// Step advances pursuers by one tick.
func (w *World) Step() { w.sim.Tick() }

// Move routes player input.
func (w *World) Move(dir core.Direction) bool { return w.sim.MovePlayer(dir) }

// Expire settles timed effects.
func (w *World) Expire() { w.sim.Expire() }

// TickInterval is the configured pursuer cadence.
func (w *World) TickInterval() time.Duration { return w.sim.Config().TickInterval }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 {
	w.cells = Render(w.layout.Grid, w.sim.Snapshot(), w.cells)
	return w.cells
}

// SetTheme selects the palette returned by Palette.
func (w *World) SetTheme(t theme.Theme) { w.theme = t }

// Palette maps display values to colors.
func (w *World) Palette() []color.RGBA { return Palette(w.theme) }

// Glyph maps display values to terminal runes.
func (w *World) Glyph(v uint8) rune { return Glyph(v, w.theme) }

// DrainCues converts the simulator's events into host cues.
func (w *World) DrainCues() []core.Cue {
	events := w.sim.Drain()
	if len(events) == 0 {
		return nil
	}
	cues := make([]core.Cue, 0, len(events))
	for _, e := range events {
		if c := e.Cue(); c != core.CueNone {
			cues = append(cues, c)
		}
	}
	return cues
}

// Status summarizes the session for HUDs.
func (w *World) Status() core.Status {
	snap := w.sim.Snapshot()
	st := core.Status{
		Score:    snap.Score,
		Terminal: snap.Outcome.Terminal(),
		Headline: headline(snap.Outcome),
		Lines: []string{
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("Hearts left: %d", len(snap.Tokens)),
			fmt.Sprintf("Pursuers: %d", len(snap.Pursuers)),
		},
	}
	for _, e := range snap.Effects {
		st.Lines = append(st.Lines, fmt.Sprintf("%s %.1fs", effectLabel(e.Kind), e.Remaining.Seconds()))
	}
	return st
}

func headline(o Outcome) string {
	switch o {
	case OutcomeActive:
		return "Collect every heart!"
	case OutcomeCaptured:
		return "Caught! Press R to try again"
	case OutcomeCleared:
		return "All hearts collected!"
	case OutcomeExpired:
		return "Time's up!"
	default:
		return "Press R to start"
	}
}

func effectLabel(k PowerUpKind) string {
	switch k {
	case RoleReversal:
		return "Role reversal"
	case Freeze:
		return "Freeze"
	default:
		return k.String()
	}
}

func init() {
	core.Register("pursuit", func(cfg map[string]string) core.Sim {
		return NewWorld(FromMap(cfg), nil)
	})
}
