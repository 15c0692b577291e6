// Package hearts implements the heart collector: a timed round in an open room
// where hearts appear at a steady rate and the player sweeps up as many as
// possible before the countdown runs out.
package hearts

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"heartmaze/internal/core"
	"heartmaze/internal/theme"
	rng "heartmaze/pkg/core"
)

// Display buffer values.
const (
	DisplayFloor uint8 = iota
	DisplayWall
	DisplayHeart
	DisplayPlayer
	displayCount
)

// Phase is the round status.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	default:
		return "idle"
	}
}

type timer uint8

const (
	timerSpawn timer = iota
	timerEnd
)

// World is one heart collector board.
type World struct {
	cfg   Config
	clock core.Clock
	rand  rng.Rand
	sched *core.Scheduler[timer]
	theme theme.Theme

	grid    *core.Grid
	player  core.Point
	hearts  map[core.Point]struct{}
	phase   Phase
	score   int
	seed    int64
	started time.Time
	cues    []core.Cue
	cells   []uint8
}

// New returns an idle world. A nil clock uses wall time.
func New(cfg Config, clock core.Clock) *World {
	cfg = cfg.Normalize()
	if clock == nil {
		clock = core.SystemClock{}
	}
	g := core.NewGrid(cfg.Width, cfg.Height)
	g.Border()
	return &World{
		cfg:    cfg,
		clock:  clock,
		rand:   rng.NewRNG(cfg.Seed),
		sched:  core.NewScheduler[timer](),
		theme:  theme.MustLookup(theme.Default),
		grid:   g,
		hearts: make(map[core.Point]struct{}),
		seed:   cfg.Seed,
	}
}

// SetRand replaces the random source used for heart placement until the
// next Reset.
func (w *World) SetRand(r rng.Rand) {
	if r != nil {
		w.rand = r
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "hearts" }

// Size reports the board dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Phase reports the round status.
func (w *World) Phase() Phase { return w.phase }

// Score reports the round score.
func (w *World) Score() int { return w.score }

// Hearts lists the hearts on the board in row-major order.
func (w *World) Hearts() []core.Point {
	out := make([]core.Point, 0, len(w.hearts))
	for _, p := range w.grid.Floors() {
		if _, ok := w.hearts[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Player returns the player position.
func (w *World) Player() core.Point { return w.player }

// Remaining is the time left in the round.
func (w *World) Remaining() time.Duration {
	switch w.phase {
	case PhasePlaying:
		return max(w.started.Add(w.cfg.RoundLength).Sub(w.clock.Now()), 0)
	case PhaseFinished:
		return 0
	default:
		return w.cfg.RoundLength
	}
}

// Reset starts a new round. A zero seed reuses the configured seed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.seed = seed
	w.rand = rng.NewRNG(seed)
	w.sched.Reset()
	clear(w.hearts)
	w.cues = w.cues[:0]
	w.player = core.Point{X: w.grid.W / 2, Y: w.grid.H / 2}
	w.score = 0
	w.phase = PhasePlaying
	w.started = w.clock.Now()
	w.scheduleSpawn(w.started.Add(w.cfg.SpawnEvery))
	w.sched.Schedule(timerEnd, w.started.Add(w.cfg.RoundLength), w.finish)
}

// Step advances spawning and the countdown to the current time.
func (w *World) Step() { w.settle() }

// Expire is an alias for Step so frame-driven hosts settle the round too.
func (w *World) Expire() { w.settle() }

// TickInterval is how often hosts should call Step.
func (w *World) TickInterval() time.Duration { return w.cfg.SpawnEvery / 4 }

// Move walks the player one cell and collects any heart there.
func (w *World) Move(dir core.Direction) bool {
	if w.phase != PhasePlaying {
		return false
	}
	w.settle()
	if w.phase != PhasePlaying {
		return false
	}
	dest := w.player.Add(dir)
	if dest == w.player || !w.grid.Open(dest) {
		return false
	}
	w.player = dest
	if _, ok := w.hearts[dest]; ok {
		delete(w.hearts, dest)
		w.score += w.cfg.HeartPoints
		w.cues = append(w.cues, core.CueCollect)
	}
	return true
}

// settle runs spawns and the round end that came due since the last call.
func (w *World) settle() {
	if w.phase != PhasePlaying {
		return
	}
	now := w.clock.Now()
	for w.sched.RunDue(now) > 0 {
	}
}

func (w *World) scheduleSpawn(at time.Time) {
	w.sched.Schedule(timerSpawn, at, func() {
		w.spawn()
		w.scheduleSpawn(at.Add(w.cfg.SpawnEvery))
	})
}

// spawn drops a heart on a random floor cell that holds neither the player
// nor another heart.
func (w *World) spawn() {
	if w.cfg.MaxHearts > 0 && len(w.hearts) >= w.cfg.MaxHearts {
		return
	}
	var free []core.Point
	for _, p := range w.grid.Floors() {
		if _, taken := w.hearts[p]; taken || p == w.player {
			continue
		}
		free = append(free, p)
	}
	i := rng.Pick(w.rand, len(free))
	if i < 0 {
		return
	}
	w.hearts[free[i]] = struct{}{}
}

func (w *World) finish() {
	w.phase = PhaseFinished
	w.sched.Reset()
	if w.score > 50 {
		w.cues = append(w.cues, core.CueWin)
	} else {
		w.cues = append(w.cues, core.CueExpire)
	}
	log.Printf("hearts: round over score=%d rating=%q", w.score, Rate(w.score))
}

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 {
	total := w.grid.W * w.grid.H
	if cap(w.cells) < total {
		w.cells = make([]uint8, total)
	}
	w.cells = w.cells[:total]
	for i, c := range w.grid.Cells() {
		if c == core.CellWall {
			w.cells[i] = DisplayWall
		} else {
			w.cells[i] = DisplayFloor
		}
	}
	for p := range w.hearts {
		w.cells[w.grid.Index(p.X, p.Y)] = DisplayHeart
	}
	if w.phase != PhaseIdle {
		w.cells[w.grid.Index(w.player.X, w.player.Y)] = DisplayPlayer
	}
	return w.cells
}

// SetTheme selects the palette.
func (w *World) SetTheme(t theme.Theme) { w.theme = t }

// Palette maps display values to colors.
func (w *World) Palette() []color.RGBA {
	p := make([]color.RGBA, displayCount)
	p[DisplayFloor] = w.theme.Background
	p[DisplayWall] = w.theme.Surface
	p[DisplayHeart] = w.theme.Primary
	p[DisplayPlayer] = w.theme.Text
	return p
}

// Glyph maps display values to terminal runes.
func (w *World) Glyph(v uint8) rune {
	switch v {
	case DisplayWall:
		return '█'
	case DisplayHeart:
		return w.theme.Token
	case DisplayPlayer:
		return '@'
	default:
		return ' '
	}
}

// DrainCues returns the cues recorded since the previous call.
func (w *World) DrainCues() []core.Cue {
	if len(w.cues) == 0 {
		return nil
	}
	out := append([]core.Cue(nil), w.cues...)
	w.cues = w.cues[:0]
	return out
}

// Status summarizes the round for HUDs.
func (w *World) Status() core.Status {
	st := core.Status{
		Score:    w.score,
		Terminal: w.phase == PhaseFinished,
		Lines: []string{
			fmt.Sprintf("Score: %d", w.score),
			fmt.Sprintf("Time: %ds", int(w.Remaining().Round(time.Second)/time.Second)),
			fmt.Sprintf("Hearts: %d", len(w.hearts)),
		},
	}
	switch w.phase {
	case PhasePlaying:
		st.Headline = "Catch the hearts!"
	case PhaseFinished:
		st.Headline = Verdict(w.score)
		st.Lines = append(st.Lines, "Rating: "+Rate(w.score))
	default:
		st.Headline = "Press R to start"
	}
	return st
}

// Parameters exposes the round tunables.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Round",
		Params: []core.Parameter{
			core.Int64Param("seed", "Seed", w.seed),
			core.DurationParam("round_ms", "Round length", w.cfg.RoundLength),
			core.DurationParam("spawn_ms", "Spawn every", w.cfg.SpawnEvery),
			core.IntParam("heart_points", "Heart points", w.cfg.HeartPoints),
			core.IntParam("max_hearts", "Max hearts", w.cfg.MaxHearts),
		},
	}}}
}

// ParameterControls lists the HUD-adjustable values. Changes apply on the
// next reset.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "round_ms", Label: "Round ms", Type: core.ParamTypeDuration, Step: 5000, Min: 5000, Max: 120000, HasMin: true, HasMax: true},
		{Key: "spawn_ms", Label: "Spawn ms", Type: core.ParamTypeDuration, Step: 100, Min: 100, Max: 5000, HasMin: true, HasMax: true},
		{Key: "heart_points", Label: "Heart points", Type: core.ParamTypeInt, Step: 5, Min: 0, Max: 100, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer or millisecond tunable.
func (w *World) SetIntParameter(key string, value int) bool {
	cfg := w.cfg
	switch key {
	case "round_ms":
		if value <= 0 {
			return false
		}
		cfg.RoundLength = time.Duration(value) * time.Millisecond
	case "spawn_ms":
		if value <= 0 {
			return false
		}
		cfg.SpawnEvery = time.Duration(value) * time.Millisecond
	case "heart_points":
		if value < 0 {
			return false
		}
		cfg.HeartPoints = value
	case "max_hearts":
		if value < 0 {
			return false
		}
		cfg.MaxHearts = value
	default:
		return false
	}
	w.cfg = cfg.Normalize()
	return true
}

func init() {
	core.Register("hearts", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg), nil)
	})
}
