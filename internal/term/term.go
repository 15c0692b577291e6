// Package term hosts a sim on a character terminal through tcell.
package term

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"heartmaze/internal/core"
	"heartmaze/internal/theme"
)

// DefaultFrame is the redraw cadence.
const DefaultFrame = 50 * time.Millisecond

// CuePlayer plays sim cues.
type CuePlayer interface {
	PlayAll(cues []core.Cue)
}

// Options configures a Host. Zero values pick defaults.
type Options struct {
	Theme theme.Theme
	Seed  int64
	// Logger receives session logs; nil discards them.
	Logger *log.Logger
	Sound  CuePlayer
	Mute   bool
	// Copy writes to the system clipboard; nil uses atotto/clipboard.
	Copy  func(string) error
	Frame time.Duration
	// Summary formats the text copied with 'y'.
	Summary func(core.Sim, int64) string
	// NewSeed supplies seeds for the 'S' key.
	NewSeed func() int64
}

// Host draws a sim on a tcell screen and routes keys to it. Only the Run
// goroutine touches the sim.
type Host struct {
	screen tcell.Screen
	sim    core.Sim
	opts   Options
	log    *log.Logger
	themes []string

	seed    int64
	paused  bool
	muted   bool
	ended   bool
	message string
}

// New wires a host. The screen must already be initialized.
func New(screen tcell.Screen, sim core.Sim, opts Options) *Host {
	if opts.Theme.Key == "" {
		opts.Theme = theme.MustLookup(theme.Default)
	}
	if opts.Frame <= 0 {
		opts.Frame = DefaultFrame
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	if opts.Summary == nil {
		opts.Summary = func(s core.Sim, seed int64) string { return fmt.Sprintf("%s seed=%d", s.Name(), seed) }
	}
	if opts.NewSeed == nil {
		opts.NewSeed = func() int64 { return time.Now().UnixNano() }
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Host{
		screen: screen,
		sim:    sim,
		opts:   opts,
		log:    logger,
		themes: theme.Keys(),
		seed:   opts.Seed,
		muted:  opts.Mute,
	}
}

// Run drives the sim until the player quits or ctx is cancelled. It returns
// nil on quit and ctx.Err() on cancellation.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	tickEvery := h.opts.Frame
	if t, ok := h.sim.(core.Ticker); ok && t.TickInterval() > 0 {
		tickEvery = t.TickInterval()
	}
	tick := time.NewTicker(tickEvery)
	defer tick.Stop()
	frame := time.NewTicker(h.opts.Frame)
	defer frame.Stop()

	h.log.Printf("%s: session start seed=%d", h.sim.Name(), h.seed)
	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !h.HandleEvent(ev) {
				h.log.Printf("quit: %s", h.opts.Summary(h.sim, h.seed))
				return nil
			}
			h.Draw()
		case <-tick.C:
			if !h.paused {
				h.sim.Step()
			}
		case <-frame.C:
			if e, ok := h.sim.(core.Expirer); ok && !h.paused {
				e.Expire()
			}
			h.flush()
			h.Draw()
		}
	}
}

// HandleEvent applies one terminal event and reports whether to keep
// running.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
	case *tcell.EventKey:
		return h.handleKey(ev)
	}
	return true
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		h.move(core.DirUp)
	case tcell.KeyRight:
		h.move(core.DirRight)
	case tcell.KeyDown:
		h.move(core.DirDown)
	case tcell.KeyLeft:
		h.move(core.DirLeft)
	case tcell.KeyRune:
		return h.handleRune(ev.Rune())
	}
	return true
}

func (h *Host) handleRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		return false
	case ' ':
		h.paused = !h.paused
	case 'n':
		h.sim.Step()
	case 'r':
		h.reset(h.seed)
	case 'S':
		h.reset(h.opts.NewSeed())
	case 't':
		h.cycleTheme()
	case 'm':
		h.muted = !h.muted
	case 'y':
		h.copySummary()
	default:
		if d := core.ParseDirection(string(r)); d != core.DirNone {
			h.move(d)
		}
	}
	return true
}

func (h *Host) move(d core.Direction) {
	if h.paused {
		return
	}
	if c, ok := h.sim.(core.Controllable); ok {
		c.Move(d)
		h.flush()
	}
}

func (h *Host) reset(seed int64) {
	h.seed = seed
	h.sim.Reset(seed)
	h.ended = false
	h.message = ""
	h.log.Printf("%s: session start seed=%d", h.sim.Name(), seed)
}

func (h *Host) cycleTheme() {
	next := 0
	for i, key := range h.themes {
		if key == h.opts.Theme.Key {
			next = (i + 1) % len(h.themes)
		}
	}
	h.opts.Theme = theme.MustLookup(h.themes[next])
	if s, ok := h.sim.(theme.Setter); ok {
		s.SetTheme(h.opts.Theme)
	}
	h.message = "Theme: " + h.opts.Theme.Name
}

func (h *Host) copySummary() {
	summary := h.opts.Summary(h.sim, h.seed)
	if err := h.opts.Copy(summary); err != nil {
		h.log.Printf("clipboard: %v", err)
		h.message = "Clipboard unavailable"
		return
	}
	h.message = "Copied: " + summary
}

// flush forwards cues to the sound player and logs session ends.
func (h *Host) flush() {
	if src, ok := h.sim.(core.CueSource); ok {
		cues := src.DrainCues()
		if len(cues) > 0 && !h.muted && h.opts.Sound != nil {
			h.opts.Sound.PlayAll(cues)
		}
	}
	if sp, ok := h.sim.(core.StatusProvider); ok {
		st := sp.Status()
		if st.Terminal && !h.ended {
			h.log.Printf("session over: %s", h.opts.Summary(h.sim, h.seed))
		}
		h.ended = st.Terminal
	}
}

// Draw paints the board, two columns per cell, with the status below it.
func (h *Host) Draw() {
	th := h.opts.Theme
	base := tcell.StyleDefault.Background(rgb(th.Background)).Foreground(rgb(th.Text))
	h.screen.SetStyle(base)
	h.screen.Clear()

	size := h.sim.Size()
	cells := h.sim.Cells()
	var palette []color.RGBA
	if p, ok := h.sim.(core.PaletteProvider); ok {
		palette = p.Palette()
	}
	glyphs, _ := h.sim.(core.GlyphProvider)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			i := y*size.W + x
			if i >= len(cells) {
				break
			}
			v := cells[i]
			r := '#'
			if glyphs != nil {
				r = glyphs.Glyph(v)
			} else if v == 0 {
				r = ' '
			}
			style := base
			if int(v) < len(palette) {
				style = style.Foreground(rgb(palette[v]))
			}
			h.screen.SetContent(2*x, y, r, nil, style)
			fill := ' '
			if r == '█' {
				fill = r
			}
			h.screen.SetContent(2*x+1, y, fill, nil, style)
		}
	}

	row := size.H + 1
	if sp, ok := h.sim.(core.StatusProvider); ok {
		st := sp.Status()
		h.text(0, row, st.Headline, base.Foreground(rgb(th.Accent)).Bold(true))
		row++
		h.text(0, row, strings.Join(st.Lines, "  "), base)
		row++
	}
	state := ""
	if h.paused {
		state = "PAUSED  "
	}
	if h.muted {
		state += "MUTED  "
	}
	h.text(0, row, state+"arrows/wasd move  space pause  n step  r restart  S new seed  t theme  y copy  q quit", base.Dim(true))
	if h.message != "" {
		h.text(0, row+1, h.message, base)
	}
	h.screen.Show()
}

func (h *Host) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		h.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
