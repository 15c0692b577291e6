package core

import (
	"image/color"
	"sort"
	"time"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a grid simulation must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Controllable is implemented by sims that accept directional player input.
type Controllable interface {
	Move(dir Direction) bool
}

// Expirer is implemented by sims holding timed effects that hosts should
// settle once per frame, independently of the tick cadence.
type Expirer interface {
	Expire()
}

// Status is the host-facing readout of a running sim.
type Status struct {
	Score    int
	Terminal bool
	Headline string
	Lines    []string
}

// StatusProvider exposes a readout for HUDs and status bars.
type StatusProvider interface {
	Status() Status
}

// Cue names a sim occurrence worth a sound or a log line.
type Cue uint8

const (
	CueNone Cue = iota
	CueCollect
	CuePowerUp
	CueBanish
	CueSweep
	CueExpire
	CueWin
	CueLose
)

// CueSource is implemented by sims that report what happened since the last
// call. Each cue is returned once.
type CueSource interface {
	DrainCues() []Cue
}

// Ticker is implemented by sims that want Step called at their own cadence
// rather than once per host frame.
type Ticker interface {
	TickInterval() time.Duration
}

// PaletteProvider maps display values to colors for pixel hosts.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// GlyphProvider maps display values to runes for terminal hosts.
type GlyphProvider interface {
	Glyph(v uint8) rune
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists registered sims in lexical order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
