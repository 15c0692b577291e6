package pursuit

import (
	"testing"
	"time"

	"heartmaze/internal/core"
)

// scriptRand replays fixed draws. Exhausted float draws return 0.99 (no
// token at typical densities); exhausted int draws return 0.
type scriptRand struct {
	floats []float64
	ints   []int
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptRand) IntN(n int) int {
	if len(r.ints) == 0 || n <= 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

var epoch = time.Date(2024, 2, 14, 12, 0, 0, 0, time.UTC)

// bareConfig has no pursuers and no power-ups unless a test adds them.
func bareConfig() Config {
	cfg := DefaultConfig()
	cfg.PursuerCount = 0
	cfg.TokenDensity = 0.5
	cfg.PowerUps = PowerUpCounts{}
	return cfg
}

func mustLayout(t *testing.T, rows ...string) Layout {
	t.Helper()
	l, err := ParseLayout("test", rows)
	if err != nil {
		t.Fatalf("parse layout: %v", err)
	}
	return l
}

func newTestSim(cfg Config, r *scriptRand) (*Simulator, *core.ManualClock) {
	clock := core.NewManualClock(epoch)
	n := 0
	sim := New(cfg, WithRand(r), WithClock(clock), WithIDSource(func() string {
		n++
		return "session-" + string(rune('0'+n))
	}))
	return sim, clock
}

func mustMove(t *testing.T, s *Simulator, dirs ...core.Direction) {
	t.Helper()
	for _, d := range dirs {
		if !s.MovePlayer(d) {
			t.Fatalf("move %s from %v rejected", d, s.Snapshot().Player)
		}
	}
}

func eventKinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}
