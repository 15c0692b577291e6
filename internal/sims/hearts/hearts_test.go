package hearts

import (
	"os"
	"slices"
	"testing"
	"time"

	"heartmaze/internal/core"
)

var epoch = time.Date(2024, 2, 14, 9, 0, 0, 0, time.UTC)

// firstFree always picks the first candidate cell.
type firstFree struct{}

func (firstFree) IntN(int) int     { return 0 }
func (firstFree) Float64() float64 { return 0 }

func smallWorld(t *testing.T) (*World, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(epoch)
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 5, 5
	w := New(cfg, clock)
	w.Reset(1)
	w.SetRand(firstFree{})
	return w, clock
}

func TestSpawnCadence(t *testing.T) {
	w, clock := smallWorld(t)
	if w.Player() != (core.Point{X: 2, Y: 2}) {
		t.Fatalf("player = %v", w.Player())
	}
	clock.Advance(799 * time.Millisecond)
	w.Step()
	if n := len(w.Hearts()); n != 0 {
		t.Fatalf("%d hearts before the first spawn", n)
	}
	clock.Advance(time.Millisecond)
	w.Step()
	if got := w.Hearts(); !slices.Equal(got, []core.Point{{X: 1, Y: 1}}) {
		t.Fatalf("hearts = %v", got)
	}
	clock.Advance(1600 * time.Millisecond)
	w.Step()
	want := []core.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}
	if got := w.Hearts(); !slices.Equal(got, want) {
		t.Fatalf("late step should catch up: hearts = %v, want %v", got, want)
	}
}

func TestSpawnAvoidsPlayerAndHearts(t *testing.T) {
	clock := core.NewManualClock(epoch)
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 5, 5
	w := New(cfg, clock)
	w.Reset(7)
	for i := 0; i < 15; i++ {
		clock.Advance(cfg.SpawnEvery)
		w.Step()
		hearts := w.Hearts()
		if slices.Contains(hearts, w.Player()) {
			t.Fatalf("heart spawned under the player")
		}
		if len(hearts) != min(i+1, 8) {
			t.Fatalf("step %d: %d hearts", i, len(hearts))
		}
	}
}

func TestMaxHearts(t *testing.T) {
	clock := core.NewManualClock(epoch)
	cfg := DefaultConfig()
	cfg.MaxHearts = 2
	w := New(cfg, clock)
	w.Reset(3)
	clock.Advance(5 * cfg.SpawnEvery)
	w.Step()
	if n := len(w.Hearts()); n != 2 {
		t.Fatalf("hearts = %d, want cap of 2", n)
	}
}

func TestCollectAndRoundEnd(t *testing.T) {
	w, clock := smallWorld(t)
	clock.Advance(800 * time.Millisecond)
	w.Step()
	if !w.Move(core.DirLeft) || !w.Move(core.DirUp) {
		t.Fatal("moves inside the room rejected")
	}
	if w.Score() != 10 || len(w.Hearts()) != 0 {
		t.Fatalf("score %d hearts %v", w.Score(), w.Hearts())
	}
	if w.Move(core.DirUp) {
		t.Fatal("walked into the wall")
	}
	if got := w.DrainCues(); !slices.Equal(got, []core.Cue{core.CueCollect}) {
		t.Fatalf("cues = %v", got)
	}
	if st := w.Status(); st.Terminal || st.Headline != "Catch the hearts!" {
		t.Fatalf("status = %+v", st)
	}

	clock.Set(epoch.Add(30 * time.Second))
	w.Step()
	if w.Phase() != PhaseFinished {
		t.Fatalf("phase = %s", w.Phase())
	}
	if w.Move(core.DirDown) {
		t.Fatal("move accepted after the round")
	}
	st := w.Status()
	if !st.Terminal || st.Headline != "Sweet! Every heart counts!" {
		t.Fatalf("final status = %+v", st)
	}
	if last := st.Lines[len(st.Lines)-1]; last != "Rating: Sweet Start!" {
		t.Fatalf("rating line = %q", last)
	}
	if got := w.DrainCues(); !slices.Equal(got, []core.Cue{core.CueExpire}) {
		t.Fatalf("cues = %v", got)
	}
	if w.Remaining() != 0 {
		t.Fatalf("remaining = %v", w.Remaining())
	}
}

func TestResetStartsFreshRound(t *testing.T) {
	w, clock := smallWorld(t)
	clock.Advance(800 * time.Millisecond)
	w.Step()
	w.Move(core.DirLeft)
	w.Move(core.DirUp)
	w.Reset(0)
	if w.Score() != 0 || len(w.Hearts()) != 0 || w.Phase() != PhasePlaying {
		t.Fatalf("reset left score %d hearts %d phase %s", w.Score(), len(w.Hearts()), w.Phase())
	}
	if w.Remaining() != w.Config().RoundLength {
		t.Fatalf("remaining = %v", w.Remaining())
	}
	if p, ok := w.Parameters().Lookup("seed"); !ok || p.Value != "214" {
		t.Fatalf("zero seed should reuse the configured one: %+v", p)
	}
}

func TestRating(t *testing.T) {
	cases := []struct {
		score   int
		rating  string
		verdict string
	}{
		{0, RatingSweetStart, "Sweet! Every heart counts!"},
		{50, RatingSweetStart, "Sweet! Every heart counts!"},
		{51, RatingLoveMaster, "Amazing! You collected so much love!"},
		{100, RatingLoveMaster, "Amazing! You collected so much love!"},
		{101, RatingUltimate, "Amazing! You collected so much love!"},
	}
	for _, tc := range cases {
		if got := Rate(tc.score); got != tc.rating {
			t.Fatalf("Rate(%d) = %q, want %q", tc.score, got, tc.rating)
		}
		if got := Verdict(tc.score); got != tc.verdict {
			t.Fatalf("Verdict(%d) = %q, want %q", tc.score, got, tc.verdict)
		}
	}
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Sims()["hearts"]
	if !ok {
		t.Fatal("hearts not registered")
	}
	s := factory(map[string]string{"width": "9", "height": "7", "round_ms": "10000"})
	if s.Size() != (core.Size{W: 9, H: 7}) {
		t.Fatalf("size = %+v", s.Size())
	}
	w := s.(*World)
	if w.Config().RoundLength != 10*time.Second {
		t.Fatalf("round length = %v", w.Config().RoundLength)
	}
	if w.Status().Headline != "Press R to start" {
		t.Fatalf("idle headline = %q", w.Status().Headline)
	}
	if !w.SetIntParameter("spawn_ms", 400) || w.SetIntParameter("spawn_ms", 0) {
		t.Fatal("spawn_ms bounds not enforced")
	}
	cells := w.Cells()
	if len(cells) != 63 || cells[0] != DisplayWall || cells[10] != DisplayFloor {
		t.Fatal("idle board should be an empty walled room")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/hearts.yaml"
	if err := os.WriteFile(path, []byte("round_length: 45s\nheart_points: 25\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RoundLength != 45*time.Second || cfg.HeartPoints != 25 || cfg.SpawnEvery != 800*time.Millisecond {
		t.Fatalf("cfg = %+v", cfg)
	}
	if err := os.WriteFile(path, []byte("hearts: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("unknown field accepted")
	}
}
