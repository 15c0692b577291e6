package core

import (
	"slices"
	"testing"
	"time"
)

func TestGridOutOfBoundsReadsAsWall(t *testing.T) {
	g := NewGrid(3, 2)
	if !g.Open(Point{X: 2, Y: 1}) {
		t.Fatal("fresh grid cell should be floor")
	}
	for _, p := range []Point{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 2}, {X: 0, Y: -1}} {
		if g.At(p) != CellWall {
			t.Fatalf("out-of-bounds %v should read as wall", p)
		}
	}
}

func TestGridFloorsRowMajor(t *testing.T) {
	g := NewGrid(3, 3)
	g.Border()
	g.Set(Point{X: 1, Y: 1}, CellFloor)
	got := g.Floors()
	if !slices.Equal(got, []Point{{X: 1, Y: 1}}) {
		t.Fatalf("floors = %v, want only the center", got)
	}
}

func TestGridNearestOpen(t *testing.T) {
	g := allWalls(5, 5)
	g.Set(Point{X: 3, Y: 1}, CellFloor)
	got, ok := g.NearestOpen(Point{X: 0, Y: 0})
	if !ok || got != (Point{X: 3, Y: 1}) {
		t.Fatalf("NearestOpen = %v,%v", got, ok)
	}
	if _, ok := allWalls(2, 2).NearestOpen(Point{}); ok {
		t.Fatal("all-wall grid should report no open cell")
	}
}

func allWalls(w, h int) *Grid {
	g := NewGrid(w, h)
	for i := range g.Cells() {
		g.Cells()[i] = CellWall
	}
	return g
}

func TestGridCloneIndependent(t *testing.T) {
	g := NewGrid(2, 2)
	c := g.Clone()
	c.Set(Point{}, CellWall)
	if g.At(Point{}) != CellFloor {
		t.Fatal("clone mutation leaked into original")
	}
}

func TestDirectionDeltaAndParse(t *testing.T) {
	cases := map[string]Direction{"up": DirUp, "K": DirUp, "d": DirRight, "j": DirDown, "left": DirLeft, "?": DirNone}
	for in, want := range cases {
		if got := ParseDirection(in); got != want {
			t.Fatalf("ParseDirection(%q) = %v, want %v", in, got, want)
		}
	}
	p := Point{X: 2, Y: 2}
	if got := p.Add(DirUp); got != (Point{X: 2, Y: 1}) {
		t.Fatalf("up from %v = %v", p, got)
	}
	if got := p.Add(DirLeft); got != (Point{X: 1, Y: 2}) {
		t.Fatalf("left from %v = %v", p, got)
	}
	if got := p.Add(DirNone); got != p {
		t.Fatalf("none should stay put, got %v", got)
	}
}

func TestSchedulerRunsDueInDeadlineOrder(t *testing.T) {
	s := NewScheduler[string]()
	base := time.Unix(100, 0)
	var order []string
	s.Schedule("b", base.Add(2*time.Second), func() { order = append(order, "b") })
	s.Schedule("a", base.Add(time.Second), func() { order = append(order, "a") })
	s.Schedule("c", base.Add(5*time.Second), func() { order = append(order, "c") })

	if ran := s.RunDue(base); ran != 0 {
		t.Fatalf("nothing should be due yet, ran %d", ran)
	}
	if ran := s.RunDue(base.Add(3 * time.Second)); ran != 2 {
		t.Fatalf("expected 2 actions, ran %d", ran)
	}
	if !slices.Equal(order, []string{"a", "b"}) {
		t.Fatalf("order = %v", order)
	}
	if s.Len() != 1 {
		t.Fatalf("expected one pending action, got %d", s.Len())
	}
}

func TestSchedulerReplaceAndCancel(t *testing.T) {
	s := NewScheduler[int]()
	base := time.Unix(0, 0)
	fired := 0
	s.Schedule(1, base.Add(time.Second), func() { fired = 1 })
	s.Schedule(1, base.Add(3*time.Second), func() { fired = 2 })
	if at, ok := s.Pending(1); !ok || !at.Equal(base.Add(3*time.Second)) {
		t.Fatalf("pending deadline = %v,%v", at, ok)
	}
	s.RunDue(base.Add(2 * time.Second))
	if fired != 0 {
		t.Fatal("replaced action must not fire at the old deadline")
	}
	if !s.Cancel(1) {
		t.Fatal("cancel should report a pending action")
	}
	s.RunDue(base.Add(time.Hour))
	if fired != 0 {
		t.Fatal("cancelled action fired")
	}

	s.Schedule(2, base, func() { fired = 3 })
	s.Reset()
	s.RunDue(base.Add(time.Hour))
	if fired != 0 || s.Len() != 0 {
		t.Fatal("reset should drop every pending action")
	}
}

func TestSchedulerActionCanReschedule(t *testing.T) {
	s := NewScheduler[string]()
	base := time.Unix(0, 0)
	count := 0
	var again func()
	again = func() {
		count++
		s.Schedule("loop", base, again)
	}
	s.Schedule("loop", base, again)
	if ran := s.RunDue(base); ran != 1 || count != 1 {
		t.Fatalf("ran=%d count=%d, want 1/1", ran, count)
	}
	if s.Len() != 1 {
		t.Fatal("rescheduled action should remain pending")
	}
}

func TestFixedStepInterval(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	fs := NewFixedStepInterval(100 * time.Millisecond).WithClock(clock)
	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	clock.Advance(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half an interval should not step")
	}
	clock.Advance(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full interval should step")
	}
	clock.Advance(10 * time.Second)
	steps := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps > 2 {
		t.Fatalf("backlog should be capped, got %d steps", steps)
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	Register("zz-test", func(map[string]string) Sim { return nil })
	Register("aa-test", func(map[string]string) Sim { return nil })
	Register("", func(map[string]string) Sim { return nil })
	names := SimNames()
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	if _, ok := Sims()[""]; ok {
		t.Fatal("empty names must not register")
	}
}

func TestParameterLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{Params: []Parameter{IntParam("n", "N", 4), DurationParam("d", "D", 1500*time.Millisecond)}}}}
	if p, ok := snap.Lookup("d"); !ok || p.Value != "1500" {
		t.Fatalf("lookup d = %+v,%v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("missing key should not resolve")
	}
}
