package pursuit

import (
	"errors"
	"slices"
	"testing"

	"heartmaze/internal/core"
)

func TestBuiltinLayoutsAreUsable(t *testing.T) {
	names := LayoutNames()
	if !slices.Equal(names, []string{"garden", "hall", "open"}) {
		t.Fatalf("layout names = %v", names)
	}
	for _, name := range names {
		l, err := BuiltinLayout(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !l.Grid.Open(l.Spawn) {
			t.Fatalf("%s: spawn %v is not floor", name, l.Spawn)
		}
		for _, c := range Corners(l.Grid) {
			if !l.Grid.Open(c) {
				t.Fatalf("%s: corner %v is a wall", name, c)
			}
		}
		for x := 0; x < l.Grid.W; x++ {
			if l.Grid.Open(core.Point{X: x, Y: 0}) || l.Grid.Open(core.Point{X: x, Y: l.Grid.H - 1}) {
				t.Fatalf("%s: border open at column %d", name, x)
			}
		}
	}
	if _, err := BuiltinLayout("nope"); !errors.Is(err, ErrUnknownLayout) {
		t.Fatalf("unknown layout err = %v", err)
	}
}

func TestParseLayoutGlyphs(t *testing.T) {
	l, err := ParseLayout("mini", []string{
		"#####",
		"#G.P#",
		"#..G#",
		"#####",
	})
	if err != nil {
		t.Fatal(err)
	}
	if l.Name != "mini" || l.Spawn != (core.Point{X: 3, Y: 1}) {
		t.Fatalf("layout = %+v", l)
	}
	want := []core.Point{{X: 1, Y: 1}, {X: 3, Y: 2}}
	if !slices.Equal(l.PursuerSpawns, want) {
		t.Fatalf("pursuer spawns = %v, want %v", l.PursuerSpawns, want)
	}
	for _, p := range append(want, l.Spawn) {
		if !l.Grid.Open(p) {
			t.Fatalf("marker cell %v should be floor", p)
		}
	}
}

func TestParseLayoutErrors(t *testing.T) {
	cases := []struct {
		rows []string
		want error
	}{
		{rows: nil, want: ErrEmptyLayout},
		{rows: []string{""}, want: ErrEmptyLayout},
		{rows: []string{"#P#", "##"}, want: ErrRaggedLayout},
		{rows: []string{"#.#"}, want: ErrNoSpawn},
		{rows: []string{"#Px"}, want: ErrBadGlyph},
	}
	for _, tc := range cases {
		if _, err := ParseLayout("bad", tc.rows); !errors.Is(err, tc.want) {
			t.Fatalf("%q: err = %v, want %v", tc.rows, err, tc.want)
		}
	}
}

func TestChase(t *testing.T) {
	open := mustLayout(t,
		"#######",
		"#.....#",
		"#..P..#",
		"#.....#",
		"#######",
	).Grid
	cases := []struct {
		name         string
		from, target core.Point
		want         core.Point
	}{
		{"at target", core.Point{X: 3, Y: 2}, core.Point{X: 3, Y: 2}, core.Point{X: 3, Y: 2}},
		{"column axis", core.Point{X: 1, Y: 2}, core.Point{X: 5, Y: 3}, core.Point{X: 2, Y: 2}},
		{"row axis", core.Point{X: 3, Y: 1}, core.Point{X: 4, Y: 3}, core.Point{X: 3, Y: 2}},
		{"tie prefers columns", core.Point{X: 1, Y: 1}, core.Point{X: 3, Y: 3}, core.Point{X: 2, Y: 1}},
		{"upward", core.Point{X: 3, Y: 3}, core.Point{X: 3, Y: 1}, core.Point{X: 3, Y: 2}},
	}
	for _, tc := range cases {
		if got := Chase(open, tc.from, tc.target); got != tc.want {
			t.Fatalf("%s: Chase(%v, %v) = %v, want %v", tc.name, tc.from, tc.target, got, tc.want)
		}
	}

	walled := mustLayout(t,
		"#####",
		"#.#.#",
		"#P..#",
		"#####",
	).Grid
	// blocked to the right: first open neighbor in up, right, down, left order
	if got := Chase(walled, core.Point{X: 1, Y: 1}, core.Point{X: 3, Y: 1}); got != (core.Point{X: 1, Y: 2}) {
		t.Fatalf("fallback = %v", got)
	}
	boxed := mustLayout(t,
		"###",
		"#P#",
		"###",
	).Grid
	if got := Chase(boxed, core.Point{X: 1, Y: 1}, core.Point{X: 5, Y: 5}); got != (core.Point{X: 1, Y: 1}) {
		t.Fatalf("boxed pursuer moved to %v", got)
	}
}
