package pursuit

import (
	"testing"

	"heartmaze/internal/core"
)

func TestGreedy(t *testing.T) {
	open := mustLayout(t,
		"#######",
		"#P....#",
		"#.###.#",
		"#.....#",
		"#######",
	).Grid

	tests := []struct {
		name string
		snap Snapshot
		want core.Direction
	}{
		{
			name: "nearest token",
			snap: Snapshot{Player: core.Point{X: 1, Y: 1}, Tokens: []core.Point{{X: 1, Y: 3}, {X: 5, Y: 3}}},
			want: core.DirDown,
		},
		{
			name: "power-ups count as goals",
			snap: Snapshot{Player: core.Point{X: 3, Y: 1}, PowerUps: []PowerUp{{Pos: core.Point{X: 5, Y: 1}, Kind: Freeze}}},
			want: core.DirRight,
		},
		{
			name: "routes around a chasing pursuer",
			snap: Snapshot{
				Player:   core.Point{X: 1, Y: 1},
				Tokens:   []core.Point{{X: 5, Y: 3}},
				Pursuers: []Pursuer{{Pos: core.Point{X: 3, Y: 1}}},
			},
			want: core.DirDown,
		},
		{
			name: "hunts vulnerable pursuers",
			snap: Snapshot{
				Player:   core.Point{X: 1, Y: 3},
				Pursuers: []Pursuer{{Pos: core.Point{X: 3, Y: 3}, State: StateVulnerable}},
			},
			want: core.DirRight,
		},
		{
			name: "frozen pursuers are not dangerous",
			snap: Snapshot{
				Player:   core.Point{X: 1, Y: 1},
				Tokens:   []core.Point{{X: 3, Y: 1}},
				Pursuers: []Pursuer{{Pos: core.Point{X: 4, Y: 1}, State: StateIncapacitated}},
			},
			want: core.DirRight,
		},
		{
			name: "nothing left",
			snap: Snapshot{Player: core.Point{X: 1, Y: 1}},
			want: core.DirNone,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.snap.Outcome = OutcomeActive
			if got := Greedy(open, tc.snap); got != tc.want {
				t.Fatalf("Greedy = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGreedyIgnoresEndedSessions(t *testing.T) {
	g := mustLayout(t, "#P.#").Grid
	snap := Snapshot{Player: core.Point{X: 1, Y: 0}, Tokens: []core.Point{{X: 2, Y: 0}}, Outcome: OutcomeCleared}
	if got := Greedy(g, snap); got != core.DirNone {
		t.Fatalf("Greedy on ended session = %v", got)
	}
}
