package pursuit

import "heartmaze/internal/core"

// Chase returns the next cell for a pursuer at from heading for target.
//
// It steps along the axis with the larger displacement (columns on a tie).
// When that cell is blocked it takes the first open neighbor in the order
// up, right, down, left, and stays put when boxed in. The heuristic is greedy:
// it can oscillate or stall behind walls.
func Chase(g *core.Grid, from, target core.Point) core.Point {
	if from == target {
		return from
	}
	next := from.Add(Toward(from, target))
	if g.Open(next) {
		return next
	}
	for _, d := range core.Directions {
		if n := from.Add(d); g.Open(n) {
			return n
		}
	}
	return from
}

// Toward picks the greedy direction from one cell to another.
func Toward(from, to core.Point) core.Direction {
	dx, dy := to.X-from.X, to.Y-from.Y
	if dx == 0 && dy == 0 {
		return core.DirNone
	}
	if abs(dx) >= abs(dy) {
		if dx > 0 {
			return core.DirRight
		}
		return core.DirLeft
	}
	if dy > 0 {
		return core.DirDown
	}
	return core.DirUp
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
