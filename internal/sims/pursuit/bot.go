package pursuit

import "heartmaze/internal/core"

// Greedy picks the player's next move for automated runs: the first step of
// a shortest path to the nearest token, power-up, or vulnerable pursuer,
// keeping clear of cells a normal pursuer occupies or can reach next tick.
// When every goal sits behind danger it retries ignoring danger, and it
// returns DirNone when nothing is reachable.
func Greedy(g *core.Grid, snap Snapshot) core.Direction {
	if g == nil || snap.Outcome != OutcomeActive {
		return core.DirNone
	}
	goals := make(map[core.Point]bool, len(snap.Tokens)+len(snap.PowerUps))
	for _, t := range snap.Tokens {
		goals[t] = true
	}
	for _, p := range snap.PowerUps {
		goals[p.Pos] = true
	}
	danger := make(map[core.Point]bool)
	for _, p := range snap.Pursuers {
		switch p.State {
		case StateVulnerable:
			goals[p.Pos] = true
		case StateNormal:
			danger[p.Pos] = true
			for _, d := range core.Directions {
				danger[p.Pos.Add(d)] = true
			}
		}
	}
	if len(goals) == 0 {
		return core.DirNone
	}
	if d := firstStep(g, snap.Player, goals, danger); d != core.DirNone {
		return d
	}
	return firstStep(g, snap.Player, goals, nil)
}

// firstStep runs a breadth-first search from start and returns the opening
// move toward the closest goal. Ties resolve in core.Directions order.
func firstStep(g *core.Grid, start core.Point, goals, avoid map[core.Point]bool) core.Direction {
	first := map[core.Point]core.Direction{start: core.DirNone}
	queue := []core.Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range core.Directions {
			next := cur.Add(d)
			if _, seen := first[next]; seen || !g.Open(next) || avoid[next] {
				continue
			}
			step := first[cur]
			if cur == start {
				step = d
			}
			if goals[next] {
				return step
			}
			first[next] = step
			queue = append(queue, next)
		}
	}
	return core.DirNone
}
