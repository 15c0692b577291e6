package pursuit

import (
	"heartmaze/internal/core"
)

// spawnPursuers places PursuerCount pursuers, cycling through the configured
// spawns, then the layout's, then the interior corners. Spawns on walls are
// moved to the nearest floor cell.
func (s *Simulator) spawnPursuers(layoutSpawns []core.Point) {
	spawns := s.cfg.PursuerSpawns
	if len(spawns) == 0 {
		spawns = layoutSpawns
	}
	if len(spawns) == 0 {
		spawns = Corners(s.grid)
	}
	s.pursuers = s.pursuers[:0]
	for i := 0; i < s.cfg.PursuerCount; i++ {
		pos, ok := s.grid.NearestOpen(spawns[i%len(spawns)])
		if !ok {
			break
		}
		s.pursuers = append(s.pursuers, Pursuer{ID: i + 1, Pos: pos, State: StateNormal})
	}
}

// place regenerates tokens and power-ups. Eligible cells are floor cells
// other than the player spawn, visited in row-major order: each becomes a
// token with probability TokenDensity, then power-ups are drawn per kind from
// the eligible cells left over. A session never starts with an empty token
// set while an eligible cell exists.
func (s *Simulator) place() {
	clear(s.tokens)
	clear(s.powerUps)

	var eligible []core.Point
	for _, p := range s.grid.Floors() {
		if p != s.spawn {
			eligible = append(eligible, p)
		}
	}
	if len(eligible) == 0 {
		return
	}

	free := make([]core.Point, 0, len(eligible))
	for _, p := range eligible {
		if s.rand.Float64() < s.cfg.TokenDensity {
			s.tokens[p] = struct{}{}
			continue
		}
		free = append(free, p)
	}
	if len(s.tokens) == 0 {
		i := s.rand.IntN(len(free))
		s.tokens[free[i]] = struct{}{}
		free = append(free[:i], free[i+1:]...)
	}

	for _, kind := range PowerUpKinds {
		for n := 0; n < s.cfg.PowerUps.For(kind) && len(free) > 0; n++ {
			i := s.rand.IntN(len(free))
			s.powerUps[free[i]] = kind
			free = append(free[:i], free[i+1:]...)
		}
	}
}
