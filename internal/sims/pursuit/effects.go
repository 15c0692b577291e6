package pursuit

import "heartmaze/internal/core"

// activate applies a collected power-up.
func (s *Simulator) activate(kind PowerUpKind, at core.Point) {
	if kind == MassElimination {
		s.eliminate(at)
		return
	}
	if !kind.timed() {
		return
	}
	state := kind.state()
	for i := range s.pursuers {
		s.pursuers[i].State = state
	}
	s.award(s.cfg.Points.PowerUp)
	s.emit(Event{Kind: EventPowerUp, At: at, PowerUp: kind, Points: s.cfg.Points.PowerUp})
	// a repeat pickup replaces the pending reversion, refreshing the deadline
	s.sched.Schedule(kind, s.clock.Now().Add(s.cfg.Durations.For(kind)), func() {
		s.revert(kind)
	})
}

// revert returns pursuers still in kind's state to normal.
func (s *Simulator) revert(kind PowerUpKind) {
	state := kind.state()
	for i := range s.pursuers {
		if s.pursuers[i].State == state {
			s.pursuers[i].State = StateNormal
		}
	}
	s.emit(Event{Kind: EventEffectExpired, At: s.player, PowerUp: kind})
}

// eliminate removes every pursuer once per session. Later pickups are
// consumed without effect.
func (s *Simulator) eliminate(at core.Point) {
	if s.massUsed {
		s.emit(Event{Kind: EventPowerUp, At: at, PowerUp: MassElimination})
		return
	}
	s.massUsed = true
	s.pursuers = s.pursuers[:0]
	s.sched.Cancel(RoleReversal)
	s.sched.Cancel(Freeze)
	points := s.cfg.Points.PowerUp + s.cfg.Points.MassElimination
	s.award(points)
	s.emit(Event{Kind: EventMassElimination, At: at, PowerUp: MassElimination, Points: points})
}
