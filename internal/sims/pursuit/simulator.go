package pursuit

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"heartmaze/internal/core"
	rng "heartmaze/pkg/core"
)

// Simulator owns one pursuit session at a time: the grid, the player, the
// pursuers, tokens, power-ups, and the deferred effect reversions.
//
// A Simulator is not safe for concurrent use. Hosts drive Tick from a single
// periodic source and route input to MovePlayer from the same goroutine.
type Simulator struct {
	cfg   Config
	rand  rng.Rand
	clock core.Clock
	newID func() string
	sched *core.Scheduler[PowerUpKind]

	grid     *core.Grid
	spawn    core.Point
	id       string
	started  time.Time
	player   core.Point
	pursuers []Pursuer
	tokens   map[core.Point]struct{}
	powerUps map[core.Point]PowerUpKind
	massUsed bool
	score    int
	outcome  Outcome
	ticks    int
	events   []Event
}

// Option customizes a Simulator.
type Option func(*Simulator)

// WithRand injects the random source used for placement.
func WithRand(r rng.Rand) Option {
	return func(s *Simulator) {
		if r != nil {
			s.rand = r
		}
	}
}

// WithClock injects the clock used for effect durations and the time limit.
func WithClock(c core.Clock) Option {
	return func(s *Simulator) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithIDSource replaces the session ID generator.
func WithIDSource(fn func() string) Option {
	return func(s *Simulator) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// New returns an idle simulator. Call Start to begin a session.
func New(cfg Config, opts ...Option) *Simulator {
	cfg = cfg.Normalize()
	s := &Simulator{
		cfg:      cfg,
		rand:     rng.NewRNG(cfg.Seed),
		clock:    core.SystemClock{},
		newID:    uuid.NewString,
		sched:    core.NewScheduler[PowerUpKind](),
		tokens:   make(map[core.Point]struct{}),
		powerUps: make(map[core.Point]PowerUpKind),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the active configuration.
func (s *Simulator) Config() Config { return s.cfg }

// Reconfigure replaces the configuration. Placement settings take effect at
// the next Start; durations and points apply to later pickups.
func (s *Simulator) Reconfigure(cfg Config) { s.cfg = cfg.Normalize() }

// Grid returns the session grid, nil before the first Start.
func (s *Simulator) Grid() *core.Grid { return s.grid }

// Outcome reports the session status.
func (s *Simulator) Outcome() Outcome { return s.outcome }

// Score reports the session score.
func (s *Simulator) Score() int { return s.score }

// Start begins a new session on grid with the player at spawn. Any previous
// session is discarded, including pending effect reversions, whether or not
// it had ended. A spawn on a wall is moved to the nearest floor cell; a nil or
// all-wall grid leaves the simulator untouched.
func (s *Simulator) Start(grid *core.Grid, spawn core.Point) {
	s.begin(grid, spawn, nil)
}

// StartLayout begins a session on a parsed layout. The layout's pursuer
// spawns apply unless the config names its own.
func (s *Simulator) StartLayout(l Layout) {
	s.begin(l.Grid, l.Spawn, l.PursuerSpawns)
}

func (s *Simulator) begin(grid *core.Grid, spawn core.Point, pursuerSpawns []core.Point) {
	if grid == nil {
		return
	}
	spawn, ok := grid.NearestOpen(spawn)
	if !ok {
		return
	}
	s.sched.Reset()
	s.grid = grid.Clone()
	s.spawn = spawn
	s.player = spawn
	s.id = s.newID()
	s.started = s.clock.Now()
	s.score = 0
	s.ticks = 0
	s.massUsed = false
	s.events = s.events[:0]
	s.outcome = OutcomeActive
	s.spawnPursuers(pursuerSpawns)
	s.place()
}

// MovePlayer moves the player one cell. It returns false, changing nothing,
// when the session is not active or the destination is a wall or off-grid.
func (s *Simulator) MovePlayer(dir core.Direction) bool {
	if s.outcome != OutcomeActive {
		return false
	}
	s.settle()
	if s.outcome != OutcomeActive {
		return false
	}
	dest := s.player.Add(dir)
	if dest == s.player || !s.grid.Open(dest) {
		return false
	}
	s.player = dest

	if kind, ok := s.powerUps[dest]; ok {
		delete(s.powerUps, dest)
		s.activate(kind, dest)
	}
	if _, ok := s.tokens[dest]; ok {
		delete(s.tokens, dest)
		s.award(s.cfg.Points.Token)
		s.emit(Event{Kind: EventToken, At: dest, Points: s.cfg.Points.Token})
	}
	s.banish()
	s.checkTerminal()
	return true
}

// Tick advances every normal pursuer by one step.
func (s *Simulator) Tick() {
	if s.outcome != OutcomeActive {
		return
	}
	s.settle()
	if s.outcome != OutcomeActive {
		return
	}
	for i := range s.pursuers {
		if s.pursuers[i].State != StateNormal {
			continue
		}
		s.pursuers[i].Pos = Chase(s.grid, s.pursuers[i].Pos, s.player)
	}
	s.ticks++
	s.checkTerminal()
}

// Expire runs due effect reversions without moving anything.
func (s *Simulator) Expire() {
	if s.outcome != OutcomeActive {
		return
	}
	s.settle()
}

// Snapshot copies the session state. It does not mutate the simulator.
func (s *Simulator) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID: s.id,
		Player:    s.player,
		Pursuers:  slices.Clone(s.pursuers),
		Tokens:    make([]core.Point, 0, len(s.tokens)),
		PowerUps:  make([]PowerUp, 0, len(s.powerUps)),
		Score:     s.score,
		Outcome:   s.outcome,
		Ticks:     s.ticks,
	}
	if s.grid != nil {
		snap.Size = core.Size{W: s.grid.W, H: s.grid.H}
	}
	for p := range s.tokens {
		snap.Tokens = append(snap.Tokens, p)
	}
	slices.SortFunc(snap.Tokens, comparePoints)
	for p, k := range s.powerUps {
		snap.PowerUps = append(snap.PowerUps, PowerUp{Pos: p, Kind: k})
	}
	slices.SortFunc(snap.PowerUps, func(a, b PowerUp) int { return comparePoints(a.Pos, b.Pos) })
	if s.outcome == OutcomeActive {
		now := s.clock.Now()
		for _, kind := range PowerUpKinds {
			at, ok := s.sched.Pending(kind)
			if !ok {
				continue
			}
			snap.Effects = append(snap.Effects, ActiveEffect{Kind: kind, Remaining: max(at.Sub(now), 0)})
		}
	}
	return snap
}

// Drain returns the events recorded since the previous call.
func (s *Simulator) Drain() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := slices.Clone(s.events)
	s.events = s.events[:0]
	return out
}

// settle fires due reversions and the time limit, then re-checks the
// terminal condition since a revert can leave a normal pursuer on the player.
func (s *Simulator) settle() {
	now := s.clock.Now()
	s.sched.RunDue(now)
	if s.cfg.TimeLimit > 0 && !now.Before(s.started.Add(s.cfg.TimeLimit)) {
		s.end(OutcomeExpired, EventTimeUp)
		return
	}
	s.checkTerminal()
}

func (s *Simulator) banish() {
	kept := s.pursuers[:0]
	for _, p := range s.pursuers {
		if p.Pos == s.player && p.State == StateVulnerable {
			s.award(s.cfg.Points.Banish)
			s.emit(Event{Kind: EventBanish, At: p.Pos, PursuerID: p.ID, Points: s.cfg.Points.Banish})
			continue
		}
		kept = append(kept, p)
	}
	s.pursuers = kept
}

// checkTerminal ends the session on capture or clearance. Capture wins when
// both hold.
func (s *Simulator) checkTerminal() {
	if s.outcome != OutcomeActive {
		return
	}
	for _, p := range s.pursuers {
		if p.Pos == s.player && p.State == StateNormal {
			s.end(OutcomeCaptured, EventCaptured)
			return
		}
	}
	if len(s.tokens) == 0 {
		s.end(OutcomeCleared, EventCleared)
	}
}

func (s *Simulator) end(o Outcome, kind EventKind) {
	s.outcome = o
	s.sched.Reset()
	s.emit(Event{Kind: kind, At: s.player})
}

func (s *Simulator) award(points int) {
	if points > 0 {
		s.score += points
	}
}

func (s *Simulator) emit(e Event) { s.events = append(s.events, e) }

func comparePoints(a, b core.Point) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}
