package pursuit

import (
	"time"

	"heartmaze/internal/core"
)

// PursuerState is the behavioral tag of a pursuer.
type PursuerState uint8

const (
	StateNormal PursuerState = iota
	StateVulnerable
	StateIncapacitated
)

func (s PursuerState) String() string {
	switch s {
	case StateVulnerable:
		return "vulnerable"
	case StateIncapacitated:
		return "incapacitated"
	default:
		return "normal"
	}
}

// MarshalText renders the state name for JSON and YAML snapshots.
func (s PursuerState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// PowerUpKind is the closed set of pickups.
type PowerUpKind uint8

const (
	RoleReversal PowerUpKind = iota
	Freeze
	MassElimination
)

// PowerUpKinds lists every kind in placement order.
var PowerUpKinds = [...]PowerUpKind{RoleReversal, Freeze, MassElimination}

func (k PowerUpKind) String() string {
	switch k {
	case RoleReversal:
		return "role_reversal"
	case Freeze:
		return "freeze"
	case MassElimination:
		return "mass_elimination"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind name.
func (k PowerUpKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// timed reports whether the kind applies a global state with an expiry.
func (k PowerUpKind) timed() bool { return k == RoleReversal || k == Freeze }

// state is the pursuer state a timed kind applies.
func (k PowerUpKind) state() PursuerState {
	if k == Freeze {
		return StateIncapacitated
	}
	return StateVulnerable
}

// Outcome is the session status.
type Outcome uint8

const (
	// OutcomeIdle means Start has not been called yet.
	OutcomeIdle Outcome = iota
	OutcomeActive
	OutcomeCaptured
	OutcomeCleared
	// OutcomeExpired is only reachable with a configured time limit.
	OutcomeExpired
)

func (o Outcome) String() string {
	switch o {
	case OutcomeActive:
		return "active"
	case OutcomeCaptured:
		return "captured"
	case OutcomeCleared:
		return "cleared"
	case OutcomeExpired:
		return "expired"
	default:
		return "idle"
	}
}

// MarshalText renders the outcome name.
func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Terminal reports whether the session has ended.
func (o Outcome) Terminal() bool {
	return o == OutcomeCaptured || o == OutcomeCleared || o == OutcomeExpired
}

// Pursuer is an agent chasing the player.
type Pursuer struct {
	ID    int          `json:"id"`
	Pos   core.Point   `json:"pos"`
	State PursuerState `json:"state"`
}

// PowerUp is a pickup placed on the grid.
type PowerUp struct {
	Pos  core.Point  `json:"pos"`
	Kind PowerUpKind `json:"kind"`
}

// ActiveEffect is a timed effect still pending reversion.
type ActiveEffect struct {
	Kind      PowerUpKind   `json:"kind"`
	Remaining time.Duration `json:"remaining"`
}

// Snapshot is a copy of the session state for renderers and tests.
type Snapshot struct {
	SessionID string         `json:"sessionId,omitempty"`
	Size      core.Size      `json:"size"`
	Player    core.Point     `json:"player"`
	Pursuers  []Pursuer      `json:"pursuers"`
	Tokens    []core.Point   `json:"tokens"`
	PowerUps  []PowerUp      `json:"powerUps"`
	Effects   []ActiveEffect `json:"effects,omitempty"`
	Score     int            `json:"score"`
	Outcome   Outcome        `json:"outcome"`
	Ticks     int            `json:"ticks"`
}

// HasToken reports whether p still holds a token.
func (s Snapshot) HasToken(p core.Point) bool {
	for _, t := range s.Tokens {
		if t == p {
			return true
		}
	}
	return false
}

// PursuerAt returns the first pursuer standing on p.
func (s Snapshot) PursuerAt(p core.Point) (Pursuer, bool) {
	for _, pu := range s.Pursuers {
		if pu.Pos == p {
			return pu, true
		}
	}
	return Pursuer{}, false
}
