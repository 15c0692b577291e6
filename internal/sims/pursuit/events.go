package pursuit

import (
	"fmt"

	"heartmaze/internal/core"
)

// EventKind classifies what happened during an operation.
type EventKind uint8

const (
	EventToken EventKind = iota
	EventPowerUp
	EventBanish
	EventMassElimination
	EventEffectExpired
	EventCaptured
	EventCleared
	EventTimeUp
)

func (k EventKind) String() string {
	switch k {
	case EventToken:
		return "token"
	case EventPowerUp:
		return "power_up"
	case EventBanish:
		return "banish"
	case EventMassElimination:
		return "mass_elimination"
	case EventEffectExpired:
		return "effect_expired"
	case EventCaptured:
		return "captured"
	case EventCleared:
		return "cleared"
	case EventTimeUp:
		return "time_up"
	default:
		return "unknown"
	}
}

// Event records one occurrence. Points is the score it granted.
type Event struct {
	Kind      EventKind
	At        core.Point
	PowerUp   PowerUpKind
	PursuerID int
	Points    int
}

func (e Event) String() string {
	switch e.Kind {
	case EventPowerUp, EventEffectExpired, EventMassElimination:
		return fmt.Sprintf("%s %s at (%d,%d) +%d", e.Kind, e.PowerUp, e.At.X, e.At.Y, e.Points)
	case EventBanish:
		return fmt.Sprintf("%s pursuer %d at (%d,%d) +%d", e.Kind, e.PursuerID, e.At.X, e.At.Y, e.Points)
	default:
		return fmt.Sprintf("%s at (%d,%d) +%d", e.Kind, e.At.X, e.At.Y, e.Points)
	}
}

// Cue maps the event to a host cue.
func (e Event) Cue() core.Cue {
	switch e.Kind {
	case EventToken:
		return core.CueCollect
	case EventPowerUp:
		return core.CuePowerUp
	case EventBanish:
		return core.CueBanish
	case EventMassElimination:
		return core.CueSweep
	case EventEffectExpired:
		return core.CueExpire
	case EventCleared:
		return core.CueWin
	case EventCaptured, EventTimeUp:
		return core.CueLose
	default:
		return core.CueNone
	}
}
