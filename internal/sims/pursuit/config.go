package pursuit

import (
	"strconv"
	"time"

	"heartmaze/internal/core"
)

// PowerUpCounts is the number of pickups placed per kind.
type PowerUpCounts struct {
	RoleReversal    int `yaml:"role_reversal"`
	Freeze          int `yaml:"freeze"`
	MassElimination int `yaml:"mass_elimination"`
}

// For returns the count configured for kind.
func (c PowerUpCounts) For(kind PowerUpKind) int {
	switch kind {
	case RoleReversal:
		return c.RoleReversal
	case Freeze:
		return c.Freeze
	case MassElimination:
		return c.MassElimination
	default:
		return 0
	}
}

// Durations holds effect lifetimes in wall-clock time.
type Durations struct {
	RoleReversal time.Duration `yaml:"role_reversal"`
	Freeze       time.Duration `yaml:"freeze"`
}

// For returns the duration of a timed kind, zero otherwise.
func (d Durations) For(kind PowerUpKind) time.Duration {
	switch kind {
	case RoleReversal:
		return d.RoleReversal
	case Freeze:
		return d.Freeze
	default:
		return 0
	}
}

// Points holds score increments per event kind.
type Points struct {
	Token           int `yaml:"token"`
	Banish          int `yaml:"banish"`
	PowerUp         int `yaml:"power_up"`
	MassElimination int `yaml:"mass_elimination"`
}

// Config controls a pursuit session.
type Config struct {
	// Layout names a built-in layout; Grid, when set, overrides it.
	Layout string   `yaml:"layout"`
	Grid   []string `yaml:"grid,omitempty"`

	PursuerCount  int          `yaml:"pursuer_count"`
	PursuerSpawns []core.Point `yaml:"pursuer_spawns,omitempty"`
	TokenDensity  float64      `yaml:"token_density"`

	PowerUps  PowerUpCounts `yaml:"power_ups"`
	Durations Durations     `yaml:"durations"`
	Points    Points        `yaml:"points"`

	// TickInterval is the cadence hosts drive Tick at.
	TickInterval time.Duration `yaml:"tick_interval"`
	// TimeLimit ends the session as expired when positive.
	TimeLimit time.Duration `yaml:"time_limit"`

	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Layout:       "garden",
		PursuerCount: 2,
		TokenDensity: 0.6,
		PowerUps: PowerUpCounts{
			RoleReversal:    2,
			Freeze:          2,
			MassElimination: 1,
		},
		Durations: Durations{
			RoleReversal: 6 * time.Second,
			Freeze:       5 * time.Second,
		},
		Points: Points{
			Token:           10,
			Banish:          200,
			PowerUp:         50,
			MassElimination: 500,
		},
		TickInterval: 300 * time.Millisecond,
		Seed:         1337,
	}
}

// Normalize clamps values into their valid ranges.
func (c Config) Normalize() Config {
	if c.Layout == "" && len(c.Grid) == 0 {
		c.Layout = "garden"
	}
	if c.PursuerCount < 0 {
		c.PursuerCount = 0
	}
	if c.TokenDensity < 0 {
		c.TokenDensity = 0
	}
	if c.TokenDensity > 1 {
		c.TokenDensity = 1
	}
	c.PowerUps.RoleReversal = max(c.PowerUps.RoleReversal, 0)
	c.PowerUps.Freeze = max(c.PowerUps.Freeze, 0)
	c.PowerUps.MassElimination = max(c.PowerUps.MassElimination, 0)
	c.Durations.RoleReversal = max(c.Durations.RoleReversal, 0)
	c.Durations.Freeze = max(c.Durations.Freeze, 0)
	c.Points.Token = max(c.Points.Token, 0)
	c.Points.Banish = max(c.Points.Banish, 0)
	c.Points.PowerUp = max(c.Points.PowerUp, 0)
	c.Points.MassElimination = max(c.Points.MassElimination, 0)
	if c.TickInterval <= 0 {
		c.TickInterval = DefaultConfig().TickInterval
	}
	c.TimeLimit = max(c.TimeLimit, 0)
	return c
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["layout"]; ok && v != "" {
		c.Layout = v
	}
	intKey(cfg, "pursuers", &c.PursuerCount)
	if v, ok := cfg["token_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.TokenDensity = parsed
		}
	}
	intKey(cfg, "role_reversal", &c.PowerUps.RoleReversal)
	intKey(cfg, "freeze", &c.PowerUps.Freeze)
	intKey(cfg, "mass_elimination", &c.PowerUps.MassElimination)
	msKey(cfg, "role_reversal_ms", &c.Durations.RoleReversal)
	msKey(cfg, "freeze_ms", &c.Durations.Freeze)
	intKey(cfg, "token_points", &c.Points.Token)
	intKey(cfg, "banish_points", &c.Points.Banish)
	intKey(cfg, "power_up_points", &c.Points.PowerUp)
	intKey(cfg, "mass_points", &c.Points.MassElimination)
	msKey(cfg, "tick_ms", &c.TickInterval)
	msKey(cfg, "time_limit_ms", &c.TimeLimit)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c.Normalize()
}

func intKey(cfg map[string]string, key string, dst *int) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
		*dst = parsed
	}
}

func msKey(cfg map[string]string, key string, dst *time.Duration) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
		*dst = msDuration(parsed)
	}
}

func msDuration(v int) time.Duration { return time.Duration(v) * time.Millisecond }
