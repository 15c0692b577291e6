package hearts

import (
	"strconv"
	"time"
)

// Config controls a heart collection round.
type Config struct {
	Width       int           `yaml:"width"`
	Height      int           `yaml:"height"`
	RoundLength time.Duration `yaml:"round_length"`
	SpawnEvery  time.Duration `yaml:"spawn_every"`
	HeartPoints int           `yaml:"heart_points"`
	// MaxHearts caps the hearts on the board; zero means unlimited.
	MaxHearts int   `yaml:"max_hearts"`
	Seed      int64 `yaml:"seed"`
}

// DefaultConfig mirrors the classic half-minute round.
func DefaultConfig() Config {
	return Config{
		Width:       15,
		Height:      11,
		RoundLength: 30 * time.Second,
		SpawnEvery:  800 * time.Millisecond,
		HeartPoints: 10,
		Seed:        214,
	}
}

// Normalize clamps values into their usable range.
func (c Config) Normalize() Config {
	def := DefaultConfig()
	if c.Width < 3 {
		c.Width = def.Width
	}
	if c.Height < 3 {
		c.Height = def.Height
	}
	if c.RoundLength <= 0 {
		c.RoundLength = def.RoundLength
	}
	if c.SpawnEvery <= 0 {
		c.SpawnEvery = def.SpawnEvery
	}
	c.HeartPoints = max(c.HeartPoints, 0)
	c.MaxHearts = max(c.MaxHearts, 0)
	return c
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	intKey(cfg, "width", &c.Width)
	intKey(cfg, "height", &c.Height)
	intKey(cfg, "heart_points", &c.HeartPoints)
	intKey(cfg, "max_hearts", &c.MaxHearts)
	if v, ok := cfg["round_ms"]; ok {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			c.RoundLength = time.Duration(ms) * time.Millisecond
		}
	}
	if v, ok := cfg["spawn_ms"]; ok {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			c.SpawnEvery = time.Duration(ms) * time.Millisecond
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c.Normalize()
}

func intKey(cfg map[string]string, key string, dst *int) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}
