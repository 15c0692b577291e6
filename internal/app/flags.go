package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"heartmaze/internal/theme"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Sim        string
	Scale      int
	TPS        int
	Seed       int64
	Theme      string
	ConfigPath string
	Mute       bool
	Volume     float64
	HUDWidth   int
	// Params holds key=value overrides handed to the sim factory.
	Params map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "pursuit",
		Scale:    28,
		TPS:      60,
		Theme:    theme.Default,
		Volume:   0.6,
		HUDWidth: 240,
		Params:   map[string]string{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (pursuit, hearts)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 uses the configured seed)")
	fs.StringVar(&c.Theme, "theme", c.Theme, "color theme: "+strings.Join(theme.Keys(), ", "))
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML file with sim settings")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable sound")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "sound volume in [0, 1]")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.Func("set", "sim override as key=value (repeatable)", func(v string) error {
		key, value, ok := strings.Cut(v, "=")
		if !ok || key == "" {
			return fmt.Errorf("want key=value, got %q", v)
		}
		if c.Params == nil {
			c.Params = map[string]string{}
		}
		c.Params[strings.TrimSpace(key)] = strings.TrimSpace(value)
		return nil
	})
}

// ParamList renders Params as sorted key=value pairs.
func (c *Config) ParamList() []string {
	out := make([]string, 0, len(c.Params))
	for k, v := range c.Params {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
