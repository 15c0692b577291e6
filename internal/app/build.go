package app

import (
	"fmt"
	"log"

	"heartmaze/internal/core"
	"heartmaze/internal/sims/hearts"
	"heartmaze/internal/sims/pursuit"
	"heartmaze/internal/theme"
)

// BuildSim constructs the sim named by cfg, themes it, and starts the first
// session. Settings come from the YAML file when one is named, otherwise
// from the key=value overrides. A nil clock means wall time.
func BuildSim(cfg *Config, clock core.Clock) (core.Sim, theme.Theme, error) {
	th, err := theme.Lookup(cfg.Theme)
	if err != nil {
		return nil, theme.Theme{}, err
	}
	if cfg.ConfigPath != "" && len(cfg.Params) > 0 {
		log.Printf("ignoring overrides %v: %s takes precedence", cfg.ParamList(), cfg.ConfigPath)
	}

	var sim core.Sim
	switch cfg.Sim {
	case "pursuit":
		pc := pursuit.FromMap(cfg.Params)
		if cfg.ConfigPath != "" {
			if pc, err = pursuit.LoadConfig(cfg.ConfigPath); err != nil {
				return nil, theme.Theme{}, err
			}
		}
		sim = pursuit.NewWorld(pc, clock)
	case "hearts":
		hc := hearts.FromMap(cfg.Params)
		if cfg.ConfigPath != "" {
			if hc, err = hearts.LoadConfig(cfg.ConfigPath); err != nil {
				return nil, theme.Theme{}, err
			}
		}
		sim = hearts.New(hc, clock)
	default:
		factory, ok := core.Sims()[cfg.Sim]
		if !ok {
			return nil, theme.Theme{}, fmt.Errorf("unknown sim %q (have %v)", cfg.Sim, core.SimNames())
		}
		sim = factory(cfg.Params)
	}

	if t, ok := sim.(theme.Setter); ok {
		t.SetTheme(th)
	}
	sim.Reset(cfg.Seed)
	return sim, th, nil
}

// Summary is a one-line description of the session for logs and the
// clipboard.
func Summary(sim core.Sim, seed int64) string {
	line := fmt.Sprintf("%s seed=%d", sim.Name(), seed)
	if sp, ok := sim.(core.StatusProvider); ok {
		st := sp.Status()
		line += fmt.Sprintf(" score=%d %q", st.Score, st.Headline)
	}
	return line
}
