package pursuit

import "heartmaze/internal/core"

// Parameters exposes the session tunables.
func (w *World) Parameters() core.ParameterSnapshot {
	cfg := w.sim.Config()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Session",
			Params: []core.Parameter{
				{Key: "layout", Label: "Layout", Type: core.ParamTypeString, Value: w.layout.Name},
				core.Int64Param("seed", "Seed", w.seed),
				core.DurationParam("tick_ms", "Tick interval", cfg.TickInterval),
				core.DurationParam("time_limit_ms", "Time limit", cfg.TimeLimit),
			},
		},
		{
			Name: "Placement",
			Params: []core.Parameter{
				core.IntParam("pursuers", "Pursuers", cfg.PursuerCount),
				core.FloatParam("token_density", "Token density", cfg.TokenDensity),
				core.IntParam("role_reversal", "Role reversals", cfg.PowerUps.RoleReversal),
				core.IntParam("freeze", "Freezes", cfg.PowerUps.Freeze),
				core.IntParam("mass_elimination", "Mass eliminations", cfg.PowerUps.MassElimination),
			},
		},
		{
			Name: "Effects",
			Params: []core.Parameter{
				core.DurationParam("role_reversal_ms", "Role reversal", cfg.Durations.RoleReversal),
				core.DurationParam("freeze_ms", "Freeze", cfg.Durations.Freeze),
			},
		},
		{
			Name: "Scoring",
			Params: []core.Parameter{
				core.IntParam("token_points", "Token", cfg.Points.Token),
				core.IntParam("banish_points", "Banish", cfg.Points.Banish),
				core.IntParam("power_up_points", "Power-up", cfg.Points.PowerUp),
				core.IntParam("mass_points", "Mass elimination", cfg.Points.MassElimination),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values. Changes apply on the
// next reset.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "pursuers", Label: "Pursuers", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 8, HasMin: true, HasMax: true},
		{Key: "token_density", Label: "Token density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.05, Max: 1, HasMin: true, HasMax: true},
		{Key: "tick_ms", Label: "Tick ms", Type: core.ParamTypeDuration, Step: 50, Min: 50, Max: 2000, HasMin: true, HasMax: true},
		{Key: "role_reversal_ms", Label: "Reversal ms", Type: core.ParamTypeDuration, Step: 500, Min: 500, Max: 20000, HasMin: true, HasMax: true},
		{Key: "freeze_ms", Label: "Freeze ms", Type: core.ParamTypeDuration, Step: 500, Min: 500, Max: 20000, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer or millisecond tunable.
func (w *World) SetIntParameter(key string, value int) bool {
	if value < 0 {
		return false
	}
	cfg := w.sim.Config()
	ms := msDuration(value)
	switch key {
	case "pursuers":
		cfg.PursuerCount = value
	case "role_reversal":
		cfg.PowerUps.RoleReversal = value
	case "freeze":
		cfg.PowerUps.Freeze = value
	case "mass_elimination":
		cfg.PowerUps.MassElimination = value
	case "tick_ms":
		if value == 0 {
			return false
		}
		cfg.TickInterval = ms
	case "time_limit_ms":
		cfg.TimeLimit = ms
	case "role_reversal_ms":
		cfg.Durations.RoleReversal = ms
	case "freeze_ms":
		cfg.Durations.Freeze = ms
	case "token_points":
		cfg.Points.Token = value
	case "banish_points":
		cfg.Points.Banish = value
	case "power_up_points":
		cfg.Points.PowerUp = value
	case "mass_points":
		cfg.Points.MassElimination = value
	default:
		return false
	}
	w.sim.Reconfigure(cfg)
	return true
}

// SetFloatParameter updates a floating point tunable.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if key != "token_density" || value < 0 || value > 1 {
		return false
	}
	cfg := w.sim.Config()
	cfg.TokenDensity = value
	w.sim.Reconfigure(cfg)
	return true
}
