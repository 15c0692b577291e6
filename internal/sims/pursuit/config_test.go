package pursuit

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"heartmaze/internal/core"
)

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"layout":           "hall",
		"pursuers":         "4",
		"token_density":    "0.25",
		"freeze":           "0",
		"role_reversal_ms": "2500",
		"banish_points":    "300",
		"tick_ms":          "150",
		"time_limit_ms":    "60000",
		"seed":             "42",
	})
	if cfg.Layout != "hall" || cfg.PursuerCount != 4 || cfg.TokenDensity != 0.25 {
		t.Fatalf("placement overrides not applied: %+v", cfg)
	}
	if cfg.PowerUps.Freeze != 0 || cfg.PowerUps.RoleReversal != 2 {
		t.Fatalf("power-up counts = %+v", cfg.PowerUps)
	}
	if cfg.Durations.RoleReversal != 2500*time.Millisecond {
		t.Fatalf("role reversal duration = %v", cfg.Durations.RoleReversal)
	}
	if cfg.Points.Banish != 300 || cfg.Points.Token != 10 {
		t.Fatalf("points = %+v", cfg.Points)
	}
	if cfg.TickInterval != 150*time.Millisecond || cfg.TimeLimit != time.Minute {
		t.Fatalf("timing = %v %v", cfg.TickInterval, cfg.TimeLimit)
	}
	if cfg.Seed != 42 {
		t.Fatalf("seed = %d", cfg.Seed)
	}
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	cfg := FromMap(map[string]string{
		"pursuers":      "-3",
		"token_density": "lots",
		"tick_ms":       "0",
		"seed":          "x",
	})
	def := DefaultConfig()
	if cfg.PursuerCount != def.PursuerCount || cfg.TokenDensity != def.TokenDensity || cfg.Seed != def.Seed {
		t.Fatalf("invalid values leaked: %+v", cfg)
	}
	if cfg.TickInterval != def.TickInterval {
		t.Fatalf("zero tick interval should fall back, got %v", cfg.TickInterval)
	}
	if FromMap(nil).Layout != "garden" {
		t.Fatal("nil map should yield defaults")
	}
}

func TestNormalizeClamps(t *testing.T) {
	cfg := Config{TokenDensity: 3, PursuerCount: -1, TimeLimit: -time.Second}.Normalize()
	if cfg.TokenDensity != 1 || cfg.PursuerCount != 0 || cfg.TimeLimit != 0 {
		t.Fatalf("normalize = %+v", cfg)
	}
	if cfg.Layout != "garden" || cfg.TickInterval <= 0 {
		t.Fatalf("normalize should fill layout and tick: %+v", cfg)
	}
}

func TestParseConfigYAML(t *testing.T) {
	doc := `
pursuer_count: 3
token_density: 0.4
power_ups:
  mass_elimination: 0
durations:
  freeze: 2s
points:
  token: 5
time_limit: 90s
grid:
  - "#####"
  - "#P.G#"
  - "#####"
`
	cfg, err := ParseConfig([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.PursuerCount != 3 || cfg.TokenDensity != 0.4 {
		t.Fatalf("placement = %+v", cfg)
	}
	if cfg.PowerUps.MassElimination != 0 || cfg.PowerUps.Freeze != 2 {
		t.Fatalf("power-ups = %+v", cfg.PowerUps)
	}
	if cfg.Durations.Freeze != 2*time.Second || cfg.Durations.RoleReversal != 6*time.Second {
		t.Fatalf("durations = %+v", cfg.Durations)
	}
	if cfg.Points.Token != 5 || cfg.Points.Banish != 200 {
		t.Fatalf("points = %+v", cfg.Points)
	}
	if cfg.TimeLimit != 90*time.Second {
		t.Fatalf("time limit = %v", cfg.TimeLimit)
	}
	layout, err := cfg.ResolveLayout()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if layout.Spawn != (core.Point{X: 1, Y: 1}) || len(layout.PursuerSpawns) != 1 {
		t.Fatalf("layout = %+v", layout)
	}
}

func TestParseConfigErrors(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"unknown layout": {doc: "layout: maze9\n", want: ErrUnknownLayout},
		"ragged grid":    {doc: "grid: [\"###\", \"#P\"]\n", want: ErrRaggedLayout},
		"no spawn":       {doc: "grid: [\"###\", \"#.#\"]\n", want: ErrNoSpawn},
		"bad glyph":      {doc: "grid: [\"#P?\"]\n", want: ErrBadGlyph},
	}
	for name, tc := range cases {
		if _, err := ParseConfig([]byte(tc.doc)); !errors.Is(err, tc.want) {
			t.Fatalf("%s: err = %v, want %v", name, err, tc.want)
		}
	}
	if _, err := ParseConfig([]byte("pursuers: 2\n")); err == nil {
		t.Fatal("unknown field should be rejected")
	}
}

func TestParseConfigEmptyUsesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("  \n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Layout != DefaultConfig().Layout || cfg.PursuerCount != DefaultConfig().PursuerCount {
		t.Fatalf("empty document = %+v", cfg)
	}
}

func TestConfigFileRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout = "hall"
	cfg.Durations.Freeze = 1500 * time.Millisecond
	cfg.PursuerSpawns = []core.Point{{X: 1, Y: 1}}
	data, err := MarshalConfig(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), "freeze: 1.5s") {
		t.Fatalf("durations should encode as strings:\n%s", data)
	}
	path := filepath.Join(t.TempDir(), "pursuit.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Layout != "hall" || got.Durations.Freeze != cfg.Durations.Freeze || len(got.PursuerSpawns) != 1 {
		t.Fatalf("round trip = %+v", got)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}
}
