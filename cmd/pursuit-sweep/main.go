package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"runtime"
	"time"

	"heartmaze/internal/render"
	"heartmaze/internal/sims/pursuit"
	"heartmaze/internal/sweep"
	"heartmaze/internal/theme"
)

func main() {
	sessions := flag.Int("sessions", 200, "sessions to play")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	steps := flag.Int("steps", 600, "pursuer ticks per session before giving up")
	moves := flag.Int("moves", 1, "bot moves per pursuer tick")
	seed := flag.Int64("seed", 1, "seed of the first session")
	configPath := flag.String("config", "", "YAML file with pursuit settings")
	layout := flag.String("layout", "", "built-in layout to play (overrides the config)")
	top := flag.Int("top", 5, "best sessions to list")
	pngPath := flag.String("png", "", "write the best session's final board to this PNG file")
	flag.Parse()

	cfg := pursuit.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = pursuit.LoadConfig(*configPath); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	if *layout != "" {
		cfg.Layout = *layout
		cfg.Grid = nil
	}

	fmt.Printf("Sweeping %d sessions on %q (%d workers, %d ticks, %d moves/tick)\n",
		*sessions, cfg.Layout, *workers, *steps, *moves)

	report, err := sweep.Run(cfg, sweep.Options{
		Sessions:     *sessions,
		Workers:      *workers,
		MaxTicks:     *steps,
		MovesPerTick: *moves,
		BaseSeed:     *seed,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\nOutcomes (elapsed %s):\n", report.Elapsed.Round(time.Millisecond))
	for _, o := range []pursuit.Outcome{pursuit.OutcomeCleared, pursuit.OutcomeCaptured, pursuit.OutcomeExpired, pursuit.OutcomeActive} {
		fmt.Printf("  %-9s %4d  %5.1f%%\n", o, report.Outcomes[o], 100*report.Rate(o))
	}
	fmt.Printf("  mean score %.1f\n", report.MeanScore())

	fmt.Printf("\nTop %d sessions:\n", *top)
	for i, res := range report.Top(*top) {
		fmt.Printf("%2d) seed=%d score=%d outcome=%s ticks=%d moves=%d tokensLeft=%d\n",
			i+1, res.Seed, res.Score, res.Outcome, res.Ticks, res.Moves, len(res.Snapshot.Tokens))
	}

	if *pngPath != "" && len(report.Results) > 0 {
		if err := writeBoard(*pngPath, cfg, report.Results[0]); err != nil {
			log.Fatalf("write png: %v", err)
		}
		fmt.Printf("\nBest board written to %s\n", *pngPath)
	}
}

func writeBoard(path string, cfg pursuit.Config, res sweep.Result) error {
	l, err := cfg.ResolveLayout()
	if err != nil {
		return err
	}
	cells := pursuit.Render(l.Grid, res.Snapshot, nil)
	img := render.Image(l.Grid.W, l.Grid.H, cells, pursuit.Palette(theme.MustLookup(theme.Default)), 16)
	if img == nil {
		return fmt.Errorf("empty board")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
