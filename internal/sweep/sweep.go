// Package sweep plays many seeded pursuit sessions with the greedy bot
// across a worker pool and aggregates the outcomes.
package sweep

import (
	"cmp"
	"fmt"
	"runtime"
	"slices"
	"strconv"
	"sync"
	"time"

	"heartmaze/internal/core"
	"heartmaze/internal/sims/pursuit"
	rng "heartmaze/pkg/core"
)

// Options controls a sweep. Zero values pick defaults.
type Options struct {
	Sessions int
	Workers  int
	// MaxTicks caps each session; sessions still active after it count as
	// unfinished.
	MaxTicks int
	// MovesPerTick is how many player moves the bot makes between ticks.
	MovesPerTick int
	// BaseSeed is the seed of the first session; session i uses BaseSeed+i.
	BaseSeed int64
}

func (o Options) normalize() Options {
	if o.Sessions <= 0 {
		o.Sessions = 100
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.MaxTicks <= 0 {
		o.MaxTicks = 600
	}
	if o.MovesPerTick <= 0 {
		o.MovesPerTick = 1
	}
	if o.BaseSeed == 0 {
		o.BaseSeed = 1
	}
	return o
}

// Result is one finished session.
type Result struct {
	Seed     int64
	Outcome  pursuit.Outcome
	Score    int
	Ticks    int
	Moves    int
	Snapshot pursuit.Snapshot
}

// Report aggregates a sweep.
type Report struct {
	Results  []Result
	Outcomes map[pursuit.Outcome]int
	Elapsed  time.Duration
}

// Rate is the share of sessions that ended with o.
func (r Report) Rate(o pursuit.Outcome) float64 {
	if len(r.Results) == 0 {
		return 0
	}
	return float64(r.Outcomes[o]) / float64(len(r.Results))
}

// MeanScore averages the session scores.
func (r Report) MeanScore() float64 {
	if len(r.Results) == 0 {
		return 0
	}
	total := 0
	for _, res := range r.Results {
		total += res.Score
	}
	return float64(total) / float64(len(r.Results))
}

// Top returns up to n results with the highest scores.
func (r Report) Top(n int) []Result {
	return r.Results[:min(n, len(r.Results))]
}

// Run plays opts.Sessions sessions of cfg on its layout. Results are sorted
// by score, highest first, then by seed.
func Run(cfg pursuit.Config, opts Options) (Report, error) {
	opts = opts.normalize()
	cfg = cfg.Normalize()
	layout, err := cfg.ResolveLayout()
	if err != nil {
		return Report{}, fmt.Errorf("sweep: %w", err)
	}

	jobs := make(chan int64)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- Play(cfg, layout, seed, opts)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < opts.Sessions; i++ {
			jobs <- opts.BaseSeed + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	report := Report{Outcomes: make(map[pursuit.Outcome]int)}
	for res := range results {
		report.Results = append(report.Results, res)
		report.Outcomes[res.Outcome]++
	}
	slices.SortFunc(report.Results, func(a, b Result) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Seed, b.Seed)
	})
	report.Elapsed = time.Since(start)
	return report, nil
}

// Play runs one session to completion on a manual clock that advances one
// tick interval per pursuer tick.
func Play(cfg pursuit.Config, layout pursuit.Layout, seed int64, opts Options) Result {
	opts = opts.normalize()
	clock := core.NewManualClock(time.Unix(0, 0).UTC())
	sim := pursuit.New(cfg,
		pursuit.WithRand(rng.NewRNG(seed)),
		pursuit.WithClock(clock),
		pursuit.WithIDSource(func() string { return "sweep-" + strconv.FormatInt(seed, 10) }),
	)
	sim.StartLayout(layout)

	moves := 0
	for sim.Outcome() == pursuit.OutcomeActive && sim.Snapshot().Ticks < opts.MaxTicks {
		for m := 0; m < opts.MovesPerTick; m++ {
			d := pursuit.Greedy(sim.Grid(), sim.Snapshot())
			if d == core.DirNone || !sim.MovePlayer(d) {
				break
			}
			moves++
		}
		clock.Advance(sim.Config().TickInterval)
		sim.Tick()
	}
	sim.Drain()
	snap := sim.Snapshot()
	return Result{
		Seed:     seed,
		Outcome:  snap.Outcome,
		Score:    snap.Score,
		Ticks:    snap.Ticks,
		Moves:    moves,
		Snapshot: snap,
	}
}
