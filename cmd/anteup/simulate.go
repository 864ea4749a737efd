package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/anteup/internal/game"
	"github.com/lox/anteup/internal/joker"
	"github.com/lox/anteup/internal/sim"
)

// SimulateCmd auto-plays full runs for balance testing.
type SimulateCmd struct {
	Runs     int    `default:"100" help:"Number of runs to simulate"`
	Parallel int    `default:"4" help:"Concurrent runs"`
	Seed     int64  `default:"0" help:"RNG seed (0 for random)"`
	MaxAnte  int    `default:"8" help:"Stop a run when it reaches this ante"`
	Rules    string `help:"Path to an HCL rules file" type:"path"`
	Verbose  bool   `short:"V" help:"Verbose logging"`
}

// Run executes the simulation batch and prints aggregate results.
func (c *SimulateCmd) Run() error {
	level := log.WarnLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	rules, err := game.LoadRules(c.Rules)
	if err != nil {
		return err
	}

	cfg := sim.Config{
		Runs:     c.Runs,
		Parallel: c.Parallel,
		Seed:     c.Seed,
		MaxAnte:  c.MaxAnte,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	fmt.Printf("Simulating %d runs (seed %d, %d parallel)\n", cfg.Runs, cfg.Seed, cfg.Parallel)

	runner := sim.NewRunner(rules, joker.Catalog(), logger, quartz.NewReal())
	stats, err := runner.Run(context.Background(), cfg)
	if err != nil {
		return err
	}

	printStats(stats)
	return nil
}

func printStats(stats *sim.Stats) {
	fmt.Printf("\n=== RESULTS ===\n")
	fmt.Printf("Runs: %d (%d hit the ante cap)\n", stats.Runs, stats.CappedRuns)
	fmt.Printf("Total time: %v\n", stats.Duration.Round(time.Millisecond))
	fmt.Printf("Mean blinds won: %.2f\n", stats.MeanBlindsWon())
	fmt.Printf("Mean hands played: %.2f\n", stats.MeanHandsPlayed())
	fmt.Printf("Mean final money: $%.2f\n", stats.MeanFinalMoney())
	fmt.Printf("Best ante reached: %d\n", stats.BestAnte)

	fmt.Printf("\n=== ANTE DISTRIBUTION ===\n")
	antes := make([]int, 0, len(stats.AnteHistogram))
	for ante := range stats.AnteHistogram {
		antes = append(antes, ante)
	}
	sort.Ints(antes)
	for _, ante := range antes {
		count := stats.AnteHistogram[ante]
		fmt.Printf("Ante %d: %d runs (%.1f%%)\n", ante, count, float64(count)/float64(stats.Runs)*100)
	}
}
