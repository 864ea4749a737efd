// Package sim plays full unattended game sessions for balance testing. Runs
// are reproducible: every per-run seed derives from the master seed, and
// parallelism never changes the outcome of an individual run.
package sim

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/anteup/internal/game"
	"github.com/lox/anteup/internal/joker"
	"github.com/lox/anteup/internal/randutil"
)

// Config controls a simulation batch.
type Config struct {
	Runs     int
	Parallel int
	Seed     int64

	// MaxAnte stops a run that keeps winning; the strategy is good enough
	// that some seeds would otherwise never lose.
	MaxAnte int
}

// DefaultConfig returns reasonable simulation settings.
func DefaultConfig() Config {
	return Config{
		Runs:     100,
		Parallel: 4,
		Seed:     1,
		MaxAnte:  8,
	}
}

// Validate validates the simulation config.
func (c Config) Validate() error {
	if c.Runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", c.Runs)
	}
	if c.Parallel < 1 {
		return fmt.Errorf("parallel must be at least 1, got %d", c.Parallel)
	}
	if c.MaxAnte < 1 {
		return fmt.Errorf("max ante must be at least 1, got %d", c.MaxAnte)
	}
	return nil
}

// Runner executes simulation batches.
type Runner struct {
	rules   game.Rules
	catalog *joker.Registry
	logger  *log.Logger
	clock   quartz.Clock
}

// NewRunner creates a simulation runner. The clock is injected so tests can
// control observed durations.
func NewRunner(rules game.Rules, catalog *joker.Registry, logger *log.Logger, clock quartz.Clock) *Runner {
	return &Runner{
		rules:   rules,
		catalog: catalog,
		logger:  logger.WithPrefix("sim"),
		clock:   clock,
	}
}

// Run plays cfg.Runs full games and aggregates their results. Individual
// runs fan out over an errgroup bounded by cfg.Parallel.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	// Derive all run seeds up front so scheduling order cannot change them.
	master := randutil.New(cfg.Seed)
	seeds := make([]int64, cfg.Runs)
	for i := range seeds {
		seeds[i] = master.Int64()
	}

	start := r.clock.Now()
	results := make([]Result, cfg.Runs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	for i := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := r.playOne(seeds[i], cfg.MaxAnte)
			if err != nil {
				return fmt.Errorf("run %d (seed %d): %w", i, seeds[i], err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := Aggregate(results)
	stats.Duration = r.clock.Since(start)

	r.logger.Info("simulation complete",
		"runs", stats.Runs,
		"meanBlindsWon", fmt.Sprintf("%.2f", stats.MeanBlindsWon()),
		"duration", stats.Duration)
	return stats, nil
}

// playOne plays a single game to game over or the ante cap.
func (r *Runner) playOne(seed int64, maxAnte int) (Result, error) {
	g, err := game.NewGame(randutil.New(seed), r.rules, r.catalog, r.logger)
	if err != nil {
		return Result{}, err
	}

	result := Result{Seed: seed}
	for {
		switch g.Stage() {
		case game.StagePlaying:
			if g.Ante() > maxAnte {
				result.HitAnteCap = true
				result.finish(g)
				return result, nil
			}
			played, err := playTurn(g)
			if err != nil {
				return Result{}, err
			}
			if played {
				result.HandsPlayed++
			}
		case game.StageShop:
			if err := spend(g); err != nil {
				return Result{}, err
			}
		case game.StageGameOver:
			result.finish(g)
			return result, nil
		}
	}
}
