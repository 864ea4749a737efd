package sim

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/anteup/internal/game"
	"github.com/lox/anteup/internal/joker"
)

func testRunner(t *testing.T) (*Runner, *quartz.Mock) {
	t.Helper()
	clock := quartz.NewMock(t)
	runner := NewRunner(game.DefaultRules(), joker.Catalog(), log.New(io.Discard), clock)
	return runner, clock
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero runs", func(c *Config) { c.Runs = 0 }},
		{"zero parallel", func(c *Config) { c.Parallel = 0 }},
		{"zero max ante", func(c *Config) { c.MaxAnte = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestRunnerRun(t *testing.T) {
	runner, _ := testRunner(t)

	cfg := Config{Runs: 5, Parallel: 2, Seed: 1, MaxAnte: 2}
	stats, err := runner.Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Runs)
	assert.Len(t, stats.Results, 5)
	for _, r := range stats.Results {
		assert.NotZero(t, r.Seed)
		assert.GreaterOrEqual(t, r.AnteReached, 1)
		assert.GreaterOrEqual(t, r.BlindsWon, 1, "the first blind is always winnable")
		assert.Positive(t, r.HandsPlayed)
	}
	assert.GreaterOrEqual(t, stats.TotalBlinds, stats.Runs)
	assert.NotEmpty(t, stats.AnteHistogram)
}

func TestRunnerRejectsInvalidConfig(t *testing.T) {
	runner, _ := testRunner(t)

	_, err := runner.Run(context.Background(), Config{Runs: 0, Parallel: 1, MaxAnte: 1})
	assert.Error(t, err)
}

func TestRunnerIsDeterministic(t *testing.T) {
	runner, _ := testRunner(t)
	cfg := Config{Runs: 4, Parallel: 2, Seed: 99, MaxAnte: 2}

	first, err := runner.Run(context.Background(), cfg)
	require.NoError(t, err)
	second, err := runner.Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, first.Results, second.Results)
}

func TestParallelismDoesNotChangeResults(t *testing.T) {
	runner, _ := testRunner(t)

	serial, err := runner.Run(context.Background(), Config{Runs: 4, Parallel: 1, Seed: 7, MaxAnte: 2})
	require.NoError(t, err)
	parallel, err := runner.Run(context.Background(), Config{Runs: 4, Parallel: 4, Seed: 7, MaxAnte: 2})
	require.NoError(t, err)

	assert.Equal(t, serial.Results, parallel.Results)
}

func TestRunnerUsesInjectedClock(t *testing.T) {
	runner, _ := testRunner(t)

	stats, err := runner.Run(context.Background(), Config{Runs: 2, Parallel: 1, Seed: 3, MaxAnte: 1})
	require.NoError(t, err)

	// The mock clock never advances, so the measured duration is zero.
	assert.Zero(t, stats.Duration)
}

func TestRunnerCancelledContext(t *testing.T) {
	runner, _ := testRunner(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, Config{Runs: 2, Parallel: 1, Seed: 1, MaxAnte: 1})
	assert.Error(t, err)
}

func TestAggregate(t *testing.T) {
	results := []Result{
		{Seed: 1, AnteReached: 2, BlindsWon: 4, HandsPlayed: 12, FinalMoney: 10},
		{Seed: 2, AnteReached: 3, BlindsWon: 7, HandsPlayed: 20, FinalMoney: 2, HitAnteCap: true},
		{Seed: 3, AnteReached: 2, BlindsWon: 5, HandsPlayed: 15, FinalMoney: 0},
	}

	stats := Aggregate(results)

	assert.Equal(t, 3, stats.Runs)
	assert.Equal(t, 16, stats.TotalBlinds)
	assert.Equal(t, 47, stats.TotalHands)
	assert.Equal(t, 12, stats.TotalMoney)
	assert.Equal(t, 3, stats.BestAnte)
	assert.Equal(t, 1, stats.CappedRuns)
	assert.Equal(t, map[int]int{2: 2, 3: 1}, stats.AnteHistogram)

	assert.InDelta(t, 16.0/3.0, stats.MeanBlindsWon(), 0.001)
	assert.InDelta(t, 47.0/3.0, stats.MeanHandsPlayed(), 0.001)
	assert.InDelta(t, 4.0, stats.MeanFinalMoney(), 0.001)
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)

	assert.Equal(t, 0, stats.Runs)
	assert.Zero(t, stats.MeanBlindsWon())
	assert.Zero(t, stats.MeanHandsPlayed())
	assert.Zero(t, stats.MeanFinalMoney())
}
