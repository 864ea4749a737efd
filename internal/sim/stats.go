package sim

import (
	"time"

	"github.com/lox/anteup/internal/game"
)

// Result is the outcome of one simulated game.
type Result struct {
	Seed        int64
	AnteReached int
	BlindsWon   int
	HandsPlayed int
	FinalMoney  int
	JokersOwned int
	HitAnteCap  bool
}

// finish records the end-of-game state onto the result.
func (r *Result) finish(g *game.Game) {
	r.AnteReached = g.Ante()
	r.BlindsWon = g.BlindsWon()
	r.FinalMoney = g.Money()
	r.JokersOwned = len(g.Snapshot().Jokers)
}

// Stats aggregates a batch of simulation results.
type Stats struct {
	Runs          int
	Results       []Result
	TotalBlinds   int
	TotalHands    int
	TotalMoney    int
	BestAnte      int
	CappedRuns    int
	AnteHistogram map[int]int
	Duration      time.Duration
}

// Aggregate folds results into batch statistics.
func Aggregate(results []Result) *Stats {
	stats := &Stats{
		Runs:          len(results),
		Results:       results,
		AnteHistogram: make(map[int]int),
	}
	for _, r := range results {
		stats.TotalBlinds += r.BlindsWon
		stats.TotalHands += r.HandsPlayed
		stats.TotalMoney += r.FinalMoney
		stats.AnteHistogram[r.AnteReached]++
		if r.AnteReached > stats.BestAnte {
			stats.BestAnte = r.AnteReached
		}
		if r.HitAnteCap {
			stats.CappedRuns++
		}
	}
	return stats
}

// MeanBlindsWon returns the average blinds won per run.
func (s *Stats) MeanBlindsWon() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.TotalBlinds) / float64(s.Runs)
}

// MeanHandsPlayed returns the average hands played per run.
func (s *Stats) MeanHandsPlayed() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.TotalHands) / float64(s.Runs)
}

// MeanFinalMoney returns the average money held at game end.
func (s *Stats) MeanFinalMoney() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.TotalMoney) / float64(s.Runs)
}
