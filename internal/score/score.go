// Package score computes blind scores from played cards and owned jokers.
package score

import (
	"github.com/lox/anteup/internal/deck"
	"github.com/lox/anteup/internal/joker"
)

// Breakdown holds the chip and multiplier accumulators after a scoring fold.
type Breakdown struct {
	Chips int
	Mult  int
}

// Total returns the final score, chips times multiplier.
func (b Breakdown) Total() int {
	return b.Chips * b.Mult
}

// Compute folds the played cards in play order, then the jokers in ownership
// order, starting from chips=0 and mult=1. The fold order is fixed so scores
// are reproducible for the same inputs. Pure function: no side effects, no
// randomness.
func Compute(played []deck.Card, jokers []joker.Joker) Breakdown {
	b := Breakdown{Chips: 0, Mult: 1}
	for _, card := range played {
		b.Chips = card.ApplyChips(b.Chips)
		b.Mult = card.ApplyMult(b.Mult)
	}
	for _, j := range jokers {
		b.Chips = j.ApplyChips(b.Chips)
		b.Mult = j.ApplyMult(b.Mult)
	}
	return b
}
