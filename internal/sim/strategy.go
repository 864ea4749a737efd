package sim

import (
	"errors"
	"sort"

	"github.com/lox/anteup/internal/deck"
	"github.com/lox/anteup/internal/game"
)

// lowCardChips is the threshold below which the strategy considers a card
// worth discarding.
const lowCardChips = 5

// playTurn takes one action in the Playing stage: discard a weak hand when
// the budget allows, otherwise play the five highest-chip cards. Returns
// whether a hand was played (as opposed to discarded).
func playTurn(g *game.Game) (bool, error) {
	snap := g.Snapshot()

	if indexes := discardable(snap); len(indexes) > 0 {
		if err := selectIndexes(g, indexes); err != nil {
			return false, err
		}
		return false, g.DiscardSelected()
	}

	if err := selectIndexes(g, bestIndexes(snap.Hand)); err != nil {
		return false, err
	}
	_, err := g.PlaySelected()
	return true, err
}

// discardable returns hand indexes worth discarding, or nil when the
// strategy should play instead. Discarding is only worth it with a spare
// hand, a spare discard, and a mostly weak draw.
func discardable(snap game.Snapshot) []int {
	if snap.DiscardsLeft == 0 || snap.HandsLeft <= 1 {
		return nil
	}

	var weak []int
	for i, card := range snap.Hand {
		chips, err := card.Rank.Chips()
		if err != nil {
			return nil
		}
		if chips < lowCardChips {
			weak = append(weak, i)
		}
	}
	if len(weak) < 4 {
		return nil
	}
	if len(weak) > 5 {
		weak = weak[:5]
	}
	return weak
}

// bestIndexes returns the indexes of the up-to-five highest-chip cards.
func bestIndexes(hand []deck.Card) []int {
	indexes := make([]int, len(hand))
	for i := range hand {
		indexes[i] = i
	}
	sort.SliceStable(indexes, func(a, b int) bool {
		ca, _ := hand[indexes[a]].Rank.Chips()
		cb, _ := hand[indexes[b]].Rank.Chips()
		return ca > cb
	})
	if len(indexes) > 5 {
		indexes = indexes[:5]
	}
	return indexes
}

// selectIndexes toggles the given hand indexes into the selection.
func selectIndexes(g *game.Game, indexes []int) error {
	for _, i := range indexes {
		if err := g.ToggleSelect(i); err != nil {
			return err
		}
	}
	return nil
}

// spend buys affordable jokers while slots remain, then continues to the
// next blind.
func spend(g *game.Game) error {
	for {
		snap := g.Snapshot()
		i := cheapestAffordable(snap)
		if i < 0 {
			break
		}
		err := g.BuyJoker(i)
		if errors.Is(err, game.ErrJokerSlotsFull) {
			break
		}
		if err != nil {
			return err
		}
	}
	return g.ContinueToNextBlind()
}

// cheapestAffordable returns the index of the cheapest offer within budget,
// or -1 when nothing is affordable.
func cheapestAffordable(snap game.Snapshot) int {
	best := -1
	for i, offer := range snap.ShopOffers {
		if offer.Cost > snap.Money {
			continue
		}
		if best < 0 || offer.Cost < snap.ShopOffers[best].Cost {
			best = i
		}
	}
	return best
}
