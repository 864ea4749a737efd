package game

import (
	"github.com/lox/anteup/internal/deck"
)

// JokerInfo is the display view of one joker.
type JokerInfo struct {
	Name     string
	ShopLine string
	Cost     int
}

// Snapshot is a read-only view of the game for display collaborators. No
// core operation depends on anything done with it.
type Snapshot struct {
	Stage        Stage
	Money        int
	Ante         int
	BlindTier    int
	GoalChips    int
	ChipsScored  int
	HandsLeft    int
	DiscardsLeft int

	// Hand in draw order; Selected is aligned with Hand.
	Hand     []deck.Card
	Selected []bool

	Jokers     []JokerInfo
	ShopOffers []JokerInfo
}

// Snapshot captures the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Stage:        g.stage,
		Money:        g.money,
		Ante:         g.ante,
		BlindTier:    g.blindTier,
		GoalChips:    g.goalChips,
		ChipsScored:  g.chipsScored,
		HandsLeft:    g.handsLeft,
		DiscardsLeft: g.discardsLeft,
		Hand:         make([]deck.Card, len(g.hand)),
		Selected:     make([]bool, len(g.hand)),
	}
	copy(snap.Hand, g.hand)

	for i, card := range g.hand {
		for _, sel := range g.selected {
			if sel == card {
				snap.Selected[i] = true
				break
			}
		}
	}

	for _, j := range g.jokers {
		snap.Jokers = append(snap.Jokers, JokerInfo{Name: j.Name(), ShopLine: j.ShopLine(), Cost: j.Cost()})
	}
	for _, j := range g.shopOffers {
		snap.ShopOffers = append(snap.ShopOffers, JokerInfo{Name: j.Name(), ShopLine: j.ShopLine(), Cost: j.Cost()})
	}
	return snap
}

// BlindsWon returns how many blinds have been won this session.
func (g *Game) BlindsWon() int {
	return g.blindsWon
}

// Ante returns the current ante.
func (g *Game) Ante() int {
	return g.ante
}

// BlindTier returns the current blind tier (0-2).
func (g *Game) BlindTier() int {
	return g.blindTier
}
