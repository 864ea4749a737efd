// Package game implements the blind/shop round state machine: deal, select,
// play or discard, score against the goal, then spend winnings between
// blinds. One Game owns all mutable session state and is driven by a single
// sequential command loop; wrap it in a lock if shared across goroutines.
package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/anteup/internal/deck"
	"github.com/lox/anteup/internal/joker"
	"github.com/lox/anteup/internal/score"
)

// startingJokerName is the catalog entry handed out free at game start.
const startingJokerName = "Joker"

// blindPayouts is the base payout per blind tier, before the unused-hands
// bonus.
var blindPayouts = [3]int{4, 5, 6}

// Game is the single mutable state of one session.
type Game struct {
	rules   Rules
	rng     *rand.Rand
	logger  *log.Logger
	catalog *joker.Registry

	stage        Stage
	money        int
	jokers       []joker.Joker
	drawPile     *deck.Pile
	hand         []deck.Card
	selected     []deck.Card
	handsLeft    int
	discardsLeft int
	chipsScored  int
	goalChips    int
	ante         int
	blindTier    int
	shopOffers   []joker.Joker

	blindsWon int
}

// NewGame creates a game with the given rules and starts the first blind.
// The rng is the only source of randomness, so a fixed seed reproduces a
// whole session.
func NewGame(rng *rand.Rand, rules Rules, catalog *joker.Registry, logger *log.Logger) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	g := &Game{
		rules:     rules,
		rng:       rng,
		logger:    logger.WithPrefix("game"),
		catalog:   catalog,
		money:     rules.StartingMoney,
		ante:      1,
		blindTier: 0,
	}

	if starter, ok := catalog.ByName(startingJokerName); ok {
		for i := 0; i < rules.StartingJokers; i++ {
			g.jokers = append(g.jokers, starter)
		}
	}

	g.startBlind()
	return g, nil
}

// startBlind resets per-blind state: a fresh full-deck pile, empty hand and
// selection, full hand/discard budgets, and the goal for the current
// ante/tier.
func (g *Game) startBlind() {
	g.drawPile = deck.NewPile()
	g.hand = g.hand[:0]
	g.selected = g.selected[:0]
	g.chipsScored = 0
	g.handsLeft = g.rules.TotalHands
	g.discardsLeft = g.rules.TotalDiscards
	g.goalChips = goalChips(g.ante, g.blindTier)
	g.drawToFull()
	g.stage = StagePlaying

	g.logger.Info("blind started",
		"ante", g.ante,
		"tier", g.blindTier,
		"goal", g.goalChips)
}

// goalChips is the score threshold for a blind: a staircase that steps with
// the tier and climbs with the ante.
func goalChips(ante, tier int) int {
	return (tier + ante*3 - 1) * 100
}

// drawToFull draws random cards until the hand reaches draw size. Rules
// validation bounds total draws below 52, so an empty pile here is a
// corrupted invariant.
func (g *Game) drawToFull() {
	for len(g.hand) < g.rules.DrawSize {
		card, err := g.drawPile.DrawRandom(g.rng)
		if err != nil {
			panic(fmt.Sprintf("draw pile exhausted mid-blind: %v", err))
		}
		g.hand = append(g.hand, card)
	}
}

// checkStage returns the terminal error in GameOver, or ErrWrongStage when
// the game is not in the wanted stage.
func (g *Game) checkStage(want Stage) error {
	if g.stage == StageGameOver {
		return ErrGameOver
	}
	if g.stage != want {
		return fmt.Errorf("%w: in %s, need %s", ErrWrongStage, g.stage, want)
	}
	return nil
}

// ToggleSelect selects or deselects the hand card at index. At most 5 cards
// can be selected at once. A failed toggle leaves the selection untouched.
func (g *Game) ToggleSelect(index int) error {
	if err := g.checkStage(StagePlaying); err != nil {
		return err
	}
	if index < 0 || index >= len(g.hand) {
		return fmt.Errorf("%w: no card at index %d", ErrNotInHand, index)
	}

	card := g.hand[index]
	for i, sel := range g.selected {
		if sel == card {
			g.selected = append(g.selected[:i], g.selected[i+1:]...)
			return nil
		}
	}

	if len(g.selected) >= maxSelect {
		return ErrSelectionFull
	}
	g.selected = append(g.selected, card)
	return nil
}

// Outcome describes what a play did to the blind.
type Outcome int

const (
	// OutcomePlayed means the blind continues with a redrawn hand.
	OutcomePlayed Outcome = iota
	// OutcomeBlindWon means the goal was reached and the game moved to the shop.
	OutcomeBlindWon
	// OutcomeGameOver means hands ran out before the goal.
	OutcomeGameOver
)

// PlayResult reports a completed play for display collaborators.
type PlayResult struct {
	Breakdown   score.Breakdown
	Score       int
	ChipsScored int
	GoalChips   int
	Outcome     Outcome
	Payout      int
	Ante        int
	BlindTier   int
}

// PlaySelected scores the selected cards against the owned jokers and
// advances the blind: on reaching the goal it pays out and opens the shop,
// on exhausting hands it ends the game, otherwise it consumes the played
// cards and redraws.
func (g *Game) PlaySelected() (PlayResult, error) {
	if err := g.checkStage(StagePlaying); err != nil {
		return PlayResult{}, err
	}
	if len(g.selected) == 0 {
		return PlayResult{}, ErrEmptyPlay
	}

	breakdown := score.Compute(g.selected, g.jokers)
	g.chipsScored += breakdown.Total()
	g.handsLeft--

	result := PlayResult{
		Breakdown:   breakdown,
		Score:       breakdown.Total(),
		ChipsScored: g.chipsScored,
		GoalChips:   g.goalChips,
		Ante:        g.ante,
		BlindTier:   g.blindTier,
	}

	g.logger.Debug("hand played",
		"cards", fmt.Sprint(g.selected),
		"chips", breakdown.Chips,
		"mult", breakdown.Mult,
		"score", breakdown.Total(),
		"total", g.chipsScored,
		"goal", g.goalChips)

	if g.chipsScored >= g.goalChips {
		result.Outcome = OutcomeBlindWon
		result.Payout = g.finishBlind()
		result.Ante = g.ante
		result.BlindTier = g.blindTier
		return result, nil
	}

	if g.handsLeft == 0 {
		g.stage = StageGameOver
		g.logger.Info("game over",
			"ante", g.ante,
			"tier", g.blindTier,
			"scored", g.chipsScored,
			"goal", g.goalChips)
		result.Outcome = OutcomeGameOver
		return result, nil
	}

	g.removeSelectedFromHand()
	g.selected = g.selected[:0]
	g.drawToFull()
	result.Outcome = OutcomePlayed
	return result, nil
}

// DiscardSelected throws away the selected cards without scoring and
// redraws. Costs one discard from the blind budget.
func (g *Game) DiscardSelected() error {
	if err := g.checkStage(StagePlaying); err != nil {
		return err
	}
	if g.discardsLeft <= 0 {
		return ErrNoDiscardsLeft
	}
	if len(g.selected) == 0 {
		return ErrEmptyPlay
	}

	g.removeSelectedFromHand()
	g.selected = g.selected[:0]
	g.discardsLeft--
	g.drawToFull()

	g.logger.Debug("hand discarded", "discardsLeft", g.discardsLeft)
	return nil
}

// removeSelectedFromHand consumes every selected card from the hand. A
// selected card missing from the hand is a corrupted invariant: the two are
// only ever mutated together.
func (g *Game) removeSelectedFromHand() {
	for _, sel := range g.selected {
		found := false
		for i, card := range g.hand {
			if card == sel {
				g.hand = append(g.hand[:i], g.hand[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			panic(fmt.Sprintf("selected card %s not present in hand", sel))
		}
	}
}

// finishBlind pays out the won blind and advances the tier, wrapping into
// the next ante, then opens the shop. Returns the payout.
func (g *Game) finishBlind() int {
	payout := blindPayouts[g.blindTier] + g.handsLeft
	g.money += payout
	g.blindsWon++

	g.blindTier++
	if g.blindTier == len(blindPayouts) {
		g.blindTier = 0
		g.ante++
	}

	g.logger.Info("blind won",
		"payout", payout,
		"money", g.money,
		"nextAnte", g.ante,
		"nextTier", g.blindTier)

	g.populateShop()
	g.stage = StageShop
	return payout
}

// Apply dispatches a validated command. Play results are only needed by
// display collaborators, which call PlaySelected directly; Apply reports
// legality and state change.
func (g *Game) Apply(cmd Command) error {
	switch cmd.Type {
	case CmdPlay:
		_, err := g.PlaySelected()
		return err
	case CmdDiscard:
		return g.DiscardSelected()
	case CmdToggleSelect:
		return g.ToggleSelect(cmd.Index)
	case CmdBuyJoker:
		return g.BuyJoker(cmd.Index)
	case CmdSellJoker:
		return g.SellJoker(cmd.Index)
	case CmdContinue:
		return g.ContinueToNextBlind()
	default:
		return fmt.Errorf("unknown command type %d", cmd.Type)
	}
}

// Stage returns the current stage.
func (g *Game) Stage() Stage {
	return g.stage
}

// Money returns the player's current money.
func (g *Game) Money() int {
	return g.money
}
