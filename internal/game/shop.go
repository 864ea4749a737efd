package game

import "fmt"

// populateShop rolls a fresh set of offers from the catalog. Draws are
// independent, so duplicate offers are possible.
func (g *Game) populateShop() {
	g.shopOffers = g.shopOffers[:0]
	for i := 0; i < g.rules.ShopJokers; i++ {
		if j := g.catalog.Choose(g.rng); j != nil {
			g.shopOffers = append(g.shopOffers, j)
		}
	}

	g.logger.Debug("shop stocked", "offers", len(g.shopOffers))
}

// BuyJoker purchases the shop offer at index. The purchase is blocked, with
// state unchanged, when the offer index is invalid, every joker slot is
// taken, or money does not cover the cost.
func (g *Game) BuyJoker(index int) error {
	if err := g.checkStage(StageShop); err != nil {
		return err
	}
	if index < 0 || index >= len(g.shopOffers) {
		return fmt.Errorf("%w: no shop offer at index %d", ErrIndexOutOfRange, index)
	}
	if len(g.jokers) >= g.rules.MaxJokers {
		return ErrJokerSlotsFull
	}

	offer := g.shopOffers[index]
	if g.money < offer.Cost() {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientFunds, offer.Name(), offer.Cost(), g.money)
	}

	g.shopOffers = append(g.shopOffers[:index], g.shopOffers[index+1:]...)
	g.money -= offer.Cost()
	g.jokers = append(g.jokers, offer)

	g.logger.Info("joker bought", "joker", offer.Name(), "cost", offer.Cost(), "money", g.money)
	return nil
}

// SellJoker removes the owned joker at index and credits its sell value.
func (g *Game) SellJoker(index int) error {
	if err := g.checkStage(StageShop); err != nil {
		return err
	}
	if index < 0 || index >= len(g.jokers) {
		return fmt.Errorf("%w: no owned joker at index %d", ErrIndexOutOfRange, index)
	}

	sold := g.jokers[index]
	value := g.sellValue(sold.Cost())
	g.jokers = append(g.jokers[:index], g.jokers[index+1:]...)
	g.money += value

	g.logger.Info("joker sold", "joker", sold.Name(), "value", value, "money", g.money)
	return nil
}

// sellValue applies the configured sell percentage to a cost.
func (g *Game) sellValue(cost int) int {
	return cost * g.rules.SellPercent / 100
}

// ContinueToNextBlind leaves the shop and starts the next blind.
func (g *Game) ContinueToNextBlind() error {
	if err := g.checkStage(StageShop); err != nil {
		return err
	}
	g.startBlind()
	return nil
}
