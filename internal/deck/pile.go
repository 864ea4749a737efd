package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrEmptyPile is returned when a draw is attempted on an exhausted pile.
// With validated rules a blind can never exhaust a full deck, so callers
// treat this as a fatal invariant violation.
var ErrEmptyPile = errors.New("draw from empty pile")

// Standard returns a fresh 52-card deck, one card per (rank, suit) pair.
func Standard() []Card {
	cards := make([]Card, 0, 52)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Pile is an ordered set of not-yet-drawn cards for the current blind.
// Draws remove a uniformly random card, so the pile never needs shuffling.
type Pile struct {
	cards []Card
}

// NewPile creates a pile holding a full standard deck.
func NewPile() *Pile {
	return &Pile{cards: Standard()}
}

// DrawRandom removes and returns one uniformly random card from the pile.
func (p *Pile) DrawRandom(rng *rand.Rand) (Card, error) {
	if len(p.cards) == 0 {
		return Card{}, ErrEmptyPile
	}
	i := rng.IntN(len(p.cards))
	card := p.cards[i]
	p.cards[i] = p.cards[len(p.cards)-1]
	p.cards = p.cards[:len(p.cards)-1]
	return card, nil
}

// Contains reports whether the pile still holds the given card.
func (p *Pile) Contains(card Card) bool {
	for _, c := range p.cards {
		if c == card {
			return true
		}
	}
	return false
}

// Remaining returns the number of cards left in the pile
func (p *Pile) Remaining() int {
	return len(p.cards)
}

// IsEmpty returns true if the pile has no cards left
func (p *Pile) IsEmpty() bool {
	return len(p.cards) == 0
}
