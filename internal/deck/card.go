package deck

import (
	"errors"
	"fmt"
)

// ErrInvalidRank is returned when a rank outside 1-13 reaches a chip
// calculation. Deck-built cards can never trigger it.
var ErrInvalidRank = errors.New("invalid rank: expected 1 <= rank <= 13")

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Aces are low (1), court cards are 11-13.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Valid reports whether the rank is within 1-13.
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// String returns the string representation of a rank
func (r Rank) String() string {
	switch {
	case r == Ace:
		return "A"
	case r >= Two && r <= Nine:
		return fmt.Sprintf("%d", int(r))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	default:
		return "?"
	}
}

// Chips returns the chip value a card of this rank contributes when scored:
// Aces score 11, numeral cards score their rank, court cards score 10.
func (r Rank) Chips() (int, error) {
	switch {
	case r == Ace:
		return 11, nil
	case r >= Two && r <= Ten:
		return int(r), nil
	case r >= Jack && r <= King:
		return 10, nil
	default:
		return 0, fmt.Errorf("%w, got %d", ErrInvalidRank, int(r))
	}
}

// Card represents a playing card. Cards are immutable values; equality is
// structural on (rank, suit).
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// IsFaceCard returns true if the card is a face card (J, Q, K)
func (c Card) IsFaceCard() bool {
	return c.Rank >= Jack && c.Rank <= King
}

// ApplyChips folds this card's chip contribution into a running chip total.
// Panics on an invalid rank: a card like that cannot come from a deck, so
// reaching here means a corrupted invariant, not a user error.
func (c Card) ApplyChips(current int) int {
	chips, err := c.Rank.Chips()
	if err != nil {
		panic(err)
	}
	return current + chips
}

// ApplyMult folds this card's multiplier contribution into a running
// multiplier. Plain cards never change the multiplier; the hook exists for
// future card enhancements.
func (c Card) ApplyMult(current int) int {
	return current
}
