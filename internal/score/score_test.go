package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/anteup/internal/deck"
	"github.com/lox/anteup/internal/joker"
)

func TestComputeSingleAce(t *testing.T) {
	b := Compute([]deck.Card{deck.NewCard(deck.Ace, deck.Spades)}, nil)

	assert.Equal(t, 11, b.Chips)
	assert.Equal(t, 1, b.Mult)
	assert.Equal(t, 11, b.Total())
}

func TestComputeNoCardsWithJoker(t *testing.T) {
	jokers := []joker.Joker{joker.FlatMult("Joker", "Adds 4 to Mult", 4, 4)}
	b := Compute(nil, jokers)

	assert.Equal(t, 0, b.Chips)
	assert.Equal(t, 5, b.Mult)
	assert.Equal(t, 0, b.Total(), "zero chips scores zero regardless of mult")
}

func TestComputeCardsThenJokers(t *testing.T) {
	played := []deck.Card{
		deck.NewCard(deck.King, deck.Spades),
		deck.NewCard(deck.King, deck.Hearts),
	}
	jokers := []joker.Joker{joker.FlatMult("Joker", "Adds 4 to Mult", 4, 4)}

	b := Compute(played, jokers)

	assert.Equal(t, 20, b.Chips)
	assert.Equal(t, 5, b.Mult)
	assert.Equal(t, 100, b.Total())
}

func TestComputeJokerOrderMatters(t *testing.T) {
	played := []deck.Card{deck.NewCard(deck.Ten, deck.Clubs)}
	plus := joker.FlatMult("Plus", "Adds 4 to Mult", 4, 4)
	times := joker.TimesMult("Times", "Doubles Mult", 8, 2)

	plusFirst := Compute(played, []joker.Joker{plus, times})
	timesFirst := Compute(played, []joker.Joker{times, plus})

	// (1+4)*2 = 10 vs 1*2+4 = 6
	assert.Equal(t, 100, plusFirst.Total())
	assert.Equal(t, 60, timesFirst.Total())
}

func TestComputeChipJokers(t *testing.T) {
	played := []deck.Card{deck.NewCard(deck.Two, deck.Diamonds)}
	jokers := []joker.Joker{
		joker.FlatChips("Banner", "Adds 30 Chips", 5, 30),
		joker.FlatChips("Stone Idol", "Adds 50 Chips", 7, 50),
	}

	b := Compute(played, jokers)

	assert.Equal(t, 82, b.Chips)
	assert.Equal(t, 1, b.Mult)
	assert.Equal(t, 82, b.Total())
}

func TestComputeEmpty(t *testing.T) {
	b := Compute(nil, nil)

	assert.Equal(t, 0, b.Chips)
	assert.Equal(t, 1, b.Mult)
	assert.Equal(t, 0, b.Total())
}

func TestComputeIsPure(t *testing.T) {
	played := []deck.Card{
		deck.NewCard(deck.Queen, deck.Hearts),
		deck.NewCard(deck.Five, deck.Clubs),
	}
	jokers := []joker.Joker{joker.TimesMult("Acrobat", "Doubles Mult", 8, 2)}

	first := Compute(played, jokers)
	second := Compute(played, jokers)

	assert.Equal(t, first, second)
}
