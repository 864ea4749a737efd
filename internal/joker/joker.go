// Package joker holds the catalog of scoring modifiers a player can buy.
// A joker contributes chips and/or multiplier during scoring and carries
// shop metadata. New kinds are added by registering catalog entries; the
// scoring engine never changes.
package joker

import "fmt"

// Joker is a scoring modifier. Implementations are immutable; instances in
// a player's inventory are shared handles with no mutable state beyond the
// edition stamped at purchase time.
type Joker interface {
	Name() string
	Description() string
	BaseCost() int
	Edition() Edition

	// Cost is the shop price. Editions do not change pricing yet, so this
	// always equals BaseCost.
	Cost() int

	// ShopLine is the human-readable shop listing for this joker.
	ShopLine() string

	// ApplyChips folds this joker's chip contribution into a running total.
	ApplyChips(current int) int

	// ApplyMult folds this joker's multiplier contribution into a running
	// multiplier.
	ApplyMult(current int) int
}

// applyFunc transforms a running chips or mult accumulator.
type applyFunc func(current int) int

// template is the single Joker implementation: a catalog entry carrying its
// contribution functions as data.
type template struct {
	name        string
	description string
	baseCost    int
	edition     Edition
	chips       applyFunc
	mult        applyFunc
}

// New creates a joker with the given contribution functions. A nil function
// means no contribution of that kind.
func New(name, description string, baseCost int, chips, mult applyFunc) Joker {
	return &template{
		name:        name,
		description: description,
		baseCost:    baseCost,
		edition:     EditionBase,
		chips:       chips,
		mult:        mult,
	}
}

// FlatMult creates a joker that adds a fixed bonus to the multiplier.
func FlatMult(name, description string, baseCost, bonus int) Joker {
	return New(name, description, baseCost, nil, func(current int) int {
		return current + bonus
	})
}

// FlatChips creates a joker that adds a fixed bonus to the chip total.
func FlatChips(name, description string, baseCost, bonus int) Joker {
	return New(name, description, baseCost, func(current int) int {
		return current + bonus
	}, nil)
}

// TimesMult creates a joker that multiplies the running multiplier.
func TimesMult(name, description string, baseCost, factor int) Joker {
	return New(name, description, baseCost, nil, func(current int) int {
		return current * factor
	})
}

func (t *template) Name() string        { return t.name }
func (t *template) Description() string { return t.description }
func (t *template) BaseCost() int       { return t.baseCost }
func (t *template) Edition() Edition    { return t.edition }

func (t *template) Cost() int {
	return t.baseCost
}

func (t *template) ShopLine() string {
	return fmt.Sprintf("%s - %s (Cost: %d)", t.name, t.description, t.Cost())
}

func (t *template) ApplyChips(current int) int {
	if t.chips == nil {
		return current
	}
	return t.chips(current)
}

func (t *template) ApplyMult(current int) int {
	if t.mult == nil {
		return current
	}
	return t.mult(current)
}

// WithEdition returns a copy of the joker stamped with the given edition.
func WithEdition(j Joker, e Edition) Joker {
	if t, ok := j.(*template); ok {
		copied := *t
		copied.edition = e
		return &copied
	}
	return j
}
