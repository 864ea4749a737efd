package game

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// maxSelect is the hard limit on cards selected for a single play.
const maxSelect = 5

// Rules holds the tunable game parameters. Zero values are filled with
// defaults when loading from a file.
type Rules struct {
	DrawSize       int `hcl:"draw_size,optional"`
	TotalHands     int `hcl:"hands,optional"`
	TotalDiscards  int `hcl:"discards,optional"`
	MaxJokers      int `hcl:"max_jokers,optional"`
	ShopJokers     int `hcl:"shop_jokers,optional"`
	StartingMoney  int `hcl:"starting_money,optional"`
	StartingJokers int `hcl:"starting_jokers,optional"`
	SellPercent    int `hcl:"sell_percent,optional"`
}

// DefaultRules returns the standard game parameters.
func DefaultRules() Rules {
	return Rules{
		DrawSize:       8,
		TotalHands:     4,
		TotalDiscards:  4,
		MaxJokers:      5,
		ShopJokers:     2,
		StartingMoney:  0,
		StartingJokers: 2,
		SellPercent:    100,
	}
}

// Validate validates the rules. The deck bound guarantees a blind can never
// exhaust the draw pile: the initial draw plus every possible redraw must
// fit in 52 cards, which makes an empty-pile draw a true invariant
// violation.
func (r Rules) Validate() error {
	if r.DrawSize < 1 {
		return fmt.Errorf("draw size must be at least 1, got %d", r.DrawSize)
	}
	if r.DrawSize < maxSelect {
		return fmt.Errorf("draw size must allow a full %d-card play, got %d", maxSelect, r.DrawSize)
	}
	if r.TotalHands < 1 {
		return fmt.Errorf("hands per blind must be at least 1, got %d", r.TotalHands)
	}
	if r.TotalDiscards < 0 {
		return fmt.Errorf("discards per blind cannot be negative, got %d", r.TotalDiscards)
	}
	if r.MaxJokers < 1 {
		return fmt.Errorf("max jokers must be at least 1, got %d", r.MaxJokers)
	}
	if r.StartingJokers < 0 || r.StartingJokers > r.MaxJokers {
		return fmt.Errorf("starting jokers must be between 0 and max jokers (%d), got %d", r.MaxJokers, r.StartingJokers)
	}
	if r.ShopJokers < 1 {
		return fmt.Errorf("shop must offer at least 1 joker, got %d", r.ShopJokers)
	}
	if r.StartingMoney < 0 {
		return fmt.Errorf("starting money cannot be negative, got %d", r.StartingMoney)
	}
	if r.SellPercent < 0 || r.SellPercent > 100 {
		return fmt.Errorf("sell percent must be between 0 and 100, got %d", r.SellPercent)
	}
	if worst := r.DrawSize + maxSelect*(r.TotalHands-1+r.TotalDiscards); worst > 52 {
		return fmt.Errorf("rules can exhaust the deck: worst-case draw of %d cards exceeds 52", worst)
	}
	return nil
}

// LoadRules loads rules from an HCL file, applying defaults for missing
// values. A missing file yields the defaults.
func LoadRules(filename string) (Rules, error) {
	rules := DefaultRules()
	if filename == "" {
		return rules, nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return rules, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return Rules{}, fmt.Errorf("failed to parse rules file: %s", diags.Error())
	}

	var loaded Rules
	diags = gohcl.DecodeBody(file.Body, nil, &loaded)
	if diags.HasErrors() {
		return Rules{}, fmt.Errorf("failed to decode rules file: %s", diags.Error())
	}

	if loaded.DrawSize != 0 {
		rules.DrawSize = loaded.DrawSize
	}
	if loaded.TotalHands != 0 {
		rules.TotalHands = loaded.TotalHands
	}
	if loaded.TotalDiscards != 0 {
		rules.TotalDiscards = loaded.TotalDiscards
	}
	if loaded.MaxJokers != 0 {
		rules.MaxJokers = loaded.MaxJokers
	}
	if loaded.ShopJokers != 0 {
		rules.ShopJokers = loaded.ShopJokers
	}
	if loaded.StartingMoney != 0 {
		rules.StartingMoney = loaded.StartingMoney
	}
	if loaded.StartingJokers != 0 {
		rules.StartingJokers = loaded.StartingJokers
	}
	if loaded.SellPercent != 0 {
		rules.SellPercent = loaded.SellPercent
	}

	if err := rules.Validate(); err != nil {
		return Rules{}, fmt.Errorf("invalid rules in %s: %w", filename, err)
	}
	return rules, nil
}
