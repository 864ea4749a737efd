package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRulesValid(t *testing.T) {
	assert.NoError(t, DefaultRules().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Rules)
	}{
		{"zero draw size", func(r *Rules) { r.DrawSize = 0 }},
		{"draw size below full play", func(r *Rules) { r.DrawSize = 4 }},
		{"zero hands", func(r *Rules) { r.TotalHands = 0 }},
		{"negative discards", func(r *Rules) { r.TotalDiscards = -1 }},
		{"zero max jokers", func(r *Rules) { r.MaxJokers = 0 }},
		{"negative starting jokers", func(r *Rules) { r.StartingJokers = -1 }},
		{"starting jokers above max", func(r *Rules) { r.StartingJokers = 6 }},
		{"zero shop jokers", func(r *Rules) { r.ShopJokers = 0 }},
		{"negative starting money", func(r *Rules) { r.StartingMoney = -1 }},
		{"sell percent above 100", func(r *Rules) { r.SellPercent = 101 }},
		{"negative sell percent", func(r *Rules) { r.SellPercent = -1 }},
		{"deck exhaustion", func(r *Rules) { r.TotalHands = 9; r.TotalDiscards = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := DefaultRules()
			tt.mutate(&rules)
			assert.Error(t, rules.Validate())
		})
	}
}

func TestValidateDeckBound(t *testing.T) {
	// 8 + 5*(9-1+0) = 48 fits, one more discard round does not.
	rules := DefaultRules()
	rules.TotalHands = 9
	rules.TotalDiscards = 0
	assert.NoError(t, rules.Validate())

	rules.TotalDiscards = 1
	assert.Error(t, rules.Validate())
}

func TestLoadRulesNoFile(t *testing.T) {
	rules, err := LoadRules("")
	require.NoError(t, err)
	assert.Equal(t, DefaultRules(), rules)
}

func TestLoadRulesMissingFile(t *testing.T) {
	rules, err := LoadRules("/nonexistent/rules.hcl")
	require.NoError(t, err)
	assert.Equal(t, DefaultRules(), rules)
}

func TestLoadRulesFromFile(t *testing.T) {
	path := writeRules(t, `
draw_size      = 10
hands          = 3
starting_money = 20
`)

	rules, err := LoadRules(path)
	require.NoError(t, err)

	assert.Equal(t, 10, rules.DrawSize)
	assert.Equal(t, 3, rules.TotalHands)
	assert.Equal(t, 20, rules.StartingMoney)

	// Unset values keep their defaults.
	assert.Equal(t, 4, rules.TotalDiscards)
	assert.Equal(t, 5, rules.MaxJokers)
	assert.Equal(t, 2, rules.StartingJokers)
	assert.Equal(t, 100, rules.SellPercent)
}

func TestLoadRulesInvalidSyntax(t *testing.T) {
	path := writeRules(t, `draw_size = = 10`)

	_, err := LoadRules(path)
	assert.Error(t, err)
}

func TestLoadRulesInvalidValues(t *testing.T) {
	path := writeRules(t, `hands = 12`)

	_, err := LoadRules(path)
	assert.Error(t, err)
}

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
