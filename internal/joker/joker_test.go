package joker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/anteup/internal/randutil"
)

func TestFlatMult(t *testing.T) {
	j := FlatMult("Joker", "Adds 4 to Mult", 4, 4)

	assert.Equal(t, "Joker", j.Name())
	assert.Equal(t, 4, j.BaseCost())
	assert.Equal(t, 4, j.Cost())
	assert.Equal(t, EditionBase, j.Edition())
	assert.Equal(t, 10, j.ApplyChips(10), "flat mult joker should not touch chips")
	assert.Equal(t, 5, j.ApplyMult(1))
	assert.Equal(t, 7, j.ApplyMult(3))
}

func TestFlatChips(t *testing.T) {
	j := FlatChips("Banner", "Adds 30 Chips", 5, 30)

	assert.Equal(t, 30, j.ApplyChips(0))
	assert.Equal(t, 50, j.ApplyChips(20))
	assert.Equal(t, 3, j.ApplyMult(3), "flat chips joker should not touch mult")
}

func TestTimesMult(t *testing.T) {
	j := TimesMult("Acrobat", "Doubles Mult", 8, 2)

	assert.Equal(t, 2, j.ApplyMult(1))
	assert.Equal(t, 18, j.ApplyMult(9))
	assert.Equal(t, 42, j.ApplyChips(42))
}

func TestShopLine(t *testing.T) {
	j := FlatMult("Joker", "Adds 4 to Mult", 4, 4)
	assert.Equal(t, "Joker - Adds 4 to Mult (Cost: 4)", j.ShopLine())
}

func TestWithEdition(t *testing.T) {
	base := FlatMult("Joker", "Adds 4 to Mult", 4, 4)
	foil := WithEdition(base, EditionFoil)

	assert.Equal(t, EditionFoil, foil.Edition())
	assert.Equal(t, EditionBase, base.Edition(), "WithEdition must not mutate the original")
	assert.Equal(t, base.Cost(), foil.Cost(), "editions do not change pricing")
	assert.Equal(t, base.ApplyMult(1), foil.ApplyMult(1))
}

func TestCatalogEntries(t *testing.T) {
	reg := Catalog()
	require.Equal(t, 5, reg.Len())

	names := make([]string, 0, reg.Len())
	for _, j := range reg.All() {
		names = append(names, j.Name())
	}
	assert.Equal(t, []string{"Joker", "Abstract Art", "Banner", "Stone Idol", "Acrobat"}, names)
}

func TestRegistryByName(t *testing.T) {
	reg := Catalog()

	j, ok := reg.ByName("Banner")
	require.True(t, ok)
	assert.Equal(t, "Banner", j.Name())
	assert.Equal(t, 5, j.Cost())

	_, ok = reg.ByName("No Such Joker")
	assert.False(t, ok)
}

func TestRegistryChoose(t *testing.T) {
	reg := Catalog()
	rng := randutil.New(7)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		j := reg.Choose(rng)
		require.NotNil(t, j)
		seen[j.Name()] = true
	}
	assert.Len(t, seen, reg.Len(), "100 draws should hit every catalog entry")
}

func TestRegistryChooseEmpty(t *testing.T) {
	reg := NewRegistry()
	assert.Nil(t, reg.Choose(randutil.New(1)))
}

func TestRegistryAllIsCopy(t *testing.T) {
	reg := NewRegistry(FlatMult("A", "a", 1, 1), FlatMult("B", "b", 2, 2))

	all := reg.All()
	all[0] = nil

	j, ok := reg.ByName("A")
	require.True(t, ok)
	assert.Equal(t, "A", j.Name())
}
