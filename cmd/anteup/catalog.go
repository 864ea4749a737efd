package main

import (
	"fmt"

	"github.com/muesli/termenv"

	"github.com/lox/anteup/internal/joker"
)

// CatalogCmd prints the joker catalog.
type CatalogCmd struct{}

// Run lists every catalog entry with its shop line, colourised when the
// terminal supports it.
func (c *CatalogCmd) Run() error {
	profile := termenv.ColorProfile()

	for _, j := range joker.Catalog().All() {
		name := termenv.String(fmt.Sprintf("%-14s", j.Name())).
			Foreground(profile.Color("11")).
			Bold()
		detail := termenv.String(fmt.Sprintf("%s (Cost: %d, Edition: %s)",
			j.Description(), j.Cost(), j.Edition())).
			Foreground(profile.Color("7"))
		fmt.Printf("%s  %s\n", name, detail)
	}
	return nil
}
