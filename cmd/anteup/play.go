package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/anteup/internal/game"
	"github.com/lox/anteup/internal/joker"
	"github.com/lox/anteup/internal/randutil"
	"github.com/lox/anteup/internal/tui"
)

// PlayCmd runs an interactive session.
type PlayCmd struct {
	Seed    int64  `help:"RNG seed (0 for random)" default:"0"`
	Rules   string `help:"Path to an HCL rules file" type:"path"`
	LogFile string `help:"Debug log destination" default:"anteup.log"`
}

// Run starts the TUI game loop.
func (c *PlayCmd) Run() error {
	// The TUI owns the terminal, so debug logging goes to a file.
	debugFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("failed to create debug log: %w", err)
	}
	defer func() {
		if err := debugFile.Close(); err != nil {
			log.Error("Failed to close debug log", "error", err)
		}
	}()

	logger := log.NewWithOptions(debugFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           log.DebugLevel,
	})

	rules, err := game.LoadRules(c.Rules)
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting run", "seed", seed)

	g, err := game.NewGame(randutil.New(seed), rules, joker.Catalog(), logger)
	if err != nil {
		return err
	}

	program := tea.NewProgram(tui.New(g, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui failed: %w", err)
	}

	if g.Stage() == game.StageGameOver {
		fmt.Printf("Run over at ante %d, blind %d. Blinds won: %d, final money: $%d\n",
			g.Ante(), g.BlindTier(), g.BlindsWon(), g.Money())
	}
	return nil
}
