// Package tui is the interactive terminal front end. It maps typed lines to
// game commands and renders read-only snapshots; the game never depends on
// anything here.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/anteup/internal/game"
)

// Model is the Bubble Tea model for an interactive session.
type Model struct {
	game   *game.Game
	logger *log.Logger

	logView viewport.Model
	input   textinput.Model

	messages []string
	lastErr  error

	width       int
	height      int
	initialized bool
	quitting    bool
}

// New creates a TUI model around a game.
func New(g *game.Game, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)

	ti := textinput.New()
	ti.Placeholder = "p=play  d=discard  s<n>=select  b<n>=buy  sell <n>  c=continue  q=quit"
	ti.Focus()
	ti.CharLimit = 60
	ti.Prompt = "> "

	return &Model{
		game:    g,
		logger:  logger.WithPrefix("tui"),
		logView: vp,
		input:   ti,
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logView.Width = msg.Width
		m.logView.Height = max(3, msg.Height-18)
		m.initialized = true

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			line := m.input.Value()
			m.input.SetValue("")
			if quit := m.handleLine(line); quit {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleLine applies one typed command to the game. Returns true when the
// session should end.
func (m *Model) handleLine(line string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	if trimmed == "" {
		return false
	}
	if trimmed == "q" || trimmed == "quit" {
		return true
	}

	m.lastErr = nil
	cmd, err := ParseCommand(trimmed)
	if err != nil {
		m.lastErr = err
		return false
	}

	m.logger.Debug("command", "cmd", cmd)
	if cmd.Type == game.CmdPlay {
		m.handlePlay()
		return false
	}

	if err := m.game.Apply(cmd); err != nil {
		if errors.Is(err, game.ErrGameOver) {
			m.addMessage(ErrorStyle.Render("The run is over. Press q to exit."))
			return false
		}
		m.lastErr = err
		return false
	}

	switch cmd.Type {
	case game.CmdDiscard:
		m.addMessage("Discarded selection and redrew.")
	case game.CmdBuyJoker:
		m.addMessage(SuccessStyle.Render("Joker purchased."))
	case game.CmdSellJoker:
		m.addMessage("Joker sold.")
	case game.CmdContinue:
		snap := m.game.Snapshot()
		m.addMessage(HeaderStyle.Render(fmt.Sprintf(" Ante %d, Blind %d — goal %d chips ", snap.Ante, snap.BlindTier, snap.GoalChips)))
	}
	return false
}

// handlePlay plays the selection and narrates the result.
func (m *Model) handlePlay() {
	result, err := m.game.PlaySelected()
	if err != nil {
		if errors.Is(err, game.ErrGameOver) {
			m.addMessage(ErrorStyle.Render("The run is over. Press q to exit."))
			return
		}
		m.lastErr = err
		return
	}

	m.addMessage(fmt.Sprintf("Scored %d (%d chips × %d mult) — %d / %d",
		result.Score, result.Breakdown.Chips, result.Breakdown.Mult,
		result.ChipsScored, result.GoalChips))

	switch result.Outcome {
	case game.OutcomeBlindWon:
		m.addMessage(SuccessStyle.Render(fmt.Sprintf("Blind beaten! Earned $%d. Welcome to the shop.", result.Payout)))
	case game.OutcomeGameOver:
		m.addMessage(ErrorStyle.Render("Out of hands. Game over — press q to exit."))
	}
}

// addMessage appends to the scrollback and keeps the viewport pinned to the
// bottom.
func (m *Model) addMessage(msg string) {
	m.messages = append(m.messages, msg)
	m.logView.SetContent(strings.Join(m.messages, "\n"))
	m.logView.GotoBottom()
}
