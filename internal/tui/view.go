package tui

import (
	"fmt"
	"strings"

	"github.com/lox/anteup/internal/deck"
	"github.com/lox/anteup/internal/game"
)

// View renders the whole screen from a snapshot.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Snapshot()
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(" ♠ ♥ anteup ♦ ♣ "))
	b.WriteString("\n\n")
	b.WriteString(m.statusLine(snap))
	b.WriteString("\n\n")

	switch snap.Stage {
	case game.StagePlaying:
		b.WriteString(renderHand(snap))
		b.WriteString("\n")
		b.WriteString(renderJokers("Jokers", snap.Jokers))
	case game.StageShop:
		b.WriteString(SuccessStyle.Render("— Shop —"))
		b.WriteString("\n")
		b.WriteString(renderJokers("For sale", snap.ShopOffers))
		b.WriteString(renderJokers("Owned", snap.Jokers))
	case game.StageGameOver:
		b.WriteString(ErrorStyle.Render("GAME OVER"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.logView.View())
	b.WriteString("\n")
	if m.lastErr != nil {
		b.WriteString(ErrorStyle.Render(m.lastErr.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	return b.String()
}

// statusLine summarises the economy and blind progress.
func (m *Model) statusLine(snap game.Snapshot) string {
	return fmt.Sprintf("%s  %s  %s",
		StatusStyle.Render(fmt.Sprintf("Ante %d · Blind %d", snap.Ante, snap.BlindTier)),
		StatusStyle.Render(fmt.Sprintf("Score %d / %d", snap.ChipsScored, snap.GoalChips)),
		fmt.Sprintf("Hands %d · Discards %d · %s",
			snap.HandsLeft, snap.DiscardsLeft,
			MoneyStyle.Render(fmt.Sprintf("$%d", snap.Money))))
}

// renderHand shows the hand with indexes, highlighting selected cards.
func renderHand(snap game.Snapshot) string {
	var b strings.Builder
	b.WriteString("Hand:\n")
	for i, card := range snap.Hand {
		marker := " "
		text := renderCard(card)
		if snap.Selected[i] {
			marker = "*"
			text = SelectedStyle.Render(card.String())
		}
		b.WriteString(fmt.Sprintf("  %s s%d %s\n", marker, i, text))
	}
	return b.String()
}

// renderCard colours a card by suit.
func renderCard(card deck.Card) string {
	if card.IsRed() {
		return RedCardStyle.Render(card.String())
	}
	return BlackCardStyle.Render(card.String())
}

// renderJokers lists jokers with their shop lines.
func renderJokers(title string, jokers []game.JokerInfo) string {
	if len(jokers) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(InfoStyle.Render(title+":") + "\n")
	for i, j := range jokers {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i, j.ShopLine))
	}
	return b.String()
}
