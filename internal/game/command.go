package game

import "fmt"

// CommandType identifies a player intent. Input collaborators hand the core
// parsed commands, never raw text; all index validation happens in the core.
type CommandType int

const (
	CmdPlay CommandType = iota
	CmdDiscard
	CmdToggleSelect
	CmdBuyJoker
	CmdSellJoker
	CmdContinue
)

// String returns the string representation of a command type
func (c CommandType) String() string {
	switch c {
	case CmdPlay:
		return "play"
	case CmdDiscard:
		return "discard"
	case CmdToggleSelect:
		return "select"
	case CmdBuyJoker:
		return "buy"
	case CmdSellJoker:
		return "sell"
	case CmdContinue:
		return "continue"
	default:
		return "?"
	}
}

// Command is a validated player intent. Index is meaningful only for the
// select, buy and sell commands.
type Command struct {
	Type  CommandType
	Index int
}

// String returns the string representation of a command
func (c Command) String() string {
	switch c.Type {
	case CmdToggleSelect, CmdBuyJoker, CmdSellJoker:
		return fmt.Sprintf("%s %d", c.Type, c.Index)
	default:
		return c.Type.String()
	}
}

// Play creates a play-selected command.
func Play() Command { return Command{Type: CmdPlay} }

// Discard creates a discard-selected command.
func Discard() Command { return Command{Type: CmdDiscard} }

// ToggleSelect creates a command toggling the hand card at index.
func ToggleSelect(index int) Command { return Command{Type: CmdToggleSelect, Index: index} }

// BuyJoker creates a command buying the shop offer at index.
func BuyJoker(index int) Command { return Command{Type: CmdBuyJoker, Index: index} }

// SellJoker creates a command selling the owned joker at index.
func SellJoker(index int) Command { return Command{Type: CmdSellJoker, Index: index} }

// Continue creates a command leaving the shop for the next blind.
func Continue() Command { return Command{Type: CmdContinue} }
