package game

import "errors"

// Recoverable errors: returned to the command loop, which re-prompts the
// player. A failed transition never mutates game state.
var (
	ErrNotInHand         = errors.New("card is not in hand")
	ErrSelectionFull     = errors.New("selection already holds 5 cards")
	ErrEmptyPlay         = errors.New("no cards selected")
	ErrNoDiscardsLeft    = errors.New("no discards remaining")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrJokerSlotsFull    = errors.New("no free joker slots")
	ErrWrongStage        = errors.New("action not legal in current stage")
)

// ErrGameOver is a terminal signal, not a recoverable error: the controller
// ends the session instead of re-prompting.
var ErrGameOver = errors.New("game is over")
