package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/anteup/internal/game"
)

// ParseCommand turns a typed line into a game command. Supported forms:
//
//	p, play          play the selected cards
//	d, discard       discard the selected cards
//	s<n>, select <n> toggle hand card n
//	b<n>, buy <n>    buy shop offer n
//	sell <n>         sell owned joker n
//	c, continue      continue to the next blind
//
// Index validity is the game's job; parsing only checks shape.
func ParseCommand(line string) (game.Command, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(fields) == 0 {
		return game.Command{}, fmt.Errorf("empty command")
	}

	word, rest := fields[0], fields[1:]
	switch word {
	case "p", "play":
		return game.Play(), nil
	case "d", "discard":
		return game.Discard(), nil
	case "c", "continue", "next":
		return game.Continue(), nil
	case "s", "select":
		return indexed(game.ToggleSelect, word, rest)
	case "b", "buy":
		return indexed(game.BuyJoker, word, rest)
	case "sell":
		return indexed(game.SellJoker, word, rest)
	}

	// Compact forms: s3, b0.
	if len(rest) == 0 && len(word) > 1 {
		if n, err := strconv.Atoi(word[1:]); err == nil {
			switch word[0] {
			case 's':
				return game.ToggleSelect(n), nil
			case 'b':
				return game.BuyJoker(n), nil
			}
		}
	}

	return game.Command{}, fmt.Errorf("unknown command %q", line)
}

// indexed parses the single numeric argument of an index-taking command.
func indexed(build func(int) game.Command, word string, rest []string) (game.Command, error) {
	if len(rest) != 1 {
		return game.Command{}, fmt.Errorf("%s needs a number, e.g. %q", word, word+" 0")
	}
	n, err := strconv.Atoi(rest[0])
	if err != nil {
		return game.Command{}, fmt.Errorf("invalid number %q", rest[0])
	}
	return build(n), nil
}
