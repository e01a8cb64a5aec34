package player

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"quoridor/game"
	"quoridor/render"

	"github.com/rs/zerolog/log"
)

// Console asks a human for moves, drawing the board before every prompt.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// FindMove keeps prompting until the input names an applicable action. It fails once the input is
// exhausted or ctx is done.
func (c *Console) FindMove(ctx context.Context, state *game.GameState) (game.Action, error) {
	if err := render.Write(c.out, state); err != nil {
		return game.Action{}, err
	}
	label := state.Player(state.Turn()).Label

	for {
		if err := ctx.Err(); err != nil {
			return game.Action{}, err
		}
		fmt.Fprintf(c.out, "player %s> ", label)

		if !c.scanner.Scan() {
			err := c.scanner.Err()
			if err == nil {
				err = io.EOF
			}
			return game.Action{}, fmt.Errorf("console input closed: %w", err)
		}

		text := c.scanner.Text()
		action, err := ParseAction(text)
		if err != nil {
			log.Debug().Msgf("rejected input %q: %v", text, err)
			fmt.Fprintln(c.out, "unrecognized action, try ms, jn, jse or w34h")
			continue
		}
		if !state.IsApplicable(action) {
			fmt.Fprintf(c.out, "%s is not allowed here\n", action)
			continue
		}
		return action, nil
	}
}
