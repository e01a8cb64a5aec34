// Package render draws a game state as a 19x19 character grid.
package render

import (
	"fmt"
	"io"
	"strings"

	"quoridor/game"
)

const width = 2*game.BoardSize + 1

// Board returns the drawing of s. Cells are drawn at odd rows and columns, walls occupy the even
// grooves between them and are marked with '#'. The last line holds the side to move and the
// remaining walls of both players.
func Board(s *game.GameState) string {
	grid := make([][]byte, width)
	for row := range grid {
		line := make([]byte, width)
		for col := range line {
			switch {
			case row%2 == 0:
				line[col] = '-'
			case col%2 == 0:
				line[col] = '|'
			default:
				line[col] = ' '
			}
		}
		grid[row] = line
	}

	for _, p := range s.Players() {
		label := p.Label
		if label == "" {
			label = fmt.Sprint(p.Index + 1)
		}
		grid[2*p.Cell.Y+1][2*p.Cell.X+1] = label[0]
	}

	for _, w := range s.Walls() {
		row, col := (w.Anchor.Y+1)*2, (w.Anchor.X+1)*2
		grid[row][col] = '#'
		if w.Orientation == game.Vertical {
			grid[row-1][col] = '#'
			grid[row+1][col] = '#'
		} else {
			grid[row][col-1] = '#'
			grid[row][col+1] = '#'
		}
	}

	var b strings.Builder
	for _, line := range grid {
		b.Write(line)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%d|(%d, %d)", s.Turn(), s.WallsLeft(0), s.WallsLeft(1))
	return b.String()
}

// Write draws s followed by a newline.
func Write(w io.Writer, s *game.GameState) error {
	_, err := fmt.Fprintln(w, Board(s))
	return err
}
