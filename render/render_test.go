package render

import (
	"bytes"
	"strings"
	"testing"

	"quoridor/game"

	"github.com/stretchr/testify/require"
)

func lines(t *testing.T, s *game.GameState) []string {
	t.Helper()
	out := strings.Split(Board(s), "\n")
	require.Len(t, out, width+1)
	return out
}

func TestBoard(t *testing.T) {
	t.Run("initial position", func(t *testing.T) {
		out := lines(t, game.NewInitialState())

		require.Equal(t, strings.Repeat("-", width), out[0])
		require.Equal(t, "| | | | |1| | | | |", out[1])
		require.Equal(t, "| | | | | | | | | |", out[3])
		require.Equal(t, "| | | | |2| | | | |", out[17])
		require.Equal(t, strings.Repeat("-", width), out[18])
		require.Equal(t, "0|(10, 10)", out[19])
	})

	t.Run("vertical wall spans two cell rows", func(t *testing.T) {
		s, err := game.NewGameState(game.WithPlacedWalls(game.Wall{Anchor: game.Cell{X: 2, Y: 3}, Orientation: game.Vertical}))
		require.NoError(t, err)
		out := lines(t, s)

		col := 6
		require.Equal(t, byte('#'), out[7][col])
		require.Equal(t, byte('#'), out[8][col])
		require.Equal(t, byte('#'), out[9][col])
		require.Equal(t, byte('|'), out[11][col], "The wall should stop after two cells")
	})

	t.Run("horizontal wall spans two cell columns", func(t *testing.T) {
		s, err := game.NewGameState(game.WithPlacedWalls(game.Wall{Anchor: game.Cell{X: 5, Y: 1}, Orientation: game.Horizontal}))
		require.NoError(t, err)
		out := lines(t, s)

		require.Equal(t, "-----------###-----", out[4])
	})

	t.Run("footer tracks turn and remaining walls", func(t *testing.T) {
		s := game.NewInitialState()
		s, err := s.Result(game.NewPlaceWall(game.Cell{X: 0, Y: 0}, game.Horizontal))
		require.NoError(t, err)

		require.True(t, strings.HasSuffix(Board(s), "1|(9, 10)"))
	})

	t.Run("custom labels", func(t *testing.T) {
		s, err := game.NewGameState(game.WithLabels("A", "B"))
		require.NoError(t, err)
		out := lines(t, s)

		require.Equal(t, byte('A'), out[1][9])
		require.Equal(t, byte('B'), out[17][9])
	})
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	s := game.NewInitialState()

	require.NoError(t, Write(&buf, s))
	require.Equal(t, Board(s)+"\n", buf.String())
}
