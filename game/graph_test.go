package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGraph(t *testing.T) {
	t.Run("full grid adjacency with sentinel edges", func(t *testing.T) {
		g := NewGraph()

		require.Equal(t, 2*BoardSize*(BoardSize-1)+2*BoardSize, g.Edges(),
			"Graph should hold every grid passage plus one sentinel edge per goal row cell")
	})

	t.Run("board edge is closed but not blocked", func(t *testing.T) {
		g := NewGraph()
		corner := Cell{X: 0, Y: 0}

		require.False(t, g.Open(corner, North))
		require.False(t, g.Open(corner, West))
		require.False(t, g.Blocked(corner, North), "The board edge should not count as a wall")
		require.True(t, g.Open(corner, South))
		require.True(t, g.Open(corner, East))
	})
}

func TestGraphCut(t *testing.T) {
	t.Run("removes both directions of the passage", func(t *testing.T) {
		g := NewGraph()
		a, b := Cell{X: 3, Y: 3}, Cell{X: 4, Y: 3}

		require.True(t, g.Cut(a, b))
		require.False(t, g.Open(a, East))
		require.False(t, g.Open(b, West))
		require.True(t, g.Blocked(a, East))
	})

	t.Run("reports absent passages", func(t *testing.T) {
		g := NewGraph()
		a, b := Cell{X: 3, Y: 3}, Cell{X: 3, Y: 4}

		require.True(t, g.Cut(a, b))
		require.False(t, g.Cut(a, b), "A passage cannot be cut twice")
		require.False(t, g.Cut(a, Cell{X: 5, Y: 5}), "Non-adjacent cells share no passage")
	})

	t.Run("clones are independent", func(t *testing.T) {
		g := NewGraph()
		clone := g.Clone()
		clone.Cut(Cell{X: 0, Y: 0}, Cell{X: 1, Y: 0})

		require.True(t, g.Open(Cell{X: 0, Y: 0}, East), "Cutting a clone should not affect the original")
	})
}

func TestGraphConnected(t *testing.T) {
	t.Run("every cell reaches both goals on an empty board", func(t *testing.T) {
		g := NewGraph()

		for i := 0; i < NumCells; i++ {
			require.True(t, g.Connected(cellAt(i), SouthGoal))
			require.True(t, g.Connected(cellAt(i), NorthGoal))
		}
	})

	t.Run("never routes through the other sentinel", func(t *testing.T) {
		g := NewGraph()
		for x := 0; x < BoardSize; x++ {
			g.Cut(Cell{X: x, Y: 7}, Cell{X: x, Y: 8})
		}

		require.False(t, g.Connected(Cell{X: 4, Y: 0}, SouthGoal))
		require.True(t, g.Connected(Cell{X: 4, Y: 0}, NorthGoal))
		require.True(t, g.Connected(Cell{X: 2, Y: 8}, SouthGoal), "A goal row cell is already connected")
	})

	t.Run("off-board cells are never connected", func(t *testing.T) {
		g := NewGraph()

		require.False(t, g.Connected(Cell{X: -1, Y: 0}, NorthGoal))
	})
}

func TestGraphWouldDisconnect(t *testing.T) {
	pocket := func() Graph {
		g := NewGraph()
		// Seal (0,0) and (0,1) on the east, leaving (0,1)-(0,2) as the only exit
		g.Cut(Cell{X: 0, Y: 0}, Cell{X: 1, Y: 0})
		g.Cut(Cell{X: 0, Y: 1}, Cell{X: 1, Y: 1})
		return g
	}

	t.Run("detects a cut that isolates a probe", func(t *testing.T) {
		g := pocket()
		edges := []Edge{{A: Cell{X: 0, Y: 1}, B: Cell{X: 0, Y: 2}}}
		probes := []Probe{{From: Cell{X: 0, Y: 0}, To: SouthGoal}}

		require.True(t, g.WouldDisconnect(edges, probes))
	})

	t.Run("leaves the graph untouched", func(t *testing.T) {
		g := pocket()
		before := g
		edges := []Edge{{A: Cell{X: 0, Y: 1}, B: Cell{X: 0, Y: 2}}}
		probes := []Probe{{From: Cell{X: 0, Y: 0}, To: SouthGoal}}

		g.WouldDisconnect(edges, probes)

		require.Equal(t, before, g, "Probing should never mutate the committed graph")
		require.True(t, g.Open(Cell{X: 0, Y: 1}, South))
	})

	t.Run("accepts cuts that keep every probe connected", func(t *testing.T) {
		g := pocket()
		edges := []Edge{{A: Cell{X: 4, Y: 4}, B: Cell{X: 4, Y: 5}}, {A: Cell{X: 5, Y: 4}, B: Cell{X: 5, Y: 5}}}
		probes := []Probe{
			{From: Cell{X: 0, Y: 0}, To: SouthGoal},
			{From: Cell{X: 4, Y: 8}, To: NorthGoal},
		}

		require.False(t, g.WouldDisconnect(edges, probes))
	})
}

func TestGraphDistance(t *testing.T) {
	t.Run("straight run on an empty board", func(t *testing.T) {
		g := NewGraph()

		require.Equal(t, 8, g.Distance(Cell{X: 4, Y: 0}, SouthGoal))
		require.Equal(t, 0, g.Distance(Cell{X: 4, Y: 0}, NorthGoal))
	})

	t.Run("detour around a wall", func(t *testing.T) {
		g := NewGraph()
		wall := Wall{Anchor: Cell{X: 3, Y: 0}, Orientation: Horizontal}
		for _, e := range wall.Edges() {
			g.Cut(e.A, e.B)
		}

		require.Equal(t, 9, g.Distance(Cell{X: 4, Y: 0}, SouthGoal))
	})

	t.Run("unreachable goal", func(t *testing.T) {
		g := NewGraph()
		for x := 0; x < BoardSize; x++ {
			g.Cut(Cell{X: x, Y: 0}, Cell{X: x, Y: 1})
		}

		require.Equal(t, -1, g.Distance(Cell{X: 4, Y: 0}, SouthGoal))
	})
}
