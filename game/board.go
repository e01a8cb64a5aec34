package game

import "fmt"

const (
	BoardSize  = 9                     // Cells per side
	NumCells   = BoardSize * BoardSize // Cells on the board
	AnchorSize = BoardSize - 1         // Wall anchors per side
)

// Cell is a board coordinate: X is the column, Y is the row. Row 0 is the north edge.
type Cell struct {
	X int
	Y int
}

func (c Cell) Add(d Direction) Cell {
	delta := d.Delta()
	return Cell{X: c.X + delta.X, Y: c.Y + delta.Y}
}

func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// Index maps an in-bounds cell to its flat graph slot.
func (c Cell) Index() int {
	return c.Y*BoardSize + c.X
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

func cellAt(index int) Cell {
	return Cell{X: index % BoardSize, Y: index / BoardSize}
}

// Direction is one of the four orthogonal unit vectors.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

var Directions = [4]Direction{North, South, East, West}

var deltas = [4]Cell{
	North: {X: 0, Y: -1},
	South: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	West:  {X: -1, Y: 0},
}

func (d Direction) Delta() Cell {
	return deltas[d]
}

func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Perpendicular reports whether d and other lie on different axes.
func (d Direction) Perpendicular(other Direction) bool {
	return (d <= South) != (other <= South)
}

func (d Direction) bit() uint8 {
	return 1 << d
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	default:
		return "?"
	}
}

// ParseDirection accepts N, S, E or W in either case.
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case 'n', 'N':
		return North, true
	case 's', 'S':
		return South, true
	case 'e', 'E':
		return East, true
	case 'w', 'W':
		return West, true
	default:
		return 0, false
	}
}

// directionBetween returns the direction leading from a to an axis-adjacent b.
func directionBetween(a, b Cell) (Direction, bool) {
	for _, d := range Directions {
		if a.Add(d) == b {
			return d, true
		}
	}
	return 0, false
}
