package game

import "fmt"

type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

var Orientations = [2]Orientation{Vertical, Horizontal}

func (o Orientation) String() string {
	if o == Horizontal {
		return "h"
	}
	return "v"
}

// ParseOrientation accepts v or h in either case.
func ParseOrientation(r rune) (Orientation, bool) {
	switch r {
	case 'v', 'V':
		return Vertical, true
	case 'h', 'H':
		return Horizontal, true
	default:
		return 0, false
	}
}

// Wall is anchored at the intersection south-east of cell Anchor and covers two unit segments.
type Wall struct {
	Anchor      Cell
	Orientation Orientation
}

// Edge is an open passage between two axis-adjacent cells.
type Edge struct {
	A Cell
	B Cell
}

func (w Wall) InBounds() bool {
	return w.Anchor.X >= 0 && w.Anchor.X < AnchorSize && w.Anchor.Y >= 0 && w.Anchor.Y < AnchorSize
}

// Edges returns the two passages the wall removes. A vertical wall separates columns x and x+1
// on rows y and y+1; a horizontal wall separates rows y and y+1 on columns x and x+1.
func (w Wall) Edges() [2]Edge {
	x, y := w.Anchor.X, w.Anchor.Y
	if w.Orientation == Vertical {
		return [2]Edge{
			{A: Cell{X: x, Y: y}, B: Cell{X: x + 1, Y: y}},
			{A: Cell{X: x, Y: y + 1}, B: Cell{X: x + 1, Y: y + 1}},
		}
	}
	return [2]Edge{
		{A: Cell{X: x, Y: y}, B: Cell{X: x, Y: y + 1}},
		{A: Cell{X: x + 1, Y: y}, B: Cell{X: x + 1, Y: y + 1}},
	}
}

// neighbors returns the anchors that a wall of the same orientation would overlap.
func (w Wall) neighbors() [2]Cell {
	if w.Orientation == Vertical {
		return [2]Cell{w.Anchor.Add(North), w.Anchor.Add(South)}
	}
	return [2]Cell{w.Anchor.Add(East), w.Anchor.Add(West)}
}

func (w Wall) String() string {
	return fmt.Sprintf("%d, %d, %s", w.Anchor.X, w.Anchor.Y, w.Orientation)
}

// wallGrid indexes placed walls by anchor for constant-time overlap checks.
type wallGrid [AnchorSize][AnchorSize]uint8

const (
	noWall uint8 = iota
	verticalWall
	horizontalWall
)

func (g *wallGrid) at(anchor Cell) (Orientation, bool) {
	if anchor.X < 0 || anchor.X >= AnchorSize || anchor.Y < 0 || anchor.Y >= AnchorSize {
		return 0, false
	}
	switch g[anchor.X][anchor.Y] {
	case verticalWall:
		return Vertical, true
	case horizontalWall:
		return Horizontal, true
	default:
		return 0, false
	}
}

func (g *wallGrid) set(w Wall) {
	if w.Orientation == Vertical {
		g[w.Anchor.X][w.Anchor.Y] = verticalWall
	} else {
		g[w.Anchor.X][w.Anchor.Y] = horizontalWall
	}
}

// fits reports whether w can be added without sharing an anchor with any wall or overlapping a
// parallel wall on an adjacent anchor.
func (g *wallGrid) fits(w Wall) bool {
	if !w.InBounds() {
		return false
	}
	if _, taken := g.at(w.Anchor); taken {
		return false
	}
	for _, n := range w.neighbors() {
		if o, ok := g.at(n); ok && o == w.Orientation {
			return false
		}
	}
	return true
}
