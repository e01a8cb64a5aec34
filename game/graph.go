package game

// Sentinel is the virtual goal node owned by a player. It is adjacent to every cell of that
// player's goal row and is only ever a search target, never a waypoint.
type Sentinel int

const (
	SouthGoal Sentinel = iota // Player 0's goal, row 8
	NorthGoal                 // Player 1's goal, row 0

	NumNodes = NumCells + 2
)

// GoalSentinel returns the sentinel owned by the player.
func GoalSentinel(player int) Sentinel {
	return Sentinel(player)
}

// Row is the goal row the sentinel is connected to.
func (s Sentinel) Row() int {
	if s == SouthGoal {
		return BoardSize - 1
	}
	return 0
}

// Node is the sentinel's fixed slot after the 81 cell slots.
func (s Sentinel) Node() int {
	return NumCells + int(s)
}

// Probe asks whether From can still reach To.
type Probe struct {
	From Cell
	To   Sentinel
}

// Graph is the passage graph. Each cell slot holds a bitmask of the directions whose passage is
// still open; sentinel edges are fixed and never cut. Graph is a value type: assigning it copies
// every edge, so no two states ever share edge storage.
type Graph struct {
	open [NumCells]uint8
}

// NewGraph builds the full grid adjacency with both sentinels attached.
func NewGraph() Graph {
	var g Graph
	for i := range g.open {
		c := cellAt(i)
		for _, d := range Directions {
			if c.Add(d).InBounds() {
				g.open[i] |= d.bit()
			}
		}
	}
	return g
}

func (g Graph) Clone() Graph {
	return g
}

// Open reports whether the passage leaving c in direction d exists.
func (g *Graph) Open(c Cell, d Direction) bool {
	if !c.InBounds() || !c.Add(d).InBounds() {
		return false
	}
	return g.open[c.Index()]&d.bit() != 0
}

// Blocked reports whether a wall cuts the passage leaving c in direction d. The board edge is not
// a wall.
func (g *Graph) Blocked(c Cell, d Direction) bool {
	if !c.InBounds() || !c.Add(d).InBounds() {
		return false
	}
	return g.open[c.Index()]&d.bit() == 0
}

// Cut removes the passage between two adjacent cells, returning false when there was none.
func (g *Graph) Cut(a, b Cell) bool {
	d, ok := directionBetween(a, b)
	if !ok || !g.Open(a, d) {
		return false
	}
	g.open[a.Index()] &^= d.bit()
	g.open[b.Index()] &^= d.Opposite().bit()
	return true
}

// Edges counts open passages, sentinel edges included.
func (g *Graph) Edges() int {
	count := 0
	for _, mask := range g.open {
		for _, d := range Directions {
			if mask&d.bit() != 0 {
				count++
			}
		}
	}
	return count/2 + 2*BoardSize
}

// Connected runs a breadth-first search from c towards the sentinel.
func (g *Graph) Connected(c Cell, s Sentinel) bool {
	if !c.InBounds() {
		return false
	}
	var visited [NumNodes]bool
	queue := make([]int, 0, NumCells)
	queue = append(queue, c.Index())
	visited[c.Index()] = true

	goal := s.Row()
	for len(queue) > 0 {
		current := cellAt(queue[0])
		queue = queue[1:]

		if current.Y == goal {
			return true
		}
		for _, d := range Directions {
			if g.open[current.Index()]&d.bit() == 0 {
				continue
			}
			next := current.Add(d).Index()
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

// WouldDisconnect evaluates the probes on a scratch copy with the edges removed. The receiver is
// never modified.
func (g *Graph) WouldDisconnect(edges []Edge, probes []Probe) bool {
	scratch := *g
	for _, e := range edges {
		scratch.Cut(e.A, e.B)
	}
	for _, p := range probes {
		if !scratch.Connected(p.From, p.To) {
			return true
		}
	}
	return false
}
