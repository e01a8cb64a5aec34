package game

// EvaluateDistance compares both players' shortest remaining paths to produce a score between
// -1 and 1 from the perspective of the side to move. Shorter own path is better.
func EvaluateDistance(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	if winner, over := gs.Winner(); over {
		if winner == gs.turn {
			return 1
		}
		return -1
	}

	current := gs.players[gs.turn]
	other := gs.players[opponent(gs.turn)]
	mine := float64(gs.graph.Distance(current.Cell, current.Goal()))
	theirs := float64(gs.graph.Distance(other.Cell, other.Goal()))

	return normalize(theirs, mine)
}

// Distance is the number of steps from c to the sentinel's goal row ignoring pawns, or -1 when
// unreachable.
func (g *Graph) Distance(c Cell, s Sentinel) int {
	if !c.InBounds() {
		return -1
	}
	var dist [NumCells]int
	for i := range dist {
		dist[i] = -1
	}
	queue := make([]int, 0, NumCells)
	queue = append(queue, c.Index())
	dist[c.Index()] = 0

	goal := s.Row()
	for len(queue) > 0 {
		index := queue[0]
		queue = queue[1:]

		current := cellAt(index)
		if current.Y == goal {
			return dist[index]
		}
		for _, d := range Directions {
			if g.open[index]&d.bit() == 0 {
				continue
			}
			next := current.Add(d).Index()
			if dist[next] < 0 {
				dist[next] = dist[index] + 1
				queue = append(queue, next)
			}
		}
	}
	return -1
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
