package game

import "fmt"

// Kind enumerates the closed set of action variants.
type Kind uint8

const (
	Step Kind = iota
	JumpStraight
	JumpSide
	PlaceWall
)

func (k Kind) String() string {
	switch k {
	case Step:
		return "Move"
	case JumpStraight:
		return "JumpStraight"
	case JumpSide:
		return "JumpSide"
	case PlaceWall:
		return "Wall"
	default:
		return "Unknown"
	}
}

// Action is a tagged variant: Dir is used by the three movement kinds, Side only by JumpSide and
// Wall only by PlaceWall. Actions are comparable and usable as map keys.
type Action struct {
	Kind Kind
	Dir  Direction
	Side Direction
	Wall Wall
}

func NewStep(d Direction) Action {
	return Action{Kind: Step, Dir: d}
}

func NewJumpStraight(d Direction) Action {
	return Action{Kind: JumpStraight, Dir: d}
}

func NewJumpSide(d, side Direction) Action {
	return Action{Kind: JumpSide, Dir: d, Side: side}
}

func NewPlaceWall(anchor Cell, o Orientation) Action {
	return Action{Kind: PlaceWall, Wall: Wall{Anchor: anchor, Orientation: o}}
}

// IsMove reports whether the action relocates the mover's pawn.
func (a Action) IsMove() bool {
	return a.Kind != PlaceWall
}

// Destination is where a movement action takes a pawn standing on from.
func (a Action) Destination(from Cell) Cell {
	switch a.Kind {
	case Step:
		return from.Add(a.Dir)
	case JumpStraight:
		return from.Add(a.Dir).Add(a.Dir)
	case JumpSide:
		return from.Add(a.Dir).Add(a.Side)
	default:
		return from
	}
}

// IsApplicable decides whether the player with index mover may take the action in s.
func (a Action) IsApplicable(mover int, s *GameState) bool {
	switch a.Kind {
	case Step:
		return a.stepApplicable(mover, s)
	case JumpStraight:
		return a.jumpStraightApplicable(mover, s)
	case JumpSide:
		return a.jumpSideApplicable(mover, s)
	case PlaceWall:
		return a.placeWallApplicable(mover, s)
	default:
		return false
	}
}

func (a Action) stepApplicable(mover int, s *GameState) bool {
	from := s.players[mover].Cell
	to := from.Add(a.Dir)
	if !to.InBounds() {
		return false
	}
	if !s.graph.Open(from, a.Dir) {
		return false
	}
	return s.free(to)
}

func (a Action) jumpStraightApplicable(mover int, s *GameState) bool {
	from := s.players[mover].Cell
	midway := from.Add(a.Dir)
	to := midway.Add(a.Dir)
	if !to.InBounds() {
		return false
	}
	if s.players[opponent(mover)].Cell != midway {
		return false
	}
	return s.graph.Open(from, a.Dir) && s.graph.Open(midway, a.Dir)
}

// jumpSideApplicable requires the straight continuation behind the opponent to be walled off.
func (a Action) jumpSideApplicable(mover int, s *GameState) bool {
	if !a.Dir.Perpendicular(a.Side) {
		return false
	}
	from := s.players[mover].Cell
	midway := from.Add(a.Dir)
	to := midway.Add(a.Side)
	if !to.InBounds() {
		return false
	}
	if s.players[opponent(mover)].Cell != midway {
		return false
	}
	if !s.graph.Open(from, a.Dir) {
		return false
	}
	if !s.graph.Blocked(midway, a.Dir) {
		return false
	}
	return s.graph.Open(midway, a.Side)
}

func (a Action) placeWallApplicable(mover int, s *GameState) bool {
	if s.players[mover].WallsLeft < 1 {
		return false
	}
	if !s.grid.fits(a.Wall) {
		return false
	}
	edges := a.Wall.Edges()
	probes := []Probe{
		{From: s.players[0].Cell, To: GoalSentinel(0)},
		{From: s.players[1].Cell, To: GoalSentinel(1)},
	}
	return !s.graph.WouldDisconnect(edges[:], probes)
}

// apply writes the action's effect into next, a fresh copy owned by the caller.
func (a Action) apply(mover int, next *GameState) {
	switch a.Kind {
	case Step, JumpStraight, JumpSide:
		next.players[mover].Cell = a.Destination(next.players[mover].Cell)
	case PlaceWall:
		next.players[mover].WallsLeft--
		next.walls = append(next.walls, a.Wall)
		next.grid.set(a.Wall)
		for _, e := range a.Wall.Edges() {
			next.graph.Cut(e.A, e.B)
		}
	default:
		panic(fmt.Sprintf("unknown action kind %d", a.Kind))
	}
}

func (a Action) String() string {
	switch a.Kind {
	case Step, JumpStraight:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Dir)
	case JumpSide:
		return fmt.Sprintf("%s(%s, %s)", a.Kind, a.Dir, a.Side)
	case PlaceWall:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Wall)
	default:
		return a.Kind.String()
	}
}

func opponent(player int) int {
	return 1 - player
}
