package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"golang.org/x/exp/slices"
)

// Player is one side's snapshot.
type Player struct {
	Index     int    // 0 or 1
	Cell      Cell   // Current pawn position
	WallsLeft int    // Walls still available to place
	Label     string // Display label for renderers
}

// Goal is the sentinel this player races towards.
func (p Player) Goal() Sentinel {
	return GoalSentinel(p.Index)
}

func (p Player) AtGoal() bool {
	return p.Cell.Y == p.Goal().Row()
}

// GameState is an immutable board configuration. Every transition returns a new state that owns
// its own copy of the walls and the passage graph.
type GameState struct {
	players   [2]Player
	walls     []Wall // Placement order
	grid      wallGrid
	turn      int // Index of the side to move
	graph     Graph
	parent    *GameState
	action    Action // Action that produced this state
	hasAction bool
	pathCost  int // Depth from the initial state
}

func (s *GameState) Players() [2]Player {
	return s.players
}

func (s *GameState) Player(index int) Player {
	return s.players[index]
}

// Walls returns the placed walls in placement order.
func (s *GameState) Walls() []Wall {
	return slices.Clone(s.walls)
}

func (s *GameState) WallsLeft(player int) int {
	return s.players[player].WallsLeft
}

func (s *GameState) Turn() int {
	return s.turn
}

// Graph returns a copy of the passage graph.
func (s *GameState) Graph() Graph {
	return s.graph
}

func (s *GameState) Parent() *GameState {
	return s.parent
}

// LastAction returns the action that produced this state, if any.
func (s *GameState) LastAction() (Action, bool) {
	return s.action, s.hasAction
}

func (s *GameState) PathCost() int {
	return s.pathCost
}

// WallAt returns the orientation of the wall anchored at anchor, if any.
func (s *GameState) WallAt(anchor Cell) (Orientation, bool) {
	return s.grid.at(anchor)
}

func (s *GameState) free(c Cell) bool {
	return s.players[0].Cell != c && s.players[1].Cell != c
}

// IsApplicable checks the action for the side to move.
func (s *GameState) IsApplicable(a Action) bool {
	return a.IsApplicable(s.turn, s)
}

// ApplicableActions filters the catalog for the side to move, preserving catalog order.
func (s *GameState) ApplicableActions() []Action {
	actions := []Action{}
	for _, a := range catalog {
		if a.IsApplicable(s.turn, s) {
			actions = append(actions, a)
		}
	}
	return actions
}

// Result returns the state reached by applying a for the side to move. The receiver is left
// untouched; inapplicable actions are rejected with ErrIllegalAction.
func (s *GameState) Result(a Action) (*GameState, error) {
	if !s.IsApplicable(a) {
		return nil, fmt.Errorf("%w: %s for player %d", ErrIllegalAction, a, s.turn)
	}
	next := s.derive(a)
	a.apply(s.turn, next)
	next.turn = opponent(s.turn)
	return next, nil
}

func (s *GameState) derive(a Action) *GameState {
	walls := make([]Wall, len(s.walls), len(s.walls)+1)
	copy(walls, s.walls)
	return &GameState{
		players:   s.players,
		walls:     walls,
		grid:      s.grid,
		turn:      s.turn,
		graph:     s.graph.Clone(),
		parent:    s,
		action:    a,
		hasAction: true,
		pathCost:  s.pathCost + 1,
	}
}

// IsTerminal reports whether either pawn stands on its goal row.
func (s *GameState) IsTerminal() bool {
	_, ok := s.Winner()
	return ok
}

// Winner returns the index of the player whose pawn reached its goal row.
func (s *GameState) Winner() (int, bool) {
	for _, p := range s.players {
		if p.AtGoal() {
			return p.Index, true
		}
	}
	return -1, false
}

// Equal compares board configurations only: positions, the set of placed walls, turn and wall
// counts. Parent, path cost, the producing action and the placement order are ignored.
func (s *GameState) Equal(other *GameState) bool {
	if other == nil {
		return false
	}
	if s.turn != other.turn {
		return false
	}
	for i := range s.players {
		if s.players[i].Cell != other.players[i].Cell || s.players[i].WallsLeft != other.players[i].WallsLeft {
			return false
		}
	}
	return s.grid == other.grid
}

// Hash is consistent with Equal.
func (s *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(s.turn))

	for _, p := range s.players {
		binary.Write(hasher, binary.LittleEndian, int64(p.Cell.X))
		binary.Write(hasher, binary.LittleEndian, int64(p.Cell.Y))
		binary.Write(hasher, binary.LittleEndian, int64(p.WallsLeft))
	}

	// Walls in anchor order so that placement order does not matter
	for x := range s.grid {
		for y, wall := range s.grid[x] {
			if wall == noWall {
				continue
			}
			binary.Write(hasher, binary.LittleEndian, int64(x))
			binary.Write(hasher, binary.LittleEndian, int64(y))
			binary.Write(hasher, binary.LittleEndian, int64(wall))
		}
	}

	return StateHash(hasher.Sum64())
}

// LegalMoves is ApplicableActions under the State contract.
func (s *GameState) LegalMoves() []Action {
	return s.ApplicableActions()
}

// Play applies a legal action. Callers are expected to pick from LegalMoves; anything else is a
// programming error.
func (s *GameState) Play(a Action) State {
	next, err := s.Result(a)
	if err != nil {
		panic(err)
	}
	return next
}

// History returns the actions leading from the root to s.
func (s *GameState) History() []Action {
	actions := make([]Action, 0, s.pathCost)
	for node := s; node != nil && node.hasAction; node = node.parent {
		actions = append(actions, node.action)
	}
	slices.Reverse(actions)
	return actions
}
