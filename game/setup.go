package game

import "fmt"

// DefaultWalls is the starting wall allowance of each player.
const DefaultWalls = 10

type setup struct {
	positions [2]Cell
	wallsLeft [2]int
	labels    [2]string
	walls     []Wall
	turn      int
}

type Option func(s *setup)

// WithPositions places the pawns of player 0 and player 1.
func WithPositions(p0, p1 Cell) Option {
	return func(s *setup) {
		s.positions = [2]Cell{p0, p1}
	}
}

// WithWallsLeft sets the remaining allowance of each player.
func WithWallsLeft(p0, p1 int) Option {
	return func(s *setup) {
		s.wallsLeft = [2]int{p0, p1}
	}
}

// WithPlacedWalls starts the game with walls already on the board, in the given order.
func WithPlacedWalls(walls ...Wall) Option {
	return func(s *setup) {
		s.walls = append(s.walls, walls...)
	}
}

// WithTurn sets the side to move.
func WithTurn(player int) Option {
	return func(s *setup) {
		s.turn = player
	}
}

func WithLabels(p0, p1 string) Option {
	return func(s *setup) {
		s.labels = [2]string{p0, p1}
	}
}

// NewGameState builds a root state, starting from the canonical layout and applying options.
// Inconsistent layouts are rejected with ErrInvalidSetup.
func NewGameState(options ...Option) (*GameState, error) {
	s := &setup{ // Default values
		positions: [2]Cell{{X: BoardSize / 2, Y: 0}, {X: BoardSize / 2, Y: BoardSize - 1}},
		wallsLeft: [2]int{DefaultWalls, DefaultWalls},
		labels:    [2]string{"1", "2"},
	}
	for _, option := range options {
		option(s)
	}

	if s.turn != 0 && s.turn != 1 {
		return nil, fmt.Errorf("%w: turn %d is not a player index", ErrInvalidSetup, s.turn)
	}
	for i, c := range s.positions {
		if !c.InBounds() {
			return nil, fmt.Errorf("%w: player %d at %s is off the board", ErrInvalidSetup, i, c)
		}
		if s.wallsLeft[i] < 0 {
			return nil, fmt.Errorf("%w: player %d has %d walls left", ErrInvalidSetup, i, s.wallsLeft[i])
		}
	}
	if s.positions[0] == s.positions[1] {
		return nil, fmt.Errorf("%w: both pawns at %s", ErrInvalidSetup, s.positions[0])
	}

	gs := &GameState{
		walls: make([]Wall, 0, len(s.walls)),
		turn:  s.turn,
		graph: NewGraph(),
	}
	for i := range gs.players {
		gs.players[i] = Player{
			Index:     i,
			Cell:      s.positions[i],
			WallsLeft: s.wallsLeft[i],
			Label:     s.labels[i],
		}
	}

	for _, w := range s.walls {
		if !gs.grid.fits(w) {
			return nil, fmt.Errorf("%w: wall (%s) overlaps or is off the board", ErrInvalidSetup, w)
		}
		gs.grid.set(w)
		gs.walls = append(gs.walls, w)
		for _, e := range w.Edges() {
			gs.graph.Cut(e.A, e.B)
		}
	}
	for _, p := range gs.players {
		if !gs.graph.Connected(p.Cell, p.Goal()) {
			return nil, fmt.Errorf("%w: player %d is walled off from its goal", ErrInvalidSetup, p.Index)
		}
	}

	return gs, nil
}

// NewInitialState returns the canonical opening position.
func NewInitialState() *GameState {
	gs, err := NewGameState()
	if err != nil {
		panic(fmt.Sprintf("canonical setup rejected: %v", err))
	}
	return gs
}
