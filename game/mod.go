package game

type StateHash uint64

// State is the contract playouts and match drivers rely on. Implementations are immutable:
// Play always returns a new state.
type State interface {
	Turn() int
	LegalMoves() []Action
	Play(Action) State
	Hash() StateHash
	Winner() (int, bool)
}

// Evaluate scores a state between -1 and 1 from the perspective of the side to move.
type Evaluate func(State) float64
