package player

import (
	"context"
	"errors"

	"quoridor/game"

	"golang.org/x/exp/rand"
)

var ErrNoActions = errors.New("no applicable actions")

// Random picks uniformly among the applicable actions of the side to move.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random player. Equal seeds replay equal games against the same opponent.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(ctx context.Context, state *game.GameState) (game.Action, error) {
	if err := ctx.Err(); err != nil {
		return game.Action{}, err
	}
	actions := state.ApplicableActions()
	if len(actions) == 0 {
		return game.Action{}, ErrNoActions
	}
	return actions[r.rng.Intn(len(actions))], nil
}
