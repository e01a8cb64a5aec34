package player

import (
	"context"
	"math"

	"quoridor/game"

	"golang.org/x/exp/rand"
)

// Heuristic scores every applicable action with the shortest-path evaluation of the resulting
// state and samples from the softmax of those scores. A zero temperature always plays the best
// scoring action.
type Heuristic struct {
	temperature float64
	rng         *rand.Rand
}

func NewHeuristic(temperature float64, seed uint64) *Heuristic {
	return &Heuristic{
		temperature: math.Max(temperature, 0),
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (h *Heuristic) FindMove(ctx context.Context, state *game.GameState) (game.Action, error) {
	if err := ctx.Err(); err != nil {
		return game.Action{}, err
	}
	actions := state.ApplicableActions()
	if len(actions) == 0 {
		return game.Action{}, ErrNoActions
	}

	scores := make([]float64, len(actions))
	for i, a := range actions {
		// The evaluation is from the side to move in the next state, i.e. the opponent
		scores[i] = -game.EvaluateDistance(state.Play(a))
	}

	if h.temperature == 0 {
		return actions[argmax(scores)], nil
	}
	return actions[sample(adjustTemperature(scores, h.temperature), h.rng.Float64())], nil
}

func adjustTemperature(scores []float64, temperature float64) []float64 {
	best := scores[argmax(scores)]
	sum := 0.0
	policy := make([]float64, len(scores))
	for i, score := range scores {
		policy[i] = math.Exp((score - best) / temperature)
		sum += policy[i]
	}
	// Normalize
	for i := range policy {
		policy[i] /= sum
	}
	return policy
}

func sample(policy []float64, sampled float64) int {
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if sampled < cumulative {
			return i
		}
	}
	return len(policy) - 1 // Fallback in case of rounding errors
}

func argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}
