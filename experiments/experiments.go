package experiments

import (
	"context"
	"fmt"

	"quoridor/engine"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/player"

	"github.com/rs/zerolog/log"
)

// Agent ids used in game records.
const (
	RandomAgent    = 1
	HeuristicAgent = 2
)

// RunMatchExperiment plays games between the random and the greedy heuristic player, alternating
// seats and the starting player, and stores the game records under root.
func RunMatchExperiment(ctx context.Context, root string, games, maxTurns int, seed uint64) (string, error) {
	records := []metrics.GameRecord{}

	log.Info().Msgf("starting match experiment with %d games...", games)

	for i := 0; i < games; i++ {
		log.Info().Msgf("starting game %d of %d...", i+1, games)

		agent1, agent2 := RandomAgent, HeuristicAgent
		if i%2 == 1 {
			agent1, agent2 = agent2, agent1
		}
		gameMetric, err := runGame(ctx, [2]int{agent1, agent2}, i%2, maxTurns, seed+uint64(i))
		if err != nil {
			return "", fmt.Errorf("game %d: %w", i+1, err)
		}
		records = append(records, metrics.GameRecord{
			ID:         i + 1,
			Agent1:     agent1,
			Agent2:     agent2,
			GameMetric: gameMetric,
		})

		log.Info().Msgf("completed game %d with winner: %d", i+1, gameMetric.Winner)
	}

	log.Info().Msg("completed match experiment")

	writer, err := metrics.NewWriter(root, "matches")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteGameRecords(records); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns its metrics
func runGame(ctx context.Context, agents [2]int, starting, maxTurns int, seed uint64) (metrics.GameMetric, error) {
	state, err := game.NewGameState(game.WithTurn(starting))
	if err != nil {
		return metrics.GameMetric{}, err
	}
	e := engine.New(
		[2]engine.Agent{createAgent(agents[0], seed), createAgent(agents[1], seed+1)},
		engine.WithState(state),
		engine.WithMaxTurns(maxTurns),
	)

	outcome, err := e.Run(ctx)
	if err != nil {
		return metrics.GameMetric{}, err
	}
	return metrics.GameMetric{
		StartingPlayer: outcome.StartingPlayer,
		Winner:         outcome.Winner,
		StartTime:      outcome.StartTime,
		EndTime:        outcome.EndTime,
		Duration:       outcome.Duration,
		TotalMoves:     outcome.Turns,
	}, nil
}

func createAgent(id int, seed uint64) engine.Agent {
	switch id {
	case HeuristicAgent:
		return player.NewHeuristic(0.1, seed)
	default:
		return player.NewRandom(seed)
	}
}
