package experiments

import (
	"context"
	"fmt"
	"time"

	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/playout"

	"github.com/rs/zerolog/log"
)

const TimeBudget = 100 * time.Millisecond

// ThroughputConfigs give every arm the same time budget with a growing number of goroutines.
func ThroughputConfigs(duration time.Duration, cutoff int) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{}
	for i, goroutines := range []int{1, 2, 4, 8, 16, 32} {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Goroutines: goroutines, Duration: duration, Cutoff: cutoff})
	}
	return configs
}

// RunThroughputExperiment simulates the opening position runs times per config and stores the
// configs and playout records under root. It returns the directory written to.
func RunThroughputExperiment(ctx context.Context, root string, configs []metrics.AgentConfig, runs int, seed uint64) (string, error) {
	state := game.NewInitialState()
	records := []metrics.PlayoutRecord{}

	log.Info().Msg("starting throughput experiment...")

	for ci, config := range configs {
		log.Info().Msgf("starting config %d of %d: %+v...", ci+1, len(configs), config)

		simulator := createSimulator(config, seed)
		for run := 1; run <= runs; run++ {
			if err := ctx.Err(); err != nil {
				return "", err
			}
			result, metric := simulator.Simulate(ctx, state, state.Turn())
			records = append(records, metrics.PlayoutRecord{
				Agent:        config.ID,
				Run:          run,
				Wins:         result.Wins,
				Losses:       result.Losses,
				WinRate:      result.WinRate(),
				SearchMetric: metric,
			})
			log.Info().Msgf("config %d run %d: %d episodes in %s", config.ID, run, metric.Episodes, metric.Duration)
		}
	}

	log.Info().Msg("completed throughput experiment")

	writer, err := metrics.NewWriter(root, "throughput")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WritePlayoutRecords(records); err != nil {
		return "", fmt.Errorf("failed to write playout records: %w", err)
	}
	log.Info().Msg("stored playout records")

	return writer.Dir(), nil
}

func createSimulator(config metrics.AgentConfig, seed uint64) *playout.Simulator {
	options := []playout.Option{playout.WithSeed(seed)}

	if config.Episodes > 0 {
		options = append(options, playout.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, playout.WithDuration(config.Duration))
	}
	if config.Cutoff > 0 {
		options = append(options, playout.WithCutoff(config.Cutoff))
	}

	options = append(options, playout.WithMetrics())
	return playout.NewSimulator(config.Goroutines, options...)
}
