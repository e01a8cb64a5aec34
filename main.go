package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"quoridor/engine"
	"quoridor/experiments"
	"quoridor/game"
	"quoridor/meta"
	"quoridor/player"
	"quoridor/playout"
	"quoridor/render"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := meta.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	mode := flag.String("mode", "play", "One of play, simulate, experiment")
	human := flag.Int("human", 0, "Seat of the console player in play mode, -1 for none")
	opponent := flag.String("opponent", "random", "Computer player in play mode: random or heuristic")
	walls := flag.Int("walls", config.Walls, "Walls per player")
	goroutines := flag.Int("goroutines", config.Goroutines, "Number of goroutines for parallel playouts")
	episodes := flag.Int("episodes", config.Episodes, "Number of playouts per simulation")
	duration := flag.Duration("duration", config.Duration, "Duration of playouts per simulation, overrides episodes")
	cutoff := flag.Int("cutoff", config.Cutoff, "Playout depth after which a playout is undecided")
	maxTurns := flag.Int("max-turns", config.MaxTurns, "Turn cap for a match")
	seed := flag.Uint64("seed", config.Seed, "Random seed")
	games := flag.Int("games", 10, "Games in the match experiment")
	output := flag.String("output", config.OutputDir, "Experiment output directory")
	level := flag.String("log-level", config.LogLevel.String(), "Log level")
	flag.Parse()

	logLevel, err := zerolog.ParseLevel(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(logLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	state, err := game.NewGameState(game.WithWallsLeft(*walls, *walls))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid setup")
	}

	switch *mode {
	case "play":
		err = play(ctx, state, *human, *opponent, *maxTurns, *seed)
	case "simulate":
		options := []playout.Option{playout.WithCutoff(*cutoff), playout.WithSeed(*seed), playout.WithMetrics()}
		if *duration > 0 {
			options = append(options, playout.WithDuration(*duration))
		} else {
			options = append(options, playout.WithEpisodes(*episodes))
		}
		result, metric := playout.NewSimulator(*goroutines, options...).Simulate(ctx, state, state.Turn())
		log.Info().Msgf("%d episodes in %s: %d wins, %d losses, %d undecided",
			metric.Episodes, metric.Duration, result.Wins, result.Losses, result.Undecided)
		fmt.Printf("win rate for player %d: %.4f\n", result.Player+1, result.WinRate())
	case "experiment":
		budget := *duration
		if budget <= 0 {
			budget = experiments.TimeBudget
		}
		var dir string
		dir, err = experiments.RunThroughputExperiment(ctx, *output, experiments.ThroughputConfigs(budget, *cutoff), 3, *seed)
		if err == nil {
			log.Info().Msgf("throughput records written to %s", dir)
			dir, err = experiments.RunMatchExperiment(ctx, *output, *games, *maxTurns, *seed)
		}
		if err == nil {
			log.Info().Msgf("match records written to %s", dir)
		}
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func play(ctx context.Context, state *game.GameState, human int, opponent string, maxTurns int, seed uint64) error {
	var agents [2]engine.Agent
	for i := range agents {
		switch {
		case i == human:
			agents[i] = player.NewConsole(os.Stdin, os.Stdout)
		case opponent == "heuristic":
			agents[i] = player.NewHeuristic(0.1, seed+uint64(i))
		default:
			agents[i] = player.NewRandom(seed + uint64(i))
		}
	}

	options := []engine.Option{engine.WithState(state), engine.WithMaxTurns(maxTurns)}
	if human < 0 {
		options = append(options, engine.WithObserver(func(u engine.Update, s *game.GameState) {
			fmt.Printf("player %d: %s\n", u.Player+1, u.Action)
			render.Write(os.Stdout, s)
		}))
	}
	e := engine.New(agents, options...)

	outcome, err := e.Run(ctx)
	if err != nil {
		return err
	}
	render.Write(os.Stdout, e.State())
	if outcome.Decided() {
		fmt.Printf("player %d wins after %d turns\n", outcome.Winner+1, outcome.Turns)
	} else {
		fmt.Printf("no winner after %d turns\n", outcome.Turns)
	}
	return nil
}
