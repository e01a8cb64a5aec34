package playout

import (
	"context"
	"sync"
	"time"

	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Rejection sampling attempts before falling back to scanning the whole catalog.
const maxDraws = 32

type Option func(s *Simulator)

// Simulator estimates how often a player wins from a position when both sides play uniformly at
// random. Playouts are independent, so workers share nothing but the read-only root state.
type Simulator struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	seed       uint64
	evaluate   game.Evaluate
	metrics    metrics.Collector
	catalog    []game.Action
}

// Result aggregates the outcomes of all episodes from Player's perspective. Undecided episodes hit
// the cutoff (or ran out of actions) before either pawn reached its goal.
type Result struct {
	Player    int
	Episodes  int
	Wins      int
	Losses    int
	Undecided int
	// Sum of the cutoff evaluations mapped to [0, 1]; only collected WithEvaluationFn
	Estimate float64
}

func (r Result) WinRate() float64 {
	if r.Episodes == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Episodes)
}

// Value counts wins as 1 and undecided episodes by their cutoff estimate.
func (r Result) Value() float64 {
	if r.Episodes == 0 {
		return 0
	}
	return (float64(r.Wins) + r.Estimate) / float64(r.Episodes)
}

func (r *Result) merge(other Result) {
	r.Episodes += other.Episodes
	r.Wins += other.Wins
	r.Losses += other.Losses
	r.Undecided += other.Undecided
	r.Estimate += other.Estimate
}

func WithDuration(duration time.Duration) Option {
	return func(s *Simulator) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(s *Simulator) {
		if episodes > 0 {
			s.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(s *Simulator) {
		if depth > 0 {
			s.cutoff = depth
		}
	}
}

// WithSeed fixes the worker sources. Results only replay exactly with a single goroutine and an
// episode budget.
func WithSeed(seed uint64) Option {
	return func(s *Simulator) {
		s.seed = seed
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Simulator) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Simulator) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSimulator(goroutines int, options ...Option) *Simulator {
	s := &Simulator{ // Default values
		goroutines: goroutines,
		cutoff:     meta.WITH_CUTOFF,
		seed:       1,
		metrics:    metrics.NewDummyCollector(),
		catalog:    game.Catalog(),
	}
	for _, option := range options {
		option(s)
	}
	if s.goroutines <= 0 {
		panic("Must use at least one goroutine")
	}
	if s.episodes <= 0 && s.duration <= 0 {
		panic("Must specify playout episodes or duration")
	}
	return s
}

// Simulate runs playouts from state until the episode or time budget is spent or ctx is done.
func (s *Simulator) Simulate(ctx context.Context, state *game.GameState, player int) (Result, metrics.SearchMetric) {
	if player != 0 && player != 1 {
		panic("player must be 0 or 1")
	}

	s.metrics.Start(s.goroutines, s.cutoff)
	var results []Result
	if s.episodes > 0 {
		results = s.iterate(ctx, state, player)
	} else {
		results = s.countdown(ctx, state, player)
	}
	metric := s.metrics.Complete()

	total := Result{Player: player}
	for _, r := range results {
		total.merge(r)
	}
	log.Debug().Msgf("simulated %d episodes for player %d: %d wins, %d losses, %d undecided",
		total.Episodes, player, total.Wins, total.Losses, total.Undecided)
	return total, metric
}

func (s *Simulator) iterate(ctx context.Context, state *game.GameState, player int) []Result {
	task := make(chan any, s.episodes)
	for i := 0; i < s.episodes; i++ {
		task <- nil
	}
	close(task)

	results := make([]Result, s.goroutines)
	var wg sync.WaitGroup
	for i := 0; i < s.goroutines; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			rng := s.source(worker)

			for range task {
				if ctx.Err() != nil {
					return
				}
				s.simulate(state, player, rng, &results[worker])
			}
		}(i)
	}

	wg.Wait()
	return results
}

func (s *Simulator) countdown(ctx context.Context, state *game.GameState, player int) []Result {
	done := make(chan any)

	results := make([]Result, s.goroutines)
	var wg sync.WaitGroup
	for i := 0; i < s.goroutines; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			rng := s.source(worker)

			for {
				select {
				case <-done:
					return
				default:
					s.simulate(state, player, rng, &results[worker])
				}
			}
		}(i)
	}

	select {
	case <-time.After(s.duration):
	case <-ctx.Done():
	}
	close(done)
	wg.Wait()
	return results
}

func (s *Simulator) source(worker int) *rand.Rand {
	return rand.New(rand.NewSource(s.seed + uint64(worker)))
}

func (s *Simulator) simulate(state *game.GameState, player int, rng *rand.Rand, result *Result) {
	final, depth := s.rollout(state, rng)
	result.Episodes++
	s.metrics.AddEpisode()

	winner, ok := final.Winner()
	switch {
	case ok && winner == player:
		result.Wins++
	case ok:
		result.Losses++
	default:
		result.Undecided++
		if s.evaluate != nil {
			score := s.evaluate(final) // From the perspective of the side to move
			if final.Turn() != player {
				score = -score
			}
			result.Estimate += (score + 1) / 2
		}
	}
	if ok {
		s.metrics.AddFullPlayout()
	}
	log.Trace().Msgf("playout ended after %d actions", depth)
}

// rollout plays uniformly random actions until a pawn reaches its goal, the side to move has no
// action or the cutoff depth is reached.
func (s *Simulator) rollout(state *game.GameState, rng *rand.Rand) (*game.GameState, int) {
	depth := 0
	for !state.IsTerminal() && depth < s.cutoff {
		action, ok := s.randomAction(state, rng)
		if !ok {
			break
		}
		state = state.Play(action).(*game.GameState)
		depth++
	}
	return state, depth
}

// randomAction draws uniformly from the applicable actions. Drawing catalog entries until one
// applies keeps the distribution uniform while skipping most applicability checks.
func (s *Simulator) randomAction(state *game.GameState, rng *rand.Rand) (game.Action, bool) {
	for i := 0; i < maxDraws; i++ {
		action := s.catalog[rng.Intn(len(s.catalog))]
		if state.IsApplicable(action) {
			return action, true
		}
	}
	actions := state.ApplicableActions()
	if len(actions) == 0 {
		return game.Action{}, false
	}
	return actions[rng.Intn(len(actions))], true
}
