package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quoridor/game"
	"quoridor/meta"

	"github.com/rs/zerolog/log"
)

const MaxTurns = meta.MAX_TURNS

var ErrGameOver = errors.New("game is over - no moves allowed")

// Agent chooses the action for the side to move in state.
type Agent interface {
	FindMove(ctx context.Context, state *game.GameState) (game.Action, error)
}

// Update records one accepted action and the hash of the state it produced.
type Update struct {
	Step   int
	Player int
	Action game.Action
	Hash   game.StateHash
}

type Outcome struct {
	StartingPlayer int
	Winner         int // -1 when the turn cap stopped the match
	Turns          int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

func (o Outcome) Decided() bool {
	return o.Winner >= 0
}

type Option func(e *Engine)

// WithMaxTurns caps the number of actions Run plays. The cap is a match setting, the rules have no
// draw.
func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithState starts the match from state instead of the canonical setup.
func WithState(state *game.GameState) Option {
	return func(e *Engine) {
		if state != nil {
			e.state = state
		}
	}
}

// WithObserver is called after every accepted action with the new state.
func WithObserver(observe func(Update, *game.GameState)) Option {
	return func(e *Engine) {
		e.observe = observe
	}
}

// Engine owns the authoritative state of a match and only lets legal actions through.
type Engine struct {
	state    *game.GameState
	agents   [2]Agent
	maxTurns int
	observe  func(Update, *game.GameState)
	updates  []Update
}

func New(agents [2]Agent, options ...Option) *Engine {
	e := &Engine{ // Default values
		state:    game.NewInitialState(),
		agents:   agents,
		maxTurns: MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) State() *game.GameState {
	return e.state
}

// Updates returns the accepted actions in order.
func (e *Engine) Updates() []Update {
	updates := make([]Update, len(e.updates))
	copy(updates, e.updates)
	return updates
}

// Play applies action for the side to move.
func (e *Engine) Play(action game.Action) error {
	if e.state.IsTerminal() {
		return ErrGameOver
	}

	next, err := e.state.Result(action)
	if err != nil {
		return err
	}

	u := Update{
		Step:   len(e.updates) + 1,
		Player: e.state.Turn(),
		Action: action,
		Hash:   next.Hash(),
	}
	e.updates = append(e.updates, u)
	e.state = next

	if e.observe != nil {
		e.observe(u, next)
	}
	return nil
}

// Run asks the agents for actions until the game is decided, the turn cap is hit or ctx is done.
func (e *Engine) Run(ctx context.Context) (Outcome, error) {
	outcome := Outcome{
		StartingPlayer: e.state.Turn(),
		Winner:         -1,
		StartTime:      time.Now(),
	}
	finish := func() Outcome {
		outcome.EndTime = time.Now()
		outcome.Duration = outcome.EndTime.Sub(outcome.StartTime)
		outcome.Turns = len(e.updates)
		if winner, ok := e.state.Winner(); ok {
			outcome.Winner = winner
		}
		return outcome
	}

	log.Info().Msgf("player %s is starting", e.state.Player(e.state.Turn()).Label)

	for turns := 0; !e.state.IsTerminal() && turns < e.maxTurns; turns++ {
		if err := ctx.Err(); err != nil {
			return finish(), err
		}

		player := e.state.Turn()
		action, err := e.agents[player].FindMove(ctx, e.state)
		if err != nil {
			return finish(), fmt.Errorf("player %d failed to move: %w", player, err)
		}
		if err := e.Play(action); err != nil {
			return finish(), fmt.Errorf("player %d: %w", player, err)
		}
		log.Debug().Msgf("turn %d: player %d played %s", turns+1, player, action)
	}

	outcome = finish()
	if outcome.Decided() {
		log.Info().Msgf("game ended after %d turns with winner: player %d", outcome.Turns, outcome.Winner)
	} else {
		log.Info().Msgf("stopped after %d turns (no winner yet)", outcome.Turns)
	}
	return outcome, nil
}
