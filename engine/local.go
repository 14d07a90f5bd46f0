package engine

import (
	"errors"

	"github.com/rs/zerolog/log"

	"amazons/agent"
	"amazons/game"
	"amazons/searcher/metrics"
)

// MaxTurns guards the loop against a broken agent. A real game cannot
// exceed 92 moves: every move converts one free cell into an arrow and
// the initial board has 92 free cells.
const MaxTurns = 100

type Option func(e *Local)

// Local drives a game between two agents on an in-process board,
// alternating turns until the side to move has no legal moves.
type Local struct {
	Board    game.Board
	agents   map[game.Color]agent.Agent
	observer func(turn int, color game.Color, move game.Move, board game.Board)
}

// WithObserver registers a callback invoked after every applied move,
// e.g. to render the board.
func WithObserver(observer func(turn int, color game.Color, move game.Move, board game.Board)) Option {
	return func(e *Local) {
		e.observer = observer
	}
}

func NewLocal(black, white agent.Agent, options ...Option) *Local {
	e := &Local{
		Board: game.InitialBoard(),
		agents: map[game.Color]agent.Agent{
			game.Black: black,
			game.White: white,
		},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until a side cannot move; the other side
// wins. Black moves first. It returns the winner and one record per
// applied move.
func (e *Local) Run() (game.Color, []metrics.MoveRecord, error) {
	var records []metrics.MoveRecord

	color := game.Black
	for turn := 1; turn <= MaxTurns; turn++ {
		move, score, metric, err := e.agents[color].FindMove(e.Board, color)
		if errors.Is(err, game.ErrNoAvailableMoves) {
			winner := color.Other()
			log.Info().Stringer("winner", winner).Int("turns", turn-1).Msg("game over")
			return winner, records, nil
		}
		if err != nil {
			return color.Other(), records, err
		}

		next, err := game.PlayMove(e.Board, move, color)
		if err != nil {
			// An agent returning a move the rules reject is a contract
			// breach, not a game outcome.
			log.Error().Err(err).Stringer("color", color).Stringer("move", move).Msg("agent played an illegal move")
			return color.Other(), records, game.IllegalMoveError{Move: move}
		}
		e.Board = next

		records = append(records, metrics.MoveRecord{
			Turn:         turn,
			Player:       color.String(),
			Score:        score,
			SearchMetric: metric,
		})
		if e.observer != nil {
			e.observer(turn, color, move, e.Board)
		}

		color = color.Other()
	}

	return color.Other(), records, nil
}
