package agent

import (
	"amazons/game"
	"amazons/searcher/metrics"
)

// Agent picks a move for color on board. It returns the move, the
// agent's score for it (zero when the agent has no notion of score)
// and the metrics behind the decision. It fails with
// game.ErrNoAvailableMoves when color cannot move.
type Agent interface {
	FindMove(board game.Board, color game.Color) (game.Move, int, metrics.SearchMetric, error)
}
