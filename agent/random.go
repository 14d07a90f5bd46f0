package agent

import (
	"golang.org/x/exp/rand"

	"amazons/game"
	"amazons/searcher/metrics"
)

// Random picks uniformly among the legal moves. It exists as a smoke
// test opponent: any sequence of its moves exercises the generator and
// the engine without a search in the loop.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (a *Random) FindMove(board game.Board, color game.Color) (game.Move, int, metrics.SearchMetric, error) {
	moves := game.PossibleMoves(board, color)
	if len(moves) == 0 {
		return game.Move{}, 0, metrics.SearchMetric{}, game.ErrNoAvailableMoves
	}
	return moves[a.rng.Intn(len(moves))], 0, metrics.SearchMetric{}, nil
}
