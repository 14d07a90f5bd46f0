package agent

import (
	"amazons/game"
	"amazons/searcher"
	"amazons/searcher/metrics"
)

// Search plays the move chosen by a UCT search.
type Search struct {
	uct *searcher.UCT
}

func NewSearch(options ...searcher.Option) *Search {
	return &Search{uct: searcher.NewUCT(options...)}
}

func (a *Search) FindMove(board game.Board, color game.Color) (game.Move, int, metrics.SearchMetric, error) {
	return a.uct.FindBestMove(board, color)
}
