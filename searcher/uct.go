package searcher

import (
	"math"
	"sync"

	"github.com/rs/zerolog/log"

	"amazons/game"
	"amazons/searcher/metrics"
)

type Option func(u *UCT)

// Default search parameters.
const (
	DefaultBudget   = 100
	DefaultMaxDepth = 4
)

// UCT is a budget-driven best-first searcher. Each exploration pass
// descends from the root along the highest-scoring children, expands
// one leaf into its full set of successors in parallel, and recomputes
// the aggregates on the way back up. After the budget is spent the
// root child with the best average value wins.
type UCT struct {
	budget    int
	maxDepth  int
	collector metrics.Collector
}

func WithBudget(budget int) Option {
	return func(u *UCT) {
		if budget > 0 {
			u.budget = budget
		}
	}
}

func WithMaxDepth(depth int) Option {
	return func(u *UCT) {
		if depth > 0 {
			u.maxDepth = depth
		}
	}
}

func WithMetrics() Option {
	return func(u *UCT) {
		u.collector = metrics.NewCollector()
	}
}

func NewUCT(options ...Option) *UCT {
	u := &UCT{ // Default values
		budget:    DefaultBudget,
		maxDepth:  DefaultMaxDepth,
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(u)
	}
	return u
}

// ChooseMove is the one-shot form of the searcher: it runs budget
// exploration passes limited to maxDepth and returns the chosen move
// with its rounded average score. It fails only with
// game.ErrNoAvailableMoves, when color cannot move at all.
func ChooseMove(board game.Board, color game.Color, budget, maxDepth int) (game.Move, int, error) {
	u := NewUCT(WithBudget(budget), WithMaxDepth(maxDepth))
	move, score, _, err := u.FindBestMove(board, color)
	return move, score, err
}

// FindBestMove runs the configured number of exploration passes from
// board with color to move and picks the root child with the best
// average value. The search is deterministic: repeated calls with the
// same inputs return the same move and score.
func (u *UCT) FindBestMove(board game.Board, color game.Color) (game.Move, int, metrics.SearchMetric, error) {
	u.collector.Start(u.budget, u.maxDepth)

	root := &node{
		board:  board,
		static: float64(game.Evaluate(board, color)),
	}
	for pass := 0; pass < u.budget; pass++ {
		u.explore(root, color, 0)
		u.collector.AddPass()
	}
	metric := u.collector.Complete()

	if len(root.children) == 0 {
		return game.Move{}, 0, metric, game.ErrNoAvailableMoves
	}

	best := root.children[0]
	for _, child := range root.children[1:] {
		if child.average() > best.average() {
			best = child
		}
	}
	return best.move, int(math.Round(best.average())), metric, nil
}

// explore runs one pass: descend along the best-scoring children until
// a leaf (or the depth limit), expand the leaf, and refresh the
// aggregates while unwinding.
func (u *UCT) explore(n *node, color game.Color, depth int) {
	if n.leaf() {
		u.expand(n, color, depth)
		return
	}
	if depth >= u.maxDepth {
		return
	}

	best := bestChild(n)
	u.explore(n.children[best], color, depth+1)
	n.aggregate()
}

// expand turns a leaf into an interior node with one child per legal
// move of the side to move at this depth. A leaf with no legal moves
// is a confirmed loss for the stuck side and stays childless.
func (u *UCT) expand(n *node, color game.Color, depth int) {
	mover := moverAt(color, depth)
	moves := game.PossibleMoves(n.board, mover)
	if len(moves) == 0 {
		// A stuck opponent (odd depth) reads as a win for the root.
		n.value = game.LossValue * paritySign(depth)
		n.visits = 1
		u.collector.AddTerminal()
		return
	}

	n.children = expandChildren(n.board, moves, mover, color, depth)
	n.aggregate()
	u.collector.AddExpansion(len(n.children))
}

// expandChildren fans out one goroutine per candidate move. Each unit
// owns its own board copy and produces an independent child; the only
// coordination is the join barrier before aggregation, so no locks are
// needed.
func expandChildren(board game.Board, moves []game.Move, mover, color game.Color, depth int) []*node {
	results := make([]*node, len(moves))
	var wg sync.WaitGroup
	for i, move := range moves {
		i, move := i, move
		wg.Add(1)
		go func() {
			defer wg.Done()

			child, err := game.PlayMove(board, move, mover)
			if err != nil {
				// The generator only emits legal moves; landing here
				// means the generator and validator disagree.
				log.Error().Err(err).Stringer("move", move).Msg("generated move failed validation")
				return
			}
			value := float64(game.Evaluate(child, color)) * paritySign(depth)
			results[i] = &node{
				board:  child,
				move:   move,
				value:  value,
				static: value,
				visits: 1,
			}
		}()
	}
	wg.Wait()

	children := make([]*node, 0, len(moves))
	for _, child := range results {
		if child != nil {
			children = append(children, child)
		}
	}
	return children
}

// bestChild picks the child with the highest selection score, keeping
// the first maximum so ties never depend on enumeration subtleties.
func bestChild(n *node) int {
	best := 0
	bestScore := math.Inf(-1)
	for i, child := range n.children {
		if score := selectionScore(n, child); score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}

// selectionScore blends a child's average value with an exploration
// bonus that grows with the parent's visits and shrinks with the
// child's own.
func selectionScore(parent, child *node) float64 {
	return child.value/float64(child.visits) +
		math.Sqrt(math.Sqrt(float64(parent.visits))/float64(child.visits))
}

// moverAt resolves the side to move at a depth: even depths move for
// the root color, odd depths for the opponent.
func moverAt(color game.Color, depth int) game.Color {
	if depth%2 == 0 {
		return color
	}
	return color.Other()
}

// paritySign flips values produced at odd depths: the opponent's gain
// is the root's loss.
func paritySign(depth int) float64 {
	if depth%2 == 0 {
		return 1
	}
	return -1
}
