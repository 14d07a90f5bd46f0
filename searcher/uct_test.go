package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"amazons/game"
)

func place(t *testing.T, placements map[game.Coordinate]game.Tile) game.Board {
	t.Helper()
	var b game.Board
	var err error
	for c, tile := range placements {
		b, err = b.Set(c, tile)
		require.NoError(t, err)
	}
	return b
}

// cornerBoard pens the black piece into a 2x2 corner: exactly nine
// legal black moves, small enough to reason about by hand.
func cornerBoard(t *testing.T) game.Board {
	t.Helper()
	return place(t, map[game.Coordinate]game.Tile{
		game.C(0, 0): game.BlackPiece,
		game.C(2, 0): game.Arrow,
		game.C(2, 1): game.Arrow,
		game.C(2, 2): game.Arrow,
		game.C(1, 2): game.Arrow,
		game.C(0, 2): game.Arrow,
		game.C(9, 9): game.WhitePiece,
	})
}

// sealedBoard walls in the given color's only piece.
func sealedBoard(t *testing.T, color game.Color) game.Board {
	t.Helper()
	sealed, roaming := game.C(0, 0), game.C(5, 5)
	return place(t, map[game.Coordinate]game.Tile{
		sealed:       game.PieceTile(color),
		game.C(1, 0): game.Arrow,
		game.C(0, 1): game.Arrow,
		game.C(1, 1): game.Arrow,
		roaming:      game.PieceTile(color.Other()),
	})
}

func TestChooseMove(t *testing.T) {
	t.Run("returns a generated move from the start position", func(t *testing.T) {
		board := game.InitialBoard()
		move, _, err := ChooseMove(board, game.Black, 1, 1)
		require.NoError(t, err)
		require.Contains(t, game.PossibleMoves(board, game.Black), move)
	})

	t.Run("is deterministic for fixed inputs", func(t *testing.T) {
		board := game.InitialBoard()
		move1, score1, err := ChooseMove(board, game.Black, 4, 2)
		require.NoError(t, err)
		move2, score2, err := ChooseMove(board, game.Black, 4, 2)
		require.NoError(t, err)

		require.Equal(t, move1, move2)
		require.Equal(t, score1, score2)
	})

	t.Run("fails with no available moves when sealed in", func(t *testing.T) {
		board := sealedBoard(t, game.Black)
		_, _, err := ChooseMove(board, game.Black, 8, 2)
		require.ErrorIs(t, err, game.ErrNoAvailableMoves)
	})

	t.Run("scores a stuck opponent as a huge win", func(t *testing.T) {
		board := sealedBoard(t, game.White)
		move, score, err := ChooseMove(board, game.Black, 2, 2)
		require.NoError(t, err)
		require.Contains(t, game.PossibleMoves(board, game.Black), move)
		// The second pass expands a black move and finds white without
		// a reply, which backs up the signed loss sentinel.
		require.Greater(t, score, 100_000)
	})
}

func TestFindBestMoveMetrics(t *testing.T) {
	u := NewUCT(WithBudget(3), WithMaxDepth(2), WithMetrics())
	_, _, metric, err := u.FindBestMove(cornerBoard(t), game.Black)
	require.NoError(t, err)

	require.Equal(t, 3, metric.Budget)
	require.Equal(t, 2, metric.MaxDepth)
	require.Equal(t, 3, metric.Passes)
	require.NotZero(t, metric.Expansions)
}

func TestExpand(t *testing.T) {
	t.Run("creates one child per legal move and aggregates", func(t *testing.T) {
		board := cornerBoard(t)
		moves := game.PossibleMoves(board, game.Black)
		require.Len(t, moves, 9)

		root := &node{board: board, static: float64(game.Evaluate(board, game.Black))}
		u := NewUCT()
		u.expand(root, game.Black, 0)

		require.Len(t, root.children, len(moves))
		require.Equal(t, len(moves)+1, root.visits)

		sum := root.static
		for i, child := range root.children {
			require.Equal(t, moves[i], child.move, "children keep the generator's order")
			require.Equal(t, 1, child.visits)
			require.Equal(t, child.static, child.value)

			want, err := game.PlayMove(board, moves[i], game.Black)
			require.NoError(t, err)
			require.Equal(t, want, child.board)
			require.Equal(t, float64(game.Evaluate(want, game.Black)), child.value)

			sum += child.value
		}
		require.Equal(t, sum, root.value)
	})

	t.Run("marks a stuck side as a signed terminal", func(t *testing.T) {
		// White to move at depth 1 with no moves: a win for the root.
		board := sealedBoard(t, game.White)
		n := &node{board: board}
		u := NewUCT()
		u.expand(n, game.Black, 1)

		require.True(t, n.leaf())
		require.Equal(t, 1, n.visits)
		require.Equal(t, float64(-game.LossValue), n.value)
	})

	t.Run("marks the stuck root side as a signed loss", func(t *testing.T) {
		board := sealedBoard(t, game.Black)
		n := &node{board: board}
		u := NewUCT()
		u.expand(n, game.Black, 0)

		require.True(t, n.leaf())
		require.Equal(t, float64(game.LossValue), n.value)
	})
}

func TestBestChild(t *testing.T) {
	t.Run("keeps the first maximum on ties", func(t *testing.T) {
		parent := &node{
			visits: 4,
			children: []*node{
				{value: 1, visits: 1},
				{value: 1, visits: 1},
				{value: 1, visits: 1},
			},
		}
		require.Equal(t, 0, bestChild(parent))
	})

	t.Run("prefers a higher average", func(t *testing.T) {
		parent := &node{
			visits: 4,
			children: []*node{
				{value: 1, visits: 1},
				{value: 5, visits: 1},
				{value: 1, visits: 1},
			},
		}
		require.Equal(t, 1, bestChild(parent))
	})

	t.Run("gives rarely visited children an exploration bonus", func(t *testing.T) {
		// Equal averages; the less-visited child carries the larger bonus.
		parent := &node{
			visits: 100,
			children: []*node{
				{value: 50, visits: 50},
				{value: 1, visits: 1},
			},
		}
		require.Equal(t, 1, bestChild(parent))
	})
}

func TestSelectionScore(t *testing.T) {
	parent := &node{visits: 16}
	child := &node{value: 8, visits: 4}
	// 8/4 + sqrt(sqrt(16)/4) = 2 + 1
	require.InDelta(t, 3.0, selectionScore(parent, child), 1e-12)
}

func TestMoverAt(t *testing.T) {
	require.Equal(t, game.Black, moverAt(game.Black, 0))
	require.Equal(t, game.White, moverAt(game.Black, 1))
	require.Equal(t, game.Black, moverAt(game.Black, 2))
	require.Equal(t, game.White, moverAt(game.White, 3))
}

func TestParitySign(t *testing.T) {
	require.Equal(t, 1.0, paritySign(0))
	require.Equal(t, -1.0, paritySign(1))
	require.Equal(t, 1.0, paritySign(2))
}
