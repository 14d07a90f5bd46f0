package game

// directions are the 8 queen rays.
var directions = [8]Coordinate{
	{X: 1}, {X: -1}, {Y: 1}, {Y: -1},
	{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1},
}

// PossibleVectorsFrom walks the 8 queen rays outward from c and returns
// one vector per reachable cell. Each ray stops at the first cell that
// is occupied or off the board, so every returned vector has a free
// endpoint and a free interior by construction.
func PossibleVectorsFrom(b Board, c Coordinate) []Vector {
	var vectors []Vector
	for _, d := range directions {
		next := Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
		for next.Valid() && b[next.Index()] == Free {
			vectors = append(vectors, Vector{From: c, To: next})
			next = Coordinate{X: next.X + d.X, Y: next.Y + d.Y}
		}
	}
	return vectors
}

// PossibleMovesFrom enumerates every legal (move, shoot) pair for the
// piece at c. For each reachable destination the shot back onto the
// vacated origin is added explicitly: the shot rays run on the
// original board, where c is still occupied and therefore never
// discovered by the walk from the destination.
func PossibleMovesFrom(b Board, c Coordinate) []Move {
	var moves []Move
	for _, ride := range PossibleVectorsFrom(b, c) {
		moves = append(moves, Move{From: c, To: ride.To, Shoot: c})
		for _, shot := range PossibleVectorsFrom(b, ride.To) {
			moves = append(moves, Move{From: c, To: ride.To, Shoot: shot.To})
		}
	}
	return moves
}

// PossibleMoves enumerates every legal move for color. Every emitted
// move already satisfies ValidateMove. The order is stable for a given
// board: pieces in board index order, destinations and shots in ray
// order.
func PossibleMoves(b Board, color Color) []Move {
	var moves []Move
	for _, c := range b.Pieces(color) {
		moves = append(moves, PossibleMovesFrom(b, c)...)
	}
	return moves
}

// PlayMove validates m for color and, on success, returns the board
// with the piece moved and the arrow placed. On failure the input
// board is returned unchanged alongside the validation error.
func PlayMove(b Board, m Move, color Color) (Board, error) {
	if err := ValidateMove(b, m, color); err != nil {
		return b, err
	}
	b[m.From.Index()] = Free
	b[m.To.Index()] = PieceTile(color)
	b[m.Shoot.Index()] = Arrow
	return b, nil
}
