package game

// Board maps all 100 cells to tiles. It is a plain value type: Set and
// PlayMove return fresh boards and never touch their input, so older
// snapshots stay valid while sibling search branches still hold them.
type Board [BoardSize * BoardSize]Tile

// Get resolves the tile at c.
func (b Board) Get(c Coordinate) (Tile, error) {
	if err := ValidateCoordinate(c); err != nil {
		return Free, err
	}
	return b[c.Index()], nil
}

// Set returns a board differing from b only at c.
func (b Board) Set(c Coordinate, t Tile) (Board, error) {
	if err := ValidateCoordinate(c); err != nil {
		return b, err
	}
	b[c.Index()] = t
	return b, nil
}

// Pieces returns the coordinates of every piece of color, in board
// index order.
func (b Board) Pieces(color Color) []Coordinate {
	piece := PieceTile(color)
	var coords []Coordinate
	for i, t := range b {
		if t == piece {
			coords = append(coords, CoordinateFromIndex(i))
		}
	}
	return coords
}

// Count tallies the cells holding t.
func (b Board) Count(t Tile) int {
	n := 0
	for _, tile := range b {
		if tile == t {
			n++
		}
	}
	return n
}

// StartingSquares returns the four squares a side's pieces occupy at
// the start of the game.
func StartingSquares(color Color) [4]Coordinate {
	if color == Black {
		return [4]Coordinate{{X: 3, Y: 0}, {X: 6, Y: 0}, {X: 0, Y: 3}, {X: 9, Y: 3}}
	}
	return [4]Coordinate{{X: 0, Y: 6}, {X: 9, Y: 6}, {X: 3, Y: 9}, {X: 6, Y: 9}}
}

// InitialBoard places the four pieces per side on their starting
// squares and leaves the remaining 92 cells free.
func InitialBoard() Board {
	var b Board
	for _, color := range []Color{Black, White} {
		for _, c := range StartingSquares(color) {
			b[c.Index()] = PieceTile(color)
		}
	}
	return b
}
