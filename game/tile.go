package game

// Color identifies one of the two sides.
type Color int8

const (
	Black Color = iota
	White
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Tile is the content of a single board cell. Every cell holds exactly
// one of these states.
type Tile int8

const (
	Free Tile = iota
	Arrow
	BlackPiece
	WhitePiece
)

// PieceTile returns the piece tile owned by color.
func PieceTile(c Color) Tile {
	if c == Black {
		return BlackPiece
	}
	return WhitePiece
}

// IsPiece reports whether the tile holds a piece of either color.
func (t Tile) IsPiece() bool {
	return t == BlackPiece || t == WhitePiece
}

// PieceColor returns the owning color of a piece tile.
func (t Tile) PieceColor() (Color, bool) {
	switch t {
	case BlackPiece:
		return Black, true
	case WhitePiece:
		return White, true
	default:
		return Black, false
	}
}

func (t Tile) String() string {
	switch t {
	case Free:
		return "free"
	case Arrow:
		return "arrow"
	case BlackPiece:
		return "black piece"
	case WhitePiece:
		return "white piece"
	default:
		return "unknown"
	}
}
