package game

import "fmt"

// BoardSize is the side length of the board. Coordinates are valid in
// [0, BoardSize) on both axes.
const BoardSize = 10

// Coordinate addresses a single cell on the board.
type Coordinate struct {
	X int
	Y int
}

// C is a shorthand constructor for coordinates.
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Index maps the coordinate to its position in the board array. It is
// only meaningful for valid coordinates; CoordinateFromIndex inverts it.
func (c Coordinate) Index() int {
	return c.Y*BoardSize + c.X
}

// CoordinateFromIndex recovers the coordinate stored at a board array
// position.
func CoordinateFromIndex(i int) Coordinate {
	return Coordinate{X: i % BoardSize, Y: i / BoardSize}
}

// Valid reports whether the coordinate lies on the board.
func (c Coordinate) Valid() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// ValidateCoordinate rejects coordinates outside the board.
func ValidateCoordinate(c Coordinate) error {
	if !c.Valid() {
		return OutOfBoundsError{Coordinate: c}
	}
	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
