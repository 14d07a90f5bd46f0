package game

import "fmt"

// Vector is a candidate straight-line queen move between two cells.
type Vector struct {
	From Coordinate
	To   Coordinate
}

func (v Vector) String() string {
	return fmt.Sprintf("%v->%v", v.From, v.To)
}

// Validate checks that v connects two distinct in-bounds cells along a
// horizontal, vertical or 45 degree line of any length.
func (v Vector) Validate() error {
	if err := ValidateCoordinate(v.From); err != nil {
		return err
	}
	if err := ValidateCoordinate(v.To); err != nil {
		return err
	}
	dx := v.To.X - v.From.X
	dy := v.To.Y - v.From.Y
	if dx == 0 && dy == 0 {
		return IllegalVectorError{Vector: v}
	}
	if dx != 0 && dy != 0 && abs(dx) != abs(dy) {
		return IllegalVectorError{Vector: v}
	}
	return nil
}

// Step is one cell along a vector's path.
type Step struct {
	Coordinate Coordinate
	Tile       Tile
}

// Path validates v and walks it in unit steps, returning every cell
// from start to end inclusive with the tile found there.
func (b Board) Path(v Vector) ([]Step, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	dx := v.To.X - v.From.X
	dy := v.To.Y - v.From.Y
	length := max(abs(dx), abs(dy))
	stepX, stepY := sign(dx), sign(dy)

	steps := make([]Step, 0, length+1)
	for i := 0; i <= length; i++ {
		c := Coordinate{X: v.From.X + i*stepX, Y: v.From.Y + i*stepY}
		t, err := b.Get(c)
		if err != nil {
			// Unreachable once the endpoints validated.
			return nil, IllegalVectorError{Vector: v}
		}
		steps = append(steps, Step{Coordinate: c, Tile: t})
	}
	return steps, nil
}

// PathFree reports whether every interior cell of v is free. The
// endpoints are judged by the move validator, not here.
func (b Board) PathFree(v Vector) error {
	steps, err := b.Path(v)
	if err != nil {
		return err
	}
	for _, s := range steps[1 : len(steps)-1] {
		if s.Tile != Free {
			return OccupiedVectorPathError{Vector: v}
		}
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
