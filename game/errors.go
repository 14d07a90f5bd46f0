package game

import (
	"errors"
	"fmt"
)

// ErrNoAvailableMoves reports that a side has no legal move at all.
var ErrNoAvailableMoves = errors.New("no available moves")

// OutOfBoundsError reports a coordinate outside the board.
type OutOfBoundsError struct {
	Coordinate Coordinate
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("coordinate %v is out of bounds", e.Coordinate)
}

// IllegalVectorError reports a vector that is not a queen line between
// two distinct cells.
type IllegalVectorError struct {
	Vector Vector
}

func (e IllegalVectorError) Error() string {
	return fmt.Sprintf("vector %v is not a straight or diagonal line", e.Vector)
}

// IllegalMoveError reports a move rejected by the move validator.
type IllegalMoveError struct {
	Move Move
}

func (e IllegalMoveError) Error() string {
	return fmt.Sprintf("move %v is illegal", e.Move)
}

// OccupiedTileError reports a tile that was expected to be free, or a
// start tile that does not hold the moving side's piece.
type OccupiedTileError struct {
	Coordinate Coordinate
}

func (e OccupiedTileError) Error() string {
	return fmt.Sprintf("tile %v is occupied", e.Coordinate)
}

// OccupiedVectorPathError reports a vector whose interior is blocked.
type OccupiedVectorPathError struct {
	Vector Vector
}

func (e OccupiedVectorPathError) Error() string {
	return fmt.Sprintf("path %v is blocked", e.Vector)
}
