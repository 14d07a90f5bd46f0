package game

import "fmt"

// Move relocates the piece at From to To, then shoots an arrow to
// Shoot. The arrow is aimed from To on the board as it stands after
// the piece has vacated From, so Shoot == From is always a legal
// target.
type Move struct {
	From  Coordinate
	To    Coordinate
	Shoot Coordinate
}

func (m Move) String() string {
	return fmt.Sprintf("%v->%v^%v", m.From, m.To, m.Shoot)
}

// ValidateMove runs the legality checks for m in a fixed order and
// returns the first failure. It has no side effects.
func ValidateMove(b Board, m Move, color Color) error {
	ride := Vector{From: m.From, To: m.To}
	shot := Vector{From: m.To, To: m.Shoot}

	if err := ride.Validate(); err != nil {
		return err
	}
	if err := shot.Validate(); err != nil {
		return err
	}

	to, err := b.Get(m.To)
	if err != nil {
		return err
	}
	if to != Free {
		return OccupiedTileError{Coordinate: m.To}
	}

	// The vacated origin is always a legal arrow target.
	if m.Shoot != m.From {
		target, err := b.Get(m.Shoot)
		if err != nil {
			return err
		}
		if target != Free {
			return OccupiedTileError{Coordinate: m.Shoot}
		}
	}

	from, err := b.Get(m.From)
	if err != nil {
		return err
	}
	if from != PieceTile(color) {
		return OccupiedTileError{Coordinate: m.From}
	}

	if err := b.PathFree(ride); err != nil {
		return err
	}
	return b.PathFree(shot)
}
