package game

// LossValue is the evaluation of a position where the scored side has
// no legal moves. Its magnitude dwarfs any reachable mobility
// difference.
const LossValue = -1_000_000

// Mobility counts the legal (move, shoot) pairs available to color:
// for each piece, every reachable destination contributes the shot
// back onto the origin plus one shot per cell reachable from the
// destination.
//
// The destination rays run on the unmodified board, where the moving
// piece still occupies its origin, so shots that would pass through
// the vacated origin are not counted. The count therefore matches the
// generator's enumeration exactly but undercounts the theoretical
// move count of a rules variant that vacates the origin before
// shooting. The search was tuned against this behavior; keep it.
func Mobility(b Board, color Color) int {
	total := 0
	for _, c := range b.Pieces(color) {
		for _, ride := range PossibleVectorsFrom(b, c) {
			total += 1 + len(PossibleVectorsFrom(b, ride.To))
		}
	}
	return total
}

// Evaluate scores b from color's perspective as the difference in
// mobility between color and its opponent. A side with no moves has
// lost, so zero mobility short-circuits to LossValue.
func Evaluate(b Board, color Color) int {
	own := Mobility(b, color)
	if own == 0 {
		return LossValue
	}
	return own - Mobility(b, color.Other())
}
