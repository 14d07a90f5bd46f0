package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoordinateIndexRoundTrip(t *testing.T) {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			c := C(x, y)
			require.Equal(t, c, CoordinateFromIndex(c.Index()),
				"index mapping should round-trip for every valid coordinate")
		}
	}
}

func TestValidateCoordinate(t *testing.T) {
	t.Run("accepts every on-board coordinate", func(t *testing.T) {
		for y := 0; y < BoardSize; y++ {
			for x := 0; x < BoardSize; x++ {
				require.NoError(t, ValidateCoordinate(C(x, y)))
			}
		}
	})

	t.Run("rejects off-board coordinates", func(t *testing.T) {
		for _, c := range []Coordinate{C(-1, 0), C(0, -1), C(10, 0), C(0, 10), C(-3, 12)} {
			err := ValidateCoordinate(c)
			require.ErrorAs(t, err, &OutOfBoundsError{}, "coordinate %v should be out of bounds", c)
			require.Equal(t, OutOfBoundsError{Coordinate: c}, err)
		}
	})
}
