// Package render draws boards for terminal output. It is a consumer of
// the game package only; nothing in the engine or searcher depends on
// it.
package render

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"amazons/game"
)

var profile = termenv.ColorProfile()

// Board renders b as a 10x10 grid with file and rank labels. Rank 9 is
// printed first so (0,0) sits at the bottom-left.
func Board(b game.Board) string {
	var sb strings.Builder
	for y := game.BoardSize - 1; y >= 0; y-- {
		fmt.Fprintf(&sb, "%2d ", y)
		for x := 0; x < game.BoardSize; x++ {
			tile, _ := b.Get(game.C(x, y))
			sb.WriteString(glyph(tile))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   ")
	for x := 0; x < game.BoardSize; x++ {
		fmt.Fprintf(&sb, "%d ", x)
	}
	sb.WriteByte('\n')
	return sb.String()
}

func glyph(t game.Tile) string {
	switch t {
	case game.BlackPiece:
		return termenv.String("B").Foreground(profile.Color("4")).Bold().String()
	case game.WhitePiece:
		return termenv.String("W").Foreground(profile.Color("2")).Bold().String()
	case game.Arrow:
		return termenv.String("x").Foreground(profile.Color("1")).String()
	default:
		return termenv.String(".").Faint().String()
	}
}
