package cli

import (
	"io"
	"strings"

	"github.com/ajstarks/svgo"

	chess "github.com/ondrachi/hyperchess"
)

const squareSize = 45

// pieceGlyph maps a piece to the single-letter glyph drawn on its square,
// uppercase for White, lowercase for Black -- same convention as FEN.
func pieceGlyph(p chess.Piece) string {
	if p == chess.NoPiece {
		return ""
	}
	glyph := strings.ToUpper(p.Kind().String())
	if p.Color() == chess.Black {
		glyph = lower(glyph)
	}
	return glyph
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// RenderSVG draws pos as an 8x8 SVG board diagram to w: alternating light
// and dark squares and a centered glyph per occupied square.
func RenderSVG(w io.Writer, pos *chess.Position) {
	canvas := svg.New(w)
	side := squareSize * 8
	canvas.Start(side, side)
	defer canvas.End()

	board := pos.Board()
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := chess.NewSquare(chess.File(file), chess.Rank(rank))
			x := file * squareSize
			y := (7 - rank) * squareSize

			fill := "#f0d9b5"
			if (rank+file)%2 == 0 {
				fill = "#b58863"
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+fill)

			glyph := pieceGlyph(board.Piece(sq))
			if glyph == "" {
				continue
			}
			canvas.Text(x+squareSize/2, y+squareSize/2+6, glyph,
				"text-anchor:middle;font-size:24px;font-family:sans-serif")
		}
	}
}
