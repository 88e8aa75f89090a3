// Package cli renders a Position for human debugging: an ASCII board for a
// terminal and an SVG diagram via github.com/ajstarks/svgo, the same
// dependency the teacher's own go.mod already carried. The ASCII board is
// printed by the "board" debug subcommand in cmd/hyperchess; the SVG
// renderer is called only by its test. Neither is used by the search or
// protocol hot paths.
package cli

import (
	"fmt"
	"io"

	chess "github.com/ondrachi/hyperchess"
)

// RenderASCII writes pos's board plus its side-to-move, castling rights and
// en passant target -- the board art itself is Board.Draw; this adds the
// state a human debugging a position also wants at a glance.
func RenderASCII(w io.Writer, pos *chess.Position) {
	fmt.Fprint(w, pos.Board().Draw())
	fmt.Fprintf(w, "\nturn: %s  castling: %s  ep: %s  halfmove: %d  fullmove: %d\n",
		pos.Turn().Name(), castlingSummary(pos), epSummary(pos),
		pos.HalfMoveClock(), pos.FullMoveNumber())
}

func castlingSummary(pos *chess.Position) string {
	s := ""
	if pos.CastleRights(chess.White).Has(chess.KingCastling) {
		s += "K"
	}
	if pos.CastleRights(chess.White).Has(chess.QueenCastling) {
		s += "Q"
	}
	if pos.CastleRights(chess.Black).Has(chess.KingCastling) {
		s += "k"
	}
	if pos.CastleRights(chess.Black).Has(chess.QueenCastling) {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

func epSummary(pos *chess.Position) string {
	if pos.EnPassantSquare() == chess.NoSquare {
		return "-"
	}
	return pos.EnPassantSquare().String()
}
