package chess

import "fmt"

// PositionStatus is the classification of how play stands in a position,
// independent of any Game-level outcome bookkeeping (draw offers,
// resignation, repetition) layered on top in game.go.
type PositionStatus uint8

const (
	StatusNone PositionStatus = iota
	StatusInProgress
	StatusCheckmate
	StatusStalemate
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is a mutable chess position: board, side to move, castling
// rights, en passant target, half-move clock and full-move number, ported
// field-for-field from the original engine's Position struct (types.rs).
// Unlike the teacher's Position, whose Update method returns a fresh value,
// ApplyMove mutates the receiver in place and returns the captured piece (if
// any), matching spec.md's apply_move contract.
type Position struct {
	board           *Board
	turn            Color
	whiteCastling   CastlingRight
	blackCastling   CastlingRight
	enPassantSquare Square
	halfMoveClock   int
	fullMoveNumber  int

	validMoves []*Move
}

// NewPosition builds a Position from explicit fields.
func NewPosition(board *Board, turn Color, whiteCastling, blackCastling CastlingRight, ep Square, halfMoveClock, fullMoveNumber int) *Position {
	return &Position{
		board:           board,
		turn:            turn,
		whiteCastling:   whiteCastling,
		blackCastling:   blackCastling,
		enPassantSquare: ep,
		halfMoveClock:   halfMoveClock,
		fullMoveNumber:  fullMoveNumber,
	}
}

// StartingPosition returns a position set up for a new game.
func StartingPosition() *Position {
	pos, err := ParseFEN(startFEN)
	if err != nil {
		panic("chess: invalid built-in starting FEN: " + err.Error())
	}
	return pos
}

// Board returns the position's board.
func (pos *Position) Board() *Board { return pos.board }

// Turn returns the side to move.
func (pos *Position) Turn() Color { return pos.turn }

// CastleRights returns the castling rights for the given color.
func (pos *Position) CastleRights(c Color) CastlingRight {
	if c == White {
		return pos.whiteCastling
	}
	return pos.blackCastling
}

// EnPassantSquare returns the en passant target square, or NoSquare.
func (pos *Position) EnPassantSquare() Square { return pos.enPassantSquare }

// HalfMoveClock returns the half-move clock (moves since the last capture or pawn move).
func (pos *Position) HalfMoveClock() int { return pos.halfMoveClock }

// FullMoveNumber returns the full-move counter.
func (pos *Position) FullMoveNumber() int { return pos.fullMoveNumber }

// String implements fmt.Stringer and returns the position's FEN.
func (pos *Position) String() string {
	return RenderFEN(pos)
}

// Copy returns a deep-enough copy of the position (a fresh Board, no shared state).
func (pos *Position) Copy() *Position {
	b := &Board{}
	pos.board.copyInto(b)
	return &Position{
		board:           b,
		turn:            pos.turn,
		whiteCastling:   pos.whiteCastling,
		blackCastling:   pos.blackCastling,
		enPassantSquare: pos.enPassantSquare,
		halfMoveClock:   pos.halfMoveClock,
		fullMoveNumber:  pos.fullMoveNumber,
	}
}

func (cr CastlingRight) removeKing() CastlingRight { return cr.Remove(BothCastling) }

func (pos *Position) removeKingCastlingRight(c Color) {
	if c == White {
		pos.whiteCastling = pos.whiteCastling.removeKing()
	} else {
		pos.blackCastling = pos.blackCastling.removeKing()
	}
}

func (pos *Position) removeRookCastlingRight(sq Square, c Color) {
	var right CastlingRight
	switch {
	case c == White && sq == A1:
		right = QueenCastling
	case c == White && sq == H1:
		right = KingCastling
	case c == Black && sq == A8:
		right = QueenCastling
	case c == Black && sq == H8:
		right = KingCastling
	default:
		return
	}
	if c == White {
		pos.whiteCastling = pos.whiteCastling.Remove(right)
	} else {
		pos.blackCastling = pos.blackCastling.Remove(right)
	}
}

// ApplyMove mutates pos to reflect m and returns the piece captured (if
// any). It assumes m is at least pseudo-legal -- the contract invariants it
// relies on (the moved piece actually matches m.Piece's kind, a promotion
// only lands on the back rank, never capturing a friendly piece) are
// enforced by assertContract, a no-op unless built with the chessdebug tag.
// See DESIGN.md and spec.md §7.
func (pos *Position) ApplyMove(m *Move) Piece {
	color := pos.turn
	board := pos.board

	if m.HasTag(KingSideCastle) || m.HasTag(QueenSideCastle) {
		pos.enPassantSquare = NoSquare
		pos.applyCastle(m)
		pos.removeKingCastlingRight(color)
		pos.updateStats(false, color)
		pos.validMoves = nil
		return NoPiece
	}

	resetHalfMove := false
	pos.enPassantSquare = NoSquare

	captured := board.Piece(m.s2)
	assertContract(board, m, color)

	kind := m.piece.Kind()
	board.ClearSquare(m.s1)
	if kind == Pawn && m.promo != NoPromo {
		board.SetPiece(m.s2, GetPiece(m.promo.Kind(), color))
	} else {
		board.SetPiece(m.s2, m.piece)
	}

	switch kind {
	case Rook:
		pos.removeRookCastlingRight(m.s1, color)
	case King:
		pos.removeKingCastlingRight(color)
	case Pawn:
		resetHalfMove = true
		if m.HasTag(EnPassant) {
			var capSq Square
			if color == White {
				capSq = Square(int(m.s2) - 8)
			} else {
				capSq = Square(int(m.s2) + 8)
			}
			captured = board.Piece(capSq)
			board.ClearSquare(capSq)
		} else if absRankDiff(m.s1, m.s2) == 2 {
			if color == White {
				pos.enPassantSquare = Square(int(m.s1) + 8)
			} else {
				pos.enPassantSquare = Square(int(m.s1) - 8)
			}
		}
	}

	if captured != NoPiece {
		resetHalfMove = true
		if captured.Kind() == Rook {
			pos.removeRookCastlingRight(m.s2, color.Other())
		}
	}
	pos.updateStats(resetHalfMove, color)
	pos.validMoves = nil
	return captured
}

func absRankDiff(s1, s2 Square) int {
	d := int(s1.Rank()) - int(s2.Rank())
	if d < 0 {
		return -d
	}
	return d
}

func (pos *Position) applyCastle(m *Move) {
	board := pos.board
	color := pos.turn
	var kingFrom, kingTo, rookFrom, rookTo Square
	if color == White {
		kingFrom = E1
		if m.HasTag(KingSideCastle) {
			kingTo, rookFrom, rookTo = G1, H1, F1
		} else {
			kingTo, rookFrom, rookTo = C1, A1, D1
		}
	} else {
		kingFrom = E8
		if m.HasTag(KingSideCastle) {
			kingTo, rookFrom, rookTo = G8, H8, F8
		} else {
			kingTo, rookFrom, rookTo = C8, A8, D8
		}
	}
	king := board.Piece(kingFrom)
	rook := board.Piece(rookFrom)
	board.ClearSquare(kingFrom)
	board.ClearSquare(rookFrom)
	board.SetPiece(kingTo, king)
	board.SetPiece(rookTo, rook)
}

func (pos *Position) updateStats(resetHalfMove bool, mover Color) {
	if mover == Black {
		pos.fullMoveNumber++
	}
	if resetHalfMove {
		pos.halfMoveClock = 0
	} else {
		pos.halfMoveClock++
	}
	pos.turn = pos.turn.Other()
}

// ValidMoves returns the legal moves available in this position, computed
// and cached lazily.
func (pos *Position) ValidMoves() []*Move {
	pos.ensureValidMoves()
	return pos.validMoves
}

func (pos *Position) ensureValidMoves() {
	if pos.validMoves != nil {
		return
	}
	pos.validMoves = LegalMoves(pos)
}

// InCheck reports whether the side to move is in check.
func (pos *Position) InCheck() bool {
	return IsUnderAttack(pos.board, pos.turn.Other(), bbForSquare(pos.board.KingSquare(pos.turn)))
}

// Status classifies the position as ongoing, checkmate or stalemate.
func (pos *Position) Status() PositionStatus {
	if len(pos.ValidMoves()) > 0 {
		return StatusInProgress
	}
	if pos.InCheck() {
		return StatusCheckmate
	}
	return StatusStalemate
}

// Eq reports whether two positions are identical, including move counters.
func (pos *Position) Eq(other *Position) bool {
	return pos.samePosition(other) &&
		pos.halfMoveClock == other.halfMoveClock &&
		pos.fullMoveNumber == other.fullMoveNumber
}

// samePosition compares everything Zobrist hashing covers: board, turn,
// castling rights and en passant target, ignoring the move counters.
func (pos *Position) samePosition(other *Position) bool {
	return pos.board.Eq(other.board) &&
		pos.turn == other.turn &&
		pos.whiteCastling == other.whiteCastling &&
		pos.blackCastling == other.blackCastling &&
		pos.enPassantSquare == other.enPassantSquare
}

func (pos *Position) goString() string {
	return fmt.Sprintf("Position<%s>", pos.String())
}
