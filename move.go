package chess

import "fmt"

// MoveTag represents a notable consequence or classification of a move.
type MoveTag uint16

const (
	KingSideCastle MoveTag = 1 << iota
	QueenSideCastle
	Capture
	EnPassant
	Check
	// inCheck marks a pseudo-legal move that leaves its own side in check;
	// used only internally by the legality filter.
	inCheck
	IsCheckmate
)

// Move is the movement of a piece from one square to another. Castling is
// represented as the king's two-square move (matching the UCI wire format
// and spec.md's move model) with the relevant MoveTag set, rather than as a
// separate move type -- ApplyMove inspects the tag to relocate the rook.
type Move struct {
	piece Piece
	s1    Square
	s2    Square
	promo PromoType
	tags  MoveTag
}

// NewMove builds an ordinary move of piece from s1 to s2, optionally promoting.
func NewMove(piece Piece, s1, s2 Square, promo PromoType) *Move {
	return &Move{piece: piece, s1: s1, s2: s2, promo: promo}
}

// String returns a string useful for debugging, not algebraic notation.
func (m *Move) String() string {
	return fmt.Sprintf("%s%s%s", m.s1.String(), m.s2.String(), m.promo.Kind().String())
}

// S1 returns the origin square of the move.
func (m *Move) S1() Square { return m.s1 }

// S2 returns the destination square of the move.
func (m *Move) S2() Square { return m.s2 }

// Piece returns the piece being moved.
func (m *Move) Piece() Piece { return m.piece }

// Promo returns the promotion kind of the move, or NoKind.
func (m *Move) Promo() Kind { return m.promo.Kind() }

// Eq reports whether two moves have the same origin, destination and promotion.
func (m *Move) Eq(other *Move) bool {
	return m.s1 == other.s1 && m.s2 == other.s2 && m.promo == other.promo
}

func (m *Move) copy() *Move {
	cp := *m
	return &cp
}

// HasTag returns true if the move carries the given MoveTag.
func (m *Move) HasTag(tag MoveTag) bool {
	return tag&m.tags != 0
}

func (m *Move) addTag(tag MoveTag) {
	m.tags |= tag
}

// moveSlice is a list of candidate moves searched by origin/destination/
// promotion equality, used to validate a caller-supplied move against the
// position's actual legal move list.
type moveSlice []*Move

func (ms moveSlice) find(m *Move) *Move {
	for _, mv := range ms {
		if mv.Eq(m) {
			return mv
		}
	}
	return nil
}
