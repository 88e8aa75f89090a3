package chess

import (
	"math/bits"
	"strconv"
	"strings"
)

const darkSquares uint64 = 0xAA55AA55AA55AA55
const lightSquares uint64 = 0x55AA55AA55AA55AA

// Board holds the eight bitboards that represent a position's pieces: one
// per color and one per kind. This layout is ported directly from the
// original engine's Board struct (types.rs), which replaces the teacher's
// 22-entry per-piece-type array.
type Board struct {
	White, Black                          BitBoard
	Pawns, Bishops, Knights, Rooks, Queens BitBoard
	Kings                                  BitBoard
}

// EmptyBoard returns a board with no pieces set.
func EmptyBoard() *Board {
	return &Board{}
}

// NewBoard returns a board from a square-to-piece mapping.
func NewBoard(m map[Square]Piece) *Board {
	b := EmptyBoard()
	for sq, p := range m {
		b.SetPiece(sq, p)
	}
	return b
}

func (b *Board) colorBB(c Color) *BitBoard {
	if c == White {
		return &b.White
	}
	return &b.Black
}

func (b *Board) kindBB(k Kind) *BitBoard {
	switch k {
	case Pawn:
		return &b.Pawns
	case Bishop:
		return &b.Bishops
	case Knight:
		return &b.Knights
	case Rook:
		return &b.Rooks
	case Queen:
		return &b.Queens
	case King:
		return &b.Kings
	}
	return nil
}

// SetPiece places p on sq, overwriting whatever was there.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.ClearSquare(sq)
	bit := bbForSquare(sq)
	*b.colorBB(p.Color()) |= bit
	*b.kindBB(p.Kind()) |= bit
}

// ClearSquare removes any piece on sq.
func (b *Board) ClearSquare(sq Square) {
	bit := ^bbForSquare(sq)
	b.White &= bit
	b.Black &= bit
	b.Pawns &= bit
	b.Bishops &= bit
	b.Knights &= bit
	b.Rooks &= bit
	b.Queens &= bit
	b.Kings &= bit
}

// GetPiece returns the piece on sq and whether one is present.
func (b *Board) GetPiece(sq Square) (Piece, bool) {
	bit := bbForSquare(sq)
	var c Color
	switch {
	case b.White&bit != 0:
		c = White
	case b.Black&bit != 0:
		c = Black
	default:
		return NoPiece, false
	}
	for _, k := range allKinds {
		if *b.kindBB(k)&bit != 0 {
			return GetPiece(k, c), true
		}
	}
	return NoPiece, false
}

// Piece returns the piece on sq, or NoPiece if empty.
func (b *Board) Piece(sq Square) Piece {
	p, ok := b.GetPiece(sq)
	if !ok {
		return NoPiece
	}
	return p
}

// GetPieces returns the squares occupied by pieces of the given kind and color.
func (b *Board) GetPieces(k Kind, c Color) []Square {
	return (*b.kindBB(k) & *b.colorBB(c)).Squares()
}

// GetColorBitBoard returns the union bitboard of all of a color's pieces.
func (b *Board) GetColorBitBoard(c Color) BitBoard {
	return *b.colorBB(c)
}

// GetKindBitBoard returns the union bitboard of all pieces of a kind.
func (b *Board) GetKindBitBoard(k Kind) BitBoard {
	return *b.kindBB(k)
}

// Occupied returns the union of every occupied square.
func (b *Board) Occupied() BitBoard {
	return b.White | b.Black
}

// KingSquare returns the square of a color's king, or NoSquare if absent.
func (b *Board) KingSquare(c Color) Square {
	return (b.Kings & *b.colorBB(c)).First()
}

// Eq reports whether two boards hold the same pieces.
func (b *Board) Eq(other *Board) bool {
	return b.White == other.White && b.Black == other.Black &&
		b.Pawns == other.Pawns && b.Bishops == other.Bishops &&
		b.Knights == other.Knights && b.Rooks == other.Rooks &&
		b.Queens == other.Queens && b.Kings == other.Kings
}

// copyInto copies the receiver's bitboards into other.
func (b *Board) copyInto(other *Board) {
	*other = *b
}

// Draw returns an ASCII board useful for debugging, grounded on the
// teacher's Board.Draw layout.
func (b *Board) Draw() string {
	s := "\n A B C D E F G H\n"
	for r := 7; r >= 0; r-- {
		s += Rank(r).String()
		for f := 0; f < numOfSquaresInRow; f++ {
			p := b.Piece(NewSquare(File(f), Rank(r)))
			if p == NoPiece {
				s += "-"
			} else {
				s += p.String()
			}
			s += " "
		}
		s += "\n"
	}
	return s
}

// String implements fmt.Stringer and returns the FEN board field:
// rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR
func (b *Board) String() string {
	var ranks [8]string
	for r := 7; r >= 0; r-- {
		var sb strings.Builder
		skip := 0
		for f := 0; f < numOfSquaresInRow; f++ {
			p := b.Piece(NewSquare(File(f), Rank(r)))
			if p == NoPiece {
				skip++
				continue
			}
			if skip != 0 {
				sb.WriteString(strconv.Itoa(skip))
				skip = 0
			}
			sb.WriteByte(p.fenChar())
		}
		if skip != 0 {
			sb.WriteString(strconv.Itoa(skip))
		}
		ranks[7-r] = sb.String()
	}
	return strings.Join(ranks[:], "/")
}

// HasSufficientMaterial reports whether there is enough material left on the
// board for checkmate to still be possible, ported from the teacher's
// Board.hasSufficientMaterial.
func (b *Board) HasSufficientMaterial() bool {
	if (b.Queens | b.Rooks | b.Pawns) != 0 {
		return true
	}
	if b.Kings&b.White == 0 || b.Kings&b.Black == 0 {
		return true
	}
	bishops := bits.OnesCount64(uint64(b.Bishops))
	knights := bits.OnesCount64(uint64(b.Knights))

	if bishops == 0 && knights == 0 {
		return false
	}
	if bishops == 1 && knights == 0 {
		return false
	}
	if bishops == 0 && knights == 1 {
		return false
	}
	if knights == 0 {
		lightCount := bits.OnesCount64(uint64(b.Bishops) & lightSquares)
		darkCount := bits.OnesCount64(uint64(b.Bishops) & darkSquares)
		if lightCount == 0 || darkCount == 0 {
			return false
		}
	}
	return true
}
