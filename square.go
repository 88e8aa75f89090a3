package chess

// Square is a single position on the board, numbered 0 (a1) to 63 (h8),
// file-major within each rank: file + rank*8.
type Square uint8

// NoSquare represents the absence of a square.
const NoSquare Square = 64

const (
	numOfSquaresInBoard = 64
	numOfSquaresInRow   = 8
)

// NewSquare builds a Square from a file and a rank.
func NewSquare(f File, r Rank) Square {
	return Square(uint8(r)<<3 | uint8(f))
}

// File returns the file (a-h, 0-7) of the square.
func (sq Square) File() File {
	return File(uint8(sq) & 0x7)
}

// Rank returns the rank (1-8, 0-7) of the square.
func (sq Square) Rank() Rank {
	return Rank(uint8(sq) >> 3)
}

// String implements fmt.Stringer, e.g. Square(0).String() == "a1".
func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

// File is a column of the board, a=0 through h=7.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

func (f File) String() string {
	return string(rune('a' + int(f)))
}

// Rank is a row of the board, rank 1 = 0 through rank 8 = 7.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

func (r Rank) String() string {
	return string(rune('1' + int(r)))
}

// named squares used by castling, en passant, and table literals throughout
// the engine.
const (
	A1 = Square(iota)
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// strToSquareMap maps algebraic square names ("e4") back to Square,
// built once from the named constants above rather than hand-duplicated.
var strToSquareMap = func() map[string]Square {
	m := make(map[string]Square, numOfSquaresInBoard)
	for sq := Square(0); sq < numOfSquaresInBoard; sq++ {
		m[sq.String()] = sq
	}
	return m
}()
