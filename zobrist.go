package chess

import "math/rand"

// zobristPoolSize is the number of random numbers drawn for the Zobrist
// table. The index space used by pieceHash/castlingHash/enPassantHash/
// turnHash tops out at 830 (the side-to-move slot); the pool is rounded up
// past that with the same headroom the original engine's own table left
// unused, per hash.rs.
const zobristPoolSize = 850

// zobristSeed is fixed so that ZobristHash is deterministic across
// processes and runs -- required for the hash-equality property to be a
// property of the position, not of process start-up entropy.
const zobristSeed = 0x636865737333

var zobristPool [zobristPoolSize]uint64

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for i := range zobristPool {
		zobristPool[i] = r.Uint64()
	}
}

func randomNumber(index int) uint64 {
	return zobristPool[index]
}

// ZobristHash computes the Zobrist hash of pos: the XOR of one random
// number per (square, piece) occupied, one for the castling-rights
// combination, one for the en passant file (if any) and one if Black is
// to move. Two positions that agree on every field the hash covers (see
// Position.samePosition) always share a hash; positions that differ
// collide only by chance in the 64-bit space -- ported index for
// index from the original engine's calc_position_hash (hash.rs).
func ZobristHash(pos *Position) uint64 {
	var result uint64
	board := pos.board
	for _, color := range [...]Color{White, Black} {
		for _, kind := range allKinds {
			for _, sq := range board.GetPieces(kind, color) {
				result ^= pieceHash(sq, GetPiece(kind, color))
			}
		}
	}
	result ^= castlingHash(pos.whiteCastling, pos.blackCastling)
	result ^= enPassantHash(pos.enPassantSquare)
	result ^= turnHash(pos.turn)
	return result
}

// pieceHash returns one of the first 768 (2 colors * 6 kinds * 64 squares)
// random numbers, indexed (kind<<7)+(color<<6)+square.
func pieceHash(sq Square, p Piece) uint64 {
	index := (int(p.Kind()) << 7) + (int(p.Color()) << 6) + int(sq)
	return randomNumber(index)
}

// castlingHash returns one of 16 random numbers (#800-#815), indexed by
// the white and black castling right combination.
func castlingHash(whiteCastling, blackCastling CastlingRight) uint64 {
	index := int(whiteCastling) + int(blackCastling)<<2
	return randomNumber(index + 800)
}

// enPassantHash returns one of 8 random numbers (#820-#827) keyed by the
// en passant file, or 0 if there is no en passant target.
func enPassantHash(sq Square) uint64 {
	if sq == NoSquare {
		return 0
	}
	return randomNumber(int(sq.File()) + 820)
}

// turnHash returns random number #830 when Black is to move, or 0 for White.
func turnHash(c Color) uint64 {
	if c == Black {
		return randomNumber(830)
	}
	return 0
}
