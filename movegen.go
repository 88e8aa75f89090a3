package chess

// LegalMoves generates every legal move available to the side to move in
// pos. It first generates pseudo-legal moves batched by kind in the order
// queen, rook, bishop, knight, pawn, king, castling -- the same order the
// original engine's gen_moves walks move_gen.rs -- then filters out any
// move that would leave the mover's own king under attack.
func LegalMoves(pos *Position) []*Move {
	pseudo := pseudoLegalMoves(pos)
	legal := make([]*Move, 0, len(pseudo))
	for _, mv := range pseudo {
		if isLegalMove(pos, mv) {
			legal = append(legal, mv)
		}
	}
	return legal
}

func pseudoLegalMoves(pos *Position) []*Move {
	board := pos.board
	color := pos.turn
	occ := board.Occupied()
	friendly := board.GetColorBitBoard(color)
	enemy := board.GetColorBitBoard(color.Other())

	var moves []*Move
	for _, sq := range board.GetPieces(Queen, color) {
		addPieceMoves(&moves, Queen, sq, QueenAttacks(occ, sq)&^friendly, board)
	}
	for _, sq := range board.GetPieces(Rook, color) {
		addPieceMoves(&moves, Rook, sq, RookAttacks(occ, sq)&^friendly, board)
	}
	for _, sq := range board.GetPieces(Bishop, color) {
		addPieceMoves(&moves, Bishop, sq, BishopAttacks(occ, sq)&^friendly, board)
	}
	for _, sq := range board.GetPieces(Knight, color) {
		addPieceMoves(&moves, Knight, sq, KnightAttacks(sq)&^friendly, board)
	}

	epSet := BitBoard(0)
	if pos.enPassantSquare != NoSquare {
		epSet = bbForSquare(pos.enPassantSquare)
	}
	for _, sq := range board.GetPieces(Pawn, color) {
		dest := genPawnMoves(occ, enemy|epSet, color, sq)
		addPawnMoves(&moves, sq, dest, pos)
	}

	for _, sq := range board.GetPieces(King, color) {
		addPieceMoves(&moves, King, sq, KingAttacks(sq)&^friendly, board)
	}

	moves = append(moves, castleMoves(pos)...)
	return moves
}

func addPieceMoves(moves *[]*Move, k Kind, from Square, dest BitBoard, board *Board) {
	piece := GetPiece(k, board.Piece(from).Color())
	for _, to := range dest.Squares() {
		m := &Move{piece: piece, s1: from, s2: to}
		if board.Piece(to) != NoPiece {
			m.addTag(Capture)
		}
		*moves = append(*moves, m)
	}
}

// genPawnMoves computes a pawn's destination set: forward pushes (single,
// and double from the home rank) intersected with the free squares, plus
// diagonal captures (including en passant) intersected with occupiedOrEp.
//
// The double-push free-square mask is lifted from the teacher's plain "is
// the path clear" check: it additionally blocks the push-target rank with
// a copy of the intervening rank's occupancy, so a double push correctly
// fails when the single square in front is blocked even though the
// two-squares-ahead square itself is empty. Ported from move_gen.rs.
func genPawnMoves(occ, occupiedOrEp BitBoard, color Color, sq Square) BitBoard {
	var free BitBoard
	if color == White {
		if sq.Rank() == Rank2 {
			rank3 := uint64(occ>>16) & 0xFF
			free = ^(occ | BitBoard(rank3<<24))
		} else {
			free = ^occ
		}
		return (pawnPushMask(White, sq) & free) | (PawnAttacks(White, sq) & occupiedOrEp)
	}
	if sq.Rank() == Rank7 {
		rank6 := uint64(occ>>40) & 0xFF
		free = ^(occ | BitBoard(rank6<<32))
	} else {
		free = ^occ
	}
	return (pawnPushMask(Black, sq) & free) | (PawnAttacks(Black, sq) & occupiedOrEp)
}

func addPawnMoves(moves *[]*Move, from Square, dest BitBoard, pos *Position) {
	piece := GetPiece(Pawn, pos.turn)
	for _, to := range dest.Squares() {
		isCapture := pos.board.Piece(to) != NoPiece
		isEnPassant := !isCapture && to == pos.enPassantSquare

		r := to.Rank()
		if r == Rank8 || r == Rank1 {
			for _, promo := range [...]PromoType{PromoQueen, PromoRook, PromoBishop, PromoKnight} {
				m := &Move{piece: piece, s1: from, s2: to, promo: promo}
				if isCapture {
					m.addTag(Capture)
				}
				*moves = append(*moves, m)
			}
			continue
		}
		m := &Move{piece: piece, s1: from, s2: to}
		if isCapture {
			m.addTag(Capture)
		}
		if isEnPassant {
			m.addTag(EnPassant)
			m.addTag(Capture)
		}
		*moves = append(*moves, m)
	}
}

// castleMoves generates the pseudo-legal castling moves available in pos:
// the rook-right is held and the squares between king and rook are empty.
// Whether the king's travel band is safe from attack is left to the
// legality filter, not checked here -- mirrors move_gen.rs's split between
// gen_castle_moves (path only) and is_legal_move (safety).
func castleMoves(pos *Position) []*Move {
	board := pos.board
	color := pos.turn
	cr := pos.CastleRights(color)

	var rank uint
	var kingFrom, kingSideTo, queenSideTo Square
	if color == White {
		rank, kingFrom, kingSideTo, queenSideTo = 0, E1, G1, C1
	} else {
		rank, kingFrom, kingSideTo, queenSideTo = 7, E8, G8, C8
	}
	rankByte := uint8(board.Occupied() >> (rank * 8))

	var moves []*Move
	if cr.Has(KingCastling) && rankByte&0b01100000 == 0 {
		m := &Move{piece: GetPiece(King, color), s1: kingFrom, s2: kingSideTo}
		m.addTag(KingSideCastle)
		moves = append(moves, m)
	}
	if cr.Has(QueenCastling) && rankByte&0b00001110 == 0 {
		m := &Move{piece: GetPiece(King, color), s1: kingFrom, s2: queenSideTo}
		m.addTag(QueenSideCastle)
		moves = append(moves, m)
	}
	return moves
}

// isLegalMove applies mv to a scratch copy of pos and checks that the
// mover's king is not left under attack. For castling, the test area is
// widened to the full three-square band the king crosses (its start,
// transit and landing squares) so a castle through check is rejected, not
// just a castle into check -- ported from move_gen.rs's is_legal_move.
func isLegalMove(pos *Position, mv *Move) bool {
	mover := pos.turn
	next := pos.Copy()
	next.ApplyMove(mv)

	var testArea BitBoard
	switch {
	case mv.HasTag(KingSideCastle) && mover == White:
		testArea = BitBoard(0b01110000)
	case mv.HasTag(QueenSideCastle) && mover == White:
		testArea = BitBoard(0b00011100)
	case mv.HasTag(KingSideCastle) && mover == Black:
		testArea = BitBoard(0b01110000) << (7 * 8)
	case mv.HasTag(QueenSideCastle) && mover == Black:
		testArea = BitBoard(0b00011100) << (7 * 8)
	default:
		testArea = next.board.Kings & next.board.GetColorBitBoard(mover)
	}
	return !IsUnderAttack(next.board, mover.Other(), testArea)
}

// IsUnderAttack reports whether any square in testArea is attacked by a
// piece of attackingColor on board. Checked kind by kind -- queen, rook,
// bishop, knight, pawn, king -- short-circuiting on the first hit, the
// same order as move_gen.rs's is_under_attack.
func IsUnderAttack(board *Board, attackingColor Color, testArea BitBoard) bool {
	occ := board.Occupied()
	for _, sq := range board.GetPieces(Queen, attackingColor) {
		if QueenAttacks(occ, sq)&testArea != 0 {
			return true
		}
	}
	for _, sq := range board.GetPieces(Rook, attackingColor) {
		if RookAttacks(occ, sq)&testArea != 0 {
			return true
		}
	}
	for _, sq := range board.GetPieces(Bishop, attackingColor) {
		if BishopAttacks(occ, sq)&testArea != 0 {
			return true
		}
	}
	for _, sq := range board.GetPieces(Knight, attackingColor) {
		if KnightAttacks(sq)&testArea != 0 {
			return true
		}
	}
	var pawnAttacks BitBoard
	for _, sq := range board.GetPieces(Pawn, attackingColor) {
		pawnAttacks |= PawnAttacks(attackingColor, sq)
	}
	if pawnAttacks&testArea != 0 {
		return true
	}
	for _, sq := range board.GetPieces(King, attackingColor) {
		if KingAttacks(sq)&testArea != 0 {
			return true
		}
	}
	return false
}
