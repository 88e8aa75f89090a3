package chess

import "testing"

func TestLegalMovesStartingPosition(t *testing.T) {
	pos := StartingPosition()
	moves := LegalMoves(pos)
	if len(moves) != 20 {
		t.Fatalf("expected 20 legal moves from the starting position, got %d", len(moves))
	}
}

func TestLegalMovesCastlingBlockedByAttack(t *testing.T) {
	// Black rook on e8 attacks e1 down the open e-file: White's king is in
	// check, so neither castle is legal.
	pos := unsafeFEN("4r3/8/8/8/8/8/8/4K2R w K - 0 1")
	for _, m := range LegalMoves(pos) {
		if m.HasTag(KingSideCastle) {
			t.Fatalf("king side castle should be illegal while the king is in check")
		}
	}
}

func TestLegalMovesCastlingAllowedWhenClear(t *testing.T) {
	pos := unsafeFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	found := false
	for _, m := range LegalMoves(pos) {
		if m.HasTag(KingSideCastle) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected king side castle to be legal with a clear path and no attacks")
	}
}

func TestLegalMovesPawnDoublePushBlocked(t *testing.T) {
	// White pawn on e2 blocked one square ahead by a black pawn on e3 must
	// not be able to "jump" it with a double push.
	pos := unsafeFEN("4k3/8/8/8/8/4p3/4P3/4K3 w - - 0 1")
	for _, m := range LegalMoves(pos) {
		if m.piece.Kind() == Pawn && m.s1 == E2 && m.s2 == E4 {
			t.Fatalf("e2e4 should be illegal: e3 is occupied")
		}
	}
}

func TestLegalMovesEnPassantCapture(t *testing.T) {
	pos := unsafeFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	found := false
	for _, m := range LegalMoves(pos) {
		if m.piece.Kind() == Pawn && m.s1 == E5 && m.s2 == D6 {
			found = true
			if !m.HasTag(EnPassant) || !m.HasTag(Capture) {
				t.Fatalf("e5d6 should be tagged EnPassant+Capture")
			}
		}
	}
	if !found {
		t.Fatalf("expected en passant capture e5d6 to be legal")
	}
}

func TestLegalMovesPromotionGeneratesFourOptions(t *testing.T) {
	pos := unsafeFEN("k7/4P3/8/8/8/8/8/4K3 w - - 0 1")
	count := 0
	for _, m := range LegalMoves(pos) {
		if m.s1 == E7 && m.s2 == E8 {
			count++
		}
	}
	if count != 4 {
		t.Fatalf("expected 4 promotion options for e7e8, got %d", count)
	}
}

func TestIsUnderAttackKnight(t *testing.T) {
	pos := unsafeFEN("4k3/8/8/8/4n3/8/8/4K3 w - - 0 1")
	if !IsUnderAttack(pos.board, Black, bbForSquare(F2)) {
		t.Fatalf("f2 should be attacked by the knight on e4")
	}
	if IsUnderAttack(pos.board, Black, bbForSquare(A1)) {
		t.Fatalf("a1 should not be attacked by the knight on e4")
	}
}
