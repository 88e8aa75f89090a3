package chess

import "testing"

func TestParseFENRoundTrip(t *testing.T) {
	fens := []string{
		startFEN,
		"r1b1k1nr/ppp2ppp/2n5/2b1q3/3p4/P1P2pPN/1P5P/RNBQKB1R w KQkq - 0 10",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
		"8/8/8/8/8/8/8/R3K2R w KQ - 0 1",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %s", fen, err)
		}
		if got := RenderFEN(pos); got != fen {
			t.Fatalf("round trip mismatch: parsed %q, rendered %q", fen, got)
		}
	}
}

func TestParseFENRejectsWrongFieldCount(t *testing.T) {
	if _, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0"); err == nil {
		t.Fatalf("expected an error for a FEN missing its full move field")
	}
}

func TestParseFENRejectsBadEnPassantRank(t *testing.T) {
	// e4 is not a valid en passant target rank (must be rank 3 or 6).
	if _, err := ParseFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e4 0 1"); err == nil {
		t.Fatalf("expected an error for an en passant target outside rank 3/6")
	}
}

func TestParseFENRejectsBadBoardRankCount(t *testing.T) {
	if _, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1"); err == nil {
		t.Fatalf("expected an error for a board with fewer than 8 ranks")
	}
}
