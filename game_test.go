package chess

import (
	"strings"
	"testing"
)

func TestGameMoveTracksHistoryAndOutcome(t *testing.T) {
	g := NewGame()
	moves := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5"}
	for _, s := range moves {
		m, err := g.Position().DecodeMove(s, UCINotation)
		if err != nil {
			t.Fatalf("decode %s: %s", s, err)
		}
		if err := g.Move(m); err != nil {
			t.Fatalf("apply %s: %s", s, err)
		}
	}
	if len(g.Moves()) != len(moves) {
		t.Fatalf("expected %d moves in history, got %d", len(moves), len(g.Moves()))
	}
	if len(g.Positions()) != len(moves)+1 {
		t.Fatalf("expected %d positions (including the start), got %d", len(moves)+1, len(g.Positions()))
	}
	if g.Outcome() != NoOutcome {
		t.Fatalf("expected the game still in progress, got outcome %s", g.Outcome())
	}
}

func TestGameMoveRejectsIllegalMove(t *testing.T) {
	g := NewGame()
	m, err := g.Position().DecodeMove("e2e4", UCINotation)
	if err != nil {
		t.Fatalf("decode e2e4: %s", err)
	}
	// A move struct for a different, unreachable square should be rejected
	// even though it decodes fine against the starting position's board.
	bogus := m.copy()
	bogus.s2 = E5
	if err := g.Move(bogus); err == nil {
		t.Fatalf("expected an error applying a move absent from ValidMoves")
	}
}

func TestGameDetectsCheckmate(t *testing.T) {
	g, err := NewGameFromFEN("6k1/5ppp/8/8/8/8/8/4R2K w - - 0 1")
	if err != nil {
		t.Fatalf("NewGameFromFEN: %s", err)
	}
	m, err := g.Position().DecodeMove("e1e8", UCINotation)
	if err != nil {
		t.Fatalf("decode e1e8: %s", err)
	}
	if err := g.Move(m); err != nil {
		t.Fatalf("apply e1e8: %s", err)
	}
	if g.Outcome() != WhiteWon {
		t.Fatalf("expected WhiteWon by checkmate, got outcome %s", g.Outcome())
	}
	if g.Method() != Checkmate {
		t.Fatalf("expected Checkmate method, got %v", g.Method())
	}
}

func TestGamePGNRoundTrip(t *testing.T) {
	g := NewGame()
	g.AddTagPair("Event", "Test")
	for _, s := range []string{"e2e4", "e7e5"} {
		m, err := g.Position().DecodeMove(s, UCINotation)
		if err != nil {
			t.Fatalf("decode %s: %s", s, err)
		}
		if err := g.Move(m); err != nil {
			t.Fatalf("apply %s: %s", s, err)
		}
	}

	replay, err := NewGameFromPGN(strings.NewReader(g.String()))
	if err != nil {
		t.Fatalf("NewGameFromPGN: %s", err)
	}
	if len(replay.Moves()) != len(g.Moves()) {
		t.Fatalf("expected %d replayed moves, got %d", len(g.Moves()), len(replay.Moves()))
	}
}
