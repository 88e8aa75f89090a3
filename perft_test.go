package chess

import "testing"

// Expected node counts are the standard perft reference values for the
// starting position and the "Kiwipete" test position, used by virtually
// every chess move generator's test suite to validate legality.
func TestPerftStartingPosition(t *testing.T) {
	pos := StartingPosition()
	cases := []struct {
		depth int
		want  uint64
	}{
		{0, 1},
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		{5, 4865609},
	}
	for _, c := range cases {
		if got := Perft(pos, c.depth); got != c.want {
			t.Fatalf("perft(%d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftKiwipeteDepth1(t *testing.T) {
	pos := unsafeFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if got := Perft(pos, 1); got != 48 {
		t.Fatalf("kiwipete perft(1) = %d, want 48", got)
	}
}

func TestPerftKiwipeteDepth2(t *testing.T) {
	pos := unsafeFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if got := Perft(pos, 2); got != 2039 {
		t.Fatalf("kiwipete perft(2) = %d, want 2039", got)
	}
}

func TestPerftKiwipeteDepth3(t *testing.T) {
	pos := unsafeFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if got := Perft(pos, 3); got != 97862 {
		t.Fatalf("kiwipete perft(3) = %d, want 97862", got)
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	pos := StartingPosition()
	divide := PerftDivide(pos, 3)
	var sum uint64
	for _, n := range divide {
		sum += n
	}
	if want := Perft(pos, 3); sum != want {
		t.Fatalf("sum of perft divide = %d, want %d", sum, want)
	}
	if len(divide) != 20 {
		t.Fatalf("expected 20 root moves in divide, got %d", len(divide))
	}
}
