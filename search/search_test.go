package search_test

import (
	"testing"

	chess "github.com/ondrachi/hyperchess"
	"github.com/ondrachi/hyperchess/eval"
	"github.com/ondrachi/hyperchess/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, fen string) *chess.Position {
	t.Helper()
	pos, err := chess.ParseFEN(fen)
	require.NoError(t, err)
	return pos
}

func TestSearchFindsMateInOne(t *testing.T) {
	// Classic back-rank mate: Re1-e8 is checkmate, Black's king boxed in by
	// its own pawns with no escape square on the back rank.
	pos := mustParse(t, "6k1/5ppp/8/8/8/8/8/4R2K w - - 0 1")
	s := search.New(eval.NewSimpleEvaluator(true))

	best := s.Search(pos, 1)
	require.NotNil(t, best)
	assert.Equal(t, chess.E1, best.S1())
	assert.Equal(t, chess.E8, best.S2())
}

func TestSearchPrefersFreeCapture(t *testing.T) {
	// White knight can take a hanging black queen on d5.
	pos := mustParse(t, "4k3/8/8/3q4/8/2N5/8/4K3 w - - 0 1")
	s := search.New(eval.NewSimpleEvaluator(true))

	best := s.Search(pos, 2)
	require.NotNil(t, best)
	assert.Equal(t, chess.D5, best.S2())
	assert.Equal(t, chess.C3, best.S1())
}

func TestSearchNoLegalMovesReturnsNil(t *testing.T) {
	// Black to move, stalemated.
	pos := mustParse(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	s := search.New(eval.NewSimpleEvaluator(true))

	best := s.Search(pos, 2)
	assert.Nil(t, best)
}

func TestSearchReusesPVTreeAcrossDepths(t *testing.T) {
	pos := mustParse(t, "4k3/8/8/3q4/8/2N5/8/4K3 w - - 0 1")
	s := search.New(eval.NewSimpleEvaluator(true))

	first := s.Search(pos, 1)
	second := s.Search(pos, 3)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.S1(), second.S1())
	assert.Equal(t, first.S2(), second.S2())
}
