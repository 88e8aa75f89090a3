package eval_test

import (
	"testing"

	"github.com/ondrachi/hyperchess"
	"github.com/ondrachi/hyperchess/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, fen string) *chess.Position {
	t.Helper()
	pos, err := chess.ParseFEN(fen)
	require.NoError(t, err)
	return pos
}

func TestSimpleEvaluator(t *testing.T) {
	e := eval.NewSimpleEvaluator(true)

	pos := mustParse(t, "N7/1BR5/8/3Q4/4P3/8/8/8 w KQkq - 0 1")
	assert.Equal(t, eval.Score(2135), e.Eval(pos))

	pos = mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.Equal(t, eval.Score(0), e.Eval(pos))

	pos = mustParse(t, "qk5r/8/8/3K4/8/8/8/R6Q w - - 0 40")
	assert.Equal(t, eval.Middlegame, e.Classify(pos))
	assert.Equal(t, eval.Score(-80), e.Eval(pos))

	pos = mustParse(t, "k7/8/8/3K4/8/8/8/8 w - - 0 40")
	assert.Equal(t, eval.Endgame, e.Classify(pos))
	assert.Equal(t, eval.Score(90), e.Eval(pos))
}

func TestClassify(t *testing.T) {
	e := eval.NewSimpleEvaluator(true)

	pos := mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1")
	assert.Equal(t, eval.Opening, e.Classify(pos))

	pos = mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 9")
	assert.Equal(t, eval.Middlegame, e.Classify(pos))

	pos = mustParse(t, "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNB1KBNR w - - 0 9")
	assert.Equal(t, eval.Endgame, e.Classify(pos))

	pos = mustParse(t, "2bqk3/pppppppp/8/8/8/8/PPPPPPPP/3QKN2 w - - 0 9")
	assert.Equal(t, eval.Endgame, e.Classify(pos))
}
