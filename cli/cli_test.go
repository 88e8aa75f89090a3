package cli_test

import (
	"bytes"
	"testing"

	chess "github.com/ondrachi/hyperchess"
	"github.com/ondrachi/hyperchess/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderASCII(t *testing.T) {
	pos := chess.StartingPosition()
	var buf bytes.Buffer
	cli.RenderASCII(&buf, pos)

	out := buf.String()
	assert.Contains(t, out, "turn: White")
	assert.Contains(t, out, "castling: KQkq")
	assert.Contains(t, out, "ep: -")
}

func TestRenderSVG(t *testing.T) {
	pos := chess.StartingPosition()
	var buf bytes.Buffer
	cli.RenderSVG(&buf, pos)

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
}
