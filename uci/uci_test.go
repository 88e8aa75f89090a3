package uci

import (
	"bytes"
	"strings"
	"testing"

	chess "github.com/ondrachi/hyperchess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleCommands(t *testing.T) {
	for _, line := range []string{"uci", "ucinewgame", "isready", "quit", "stop"} {
		cmd, err := ParseCommand(line)
		require.NoError(t, err)
		assert.NotEqual(t, CmdUnknown, cmd.Kind, line)
	}
}

func TestParseGoCommand(t *testing.T) {
	cmd, err := ParseCommand("go infinite")
	require.NoError(t, err)
	assert.Equal(t, CmdGo, cmd.Kind)
	assert.Equal(t, goInfinite, cmd.Mode)

	cmd, err = ParseCommand("go")
	require.NoError(t, err)
	assert.Equal(t, goDefault, cmd.Mode)

	cmd, err = ParseCommand("go movetime 123")
	require.NoError(t, err)
	assert.Equal(t, goMovetime, cmd.Mode)

	cmd, err = ParseCommand("go depth 3")
	require.NoError(t, err)
	assert.Equal(t, goDepth, cmd.Mode)
	assert.Equal(t, 3, cmd.Depth)
}

func TestParsePositionCommand(t *testing.T) {
	cmd, err := ParseCommand("position startpos")
	require.NoError(t, err)
	assert.Equal(t, CmdPosition, cmd.Kind)
	assert.Equal(t, "", cmd.FEN)
	assert.Empty(t, cmd.Moves)

	cmd, err = ParseCommand("position startpos moves e2e4 e7e5 a7a8r")
	require.NoError(t, err)
	assert.Equal(t, "", cmd.FEN)
	assert.Equal(t, []string{"e2e4", "e7e5", "a7a8r"}, cmd.Moves)

	fen := "r1b1k1nr/ppp2ppp/2n5/2b1q3/3p4/P1P2pPN/1P5P/RNBQKB1R w KQkq - 0 10"
	cmd, err = ParseCommand("position fen " + fen)
	require.NoError(t, err)
	assert.Equal(t, fen, cmd.FEN)
	assert.Empty(t, cmd.Moves)
}

// TestPositionCommandAppliesPromotionMove is spec §8 end-to-end scenario 6:
// a position command carrying a "a7a8r" UCI move must actually land a white
// rook on a8, not just parse the move text into cmd.Moves.
func TestPositionCommandAppliesPromotionMove(t *testing.T) {
	e := NewEngine("hyperchess", "student", 4, 5, 3, true)
	cmd, err := ParseCommand("position fen 4k3/P7/8/8/8/8/8/4K3 w - - 0 1 moves a7a8r")
	require.NoError(t, err)

	e.setPosition(cmd)

	piece, ok := e.game.Position().Board().GetPiece(chess.A8)
	require.True(t, ok)
	assert.Equal(t, chess.WhiteRook, piece)
}

func TestMainLoopHandshake(t *testing.T) {
	e := NewEngine("hyperchess", "student", 4, 5, 3, true)
	in := strings.NewReader("uci\nisready\nquit\n")
	var out bytes.Buffer

	err := e.MainLoop(in, &out)
	require.NoError(t, err)
	got := out.String()
	assert.Contains(t, got, "id name hyperchess")
	assert.Contains(t, got, "id author student")
	assert.Contains(t, got, "uciok")
	assert.Contains(t, got, "readyok")
}

func TestMainLoopGoDepthProducesBestMove(t *testing.T) {
	e := NewEngine("hyperchess", "student", 4, 5, 3, true)
	in := strings.NewReader("position startpos\ngo depth 1\nquit\n")
	var out bytes.Buffer

	err := e.MainLoop(in, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "bestmove ")
}
