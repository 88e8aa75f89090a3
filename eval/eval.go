package eval

import "github.com/ondrachi/hyperchess"

// Stage classifies which phase of the game a position is in, which PST set
// the king uses (its safety profile inverts once material is gone).
type Stage uint8

const (
	Opening Stage = iota
	Middlegame
	Endgame
)

// Evaluator scores positions with material plus piece-square tables,
// selecting the endgame king table once the queens are off the board, or
// the rooks are off with at most two minor pieces left. Exported as an
// interface, per eval.rs's own Evaluator
// trait, so Search can be driven by a stub evaluator in tests.
type Evaluator interface {
	Eval(pos *chess.Position) Score
	Classify(pos *chess.Position) Stage
}

// SimpleEvaluator is the only Evaluator this engine ships, modeled on
// eval.rs's SimpleEvaluator.
type SimpleEvaluator struct {
	// UseEndgameKingPST selects the dedicated endgame king table once a
	// position is classified Endgame; disabled, the king keeps using its
	// middlegame table regardless of stage. Read from
	// engineconfig.Config.UseEndgameKingPST.
	UseEndgameKingPST bool
}

// NewSimpleEvaluator returns the stock material+PST evaluator. useEndgameKingPST
// comes from engineconfig.Config.UseEndgameKingPST.
func NewSimpleEvaluator(useEndgameKingPST bool) SimpleEvaluator {
	return SimpleEvaluator{UseEndgameKingPST: useEndgameKingPST}
}

// Eval returns the position's score in centipawns, positive for White.
func (e SimpleEvaluator) Eval(pos *chess.Position) Score {
	return evalMaterial(pos) + e.evalPiecePositions(pos)
}

// Classify reports the game stage, matching eval.rs's classify exactly:
// no queens, or no rooks with at most two minor pieces left, means
// Endgame; otherwise Opening before move 8, Middlegame after.
func (SimpleEvaluator) Classify(pos *chess.Position) Stage {
	board := pos.Board()
	noQueens := board.GetKindBitBoard(chess.Queen) == 0
	noRooks := board.GetKindBitBoard(chess.Rook) == 0
	minorPieces := (board.GetKindBitBoard(chess.Bishop) | board.GetKindBitBoard(chess.Knight)).Count()

	if noQueens || (noRooks && minorPieces <= 2) {
		return Endgame
	}
	if pos.FullMoveNumber() < 8 {
		return Opening
	}
	return Middlegame
}

func evalMaterial(pos *chess.Position) Score {
	board := pos.Board()
	diff := func(k chess.Kind) Score {
		white := (board.GetKindBitBoard(k) & board.GetColorBitBoard(chess.White)).Count()
		black := (board.GetKindBitBoard(k) & board.GetColorBitBoard(chess.Black)).Count()
		return Score(white - black)
	}
	return diff(chess.Pawn)*pawnValue +
		diff(chess.Knight)*knightValue +
		diff(chess.Bishop)*bishopValue +
		diff(chess.Rook)*rookValue +
		diff(chess.Queen)*queenValue +
		diff(chess.King)*kingValue
}

func (e SimpleEvaluator) evalPiecePositions(pos *chess.Position) Score {
	board := pos.Board()
	stage := e.Classify(pos)
	var result Score
	for _, color := range [...]chess.Color{chess.White, chess.Black} {
		for _, kind := range chess.Kinds() {
			for _, sq := range board.GetPieces(kind, color) {
				result += e.evalOnePiecePosition(kind, color, sq, stage)
			}
		}
	}
	return result
}

func (e SimpleEvaluator) evalOnePiecePosition(kind chess.Kind, color chess.Color, sq chess.Square, stage Stage) Score {
	table := e.pstFor(kind, color, stage)
	if color == chess.White {
		return table[sq]
	}
	return -table[sq]
}

func (e SimpleEvaluator) pstFor(kind chess.Kind, color chess.Color, stage Stage) pst {
	white := color == chess.White
	switch kind {
	case chess.Pawn:
		if white {
			return whitePawnPST
		}
		return blackPawnPST
	case chess.Knight:
		if white {
			return whiteKnightPST
		}
		return blackKnightPST
	case chess.Bishop:
		if white {
			return whiteBishopPST
		}
		return blackBishopPST
	case chess.Rook:
		if white {
			return whiteRookPST
		}
		return blackRookPST
	case chess.Queen:
		if white {
			return whiteQueenPST
		}
		return blackQueenPST
	case chess.King:
		if stage == Endgame && e.UseEndgameKingPST {
			if white {
				return whiteEndgameKingPST
			}
			return blackEndgameKingPST
		}
		if white {
			return whiteKingPST
		}
		return blackKingPST
	}
	panic("eval: unreachable piece kind")
}
