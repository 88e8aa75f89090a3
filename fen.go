package chess

import (
	"fmt"
	"strconv"
	"strings"
)

var fenTurnMap = map[string]Color{
	"w": White,
	"b": Black,
}

var turnFEN = map[Color]string{
	White: "w",
	Black: "b",
}

// ParseFEN decodes Forsyth-Edwards Notation into a Position. An error is
// returned if fen does not have all six space-separated fields or any
// field fails its own validation, mirroring the original engine's
// parse_fen (fen.rs) field by field.
func ParseFEN(fen string) (*Position, error) {
	fen = strings.TrimSpace(fen)
	parts := strings.Split(fen, " ")
	if len(parts) != 6 {
		return nil, fmt.Errorf("chess: fen %q must have 6 space-separated fields", fen)
	}

	board, err := fenBoard(parts[0])
	if err != nil {
		return nil, err
	}
	turn, ok := fenTurnMap[parts[1]]
	if !ok {
		return nil, fmt.Errorf("chess: fen invalid turn %q", parts[1])
	}
	whiteCastling, blackCastling, err := fenCastleRights(parts[2])
	if err != nil {
		return nil, err
	}
	ep, err := fenEnPassant(parts[3])
	if err != nil {
		return nil, err
	}
	halfMoveClock, err := strconv.Atoi(parts[4])
	if err != nil || halfMoveClock < 0 {
		return nil, fmt.Errorf("chess: fen invalid half move clock %q", parts[4])
	}
	fullMoveNumber, err := strconv.Atoi(parts[5])
	if err != nil || fullMoveNumber < 0 {
		return nil, fmt.Errorf("chess: fen invalid full move number %q", parts[5])
	}

	return NewPosition(board, turn, whiteCastling, blackCastling, ep, halfMoveClock, fullMoveNumber), nil
}

func fenBoard(boardStr string) (*Board, error) {
	rankStrs := strings.Split(boardStr, "/")
	if len(rankStrs) != 8 {
		return nil, fmt.Errorf("chess: fen invalid board %q", boardStr)
	}
	m := map[Square]Piece{}
	for i, rankStr := range rankStrs {
		rank := Rank(7 - i)
		fileMap, err := fenRank(rankStr)
		if err != nil {
			return nil, err
		}
		for file, p := range fileMap {
			m[NewSquare(file, rank)] = p
		}
	}
	return NewBoard(m), nil
}

func fenRank(rankStr string) (map[File]Piece, error) {
	m := make(map[File]Piece, 8)
	file := 0
	for i := 0; i < len(rankStr); i++ {
		c := rankStr[i]
		if c >= '1' && c <= '8' {
			n := int(c - '0')
			if file+n > 8 {
				return nil, fmt.Errorf("chess: fen rank %q overflows with %d empty squares at file %d", rankStr, n, file)
			}
			file += n
			continue
		}
		p, ok := fenCharToPiece[c]
		if !ok {
			return nil, fmt.Errorf("chess: fen rank %q has invalid piece character %q", rankStr, c)
		}
		if file >= 8 {
			return nil, fmt.Errorf("chess: fen rank %q has more than 8 files", rankStr)
		}
		m[File(file)] = p
		file++
	}
	if file != 8 {
		return nil, fmt.Errorf("chess: fen rank %q must describe exactly 8 files, got %d", rankStr, file)
	}
	return m, nil
}

func fenCastleRights(s string) (whiteCastling, blackCastling CastlingRight, err error) {
	if s == "-" {
		return NoCastling, NoCastling, nil
	}
	var whiteKing, whiteQueen, blackKing, blackQueen bool
	for _, r := range s {
		switch r {
		case 'K':
			whiteKing = true
		case 'Q':
			whiteQueen = true
		case 'k':
			blackKing = true
		case 'q':
			blackQueen = true
		default:
			return 0, 0, fmt.Errorf("chess: fen invalid castling rights %q", s)
		}
	}
	return castlingFromBools(whiteKing, whiteQueen), castlingFromBools(blackKing, blackQueen), nil
}

func castlingFromBools(king, queen bool) CastlingRight {
	switch {
	case king && queen:
		return BothCastling
	case king:
		return KingCastling
	case queen:
		return QueenCastling
	default:
		return NoCastling
	}
}

// fenEnPassant parses the en passant field. The original engine only
// accepts a target on rank 3 (White just double-pushed) or rank 6 (Black
// just double-pushed); any other rank is a parse error, not merely an
// impossible position -- ported from fen.rs's parse_en_passant.
func fenEnPassant(s string) (Square, error) {
	if s == "-" {
		return NoSquare, nil
	}
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("chess: fen invalid en passant square %q", s)
	}
	sq, ok := strToSquareMap[s]
	if !ok {
		return NoSquare, fmt.Errorf("chess: fen invalid en passant square %q", s)
	}
	if sq.Rank() != Rank3 && sq.Rank() != Rank6 {
		return NoSquare, fmt.Errorf("chess: fen en passant square %q must be on rank 3 or rank 6", s)
	}
	return sq, nil
}

// RenderFEN encodes pos as Forsyth-Edwards Notation, the inverse of ParseFEN.
func RenderFEN(pos *Position) string {
	var sb strings.Builder
	sb.WriteString(pos.board.String())

	sb.WriteByte(' ')
	sb.WriteString(turnFEN[pos.turn])

	sb.WriteByte(' ')
	sb.WriteString(renderCastling(pos.whiteCastling, pos.blackCastling))

	sb.WriteByte(' ')
	if pos.enPassantSquare == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(pos.enPassantSquare.String())
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.fullMoveNumber))

	return sb.String()
}

func renderCastling(whiteCastling, blackCastling CastlingRight) string {
	if whiteCastling == NoCastling && blackCastling == NoCastling {
		return "-"
	}
	var sb strings.Builder
	if whiteCastling.Has(KingCastling) {
		sb.WriteByte('K')
	}
	if whiteCastling.Has(QueenCastling) {
		sb.WriteByte('Q')
	}
	if blackCastling.Has(KingCastling) {
		sb.WriteByte('k')
	}
	if blackCastling.Has(QueenCastling) {
		sb.WriteByte('q')
	}
	return sb.String()
}
