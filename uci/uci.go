// Package uci implements the engine's line-oriented, UCI-like text
// protocol: command parsing and a synchronous main loop, ported from the
// original engine's uci.rs.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	chess "github.com/ondrachi/hyperchess"
	"github.com/ondrachi/hyperchess/enginelog"
	"github.com/ondrachi/hyperchess/eval"
	"github.com/ondrachi/hyperchess/search"
)

// CommandKind discriminates the small set of commands this protocol
// understands, mirroring uci.rs's Command enum.
type CommandKind int

const (
	CmdUnknown CommandKind = iota
	CmdUCI
	CmdIsReady
	CmdUCINewGame
	CmdPosition
	CmdGo
	CmdStop
	CmdQuit
)

// goMode selects which of the four `go` variants was requested.
type goMode int

const (
	goDepth goMode = iota
	goMovetime
	goInfinite
	// goDefault is a bare "go" with no option at all -- uci.rs folds this
	// into Infinity, but since engineconfig now carries a configurable
	// SearchDepth, a bare "go" uses that default instead of the (typically
	// deeper) explicit "go infinite" fallback.
	goDefault
)

// Command is a parsed protocol line.
type Command struct {
	Kind  CommandKind
	Mode  goMode
	Depth int
	FEN   string // "" means startpos
	Moves []string
}

// ParseCommand parses one protocol line. A blank line yields a CmdUnknown
// command; unrecognized or malformed text yields an error describing it.
// Neither halts the read loop: MainLoop reports the error as an info
// string and goes on to the next line.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Kind: CmdUnknown}, nil
	}

	switch fields[0] {
	case "ucinewgame":
		return Command{Kind: CmdUCINewGame}, nil
	case "uci":
		return Command{Kind: CmdUCI}, nil
	case "isready":
		return Command{Kind: CmdIsReady}, nil
	case "stop":
		return Command{Kind: CmdStop}, nil
	case "quit":
		return Command{Kind: CmdQuit}, nil
	case "position":
		return parsePosition(fields[1:])
	case "go":
		return parseGo(fields[1:])
	}
	return Command{}, fmt.Errorf("uci: unexpected command %q", line)
}

func parsePosition(rest []string) (Command, error) {
	if len(rest) == 0 {
		return Command{}, fmt.Errorf("uci: fen or startpos expected after 'position'")
	}

	cmd := Command{Kind: CmdPosition}
	i := 0
	if rest[0] == "startpos" {
		i = 1
	} else if rest[0] == "fen" {
		i = 1
		var fenFields []string
		for i < len(rest) && rest[i] != "moves" {
			fenFields = append(fenFields, rest[i])
			i++
		}
		cmd.FEN = strings.Join(fenFields, " ")
	} else {
		var fenFields []string
		for i < len(rest) && rest[i] != "moves" {
			fenFields = append(fenFields, rest[i])
			i++
		}
		cmd.FEN = strings.Join(fenFields, " ")
	}

	if i < len(rest) && rest[i] == "moves" {
		cmd.Moves = append([]string(nil), rest[i+1:]...)
	}
	return cmd, nil
}

func parseGo(rest []string) (Command, error) {
	if len(rest) == 0 {
		return Command{Kind: CmdGo, Mode: goDefault}, nil
	}
	switch rest[0] {
	case "depth":
		if len(rest) < 2 {
			return Command{}, fmt.Errorf("uci: depth is invalid or not provided")
		}
		d, err := strconv.Atoi(rest[1])
		if err != nil {
			return Command{}, fmt.Errorf("uci: depth is invalid or not provided")
		}
		return Command{Kind: CmdGo, Mode: goDepth, Depth: d}, nil
	case "movetime":
		if len(rest) < 2 {
			return Command{}, fmt.Errorf("uci: movetime is invalid or not provided")
		}
		if _, err := strconv.Atoi(rest[1]); err != nil {
			return Command{}, fmt.Errorf("uci: movetime is invalid or not provided")
		}
		return Command{Kind: CmdGo, Mode: goMovetime}, nil
	default:
		return Command{Kind: CmdGo, Mode: goInfinite}, nil
	}
}

// Engine holds the protocol layer's working game -- the move history and
// automatic-draw bookkeeping `chess.Game` provides on top of a bare
// Position -- and drives Searcher across successive `go` commands.
type Engine struct {
	Name   string
	Author string
	game   *chess.Game
	search *search.Searcher

	// searchDepth, infiniteDepth, and movetimeDepth are the fixed-depth
	// fallbacks for a bare "go", "go infinite", and "go movetime"
	// respectively, since this engine has no cooperative cancellation and
	// therefore no real time management. infiniteDepth/movetimeDepth are
	// ported verbatim from uci.rs's think: Infinity => 5, MovetimeMsc(_) =>
	// 3; searchDepth has no original_source counterpart and is read from
	// engineconfig.Config.SearchDepth by the caller.
	searchDepth   int
	infiniteDepth int
	movetimeDepth int
}

// NewEngine returns an Engine configured with the given name/author and
// iterative-deepening depth fallbacks, set to the standard starting
// position.
func NewEngine(name, author string, searchDepth, infiniteDepth, movetimeDepth int, useEndgameKingPST bool) *Engine {
	s := search.New(eval.NewSimpleEvaluator(useEndgameKingPST))
	s.OnDepth = func(depth int, score eval.Score) {
		enginelog.Log().Debugf("iterative deepening: depth %d score %d", depth, score)
	}
	return &Engine{
		Name:          name,
		Author:        author,
		game:          chess.NewGame(),
		search:        s,
		searchDepth:   searchDepth,
		infiniteDepth: infiniteDepth,
		movetimeDepth: movetimeDepth,
	}
}

// MainLoop reads commands from r, one per line, and writes responses to w,
// until a quit command or EOF. It returns nil on a clean quit, or the
// underlying read error on unrecoverable I/O failure.
func (e *Engine) MainLoop(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		cmd, err := ParseCommand(line)
		if err != nil {
			enginelog.Log().Warningf("malformed command %q: %s", line, err)
			fmt.Fprintf(w, "info string %s\n", err)
			continue
		}
		if !e.dispatch(cmd, w) {
			return nil
		}
	}
	return scanner.Err()
}

// dispatch executes one parsed command, writing its responses to w. It
// returns false when the loop should terminate (a quit command).
func (e *Engine) dispatch(cmd Command, w io.Writer) bool {
	switch cmd.Kind {
	case CmdUCI:
		fmt.Fprintf(w, "id name %s\n", e.Name)
		fmt.Fprintf(w, "id author %s\n", e.Author)
		fmt.Fprintln(w, "uciok")
	case CmdIsReady:
		fmt.Fprintln(w, "readyok")
	case CmdUCINewGame:
		e.game = chess.NewGame()
		e.search.Reset()
	case CmdPosition:
		if cmd.FEN != "" {
			if _, err := chess.ParseFEN(cmd.FEN); err != nil {
				fmt.Fprintf(w, "info string %s\n", err)
			}
		}
		e.setPosition(cmd)
	case CmdGo:
		e.think(cmd, w)
	case CmdStop:
		// No-op: searches run to completion, per spec.md's concurrency
		// model -- there is no cooperative cancellation flag to set.
	case CmdQuit:
		return false
	case CmdUnknown:
		// Malformed input is ignored, never terminates the read loop.
	}
	return true
}

// setPosition rebuilds e.game from the position command: a fresh game at
// startpos or the given FEN, with cmd.Moves replayed one at a time through
// Game.Move so the move-history and automatic-draw bookkeeping Game
// provides (checked by think before it searches) stay accurate for the
// resulting position, not just its final board. An unparsable FEN leaves
// e.game unchanged.
func (e *Engine) setPosition(cmd Command) {
	var g *chess.Game
	if cmd.FEN == "" {
		g = chess.NewGame()
	} else {
		parsed, err := chess.NewGameFromFEN(cmd.FEN)
		if err != nil {
			return
		}
		g = parsed
	}
	for _, moveText := range cmd.Moves {
		m, err := g.Position().DecodeMove(moveText, chess.UCINotation)
		if err != nil {
			break
		}
		if err := g.Move(m); err != nil {
			break
		}
	}
	e.game = g
	e.search.Reset()
}

func (e *Engine) think(cmd Command, w io.Writer) {
	if outcome := e.game.Outcome(); outcome != chess.NoOutcome {
		fmt.Fprintf(w, "info string game over: %s by %s\n", outcome, gameOverReason(e.game.Method()))
		fmt.Fprintln(w, "bestmove (none)")
		return
	}

	depth := cmd.Depth
	switch cmd.Mode {
	case goDefault:
		depth = e.searchDepth
	case goInfinite:
		depth = e.infiniteDepth
	case goMovetime:
		depth = e.movetimeDepth
	}

	pos := e.game.Position()
	enginelog.Log().Debugf("search starting: depth %d fen %s", depth, pos)
	best := e.search.Search(pos, depth)
	enginelog.Log().Debug("search finished")
	if best == nil {
		fmt.Fprintln(w, "info string no moves found")
		return
	}
	moveText := pos.EncodeMove(best, chess.UCINotation)
	fmt.Fprintf(w, "info currmove %s\n", moveText)
	fmt.Fprintf(w, "bestmove %s\n", moveText)
}

// gameOverReason renders a Method for the "info string game over" line.
func gameOverReason(m chess.Method) string {
	switch m {
	case chess.Checkmate:
		return "checkmate"
	case chess.Stalemate:
		return "stalemate"
	case chess.ThreefoldRepetition:
		return "threefold repetition"
	case chess.FivefoldRepetition:
		return "fivefold repetition"
	case chess.FiftyMoveRule:
		return "fifty move rule"
	case chess.SeventyFiveMoveRule:
		return "seventy-five move rule"
	case chess.InsufficientMaterial:
		return "insufficient material"
	case chess.Resignation:
		return "resignation"
	case chess.DrawOffer:
		return "draw offer"
	default:
		return "unknown"
	}
}
