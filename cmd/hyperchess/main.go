// Command hyperchess runs the engine's UCI-like text protocol over
// stdin/stdout, or one of a couple of debug subcommands for inspecting a
// position without going through the protocol. No CLI framework appears
// anywhere in the retrieved pack, so subcommand dispatch is a plain switch
// on os.Args, without the flag package -- see DESIGN.md.
package main

import (
	"fmt"
	"os"

	chess "github.com/ondrachi/hyperchess"
	"github.com/ondrachi/hyperchess/cli"
	"github.com/ondrachi/hyperchess/engineconfig"
	"github.com/ondrachi/hyperchess/enginelog"
	"github.com/ondrachi/hyperchess/uci"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	configPath := os.Getenv("HYPERCHESS_CONFIG")
	cfg, err := engineconfig.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hyperchess: loading config: %s\n", err)
		return 1
	}
	enginelog.Configure(cfg.LogLevel)

	if len(args) == 0 {
		return runUCI(cfg)
	}

	switch args[0] {
	case "board":
		return runBoard(args[1:])
	case "perft":
		return runPerft(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "hyperchess: unknown subcommand %q\n", args[0])
		return 1
	}
}

func runUCI(cfg engineconfig.Config) int {
	engine := uci.NewEngine(cfg.Name, cfg.Author, cfg.SearchDepth, cfg.InfiniteDepth, cfg.MovetimeDepth, cfg.UseEndgameKingPST)
	if err := engine.MainLoop(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "hyperchess: %s\n", err)
		return 1
	}
	return 0
}

func runBoard(args []string) int {
	pos := chess.StartingPosition()
	if len(args) > 0 {
		parsed, err := chess.ParseFEN(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "hyperchess: %s\n", err)
			return 1
		}
		pos = parsed
	}
	cli.RenderASCII(os.Stdout, pos)
	return 0
}

func runPerft(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "hyperchess: perft requires a depth argument")
		return 1
	}
	depth := 0
	if _, err := fmt.Sscanf(args[0], "%d", &depth); err != nil {
		fmt.Fprintf(os.Stderr, "hyperchess: invalid depth %q\n", args[0])
		return 1
	}
	pos := chess.StartingPosition()
	if len(args) > 1 {
		parsed, err := chess.ParseFEN(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "hyperchess: %s\n", err)
			return 1
		}
		pos = parsed
	}
	fmt.Printf("%d\n", chess.Perft(pos, depth))
	return 0
}
