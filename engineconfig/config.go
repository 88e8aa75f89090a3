// Package engineconfig loads the engine's optional TOML configuration
// file, following frankkopp/FrankyGo's choice of github.com/BurntSushi/toml
// for the same purpose. The UCI front-end works identically whether or not
// a file is given -- it only pins the fixed depths used by the go
// movetime/go infinite fallbacks, never adding real time management.
package engineconfig

import "github.com/BurntSushi/toml"

// Config holds everything the protocol and search layers need at startup.
type Config struct {
	Name   string `toml:"name"`
	Author string `toml:"author"`

	// SearchDepth is the fixed depth used for a bare "go" with no option at
	// all, distinct from the explicit "go infinite" fallback below.
	SearchDepth int `toml:"search_depth"`

	// InfiniteDepth and MovetimeDepth are the fixed-depth stand-ins for
	// go infinite and go movetime, matching uci.rs's think().
	InfiniteDepth int `toml:"infinite_depth"`
	MovetimeDepth int `toml:"movetime_depth"`

	// UseEndgameKingPST toggles the endgame king table; disabling it
	// falls back to the middlegame king PST even once classified Endgame.
	UseEndgameKingPST bool `toml:"use_endgame_king_pst"`

	// LogLevel is passed straight to enginelog.Configure.
	LogLevel string `toml:"log_level"`
}

// Default returns the hardcoded configuration used when no file is given.
func Default() Config {
	return Config{
		Name:              "hyperchess",
		Author:            "student",
		SearchDepth:       4,
		InfiniteDepth:     5,
		MovetimeDepth:     3,
		UseEndgameKingPST: true,
		LogLevel:          "INFO",
	}
}

// Load reads path as TOML over the defaults: any field missing from the
// file keeps its default value, so a near-empty config file is valid.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
