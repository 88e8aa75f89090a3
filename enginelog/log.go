// Package enginelog configures a single package-level structured logger
// for the protocol and search layers, following frankkopp/FrankyGo's
// internal/logging package in spirit: op/go-logging backend, a formatted
// prefix per record, and a lazily-initialized singleton accessed through
// Log(). Never called from inside MoveGen or the per-node body of Search --
// only at the protocol boundary and the per-iteration boundary of
// iterative deepening.
package enginelog

import (
	"os"

	"github.com/op/go-logging"
)

var (
	log    *logging.Logger
	module = "hyperchess"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{shortfunc} ▶ %{message}`,
)

func init() {
	Configure("INFO")
}

// Configure (re)builds the backend at the given level, one of op/go-logging's
// level names (DEBUG, INFO, WARNING, ERROR, CRITICAL). An unrecognized name
// falls back to INFO rather than failing -- logging misconfiguration must
// never stop the engine from running.
func Configure(level string) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, module)

	logging.SetBackend(leveled)
	log = logging.MustGetLogger(module)
}

// Log returns the package-level logger, initializing it at INFO if
// Configure has never been called.
func Log() *logging.Logger {
	if log == nil {
		Configure("INFO")
	}
	return log
}
