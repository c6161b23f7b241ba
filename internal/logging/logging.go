//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

// Package logging wires up the three log channels the engine writes to:
// the main engine log, the search-internal log (node-type, pruning and
// ordering decisions), and the test log used by test suites.
package logging

import (
	"os"

	logging "github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
)

func newLogger(name string, level logging.Level) *logging.Logger {
	log := logging.MustGetLogger(name)
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	log.SetBackend(leveled)
	return log
}

// Engine logs protocol-level events: commands received, moves applied,
// game-end reports.
var Engine = newLogger("engine", logging.INFO)

// Search logs per-iteration search progress: depth, score, nodes, PV.
var Search = newLogger("search", logging.INFO)

// Test is the channel test suites write diagnostics to, kept separate so
// a CI run can silence it without silencing engine/search output.
var Test = newLogger("test", logging.WARNING)

// SetLevel adjusts a named channel's verbosity at runtime (cmd/engine's
// -loglvl flag uses this).
func SetLevel(l *logging.Logger, level logging.Level) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	l.SetBackend(leveled)
}
