//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

// Package search implements quiescence search, NegaScout/PVS with
// iterative deepening, and the supporting pruning and move-ordering
// heuristics, threaded through an explicit Context rather than global
// mutable state.
package search

import (
	"time"

	"github.com/ggeorgochess/chessengine/internal/board"
	"github.com/ggeorgochess/chessengine/internal/eval"
	"github.com/ggeorgochess/chessengine/internal/movegen"
	"github.com/ggeorgochess/chessengine/internal/tt"
	. "github.com/ggeorgochess/chessengine/internal/types"
)

// NodeType distinguishes full-window PV nodes from null-window scout/CUT
// nodes; it governs which pruning heuristics and TT cutoff rules apply.
type NodeType int

const (
	NodePV NodeType = iota
	NodeCut
)

// Context bundles every piece of mutable search state the source engine
// kept as globals: the board, both hash tables, ordering tables, the
// evaluator, node count, time control, and the global PV. Threading it
// explicitly lets each routine be tested on an isolated instance.
type Context struct {
	Board    *board.Board
	Tables   *tt.Tables
	Ordering *movegen.OrderingTables
	Eval     *eval.Evaluator

	Nodes uint64

	StartTime time.Time
	StopTime  time.Time
	TimeIsUp  bool
	Danger    bool

	RootPly int
	GlobalPV PVLine

	Stop <-chan struct{}

	// clockOverride lets tests pin StartSearch's notion of "now" instead of
	// reading the wall clock; zero means "use time.Now".
	clockOverride time.Time
}

// NewContext wires a fresh search context around an existing board and
// table set.
func NewContext(b *board.Board, tables *tt.Tables) *Context {
	return &Context{
		Board:    b,
		Tables:   tables,
		Ordering: movegen.NewOrderingTables(),
		Eval:     eval.NewEvaluator(tables.Pawn),
	}
}

// CheckTime polls the clock and the cancellation channel, returning true
// within 100ms of the stop deadline or as soon as Stop fires. A true
// result is latched into TimeIsUp, so later calls return true at once;
// cancellation is cooperative and checked once per node.
func (ctx *Context) CheckTime() bool {
	if ctx.TimeIsUp {
		return true
	}
	select {
	case <-ctx.Stop:
		ctx.TimeIsUp = true
		return true
	default:
	}
	if !ctx.StopTime.IsZero() && time.Until(ctx.StopTime) <= 100*time.Millisecond {
		ctx.TimeIsUp = true
	}
	return ctx.TimeIsUp
}

// sideScore returns v from White's perspective converted to the current
// side-to-move's perspective (negamax convention).
func sideScore(v Value, white bool) Value {
	if white {
		return v
	}
	return -v
}
