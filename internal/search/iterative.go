//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package search

import (
	"time"

	"github.com/ggeorgochess/chessengine/internal/board"
	"github.com/ggeorgochess/chessengine/internal/movegen"
	"github.com/ggeorgochess/chessengine/internal/moveorder"
	. "github.com/ggeorgochess/chessengine/internal/types"
)

const (
	startDepth      = 1
	threatThreshold = 3
	futilDepth      = 6
	resignThreshold = Value(-950)
	dangerDropCP    = Value(50)
)

// Limits bounds how long StartSearch is allowed to run.
type Limits struct {
	MaxDepth int
	MaxTime  time.Duration
}

// Outcome is everything the root driver reports back about one search.
type Outcome struct {
	BestMove   Move
	PonderMove Move
	Score      Value
	Depth      int
	Nodes      uint64
	Resign     bool
	Mate       bool
}

// IterationReport is emitted once per completed (or danger-extended)
// iteration, for a caller that wants to print progress the way the
// protocol's "post" mode does.
type IterationReport struct {
	Depth   int
	Score   Value
	Elapsed time.Duration
	Nodes   uint64
	PV      []Move
	Danger  bool
}

// Book resolves a position hash to a pre-chosen move; satisfied by
// internal/openingbook.Book.
type Book interface {
	Lookup(hash Key) (Move, bool)
}

// StartSearch runs iterative deepening from the root: book probe, threat
// detection, root move shuffling, PV promotion across iterations, and the
// danger-extends-time escape hatch when the PV's value drops mid-search.
func (ctx *Context) StartSearch(book Book, limits Limits, onIteration func(IterationReport)) Outcome {
	b := ctx.Board
	ctx.StartTime = ctx.now()
	if limits.MaxTime > 0 {
		ctx.StopTime = ctx.StartTime.Add(limits.MaxTime)
	}
	ctx.RootPly = b.PlyCount()
	ctx.GlobalPV.Clear()

	var rootML movegen.MoveList
	inCheck := movegen.IsInCheck(b, b.SideToMove())
	if inCheck {
		ci := movegen.ComputeCheckInfo(b, b.SideToMove())
		movegen.GenerateEvasions(b, ctx.Ordering, 0, &rootML, ci)
	} else {
		movegen.GenerateMoves(b, ctx.Ordering, 0, &rootML)
	}
	filterLegalInPlace(b, &rootML)
	if rootML.Len() == 0 {
		if inCheck {
			return Outcome{Score: -ValueMate, Mate: true}
		}
		return Outcome{Score: 0, Mate: true}
	}
	if rootML.Len() == 1 {
		return Outcome{BestMove: rootML.At(0), Depth: 1}
	}

	if book != nil {
		if m, ok := book.Lookup(b.PosHash()); ok && moveInList(&rootML, m) {
			return Outcome{BestMove: m, Depth: 0}
		}
	}

	var threatHint Move
	if rootML.Len() >= threatThreshold {
		threatHint = ctx.shallowThreat(2)
	}

	shuffleRootMoves(ctx, &rootML, 2)

	maxDepth := limits.MaxDepth
	if maxDepth <= 0 || maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}

	var out Outcome
	var prevPV PVLine
	prevScore := Value(0)

	for d := startDepth; d <= maxDepth; d++ {
		if ctx.CheckTime() && !ctx.Danger {
			break
		}

		if prevPV.Len() > 0 {
			promoteToFront(&rootML, prevPV.Move(0))
		}

		var pv PVLine
		ctx.GlobalPV.CopyFrom(&prevPV)
		score := ctx.NegaScout(true, ctx.RootPly, &pv, &rootML, d, -ValueInfinite, ValueInfinite, NodePV, inCheck, threatHint, true)

		ctx.Danger = d > 1 && prevScore-score > dangerDropCP

		if pv.Len() > 0 && !ctx.TimeIsUp {
			prevPV.CopyFrom(&pv)
			prevScore = score
			out = Outcome{
				BestMove: pv.Move(0),
				Score:    score,
				Depth:    d,
				Nodes:    ctx.Nodes,
			}
			if pv.Len() > 1 {
				out.PonderMove = pv.Move(1)
			}
		}

		if onIteration != nil {
			moves := make([]Move, pv.Len())
			for i := 0; i < pv.Len(); i++ {
				moves[i] = pv.Move(i)
			}
			onIteration(IterationReport{
				Depth:   d,
				Score:   score,
				Elapsed: ctx.now().Sub(ctx.StartTime),
				Nodes:   ctx.Nodes,
				PV:      moves,
				Danger:  ctx.Danger,
			})
		}

		if score.IsMateScore() && d > futilDepth {
			out.Mate = true
			break
		}
		if ctx.TimeIsUp && !ctx.Danger {
			break
		}
	}

	if out.Score <= resignThreshold {
		out.Resign = true
	}
	return out
}

// now reads clockOverride when a test has set one, otherwise the wall
// clock; this keeps iteration timing deterministic in tests without
// threading a clock interface through every call.
func (ctx *Context) now() time.Time {
	if !ctx.clockOverride.IsZero() {
		return ctx.clockOverride
	}
	return time.Now()
}

// shallowThreat runs a shallow negamax on the current position and
// returns the first move of its PV, a move of the side to move, to seed
// threatHint ahead of the real search. It does not search the opponent's
// replies.
func (ctx *Context) shallowThreat(depth int) Move {
	var pv PVLine
	ctx.NegaScout(false, ctx.RootPly, &pv, nil, depth, -ValueInfinite, ValueInfinite, NodeCut, false, NoMove, false)
	if pv.Len() > 0 {
		return pv.Move(0)
	}
	return NoMove
}

// shuffleRootMoves reorders ml in place by a shallow (depth+1)-ply negamax
// score per move, descending.
func shuffleRootMoves(ctx *Context, ml *movegen.MoveList, depth int) {
	b := ctx.Board
	scores := make([]moveorder.Scored, 0, ml.Len())
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		b.Make(m)
		var childPV PVLine
		givesCheck := movegen.IsInCheck(b, b.SideToMove())
		s := -ctx.NegaScout(false, ctx.RootPly+1, &childPV, nil, depth, -ValueInfinite, ValueInfinite, NodeCut, givesCheck, NoMove, false)
		b.Unmake()
		scores = append(scores, moveorder.Scored{Move: m, Score: s})
	}
	moveorder.SortDescendingByScore(scores)
	for i, sc := range scores {
		ml.Set(i, sc.Move)
	}
}

func promoteToFront(ml *movegen.MoveList, m Move) {
	if m == NoMove {
		return
	}
	for i := 0; i < ml.Len(); i++ {
		if ml.At(i) == m {
			for j := i; j > 0; j-- {
				ml.Set(j, ml.At(j-1))
			}
			ml.Set(0, m)
			return
		}
	}
}

func moveInList(ml *movegen.MoveList, m Move) bool {
	for i := 0; i < ml.Len(); i++ {
		if ml.At(i) == m {
			return true
		}
	}
	return false
}

// filterLegalInPlace compacts ml down to moves that do not leave the
// mover's own king in check.
func filterLegalInPlace(b *board.Board, ml *movegen.MoveList) {
	mover := b.SideToMove()
	out := 0
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		b.Make(m)
		legal := !movegen.IsInCheck(b, mover)
		b.Unmake()
		if legal {
			ml.Set(out, m)
			out++
		}
	}
	ml.Truncate(out)
}
