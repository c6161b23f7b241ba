//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package search

import (
	"github.com/ggeorgochess/chessengine/internal/movegen"
	"github.com/ggeorgochess/chessengine/internal/tt"
	. "github.com/ggeorgochess/chessengine/internal/types"
)

// reverseFutilityMargin and futilityMargin are indexed by remaining depth
// (0..3); both are only consulted below depth 4.
var reverseFutilityMargin = [4]Value{0, 300, 550, 900}
var futilityMargin = [4]Value{0, 300, 550, 900}

const (
	nullMoveBaseReduction = 2
	nullMoveDeepReduction = 3
	nullMoveBaseDepth     = 2

	// pvMatchKey/hashMatchKey/threatMatchKey are the late-move-generation
	// ordering overrides, ranked above every generator-assigned key
	// (captures top out near 6<<4=96, castling keys are 100/90).
	pvMatchKey     = 127
	hashMatchKey   = 126
	threatMatchKey = 110
)

// NegaScout is the interior search routine: NegaScout/PVS with TT
// probing, reverse futility and null-move pruning, late move generation
// with PV/hash/threat ordering overrides, internal iterative deepening,
// and per-move futility pruning and late move reductions in the main
// loop.
func (ctx *Context) NegaScout(canNull bool, ply int, pv *PVLine, preset *movegen.MoveList, depth int, alpha, beta Value, nodeType NodeType, inCheck bool, threatHint Move, followingPV bool) Value {
	pv.Clear()

	if depth <= 0 {
		return ctx.Quiescence(alpha, beta, ply)
	}

	ctx.Nodes++
	b := ctx.Board
	white := b.SideToMove() == White
	distanceFromRoot := ply - ctx.RootPly
	origAlpha := alpha

	if ply > 0 && b.RepeatsEarlierPosition() {
		return 0
	}
	if b.IsFiftyMoveDraw() {
		return 0
	}

	table := ctx.Tables.For(distanceFromRoot)
	ttVal, hashMove, ttCutoff := table.Probe(b.PosHash(), depth, alpha, beta, nodeType == NodePV)
	if ttCutoff && (nodeType != NodePV || distanceFromRoot > 1) {
		return ttVal
	}

	res := ctx.Eval.Evaluate(b)
	staticEval := sideScore(res.Score, white)

	sufficientMaterial := res.SufficientMating

	if nodeType == NodeCut && !inCheck && sufficientMaterial && depth < 4 {
		if staticEval-reverseFutilityMargin[depth] >= beta {
			return staticEval
		}
	}

	var nullReplyThreat Move
	if canNull && !inCheck && depth > nullMoveBaseDepth && sideMaterialSufficesForNull(b, white) {
		r := nullMoveBaseReduction
		if depth > 6 {
			r = nullMoveDeepReduction
		}
		nullScore, reply := ctx.searchNullMove(ply, depth, r, alpha, beta)
		if nullScore >= beta {
			return nullScore
		}
		nullReplyThreat = reply
	}

	var ml movegen.MoveList
	if preset != nil && preset.Len() > 0 {
		ml = *preset
	} else if inCheck {
		ci := movegen.ComputeCheckInfo(b, b.SideToMove())
		movegen.GenerateEvasions(b, ctx.Ordering, ply, &ml, ci)
	} else {
		movegen.GenerateMoves(b, ctx.Ordering, ply, &ml)
	}

	pvMove := NoMove
	if followingPV && distanceFromRoot-1 >= 0 && distanceFromRoot-1 < ctx.GlobalPV.Len() {
		pvMove = ctx.GlobalPV.Move(distanceFromRoot - 1)
	}
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		switch {
		case pvMove != NoMove && m == pvMove:
			m = m.WithOrderingKey(pvMatchKey)
		case hashMove != NoMove && m == hashMove:
			m = m.WithOrderingKey(hashMatchKey)
		case threatHint != NoMove && m == threatHint:
			m = m.WithOrderingKey(threatMatchKey)
		}
		ml.Set(i, m)
	}
	ml.SortDescending()

	if distanceFromRoot > 1 && !inCheck && pvMove == NoMove && hashMove == NoMove && depth > 5 {
		if legalMoveExists(ctx, &ml) {
			var iidPV PVLine
			ctx.NegaScout(false, ply, &iidPV, &ml, depth/3, alpha, beta, NodeCut, inCheck, NoMove, false)
			if iidPV.Len() > 0 {
				best := iidPV.Move(0)
				for i := 0; i < ml.Len(); i++ {
					if ml.At(i) == best {
						ml.Set(i, best.WithOrderingKey(hashMatchKey))
						break
					}
				}
				ml.SortDescending()
			}
		} else {
			if inCheck {
				return -ValueMate + Value(distanceFromRoot)
			}
			return 0
		}
	}

	legalMoves := 0
	bestScore := -ValueInfinite
	bestMove := NoMove
	var childPV PVLine

	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m == NoMove {
			continue
		}

		if ctx.CheckTime() {
			break
		}

		isCapture := capturedPieceValue(b, m) > 0 || m.IsPromotion()

		b.Make(m)
		if movegen.IsInCheck(b, b.SideToMove().Other()) {
			b.Unmake()
			continue
		}
		legalMoves++

		if b.RepeatsEarlierPosition() {
			b.Unmake()
			if 0 > bestScore {
				bestScore = 0
				bestMove = m
			}
			continue
		}

		givesCheck := movegen.IsInCheck(b, b.SideToMove())
		isQuiet := !isCapture

		if nodeType == NodeCut && !inCheck && isQuiet && depth < 4 {
			if staticEval+futilityMargin[depth] < alpha {
				b.Unmake()
				continue
			}
		}

		childDepth := depth - 1
		if givesCheck {
			childDepth = depth
		}

		var score Value
		if legalMoves == 1 {
			score = -ctx.NegaScout(true, ply+1, &childPV, nil, childDepth, -beta, -alpha, NodePV, givesCheck, nullReplyThreat, followingPV && m == pvMove)
		} else {
			reduced := childDepth
			doLMR := depth > 4 && legalMoves >= 4 && nodeType == NodeCut && isQuiet && !inCheck && !givesCheck
			if doLMR {
				reduced = childDepth - 2
				if reduced < 1 {
					reduced = 1
				}
			}
			score = -ctx.NegaScout(true, ply+1, &childPV, nil, reduced, -alpha-1, -alpha, NodeCut, givesCheck, nullReplyThreat, false)
			if doLMR && score > alpha {
				score = -ctx.NegaScout(true, ply+1, &childPV, nil, childDepth, -alpha-1, -alpha, NodeCut, givesCheck, nullReplyThreat, false)
			}
			if score > alpha && score < beta {
				score = -ctx.NegaScout(true, ply+1, &childPV, nil, childDepth, -beta, -alpha, NodePV, givesCheck, nullReplyThreat, false)
			}
		}
		b.Unmake()

		if score > bestScore {
			bestScore = score
			bestMove = m
		}

		if score > alpha {
			alpha = score
			pv.Set(m, &childPV)
			if isQuiet && alpha < beta {
				ctx.Ordering.RecordHistory(pieceTypeOf(b, m), m.To(), depth)
			}
		}

		if alpha >= beta {
			if isQuiet {
				ctx.Ordering.RecordKiller(ply, m)
			}
			table.Store(b.PosHash(), depth, tt.BoundLower, bestScore, bestMove)
			return bestScore
		}

		if ctx.TimeIsUp {
			break
		}
	}

	if legalMoves == 0 {
		if inCheck {
			return -ValueMate + Value(distanceFromRoot)
		}
		return 0
	}

	bound := tt.BoundUpper
	if alpha > origAlpha {
		bound = tt.BoundExact
	}
	storedBest := bestMove
	if bound == tt.BoundUpper {
		storedBest = NoMove
	}
	table.Store(b.PosHash(), depth, bound, bestScore, storedBest)

	return bestScore
}

// searchNullMove performs the adaptive null-move probe: give the
// opponent a free move (flip side to move without making a move) and
// search at reduced depth. The pass is Board.MakeNull, undone by
// Board.UnmakeNull with the saved en-passant square.
func (ctx *Context) searchNullMove(ply, depth, r int, alpha, beta Value) (Value, Move) {
	b := ctx.Board
	savedEP := b.EPSquare()
	b.MakeNull()

	var childPV PVLine
	score := -ctx.NegaScout(false, ply+1, &childPV, nil, depth-1-r, -beta, -beta+1, NodeCut, false, NoMove, false)

	b.UnmakeNull(savedEP)

	reply := NoMove
	if childPV.Len() > 0 {
		reply = childPV.Move(0)
	}
	return score, reply
}

func sideMaterialSufficesForNull(b interface {
	Material() Value
}, white bool) bool {
	m := b.Material()
	if !white {
		m = -m
	}
	return m > Value(5*100)
}

func pieceTypeOf(b interface {
	PieceAt(Square) Piece
}, m Move) PieceType {
	return b.PieceAt(m.From()).TypeOf()
}

// legalMoveExists probes ml for at least one move that does not leave the
// mover's own king in check, used by internal iterative deepening's
// checkmate/stalemate short-circuit. Illegal moves found along the way
// are zeroed in place so the caller never re-considers them.
func legalMoveExists(ctx *Context, ml *movegen.MoveList) bool {
	b := ctx.Board
	mover := b.SideToMove()
	found := false
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m == NoMove {
			continue
		}
		b.Make(m)
		legal := !movegen.IsInCheck(b, mover)
		b.Unmake()
		if legal {
			found = true
		} else {
			ml.Set(i, NoMove)
		}
	}
	return found
}
