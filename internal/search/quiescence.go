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
	. "github.com/ggeorgochess/chessengine/internal/types"
)

// deltaMargin is the fixed per-move slack quiescence gives a capture that
// still looks too far behind to matter.
const deltaMargin = 200

// Quiescence explores only captures and promotions from ply until the
// position is quiet, returning max(stand_pat, best capture line). It is
// the leaf evaluation every NegaScout node at depth 0 delegates to.
func (ctx *Context) Quiescence(alpha, beta Value, ply int) Value {
	ctx.Nodes++

	b := ctx.Board
	white := b.SideToMove() == White

	if ply-ctx.RootPly > MaxDepth {
		res := ctx.Eval.Evaluate(b)
		return sideScore(res.Score, white)
	}

	res := ctx.Eval.Evaluate(b)
	standPat := sideScore(res.Score, white) - Value(ply-ctx.RootPly)

	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	delta := QueenValue + PawnValue
	if b.PlyCount() > 0 && b.MoveAt(b.PlyCount()-1).IsPromotion() {
		delta *= 2
	}
	if standPat+delta < alpha {
		return alpha
	}

	var ml movegen.MoveList
	movegen.GenerateCaptures(b, &ml)

	moverColor := b.SideToMove()
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)

		capturedValue := capturedPieceValue(b, m)
		if standPat+capturedValue+deltaMargin < alpha {
			continue
		}

		b.Make(m)
		if movegen.IsInCheck(b, moverColor) {
			b.Unmake()
			continue
		}

		score := -ctx.Quiescence(-beta, -alpha, ply+1)
		b.Unmake()

		if ctx.CheckTime() {
			return alpha
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// capturedPieceValue looks up the material value a move captures,
// accounting for en passant, before the move has been made.
func capturedPieceValue(b interface {
	PieceAt(Square) Piece
	EPSquare() Square
}, m Move) Value {
	target := b.PieceAt(m.To())
	if target != NoPiece && target != Fence {
		return PieceValue(target.TypeOf())
	}
	if m.Flag() == FlagPawn && m.To() == b.EPSquare() {
		return PawnValue
	}
	return 0
}
