//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package movegen

import (
	"github.com/ggeorgochess/chessengine/internal/board"
	. "github.com/ggeorgochess/chessengine/internal/types"
)

// GenerateEvasions always emits all legal king moves, and — when there is
// exactly one attacker — every other move whose destination lies in the
// block-or-capture set from ci. Double check yields king moves only. King
// moves are still only pseudo-legal (the caller filters via trial
// make/unmake, same as GenerateMoves).
func GenerateEvasions(b *board.Board, ot *OrderingTables, ply int, ml *MoveList, ci CheckInfo) {
	color := b.SideToMove()
	king := b.KingSquare(color)
	enemyKing := b.KingSquare(color.Other())

	for _, d := range KingOffsets {
		to := king + Square(d)
		target := b.PieceAt(to)
		if target == Fence {
			continue
		}
		if target == NoPiece {
			m := NewMove(king, to, FlagNormal, 0)
			m = m.WithOrderingKey(quietOrderingKey(ot, ply, m, King, enemyKing))
			ml.Add(m)
			continue
		}
		if target.ColorOf() != color {
			ml.Add(NewMove(king, to, FlagNormal, captureOrderingKey(target.TypeOf(), King)))
		}
	}

	if ci.NumAttackers() != 1 {
		return // double check: king moves only
	}

	allowed := make(map[Square]bool, len(ci.BlockSquares)+1)
	allowed[ci.Attackers[0]] = true
	for _, s := range ci.BlockSquares {
		allowed[s] = true
	}

	var all MoveList
	GenerateMoves(b, ot, ply, &all)
	for i := 0; i < all.Len(); i++ {
		m := all.At(i)
		if m.From() == king {
			continue // king moves already emitted above
		}
		if cheapGeometricReach(b, m, allowed) {
			ml.Add(m)
		}
	}
}

// cheapGeometricReach is a cheap geometric pre-filter: a move can only
// land on an allowed square, or (for en-passant) capture the checking
// pawn by removing it from the board without landing on its square.
func cheapGeometricReach(b *board.Board, m Move, allowed map[Square]bool) bool {
	if allowed[m.To()] {
		return true
	}
	if m.Flag() == FlagPawn && m.To() == b.EPSquare() {
		capturedSq := m.To() - 10
		if b.SideToMove() == Black {
			capturedSq = m.To() + 10
		}
		return allowed[capturedSq]
	}
	return false
}
