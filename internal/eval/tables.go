//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

// Package eval implements the static evaluator: material, mobility,
// piece-square bonuses, pawn structure, king safety and endgame
// specialization, returned as a single centipawn score from White's
// viewpoint.
package eval

import . "github.com/ggeorgochess/chessengine/internal/types"

// Piece-square tables, one entry per 0..63 index with rank 0 = a1. Values
// are applied for White directly and mirrored (63-index) for Black.
var (
	pawnPST = [64]Value{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -30, -30, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 30, 30, 0, 0, 0,
		5, 5, 10, 30, 30, 10, 5, 5,
		0, 5, 5, 5, 5, 5, 5, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	knightPST = [64]Value{
		-50, -25, -20, -30, -30, -20, -25, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}
	knightCentralBonus = [64]Value{}
)

func init() {
	for sq := 0; sq < 64; sq++ {
		f, r := sq%8, sq/8
		df, dr := f-3, r-3
		if df < 0 {
			df = -df - 1
		}
		if dr < 0 {
			dr = -dr - 1
		}
		dist := df + dr
		knightCentralBonus[sq] = Value(6 - dist)
	}
}

func pst(table *[64]Value, c Color, sq Square) Value {
	idx := sq.Index64()
	if c == Black {
		idx = 63 - idx
	}
	return table[idx]
}
