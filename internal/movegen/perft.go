//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package movegen

import "github.com/ggeorgochess/chessengine/internal/board"

// Perft counts leaf nodes at a fixed depth by brute-force full move
// generation and make/unmake, the standard move-generator correctness
// check.
func Perft(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	ot := NewOrderingTables()
	var ml MoveList
	mover := b.SideToMove()
	if IsInCheck(b, mover) {
		ci := ComputeCheckInfo(b, mover)
		GenerateEvasions(b, ot, 0, &ml, ci)
	} else {
		GenerateMoves(b, ot, 0, &ml)
	}

	var nodes uint64
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		b.Make(m)
		if !IsInCheck(b, mover) {
			nodes += Perft(b, depth-1)
		}
		b.Unmake()
	}
	return nodes
}
