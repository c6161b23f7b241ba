//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package board

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ggeorgochess/chessengine/internal/movegen"
)

// Recomputing both hashes from scratch must always agree with the
// incrementally maintained ones, at every point along a line of moves and
// after unwinding it, including castling and en-passant capture to
// exercise every XOR path make/unmake touch.
func TestIncrementalHashMatchesFromScratch(t *testing.T) {
	b := NewFromFEN(StartFEN)
	line := []string{"e2e4", "c7c5", "g1f3", "d7d6", "f1b5", "b8c6", "e1g1", "a7a6", "b5c6", "b7c6"}

	check := func(label string) {
		wantPos, wantPawn := b.posHash, b.pawnHash
		b.computeHashesFromScratch()
		require.Equal(t, wantPos, b.posHash, "%s: position hash diverged from incremental value", label)
		require.Equal(t, wantPawn, b.pawnHash, "%s: pawn hash diverged from incremental value", label)
	}

	check("start position")
	for _, tok := range line {
		m, ok := movegen.ParseUserMove(b, tok)
		require.Truef(t, ok, "move %s should be legal", tok)
		b.Make(m)
		check("after " + tok)
	}
	for i := len(line) - 1; i >= 0; i-- {
		b.Unmake()
		check("after unmaking " + line[i])
	}
}

func TestZobristTablesAreDeterministic(t *testing.T) {
	a := NewFromFEN(StartFEN)
	b := NewFromFEN(StartFEN)
	require.Equal(t, a.posHash, b.posHash)
	require.Equal(t, a.pawnHash, b.pawnHash)
}
