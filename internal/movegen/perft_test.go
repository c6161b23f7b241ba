//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package movegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ggeorgochess/chessengine/internal/board"
	"github.com/ggeorgochess/chessengine/internal/movegen"
)

// Perft node counts from the standard starting position, the canonical
// move-generator correctness check (https://www.chessprogramming.org/
// Perft_Results).
func TestStandardPerft(t *testing.T) {
	want := []uint64{1, 20, 400, 8902, 197281, 4865609}

	for depth, expected := range want {
		b := board.NewFromFEN(board.StartFEN)
		got := movegen.Perft(b, depth)
		assert.Equalf(t, expected, got, "perft(%d)", depth)
	}
}

// Kiwipete, a position chosen to exercise castling, en passant and
// promotions heavily.
func TestKiwipetePerft(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	want := []uint64{1, 48, 2039, 97862}

	for depth, expected := range want {
		b := board.NewFromFEN(fen)
		got := movegen.Perft(b, depth)
		assert.Equalf(t, expected, got, "perft(%d)", depth)
	}
}

func TestPerftRestoresBoardExactly(t *testing.T) {
	b := board.NewFromFEN(board.StartFEN)
	hashBefore := b.PosHash()
	materialBefore := b.Material()

	movegen.Perft(b, 4)

	assert.Equal(t, hashBefore, b.PosHash())
	assert.Equal(t, materialBefore, b.Material())
	assert.Equal(t, 0, b.PlyCount())
}
