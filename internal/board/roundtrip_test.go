//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package board_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ggeorgochess/chessengine/internal/board"
	"github.com/ggeorgochess/chessengine/internal/movegen"
	. "github.com/ggeorgochess/chessengine/internal/types"
)

// snapshot records a board's (hash, material, ply) so a position can be
// compared against itself after moves are unwound.
type snapshot struct {
	hash     Key
	material Value
	ply      int
}

func snap(b *board.Board) snapshot {
	return snapshot{hash: b.PosHash(), material: b.Material(), ply: b.PlyCount()}
}

func TestMakeUnmakeRestoresExactly(t *testing.T) {
	b := board.NewFromFEN(board.StartFEN)
	line := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6"}

	var snaps []snapshot
	for _, tok := range line {
		snaps = append(snaps, snap(b))
		m, ok := movegen.ParseUserMove(b, tok)
		require.Truef(t, ok, "move %s should be legal", tok)
		b.Make(m)
	}

	for i := len(line) - 1; i >= 0; i-- {
		b.Unmake()
		got := snap(b)
		require.Equal(t, snaps[i], got, "mismatch unwinding move %d (%s)", i, line[i])
	}
}

func TestEnPassantCaptureAndUnmake(t *testing.T) {
	b := board.NewFromFEN(board.StartFEN)
	for _, tok := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		m, ok := movegen.ParseUserMove(b, tok)
		require.True(t, ok)
		b.Make(m)
	}
	require.True(t, b.EPSquare().Valid(), "en passant square should be set after double pawn push")

	m, ok := movegen.ParseUserMove(b, "e5d6")
	require.True(t, ok, "en passant capture should be legal")
	b.Make(m)
	require.True(t, b.IsEmpty(SquareFromString("d5")), "captured pawn should be removed")

	b.Unmake()
	require.False(t, b.IsEmpty(SquareFromString("d5")), "unmake should restore the captured pawn")
}

func TestCastlingRightsLostAfterRookCapture(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	b := board.NewFromFEN(fen)
	require.True(t, b.CastleRights().Has(board.WhiteOO))
	require.True(t, b.CastleRights().Has(board.BlackOO))

	m, ok := movegen.ParseUserMove(b, "a1a8")
	require.True(t, ok)
	b.Make(m)

	require.False(t, b.CastleRights().Has(board.WhiteOOO))
	require.False(t, b.CastleRights().Has(board.BlackOOO))

	b.Unmake()
	require.True(t, b.CastleRights().Has(board.WhiteOOO))
	require.True(t, b.CastleRights().Has(board.BlackOOO))
}

func TestThreefoldRepetition(t *testing.T) {
	b := board.NewFromFEN(board.StartFEN)
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}
	for _, tok := range shuffle {
		m, ok := movegen.ParseUserMove(b, tok)
		require.True(t, ok)
		b.Make(m)
	}
	require.True(t, b.IsThreefoldRepetition())
}
