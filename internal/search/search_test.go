//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ggeorgochess/chessengine/internal/board"
	"github.com/ggeorgochess/chessengine/internal/search"
	"github.com/ggeorgochess/chessengine/internal/tt"
)

func newContext(fen string) (*search.Context, *board.Board) {
	b := board.NewFromFEN(fen)
	tables := tt.NewTables(4, 1)
	return search.NewContext(b, tables), b
}

// Back-rank mate in one: Ra8#.
func TestFindsMateInOne(t *testing.T) {
	ctx, _ := newContext("6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	out := ctx.StartSearch(nil, search.Limits{MaxDepth: 6, MaxTime: 2 * time.Second}, nil)
	require.NotEqual(t, search.Outcome{}.BestMove, out.BestMove)
	require.True(t, out.Score.IsMateScore(), "expected a mate score, got %d", out.Score)
}

// A lone king facing a lone king has no legal improving move and is an
// immediate draw by insufficient material; the driver must not crash
// trying to search it and must not claim a mate score.
func TestInsufficientMaterialIsQuiet(t *testing.T) {
	ctx, _ := newContext("8/8/4k3/8/8/4K3/8/8 w - - 0 1")
	out := ctx.StartSearch(nil, search.Limits{MaxDepth: 4, MaxTime: time.Second}, nil)
	require.False(t, out.Score.IsMateScore())
}

func TestQuiescenceIsStableUnderRepeatedCalls(t *testing.T) {
	ctx, _ := newContext(board.StartFEN)
	v1 := ctx.Quiescence(-10000, 10000, 0)
	v2 := ctx.Quiescence(-10000, 10000, 0)
	require.Equal(t, v1, v2)
}
