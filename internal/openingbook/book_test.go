//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package openingbook_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ggeorgochess/chessengine/internal/board"
	"github.com/ggeorgochess/chessengine/internal/movegen"
	"github.com/ggeorgochess/chessengine/internal/openingbook"
)

func TestInternalBookSuggestsTheOpeningMove(t *testing.T) {
	bk := openingbook.New()
	bk.LoadInternal()

	b := board.NewFromFEN(board.StartFEN)
	m, ok := bk.Lookup(b.PosHash())
	require.True(t, ok)
	require.Equal(t, "e2e4", m.String())
}

func TestLookupMissesOutOfBookPositions(t *testing.T) {
	bk := openingbook.New()
	bk.LoadInternal()

	b := board.NewFromFEN("8/8/4k3/8/8/4K3/8/8 w - - 0 1")
	_, ok := bk.Lookup(b.PosHash())
	require.False(t, ok)
}

func TestMissingFileFallsBackToInternalBook(t *testing.T) {
	bk := openingbook.New()
	err := bk.LoadFile("/nonexistent/path/to/a/book.txt")
	require.Error(t, err)

	b := board.NewFromFEN(board.StartFEN)
	_, ok := bk.Lookup(b.PosHash())
	require.True(t, ok, "a missing file should still leave the internal book loaded")
}

func TestRecordedLinesAreReplayableByParseUserMove(t *testing.T) {
	bk := openingbook.New()
	bk.LoadInternal()

	b := board.NewFromFEN(board.StartFEN)
	m, ok := bk.Lookup(b.PosHash())
	require.True(t, ok)

	parsed, ok := movegen.ParseUserMove(b, m.String())
	require.True(t, ok)
	require.Equal(t, m, parsed)
}
