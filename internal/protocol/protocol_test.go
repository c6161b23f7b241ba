//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package protocol_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ggeorgochess/chessengine/internal/protocol"
)

func TestForceModeAcceptsMovesWithoutReplying(t *testing.T) {
	var out strings.Builder
	e := protocol.New(&out, 4, 1)

	e.Run(strings.NewReader("force\ne2e4\ne7e5\nquit\n"))

	require.NotContains(t, out.String(), "Error", "legal moves fed in force mode should not error")
}

func TestUnknownCommandReportsError(t *testing.T) {
	var out strings.Builder
	e := protocol.New(&out, 4, 1)

	e.Run(strings.NewReader("force\nbananas\nquit\n"))

	require.Contains(t, out.String(), "Error (unknown command): bananas")
}

func TestProtoverAnswersFeatureLine(t *testing.T) {
	var out strings.Builder
	e := protocol.New(&out, 4, 1)

	e.Run(strings.NewReader("protover 2\nquit\n"))

	require.Contains(t, out.String(), "feature time=1 done=1")
}

func TestUndoRestoresPriorPosition(t *testing.T) {
	var out strings.Builder
	e := protocol.New(&out, 4, 1)

	e.Run(strings.NewReader("force\ne2e4\nundo\ne2e4\nquit\n"))

	require.NotContains(t, out.String(), "Error", "e2e4 should be legal again after undo")
}
