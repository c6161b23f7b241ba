//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package posfile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ggeorgochess/chessengine/internal/board"
	"github.com/ggeorgochess/chessengine/internal/posfile"
	. "github.com/ggeorgochess/chessengine/internal/types"
)

// Fatal parse errors call os.Exit, so this suite only exercises
// well-formed bodies; malformed-input handling is authoring-time, not a
// runtime path worth testing in-process.
func TestParseBuildsStartingArrayFromExplicitPlacement(t *testing.T) {
	body := `
white: Ra1, Nb1, Bc1, Qd1, Ke1, Bf1, Ng1, Rh1, Pa2, Pb2, Pc2, Pd2, Pe2, Pf2, Pg2, Ph2
black: Ra8, Nb8, Bc8, Qd8, Ke8, Bf8, Ng8, Rh8, Pa7, Pb7, Pc7, Pd7, Pe7, Pf7, Pg7, Ph7
`
	b := posfile.Parse(body)

	require.Equal(t, WhiteRook, b.PieceAt(SquareFromString("a1")))
	require.Equal(t, BlackKing, b.PieceAt(SquareFromString("e8")))
	require.True(t, b.IsEmpty(SquareFromString("e4")))
	require.True(t, b.CastleRights().Has(board.WhiteOO))
}

func TestParseDetectsCastleRightsFromHomeSquares(t *testing.T) {
	body := `
white: Ke1, Rh1, Pa2
black: Ke8, Ra8, Pa7
`
	b := posfile.Parse(body)

	require.True(t, b.CastleRights().Has(board.WhiteOO))
	require.False(t, b.CastleRights().Has(board.WhiteOOO))
	require.False(t, b.CastleRights().Has(board.BlackOO))
	require.True(t, b.CastleRights().Has(board.BlackOOO))
}
