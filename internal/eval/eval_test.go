//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package eval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ggeorgochess/chessengine/internal/board"
	"github.com/ggeorgochess/chessengine/internal/eval"
	"github.com/ggeorgochess/chessengine/internal/tt"
	. "github.com/ggeorgochess/chessengine/internal/types"
)

func newEvaluator() *eval.Evaluator {
	return eval.NewEvaluator(tt.NewPawnTable(1))
}

func TestStartPositionIsSymmetric(t *testing.T) {
	b := board.NewFromFEN(board.StartFEN)
	res := newEvaluator().Evaluate(b)
	require.Equal(t, Value(0), res.Score, "the starting position has no evaluable asymmetry")
	require.True(t, res.SufficientMating)
}

func TestLoneKingsAreAnImmediateDraw(t *testing.T) {
	b := board.NewFromFEN("8/8/4k3/8/8/4K3/8/8 w - - 0 1")
	res := newEvaluator().Evaluate(b)
	require.Equal(t, Value(0), res.Score)
	require.False(t, res.SufficientMating)
}

func TestExtraQueenIsWinningForWhite(t *testing.T) {
	b := board.NewFromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	res := newEvaluator().Evaluate(b)
	require.Greater(t, int(res.Score), 500, "a lone extra queen should score as decisively winning")
}

func TestBishopPairOutscoresTwoKnightsAllElseEqual(t *testing.T) {
	withBishops := board.NewFromFEN("4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1")
	withKnights := board.NewFromFEN("4k3/8/8/8/8/8/8/2N1KN2 w - - 0 1")
	ev := newEvaluator()
	bishopScore := ev.Evaluate(withBishops).Score
	knightScore := ev.Evaluate(withKnights).Score
	require.Greater(t, int(bishopScore), int(knightScore))
}

func TestEvaluationIsAntisymmetricUnderColorMirror(t *testing.T) {
	white := board.NewFromFEN("rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2")
	black := board.NewFromFEN("rnbqkb1r/pppp1ppp/5n2/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2")
	ev := newEvaluator()
	require.Equal(t, ev.Evaluate(white).Score, -ev.Evaluate(black).Score)
}
