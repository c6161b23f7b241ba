//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package moveorder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ggeorgochess/chessengine/internal/moveorder"
	. "github.com/ggeorgochess/chessengine/internal/types"
)

func TestSortDescendingByScoreOrdersHighestFirst(t *testing.T) {
	scores := []moveorder.Scored{
		{Move: Move(1), Score: 10},
		{Move: Move(2), Score: 90},
		{Move: Move(3), Score: 50},
	}

	moveorder.SortDescendingByScore(scores)

	require.Equal(t, []Value{90, 50, 10}, []Value{scores[0].Score, scores[1].Score, scores[2].Score})
}

func TestSortDescendingByScoreIsStableOnTies(t *testing.T) {
	scores := []moveorder.Scored{
		{Move: Move(1), Score: 5},
		{Move: Move(2), Score: 5},
		{Move: Move(3), Score: 5},
	}

	moveorder.SortDescendingByScore(scores)

	require.Equal(t, []Move{Move(1), Move(2), Move(3)}, []Move{scores[0].Move, scores[1].Move, scores[2].Move})
}
