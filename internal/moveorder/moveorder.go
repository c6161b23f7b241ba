//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

// Package moveorder holds generic move-ordering helpers shared by the
// root driver's shallow-negamax root shuffle, built on golang.org/x/exp/
// slices for the stable descending sort.
package moveorder

import (
	"golang.org/x/exp/slices"

	. "github.com/ggeorgochess/chessengine/internal/types"
)

// Scored pairs a move with a search score, the unit the root shuffle
// sorts on.
type Scored struct {
	Move  Move
	Score Value
}

// SortDescendingByScore stable-sorts scored moves highest-score-first, so
// moves tied on score keep their relative order from generation.
func SortDescendingByScore(moves []Scored) {
	slices.SortStableFunc(moves, func(a, b Scored) int {
		return int(b.Score) - int(a.Score)
	})
}
