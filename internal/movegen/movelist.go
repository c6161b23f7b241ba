//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

// Package movegen implements pseudo-legal move generation, the in-check
// oracle, check-info, and check-evasion generation.
package movegen

import (
	"sort"

	. "github.com/ggeorgochess/chessengine/internal/types"
)

// MoveList is a fixed-capacity move buffer, replacing a growable slice so
// hot generation loops never allocate.
type MoveList struct {
	moves [MaxMoves]Move
	n     int
}

// Reset empties the list for reuse.
func (ml *MoveList) Reset() { ml.n = 0 }

// Len returns the number of moves currently held.
func (ml *MoveList) Len() int { return ml.n }

// At returns the move at index i.
func (ml *MoveList) At(i int) Move { return ml.moves[i] }

// Set overwrites the move at index i, used to zero out moves internal
// iterative deepening discovers are illegal.
func (ml *MoveList) Set(i int, m Move) { ml.moves[i] = m }

// Add appends a move if there is room.
func (ml *MoveList) Add(m Move) {
	if ml.n < MaxMoves {
		ml.moves[ml.n] = m
		ml.n++
	}
}

// Truncate shrinks the list to its first n moves, used after compacting
// out illegal moves in place.
func (ml *MoveList) Truncate(n int) {
	if n < ml.n {
		ml.n = n
	}
}

// SortDescending stable-sorts by ordering key, highest first: a final
// stable sort descending by key runs before iteration at every node.
func (ml *MoveList) SortDescending() {
	sort.SliceStable(ml.moves[:ml.n], func(i, j int) bool {
		return ml.moves[i].OrderingKey() > ml.moves[j].OrderingKey()
	})
}

// MovePlies bounds the per-ply killer table: the search recursion depth
// bound, rounded up with headroom for quiescence plies.
const MovePlies = MaxDepth + 80

// OrderingTables is the killer/history state move generation consults
// when assigning non-capture ordering keys. It lives here, not in package
// search, so movegen has no dependency on search while search still owns
// and mutates the tables.
type OrderingTables struct {
	Killer0 [MovePlies]Move
	Killer1 [MovePlies]Move
	// History is indexed [piece type][to-square 0..63] and only ever holds
	// values < 0, clamping to strictly negative values so the ordering
	// key stays in the negative band used by non-captures.
	History [PieceTypeLength][64]int
}

// NewOrderingTables returns a zero-valued table set; history starts at 0
// which callers must clamp to -MaxDepth on first touch.
func NewOrderingTables() *OrderingTables { return &OrderingTables{} }

// RecordKiller pushes m into the killer slots for ply: killer1 <-
// killer0, killer0 <- m.
func (ot *OrderingTables) RecordKiller(ply int, m Move) {
	if ot.Killer0[ply] == m {
		return
	}
	ot.Killer1[ply] = ot.Killer0[ply]
	ot.Killer0[ply] = m
}

// RecordHistory increments the history score for a quiet move that raised
// alpha without a cutoff.
func (ot *OrderingTables) RecordHistory(pt PieceType, to Square, depth int) {
	h := &ot.History[pt][to.Index64()]
	if *h == 0 {
		*h = -MaxDepth
	}
	*h += depth
	if *h >= 0 {
		*h = -1
	}
}
