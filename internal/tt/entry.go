//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

// Package tt implements the two-table, two-slot-cluster transposition
// cache and the direct-mapped pawn-structure cache.
package tt

import . "github.com/ggeorgochess/chessengine/internal/types"

// Bound is the kind of value stored in a transposition entry.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundUpper // value <= alpha, a fail-low
	BoundLower // value >= beta, a fail-high
)

// Entry is one slot of a cluster: the upper 32 bits of the position hash,
// search depth, bound type, value and best move.
type Entry struct {
	tag   uint32
	depth int8
	bound Bound
	value Value
	best  Move
}

func tagOf(h Key) uint32 { return uint32(h >> 32) }

// Empty reports whether this slot has never been written.
func (e *Entry) Empty() bool { return e.bound == BoundNone && e.best == NoMove && e.depth == 0 }
