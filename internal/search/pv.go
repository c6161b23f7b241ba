//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package search

import . "github.com/ggeorgochess/chessengine/internal/types"

// PVLine is a fixed-capacity principal-variation buffer: no allocation on
// the hot path of collecting a line move by move as the tree unwinds.
type PVLine struct {
	moves [MaxDepth + 1]Move
	n     int
}

// Clear empties the line.
func (pv *PVLine) Clear() { pv.n = 0 }

// Len returns how many moves the line currently holds.
func (pv *PVLine) Len() int { return pv.n }

// Move returns the i-th move of the line.
func (pv *PVLine) Move(i int) Move {
	if i < 0 || i >= pv.n {
		return NoMove
	}
	return pv.moves[i]
}

// Set assembles this line as best followed by child's moves, the
// standard "collect the PV on the way back up" idiom.
func (pv *PVLine) Set(best Move, child *PVLine) {
	pv.moves[0] = best
	n := child.n
	if n > MaxDepth {
		n = MaxDepth
	}
	copy(pv.moves[1:], child.moves[:n])
	pv.n = n + 1
}

// CopyFrom replaces this line's contents with src's.
func (pv *PVLine) CopyFrom(src *PVLine) {
	pv.n = src.n
	copy(pv.moves[:], src.moves[:src.n])
}
