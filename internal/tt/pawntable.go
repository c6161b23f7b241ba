//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package tt

import . "github.com/ggeorgochess/chessengine/internal/types"

// pawnEntry is a single direct-mapped slot: {pawn_hash, value}.
type pawnEntry struct {
	key   Key
	value Value
	valid bool
}

// PawnTable is a replace-always, direct-mapped cache of fully derived
// pawn-structure scores (isolani penalties plus per-pawn passed-pawn
// bonuses aggregated over both sides).
type PawnTable struct {
	entries []pawnEntry
	mask    uint64
}

// NewPawnTable allocates sizeMB worth of single-slot entries.
func NewPawnTable(sizeMB int) *PawnTable {
	entrySize := 16
	n := sizeMB * 1024 * 1024 / entrySize
	k := 1
	for k*2 <= n {
		k *= 2
	}
	if k < 1 {
		k = 1
	}
	return &PawnTable{entries: make([]pawnEntry, k), mask: uint64(k - 1)}
}

// Probe returns the cached pawn score for h, if present.
func (t *PawnTable) Probe(h Key) (Value, bool) {
	e := &t.entries[uint64(h)&t.mask]
	if e.valid && e.key == h {
		return e.value, true
	}
	return 0, false
}

// Store replaces whatever was in h's slot.
func (t *PawnTable) Store(h Key, value Value) {
	t.entries[uint64(h)&t.mask] = pawnEntry{key: h, value: value, valid: true}
}

// Clear empties every slot.
func (t *PawnTable) Clear() {
	for i := range t.entries {
		t.entries[i] = pawnEntry{}
	}
}
