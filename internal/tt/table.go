//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package tt

import . "github.com/ggeorgochess/chessengine/internal/types"

// cluster is two entries sharing one index.
type cluster [2]Entry

// Table is a single N=2^k-cluster transposition table. The engine keeps
// two of these — one probed/stored at "our" plies, one at "opponent"
// plies — discriminated by ply parity, to avoid cross-contaminating bound
// information between asymmetric alpha/beta windows.
type Table struct {
	clusters []cluster
	mask     uint64
}

// NewTable allocates a table sized to the nearest power of two at or
// below sizeMB of memory; tables are allocated once at startup and live
// for the process lifetime.
func NewTable(sizeMB int) *Table {
	entrySize := 24 // approximate in-memory size per Entry incl. padding
	clusterSize := entrySize * 2
	numClusters := sizeMB * 1024 * 1024 / clusterSize
	k := 1
	for k*2 <= numClusters {
		k *= 2
	}
	if k < 1 {
		k = 1
	}
	return &Table{clusters: make([]cluster, k), mask: uint64(k - 1)}
}

func (t *Table) index(h Key) uint64 { return uint64(h) & t.mask }

// Probe scans both slots of the cluster for h's tag. It always returns the
// stored best move on a tag match (even if depth is insufficient); value
// and ok report a usable bound only when storedDepth >= depth, honoring
// the bound type, and — at PV nodes — only an EXACT bound.
func (t *Table) Probe(h Key, depth int, alpha, beta Value, isPV bool) (value Value, hashMove Move, cutoff bool) {
	c := &t.clusters[t.index(h)]
	tag := tagOf(h)
	for i := range c {
		e := &c[i]
		if e.Empty() || e.tag != tag {
			continue
		}
		hashMove = e.best
		if int(e.depth) < depth {
			continue
		}
		switch e.bound {
		case BoundExact:
			return e.value, hashMove, true
		case BoundLower:
			if !isPV && e.value >= beta {
				return e.value, hashMove, true
			}
		case BoundUpper:
			if !isPV && e.value <= alpha {
				return e.value, hashMove, true
			}
		}
	}
	return 0, hashMove, false
}

// Store writes into the shallower of the two slots, overwriting it
// unconditionally.
func (t *Table) Store(h Key, depth int, bound Bound, value Value, best Move) {
	c := &t.clusters[t.index(h)]
	tag := tagOf(h)
	slot := 0
	if c[1].depth < c[0].depth {
		slot = 1
	}
	// prefer an exact tag match over the shallowest-slot heuristic so a
	// re-search of the same position refines rather than evicts itself.
	for i := range c {
		if !c[i].Empty() && c[i].tag == tag {
			slot = i
			break
		}
	}
	c[slot] = Entry{tag: tag, depth: int8(depth), bound: bound, value: value, best: best}
}

// Clear zeroes every cluster (config-driven "new game" / "ucinewgame"
// reset).
func (t *Table) Clear() {
	for i := range t.clusters {
		t.clusters[i] = cluster{}
	}
}
