//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package board

// IsThreefoldRepetition reports whether the current position has occurred
// at least three times among the positions reachable without crossing an
// irreversible move. The hash already encodes side-to-move, so a hash
// match implies the same side is to move.
func (b *Board) IsThreefoldRepetition() bool {
	count := 1
	for i := b.ply - 1; i >= 0; i-- {
		if b.WasIrreversible(i) {
			break
		}
		if b.moveStack[i].prePosHash == b.posHash {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

// RepeatsEarlierPosition is the cheaper draw-by-repetition short-circuit
// NegaScout uses mid-search: true as soon as any
// earlier same-side position in the move stack matches, without requiring
// a third occurrence, since a single repetition inside the search tree
// already signals "this branch is going in circles".
func (b *Board) RepeatsEarlierPosition() bool {
	for i := b.ply - 1; i >= 0; i-- {
		if b.WasIrreversible(i) {
			break
		}
		if b.moveStack[i].prePosHash == b.posHash {
			return true
		}
	}
	return false
}

// IsFiftyMoveDraw reports the 100-half-move (fifty full move) rule.
func (b *Board) IsFiftyMoveDraw() bool { return b.halfmoveClock >= 100 }
