//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package board

import . "github.com/ggeorgochess/chessengine/internal/types"

// special distinguishes the three move shapes unmake must reverse
// differently.
type special int

const (
	specialNormal special = iota
	specialCastle
	specialPromote
)

// moveStackEntry is one ply of the move stack. The four pre* fields are
// snapshots of the position BEFORE the move was applied, which is what
// unmake needs to restore in O(1); Make still computes the post-move
// hash/material incrementally move-by-move, it simply also remembers the
// pre-move values here so unmake never has to re-derive them by reversing
// XORs. postPosHash records the position hash after the move.
type moveStackEntry struct {
	move Move

	capturedColor Color
	capturedIdx   int8
	capturedType  PieceType
	captureSquare Square // differs from To() only for en-passant

	special special

	preMaterial Value
	prePosHash  Key
	prePawnHash Key
	preHalfmove int

	postPosHash Key
}

// statusStackEntry snapshots the flags that Make mutates in place, pushed
// before every move and popped on unmake.
type statusStackEntry struct {
	castleRights CastleRights
	epSquare     Square
}

// PlyCount returns the current move-stack depth (number of Make calls not
// yet Unmake'd since this Board was created or Reset).
func (b *Board) PlyCount() int { return b.ply }

// PositionHashAt returns the resulting position hash recorded after the
// move made at the given ply (0-based).
func (b *Board) PositionHashAt(ply int) Key { return b.moveStack[ply].postPosHash }

// MoveAt returns the move played at the given ply.
func (b *Board) MoveAt(ply int) Move { return b.moveStack[ply].move }

// WasIrreversible reports whether the move at the given ply was a pawn
// move or a capture, which resets the fifty-move counter and bounds
// repetition search.
func (b *Board) WasIrreversible(ply int) bool {
	e := b.moveStack[ply]
	return e.capturedColor != ColorNone || e.move.Flag() == FlagPawn || e.move.IsPromotion()
}
