//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package movegen

import (
	"github.com/ggeorgochess/chessengine/internal/board"
	. "github.com/ggeorgochess/chessengine/internal/types"
)

// IsSquareAttacked is the in-check oracle generalized to any square:
// probes knight offsets, pawn-capture squares, adjacent king squares,
// then the 4+4 sliding rays, stopping each ray at the first occupied
// square or the Fence sentinel.
func IsSquareAttacked(b *board.Board, sq Square, byColor Color) bool {
	for _, d := range KnightOffsets {
		p := b.PieceAt(sq + Square(d))
		if p.TypeOf() == Knight && p.ColorOf() == byColor {
			return true
		}
	}
	var pawnDirs [2]int
	if byColor == White {
		// white pawns attack upward (toward higher ranks); to find an
		// attacking white pawn we look one rank below (from sq's view).
		pawnDirs = [2]int{-9, -11}
	} else {
		pawnDirs = [2]int{9, 11}
	}
	for _, d := range pawnDirs {
		p := b.PieceAt(sq + Square(d))
		if p.TypeOf() == Pawn && p.ColorOf() == byColor {
			return true
		}
	}
	for _, d := range KingOffsets {
		p := b.PieceAt(sq + Square(d))
		if p.TypeOf() == King && p.ColorOf() == byColor {
			return true
		}
	}
	for _, d := range BishopDirs {
		if rayHitsAttacker(b, sq, d, byColor, Bishop, Queen) {
			return true
		}
	}
	for _, d := range RookDirs {
		if rayHitsAttacker(b, sq, d, byColor, Rook, Queen) {
			return true
		}
	}
	return false
}

func rayHitsAttacker(b *board.Board, from Square, dir int, byColor Color, types ...PieceType) bool {
	sq := from + Square(dir)
	for {
		p := b.PieceAt(sq)
		if p == Fence {
			return false
		}
		if p != NoPiece {
			if p.ColorOf() != byColor {
				return false
			}
			pt := p.TypeOf()
			for _, t := range types {
				if pt == t {
					return true
				}
			}
			return false
		}
		sq += Square(dir)
	}
}

// IsInCheck reports whether color's king currently sits on an attacked
// square.
func IsInCheck(b *board.Board, color Color) bool {
	return IsSquareAttacked(b, b.KingSquare(color), color.Other())
}

// CheckInfo is the richer variant IsInCheck's evasion-generation caller
// needs: every attacking square, plus every empty square lying between a
// single slider attacker and the king (the "block-or-capture" set).
type CheckInfo struct {
	Attackers    []Square
	BlockSquares []Square
}

// NumAttackers reports how many pieces currently check the king — 0, 1, or
// 2 (double check).
func (ci CheckInfo) NumAttackers() int { return len(ci.Attackers) }

// ComputeCheckInfo finds every attacker of color's king and, for slider
// attackers, every empty square between attacker and king.
func ComputeCheckInfo(b *board.Board, color Color) CheckInfo {
	king := b.KingSquare(color)
	by := color.Other()
	var ci CheckInfo

	for _, d := range KnightOffsets {
		sq := king + Square(d)
		p := b.PieceAt(sq)
		if p.TypeOf() == Knight && p.ColorOf() == by {
			ci.Attackers = append(ci.Attackers, sq)
		}
	}
	var pawnDirs [2]int
	if by == White {
		pawnDirs = [2]int{-9, -11}
	} else {
		pawnDirs = [2]int{9, 11}
	}
	for _, d := range pawnDirs {
		sq := king + Square(d)
		p := b.PieceAt(sq)
		if p.TypeOf() == Pawn && p.ColorOf() == by {
			ci.Attackers = append(ci.Attackers, sq)
		}
	}
	for _, d := range QueenDirs {
		wantBishop := d == -11 || d == -9 || d == 9 || d == 11
		sq := king + Square(d)
		for {
			p := b.PieceAt(sq)
			if p == Fence {
				break
			}
			if p != NoPiece {
				if p.ColorOf() == by {
					pt := p.TypeOf()
					if pt == Queen || (wantBishop && pt == Bishop) || (!wantBishop && pt == Rook) {
						ci.Attackers = append(ci.Attackers, sq)
						for b2 := king + Square(d); b2 != sq; b2 += Square(d) {
							ci.BlockSquares = append(ci.BlockSquares, b2)
						}
					}
				}
				break
			}
			sq += Square(d)
		}
	}
	return ci
}
