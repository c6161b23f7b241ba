//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package eval

import (
	"github.com/ggeorgochess/chessengine/internal/board"
	. "github.com/ggeorgochess/chessengine/internal/types"
)

const (
	notCastledPenalty = Value(-30)
	centralKingPenalty = Value(-15)
	shelterPawnBonus   = Value(10)
	holesPenalty       = Value(-16)
	fianchettoPenalty  = Value(-20)
)

func hasQueens(b *board.Board) bool {
	found := false
	for _, c := range [2]Color{White, Black} {
		b.ForEachPiece(c, func(_ int8, _ Square, pt PieceType) {
			if pt == Queen {
				found = true
			}
		})
	}
	return found
}

// kingSafety scores king shelter for color c from White's point of view
// (i.e. the return value is already signed for the side it evaluates).
func kingSafety(b *board.Board, c Color) Value {
	king := b.KingSquare(c)
	var v Value

	castled := b.CastleRights().Has(board.WhiteCastled)
	if c == Black {
		castled = b.CastleRights().Has(board.BlackCastled)
	}
	if !castled {
		v += notCastledPenalty
		if king.File() >= 2 && king.File() <= 5 {
			v += centralKingPenalty
		}
	} else {
		v += shelterScore(b, c, king)
	}

	if !hasQueens(b) {
		v /= 2
	}
	if c == Black {
		v = -v
	}
	return v
}

func shelterScore(b *board.Board, c Color, king Square) Value {
	var v Value
	pawnRank := Rank(1)
	dir := 1
	if c == Black {
		pawnRank = 6
		dir = -1
	}
	kingFile := king.File()
	bishopHome := NewSquare(kingFile, Rank(0))
	if c == Black {
		bishopHome = NewSquare(kingFile, 7)
	}
	hasFianchettoBishop := false
	for f := kingFile - 1; f <= kingFile+1; f++ {
		if f < 0 || f > 7 {
			v += holesPenalty
			continue
		}
		shelterSq := NewSquare(f, pawnRank)
		p := b.PieceAt(shelterSq)
		if p.TypeOf() == Pawn && p.ColorOf() == c {
			v += shelterPawnBonus
		} else {
			v += holesPenalty
		}
	}
	bp := b.PieceAt(bishopHome + Square(dir*9))
	if bp.TypeOf() == Bishop && bp.ColorOf() == c {
		hasFianchettoBishop = true
	}
	longDiagonalHeldByEnemy := enemyHoldsLongDiagonal(b, c, king)
	if !hasFianchettoBishop && longDiagonalHeldByEnemy {
		v += fianchettoPenalty
	}
	return v
}

func enemyHoldsLongDiagonal(b *board.Board, c Color, king Square) bool {
	found := false
	b.ForEachPiece(c.Other(), func(_ int8, sq Square, pt PieceType) {
		if (pt == Bishop || pt == Queen) && sq.File() == king.File() {
			found = true
		}
	})
	return found
}
