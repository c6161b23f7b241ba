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

var userMoveOrdering = NewOrderingTables()

// ParseUserMove resolves a "<from><to>[promo]" coordinate-notation token
// (e.g. "e2e4", "e7e8q") against b's legal moves, the shared entry point
// for both the opening book loader and the protocol front-end's move
// input so neither duplicates move generation or legality checking.
func ParseUserMove(b *board.Board, tok string) (Move, bool) {
	if len(tok) < 4 {
		return NoMove, false
	}
	from := SquareFromString(tok[0:2])
	to := SquareFromString(tok[2:4])
	if !from.Valid() || !to.Valid() {
		return NoMove, false
	}
	promo := NoPieceType
	if len(tok) >= 5 {
		switch tok[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		}
	}

	var ml MoveList
	inCheck := IsInCheck(b, b.SideToMove())
	if inCheck {
		ci := ComputeCheckInfo(b, b.SideToMove())
		GenerateEvasions(b, userMoveOrdering, 0, &ml, ci)
	} else {
		GenerateMoves(b, userMoveOrdering, 0, &ml)
	}

	mover := b.SideToMove()
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if promo != NoPieceType && m.Flag().PromotionPiece() != promo {
			continue
		}
		if m.IsPromotion() && promo == NoPieceType {
			continue
		}
		b.Make(m)
		legal := !IsInCheck(b, mover)
		b.Unmake()
		if legal {
			return m, true
		}
	}
	return NoMove, false
}
