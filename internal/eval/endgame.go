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

// cornerDriveTable drives a losing king toward the rim/corner; centralized
// squares score lowest, corners highest, using a 4-band table
// (centralized / partially / partial-edge / edge).
var cornerDriveTable = [64]Value{}

func init() {
	for sq := 0; sq < 64; sq++ {
		f, r := sq%8, sq/8
		fileDist := min(f, 7-f)
		rankDist := min(r, 7-r)
		edge := min(fileDist, rankDist)
		switch edge {
		case 0:
			cornerDriveTable[sq] = 40
		case 1:
			cornerDriveTable[sq] = 25
		case 2:
			cornerDriveTable[sq] = 10
		default:
			cornerDriveTable[sq] = 0
		}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// darkCornerTable/lightCornerTable are the K+B+N "good corner" triangles:
// the defending king must be driven to the corner matching the bishop's
// square color.
var darkCornerTable = [64]Value{}
var lightCornerTable = [64]Value{}

func init() {
	// a1/h8 are dark squares, a8/h1 are light squares on a standard board.
	for sq := 0; sq < 64; sq++ {
		f, r := sq%8, sq/8
		distA1 := f + r
		distH1 := (7 - f) + r
		distA8 := f + (7 - r)
		distH8 := (7 - f) + (7 - r)
		dDark := min(distA1, distH8)
		dLight := min(distA8, distH1)
		darkCornerTable[sq] = Value(14 - dDark)
		lightCornerTable[sq] = Value(14 - dLight)
	}
}

func pieceCounts(b *board.Board, c Color) (minors, rooks, queens, knights, bishops int, bishopSquareParity []int) {
	b.ForEachPiece(c, func(_ int8, sq Square, pt PieceType) {
		switch pt {
		case Knight:
			minors++
			knights++
		case Bishop:
			minors++
			bishops++
			bishopSquareParity = append(bishopSquareParity, (int(sq.File())+int(sq.Rank()))%2)
		case Rook:
			rooks++
		case Queen:
			queens++
		}
	})
	return
}

// InsufficientMaterial reports draws by insufficient material: K v K,
// K+minor v K, K+B v K+B with same-colored bishops.
func InsufficientMaterial(b *board.Board) bool {
	wMinors, wRooks, wQueens, _, wBishops, wParity := pieceCounts(b, White)
	bMinors, bRooks, bQueens, _, bBishops, bParity := pieceCounts(b, Black)
	if wRooks > 0 || bRooks > 0 || wQueens > 0 || bQueens > 0 {
		return false
	}
	if hasAnyPawn(b) {
		return false
	}
	if wMinors == 0 && bMinors == 0 {
		return true
	}
	if wMinors == 1 && bMinors == 0 || wMinors == 0 && bMinors == 1 {
		return true
	}
	if wMinors == 1 && bMinors == 1 && wBishops == 1 && bBishops == 1 {
		return wParity[0] == bParity[0]
	}
	return false
}

func hasAnyPawn(b *board.Board) bool {
	found := false
	for _, c := range [2]Color{White, Black} {
		b.ForEachPiece(c, func(_ int8, _ Square, pt PieceType) {
			if pt == Pawn {
				found = true
			}
		})
	}
	return found
}

// endgameKingScore applies centralization/edge-drive for the losing side
// and the KBN good-corner table when material is low enough to matter.
func endgameKingScore(b *board.Board, strongColor Color) Value {
	weakKing := b.KingSquare(strongColor.Other())
	idx := weakKing.Index64()

	wMinors, _, _, wKnights, wBishops, wParity := pieceCounts(b, strongColor)

	// K+B+N vs K: drive toward the bishop-colored corner.
	if wMinors == 2 && wKnights == 1 && wBishops == 1 {
		if wParity[0] == 1 {
			return lightCornerTable[idx]
		}
		return darkCornerTable[idx]
	}
	return cornerDriveTable[idx]
}

// KingAndPawnVsKing returns (0, true) when the lone defending king already
// stops the pawn, signaling the caller should treat the position as a
// dead draw instead of scoring material.
func KingAndPawnVsKing(b *board.Board, pawnColor Color, pawnSq Square) (Value, bool) {
	defenderKing := b.KingSquare(pawnColor.Other())
	stopSquare := pawnSq
	promoRank := Rank(7)
	if pawnColor == Black {
		promoRank = 0
	}
	fileDist := int(defenderKing.File()) - int(stopSquare.File())
	if fileDist < 0 {
		fileDist = -fileDist
	}
	rankDist := int(defenderKing.Rank()) - int(promoRank)
	if rankDist < 0 {
		rankDist = -rankDist
	}
	if fileDist <= 1 && rankDist <= 2 {
		return 0, true
	}
	return 0, false
}
