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

// GenerateMoves emits every pseudo-legal quiet, capture, promotion and
// castling move for the side to move. Own-king-in-check legality (other
// than castling, which is pre-filtered) is the caller's responsibility
// via trial make/unmake.
func GenerateMoves(b *board.Board, ot *OrderingTables, ply int, ml *MoveList) {
	color := b.SideToMove()
	enemyKing := b.KingSquare(color.Other())
	b.ForEachPiece(color, func(idx int8, sq Square, pt PieceType) {
		switch pt {
		case Pawn:
			genPawnMoves(b, ot, ply, ml, color, sq, enemyKing, true, true)
		case Knight:
			genStepper(b, ot, ply, ml, color, sq, KnightOffsets[:], Knight, enemyKing, true)
		case King:
			genStepper(b, ot, ply, ml, color, sq, KingOffsets[:], King, enemyKing, true)
		case Bishop:
			genSlider(b, ot, ply, ml, color, sq, BishopDirs[:], Bishop, enemyKing, true)
		case Rook:
			genSlider(b, ot, ply, ml, color, sq, RookDirs[:], Rook, enemyKing, true)
		case Queen:
			genSlider(b, ot, ply, ml, color, sq, QueenDirs[:], Queen, enemyKing, true)
		}
	})
	GenerateCastles(b, ml)
}

// GenerateCaptures emits only captures and promotions, pre-sorted by
// MVV/LVA, for use by quiescence search.
func GenerateCaptures(b *board.Board, ml *MoveList) {
	color := b.SideToMove()
	enemyKing := b.KingSquare(color.Other())
	b.ForEachPiece(color, func(idx int8, sq Square, pt PieceType) {
		switch pt {
		case Pawn:
			genPawnMoves(b, nil, 0, ml, color, sq, enemyKing, false, true)
		case Knight:
			genStepper(b, nil, 0, ml, color, sq, KnightOffsets[:], Knight, enemyKing, false)
		case King:
			genStepper(b, nil, 0, ml, color, sq, KingOffsets[:], King, enemyKing, false)
		case Bishop:
			genSlider(b, nil, 0, ml, color, sq, BishopDirs[:], Bishop, enemyKing, false)
		case Rook:
			genSlider(b, nil, 0, ml, color, sq, RookDirs[:], Rook, enemyKing, false)
		case Queen:
			genSlider(b, nil, 0, ml, color, sq, QueenDirs[:], Queen, enemyKing, false)
		}
	})
	ml.SortDescending()
}

func genStepper(b *board.Board, ot *OrderingTables, ply int, ml *MoveList, color Color, from Square, offsets []int, pt PieceType, enemyKing Square, includeQuiets bool) {
	for _, d := range offsets {
		to := from + Square(d)
		target := b.PieceAt(to)
		if target == Fence {
			continue
		}
		if target == NoPiece {
			if includeQuiets {
				m := NewMove(from, to, FlagNormal, 0)
				m = m.WithOrderingKey(quietOrderingKey(ot, ply, m, pt, enemyKing))
				ml.Add(m)
			}
			continue
		}
		if target.ColorOf() != color {
			m := NewMove(from, to, FlagNormal, captureOrderingKey(target.TypeOf(), pt))
			ml.Add(m)
		}
	}
}

func genSlider(b *board.Board, ot *OrderingTables, ply int, ml *MoveList, color Color, from Square, dirs []int, pt PieceType, enemyKing Square, includeQuiets bool) {
	for _, d := range dirs {
		to := from + Square(d)
		for {
			target := b.PieceAt(to)
			if target == Fence {
				break
			}
			if target == NoPiece {
				if includeQuiets {
					m := NewMove(from, to, FlagNormal, 0)
					m = m.WithOrderingKey(quietOrderingKey(ot, ply, m, pt, enemyKing))
					ml.Add(m)
				}
				to += Square(d)
				continue
			}
			if target.ColorOf() != color {
				m := NewMove(from, to, FlagNormal, captureOrderingKey(target.TypeOf(), pt))
				ml.Add(m)
			}
			break
		}
	}
}

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func genPawnMoves(b *board.Board, ot *OrderingTables, ply int, ml *MoveList, color Color, from Square, enemyKing Square, includeQuiets, includeCaptures bool) {
	forward := 10
	startRank := Rank(1)
	promoRank := Rank(7)
	captureDirs := WhitePawnCaptureDirs
	if color == Black {
		forward = -10
		startRank = 6
		promoRank = 0
		captureDirs = BlackPawnCaptureDirs
	}

	if includeQuiets {
		one := from + Square(forward)
		if b.PieceAt(one) == NoPiece {
			addPawnAdvance(ml, ot, ply, from, one, color, enemyKing, promoRank)
			if from.Rank() == startRank {
				two := one + Square(forward)
				if b.PieceAt(two) == NoPiece {
					m := NewMove(from, two, FlagPawn, 0)
					m = m.WithOrderingKey(quietOrderingKey(ot, ply, m, Pawn, enemyKing))
					ml.Add(m)
				}
			}
		}
	}

	if includeCaptures {
		for _, d := range captureDirs {
			to := from + Square(d)
			target := b.PieceAt(to)
			if target == Fence {
				continue
			}
			if target != NoPiece && target.ColorOf() != color {
				addPawnCapture(ml, from, to, target.TypeOf(), promoRank)
				continue
			}
			if target == NoPiece && to == b.EPSquare() {
				ml.Add(NewMove(from, to, FlagPawn, captureOrderingKey(Pawn, Pawn)))
			}
		}
	}
}

func addPawnAdvance(ml *MoveList, ot *OrderingTables, ply int, from, to Square, color Color, enemyKing Square, promoRank Rank) {
	if to.Rank() == promoRank {
		for _, pt := range promotionPieces {
			key := pieceRank(pt) << 4
			m := NewMove(from, to, PromotionFlag(pt), key)
			ml.Add(m)
		}
		return
	}
	m := NewMove(from, to, FlagPawn, 0)
	m = m.WithOrderingKey(quietOrderingKey(ot, ply, m, Pawn, enemyKing))
	ml.Add(m)
}

func addPawnCapture(ml *MoveList, from, to Square, victim PieceType, promoRank Rank) {
	if to.Rank() == promoRank {
		for _, pt := range promotionPieces {
			key := captureOrderingKey(victim, Pawn)
			if pt == Queen {
				key += 16
			}
			ml.Add(NewMove(from, to, PromotionFlag(pt), key))
		}
		return
	}
	ml.Add(NewMove(from, to, FlagNormal, captureOrderingKey(victim, Pawn)))
}

// GenerateCastles emits e1g1/e1c1-style king moves when every
// precondition holds: neither king nor the relevant rook has moved, the
// intermediate squares are empty, the king is not in check, and the
// traversed square is not attacked.
func GenerateCastles(b *board.Board, ml *MoveList) {
	color := b.SideToMove()
	king := b.KingSquare(color)
	if IsSquareAttacked(b, king, color.Other()) {
		return
	}
	rank := Rank(0)
	if color == Black {
		rank = 7
	}
	rights := b.CastleRights()
	shortRight, longRight := castleRightsBits(color)
	if rights.Has(shortRight) {
		f, g, h := NewSquare(5, rank), NewSquare(6, rank), NewSquare(7, rank)
		if b.PieceAt(f) == NoPiece && b.PieceAt(g) == NoPiece && b.PieceAt(h).TypeOf() == Rook &&
			!IsSquareAttacked(b, f, color.Other()) && !IsSquareAttacked(b, g, color.Other()) {
			ml.Add(NewMove(king, g, FlagNormal, CastleShortKey))
		}
	}
	if rights.Has(longRight) {
		b1, c, d, a := NewSquare(1, rank), NewSquare(2, rank), NewSquare(3, rank), NewSquare(0, rank)
		if b.PieceAt(b1) == NoPiece && b.PieceAt(c) == NoPiece && b.PieceAt(d) == NoPiece && b.PieceAt(a).TypeOf() == Rook &&
			!IsSquareAttacked(b, d, color.Other()) && !IsSquareAttacked(b, c, color.Other()) {
			ml.Add(NewMove(king, c, FlagNormal, CastleLongKey))
		}
	}
}

func castleRightsBits(c Color) (short, long board.CastleRights) {
	if c == White {
		return board.WhiteOO, board.WhiteOOO
	}
	return board.BlackOO, board.BlackOOO
}
