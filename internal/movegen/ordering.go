//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package movegen

import . "github.com/ggeorgochess/chessengine/internal/types"

// CastleShortKey/CastleLongKey are the fixed ordering priorities assigned
// to castling moves, placing them ahead of ordinary quiets but below
// hash/PV/threat overrides applied later in search.
const (
	CastleShortKey = 100
	CastleLongKey  = 90
)

func pieceRank(pt PieceType) int {
	switch pt {
	case Pawn:
		return 1
	case Knight:
		return 2
	case Bishop:
		return 3
	case Rook:
		return 4
	case Queen:
		return 5
	case King:
		return 6
	default:
		return 0
	}
}

// captureOrderingKey is MVV/LVA: (victim_value << 4) - attacker_value_code.
func captureOrderingKey(victim, attacker PieceType) int {
	return pieceRank(victim)<<4 - pieceRank(attacker)
}

func chebyshev(a, b Square) int {
	df := int(a.File()) - int(b.File())
	if df < 0 {
		df = -df
	}
	dr := int(a.Rank()) - int(b.Rank())
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}

// quietOrderingKey implements non-capture ordering: killer-0 > killer-1 >
// history > distance-to-enemy-king tie-break.
func quietOrderingKey(ot *OrderingTables, ply int, m Move, pt PieceType, enemyKing Square) int {
	if ot != nil && ply >= 0 && ply < MovePlies {
		if ot.Killer0[ply] == m {
			return 1
		}
		if ot.Killer1[ply] == m {
			return 0
		}
		if h := ot.History[pt][m.To().Index64()]; h != 0 {
			return h
		}
	}
	return -MaxDepth - chebyshev(m.To(), enemyKing)
}
