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
	"github.com/ggeorgochess/chessengine/internal/tt"
	. "github.com/ggeorgochess/chessengine/internal/types"
)

var passedPawnBonus = [8]Value{0, 2, 2, 8, 12, 16, 20, 0}

const isolaniPenalty = Value(-10)
const noPawnsEndgamePenalty = Value(-50)

type fileOccupancy [8]uint8 // bit r set => a pawn of this color sits on rank r of this file

func gatherPawnFiles(b *board.Board, c Color) fileOccupancy {
	var fo fileOccupancy
	b.ForEachPiece(c, func(_ int8, sq Square, pt PieceType) {
		if pt == Pawn {
			fo[sq.File()] |= 1 << uint(sq.Rank())
		}
	})
	return fo
}

func hasNeighborFilePawn(fo fileOccupancy, file File) bool {
	if file > 0 && fo[file-1] != 0 {
		return true
	}
	if file < 7 && fo[file+1] != 0 {
		return true
	}
	return false
}

// isPassed reports whether a pawn on (file,rank) for color c is passed:
// no enemy pawn on the same or an adjacent file ahead of it.
func isPassed(own, enemy fileOccupancy, c Color, file File, rank Rank) bool {
	for f := file - 1; f <= file+1; f++ {
		if f < 0 || f > 7 {
			continue
		}
		mask := enemy[f]
		if mask == 0 {
			continue
		}
		for r := Rank(0); r < 8; r++ {
			if mask&(1<<uint(r)) == 0 {
				continue
			}
			if c == White && r > rank {
				return false
			}
			if c == Black && r < rank {
				return false
			}
		}
	}
	return true
}

// pawnStructureResult is what evaluatePawnStructure computes and caches.
type pawnStructureResult struct {
	score         Value // White-positive, isolani+passed terms only
	whiteIsolanis int
	blackIsolanis int
	whitePawns    int
	blackPawns    int
}

func evaluatePawnStructure(b *board.Board, pawnTT *tt.PawnTable) pawnStructureResult {
	if pawnTT != nil {
		if v, ok := pawnTT.Probe(b.PawnHash()); ok {
			// cache stores only the base score; isolani/pawn counts are
			// cheap enough to recompute for the endgame supplement terms
			// that aren't folded into the cached value.
			res := computePawnStructure(b)
			res.score = v
			return res
		}
	}
	res := computePawnStructure(b)
	if pawnTT != nil {
		pawnTT.Store(b.PawnHash(), res.score)
	}
	return res
}

func computePawnStructure(b *board.Board) pawnStructureResult {
	white := gatherPawnFiles(b, White)
	black := gatherPawnFiles(b, Black)

	var res pawnStructureResult
	var score Value

	scoreSide := func(own, enemy fileOccupancy, c Color) (Value, int, int) {
		var s Value
		isolanis := 0
		count := 0
		for f := File(0); f < 8; f++ {
			mask := own[f]
			if mask == 0 {
				continue
			}
			isolated := !hasNeighborFilePawn(own, f)
			for r := Rank(0); r < 8; r++ {
				if mask&(1<<uint(r)) == 0 {
					continue
				}
				count++
				if isolated {
					s += isolaniPenalty
					isolanis++
				}
				if isPassed(own, enemy, c, f, r) {
					rankForBonus := r
					if c == Black {
						rankForBonus = 7 - r
					}
					bonus := passedPawnBonus[rankForBonus]
					if supportedByPawnBehind(own, c, f, r) {
						bonus = Value(float64(bonus) * 1.5)
					}
					s += bonus
				}
			}
		}
		return s, isolanis, count
	}

	whiteScore, whiteIso, whiteCount := scoreSide(white, black, White)
	blackScore, blackIso, blackCount := scoreSide(black, white, Black)
	score += whiteScore - blackScore

	res.whiteIsolanis, res.blackIsolanis = whiteIso, blackIso
	res.whitePawns, res.blackPawns = whiteCount, blackCount
	res.score = score
	return res
}

func supportedByPawnBehind(own fileOccupancy, c Color, file File, rank Rank) bool {
	behind := rank - 1
	if c == Black {
		behind = rank + 1
	}
	if behind < 0 || behind > 7 {
		return false
	}
	for f := file - 1; f <= file+1; f += 2 {
		if f < 0 || f > 7 {
			continue
		}
		if own[f]&(1<<uint(behind)) != 0 {
			return true
		}
	}
	return false
}

// endgamePawnSupplement adds the isolani-escalation, no-pawns and
// connected-passed-pawn terms that only apply in the endgame phase.
func endgamePawnSupplement(b *board.Board, res pawnStructureResult) Value {
	var v Value
	if res.whitePawns == 0 {
		v += noPawnsEndgamePenalty
	}
	if res.blackPawns == 0 {
		v -= noPawnsEndgamePenalty
	}
	if res.whiteIsolanis > 2 {
		v += Value(res.whiteIsolanis-2) * isolaniPenalty
	}
	if res.blackIsolanis > 2 {
		v -= Value(res.blackIsolanis-2) * isolaniPenalty
	}
	v += connectedPassedBonus(b, White) - connectedPassedBonus(b, Black)
	return v
}

// connectedPassedBonus finds the best adjacent-file pair of passed pawns
// for color c and scores (sum of their ranks) * 8.
func connectedPassedBonus(b *board.Board, c Color) Value {
	own := gatherPawnFiles(b, c)
	enemy := gatherPawnFiles(b, c.Other())

	type passer struct {
		file File
		rank Rank
	}
	var passers []passer
	for f := File(0); f < 8; f++ {
		mask := own[f]
		for r := Rank(0); r < 8; r++ {
			if mask&(1<<uint(r)) == 0 {
				continue
			}
			if isPassed(own, enemy, c, f, r) {
				passers = append(passers, passer{f, r})
			}
		}
	}
	best := Value(0)
	for i := range passers {
		for j := range passers {
			if i == j {
				continue
			}
			df := passers[i].file - passers[j].file
			if df != 1 && df != -1 {
				continue
			}
			sum := Value(int(passers[i].rank) + int(passers[j].rank) + 2)
			bonus := sum * 8
			if bonus > best {
				best = bonus
			}
		}
	}
	return best
}
