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

// mobilityNormalization is subtracted from raw reachable-square counts so
// an average amount of mobility nets to roughly zero.
var mobilityNormalization = map[PieceType]int{
	Knight: 4,
	Bishop: 6,
	Rook:   7,
	Queen:  13,
}

// Evaluator bundles the pawn cache so repeated Evaluate calls across a
// search amortize pawn-structure recomputation.
type Evaluator struct {
	pawnTT *tt.PawnTable
}

// NewEvaluator wires a pawn cache into the evaluator.
func NewEvaluator(pawnTT *tt.PawnTable) *Evaluator {
	return &Evaluator{pawnTT: pawnTT}
}

// Result is what Evaluate returns: the centipawn score from White's point
// of view, plus whether the position is known to be drawn for lack of
// mating material.
type Result struct {
	Score            Value
	SufficientMating bool
}

// Evaluate runs the full static evaluation in one pass over the piece
// lists (plus a pawn-hash probe), combining material, mobility,
// piece-square bonuses, bishop pair, pawn structure, king safety and
// endgame specialization into one centipawn score.
func (e *Evaluator) Evaluate(b *board.Board) Result {
	if InsufficientMaterial(b) {
		return Result{Score: 0, SufficientMating: false}
	}

	score := b.Material()

	score += mobilityAndPSQT(b, White) - mobilityAndPSQT(b, Black)
	score += bishopPair(b, White) - bishopPair(b, Black)

	pawnRes := evaluatePawnStructure(b, e.pawnTT)
	score += pawnRes.score

	score += kingSafety(b, White) + kingSafety(b, Black)

	if isEndgame(b) {
		score += endgamePawnSupplement(b, pawnRes)
		score += endgameAdjustment(b)
	}

	return Result{Score: score, SufficientMating: true}
}

// isEndgame is a coarse phase detector: no queens, or total non-pawn
// material of both sides together at or below a rook-and-minor threshold.
func isEndgame(b *board.Board) bool {
	return !hasQueens(b) || totalNonPawnMaterial(b) <= int(RookValue)+int(BishopValue)
}

func totalNonPawnMaterial(b *board.Board) int {
	total := 0
	for _, c := range [2]Color{White, Black} {
		b.ForEachPiece(c, func(_ int8, _ Square, pt PieceType) {
			if pt != Pawn && pt != King {
				total += int(PieceValue(pt))
			}
		})
	}
	return total
}

// endgameAdjustment drives the stronger side's basic mating technique:
// whichever side has more material pushes the opposing king toward the
// rim/corner.
func endgameAdjustment(b *board.Board) Value {
	whiteMat := sideMaterial(b, White)
	blackMat := sideMaterial(b, Black)
	if whiteMat == blackMat {
		return 0
	}
	if whiteMat > blackMat {
		return endgameKingScore(b, White)
	}
	return -endgameKingScore(b, Black)
}

func sideMaterial(b *board.Board, c Color) int {
	total := 0
	b.ForEachPiece(c, func(_ int8, _ Square, pt PieceType) {
		total += int(PieceValue(pt))
	})
	return total
}

func bishopPair(b *board.Board, c Color) Value {
	bishops := 0
	pawns := 0
	b.ForEachPiece(c, func(_ int8, _ Square, pt PieceType) {
		if pt == Bishop {
			bishops++
		}
		if pt == Pawn {
			pawns++
		}
	})
	if bishops < 2 {
		return 0
	}
	if pawns <= 4 {
		return 35
	}
	return 18
}

// mobilityAndPSQT walks every piece of color c once, summing mobility
// (reachable-square count via the same ray walks move generation uses,
// minus the per-piece-type normalization) and piece-square-table bonuses,
// caching the raw mobility count back into the piece's transient field.
func mobilityAndPSQT(b *board.Board, c Color) Value {
	var total Value
	b.ForEachPiece(c, func(idx int8, sq Square, pt PieceType) {
		m := reachableSquares(b, sq, pt, c)
		b.SetMobility(c, idx, m)
		if norm, ok := mobilityNormalization[pt]; ok {
			total += Value(m - norm)
		}
		switch pt {
		case Pawn:
			total += pst(&pawnPST, c, sq)
		case Knight:
			total += pst(&knightPST, c, sq) + knightCentralBonus[idx64(c, sq)]
		}
	})
	return total
}

func idx64(c Color, sq Square) int {
	i := sq.Index64()
	if c == Black {
		i = 63 - i
	}
	return i
}

var stepOffsets = map[PieceType][]int{
	Knight: KnightOffsets[:],
	King:   KingOffsets[:],
}

var slideDirs = map[PieceType][]int{
	Bishop: BishopDirs[:],
	Rook:   RookDirs[:],
	Queen:  QueenDirs[:],
}

// reachableSquares counts squares a piece could move or capture to,
// matching move generation's ray-walk rules.
func reachableSquares(b *board.Board, sq Square, pt PieceType, c Color) int {
	count := 0
	if offs, ok := stepOffsets[pt]; ok {
		for _, d := range offs {
			to := sq + Square(d)
			p := b.PieceAt(to)
			if p == Fence {
				continue
			}
			if p == NoPiece || p.ColorOf() != c {
				count++
			}
		}
		return count
	}
	if dirs, ok := slideDirs[pt]; ok {
		for _, d := range dirs {
			to := sq + Square(d)
			for {
				p := b.PieceAt(to)
				if p == Fence {
					break
				}
				if p == NoPiece {
					count++
					to += Square(d)
					continue
				}
				if p.ColorOf() != c {
					count++
				}
				break
			}
		}
		return count
	}
	if pt == Pawn {
		dirs := WhitePawnCaptureDirs
		if c == Black {
			dirs = BlackPawnCaptureDirs
		}
		for _, d := range dirs {
			to := sq + Square(d)
			p := b.PieceAt(to)
			if p == Fence {
				continue
			}
			if p != NoPiece && p.ColorOf() != c {
				count++
			}
		}
	}
	return count
}
