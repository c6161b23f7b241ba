//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

package board

import (
	"github.com/ggeorgochess/chessengine/internal/assert"
	. "github.com/ggeorgochess/chessengine/internal/types"
	"github.com/ggeorgochess/chessengine/internal/zobrist"
)

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// castleRookSquares returns the rook square castling moves the king from/to,
// given the king's destination square after a two-file king move.
func castleRookSquares(to Square) (from, to2 Square) {
	rank := to.Rank()
	if to.File() == 6 { // king side, king lands on g-file
		return NewSquare(7, rank), NewSquare(5, rank)
	}
	return NewSquare(0, rank), NewSquare(3, rank) // queen side, king lands on c-file
}

// Make applies a pseudo-legal move, updating piece lists, flags,
// en-passant, material and both zobrist keys. It does not check legality;
// callers filter illegal moves via IsInCheck after Make.
func (b *Board) Make(m Move) {
	assert.Assert(b.ply < MaxStack, "move stack overflow")

	from, to, flag := m.From(), m.To(), m.Flag()
	mover := b.PieceAt(from)
	moverColor := mover.ColorOf()
	moverType := mover.TypeOf()
	moverIdx := b.PieceIndexAt(from)

	entry := moveStackEntry{
		move:          m,
		capturedColor: ColorNone,
		captureSquare: to,
		preMaterial:   b.material,
		prePosHash:    b.posHash,
		prePawnHash:   b.pawnHash,
		preHalfmove:   b.halfmoveClock,
	}
	b.statusStack[b.ply] = statusStackEntry{castleRights: b.castleRights, epSquare: b.epSquare}

	isEnPassant := moverType == Pawn && to == b.epSquare && b.IsEmpty(to) && from.File() != to.File()
	if isEnPassant {
		if moverColor == White {
			entry.captureSquare = to - BoardWidth
		} else {
			entry.captureSquare = to + BoardWidth
		}
	}

	if cp := b.PieceAt(entry.captureSquare); cp != NoPiece && cp != Fence {
		entry.capturedColor = cp.ColorOf()
		entry.capturedType = cp.TypeOf()
		entry.capturedIdx = b.PieceIndexAt(entry.captureSquare)
		b.posHash ^= zobrist.PieceSquare[cp][entry.captureSquare]
		if entry.capturedType == Pawn {
			b.pawnHash ^= zobrist.PieceSquare[cp][entry.captureSquare]
		}
		if entry.capturedColor == White {
			b.material -= PieceValue(entry.capturedType)
		} else {
			b.material += PieceValue(entry.capturedType)
		}
		b.pieces[entry.capturedColor].remove(entry.capturedIdx)
		if entry.captureSquare != to {
			b.squares[entry.captureSquare] = squareContent{}
		}
	}

	promo := flag.PromotionPiece()
	if promo != NoPieceType {
		entry.special = specialPromote
	} else if moverType == King && absInt(int(to.File())-int(from.File())) == 2 {
		entry.special = specialCastle
	}

	// remove mover from origin
	b.posHash ^= zobrist.PieceSquare[mover][from]
	if moverType == Pawn {
		b.pawnHash ^= zobrist.PieceSquare[mover][from]
	}
	b.squares[from] = squareContent{}

	finalType := moverType
	if entry.special == specialPromote {
		finalType = promo
		if moverColor == White {
			b.material += PieceValue(promo) - PieceValue(Pawn)
		} else {
			b.material -= PieceValue(promo) - PieceValue(Pawn)
		}
	}
	b.pieces[moverColor].pieces[moverIdx].typ = finalType
	b.pieces[moverColor].pieces[moverIdx].square = to
	finalPiece := MakePiece(moverColor, finalType)
	b.squares[to] = squareContent{piece: finalPiece, idx: moverIdx}
	b.posHash ^= zobrist.PieceSquare[finalPiece][to]
	if finalType == Pawn {
		b.pawnHash ^= zobrist.PieceSquare[finalPiece][to]
	}

	if entry.special == specialCastle {
		rookFrom, rookTo := castleRookSquares(to)
		rook := b.PieceAt(rookFrom)
		rookIdx := b.PieceIndexAt(rookFrom)
		b.posHash ^= zobrist.PieceSquare[rook][rookFrom]
		b.squares[rookFrom] = squareContent{}
		b.pieces[moverColor].pieces[rookIdx].square = rookTo
		b.squares[rookTo] = squareContent{piece: rook, idx: rookIdx}
		b.posHash ^= zobrist.PieceSquare[rook][rookTo]
		if moverColor == White {
			b.castleRights |= WhiteCastled
		} else {
			b.castleRights |= BlackCastled
		}
	}

	// castle-rights bookkeeping, including forfeiture when a home rook is
	// captured in place (required to keep the "relevant rook has not
	// moved" castling precondition correct).
	oldRights := uint8(b.castleRights) & 0xF
	newRights := b.castleRights
	if moverType == King {
		if moverColor == White {
			newRights &^= WhiteOO | WhiteOOO
		} else {
			newRights &^= BlackOO | BlackOOO
		}
	}
	clearRookRight := func(sq Square, color Color) {
		rank := Rank(0)
		if color == Black {
			rank = 7
		}
		if sq.Rank() != rank {
			return
		}
		switch sq.File() {
		case 0:
			if color == White {
				newRights &^= WhiteOOO
			} else {
				newRights &^= BlackOOO
			}
		case 7:
			if color == White {
				newRights &^= WhiteOO
			} else {
				newRights &^= BlackOO
			}
		}
	}
	if moverType == Rook {
		clearRookRight(from, moverColor)
	}
	if entry.capturedType == Rook {
		clearRookRight(entry.captureSquare, entry.capturedColor)
	}
	b.castleRights = newRights
	newRightsMasked := uint8(newRights) & 0xF
	if oldRights != newRightsMasked {
		b.posHash ^= zobrist.CastleKey(oldRights ^ newRightsMasked)
	}

	// en-passant target square
	if b.epSquare != SqNone {
		b.posHash ^= zobrist.EPFile[b.epSquare.Index64()]
	}
	b.epSquare = SqNone
	if moverType == Pawn && absInt(int(to.Rank())-int(from.Rank())) == 2 {
		epCandidate := NewSquare(from.File(), (from.Rank()+to.Rank())/2)
		for _, df := range [2]int{-1, 1} {
			f := int(to.File()) + df
			if f < 0 || f > 7 {
				continue
			}
			neighbor := b.PieceAt(NewSquare(File(f), to.Rank()))
			if neighbor.TypeOf() == Pawn && neighbor.ColorOf() != moverColor {
				b.epSquare = epCandidate
				b.posHash ^= zobrist.EPFile[epCandidate.Index64()]
				break
			}
		}
	}

	b.posHash ^= zobrist.SideToMove
	b.sideToMove = b.sideToMove.Other()

	if moverType == Pawn || entry.capturedColor != ColorNone {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if moverColor == Black {
		b.fullmoveNumber++
	}

	entry.postPosHash = b.posHash
	b.moveStack[b.ply] = entry
	b.ply++
}

// Unmake reverses the most recent Make call exactly, restoring the board,
// piece lists, king squares, flags, en-passant square, both hashes and
// material to their pre-move values.
func (b *Board) Unmake() {
	assert.Assert(b.ply > 0, "unmake with empty move stack")
	b.ply--
	entry := b.moveStack[b.ply]
	status := b.statusStack[b.ply]
	m := entry.move
	from, to := m.From(), m.To()

	moverColor := b.sideToMove.Other()
	moverIdx := b.PieceIndexAt(to)

	if entry.special == specialCastle {
		rookFrom, rookTo := castleRookSquares(to)
		rookIdx := b.PieceIndexAt(rookTo)
		rook := b.PieceAt(rookTo)
		b.squares[rookTo] = squareContent{}
		b.pieces[moverColor].pieces[rookIdx].square = rookFrom
		b.squares[rookFrom] = squareContent{piece: rook, idx: rookIdx}
	}

	if entry.special == specialPromote {
		b.pieces[moverColor].pieces[moverIdx].typ = Pawn
	}
	moverFinalType := b.pieces[moverColor].pieces[moverIdx].typ
	moverPiece := MakePiece(moverColor, moverFinalType)

	b.squares[to] = squareContent{}
	b.pieces[moverColor].pieces[moverIdx].square = from
	b.squares[from] = squareContent{piece: moverPiece, idx: moverIdx}

	if entry.capturedColor != ColorNone {
		b.pieces[entry.capturedColor].restore(entry.capturedIdx)
		capturedPiece := MakePiece(entry.capturedColor, entry.capturedType)
		b.squares[entry.captureSquare] = squareContent{piece: capturedPiece, idx: entry.capturedIdx}
	}

	b.sideToMove = moverColor
	b.castleRights = status.castleRights
	b.epSquare = status.epSquare
	b.material = entry.preMaterial
	b.posHash = entry.prePosHash
	b.pawnHash = entry.prePawnHash
	b.halfmoveClock = entry.preHalfmove
	if moverColor == Black {
		b.fullmoveNumber--
	}
}

// MakeNull passes the move without touching the board: side to move
// flips and any en-passant square is cleared, exactly as a real move
// would clear it, but no piece moves and nothing is pushed onto the move
// stack. Used only by null-move pruning's one-ply-free-move probe.
func (b *Board) MakeNull() {
	if b.epSquare != SqNone {
		b.posHash ^= zobrist.EPFile[b.epSquare.Index64()]
		b.epSquare = SqNone
	}
	b.posHash ^= zobrist.SideToMove
	b.sideToMove = b.sideToMove.Other()
}

// UnmakeNull reverses MakeNull, given the en-passant square that was in
// effect beforehand.
func (b *Board) UnmakeNull(prevEPSquare Square) {
	b.posHash ^= zobrist.SideToMove
	b.sideToMove = b.sideToMove.Other()
	if prevEPSquare != SqNone {
		b.posHash ^= zobrist.EPFile[prevEPSquare.Index64()]
	}
	b.epSquare = prevEPSquare
}

// tryState is the minimal undo record for TryMove: it only remembers what
// TryMove actually touched (the mailbox and, if the king moved, its cached
// square), never piece-list liveness or hashes.
type tryState struct {
	from, to     Square
	fromContent  squareContent
	toContent    squareContent
	movedKing    bool
	kingColor    Color
	prevKingSquare Square
}

// TryMove is a cheap trial move used only to probe check status (ray-attack
// and castling-through-check legality tests). It must be undone with
// UnTryMove before any further recursive search call.
func (b *Board) TryMove(from, to Square) tryState {
	st := tryState{from: from, to: to, fromContent: b.squares[from], toContent: b.squares[to]}
	p := b.squares[from].piece
	if p.TypeOf() == King {
		st.movedKing = true
		st.kingColor = p.ColorOf()
		st.prevKingSquare = b.pieces[st.kingColor].pieces[0].square
		b.pieces[st.kingColor].pieces[0].square = to
	}
	b.squares[to] = b.squares[from]
	b.squares[from] = squareContent{}
	return st
}

// UnTryMove reverses a TryMove using the state it returned.
func (b *Board) UnTryMove(st tryState) {
	b.squares[st.from] = st.fromContent
	b.squares[st.to] = st.toContent
	if st.movedKing {
		b.pieces[st.kingColor].pieces[0].square = st.prevKingSquare
	}
}
