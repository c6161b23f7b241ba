//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

// Package board implements the position representation: a 10x12 padded
// mailbox, per-side piece lists, incremental Zobrist keys, and the
// make/unmake/try-move primitives.
package board

import (
	"strconv"
	"strings"

	"github.com/ggeorgochess/chessengine/internal/assert"
	. "github.com/ggeorgochess/chessengine/internal/types"
	"github.com/ggeorgochess/chessengine/internal/zobrist"
)

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPosition is an alias for NewFromFEN kept for readability at call
// sites that think in terms of "load a position".
func NewPosition(fen string) *Board { return NewFromFEN(fen) }

// squareContent is what squares[] stores: a piece code plus the index of
// that piece in its owner's pieceList (meaningless for NoPiece/Fence).
type squareContent struct {
	piece Piece
	idx   int8
}

// Board is the position: mailbox, piece lists, flags, and the two
// incrementally maintained zobrist keys.
type Board struct {
	squares [BoardWidth * BoardRows]squareContent

	pieces [2]pieceList

	sideToMove   Color
	castleRights CastleRights
	epSquare     Square

	material Value // signed, White-positive, maintained incrementally
	posHash  Key
	pawnHash Key

	halfmoveClock  int
	fullmoveNumber int

	moveStack   [MaxStack]moveStackEntry
	statusStack [MaxStack]statusStackEntry
	ply         int
}

// NewBoard returns an empty board with every square marked as either
// playable-empty or Fence.
func NewBoard() *Board {
	b := &Board{}
	for r := 0; r < BoardRows; r++ {
		for c := 0; c < BoardWidth; c++ {
			sq := Square(r*BoardWidth + c)
			if r < 2 || r > 9 || c < 1 || c > 8 {
				b.squares[sq] = squareContent{piece: Fence}
			}
		}
	}
	return b
}

// NewFromFEN parses a FEN board+flags string into a fresh Board. Malformed
// FEN is a fatal authoring error: these are authoring mistakes, not
// recoverable runtime states.
func NewFromFEN(fen string) *Board {
	b := NewBoard()
	fields := strings.Fields(fen)
	if len(fields) < 1 {
		assert.Fatal("empty FEN")
	}
	rows := strings.Split(fields[0], "/")
	if len(rows) != 8 {
		assert.Fatal("FEN must have 8 ranks, got %d", len(rows))
	}
	for i, row := range rows {
		rank := Rank(7 - i)
		file := File(0)
		for _, ch := range row {
			if ch >= '1' && ch <= '8' {
				file += File(ch - '0')
				continue
			}
			p := PieceFromLetter(byte(ch))
			if p == NoPiece {
				assert.Fatal("bad FEN piece char %q", ch)
			}
			b.placePieceFresh(p, NewSquare(file, rank))
			file++
		}
	}
	b.sideToMove = White
	if len(fields) > 1 && fields[1] == "b" {
		b.sideToMove = Black
	}
	if len(fields) > 2 {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.castleRights |= WhiteOO
			case 'Q':
				b.castleRights |= WhiteOOO
			case 'k':
				b.castleRights |= BlackOO
			case 'q':
				b.castleRights |= BlackOOO
			}
		}
	}
	if len(fields) > 3 && fields[3] != "-" {
		b.epSquare = SquareFromString(fields[3])
	}
	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			b.halfmoveClock = n
		}
	}
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			b.fullmoveNumber = n
		}
	}
	b.computeHashesFromScratch()
	return b
}

// placePieceFresh adds a piece during initial setup/FEN loading: it does
// not XOR the hash (computeHashesFromScratch does that afterwards) and it
// does update the incremental material balance.
func (b *Board) placePieceFresh(p Piece, sq Square) {
	c := p.ColorOf()
	pt := p.TypeOf()
	var idx int8
	if pt == King {
		b.pieces[c].pieces[0] = pieceSlot{square: sq, typ: King}
		b.pieces[c].mask |= 1
		idx = 0
	} else {
		idx = b.pieces[c].add(pt, sq)
		assert.Assert(idx >= 0, "too many pieces for side %v", c)
	}
	b.squares[sq] = squareContent{piece: p, idx: idx}
	if c == White {
		b.material += PieceValue(pt)
	} else {
		b.material -= PieceValue(pt)
	}
}

func (b *Board) computeHashesFromScratch() {
	var posHash, pawnHash Key
	for c := White; c <= Black; c++ {
		b.pieces[c].forEach(func(idx int8, sq Square, pt PieceType) {
			p := MakePiece(c, pt)
			posHash ^= zobrist.PieceSquare[p][sq]
			if pt == Pawn {
				pawnHash ^= zobrist.PieceSquare[p][sq]
			}
		})
	}
	posHash ^= zobrist.CastleKey(uint8(b.castleRights & (WhiteOO | WhiteOOO | BlackOO | BlackOOO)))
	if b.epSquare != SqNone {
		posHash ^= zobrist.EPFile[b.epSquare.Index64()]
	}
	if b.sideToMove == Black {
		posHash ^= zobrist.SideToMove
	}
	b.posHash = posHash
	b.pawnHash = pawnHash
}

// --- accessors consumed by movegen/eval/search/tt ---

func (b *Board) PieceAt(sq Square) Piece             { return b.squares[sq].piece }
func (b *Board) IsEmpty(sq Square) bool              { return b.squares[sq].piece == NoPiece }
func (b *Board) IsFence(sq Square) bool              { return b.squares[sq].piece == Fence }
func (b *Board) SideToMove() Color                   { return b.sideToMove }
func (b *Board) CastleRights() CastleRights          { return b.castleRights }
func (b *Board) EPSquare() Square                    { return b.epSquare }
func (b *Board) Material() Value                     { return b.material }
func (b *Board) PosHash() Key                        { return b.posHash }
func (b *Board) PawnHash() Key                       { return b.pawnHash }
func (b *Board) KingSquare(c Color) Square            { return b.pieces[c].kingSquare() }
func (b *Board) HalfmoveClock() int                  { return b.halfmoveClock }

// ForEachPiece visits every live piece of color c, giving callers its
// piece-list slot index (stable across this piece's lifetime) so mobility
// can be cached and later looked up by PieceIndexAt/Mobility/SetMobility.
func (b *Board) ForEachPiece(c Color, fn func(idx int8, sq Square, pt PieceType)) {
	b.pieces[c].forEach(fn)
}

// PieceIndexAt returns the piece-list slot index stored at sq. Only valid
// for squares holding a piece of color c.
func (b *Board) PieceIndexAt(sq Square) int8 { return b.squares[sq].idx }

// Mobility/SetMobility read and write the transient per-piece mobility
// field: reused during evaluation, and for pawns reused to hold a
// passed-pawn score.
func (b *Board) Mobility(c Color, idx int8) int          { return b.pieces[c].pieces[idx].mobility }
func (b *Board) SetMobility(c Color, idx int8, v int)    { b.pieces[c].pieces[idx].mobility = v }

func (b *Board) String() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			sb.WriteByte(byte(b.PieceAt(NewSquare(File(f), Rank(r))).String()[0]))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
