//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

// Package zobrist holds the incremental hashing tables used for the main
// position key and the pawn-only key. Tables are generated once at
// package init from a fixed seed so hash values are stable across runs
// and usable as test vectors.
package zobrist

import . "github.com/ggeorgochess/chessengine/internal/types"

// FixedSeed pins the Mersenne-Twister stream so the whole zobrist table is
// reproducible.
const FixedSeed = 0x5EED5EED5EED5EED

var (
	// PieceSquare[piece][square] covers the 12 colored pieces over all 120
	// mailbox squares (only 21..98 playable entries are ever used).
	PieceSquare [PieceLength + 1][BoardWidth * BoardRows]Key

	// EPFile is keyed by the en-passant target square's 0..63 index.
	EPFile [64]Key

	// Castle holds one key per castling-rights bit, indexed by bit position
	// (0=WhiteOO,1=WhiteOOO,2=BlackOO,3=BlackOOO). The two "has castled"
	// marker bits are evaluation-only annotations and do not participate
	// in the position hash.
	Castle [4]Key

	// SideToMove is XORed in whenever it is Black to move.
	SideToMove Key
)

func init() {
	mt := newMT19937_64(FixedSeed)
	for p := range PieceSquare {
		for s := range PieceSquare[p] {
			PieceSquare[p][s] = Key(mt.next())
		}
	}
	for i := range EPFile {
		EPFile[i] = Key(mt.next())
	}
	for i := range Castle {
		Castle[i] = Key(mt.next())
	}
	SideToMove = Key(mt.next())
}

// CastleKey xors in the keys for every set bit of mask (mask uses the same
// bit positions as board.CastleRights, interpreted only for the 4 rights
// bits by the caller).
func CastleKey(bits uint8) Key {
	var k Key
	for i := 0; i < 4; i++ {
		if bits&(1<<uint(i)) != 0 {
			k ^= Castle[i]
		}
	}
	return k
}

// IsPawn reports whether p is a pawn of either color, used by callers that
// maintain the pawn-only key alongside the full key.
func IsPawn(p Piece) bool {
	return p == WhitePawn || p == BlackPawn
}
