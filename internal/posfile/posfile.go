//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

// Package posfile parses the position-file format and the equivalent
// piece-placement tokens used by the protocol's "edit" command: two
// sections headed "white:" and "black:", each listing pieces as
// "<Letter><square>", comma or whitespace separated.
package posfile

import (
	"fmt"
	"strings"

	"github.com/ggeorgochess/chessengine/internal/assert"
	"github.com/ggeorgochess/chessengine/internal/board"
	. "github.com/ggeorgochess/chessengine/internal/types"
)

// placement is one parsed "<Letter><square>" token.
type placement struct {
	pt PieceType
	sq Square
}

// Parse reads a position-file body (the "white:"/"black:" sections) and
// builds a Board. Authoring errors here are fatal: this format is meant
// to be hand-written, and a malformed file is a mistake in that authoring,
// not a recoverable runtime state.
func Parse(body string) *board.Board {
	whiteSec, blackSec, err := splitSections(body)
	if err != nil {
		assert.Fatal("position file: %v", err)
	}

	white, err := parsePieces(whiteSec)
	if err != nil {
		assert.Fatal("position file (white): %v", err)
	}
	black, err := parsePieces(blackSec)
	if err != nil {
		assert.Fatal("position file (black): %v", err)
	}

	if err := validate(white, black); err != nil {
		assert.Fatal("position file: %v", err)
	}

	return buildBoard(white, black, White)
}

func splitSections(body string) (white, black string, err error) {
	lower := strings.ToLower(body)
	wi := strings.Index(lower, "white:")
	bi := strings.Index(lower, "black:")
	if wi < 0 || bi < 0 {
		return "", "", fmt.Errorf(`missing "white:" or "black:" section`)
	}
	if wi < bi {
		white = body[wi+len("white:") : bi]
		black = body[bi+len("black:"):]
	} else {
		black = body[bi+len("black:") : wi]
		white = body[wi+len("white:"):]
	}
	return white, black, nil
}

func parsePieces(section string) ([]placement, error) {
	section = strings.ReplaceAll(section, ",", " ")
	var out []placement
	for _, tok := range strings.Fields(section) {
		if len(tok) < 2 {
			return nil, fmt.Errorf("bad token %q", tok)
		}
		letter := tok[0]
		if letter >= 'a' && letter <= 'h' {
			// "P" is optional for pawns: the token is just a square.
			sq := SquareFromString(tok[0:2])
			if !sq.Valid() {
				return nil, fmt.Errorf("bad square in %q", tok)
			}
			out = append(out, placement{Pawn, sq})
			continue
		}
		if len(tok) < 3 {
			return nil, fmt.Errorf("bad token %q", tok)
		}
		pt := pieceTypeFromLetter(letter)
		if pt == NoPieceType {
			return nil, fmt.Errorf("unknown piece letter %q", string(letter))
		}
		sq := SquareFromString(tok[1:3])
		if !sq.Valid() {
			return nil, fmt.Errorf("bad square in %q", tok)
		}
		out = append(out, placement{pt, sq})
	}
	return out, nil
}

func pieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'K':
		return King
	case 'Q':
		return Queen
	case 'R':
		return Rook
	case 'B':
		return Bishop
	case 'N':
		return Knight
	case 'P':
		return Pawn
	default:
		return NoPieceType
	}
}

func validate(white, black []placement) error {
	if err := validateSide(white); err != nil {
		return fmt.Errorf("white: %w", err)
	}
	if err := validateSide(black); err != nil {
		return fmt.Errorf("black: %w", err)
	}
	return nil
}

func validateSide(side []placement) error {
	kings, pawns := 0, 0
	for _, p := range side {
		switch p.pt {
		case King:
			kings++
		case Pawn:
			pawns++
			if p.sq.Rank() == 0 || p.sq.Rank() == 7 {
				return fmt.Errorf("pawn on back rank at %s", p.sq)
			}
		}
	}
	if kings != 1 {
		return fmt.Errorf("need exactly one king, found %d", kings)
	}
	if pawns > 8 {
		return fmt.Errorf("too many pawns: %d", pawns)
	}
	return nil
}

// buildBoard assembles a FEN string from the parsed placements and castle
// rights derived from whether king and rooks sit on their home squares,
// then delegates to board.NewFromFEN so there is exactly one code path
// that builds a Board from scratch.
func buildBoard(white, black []placement, sideToMove Color) *board.Board {
	var grid [8][8]byte
	for i := range grid {
		for j := range grid[i] {
			grid[i][j] = 0
		}
	}
	place := func(side []placement, upper bool) {
		for _, p := range side {
			letter := pieceLetter(p.pt)
			if !upper {
				letter += 'a' - 'A'
			}
			grid[p.sq.Rank()][p.sq.File()] = letter
		}
	}
	place(white, true)
	place(black, false)

	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			c := grid[r][f]
			if c == 0 {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			sb.WriteByte(c)
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	side := "w"
	if sideToMove == Black {
		side = "b"
	}
	castle := castleString(white, black)

	fen := fmt.Sprintf("%s %s %s - 0 1", sb.String(), side, castle)
	return board.NewFromFEN(fen)
}

func pieceLetter(pt PieceType) byte {
	switch pt {
	case King:
		return 'K'
	case Queen:
		return 'Q'
	case Rook:
		return 'R'
	case Bishop:
		return 'B'
	case Knight:
		return 'N'
	default:
		return 'P'
	}
}

func castleString(white, black []placement) string {
	has := func(side []placement, pt PieceType, sq Square) bool {
		for _, p := range side {
			if p.pt == pt && p.sq == sq {
				return true
			}
		}
		return false
	}
	whiteKingHome := has(white, King, NewSquare(4, 0))
	blackKingHome := has(black, King, NewSquare(4, 7))

	var sb strings.Builder
	if whiteKingHome && has(white, Rook, NewSquare(7, 0)) {
		sb.WriteByte('K')
	}
	if whiteKingHome && has(white, Rook, NewSquare(0, 0)) {
		sb.WriteByte('Q')
	}
	if blackKingHome && has(black, Rook, NewSquare(7, 7)) {
		sb.WriteByte('k')
	}
	if blackKingHome && has(black, Rook, NewSquare(0, 7)) {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
