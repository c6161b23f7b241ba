//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

// Package openingbook loads a line-oriented opening book (coordinate-move
// games, one per line) into a position-hash-keyed move table, with a
// small built-in book used when no file is configured or the file is
// missing.
package openingbook

import (
	"bufio"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/ggeorgochess/chessengine/internal/board"
	"github.com/ggeorgochess/chessengine/internal/logging"
	"github.com/ggeorgochess/chessengine/internal/movegen"
	. "github.com/ggeorgochess/chessengine/internal/types"
)

// internalBook is the one-line hard-coded book: the Ruy Lopez main line,
// good enough to get the engine out of book theory without a file.
var internalBook = []string{
	"e2e4 e7e5 g1f3 b8c6 f1b5 a7a6 b5a4 g8f6 e1g1",
}

// BookEntry holds every move seen from one position, each paired with how
// many times it was played, so Lookup can weight its tie-break by
// popularity rather than picking uniformly at random.
type BookEntry struct {
	ZobristKey Key
	Moves      []Move
	Counts     []int
}

// Book is a loaded opening book: a position-hash-keyed move table built by
// replaying every line in the source from the starting position.
type Book struct {
	entries map[Key]*BookEntry
	rng     *rand.Rand
}

// New returns an empty book; call LoadFile or LoadInternal to populate it.
func New() *Book {
	return &Book{
		entries: make(map[Key]*BookEntry),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// LoadInternal replays the built-in one-line book.
func (bk *Book) LoadInternal() {
	for _, line := range internalBook {
		bk.addLine(line)
	}
}

// LoadFile replays every line of a line-oriented text book, one game of
// coordinate moves per line, space separated. A missing file is soft: it
// logs and falls back to the internal book rather than treating a missing
// book as fatal.
func (bk *Book) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		logging.Engine.Warningf("opening book file %q unavailable (%v), using built-in book", path, err)
		bk.LoadInternal()
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lines := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		bk.addLine(line)
		lines++
	}
	logging.Engine.Infof("loaded opening book %q: %d lines", path, lines)
	return scanner.Err()
}

// addLine replays one game of coordinate moves from the starting position,
// recording every (position, move) pair it passes through.
func (bk *Book) addLine(line string) {
	tokens := strings.Fields(line)
	b := board.NewFromFEN(board.StartFEN)
	for _, tok := range tokens {
		m, ok := movegen.ParseUserMove(b, tok)
		if !ok {
			return
		}
		bk.record(b.PosHash(), m)
		b.Make(m)
	}
}

func (bk *Book) record(hash Key, m Move) {
	e, ok := bk.entries[hash]
	if !ok {
		e = &BookEntry{ZobristKey: hash}
		bk.entries[hash] = e
	}
	for i, existing := range e.Moves {
		if existing == m {
			e.Counts[i]++
			return
		}
	}
	e.Moves = append(e.Moves, m)
	e.Counts = append(e.Counts, 1)
}

// Lookup returns a book move for hash, weighted by how often each
// candidate was recorded and tie-broken with a wall-clock-seeded random
// draw.
func (bk *Book) Lookup(hash Key) (Move, bool) {
	e, ok := bk.entries[hash]
	if !ok || len(e.Moves) == 0 {
		return NoMove, false
	}
	total := 0
	for _, c := range e.Counts {
		total += c
	}
	pick := bk.rng.Intn(total)
	for i, c := range e.Counts {
		if pick < c {
			return e.Moves[i], true
		}
		pick -= c
	}
	return e.Moves[len(e.Moves)-1], true
}

