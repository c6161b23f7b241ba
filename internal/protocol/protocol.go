//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

// Package protocol implements the line-oriented engine front-end: a
// command vocabulary (new/quit/force/white/black/go/time/level/post/
// nopost/hint/undo/remove/edit/protover/<move>) read from an io.Reader
// and answered on an io.Writer.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ggeorgochess/chessengine/internal/board"
	"github.com/ggeorgochess/chessengine/internal/eval"
	"github.com/ggeorgochess/chessengine/internal/logging"
	"github.com/ggeorgochess/chessengine/internal/movegen"
	"github.com/ggeorgochess/chessengine/internal/openingbook"
	"github.com/ggeorgochess/chessengine/internal/posfile"
	"github.com/ggeorgochess/chessengine/internal/search"
	"github.com/ggeorgochess/chessengine/internal/tt"
	. "github.com/ggeorgochess/chessengine/internal/types"
)

// mode distinguishes normal play from position-edit mode ("edit" ... ".").
type mode int

const (
	modePlay mode = iota
	modeEdit
)

// Engine owns one running game: the board, search resources, the opening
// book, and the post/force/side-to-play flags the protocol commands
// mutate.
type Engine struct {
	out io.Writer

	b      *board.Board
	tables *tt.Tables
	book   *openingbook.Book

	engineColor Color
	forceMode   bool
	post        bool

	remainingCentis int
	movesToGo       int
	incrementSecs   int

	editMode   mode
	editColor  Color
	editBuf    strings.Builder

	exitCode int
	quit     bool
}

// New wires a fresh Engine: starting position, an internal opening book,
// and a transposition table set sized per config.Settings.
func New(out io.Writer, ttSizeMB, pawnTTSizeMB int) *Engine {
	e := &Engine{
		out:         out,
		b:           board.NewFromFEN(board.StartFEN),
		tables:      tt.NewTables(ttSizeMB, pawnTTSizeMB),
		book:        openingbook.New(),
		engineColor: Black,
		post:        true,
	}
	e.book.LoadInternal()
	return e
}

// LoadBookFile adds the lines of a book file to the book, which already
// holds the internal line; on error the book keeps what it had (the error
// is logged by openingbook itself).
func (e *Engine) LoadBookFile(path string) {
	if path == "" {
		return
	}
	e.book.LoadFile(path)
}

// LoadPositionFile replaces the current position with the one described
// by a position file's contents (see internal/posfile for the format).
func (e *Engine) LoadPositionFile(body string) {
	e.b = posfile.Parse(body)
}

// Run drives the REPL until "quit" or EOF, returning the process exit
// code (0 normal, 1 on a fatal invariant).
func (e *Engine) Run(in io.Reader) int {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() && !e.quit {
		e.handleLine(strings.TrimSpace(scanner.Text()))
		if !e.quit && !e.forceMode && e.b.SideToMove() == e.engineColor {
			e.engineMove()
		}
	}
	return e.exitCode
}

func (e *Engine) handleLine(line string) {
	if line == "" {
		return
	}
	if e.editMode == modeEdit {
		e.handleEditToken(line)
		return
	}

	fields := strings.Fields(line)
	cmd := fields[0]

	switch cmd {
	case "new":
		e.b = board.NewFromFEN(board.StartFEN)
		e.engineColor = Black
		e.forceMode = false
	case "quit":
		e.quit = true
	case "force":
		e.forceMode = true
	case "white":
		e.engineColor = Black
		e.forceMode = false
	case "black":
		e.engineColor = White
		e.forceMode = false
	case "go":
		e.engineColor = e.b.SideToMove()
		e.forceMode = false
		e.engineMove()
	case "time":
		if len(fields) > 1 {
			if n, err := strconv.Atoi(fields[1]); err == nil {
				e.remainingCentis = n
			}
		}
	case "level":
		if len(fields) > 3 {
			m, _ := strconv.Atoi(fields[1])
			t, _ := strconv.Atoi(fields[2])
			i, _ := strconv.Atoi(fields[3])
			e.movesToGo = m
			e.remainingCentis = t * 100 * 60
			e.incrementSecs = i
		}
	case "post":
		e.post = true
	case "nopost":
		e.post = false
	case "hint":
		e.hint()
	case "undo":
		if e.b.PlyCount() > 0 {
			e.b.Unmake()
		}
	case "remove":
		for i := 0; i < 2 && e.b.PlyCount() > 0; i++ {
			e.b.Unmake()
		}
	case "edit":
		e.editMode = modeEdit
		e.editColor = White
		e.editBuf.Reset()
	case "protover":
		fmt.Fprintln(e.out, "feature time=1 done=1")
	default:
		if m, ok := movegen.ParseUserMove(e.b, cmd); ok {
			e.b.Make(m)
			e.reportGameEnd()
		} else {
			fmt.Fprintf(e.out, "Error (unknown command): %s\n", cmd)
		}
	}
}

// handleEditToken implements the "edit" sub-vocabulary: "#" clears the
// board, "c" flips the color new placements apply to, "." commits the
// accumulated placement buffer via posfile, anything else is a
// "<Letter><square>" placement token appended to that buffer.
func (e *Engine) handleEditToken(tok string) {
	switch tok {
	case "#":
		e.editBuf.Reset()
		e.editBuf.WriteString("white:\nblack:\n")
	case "c":
		if e.editColor == White {
			e.editColor = Black
		} else {
			e.editColor = White
		}
	case ".":
		body := e.editBuf.String()
		if body == "" {
			body = "white:\nblack:\n"
		}
		e.b = posfile.Parse(body)
		e.editMode = modePlay
	default:
		e.appendPlacement(tok)
	}
}

func (e *Engine) appendPlacement(tok string) {
	body := e.editBuf.String()
	if body == "" {
		body = "white:\nblack:\n"
	}
	marker := "white:\n"
	if e.editColor == Black {
		marker = "black:\n"
	}
	idx := strings.Index(body, marker)
	if idx < 0 {
		return
	}
	insertAt := idx + len(marker)
	e.editBuf.Reset()
	e.editBuf.WriteString(body[:insertAt])
	e.editBuf.WriteString(tok)
	e.editBuf.WriteString(" ")
	e.editBuf.WriteString(body[insertAt:])
}

// hint runs a short fixed-depth search without committing the move.
func (e *Engine) hint() {
	ctx := search.NewContext(e.b, e.tables)
	out := ctx.StartSearch(e.book, search.Limits{MaxDepth: 4}, nil)
	if out.BestMove != NoMove {
		fmt.Fprintf(e.out, "Hint: %s\n", out.BestMove)
	}
}

func (e *Engine) perMoveBudget() time.Duration {
	if e.remainingCentis <= 0 {
		return 5 * time.Second
	}
	movesToGo := e.movesToGo
	if movesToGo <= 0 {
		movesToGo = 30
	}
	centis := e.remainingCentis / movesToGo
	return time.Duration(centis) * 10 * time.Millisecond
}

func (e *Engine) engineMove() {
	ctx := search.NewContext(e.b, e.tables)
	limits := search.Limits{MaxDepth: MaxDepth, MaxTime: e.perMoveBudget()}
	out := ctx.StartSearch(e.book, limits, func(r search.IterationReport) {
		if !e.post {
			return
		}
		fmt.Fprintf(e.out, "%d %d %d %d%s\n", r.Depth, r.Score, r.Elapsed.Milliseconds()/10, r.Nodes, formatPV(r.PV))
	})

	if out.Resign {
		fmt.Fprintln(e.out, "resign")
		return
	}
	if out.BestMove == NoMove {
		e.reportGameEnd()
		return
	}
	e.b.Make(out.BestMove)
	fmt.Fprintf(e.out, "move %s\n", out.BestMove)
	e.reportGameEnd()
}

func formatPV(pv []Move) string {
	if len(pv) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, m := range pv {
		sb.WriteByte(' ')
		sb.WriteString(m.String())
	}
	return sb.String()
}

// reportGameEnd prints the result line for checkmate, stalemate,
// insufficient material, fifty-move and threefold repetition.
// Non-terminal positions print nothing.
func (e *Engine) reportGameEnd() {
	b := e.b
	inCheck := movegen.IsInCheck(b, b.SideToMove())

	var ml movegen.MoveList
	if inCheck {
		ci := movegen.ComputeCheckInfo(b, b.SideToMove())
		movegen.GenerateEvasions(b, movegen.NewOrderingTables(), 0, &ml, ci)
	} else {
		movegen.GenerateMoves(b, movegen.NewOrderingTables(), 0, &ml)
	}
	legal := 0
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		b.Make(m)
		if !movegen.IsInCheck(b, b.SideToMove().Other()) {
			legal++
		}
		b.Unmake()
	}

	switch {
	case legal == 0 && inCheck:
		if b.SideToMove() == White {
			fmt.Fprintln(e.out, "0-1 {Black mates}")
		} else {
			fmt.Fprintln(e.out, "1-0 {White mates}")
		}
	case legal == 0:
		fmt.Fprintln(e.out, "1/2-1/2 {Stalemate}")
	case eval.InsufficientMaterial(b):
		fmt.Fprintln(e.out, "1/2-1/2 {Insufficient material}")
	case b.IsThreefoldRepetition():
		fmt.Fprintln(e.out, "1/2-1/2 {Draw by repetition}")
	case b.IsFiftyMoveDraw():
		fmt.Fprintln(e.out, "1/2-1/2 {Draw by fifty move rule}")
	}
}

// LogInvariantFailure logs a fatal invariant violation and marks the exit
// code for an internal invariant violation (1).
func (e *Engine) LogInvariantFailure(msg string, args ...interface{}) {
	logging.Engine.Criticalf(msg, args...)
	e.exitCode = 1
	e.quit = true
}
