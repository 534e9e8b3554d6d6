//
// corvid - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package uci contains the Handler data structure and functionality to
// handle the UCI protocol communication between a chess user interface and
// the engine.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/config"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/search"
	"github.com/corvidchess/corvid/internal/store"
	"github.com/corvidchess/corvid/internal/types"
)

// Handler owns the position and the search engine for one UCI session and
// translates protocol text to and from them.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	pos    *board.Board
	engine *search.Search
	store  *store.Store

	log *logging.Logger
}

// New creates a Handler wired to stdin/stdout. Replace InIo/OutIo before
// calling Loop to redirect it, e.g. in tests.
func New() *Handler {
	h := &Handler{
		InIo:   bufio.NewScanner(os.Stdin),
		OutIo:  bufio.NewWriter(os.Stdout),
		pos:    board.New(),
		engine: search.New(),
		log:    myLogging.GetLog("uci"),
	}
	h.openStoreIfEnabled()
	return h
}

// Loop reads commands from InIo until "quit" is received.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handle(h.InIo.Text()) {
			return
		}
	}
}

// Command handles a single line and returns everything it sent in
// response, for debugging and tests.
func (h *Handler) Command(cmd string) string {
	saved := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handle(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = saved
	return buf.String()
}

var whitespace = regexp.MustCompile(`\s+`)

// handle dispatches one command line. It returns true when the session
// should end ("quit").
func (h *Handler) handle(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}
	h.log.Debugf("<< %s", cmd)
	tokens := whitespace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		h.persistAndClose()
		return true
	case "uci":
		h.uciCommand()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.newGameCommand()
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.engine.StopSearch()
	case "ponderhit":
		h.engine.PonderHit()
	case "debug":
		// accepted, not acted on: logging verbosity is set via config.
	default:
		h.log.Warningf("unknown command: %s", cmd)
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send("id name corvid")
	h.send("id author the corvid project")
	h.send("uciok")
}

func (h *Handler) newGameCommand() {
	h.engine = search.New()
	h.pos = board.New()
}

func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.warnMalformed("position", tokens)
		return
	}
	i := 1
	var fen string
	switch tokens[i] {
	case "startpos":
		fen = board.StartFEN
		i++
	case "fen":
		i++
		var b strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			b.WriteString(tokens[i])
			b.WriteString(" ")
			i++
		}
		fen = strings.TrimSpace(b.String())
		if fen == "" {
			h.warnMalformed("position", tokens)
			return
		}
	default:
		h.warnMalformed("position", tokens)
		return
	}

	pos := &board.Board{}
	if err := pos.LoadFEN(fen); err != nil {
		h.log.Warningf("position: bad fen %q: %v", fen, err)
		return
	}
	h.pos = pos

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			if _, err := h.pos.ApplyMove(tokens[i]); err != nil {
				h.log.Warningf("position: bad move %q: %v", tokens[i], err)
				return
			}
		}
	}
}

func (h *Handler) goCommand(tokens []string) {
	limits, err := h.parseLimits(tokens)
	if err != nil {
		h.send(fmt.Sprintf("info string %v", err))
		return
	}
	pos := h.pos.Clone()
	go func() {
		res, err := h.engine.StartSearch(pos, limits, h.sendIterationInfo)
		if err != nil {
			h.log.Warningf("search: %v", err)
			return
		}
		h.sendResult(res)
	}()
}

// defaultClockMs is the fallback clock value (per side) spec.md §6 gives
// for a "go" command that names a time control but omits one side, and
// defaultMoveTime is the fixed budget used when "go" carries no
// arguments at all.
const defaultClockMs = 30000

const defaultMoveTime = 1 * time.Second

func (h *Handler) parseLimits(tokens []string) (search.Limits, error) {
	if len(tokens) == 1 {
		return search.Limits{MoveTime: defaultMoveTime}, nil
	}

	var l search.Limits
	var sawWhiteTime, sawBlackTime bool
	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "infinite":
			l.Infinite = true
			i++
		case "ponder":
			l.Ponder = true
			i++
		case "depth":
			i++
			d, err := parseIntArg(tokens, i, "depth")
			if err != nil {
				return l, err
			}
			l.Depth = d
			i++
		case "movetime":
			i++
			ms, err := parseIntArg(tokens, i, "movetime")
			if err != nil {
				return l, err
			}
			l.MoveTime = time.Duration(ms) * time.Millisecond
			i++
		case "wtime":
			i++
			ms, err := parseIntArg(tokens, i, "wtime")
			if err != nil {
				return l, err
			}
			l.WhiteTime = time.Duration(ms) * time.Millisecond
			sawWhiteTime = true
			i++
		case "btime":
			i++
			ms, err := parseIntArg(tokens, i, "btime")
			if err != nil {
				return l, err
			}
			l.BlackTime = time.Duration(ms) * time.Millisecond
			sawBlackTime = true
			i++
		case "winc":
			i++
			ms, err := parseIntArg(tokens, i, "winc")
			if err != nil {
				return l, err
			}
			l.WhiteInc = time.Duration(ms) * time.Millisecond
			i++
		case "binc":
			i++
			ms, err := parseIntArg(tokens, i, "binc")
			if err != nil {
				return l, err
			}
			l.BlackInc = time.Duration(ms) * time.Millisecond
			i++
		default:
			// UCI allows engine-specific unrecognized subcommands; skip
			// them rather than rejecting the whole go command.
			i++
		}
	}

	// A clock-controlled search (not depth/movetime/infinite/ponder-only)
	// defaults any unspecified side's time to defaultClockMs, per
	// spec.md §6.
	if !l.Infinite && !l.Ponder && l.MoveTime == 0 && l.Depth == 0 {
		if !sawWhiteTime {
			l.WhiteTime = defaultClockMs * time.Millisecond
		}
		if !sawBlackTime {
			l.BlackTime = defaultClockMs * time.Millisecond
		}
	}
	return l, nil
}

func parseIntArg(tokens []string, i int, name string) (int, error) {
	if i >= len(tokens) {
		return 0, fmt.Errorf("go %s requires a value", name)
	}
	v, err := strconv.Atoi(tokens[i])
	if err != nil {
		return 0, fmt.Errorf("go %s value %q is not a number", name, tokens[i])
	}
	return v, nil
}

func (h *Handler) sendIterationInfo(r search.Result) {
	h.send(fmt.Sprintf("info depth %d score %s nodes %d nps %d time %d pv %s",
		r.Depth, scoreToken(r.Score), r.Nodes, r.Nps(), r.Time.Milliseconds(), r.BestMove.String()))
}

// scoreToken renders a score the way the UCI protocol expects: "cp N" for
// a plain centipawn evaluation, or "mate N" (plies converted to full
// moves, signed) for a forced mate in either direction.
func scoreToken(v types.Value) string {
	if !v.IsMateScore() {
		return fmt.Sprintf("cp %d", v)
	}
	plies := v.MatePlies()
	sign := 1
	if plies < 0 {
		sign = -1
		plies = -plies
	}
	moves := sign * (plies + 1) / 2
	return fmt.Sprintf("mate %d", moves)
}

func (h *Handler) sendResult(r search.Result) {
	if r.PonderMove.IsInstantiated() {
		h.send(fmt.Sprintf("bestmove %s ponder %s", r.BestMove.String(), r.PonderMove.String()))
		return
	}
	h.send(fmt.Sprintf("bestmove %s", r.BestMove.String()))
}

func (h *Handler) warnMalformed(command string, tokens []string) {
	msg := fmt.Sprintf("command %q malformed: %s", command, strings.Join(tokens, " "))
	h.send("info string " + msg)
	h.log.Warning(msg)
}

func (h *Handler) send(s string) {
	h.log.Debugf(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}

// openStoreIfEnabled opens the badger persistence layer when config.toml
// turns it on, restoring the transposition table and the last known
// position from the previous run.
func (h *Handler) openStoreIfEnabled() {
	if !config.Settings.Store.Enabled {
		return
	}
	s, err := store.Open(config.Settings.Store.Path)
	if err != nil {
		h.log.Warningf("store: could not open %s: %v", config.Settings.Store.Path, err)
		return
	}
	h.store = s

	table := h.engine.Table()
	if err := s.LoadTTSnapshot(table); err != nil {
		h.log.Warningf("store: could not load TT snapshot: %v", err)
	}

	session, err := s.LoadSessionState()
	if err != nil {
		h.log.Warningf("store: could not load session state: %v", err)
		return
	}
	if session.StartFEN == "" {
		return
	}
	pos := &board.Board{}
	if err := pos.LoadFEN(session.StartFEN); err != nil {
		h.log.Warningf("store: could not restore session fen %q: %v", session.StartFEN, err)
		return
	}
	h.pos = pos
}

// persistAndClose snapshots the transposition table and the current
// position into the store, if one is open, then closes it.
func (h *Handler) persistAndClose() {
	if h.store == nil {
		return
	}
	if err := h.store.SaveTTSnapshot(h.engine.Table()); err != nil {
		h.log.Warningf("store: could not save TT snapshot: %v", err)
	}
	if err := h.store.SaveSessionState(store.SessionState{StartFEN: h.pos.FEN()}); err != nil {
		h.log.Warningf("store: could not save session state: %v", err)
	}
	if err := h.store.Close(); err != nil {
		h.log.Warningf("store: close failed: %v", err)
	}
}
