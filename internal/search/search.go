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

// Package search drives iterative-deepening alpha-beta over a position,
// reporting progressively deeper Results until the clock or an explicit
// Stop ends the iteration. Exactly one search runs at a time; StartSearch
// blocks any concurrent caller until the previous one has returned.
package search

import (
	"context"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/clock"
	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/evaluator"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/tt"
	"github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/util"
)

var out = message.NewPrinter(language.English)

// Info is how the driver reports each completed iteration to its caller,
// e.g. a UCI session writing "info depth ... score ... pv ...".
type Info func(Result)

// Search owns the pieces that must persist across moves within one game:
// the transposition table and the move generator and evaluator built on
// top of it. A Search is safe to reuse for many consecutive StartSearch
// calls but only one may run at a time.
type Search struct {
	log *logging.Logger

	table *tt.Table
	eval  *evaluator.Evaluator
	gen   *movegen.Generator

	isRunning *semaphore.Weighted

	ponderHit *util.Bool
	hardStop  *util.Bool

	nodes uint64
}

// New builds a Search with a fresh transposition table.
func New() *Search {
	return &Search{
		log:       myLogging.GetLog("search"),
		table:     tt.New(),
		eval:      evaluator.New(),
		gen:       movegen.New(),
		isRunning: semaphore.NewWeighted(1),
		ponderHit: util.NewBool(false),
		hardStop:  util.NewBool(false),
	}
}

// Table exposes the transposition table for persistence by internal/store.
func (s *Search) Table() *tt.Table {
	return s.table
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// StopSearch asks the running search to return as soon as it notices: the
// iteration in progress is abandoned after its current root move and the
// last completed iteration's result is returned. It has no effect if
// nothing is running.
func (s *Search) StopSearch() {
	s.hardStop.Store(true)
}

// PonderHit converts an in-flight ponder search into a normal timed
// search: the position the engine predicted was in fact played, so the
// clock budget is recomputed from the Limits StartSearch was called with,
// counting from the start of the next iteration. spec.md §9 leaves open whether the ponder search
// inherits the clock it was started with or a fresh window computed at
// PonderHit; we take the fresh window, since the elapsed pondering time
// was "free" thinking the opponent's clock was still running and should
// not eat into the engine's own budget for this move.
func (s *Search) PonderHit() {
	s.ponderHit.Store(true)
}

// StartSearch blocks until any previous search has returned, then runs
// iterative deepening over b until the clock, Depth limit or an explicit
// Stop ends it. info, if non-nil, is called after every completed
// iteration. StartSearch returns the last complete iteration's Result, or
// ErrTerminalPosition / ErrNoResult per spec.md §7.
func (s *Search) StartSearch(b *board.Board, limits Limits, info Info) (Result, error) {
	_ = s.isRunning.Acquire(context.Background(), 1)
	defer s.isRunning.Release(1)

	s.hardStop.Store(false)
	s.ponderHit.Store(false)
	s.nodes = 0

	pos := b.Clone()
	s.log.Infof("searching: %s", pos.FEN())
	rootMoves := s.gen.Generate(pos, false)
	if len(rootMoves) == 0 || pos.RepetitionCount(pos.Hash()) >= 3 {
		s.log.Warning("search called on a terminal position")
		return Result{}, ErrTerminalPosition
	}

	start := time.Now()
	deadline := s.deadlineFor(pos, limits, start)
	s.log.Debugf("transposition table: %s", s.table.String())

	var best Result
	var havePV bool
	var lastIterNodes, priorIterNodes uint64
	var lastIterTime time.Duration

	maxDepth := limits.Depth
	if maxDepth <= 0 {
		maxDepth = 1 << 20
	}

	for depth := config.Settings.Search.MinDepth; depth <= maxDepth; depth++ {
		if limits.Ponder && s.ponderHit.Load() {
			// The predicted move was played: start a fresh, timed window
			// from now rather than inheriting the pondering time already
			// spent (see PonderHit).
			limits.Ponder = false
			deadline = s.deadlineFor(pos, limits, time.Now())
		}

		if havePV && limits.IsTimed() && !clock.ShouldContinue(lastIterNodes, priorIterNodes, lastIterTime, time.Now(), deadline) {
			break
		}
		if s.hardStop.Load() {
			break
		}

		iterStart := time.Now()
		nodesBefore := s.nodes
		line := s.rootSearch(pos, depth, rootMoves, deadline, limits)
		iterTime := time.Since(iterStart)

		if line.aborted && havePV {
			// Ran out of time mid-iteration: the previous iteration's
			// result is the best complete answer we have.
			s.log.Debugf("iteration at depth %d aborted, keeping depth %d result", depth, best.Depth)
			break
		}

		movegen.BumpToFront(rootMoves, line.best)
		best = Result{
			BestMove:   line.best,
			PonderMove: line.ponder,
			Score:      line.score,
			Depth:      depth,
			Nodes:      s.nodes,
			Time:       time.Since(start),
		}
		havePV = true
		priorIterNodes = lastIterNodes
		lastIterNodes = s.nodes - nodesBefore
		lastIterTime = iterTime

		s.log.Debug(out.Sprintf("depth %d: best %s score %d nodes %d nps %d",
			depth, best.BestMove, best.Score, best.Nodes, best.Nps()))

		if info != nil {
			info(best)
		}

		if best.Score.IsMateScore() {
			s.log.Info("mate found, stopping iterative deepening")
			break
		}
		if s.hardStop.Load() {
			break
		}
		if limits.IsTimed() && time.Now().After(deadline) {
			break
		}
	}

	if !havePV {
		s.log.Warning("search stopped before any iteration completed")
		return Result{}, ErrNoResult
	}

	s.log.Info(out.Sprintf("search finished after %s: depth %d, %d nodes, %d nps",
		best.Time, best.Depth, best.Nodes, best.Nps()))

	s.table.AgeAdvance()
	return best, nil
}

// deadlineFor resolves the wall-clock time at which a timed search must
// stop. Infinite and ponder searches get a deadline far in the future;
// they are ended by StopSearch/PonderHit instead. A Depth-limited search
// without MoveTime also gets the far deadline, so the clock does not cut
// it short.
func (s *Search) deadlineFor(pos *board.Board, limits Limits, start time.Time) time.Time {
	if !limits.IsTimed() || (limits.Depth > 0 && limits.MoveTime == 0) {
		return start.Add(365 * 24 * time.Hour)
	}
	if limits.MoveTime > 0 {
		return start.Add(limits.MoveTime)
	}
	remaining, increment := limits.BudgetFor(pos.SideToMove() == types.White)
	phase := s.eval.Phase(pos)
	return start.Add(clock.Budget(remaining, increment, phase))
}
