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

package search

import (
	"time"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/tt"
	"github.com/corvidchess/corvid/internal/types"
)

// checkEvery bounds how many nodes pass between deadline/Stop checks, so
// the clock isn't read on every single node.
const checkEvery = 2048

// maxPly bounds recursion (quiescence's capture sequences included) well
// past any depth iterative deepening will reach in practice.
const maxPly = 128

// rootLine is what one call to rootSearch produces.
type rootLine struct {
	best, ponder types.Move
	score        types.Value
	aborted      bool
}

// rootSearch searches every move in rootMoves to depth-1 plies beyond the
// root and returns the best one found. rootMoves is reordered in place so
// the next iteration's search tries the previous best move first.
func (s *Search) rootSearch(pos *board.Board, depth int, rootMoves []types.Move, deadline time.Time, limits Limits) rootLine {
	hash := pos.Hash()
	ttMove := types.NoMove
	if e, found := s.table.Lookup(hash); found {
		ttMove = e.BestMove
	}
	movegen.Order(pos, rootMoves, ttMove)

	alpha, beta := -types.MateValue, types.MateValue
	line := rootLine{ponder: types.NoMove}
	line.score = alpha - 1

	for i, m := range rootMoves {
		pos.MakeMove(m)
		s.nodes++
		score := -s.search(pos, depth-1, -beta, -alpha, 1, deadline)
		aborted := s.hardStop.Load() || (limits.IsTimed() && time.Now().After(deadline))
		_ = pos.UndoMove()

		if aborted && i > 0 {
			// Keep whatever the previous, fully-searched moves decided;
			// this move's score is unreliable.
			line.aborted = true
			break
		}

		if score > line.score || i == 0 {
			line.score = score
			line.best = m
		}
		if score > alpha {
			alpha = score
		}
		if aborted {
			line.aborted = true
			break
		}
	}

	if !line.aborted && line.best.IsInstantiated() {
		s.table.Insert(hash, depth, line.score, tt.BoundExact, line.best, types.NoMove)
		pos.MakeMove(line.best)
		if e, found := s.table.Lookup(pos.Hash()); found && e.BestMove.IsInstantiated() {
			line.ponder = e.BestMove
		}
		_ = pos.UndoMove()
	}

	return line
}

// search is the recursive negamax alpha-beta core below the root. It
// returns the score from the perspective of the side to move at pos.
func (s *Search) search(pos *board.Board, depth int, alpha, beta types.Value, ply int, deadline time.Time) types.Value {
	if s.nodes%checkEvery == 0 && (s.hardStop.Load() || time.Now().After(deadline)) {
		return s.eval.Evaluate(pos)
	}

	if drawn(pos) {
		return types.ValueDraw
	}

	hash := pos.Hash()
	ttMove := types.NoMove
	if e, found := s.table.Lookup(hash); found {
		ttMove = e.BestMove
		if e.Depth >= depth && ply > 0 {
			score := valueFromTT(e.Score, ply)
			switch e.Bound {
			case tt.BoundExact:
				return score
			case tt.BoundLower:
				if score >= beta {
					return score
				}
			case tt.BoundUpper:
				if score <= alpha {
					return score
				}
			}
		}
	}

	moves := s.gen.Generate(pos, false)
	if len(moves) == 0 {
		if pos.InCheck() {
			return types.MatedIn(ply)
		}
		return types.ValueDraw
	}

	if depth <= 0 || ply >= maxPly {
		return s.qsearch(pos, alpha, beta, ply, deadline)
	}

	movegen.Order(pos, moves, ttMove)

	origAlpha := alpha
	best := types.NoMove
	bestScore := -types.MateValue - 1

	for _, m := range moves {
		pos.MakeMove(m)
		s.nodes++
		score := -s.search(pos, depth-1, -beta, -alpha, ply+1, deadline)
		_ = pos.UndoMove()

		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	bound := tt.BoundExact
	switch {
	case bestScore <= origAlpha:
		bound = tt.BoundUpper
	case bestScore >= beta:
		bound = tt.BoundLower
	}
	s.table.Insert(hash, depth, valueToTT(bestScore, ply), bound, best, types.NoMove)

	return bestScore
}

// qsearch extends the search along capture sequences only, so the static
// evaluator is never asked to judge a position with a hanging piece on the
// board. Per spec.md §8 its result never falls below the stand-pat score.
func (s *Search) qsearch(pos *board.Board, alpha, beta types.Value, ply int, deadline time.Time) types.Value {
	if s.nodes%checkEvery == 0 && (s.hardStop.Load() || time.Now().After(deadline)) {
		return s.eval.Evaluate(pos)
	}

	standPat := s.eval.Evaluate(pos)
	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}
	if ply >= maxPly {
		return standPat
	}

	captures := s.gen.Generate(pos, true)
	movegen.Order(pos, captures, types.NoMove)

	best := standPat
	for _, m := range captures {
		pos.MakeMove(m)
		s.nodes++
		score := -s.qsearch(pos, -beta, -alpha, ply+1, deadline)
		_ = pos.UndoMove()

		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// drawn reports the two position-history draws the search recognizes:
// threefold repetition and, when enabled, the fifty-move rule.
func drawn(pos *board.Board) bool {
	if pos.RepetitionCount(pos.Hash()) >= 3 {
		return true
	}
	if config.Settings.Search.FiftyMoveRule && pos.HalfmoveClock() >= 100 {
		return true
	}
	return false
}

// valueToTT and valueFromTT rebase mate scores between "plies from the
// search root" (what search() works in, since ply counts moves played
// since the true root) and "plies from this node" (what the table
// stores, so the same entry reached via a different move order at a
// different ply still reports the correct mate distance from the new
// root-relative position).
func valueToTT(v types.Value, ply int) types.Value {
	if !v.IsMateScore() {
		return v
	}
	if v > 0 {
		return v + types.Value(ply)
	}
	return v - types.Value(ply)
}

func valueFromTT(v types.Value, ply int) types.Value {
	if !v.IsMateScore() {
		return v
	}
	if v > 0 {
		return v - types.Value(ply)
	}
	return v + types.Value(ply)
}
