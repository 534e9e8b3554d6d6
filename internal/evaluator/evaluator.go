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

// Package evaluator implements the static position evaluation described in
// spec.md §4.4: material, piece-square tables with a phase-blended king
// table, a material-trade bonus, a king-safety term and a doubled-pawn
// penalty.
package evaluator

import (
	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/types"
)

// startingNonKingMaterial is the total material (both sides, kings
// excluded) present in the starting position. Used as the phase
// denominator: phase 1.0 is the opening, phase 0.0 is bare kings.
const startingNonKingMaterial = 2 * (8*100 + 2*300 + 2*300 + 2*500 + 900)

// Evaluator computes a static score for a position from the perspective of
// the side to move. It carries no logger: Evaluate runs on the hot
// per-node search path and has no failure mode worth reporting.
type Evaluator struct{}

// New returns an Evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

// Evaluate scores b from the perspective of the side to move: positive
// favors the mover, negative favors the opponent.
func (e *Evaluator) Evaluate(b *board.Board) types.Value {
	us := b.SideToMove()
	them := us.Flip()

	if isInsufficientMaterial(b) {
		return types.ValueDraw
	}

	var ownMaterial, enemyMaterial int
	var ownPST, enemyPST int
	var ownPawnFiles, enemyPawnFiles [8]int
	var remaining int

	for _, sq := range b.Occupied() {
		p := b.PieceAt(sq)
		pt := p.Type()
		v := pt.Value()
		remaining += v

		pst := pstValue(pt, p.Color(), sq, 0)
		if p.Color() == us {
			ownMaterial += v
			ownPST += pst
		} else {
			enemyMaterial += v
			enemyPST += pst
		}
		if pt == types.Pawn {
			if p.Color() == us {
				ownPawnFiles[sq.File]++
			} else {
				enemyPawnFiles[sq.File]++
			}
		}
	}

	phase := clampPhase(remaining)

	ownPST += kingPSTValue(b.KingSquare(us), us, phase)
	enemyPST += kingPSTValue(b.KingSquare(them), them, phase)

	score := (ownMaterial - enemyMaterial) + (ownPST - enemyPST)

	tradeBonus := float64(ownMaterial-enemyMaterial) * (1 - phase) * config.Settings.Eval.TradeBonusFactor
	score += int(tradeBonus)

	if phase > config.Settings.Eval.KingSafetyPhaseThreshold {
		score += kingSafety(b, us, ownPawnFiles) - kingSafety(b, them, enemyPawnFiles)
	}

	score += doubledPawnScore(ownPawnFiles, -1)
	score += doubledPawnScore(enemyPawnFiles, 1)

	return types.Value(score)
}

// Phase reports the material phase of b in [0,1], 1.0 being the opening
// and 0.0 bare kings. The clock controller uses this to decide how many
// moves of budget remain in the game.
func (e *Evaluator) Phase(b *board.Board) float64 {
	remaining := 0
	for _, sq := range b.Occupied() {
		pt := b.PieceAt(sq).Type()
		if pt != types.King {
			remaining += pt.Value()
		}
	}
	return clampPhase(remaining)
}

func clampPhase(remainingMaterial int) float64 {
	phase := float64(remainingMaterial) / float64(startingNonKingMaterial)
	if phase > 1.0 {
		phase = 1.0
	}
	return phase
}

// pstValue is a small dispatcher used for every piece except the king,
// whose table is phase-blended separately by kingPSTValue.
func pstValue(pt types.PieceType, c types.Color, sq types.Square, _ int) int {
	var table *[8][8]int
	switch pt {
	case types.Pawn:
		table = &pawnPST
	case types.Knight:
		table = &knightPST
	case types.Bishop:
		table = &bishopPST
	case types.Rook:
		table = &rookPST
	case types.Queen:
		table = &queenPST
	default:
		return 0
	}
	return lookup(*table, c, sq)
}

// lookup reads a piece-square table laid out with row 7 as the piece's own
// back rank and row 0 as the enemy's, matching Black's ranks directly
// (sq.Rank 7 = Black's home rank) but requiring White's ranks to be
// flipped first (sq.Rank 0 = White's home rank maps to row 7).
func lookup(table [8][8]int, c types.Color, sq types.Square) int {
	if c == types.White {
		return table[7-sq.Rank][sq.File]
	}
	return table[sq.Rank][sq.File]
}

// kingPSTValue blends the midgame and endgame king tables linearly across
// [EndPhase, EarlyPhase], per spec.md §4.4.
func kingPSTValue(sq types.Square, c types.Color, phase float64) int {
	mid := lookup(kingMidPST, c, sq)
	end := lookup(kingEndPST, c, sq)

	early := config.Settings.Eval.EarlyPhase
	late := config.Settings.Eval.EndPhase
	switch {
	case phase >= early:
		return mid
	case phase <= late:
		return end
	default:
		w := (phase - late) / (early - late)
		return end + int(w*float64(mid-end))
	}
}

// kingSafety returns color's raw pawn-shield contribution: a bonus for
// every own pawn within Chebyshev distance 1 of its king, a penalty for a
// fully open king file. Per spec.md §4.4 it only applies once color has
// forfeited both castling rights — while either right survives, the king
// is presumed not yet committed to a file worth judging.
func kingSafety(b *board.Board, c types.Color, pawnFiles [8]int) int {
	wk, wq, bk, bq := b.CastlingRights()
	var kingside, queenside bool
	if c == types.White {
		kingside, queenside = wk, wq
	} else {
		kingside, queenside = bk, bq
	}
	if kingside || queenside {
		return 0
	}

	kingSq := b.KingSquare(c)
	score := 0
	for _, sq := range b.Occupied() {
		p := b.PieceAt(sq)
		if p.Color() != c || p.Type() != types.Pawn {
			continue
		}
		df := sq.File - kingSq.File
		dr := sq.Rank - kingSq.Rank
		if abs8(df) <= 1 && abs8(dr) <= 1 {
			score += int(config.Settings.Eval.ClosePawnBonus)
		}
	}
	if pawnFiles[kingSq.File] == 0 {
		score -= int(config.Settings.Eval.OpenKingFilePenalty)
	}
	return score
}

func abs8(v int8) int8 {
	if v < 0 {
		return -v
	}
	return v
}

// doubledPawnScore charges DoubledPawnPenalty per pawn beyond the first on
// any file, with sign selecting whether it is our penalty (-1) or a bonus
// for the enemy's doubled pawns (+1).
func doubledPawnScore(files [8]int, sign int) int {
	total := 0
	for _, count := range files {
		if count > 1 {
			total += (count - 1) * int(config.Settings.Eval.DoubledPawnPenalty)
		}
	}
	return sign * total
}

// isInsufficientMaterial reports the trivial draws: bare kings, or a
// single lone minor piece against a bare king on either side. Anything
// beyond that (e.g. two bishops, a rook) is left to search and the normal
// score, since opposite-color-bishop and similar exceptions are judgment
// calls outside a cheap material count.
func isInsufficientMaterial(b *board.Board) bool {
	var minorCount, otherCount int
	for _, sq := range b.Occupied() {
		switch b.PieceAt(sq).Type() {
		case types.King:
			// ignored
		case types.Knight, types.Bishop:
			minorCount++
		default:
			otherCount++
		}
	}
	return otherCount == 0 && minorCount <= 1
}
