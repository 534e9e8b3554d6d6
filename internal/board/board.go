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

// Package board implements the chess position state machine: the 8x8
// grid, the four castling flags, the en passant target, the clocks, the
// incrementally maintained Zobrist hash, the repetition counter and the
// reversible make/undo machinery described in spec.md §4.1.
package board

import (
	"github.com/op/go-logging"

	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/zobrist"
)

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// squareSet caches the non-empty squares of the grid so callers can iterate
// occupied squares without scanning all 64, with O(1) add/remove.
type squareSet struct {
	present [8][8]bool
	index   [8][8]int
	list    []types.Square
}

func (s *squareSet) add(sq types.Square) {
	if s.present[sq.Rank][sq.File] {
		return
	}
	s.present[sq.Rank][sq.File] = true
	s.index[sq.Rank][sq.File] = len(s.list)
	s.list = append(s.list, sq)
}

func (s *squareSet) remove(sq types.Square) {
	if !s.present[sq.Rank][sq.File] {
		return
	}
	i := s.index[sq.Rank][sq.File]
	last := len(s.list) - 1
	lastSq := s.list[last]
	s.list[i] = lastSq
	s.index[lastSq.Rank][lastSq.File] = i
	s.list = s.list[:last]
	s.present[sq.Rank][sq.File] = false
}

func (s *squareSet) has(sq types.Square) bool {
	return s.present[sq.Rank][sq.File]
}

// undoRecord carries exactly enough state to reverse one make-move call.
type undoRecord struct {
	move            types.Move
	movingPiece     types.Piece
	capturedPiece   types.Piece
	capturedSquare  types.Square // differs from move.To only for en passant
	priorCastleWK   bool
	priorCastleWQ   bool
	priorCastleBK   bool
	priorCastleBQ   bool
	priorEP         types.Square
	priorHalfmove   int
	priorFullmove   int
	priorSideToMove types.Color
	priorHash       uint64
}

// Board holds the full state of a chess position plus enough history to
// make and unmake moves and to detect repetitions.
type Board struct {
	log *logging.Logger

	grid [8][8]types.Piece

	sideToMove types.Color

	castleWK bool
	castleWQ bool
	castleBK bool
	castleBQ bool

	epTarget types.Square

	halfmoveClock  int
	fullmoveNumber int

	occupied squareSet
	kingSq   [2]types.Square

	inCheck bool

	hash uint64

	repetition map[uint64]int
	undo       []undoRecord
}

// New returns a Board set to the standard starting position.
func New() *Board {
	b := &Board{log: myLogging.GetLog("board")}
	if err := b.LoadFEN(StartFEN); err != nil {
		panic(&InvariantViolation{Reason: "built-in start FEN failed to parse: " + err.Error()})
	}
	return b
}

// PieceAt returns the piece occupying sq, or Empty.
func (b *Board) PieceAt(sq types.Square) types.Piece {
	return b.grid[sq.Rank][sq.File]
}

// SideToMove returns the color on move.
func (b *Board) SideToMove() types.Color {
	return b.sideToMove
}

// Occupied returns the cached list of non-empty squares. The returned
// slice is shared and must not be mutated by the caller.
func (b *Board) Occupied() []types.Square {
	return b.occupied.list
}

// KingSquare returns the square of the king of the given color.
func (b *Board) KingSquare(c types.Color) types.Square {
	return b.kingSq[c]
}

// EnPassantTarget returns the current en passant target square, or SqNone.
func (b *Board) EnPassantTarget() types.Square {
	return b.epTarget
}

// CastlingRights returns the four castling flags in WK,WQ,BK,BQ order.
func (b *Board) CastlingRights() (wk, wq, bk, bq bool) {
	return b.castleWK, b.castleWQ, b.castleBK, b.castleBQ
}

// HalfmoveClock returns the plies since the last pawn move or capture.
func (b *Board) HalfmoveClock() int {
	return b.halfmoveClock
}

// FullmoveNumber returns the current full-move number.
func (b *Board) FullmoveNumber() int {
	return b.fullmoveNumber
}

// Hash returns the incrementally maintained Zobrist hash of the position.
func (b *Board) Hash() uint64 {
	return b.hash
}

// InCheck reports whether the side to move is in check. This is a
// side-effect flag set by move generation (spec.md §4.3), not recomputed
// here.
func (b *Board) InCheck() bool {
	return b.inCheck
}

// SetInCheck is called by the move generator after computing the enemy
// attack set for the current position.
func (b *Board) SetInCheck(v bool) {
	b.inCheck = v
}

// RepetitionCount returns how many times the given hash has been reached
// along the current line.
func (b *Board) RepetitionCount(hash uint64) int {
	return b.repetition[hash]
}

// UndoDepth reports how many moves can currently be undone.
func (b *Board) UndoDepth() int {
	return len(b.undo)
}

func recomputeKingSquares(b *Board) {
	for _, sq := range b.occupied.list {
		p := b.PieceAt(sq)
		if p.Type() == types.King {
			b.kingSq[p.Color()] = sq
		}
	}
}
