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

// Package movegen generates fully legal moves (not pseudo-legal) from a
// board.Board, in an "all moves" mode and a "captures only" mode used by
// search's quiescence extension. Both modes set board.Board's in-check
// flag as a side effect, per spec.md §4.3.
package movegen

import (
	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/types"
)

// Generator produces legal moves for a board.Board. It is stateless
// between calls and safe to share across goroutines as long as the boards
// it is handed are not shared. Unlike most packages here it carries no
// logger: Generate runs on the hot per-node search path (and Perft walks
// the same kind of tree), where even a disabled log call's argument evaluation is
// wasted work, and there is no failure mode worth reporting.
type Generator struct{}

// New creates a move generator.
func New() *Generator {
	return &Generator{}
}

var orthogonal = [4][2]int8{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var diagonal = [4][2]int8{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var knightOffsets = [8][2]int8{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}

// attackInfo is the result of scanning one side's pseudo-attacks: which
// squares are attacked, and by which source squares (needed to find
// checkers and, later, the checking piece for interposition tests).
type attackInfo struct {
	attacked  [8][8]bool
	attackers map[types.Square][]types.Square
}

func (a *attackInfo) mark(target, source types.Square) {
	a.attacked[target.Rank][target.File] = true
	a.attackers[target] = append(a.attackers[target], source)
}

// computeAttacks returns every square `by` attacks. When excludeKing is a
// valid square, that square is treated as empty for sliding blocker
// purposes (but can still be marked attacked) so that king moves away
// from a checking ray are correctly recognized as still attacked.
func computeAttacks(b *board.Board, by types.Color, excludeKing types.Square) attackInfo {
	info := attackInfo{attackers: make(map[types.Square][]types.Square)}

	occupiedAt := func(sq types.Square) types.Piece {
		if sq == excludeKing {
			return types.Empty
		}
		return b.PieceAt(sq)
	}

	for _, sq := range b.Occupied() {
		p := b.PieceAt(sq)
		if p.Color() != by {
			continue
		}
		switch p.Type() {
		case types.Pawn:
			fwd := int8(1)
			if by == types.Black {
				fwd = -1
			}
			for _, df := range [2]int8{1, -1} {
				t := types.NewSquare(sq.File+df, sq.Rank+fwd)
				if t.IsValid() {
					info.mark(t, sq)
				}
			}
		case types.Knight:
			for _, o := range knightOffsets {
				t := types.NewSquare(sq.File+o[0], sq.Rank+o[1])
				if t.IsValid() {
					info.mark(t, sq)
				}
			}
		case types.King:
			for _, dirs := range [2][4][2]int8{orthogonal, diagonal} {
				for _, d := range dirs {
					t := types.NewSquare(sq.File+d[0], sq.Rank+d[1])
					if t.IsValid() {
						info.mark(t, sq)
					}
				}
			}
		case types.Bishop, types.Rook, types.Queen:
			var dirSets [][4][2]int8
			if p.Type() == types.Bishop || p.Type() == types.Queen {
				dirSets = append(dirSets, diagonal)
			}
			if p.Type() == types.Rook || p.Type() == types.Queen {
				dirSets = append(dirSets, orthogonal)
			}
			for _, dirs := range dirSets {
				for _, d := range dirs {
					cur := types.NewSquare(sq.File+d[0], sq.Rank+d[1])
					for cur.IsValid() {
						info.mark(cur, sq)
						if !occupiedAt(cur).IsEmpty() {
							break
						}
						cur = types.NewSquare(cur.File+d[0], cur.Rank+d[1])
					}
				}
			}
		}
	}
	return info
}

// pinInfo maps a pinned square to the enemy slider square pinning it.
type pinInfo map[types.Square]types.Square

func computePins(b *board.Board, kingSq types.Square, us types.Color) pinInfo {
	pins := pinInfo{}
	them := us.Flip()
	allDirs := append(append([][2]int8{}, orthogonal[:]...), diagonal[:]...)
	for _, d := range allDirs {
		var first types.Square
		haveFirst := false
		cur := types.NewSquare(kingSq.File+d[0], kingSq.Rank+d[1])
		for cur.IsValid() {
			p := b.PieceAt(cur)
			if !p.IsEmpty() {
				if !haveFirst {
					if p.Color() != us {
						break // enemy piece is an attacker, not something we can pin
					}
					first = cur
					haveFirst = true
				} else {
					if p.Color() == them && isSliderCompatible(p.Type(), d) {
						pins[first] = cur
					}
					break
				}
			}
			cur = types.NewSquare(cur.File+d[0], cur.Rank+d[1])
		}
	}
	return pins
}

func isSliderCompatible(pt types.PieceType, d [2]int8) bool {
	diag := d[0] != 0 && d[1] != 0
	if diag {
		return pt == types.Bishop || pt == types.Queen
	}
	return pt == types.Rook || pt == types.Queen
}

// Generate returns legal moves for the side to move. When capturesOnly is
// set, only captures (including en passant) are returned, for quiescence.
func (g *Generator) Generate(b *board.Board, capturesOnly bool) []types.Move {
	us := b.SideToMove()
	them := us.Flip()
	kingSq := b.KingSquare(us)

	enemyAttacks := computeAttacks(b, them, kingSq)
	checkers := enemyAttacks.attackers[kingSq]
	pins := computePins(b, kingSq, us)

	pseudo := g.pseudoLegal(b, us)

	out := make([]types.Move, 0, len(pseudo))
	for _, m := range pseudo {
		if !g.isLegal(b, m, us, kingSq, enemyAttacks, checkers, pins) {
			continue
		}
		if capturesOnly {
			isCapture := m.EnPassant || !b.PieceAt(m.To).IsEmpty()
			if !isCapture {
				continue
			}
		}
		out = append(out, m)
	}

	b.SetInCheck(len(checkers) > 0)
	return out
}

func (g *Generator) isLegal(b *board.Board, m types.Move, us types.Color, kingSq types.Square, enemyAttacks attackInfo, checkers []types.Square, pins pinInfo) bool {
	mover := b.PieceAt(m.From)

	if m.Castle {
		if len(checkers) > 0 {
			return false
		}
		step := int8(1)
		if m.To.File < m.From.File {
			step = -1
		}
		for f := m.From.File; f != m.To.File+step; f += step {
			sq := types.NewSquare(f, m.From.Rank)
			if enemyAttacks.attacked[sq.Rank][sq.File] {
				return false
			}
		}
		return true
	}

	if mover.Type() == types.King {
		return !enemyAttacks.attacked[m.To.Rank][m.To.File]
	}

	switch len(checkers) {
	case 0:
		// no check: fall through to pin test below
	case 1:
		checker := checkers[0]
		resolves := m.To == checker
		if !resolves {
			checkerPiece := b.PieceAt(checker)
			if isSlidingType(checkerPiece.Type()) && m.To.IsStrictlyBetween(checker, kingSq) {
				resolves = true
			}
		}
		if !resolves && m.EnPassant {
			capturedSq := types.NewSquare(m.To.File, m.From.Rank)
			if capturedSq == checker {
				resolves = true
			}
		}
		if !resolves {
			return false
		}
	default: // double check: only king moves are legal, handled above
		return false
	}

	if attacker, pinned := pins[m.From]; pinned {
		onRay := m.To == attacker || m.To.IsStrictlyBetween(attacker, kingSq)
		if !onRay {
			return false
		}
	}

	if m.EnPassant && enPassantExposesKing(b, m, us) {
		return false
	}

	return true
}

func isSlidingType(pt types.PieceType) bool {
	return pt == types.Bishop || pt == types.Rook || pt == types.Queen
}

// enPassantExposesKing implements the horizontal-discovery check from
// spec.md §4.3: when the capturing pawn and the king share a rank,
// removing both pawns from that rank may expose the king to a rook or
// queen sliding along it.
func enPassantExposesKing(b *board.Board, m types.Move, us types.Color) bool {
	kingSq := b.KingSquare(us)
	if kingSq.Rank != m.From.Rank {
		return false
	}
	capturedSq := types.NewSquare(m.To.File, m.From.Rank)
	for _, dfile := range [2]int8{1, -1} {
		cur := types.NewSquare(kingSq.File+dfile, kingSq.Rank)
		for cur.IsValid() {
			if cur == m.From || cur == capturedSq {
				cur = types.NewSquare(cur.File+dfile, cur.Rank)
				continue
			}
			p := b.PieceAt(cur)
			if !p.IsEmpty() {
				if p.Color() != us && (p.Type() == types.Rook || p.Type() == types.Queen) {
					return true
				}
				break
			}
			cur = types.NewSquare(cur.File+dfile, cur.Rank)
		}
	}
	return false
}
