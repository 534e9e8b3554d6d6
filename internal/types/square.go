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

// Package types holds the small value types shared by every other package:
// squares, pieces, colors and moves.
package types

import "fmt"

// Square is a (file, rank) coordinate, both in 0-7. SqNone is the sentinel
// "absent" square used for an unavailable en passant target or an
// uninitialized move field.
type Square struct {
	File int8
	Rank int8
}

// SqNone is the absent square (-1,-1).
var SqNone = Square{File: -1, Rank: -1}

// NewSquare builds a Square from a 0-7 file and rank.
func NewSquare(file, rank int8) Square {
	return Square{File: file, Rank: rank}
}

// IsValid reports whether the square lies on the board.
func (s Square) IsValid() bool {
	return s.File >= 0 && s.File < 8 && s.Rank >= 0 && s.Rank < 8
}

// Index returns the 0-63 index (rank-major) used to address the zobrist
// key tables and the piece grid.
func (s Square) Index() int {
	return int(s.Rank)*8 + int(s.File)
}

// String renders algebraic notation, e.g. "e4". The absent square renders "-".
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(s.File), '1'+byte(s.Rank))
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(str string) (Square, error) {
	if str == "-" {
		return SqNone, nil
	}
	if len(str) != 2 {
		return SqNone, fmt.Errorf("invalid square %q", str)
	}
	file := int8(str[0] - 'a')
	rank := int8(str[1] - '1')
	sq := Square{File: file, Rank: rank}
	if !sq.IsValid() {
		return SqNone, fmt.Errorf("invalid square %q", str)
	}
	return sq, nil
}

// sameLine reports whether a, b and c all lie on one rank, file or diagonal.
func sameLine(a, b, c Square) bool {
	dab := Square{File: b.File - a.File, Rank: b.Rank - a.Rank}
	dac := Square{File: c.File - a.File, Rank: c.Rank - a.Rank}
	if dab.File != 0 && dab.Rank != 0 && dab.File != dab.Rank && dab.File != -dab.Rank {
		return false
	}
	// cross product of (b-a) and (c-a) must be zero for colinearity.
	return int(dab.File)*int(dac.Rank)-int(dab.Rank)*int(dac.File) == 0
}

// IsStrictlyBetween holds when the receiver, a and b lie on one rank, file
// or diagonal and the receiver lies strictly between a and b.
func (s Square) IsStrictlyBetween(a, b Square) bool {
	if s == a || s == b {
		return false
	}
	if !sameLine(a, b, s) {
		return false
	}
	// s is between a and b iff its coordinates are within the closed box
	// spanned by a and b (colinearity already checked above).
	lo := func(x, y int8) (int8, int8) {
		if x < y {
			return x, y
		}
		return y, x
	}
	fLo, fHi := lo(a.File, b.File)
	rLo, rHi := lo(a.Rank, b.Rank)
	return s.File >= fLo && s.File <= fHi && s.Rank >= rLo && s.Rank <= rHi
}

// Direction returns the unit step (df, dr) from a towards b when a, b are
// colinear (same rank, file or diagonal) and distinct. The second return
// value is false otherwise.
func Direction(a, b Square) (df, dr int8, ok bool) {
	if a == b {
		return 0, 0, false
	}
	dFile := b.File - a.File
	dRank := b.Rank - a.Rank
	if dFile != 0 && dRank != 0 && abs8(dFile) != abs8(dRank) {
		return 0, 0, false
	}
	return sign(dFile), sign(dRank), true
}

func sign(v int8) int8 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs8(v int8) int8 {
	if v < 0 {
		return -v
	}
	return v
}
