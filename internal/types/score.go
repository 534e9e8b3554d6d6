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

package types

// Value is a centipawn score, positive favoring White unless documented
// otherwise at the call site (the evaluator and search both work from the
// side-to-move's perspective internally).
type Value int32

// MateValue is well clear of any evaluation magnitude so mate scores are
// never confused with positional ones.
const MateValue Value = 1_000_000

// ValueDraw is the score of a drawn position.
const ValueDraw Value = 0

// ValueNA marks "not yet computed".
const ValueNA Value = MateValue + 1

// MateIn builds the score for a forced mate in plies plies from the
// current node, preferring shorter mates over longer ones.
func MateIn(plies int) Value {
	return MateValue - Value(plies)
}

// MatedIn builds the score for being mated in plies plies from the
// current node.
func MatedIn(plies int) Value {
	return -MateValue + Value(plies)
}

// IsMateScore reports whether v denotes a forced mate in either direction.
func (v Value) IsMateScore() bool {
	return v > MateValue-1000 || v < -MateValue+1000
}

// MatePlies returns the number of plies to mate encoded in a mate score
// (positive meaning the side to move delivers it, negative meaning it is
// delivered against the side to move). Only meaningful when IsMateScore.
func (v Value) MatePlies() int {
	if v > 0 {
		return int(MateValue - v)
	}
	return -int(MateValue + v)
}
