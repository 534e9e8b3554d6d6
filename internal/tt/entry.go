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

package tt

import "github.com/corvidchess/corvid/internal/types"

// Bound records which side of the search window a stored score came from.
type Bound int8

const (
	// BoundExact is a fully resolved score.
	BoundExact Bound = iota
	// BoundLower is a fail-high: the true score is at least this good.
	BoundLower
	// BoundUpper is a fail-low: the true score is at most this good.
	BoundUpper
)

// Entry is one transposition table slot, keyed externally by the position's
// Zobrist hash.
type Entry struct {
	Depth          int
	Score          types.Value
	Bound          Bound
	BestMove       types.Move
	PredictedReply types.Move
	Age            uint32
}
