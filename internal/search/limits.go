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

import "time"

// Limits carries everything a "go" command can specify. At most one of
// MoveTime, Depth or the White/Black clock pair is normally meaningful at
// once; Infinite and Ponder both override the clock and run until Stop or
// PonderHit turns the search into a timed one.
type Limits struct {
	Infinite bool
	Ponder   bool

	// Depth, when non-zero, caps iterative deepening at that depth
	// regardless of the clock.
	Depth int

	// MoveTime, when non-zero, fixes the budget for this move exactly,
	// bypassing clock.Budget.
	MoveTime time.Duration

	WhiteTime time.Duration
	BlackTime time.Duration
	WhiteInc  time.Duration
	BlackInc  time.Duration
}

// BudgetFor returns the time remaining and increment for the side to move.
func (l Limits) BudgetFor(white bool) (remaining, increment time.Duration) {
	if white {
		return l.WhiteTime, l.WhiteInc
	}
	return l.BlackTime, l.BlackInc
}

// IsTimed reports whether the search should stop on its own rather than
// running until Stop is called.
func (l Limits) IsTimed() bool {
	return !l.Infinite && !l.Ponder
}
